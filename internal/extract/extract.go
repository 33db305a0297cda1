// Package extract turns extracted document text into structured
// polling-station records via a single Claude call per source.
package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/votewatch-ja/stations-cli/internal/config"
	"github.com/votewatch-ja/stations-cli/internal/model"
	"github.com/votewatch-ja/stations-cli/pkg/anthropic"
)

// Extractor asks a Claude model for structured station records.
type Extractor struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewExtractor creates an Extractor. A nil client is allowed and makes every
// call fail cleanly; the orchestrator absorbs that as "no data from this
// source".
func NewExtractor(client anthropic.Client, cfg config.AnthropicConfig) *Extractor {
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}
	return &Extractor{
		client:    client,
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// ExtractStations extracts station records from one source's document text.
// Any failure (no credentials, API error, malformed output) is an error the
// caller logs and treats as zero records; a single call, no retries.
func (e *Extractor) ExtractStations(ctx context.Context, sourceName, docText string) ([]model.PollingStationRecord, error) {
	if e.client == nil {
		return nil, eris.New("extract: no anthropic api key configured")
	}
	if strings.TrimSpace(docText) == "" {
		return nil, nil
	}

	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     e.model,
		MaxTokens: e.maxTokens,
		System:    BuildSystemPrompt(),
		Messages: []anthropic.Message{
			{Role: "user", Content: BuildUserPrompt(sourceName, docText)},
		},
	})
	if err != nil {
		return nil, eris.Wrapf(err, "extract: model call for %s", sourceName)
	}

	resp.Usage.LogCost(e.model, "station-extract")

	text := responseText(resp)
	arr, ok := FirstJSONArray(text)
	if !ok {
		return nil, eris.Errorf("extract: no JSON array in model response for %s", sourceName)
	}

	var records []model.PollingStationRecord
	if err := json.Unmarshal([]byte(arr), &records); err != nil {
		return nil, eris.Wrapf(err, "extract: parse model response for %s", sourceName)
	}

	zap.L().Debug("model extraction parsed",
		zap.String("source", sourceName),
		zap.Int("records", len(records)),
	)

	return records, nil
}

// responseText concatenates all text content blocks.
func responseText(resp *anthropic.MessageResponse) string {
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "" || b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String()
}
