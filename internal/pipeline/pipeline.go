// Package pipeline orchestrates the polling-station extraction run: fetch
// every registered source, extract text, ask the model for records, fall back
// to the synthetic dataset when the sources under-deliver, then merge.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/votewatch-ja/stations-cli/internal/doc"
	"github.com/votewatch-ja/stations-cli/internal/fallback"
	"github.com/votewatch-ja/stations-cli/internal/fetcher"
	"github.com/votewatch-ja/stations-cli/internal/merge"
	"github.com/votewatch-ja/stations-cli/internal/model"
	"github.com/votewatch-ja/stations-cli/internal/source"
)

// StationExtractor produces structured records from one source's text.
type StationExtractor interface {
	ExtractStations(ctx context.Context, sourceName, docText string) ([]model.PollingStationRecord, error)
}

// FallbackFunc supplies the synthetic dataset.
type FallbackFunc func() []model.PollingStationRecord

// Options configures a pipeline run.
type Options struct {
	// FallbackThreshold: append the synthetic dataset iff the accumulated
	// AI-derived record count (pre-dedup) is below this. 0 disables fallback.
	FallbackThreshold int
	// SourceConcurrency bounds parallel source processing; <=1 is sequential.
	SourceConcurrency int
}

// Pipeline runs the extraction end to end.
type Pipeline struct {
	sources   []source.Source
	fetcher   fetcher.Fetcher
	docs      *doc.Extractor
	extractor StationExtractor
	fallback  FallbackFunc
	opts      Options
}

// New creates a Pipeline over the given sources and stages.
func New(sources []source.Source, f fetcher.Fetcher, docs *doc.Extractor, ex StationExtractor, opts Options) *Pipeline {
	return &Pipeline{
		sources:   sources,
		fetcher:   f,
		docs:      docs,
		extractor: ex,
		fallback:  fallback.Generate,
		opts:      opts,
	}
}

// WithFallback overrides the synthetic dataset generator.
func (p *Pipeline) WithFallback(f FallbackFunc) *Pipeline {
	p.fallback = f
	return p
}

// Run executes one extraction run. Per-source failures are absorbed: the only
// error Run returns is a broken text-extraction backend, which is a
// configuration defect no fallback can compensate for. Total failure of every
// source degrades to a synthetic-only result.
func (p *Pipeline) Run(ctx context.Context) (*model.ExtractionResult, error) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	start := time.Now()

	log.Info("extraction run starting", zap.Int("sources", len(p.sources)))

	concurrency := p.opts.SourceConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	// Results are indexed by registration position so that the merge input
	// keeps a stable source order regardless of completion order.
	perSource := make([][]model.PollingStationRecord, len(p.sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range p.sources {
		g.Go(func() error {
			records, err := p.processSource(gctx, src, log)
			if err != nil {
				return err
			}
			perSource[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: run")
	}

	var accumulated []model.PollingStationRecord
	for _, records := range perSource {
		accumulated = append(accumulated, records...)
	}
	aiCount := len(accumulated)

	usedFallback := false
	if aiCount < p.opts.FallbackThreshold {
		synthetic := p.fallback()
		accumulated = append(accumulated, synthetic...)
		usedFallback = true
		log.Info("ai extraction below threshold, appending synthetic dataset",
			zap.Int("ai_records", aiCount),
			zap.Int("threshold", p.opts.FallbackThreshold),
			zap.Int("synthetic_records", len(synthetic)),
		)
	}

	groups, total := merge.Merge(accumulated)

	result := &model.ExtractionResult{
		Parishes:       groups,
		TotalStations:  total,
		DocumentSource: provenance(aiCount, usedFallback),
		ExtractionDate: time.Now().UTC(),
	}

	log.Info("extraction run complete",
		zap.Int("ai_records", aiCount),
		zap.Int("total_stations", total),
		zap.Int("parishes", len(groups)),
		zap.Bool("used_fallback", usedFallback),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}

// processSource runs fetch → text extraction → AI extraction for one source.
// Every failure is logged and yields nil records, except a text-backend init
// failure, which aborts the run.
func (p *Pipeline) processSource(ctx context.Context, src source.Source, log *zap.Logger) ([]model.PollingStationRecord, error) {
	slog := log.With(zap.String("source", src.Name))

	data, err := p.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		slog.Warn("source fetch failed, skipping", zap.String("url", src.URL), zap.Error(err))
		return nil, nil
	}

	d := model.SourceDocument{
		URL:  src.URL,
		Name: src.Name,
		Kind: string(src.Kind),
		Data: data,
	}

	text, err := p.docs.Extract(ctx, d)
	if err != nil {
		var initErr *doc.BackendInitError
		if errors.As(err, &initErr) {
			return nil, err
		}
		slog.Warn("text extraction failed, skipping", zap.Error(err))
		return nil, nil
	}

	records, err := p.extractor.ExtractStations(ctx, src.Name, text)
	if err != nil {
		slog.Warn("ai extraction failed, skipping", zap.Error(err))
		return nil, nil
	}

	slog.Info("source processed",
		zap.Int("document_bytes", len(data)),
		zap.Int("text_chars", len(text)),
		zap.Int("records", len(records)),
	)

	return records, nil
}

// provenance labels the result by which tiers contributed.
func provenance(aiCount int, usedFallback bool) string {
	switch {
	case usedFallback && aiCount == 0:
		return "synthetic-fallback"
	case usedFallback:
		return "ecj-documents+synthetic-fallback"
	default:
		return "ecj-documents"
	}
}
