package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/votewatch-ja/stations-cli/internal/doc"
	"github.com/votewatch-ja/stations-cli/internal/extract"
	"github.com/votewatch-ja/stations-cli/internal/fetcher"
	"github.com/votewatch-ja/stations-cli/internal/pipeline"
	"github.com/votewatch-ja/stations-cli/internal/source"
	anthropicpkg "github.com/votewatch-ja/stations-cli/pkg/anthropic"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the full extraction pipeline and emit the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sources, err := loadSources()
		if err != nil {
			return err
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:  cfg.Fetch.UserAgent,
			Referer:    cfg.Fetch.Referer,
			Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
			MaxRetries: cfg.Fetch.MaxRetries,
		})

		docs := doc.NewExtractor(func() (doc.PDFBackend, error) {
			return doc.NewPDFBackend(cfg.OCR)
		})

		var anthropicClient anthropicpkg.Client
		if cfg.Anthropic.Key != "" {
			anthropicClient = anthropicpkg.NewClient(cfg.Anthropic.Key)
		} else {
			zap.L().Warn("no anthropic api key configured, sources will be skipped and the synthetic dataset used")
		}
		ex := extract.NewExtractor(anthropicClient, cfg.Anthropic)

		p := pipeline.New(sources, f, docs, ex, pipeline.Options{
			FallbackThreshold: cfg.Pipeline.FallbackThreshold,
			SourceConcurrency: cfg.Pipeline.SourceConcurrency,
		})

		result, err := p.Run(ctx)
		if err != nil {
			return eris.Wrap(err, "extraction run")
		}

		out := os.Stdout
		if extractOut != "" {
			out, err = os.Create(extractOut)
			if err != nil {
				return eris.Wrapf(err, "create output file %s", extractOut)
			}
			defer out.Close()
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

// loadSources returns the built-in ECJ registry unless a sources file is
// configured.
func loadSources() ([]source.Source, error) {
	if cfg.Sources.File == "" {
		return source.Defaults(), nil
	}
	sources, err := source.LoadFile(cfg.Sources.File)
	if err != nil {
		return nil, eris.Wrapf(err, "load sources from %s", cfg.Sources.File)
	}
	return sources, nil
}

func init() {
	extractCmd.Flags().StringVar(&extractOut, "out", "", "write the dataset to this file instead of stdout")
	rootCmd.AddCommand(extractCmd)
}
