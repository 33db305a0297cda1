package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty dir so no config.yaml is picked up.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd) //nolint:errcheck

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 60, cfg.Fetch.TimeoutSecs)
	assert.Equal(t, 3, cfg.Fetch.MaxRetries)
	assert.Contains(t, cfg.Fetch.UserAgent, "Mozilla/5.0")
	assert.Equal(t, "https://www.google.com/", cfg.Fetch.Referer)
	assert.Equal(t, "local", cfg.OCR.Provider)
	assert.Equal(t, "pdftotext", cfg.OCR.PdfToTextPath)
	assert.Equal(t, 100, cfg.Pipeline.FallbackThreshold)
	assert.Equal(t, 1, cfg.Pipeline.SourceConcurrency)
	assert.Equal(t, int64(8192), cfg.Anthropic.MaxTokens)
}

func TestLoad_ConfigFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd) //nolint:errcheck

	yaml := `
pipeline:
  fallback_threshold: 50
  source_concurrency: 4
ocr:
  provider: mistral
  mistral_api_key: test-key
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Pipeline.FallbackThreshold)
	assert.Equal(t, 4, cfg.Pipeline.SourceConcurrency)
	assert.Equal(t, "mistral", cfg.OCR.Provider)
	assert.Equal(t, "test-key", cfg.OCR.MistralKey)
	// Untouched keys keep defaults.
	assert.Equal(t, 60, cfg.Fetch.TimeoutSecs)
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestInitLogger_Console(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
}
