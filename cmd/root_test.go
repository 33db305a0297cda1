package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votewatch-ja/stations-cli/internal/config"
	"github.com/votewatch-ja/stations-cli/internal/source"
)

func TestLoadSources_Defaults(t *testing.T) {
	cfg = &config.Config{}

	sources, err := loadSources()
	require.NoError(t, err)
	assert.Equal(t, source.Defaults(), sources)
}

func TestLoadSources_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: custom-listing
  url: https://example.com/listing.pdf
  kind: pdf
`), 0o644))

	cfg = &config.Config{}
	cfg.Sources.File = path

	sources, err := loadSources()
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "custom-listing", sources[0].Name)
	assert.Equal(t, source.KindPDF, sources[0].Kind)
}

func TestLoadSources_FileMissing(t *testing.T) {
	cfg = &config.Config{}
	cfg.Sources.File = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := loadSources()
	assert.Error(t, err)
}
