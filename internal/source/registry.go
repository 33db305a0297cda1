// Package source holds the registry of remote documents the pipeline mines
// for polling-station data.
package source

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Kind selects the text-extraction path for a source document.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindXLSX Kind = "xlsx"
	KindHTML Kind = "html"
)

// Source is one registered remote document.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Kind Kind   `yaml:"kind"`
}

// Defaults returns the built-in source registry in processing order. The
// order matters: it is the dedup tie-break order for the merge stage.
func Defaults() []Source {
	return []Source{
		{
			Name: "ecj-polling-station-listing",
			URL:  "https://ecj.com.jm/wp-content/uploads/2024/02/Polling-Station-Listing.pdf",
			Kind: KindPDF,
		},
		{
			Name: "ecj-constituency-directory",
			URL:  "https://ecj.com.jm/wp-content/uploads/2024/02/Constituency-Polling-Station-Directory.pdf",
			Kind: KindPDF,
		},
		{
			Name: "ecj-station-workbook",
			URL:  "https://ecj.com.jm/wp-content/uploads/2024/02/polling-stations-by-parish.xlsx",
			Kind: KindXLSX,
		},
		{
			Name: "ecj-locations-page",
			URL:  "https://ecj.com.jm/elections/polling-locations/",
			Kind: KindHTML,
		},
	}
}

// LoadFile reads a source registry override from a YAML file. Entries must
// carry a name, a URL and a known kind.
func LoadFile(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: read registry file %s", path)
	}

	var sources []Source
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return nil, eris.Wrapf(err, "source: parse registry file %s", path)
	}

	if len(sources) == 0 {
		return nil, eris.Errorf("source: registry file %s is empty", path)
	}

	for i, s := range sources {
		if s.Name == "" || s.URL == "" {
			return nil, eris.Errorf("source: entry %d missing name or url", i)
		}
		switch s.Kind {
		case KindPDF, KindXLSX, KindHTML:
		default:
			return nil, eris.Errorf("source: entry %q has unknown kind %q", s.Name, s.Kind)
		}
	}

	return sources, nil
}
