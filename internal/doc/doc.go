// Package doc converts fetched source documents into plain text for the AI
// extraction stage. Formatting fidelity is not a goal; downstream only needs
// searchable text.
package doc

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/votewatch-ja/stations-cli/internal/config"
	"github.com/votewatch-ja/stations-cli/internal/model"
	"github.com/votewatch-ja/stations-cli/internal/source"
)

// PDFBackend extracts text content from raw PDF bytes.
type PDFBackend interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// NewPDFBackend creates a PDFBackend based on config.
func NewPDFBackend(cfg config.OCRConfig) (PDFBackend, error) {
	switch cfg.Provider {
	case "local", "":
		return NewPdfToText(cfg.PdfToTextPath), nil
	case "mistral":
		if cfg.MistralKey == "" {
			return nil, eris.New("doc: mistral provider requires mistral_api_key")
		}
		return NewMistralOCR(cfg.MistralKey, cfg.MistralModel), nil
	default:
		return nil, eris.Errorf("doc: unknown provider %q", cfg.Provider)
	}
}

// BackendInitError marks a failed PDF backend construction. It is a
// configuration defect, not a per-document parse failure, and callers should
// abort rather than skip the document.
type BackendInitError struct {
	Err error
}

func (e *BackendInitError) Error() string {
	return "doc: init pdf backend: " + e.Err.Error()
}

func (e *BackendInitError) Unwrap() error { return e.Err }

// Extractor converts source documents into plain text. The PDF backend is
// constructed lazily, at most once, on the first PDF document; HTML and XLSX
// extraction are deterministic and need no backend.
type Extractor struct {
	newBackend func() (PDFBackend, error)

	once    sync.Once
	backend PDFBackend
	initErr error
}

// NewExtractor creates an Extractor whose PDF backend comes from the given
// factory on first use.
func NewExtractor(factory func() (PDFBackend, error)) *Extractor {
	return &Extractor{newBackend: factory}
}

// Extract returns plain text for the document according to its kind.
func (e *Extractor) Extract(ctx context.Context, d model.SourceDocument) (string, error) {
	switch source.Kind(d.Kind) {
	case source.KindPDF:
		backend, err := e.pdfBackend()
		if err != nil {
			return "", err
		}
		text, err := backend.Extract(ctx, d.Data)
		if err != nil {
			return "", eris.Wrapf(err, "doc: extract pdf %s", d.Name)
		}
		return text, nil
	case source.KindXLSX:
		return flattenXLSX(d.Data)
	case source.KindHTML:
		return htmlToText(d.Data)
	default:
		return "", eris.Errorf("doc: unknown document kind %q for %s", d.Kind, d.Name)
	}
}

func (e *Extractor) pdfBackend() (PDFBackend, error) {
	e.once.Do(func() {
		backend, err := e.newBackend()
		if err != nil {
			e.initErr = &BackendInitError{Err: err}
			return
		}
		e.backend = backend
	})
	if e.initErr != nil {
		return nil, e.initErr
	}
	return e.backend, nil
}
