// Package fetcher downloads source documents over HTTP.
package fetcher

import "context"

// Fetcher defines the interface for retrieving remote documents.
type Fetcher interface {
	// Fetch downloads the URL and returns the raw document bytes.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
