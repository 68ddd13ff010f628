// Package scraper handles page fetching and table extraction.
package scraper

import (
	"context"
	"time"
)

// PageContent represents fetched page data.
type PageContent struct {
	URL         string
	HTML        string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// FetchOptions controls fetching behavior.
type FetchOptions struct {
	UserAgent string
	Timeout   time.Duration
	Headers   map[string]string
}

// Fetcher abstracts page fetching.
type Fetcher interface {
	// Fetch retrieves page content from a URL with a single request.
	Fetch(ctx context.Context, url string, opts FetchOptions) (PageContent, error)

	// Close releases any resources.
	Close() error
}

// FetcherConfig holds common fetcher configuration.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultFetcherConfig returns sensible defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		UserAgent: "econotab/1.0 (+https://github.com/jmylchreest/econotab)",
		Timeout:   30 * time.Second,
	}
}
