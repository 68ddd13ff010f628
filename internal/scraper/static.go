package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// StaticFetcher uses Colly for static HTML fetching.
type StaticFetcher struct {
	config FetcherConfig
}

// NewStaticFetcher creates a new static fetcher.
func NewStaticFetcher(cfg FetcherConfig) *StaticFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultFetcherConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultFetcherConfig().Timeout
	}
	return &StaticFetcher{config: cfg}
}

// Fetch retrieves page content using Colly. A non-2xx status is an error;
// there is exactly one request, no retries.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string, opts FetchOptions) (PageContent, error) {
	result := PageContent{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Create a new collector for each request
	c := colly.NewCollector(
		colly.UserAgent(coalesce(opts.UserAgent, f.config.UserAgent)),
	)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.config.Timeout
	}
	c.SetRequestTimeout(timeout)

	if len(opts.Headers) > 0 {
		c.OnRequest(func(r *colly.Request) {
			for k, v := range opts.Headers {
				r.Headers.Set(k, v)
			}
		})
	}

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}

	if fetchErr != nil {
		return result, fetchErr
	}

	if result.StatusCode < 200 || result.StatusCode >= 300 {
		return result, fmt.Errorf("unexpected status %d fetching %s", result.StatusCode, targetURL)
	}

	return result, nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
