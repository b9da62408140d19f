package docrawl

import "context"

// Fetcher retrieves raw HTML from URLs. Any transport or status failure is
// page-scoped: the crawler skips the URL and never retries it within a run.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
