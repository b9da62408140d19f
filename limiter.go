package docrawl

import "context"

// Limiter paces requests to the target site. It is a politeness knob, not a
// scheduling primitive: the crawl loop is single-threaded and simply waits
// between fetches.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
