// Package crawl provides the breadth-first crawl loop that turns a manual
// root URL into page records and chunk records. It coordinates fetching,
// extraction, chunking, link discovery and persistence; all traversal state
// lives in the loop.
package crawl

import (
	"context"
	"log/slog"

	"github.com/sennevb/docrawl"
)

// Crawler orchestrates the crawl of one manual. The zero value is not
// usable; Fetcher, Extractor, Links, Pages and Chunks must be set.
type Crawler struct {
	Fetcher   docrawl.Fetcher
	Extractor docrawl.Extractor
	Links     docrawl.LinkExtractor
	Pages     docrawl.PageStore
	Chunks    docrawl.ChunkWriter

	// Limiter, when set, paces requests. Nil disables the delay.
	Limiter docrawl.Limiter

	// Logger receives per-page progress and skip events. Nil discards them.
	Logger *slog.Logger

	// MaxPages is the page budget. A zero or negative budget yields an
	// empty result rather than an error.
	MaxPages int

	// ChunkOpts configures the chunker. Zero values select the defaults.
	ChunkOpts docrawl.ChunkOptions
}

// Result reports the outcome of a crawl run.
type Result struct {
	PagesVisited  int
	ChunksEmitted int
}

// Run crawls breadth-first from rootURL until the frontier empties or the
// page budget is exhausted. Per-page failures (transport errors,
// unparseable HTML, sink write errors) are logged and contained; the failed
// URL stays seen and is not retried within the run.
func (c *Crawler) Run(ctx context.Context, rootURL string) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root := docrawl.Canonicalize(rootURL)
	frontier := NewFrontier()
	frontier.Push(root)

	result := &Result{}
	for frontier.Len() > 0 && result.PagesVisited < c.MaxPages {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		raw, _ := frontier.Pop()
		url := docrawl.Canonicalize(raw)

		// Mark seen before fetching so a rediscovery while this URL is in
		// flight cannot queue a second processing.
		if !frontier.MarkSeen(url) {
			continue
		}
		if !docrawl.InScope(url, root) {
			continue
		}

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return result, err
			}
		}

		html, err := c.Fetcher.Fetch(ctx, url)
		if err != nil {
			logger.Warn("skip page", "url", url, "err", err)
			continue
		}

		// Link discovery runs on the raw document, independently of
		// extraction. Enqueue order follows document order. A failed
		// harvest loses this page's outlinks but not the page itself.
		links, err := c.Links.ExtractLinks(html, url)
		if err != nil {
			logger.Warn("link harvest", "url", url, "err", err)
		}
		for _, link := range links {
			canonical := docrawl.Canonicalize(link)
			if docrawl.InScope(canonical, root) {
				frontier.Push(canonical)
			}
		}

		extracted, err := c.Extractor.Extract(html)
		if err != nil {
			logger.Warn("skip page", "url", url, "err", err)
			continue
		}

		page := &docrawl.Page{
			URL:      url,
			Title:    extracted.Title,
			Markdown: extracted.Markdown,
		}
		if err := c.Pages.SavePage(ctx, page); err != nil {
			logger.Error("save page", "url", url, "err", err)
			continue
		}

		chunks := docrawl.ChunkDocument(extracted.Markdown, extracted.Title, url, c.ChunkOpts)
		for i := range chunks {
			if err := c.Chunks.WriteChunk(ctx, &chunks[i]); err != nil {
				logger.Error("write chunk", "url", url, "chunk", chunks[i].ID, "err", err)
				break
			}
			result.ChunksEmitted++
		}

		result.PagesVisited++
		logger.Info("page", "n", result.PagesVisited, "url", TruncateURL(url, 80), "chunks", len(chunks))
	}

	return result, nil
}
