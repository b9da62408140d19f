package docrawl

import "context"

// Page represents a single crawled manual page after extraction. Pages are
// immutable once created and are identified externally by ShortHash of
// their canonical URL.
type Page struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "page title required")
	}
	return nil
}

// Key returns the page's external identity: ShortHash of its URL. It names
// the page record in whatever store persists it.
func (p *Page) Key() string {
	return ShortHash(p.URL)
}

// PageStore persists page records.
type PageStore interface {
	// SavePage writes one page record. Saving the same page twice must be
	// idempotent with respect to the page's Key.
	SavePage(ctx context.Context, page *Page) error
}

// MultiPageStore fans a page out to several stores in order.
type MultiPageStore []PageStore

// SavePage writes the page to every store, stopping at the first error.
func (m MultiPageStore) SavePage(ctx context.Context, page *Page) error {
	for _, s := range m {
		if err := s.SavePage(ctx, page); err != nil {
			return err
		}
	}
	return nil
}
