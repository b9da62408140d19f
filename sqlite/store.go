package sqlite

import (
	"context"

	"github.com/sennevb/docrawl"
)

// Compile-time interface verification.
var (
	_ docrawl.PageStore   = (*Store)(nil)
	_ docrawl.ChunkWriter = (*Store)(nil)
)

// Store implements docrawl.PageStore and docrawl.ChunkWriter over one
// database. Records are keyed by their stable hash IDs, so re-crawling an
// unchanged site rewrites rows in place instead of duplicating them.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// SavePage upserts the page record keyed by ShortHash of its URL.
func (s *Store) SavePage(ctx context.Context, page *docrawl.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, title, markdown)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			markdown = excluded.markdown
	`, page.Key(), page.URL, page.Title, page.Markdown)

	return err
}

// WriteChunk upserts one chunk record keyed by its stable ID.
func (s *Store) WriteChunk(ctx context.Context, chunk *docrawl.Chunk) error {
	if err := chunk.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chunks (id, title, heading, url, markdown)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			heading = excluded.heading,
			url = excluded.url,
			markdown = excluded.markdown
	`, chunk.ID, chunk.Title, chunk.Heading, chunk.URL, chunk.Markdown)

	return err
}
