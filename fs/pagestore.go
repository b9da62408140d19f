// Package fs provides the filesystem sinks for the corpus: one JSON record
// per page plus an append-only JSONL chunk index that downstream retrieval
// tooling consumes.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sennevb/docrawl"
)

// Ensure PageStore implements docrawl.PageStore at compile time.
var _ docrawl.PageStore = (*PageStore)(nil)

// PageStore writes one pretty-printed JSON file per page, named by the
// short hash of the page's canonical URL. Re-saving the same page
// overwrites its file, so repeated runs are idempotent.
type PageStore struct {
	dir string
}

// NewPageStore creates the pages directory if needed and returns a store
// writing into it. A directory creation failure here is the fatal sink
// initialization case; per-page write errors later are contained by the
// crawler.
func NewPageStore(dir string) (*PageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &PageStore{dir: dir}, nil
}

// Dir returns the directory pages are written to.
func (s *PageStore) Dir() string {
	return s.dir
}

// SavePage writes the page record as <ShortHash(url)>.json.
func (s *PageStore) SavePage(_ context.Context, page *docrawl.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(filepath.Join(s.dir, page.Key()+".json"), data, 0644)
}
