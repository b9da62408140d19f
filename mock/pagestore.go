package mock

import (
	"context"

	"github.com/sennevb/docrawl"
)

var _ docrawl.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of docrawl.PageStore.
type PageStore struct {
	SavePageFn func(ctx context.Context, page *docrawl.Page) error
}

func (s *PageStore) SavePage(ctx context.Context, page *docrawl.Page) error {
	return s.SavePageFn(ctx, page)
}
