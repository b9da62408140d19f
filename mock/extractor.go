package mock

import "github.com/sennevb/docrawl"

var _ docrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docrawl.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docrawl.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docrawl.ExtractResult, error) {
	return e.ExtractFn(html)
}
