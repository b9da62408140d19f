package mock

import "github.com/sennevb/docrawl"

var _ docrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docrawl.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (l *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return l.ExtractLinksFn(html, baseURL)
}
