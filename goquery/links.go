package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sennevb/docrawl"
)

// Compile-time interface verification.
var _ docrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor harvests anchor hrefs from raw HTML in document order.
// Relative hrefs resolve against the page URL treated as a directory
// (pageURL + "/"), so "sibling" links resolve page-relative rather than
// parent-relative.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns the absolute targets of every a[href] in the
// document, in document order. Duplicates are preserved; the crawl frontier
// owns deduplication. Non-HTTP schemes (javascript:, mailto:, tel:, data:)
// are skipped.
func (l *LinkExtractor) ExtractLinks(rawHTML string, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL + "/")
	if err != nil {
		return nil, docrawl.Errorf(docrawl.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docrawl.Errorf(docrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})

	return links, nil
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
