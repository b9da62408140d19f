package docrawl

// LinkExtractor harvests hyperlink targets from a raw HTML document.
// Hrefs are resolved to absolute URLs against the base and returned in
// document order; the caller canonicalizes and scope-checks them.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) ([]string, error)
}
