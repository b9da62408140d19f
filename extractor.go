package docrawl

// ExtractResult holds the content extracted from one HTML page.
type ExtractResult struct {
	// Title is the resolved page title, "Untitled" when the page carries
	// no h1 and no title metadata.
	Title string

	// Markdown is the page content rendered into a constrained markdown
	// subset: a # title line followed by ##/### headings, paragraphs,
	// fenced code blocks and list items, blank-line separated.
	Markdown string
}

// Extractor converts an HTML document into (title, markdown), removing
// navigation and other boilerplate before traversal so removed subtrees
// contribute no text to the output.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
