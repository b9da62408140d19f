// Package goquery provides DOM-based implementations of docrawl.Extractor
// and docrawl.LinkExtractor on top of the goquery CSS selection API.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sennevb/docrawl"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ docrawl.Extractor = (*Extractor)(nil)

// DefaultRemovalKeywords are the class-attribute substrings that mark an
// element as boilerplate. The set is tuned to one site's markup and is
// configurable via WithRemovalKeywords.
var DefaultRemovalKeywords = []string{"toc", "arrangement", "sidebar", "menu"}

// DefaultListSkipKeywords mark list items that belong to navigation rather
// than content.
var DefaultListSkipKeywords = []string{"toc", "arrangement", "nav", "menu", "sidebar"}

// boilerplateTags are removed by tag identity regardless of attributes.
const boilerplateTags = "nav, button, aside, header, footer, [role=navigation]"

// Extractor converts an HTML document into a constrained markdown subset:
// headings (##/###), paragraphs, fenced code blocks and list items, emitted
// in document order after boilerplate removal.
type Extractor struct {
	removalKeywords  []string
	listSkipKeywords []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRemovalKeywords overrides the class-substring keywords used for
// boilerplate removal.
func WithRemovalKeywords(keywords ...string) Option {
	return func(e *Extractor) {
		e.removalKeywords = keywords
	}
}

// WithListSkipKeywords overrides the class-substring keywords used to skip
// navigation list items.
func WithListSkipKeywords(keywords ...string) Option {
	return func(e *Extractor) {
		e.listSkipKeywords = keywords
	}
}

// NewExtractor creates a new Extractor with the default keyword sets.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		removalKeywords:  DefaultRemovalKeywords,
		listSkipKeywords: DefaultListSkipKeywords,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the page title and markdown.
func (e *Extractor) Extract(rawHTML string) (*docrawl.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docrawl.Errorf(docrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	title := e.title(doc)

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		root = doc.Selection
	}

	// Boilerplate subtrees are detached before traversal so they contribute
	// no text anywhere in the output.
	e.removeBoilerplate(root)

	parts := []string{"# " + title}
	root.Find("*").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h2":
			if txt := flattenText(sel); txt != "" {
				parts = append(parts, "## "+txt)
			}
		case "h3":
			if txt := flattenText(sel); txt != "" {
				parts = append(parts, "### "+txt)
			}
		case "p":
			if txt := flattenText(sel); txt != "" {
				parts = append(parts, txt)
			}
		case "pre":
			parts = append(parts, "```\n"+rawText(sel)+"\n```")
		case "li":
			if e.isNavigationListItem(sel) {
				return
			}
			if txt := flattenText(sel); txt != "" {
				parts = append(parts, "- "+txt)
			}
		}
	})

	return &docrawl.ExtractResult{
		Title:    title,
		Markdown: strings.TrimSpace(strings.Join(parts, "\n\n")),
	}, nil
}

// title resolves the page title: first h1 inside a main/article region, then
// any h1, then the document title element, then "Untitled".
func (e *Extractor) title(doc *goquery.Document) string {
	for _, selector := range []string{"main h1, article h1", "h1", "title"} {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if txt := flattenText(sel); txt != "" {
			return txt
		}
	}
	return "Untitled"
}

// removeBoilerplate detaches navigation and UI chrome from the content
// region: known tags plus any element whose class attribute contains one of
// the removal keywords (case-insensitive).
func (e *Extractor) removeBoilerplate(root *goquery.Selection) {
	root.Find(boilerplateTags).Remove()

	root.Find("*").Each(func(_ int, sel *goquery.Selection) {
		class, ok := sel.Attr("class")
		if !ok {
			return
		}
		lower := strings.ToLower(class)
		for _, kw := range e.removalKeywords {
			if strings.Contains(lower, kw) {
				sel.Remove()
				return
			}
		}
	})
}

// isNavigationListItem reports whether a list item is tagged with a
// navigation-like class and should be skipped.
func (e *Extractor) isNavigationListItem(sel *goquery.Selection) bool {
	class, ok := sel.Attr("class")
	if !ok {
		return false
	}
	lower := strings.ToLower(class)
	for _, kw := range e.listSkipKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// textContent concatenates all text nodes under n, preserving whitespace.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// textSegments collects the trimmed, non-empty text nodes under n in
// document order. Keeping segments separate preserves the word boundary
// between adjacent text nodes, so inline markup like <code> or <b> does not
// glue words together.
func textSegments(n *html.Node) []string {
	var segs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				segs = append(segs, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return segs
}

// flattenText returns the element's text with text-node segments joined by a
// single space and internal whitespace collapsed.
func flattenText(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	joined := strings.Join(textSegments(sel.Nodes[0]), " ")
	return strings.Join(strings.Fields(joined), " ")
}

// rawText returns the element's text verbatim, preserving internal
// whitespace. Used for preformatted blocks.
func rawText(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	return textContent(sel.Nodes[0])
}
