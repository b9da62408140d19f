package docrawl

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Default chunking parameters.
const (
	DefaultMaxChars = 2500
	DefaultMinWords = 30
)

// Chunk is a bounded-size markdown fragment of one page, destined for a
// retrieval index. The ID is derived from (url, ordinal-within-page) so
// re-crawling an unchanged page reproduces identical IDs, which lets a
// downstream index do idempotent upserts.
type Chunk struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Heading  string `json:"heading"`
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "chunk ID required")
	}
	if c.URL == "" {
		return Errorf(EINVALID, "chunk URL required")
	}
	if c.Markdown == "" {
		return Errorf(EINVALID, "chunk markdown required")
	}
	return nil
}

// ChunkWriter appends chunk records to an index in emission order.
type ChunkWriter interface {
	WriteChunk(ctx context.Context, chunk *Chunk) error
}

// MultiChunkWriter fans a chunk out to several writers in order.
type MultiChunkWriter []ChunkWriter

// WriteChunk writes the chunk to every writer, stopping at the first error.
func (m MultiChunkWriter) WriteChunk(ctx context.Context, chunk *Chunk) error {
	for _, w := range m {
		if err := w.WriteChunk(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}

// ChunkOptions configures ChunkDocument. Zero values select the defaults.
type ChunkOptions struct {
	// MaxChars is the character ceiling per chunk.
	MaxChars int

	// MinWords is the word count below which a section is buffered with its
	// neighbors instead of emitted on its own. The comparison is strictly
	// less-than: a section of exactly MinWords words is never buffered.
	MinWords int
}

func (o ChunkOptions) withDefaults() ChunkOptions {
	if o.MaxChars <= 0 {
		o.MaxChars = DefaultMaxChars
	}
	if o.MinWords <= 0 {
		o.MinWords = DefaultMinWords
	}
	return o
}

// ShortHash returns a 16-character hex digest of s. It is the identity
// function for pages (hash of the canonical URL) and chunks (hash of
// url|ordinal).
func ShortHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// ChunkDocument splits a page's markdown into chunks. Sections are cut
// before each ## or ### heading line so headings stay attached to the text
// they introduce. Sections shorter than MinWords are buffered and flushed
// together once the buffer reaches twice MinWords; sections longer than
// MaxChars are split at word boundaries, each piece inheriting the section
// heading. The function is deterministic: identical inputs reproduce the
// same chunks and IDs.
func ChunkDocument(markdown, title, url string, opts ChunkOptions) []Chunk {
	opts = opts.withDefaults()

	var chunks []Chunk
	ordinal := 0
	emit := func(heading, body string) {
		chunks = append(chunks, Chunk{
			ID:       ShortHash(fmt.Sprintf("%s|%d", url, ordinal)),
			Title:    title,
			Heading:  heading,
			URL:      url,
			Markdown: body,
		})
		ordinal++
	}

	var pending []string
	flushPending := func() {
		if len(pending) == 0 {
			return
		}
		combined := strings.TrimSpace(strings.Join(pending, "\n\n"))
		emit(leadingHeading(pending[0]), combined)
		pending = pending[:0]
	}

	for _, sec := range splitSections(markdown) {
		sec = strings.TrimSpace(sec)
		if sec == "" {
			continue
		}

		heading := leadingHeading(sec)
		if wordCount(sec) < opts.MinWords {
			pending = append(pending, sec)
			if wordCount(strings.Join(pending, "\n\n")) >= 2*opts.MinWords {
				flushPending()
			}
			continue
		}

		flushPending()

		if len(sec) <= opts.MaxChars {
			emit(heading, sec)
			continue
		}

		// Oversized section: accumulate words until adding the next one
		// would exceed the ceiling, counting one separating space per word.
		var cur []string
		size := 0
		for _, word := range strings.Fields(sec) {
			wordLen := len(word) + 1
			if size+wordLen > opts.MaxChars && len(cur) > 0 {
				emit(heading, strings.Join(cur, " "))
				cur = cur[:0]
				size = 0
			}
			cur = append(cur, word)
			size += wordLen
		}
		if len(cur) > 0 {
			emit(heading, strings.Join(cur, " "))
		}
	}

	flushPending()

	return chunks
}

// splitSections splits markdown before each ## or ### heading line. A
// document with no headings is a single section.
func splitSections(markdown string) []string {
	var sections []string
	var cur strings.Builder

	for _, line := range strings.SplitAfter(markdown, "\n") {
		if isHeadingLine(strings.TrimSuffix(line, "\n")) && cur.Len() > 0 {
			sections = append(sections, cur.String())
			cur.Reset()
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		sections = append(sections, cur.String())
	}

	if len(sections) == 0 {
		return []string{markdown}
	}
	return sections
}

// isHeadingLine reports whether a line opens a level-2 or level-3 markdown
// heading.
func isHeadingLine(line string) bool {
	hashes := 0
	for hashes < len(line) && line[hashes] == '#' {
		hashes++
	}
	if hashes != 2 && hashes != 3 {
		return false
	}
	return hashes == len(line) || line[hashes] == ' ' || line[hashes] == '\t'
}

// leadingHeading returns the heading label of a section: the first line with
// its #-markers stripped, or "" if the section does not start with one.
func leadingHeading(sec string) string {
	line, _, _ := strings.Cut(sec, "\n")
	if !isHeadingLine(line) {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(line, "# "))
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
