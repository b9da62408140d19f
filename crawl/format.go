package crawl

import "fmt"

// FormatSummary renders the end-of-run report: counts and output locations.
func FormatSummary(result *Result, pagesDir, indexPath string) string {
	return fmt.Sprintf("DONE. Pages: %d, Chunks: %d\nPages dir: %s\nIndex:     %s",
		result.PagesVisited, result.ChunksEmitted, pagesDir, indexPath)
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
