package docrawl

import (
	"net/url"
	"regexp"
	"strings"
)

var multiSlashRe = regexp.MustCompile(`/{2,}`)

// Canonicalize reduces a URL to its canonical form used as the identity key
// for deduplication and scope checks: query and fragment are discarded,
// runs of consecutive slashes in the path collapse to one, and a trailing
// slash is stripped unless the path is the root "/".
//
// Canonicalize is idempotent. Empty and unparseable input passes through
// unchanged; callers are expected to filter degenerate values.
func Canonicalize(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := multiSlashRe.ReplaceAllString(u.Path, "/")
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}

	canonical := url.URL{
		Scheme: u.Scheme,
		Opaque: u.Opaque,
		User:   u.User,
		Host:   u.Host,
		Path:   path,
	}
	return canonical.String()
}

// InScope reports whether url belongs to the manual rooted at root: it must
// equal the canonical root exactly or be path-prefixed by it. The prefix
// check requires a "/" boundary so sibling paths like /manual-extra are not
// mistaken for pages under /manual.
func InScope(rawURL, root string) bool {
	u := Canonicalize(rawURL)
	r := Canonicalize(root)
	return u == r || strings.HasPrefix(u, r+"/")
}
