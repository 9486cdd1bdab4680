package namespaces

import (
	"strings"
)

// Base supplies the default URL matching rule: a case-insensitive prefix
// comparison against the base URL. Handlers embed it and override Matches
// when their vocabulary needs more.
type Base struct {
	URL string
}

// BaseURL returns the canonical URL prefix.
func (b Base) BaseURL() string {
	return b.URL
}

// Matches reports whether url starts with the base URL, ignoring case.
func (b Base) Matches(url string) bool {
	return b.URL != "" && hasPrefixFold(url, b.URL)
}

// remainder returns the part of url after the base URL, or after the host
// when url does not start with the base URL. The second form serves callers
// that name the namespace explicitly for a URL on another mirror.
func (b Base) remainder(url string) string {
	if hasPrefixFold(url, b.URL) {
		return url[len(b.URL):]
	}
	return afterHost(url)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// afterHost strips scheme and authority: "http://h/a/b" becomes "/a/b".
func afterHost(url string) string {
	i := strings.Index(url, "://")
	if i < 0 {
		return url
	}
	rest := url[i+3:]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		return rest[j:]
	}
	return ""
}

// withSlash ensures s ends with a slash.
func withSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
