package namespaces

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// Ensure ResourcePath implements the interface.
var _ driven.NamespaceHandler = (*ResourcePath)(nil)

// ResourcePath handles vocabularies whose identifier is everything after a
// path marker, such as DBpedia's resource/ and page/. URLs are rebuilt with
// the canonical marker, so only canonical URLs round-trip unchanged.
type ResourcePath struct {
	Base
	root    string
	markers []string
}

// NewResourcePath creates a resource-path handler. The canonical marker is
// used when rebuilding URLs; it is also accepted when matching.
func NewResourcePath(root, canonical string, markers ...string) *ResourcePath {
	root = withSlash(root)
	canonical = withSlash(strings.Trim(canonical, "/ "))

	all := []string{canonical}
	for _, m := range markers {
		m = withSlash(strings.Trim(m, "/ "))
		if m != "" && m != canonical {
			all = append(all, m)
		}
	}

	return &ResourcePath{
		Base:    Base{URL: root + canonical},
		root:    root,
		markers: all,
	}
}

// Kind returns KindResourcePath.
func (r *ResourcePath) Kind() domain.NamespaceKind {
	return domain.KindResourcePath
}

// Root returns the URL the markers follow.
func (r *ResourcePath) Root() string {
	return r.root
}

// Matches accepts the root followed by any marker, ignoring case.
func (r *ResourcePath) Matches(raw string) bool {
	for _, m := range r.markers {
		if hasPrefixFold(raw, r.root+m) {
			return true
		}
	}
	return false
}

// ToURNSuffix returns everything after the marker.
func (r *ResourcePath) ToURNSuffix(raw string) (string, error) {
	for _, m := range r.markers {
		if hasPrefixFold(raw, r.root+m) {
			return nonEmpty(raw[len(r.root+m):], raw)
		}
	}

	path := afterHost(raw)
	for _, m := range r.markers {
		if i := strings.Index(path, "/"+m); i >= 0 {
			return nonEmpty(path[i+1+len(m):], raw)
		}
	}
	return "", fmt.Errorf("%w: no resource path in %q", domain.ErrInvalidIdentifier, raw)
}

// FromURNSuffix re-inserts the canonical marker.
func (r *ResourcePath) FromURNSuffix(nss string) (string, error) {
	if nss == "" {
		return "", fmt.Errorf("%w: empty suffix", domain.ErrInvalidURN)
	}
	return r.URL + nss, nil
}

func nonEmpty(nss, raw string) (string, error) {
	if nss == "" {
		return "", fmt.Errorf("%w: empty resource name in %q", domain.ErrInvalidIdentifier, raw)
	}
	return nss, nil
}
