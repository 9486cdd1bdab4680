package namespaces

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// Ensure Hierarchical implements the interface.
var _ driven.NamespaceHandler = (*Hierarchical)(nil)

// Hierarchical handles vocabularies with an optional literal sub-path before
// a numeric id, such as Getty TGN: tgn/7006952 and tgn/term/352466.
// Captured parts are joined with ":" in the suffix.
type Hierarchical struct {
	Base
	segment string
	pattern *regexp.Regexp
}

// NewHierarchical creates a hierarchical handler. segment may be empty.
func NewHierarchical(baseURL, segment string) *Hierarchical {
	segment = strings.Trim(segment, "/ ")

	expr := `(\d+)`
	if segment != "" {
		expr = `(?:(?:^|/)((?i:` + regexp.QuoteMeta(segment) + `))/)?(\d+)`
	}

	return &Hierarchical{
		Base:    Base{URL: withSlash(baseURL)},
		segment: segment,
		pattern: regexp.MustCompile(expr),
	}
}

// Kind returns KindHierarchical.
func (h *Hierarchical) Kind() domain.NamespaceKind {
	return domain.KindHierarchical
}

// ToURNSuffix captures the optional segment and the id.
func (h *Hierarchical) ToURNSuffix(raw string) (string, error) {
	m := h.pattern.FindStringSubmatch(h.remainder(raw))
	if m == nil {
		return "", fmt.Errorf("%w: no numeric id in %q", domain.ErrInvalidIdentifier, raw)
	}

	id := m[len(m)-1]
	if len(m) == 3 && m[1] != "" {
		return h.segment + ":" + id, nil
	}
	return id, nil
}

// FromURNSuffix turns the ":"-separated parts back into a path.
func (h *Hierarchical) FromURNSuffix(nss string) (string, error) {
	parts := strings.Split(nss, ":")
	for _, p := range parts {
		if p == "" {
			return "", fmt.Errorf("%w: empty part in suffix %q", domain.ErrInvalidURN, nss)
		}
	}
	return h.URL + strings.Join(parts, "/"), nil
}
