package namespaces

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// Ensure Numeric implements the interface.
var _ driven.NamespaceHandler = (*Numeric)(nil)

var (
	digits    = regexp.MustCompile(`\d+`)
	allDigits = regexp.MustCompile(`^\d+$`)
)

// Numeric handles vocabularies whose identifiers are plain numbers, such as
// GeoNames. The suffix is the first run of digits in the URL.
type Numeric struct {
	Base
	hosts []string
}

// NewNumeric creates a numeric handler. Extra hosts are accepted for
// matching in addition to the base URL, over http or https.
func NewNumeric(baseURL string, hosts ...string) *Numeric {
	lower := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if h = strings.TrimSpace(h); h != "" {
			lower = append(lower, strings.ToLower(h))
		}
	}
	return &Numeric{Base: Base{URL: withSlash(baseURL)}, hosts: lower}
}

// Kind returns KindNumeric.
func (n *Numeric) Kind() domain.NamespaceKind {
	return domain.KindNumeric
}

// Matches accepts the base URL prefix or any of the extra hosts.
func (n *Numeric) Matches(raw string) bool {
	if n.Base.Matches(raw) {
		return true
	}
	if len(n.hosts) == 0 {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range n.hosts {
		if host == h {
			return true
		}
	}
	return false
}

// ToURNSuffix returns the first run of digits after the host.
func (n *Numeric) ToURNSuffix(raw string) (string, error) {
	id := digits.FindString(n.remainder(raw))
	if id == "" {
		return "", fmt.Errorf("%w: no numeric id in %q", domain.ErrInvalidIdentifier, raw)
	}
	return id, nil
}

// FromURNSuffix appends the id and a trailing slash to the base URL.
func (n *Numeric) FromURNSuffix(nss string) (string, error) {
	if !allDigits.MatchString(nss) {
		return "", fmt.Errorf("%w: suffix %q is not numeric", domain.ErrInvalidURN, nss)
	}
	return n.URL + nss + "/", nil
}
