package namespaces

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// Ensure QueryParam implements the interface.
var _ driven.NamespaceHandler = (*QueryParam)(nil)

// QueryParam handles vocabularies that carry the identifier in a query
// parameter, such as the Meertens Kloeke codes.
type QueryParam struct {
	Base
	param string
}

// NewQueryParam creates a query-parameter handler.
func NewQueryParam(baseURL, param string) *QueryParam {
	return &QueryParam{Base: Base{URL: baseURL}, param: param}
}

// Kind returns KindQueryParam.
func (q *QueryParam) Kind() domain.NamespaceKind {
	return domain.KindQueryParam
}

// ToURNSuffix returns the parameter value.
func (q *QueryParam) ToURNSuffix(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidIdentifier, err)
	}

	v := rawParam(u.RawQuery, q.param)
	if v == "" {
		return "", fmt.Errorf("%w: no %s parameter in %q", domain.ErrInvalidIdentifier, q.param, raw)
	}
	return v, nil
}

// rawParam returns the first value of param in query, still percent-encoded,
// so that the suffix rebuilds the exact URL it came from.
func rawParam(query, param string) string {
	for _, pair := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil && k == param {
			return value
		}
	}
	return ""
}

// FromURNSuffix re-appends ?<param>=<value> to the base URL. The value is
// used as captured, already encoded.
func (q *QueryParam) FromURNSuffix(nss string) (string, error) {
	if nss == "" {
		return "", fmt.Errorf("%w: empty suffix", domain.ErrInvalidURN)
	}
	return q.URL + "?" + url.QueryEscape(q.param) + "=" + nss, nil
}
