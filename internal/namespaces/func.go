package namespaces

import (
	"fmt"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// Ensure Func implements the interfaces.
var (
	_ driven.NamespaceHandler = (*Func)(nil)
	_ driven.ContractChecker  = (*Func)(nil)
)

// Func is a handler assembled from plain functions. Match is optional and
// defaults to the base URL prefix rule; ToSuffix and FromSuffix are required.
type Func struct {
	URL        string
	Match      func(url string) bool
	ToSuffix   func(url string) (string, error)
	FromSuffix func(nss string) (string, error)
}

// BaseURL returns the canonical URL prefix.
func (f *Func) BaseURL() string {
	return f.URL
}

// Matches applies Match, or the default prefix rule when Match is nil.
func (f *Func) Matches(url string) bool {
	if f.Match != nil {
		return f.Match(url)
	}
	return Base{URL: f.URL}.Matches(url)
}

// ToURNSuffix applies ToSuffix.
func (f *Func) ToURNSuffix(url string) (string, error) {
	if f.ToSuffix == nil {
		return "", fmt.Errorf("%w: missing url to urn translation", domain.ErrInvalidHandlerContract)
	}
	return f.ToSuffix(url)
}

// FromURNSuffix applies FromSuffix.
func (f *Func) FromURNSuffix(nss string) (string, error) {
	if f.FromSuffix == nil {
		return "", fmt.Errorf("%w: missing urn to url translation", domain.ErrInvalidHandlerContract)
	}
	return f.FromSuffix(nss)
}

// CheckContract reports a missing translation function.
func (f *Func) CheckContract() error {
	switch {
	case f.ToSuffix == nil:
		return fmt.Errorf("%w: missing url to urn translation", domain.ErrInvalidHandlerContract)
	case f.FromSuffix == nil:
		return fmt.Errorf("%w: missing urn to url translation", domain.ErrInvalidHandlerContract)
	}
	return nil
}
