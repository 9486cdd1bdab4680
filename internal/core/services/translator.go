package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
	"github.com/custodia-labs/hgurn/internal/core/ports/driving"
	"github.com/custodia-labs/hgurn/internal/logger"
)

// Ensure Translator implements the interface.
var _ driving.URNService = (*Translator)(nil)

// Translator converts identifiers to canonical URNs and back using the
// namespaces of its registry.
type Translator struct {
	registry *NamespaceRegistry
}

// NewTranslator creates a translator over registry.
func NewTranslator(registry *NamespaceRegistry) *Translator {
	return &Translator{registry: registry}
}

// Registry returns the registry the translator reads.
func (t *Translator) Registry() *NamespaceRegistry {
	return t.registry
}

// Normalize turns identifier into a URN.
//
// URI-shaped input must be translated by a namespace; when none matches,
// ErrNoNamespaceForURL is returned and the input is never reinterpreted as
// a dataset/id or passed through. Scoped and bare ids become urn:hg: URNs
// when their dataset names a namespace, and urn:hgid: URNs otherwise.
func (t *Translator) Normalize(identifier, datasetScope string) (string, error) {
	id, err := domain.Classify(identifier)
	if err != nil {
		return "", err
	}
	logger.Debug("classified %q as %s", id.Raw, id.Shape)

	if id.Shape == domain.ShapeURI {
		urn, err := t.URLToURN(id.Raw, "")
		if err != nil {
			return "", err
		}
		return urn, nil
	}

	dataset := id.Dataset
	if id.Shape == domain.ShapeBareID {
		dataset = strings.TrimSpace(datasetScope)
		if dataset == "" {
			return "", fmt.Errorf("%w: bare identifier %q", domain.ErrMissingDatasetScope, id.Raw)
		}
	}

	canonical := domain.CanonicalDataset(dataset)
	if canonical == "" {
		return "", fmt.Errorf("%w: empty dataset in %q", domain.ErrInvalidIdentifier, id.Raw)
	}

	if _, ok := t.registry.Lookup(canonical); ok {
		logger.Debug("dataset %q is a registered namespace", canonical)
		return domain.NewURN(canonical, id.Local).String(), nil
	}
	return domain.HGID(canonical, id.Local), nil
}

// URLToURN translates url. A non-empty namespaceID selects the handler
// directly, without checking that it matches url.
func (t *Translator) URLToURN(url, namespaceID string) (string, error) {
	url = strings.TrimSpace(url)

	var (
		nid     string
		handler driven.NamespaceHandler
	)

	if namespaceID != "" {
		h, ok := t.registry.Lookup(namespaceID)
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrNamespaceNotFound, namespaceID)
		}
		nid, handler = strings.ToLower(strings.TrimSpace(namespaceID)), h
	} else {
		id, h, ok := t.registry.FindByURL(url)
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrNoNamespaceForURL, url)
		}
		nid, handler = id, h
	}
	logger.Debug("translating %q with namespace %s", url, nid)

	nss, err := handler.ToURNSuffix(url)
	if err != nil {
		return "", fmt.Errorf("namespace %s: %w", nid, err)
	}
	return domain.NewURN(nid, nss).String(), nil
}

// URNToURL translates urn:hg:<nid>:<nss> back to a URL.
func (t *Translator) URNToURL(urn string) (string, error) {
	u, err := domain.ParseURN(strings.TrimSpace(urn))
	if err != nil {
		return "", err
	}

	handler, ok := t.registry.Lookup(u.NID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNamespaceNotFound, u.NID)
	}

	url, err := handler.FromURNSuffix(u.NSS)
	if err != nil {
		return "", fmt.Errorf("namespace %s: %w", u.NID, err)
	}
	return url, nil
}

// RegisterNamespace adds a namespace handler to the registry.
func (t *Translator) RegisterNamespace(id string, handler driven.NamespaceHandler) error {
	return t.registry.Register(id, handler)
}

// RemoveNamespace deletes a namespace handler from the registry.
func (t *Translator) RemoveNamespace(id string) error {
	return t.registry.Remove(id)
}

// Namespaces lists the registered namespaces in scan order.
func (t *Translator) Namespaces() []domain.Namespace {
	return t.registry.Namespaces()
}
