package driving

import (
	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// URNService translates identifiers to canonical URNs and back.
// Optional arguments are passed as empty strings.
type URNService interface {
	// Normalize turns a URL, dataset/id or bare id into a URN.
	// datasetScope is only used for bare ids.
	Normalize(identifier, datasetScope string) (string, error)

	// URLToURN translates a URL. With a namespace id the named handler is
	// used directly; otherwise the registry is scanned.
	URLToURN(url, namespaceID string) (string, error)

	// URNToURL translates urn:hg:<nid>:<nss> back to a URL.
	URNToURL(urn string) (string, error)

	// RegisterNamespace adds a namespace handler.
	RegisterNamespace(id string, handler driven.NamespaceHandler) error

	// RemoveNamespace deletes a namespace handler.
	RemoveNamespace(id string) error

	// Namespaces lists registered namespaces in scan order.
	Namespaces() []domain.Namespace
}
