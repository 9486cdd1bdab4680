package namespaces

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// FromDefinition builds the handler a definition describes.
// Definitions missing the fields their kind needs are rejected with
// domain.ErrInvalidHandlerContract.
func FromDefinition(def domain.NamespaceDefinition) (driven.NamespaceHandler, error) {
	base := strings.TrimSpace(def.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("%w: namespace %q has no base_url", domain.ErrInvalidHandlerContract, def.ID)
	}

	switch def.Kind {
	case domain.KindNumeric:
		return NewNumeric(base, def.Hosts...), nil

	case domain.KindHierarchical:
		return NewHierarchical(base, def.Segment), nil

	case domain.KindResourcePath:
		if len(def.Markers) == 0 && def.Canonical == "" {
			return nil, fmt.Errorf("%w: namespace %q needs markers", domain.ErrInvalidHandlerContract, def.ID)
		}
		canonical := def.Canonical
		if canonical == "" {
			canonical = def.Markers[0]
		}
		return NewResourcePath(base, canonical, def.Markers...), nil

	case domain.KindQueryParam:
		if def.Param == "" {
			return nil, fmt.Errorf("%w: namespace %q needs param", domain.ErrInvalidHandlerContract, def.ID)
		}
		return NewQueryParam(base, def.Param), nil

	default:
		return nil, fmt.Errorf("%w: namespace %q has unknown kind %q",
			domain.ErrInvalidHandlerContract, def.ID, def.Kind)
	}
}

// KindOf returns the rule family of a handler, KindCustom for handlers
// that do not report one.
func KindOf(h driven.NamespaceHandler) domain.NamespaceKind {
	if k, ok := h.(interface{ Kind() domain.NamespaceKind }); ok {
		return k.Kind()
	}
	return domain.KindCustom
}
