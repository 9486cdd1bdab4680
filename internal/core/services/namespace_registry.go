package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
	"github.com/custodia-labs/hgurn/internal/namespaces"
)

// NamespaceRegistry maps namespace ids to handlers in insertion order.
//
// FindByURL is a first-match scan in registration order, so when one
// namespace's base URL is a prefix of another's, whichever was registered
// first wins. Register the more specific namespace first.
//
// The registry holds no lock. Hosts sharing one across goroutines must
// serialise Register, Remove and Clear against readers.
type NamespaceRegistry struct {
	order    []string
	handlers map[string]driven.NamespaceHandler
}

// NewNamespaceRegistry creates an empty registry.
func NewNamespaceRegistry() *NamespaceRegistry {
	return &NamespaceRegistry{
		handlers: make(map[string]driven.NamespaceHandler),
	}
}

// NewDefaultNamespaceRegistry creates a registry holding the built-in namespaces.
func NewDefaultNamespaceRegistry() (*NamespaceRegistry, error) {
	r := NewNamespaceRegistry()
	if err := r.RegisterDefinitions(namespaces.Builtin()); err != nil {
		return nil, fmt.Errorf("registering built-in namespaces: %w", err)
	}
	return r, nil
}

// RegisterDefinitions builds and registers handlers for each definition, in order.
// It stops at the first failure; earlier definitions stay registered.
func (r *NamespaceRegistry) RegisterDefinitions(defs []domain.NamespaceDefinition) error {
	for _, def := range defs {
		h, err := namespaces.FromDefinition(def)
		if err != nil {
			return err
		}
		if err := r.Register(def.ID, h); err != nil {
			return err
		}
	}
	return nil
}

// Register stores handler under the lowercased id.
func (r *NamespaceRegistry) Register(id string, handler driven.NamespaceHandler) error {
	key, err := normaliseNamespaceID(id)
	if err != nil {
		return err
	}

	if _, exists := r.handlers[key]; exists {
		return fmt.Errorf("%w: %s", domain.ErrNamespaceAlreadyExists, key)
	}

	if err := checkContract(key, handler); err != nil {
		return err
	}

	r.handlers[key] = handler
	r.order = append(r.order, key)
	return nil
}

// Remove deletes the namespace with the given id.
func (r *NamespaceRegistry) Remove(id string) error {
	key := strings.ToLower(strings.TrimSpace(id))
	if _, ok := r.handlers[key]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNamespaceNotFound, id)
	}

	delete(r.handlers, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lookup returns the handler registered under id. No scanning.
func (r *NamespaceRegistry) Lookup(id string) (driven.NamespaceHandler, bool) {
	h, ok := r.handlers[strings.ToLower(strings.TrimSpace(id))]
	return h, ok
}

// FindByURL returns the first namespace, in registration order, whose
// handler matches url.
func (r *NamespaceRegistry) FindByURL(url string) (string, driven.NamespaceHandler, bool) {
	for _, id := range r.order {
		h := r.handlers[id]
		if h.Matches(url) {
			return id, h, true
		}
	}
	return "", nil, false
}

// Namespaces lists the registered namespaces in registration order.
func (r *NamespaceRegistry) Namespaces() []domain.Namespace {
	result := make([]domain.Namespace, 0, len(r.order))
	for _, id := range r.order {
		h := r.handlers[id]
		result = append(result, domain.Namespace{
			ID:      id,
			BaseURL: h.BaseURL(),
			Kind:    namespaces.KindOf(h),
		})
	}
	return result
}

// Len returns the number of registered namespaces.
func (r *NamespaceRegistry) Len() int {
	return len(r.order)
}

// Clear removes every namespace.
func (r *NamespaceRegistry) Clear() {
	r.order = nil
	r.handlers = make(map[string]driven.NamespaceHandler)
}

// normaliseNamespaceID lowercases id and rejects ids that cannot appear as
// the nid of urn:hg:<nid>:<nss>.
func normaliseNamespaceID(id string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		return "", fmt.Errorf("%w: empty id", domain.ErrInvalidNamespaceID)
	}
	if strings.ContainsAny(key, ": \t\r\n/") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidNamespaceID, id)
	}
	return key, nil
}

func checkContract(id string, handler driven.NamespaceHandler) error {
	if isNil(handler) {
		return fmt.Errorf("%w: %s: nil handler", domain.ErrInvalidHandlerContract, id)
	}
	if handler.BaseURL() == "" {
		return fmt.Errorf("%w: %s: no base url", domain.ErrInvalidHandlerContract, id)
	}
	if c, ok := handler.(driven.ContractChecker); ok {
		if err := c.CheckContract(); err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
	}
	return nil
}

// isNil reports whether handler is nil or a nil pointer behind the interface.
func isNil(handler driven.NamespaceHandler) bool {
	if handler == nil {
		return true
	}
	v := reflect.ValueOf(handler)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Slice, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
