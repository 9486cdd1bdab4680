package driven

// NamespaceHandler knows one external vocabulary's URL shape and converts
// between its URLs and opaque URN suffixes.
//
// For every canonical URL u of the vocabulary,
// FromURNSuffix(ToURNSuffix(u)) must return u.
type NamespaceHandler interface {
	// BaseURL returns the canonical URL prefix of the vocabulary.
	BaseURL() string

	// Matches reports whether url belongs to this vocabulary.
	// Implementations embedding namespaces.Base get a case-insensitive
	// prefix comparison against BaseURL.
	Matches(url string) bool

	// ToURNSuffix extracts the namespace-specific suffix from a URL.
	ToURNSuffix(url string) (string, error)

	// FromURNSuffix rebuilds a dereferenceable URL from a suffix.
	FromURNSuffix(nss string) (string, error)
}

// ContractChecker is implemented by handlers that can be constructed with
// parts missing, such as function-backed handlers. The registry calls it
// before accepting the handler.
type ContractChecker interface {
	// CheckContract returns domain.ErrInvalidHandlerContract (wrapped)
	// when a translation function is missing.
	CheckContract() error
}
