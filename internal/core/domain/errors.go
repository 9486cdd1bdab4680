package domain

import "errors"

// Domain errors represent translation failures reported to the caller.
// None of them are retried. Call sites wrap them with the offending value.
var (
	// ErrInvalidIdentifier indicates the input matches none of the identifier grammars.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrMissingDatasetScope indicates a bare identifier was given without a dataset scope.
	ErrMissingDatasetScope = errors.New("missing dataset scope")

	// ErrNoNamespaceForURL indicates a URI-shaped input matched no registered namespace.
	ErrNoNamespaceForURL = errors.New("no namespace for url")

	// ErrNamespaceNotFound indicates an explicit namespace id is not registered.
	ErrNamespaceNotFound = errors.New("namespace not found")

	// ErrNamespaceAlreadyExists indicates a namespace id is already registered.
	ErrNamespaceAlreadyExists = errors.New("namespace already exists")

	// ErrInvalidNamespaceID indicates an empty or malformed namespace id.
	ErrInvalidNamespaceID = errors.New("invalid namespace id")

	// ErrInvalidHandlerContract indicates a handler without a base URL
	// or without one of its translation functions.
	ErrInvalidHandlerContract = errors.New("invalid namespace handler")

	// ErrInvalidURN indicates the input does not match urn:hg:<nid>:<nss>.
	ErrInvalidURN = errors.New("invalid urn")

	// ErrConcordanceUnavailable indicates no concordance store is configured.
	// Batch runs still work but cannot be recorded or looked up.
	ErrConcordanceUnavailable = errors.New("concordance store unavailable")
)
