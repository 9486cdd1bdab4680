// Package domain defines the core types for hgurn.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Identifier: A raw input classified into one of three shapes
//   - URN: The canonical urn:hg:<nid>:<nss> form
//   - Namespace: Registry listing entry for one external vocabulary
//   - Concordance: The outcome of normalising one record in a batch run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
