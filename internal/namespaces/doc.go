// Package namespaces provides implementations of the NamespaceHandler
// interface for external vocabularies. Each handler knows how to recognise
// a vocabulary's URLs and how to convert them to and from URN suffixes.
//
// Four rule families cover the built-in vocabularies:
//
//   - Numeric: the first run of digits (GeoNames)
//   - Hierarchical: an optional literal segment plus a numeric id (Getty TGN)
//   - ResourcePath: everything after a path marker (DBpedia, Wikidata, Pleiades)
//   - QueryParam: the value of a query parameter (Kloeke codes)
//
// Handlers are built from domain.NamespaceDefinition values, so namespaces
// declared in configuration files go through the same constructor as the
// built-ins. Func adapts plain functions for programmatic registration.
package namespaces
