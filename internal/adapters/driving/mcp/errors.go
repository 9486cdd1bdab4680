// Package mcp provides an MCP (Model Context Protocol) server adapter for hgurn.
// It lets AI assistants normalise identifiers and resolve URNs while they
// work with records that reference external vocabularies.
package mcp

import "errors"

// ErrMissingURNService is returned when the URN service is not provided.
var ErrMissingURNService = errors.New("mcp: urn service is required")
