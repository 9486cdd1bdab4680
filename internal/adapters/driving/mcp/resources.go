package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for hgurn resources.
	uriScheme = "hgurn://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "namespaces",
		Name:        "namespaces",
		Description: "Registered namespaces in URL matching order",
		MIMEType:    "application/json",
	}, s.handleNamespacesResource)

	if s.ports.Batch != nil {
		s.server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: uriScheme + "concordance/{urn}",
			Name:        "concordance",
			Description: "Recorded source identifiers that normalised to a URN",
			MIMEType:    "application/json",
		}, s.handleConcordanceResource)
	}
}

// handleNamespacesResource lists the registered namespaces.
func (s *Server) handleNamespacesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type namespaceInfo struct {
		ID      string `json:"id"`
		BaseURL string `json:"base_url"`
		Kind    string `json:"kind"`
	}

	namespaces := s.ports.URN.Namespaces()
	infos := make([]namespaceInfo, len(namespaces))
	for i, ns := range namespaces {
		infos[i] = namespaceInfo{ID: ns.ID, BaseURL: ns.BaseURL, Kind: string(ns.Kind)}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleConcordanceResource returns recorded identifiers for a URN.
func (s *Server) handleConcordanceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	urn := extractURN(req.Params.URI)
	if urn == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Batch.Lookup(ctx, urn)
	if err != nil {
		return nil, fmt.Errorf("looking up concordance: %w", err)
	}
	return jsonResource(req.Params.URI, records)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractURN extracts the URN from hgurn://concordance/{urn}.
// The URN may arrive percent-encoded.
func extractURN(uri string) string {
	const prefix = uriScheme + "concordance/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	raw := strings.TrimPrefix(uri, prefix)
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	return raw
}
