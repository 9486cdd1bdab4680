package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driving"
)

// NormalizeInput is the input schema for the normalize tool.
type NormalizeInput struct {
	Identifier string `json:"identifier" jsonschema:"a URL, dataset/id or bare id"`
	Dataset    string `json:"dataset,omitempty" jsonschema:"dataset scope for bare ids"`
}

// URLToURNInput is the input schema for the url_to_urn tool.
type URLToURNInput struct {
	URL       string `json:"url" jsonschema:"the URL to translate"`
	Namespace string `json:"namespace,omitempty" jsonschema:"namespace id to use instead of matching the URL"`
}

// URNToURLInput is the input schema for the urn_to_url tool.
type URNToURLInput struct {
	URN string `json:"urn" jsonschema:"a URN of the form urn:hg:<namespace>:<id>"`
}

// BatchInput is the input schema for the normalize_batch tool.
type BatchInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"identifiers to normalise"`
	Dataset     string   `json:"dataset,omitempty" jsonschema:"dataset scope for bare ids"`
}

// URNOutput is the output of the translation tools.
type URNOutput struct {
	URN string `json:"urn,omitempty"`
	URL string `json:"url,omitempty"`
}

// BatchResult is the outcome for one identifier of a batch.
type BatchResult struct {
	Identifier string `json:"id"`
	URN        string `json:"urn,omitempty"`
	URL        string `json:"url,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BatchOutput is the output schema for the normalize_batch tool.
type BatchOutput struct {
	RunID   string        `json:"run_id"`
	Results []BatchResult `json:"results"`
	Failed  int           `json:"failed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize",
		Description: "Normalise a URL, dataset/id or bare id to a canonical URN",
	}, s.handleNormalize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "url_to_urn",
		Description: "Translate a vocabulary URL to its canonical URN",
	}, s.handleURLToURN)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "urn_to_url",
		Description: "Translate a canonical URN back to a dereferenceable URL",
	}, s.handleURNToURL)

	if s.ports.Batch != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "normalize_batch",
			Description: "Normalise many identifiers at once; failures are reported per identifier",
		}, s.handleBatch)
	}
}

func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizeInput,
) (*mcp.CallToolResult, URNOutput, error) {
	urn, err := s.ports.URN.Normalize(input.Identifier, input.Dataset)
	if err != nil {
		return nil, URNOutput{}, err
	}
	return nil, s.withURL(urn), nil
}

func (s *Server) handleURLToURN(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input URLToURNInput,
) (*mcp.CallToolResult, URNOutput, error) {
	urn, err := s.ports.URN.URLToURN(input.URL, input.Namespace)
	if err != nil {
		return nil, URNOutput{}, err
	}
	return nil, URNOutput{URN: urn}, nil
}

func (s *Server) handleURNToURL(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input URNToURLInput,
) (*mcp.CallToolResult, URNOutput, error) {
	url, err := s.ports.URN.URNToURL(input.URN)
	if err != nil {
		return nil, URNOutput{}, err
	}
	return nil, URNOutput{URN: input.URN, URL: url}, nil
}

func (s *Server) handleBatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BatchInput,
) (*mcp.CallToolResult, BatchOutput, error) {
	records := make([]domain.IdentifierRecord, len(input.Identifiers))
	for i, id := range input.Identifiers {
		records[i] = domain.IdentifierRecord{Identifier: id}
	}

	summary, err := s.ports.Batch.Run(ctx, records, driving.BatchOptions{DefaultDataset: input.Dataset})
	if err != nil {
		return nil, BatchOutput{}, err
	}
	out := BatchOutput{
		RunID:   summary.RunID,
		Results: make([]BatchResult, len(summary.Results)),
		Failed:  summary.Failed,
	}
	for i, c := range summary.Results {
		out.Results[i] = BatchResult{Identifier: c.Identifier, URN: c.URN, URL: c.URL, Error: c.Error}
	}
	return nil, out, nil
}

// withURL adds the URL of urn when it has one.
func (s *Server) withURL(urn string) URNOutput {
	out := URNOutput{URN: urn}
	if domain.IsHGURN(urn) {
		if url, err := s.ports.URN.URNToURL(urn); err == nil {
			out.URL = url
		}
	}
	return out
}
