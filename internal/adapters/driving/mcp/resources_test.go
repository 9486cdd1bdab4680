package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

func TestExtractURN(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "plain urn",
			uri:      "hgurn://concordance/urn:hg:tgn:7006952",
			expected: "urn:hg:tgn:7006952",
		},
		{
			name:     "percent encoded urn",
			uri:      "hgurn://concordance/urn%3Ahgid%3Abuses%2Fbus-1",
			expected: "urn:hgid:buses/bus-1",
		},
		{
			name:     "invalid prefix",
			uri:      "hgurn://namespaces",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractURN(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleNamespacesResource(t *testing.T) {
	ports := &Ports{URN: &mockURNService{namespaces: []domain.Namespace{
		{ID: "geonames", BaseURL: "http://sws.geonames.org/", Kind: domain.KindNumeric},
		{ID: "tgn", BaseURL: "http://vocab.getty.edu/tgn/", Kind: domain.KindHierarchical},
	}}}
	server, err := NewServer(ports)
	require.NoError(t, err)

	result, err := server.handleNamespacesResource(context.Background(), makeReadResourceRequest("hgurn://namespaces"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "geonames", got[0]["id"])
	assert.Equal(t, "numeric", got[0]["kind"])
	assert.Equal(t, "http://vocab.getty.edu/tgn/", got[1]["base_url"])
}

func TestServer_handleConcordanceResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns recorded identifiers", func(t *testing.T) {
		batch := &mockBatchService{lookup: []domain.Concordance{
			{RunID: "run-1", Identifier: "http://vocab.getty.edu/tgn/7006952", URN: "urn:hg:tgn:7006952"},
		}}
		server, err := NewServer(&Ports{URN: &mockURNService{}, Batch: batch})
		require.NoError(t, err)

		result, err := server.handleConcordanceResource(ctx,
			makeReadResourceRequest("hgurn://concordance/urn:hg:tgn:7006952"))
		require.NoError(t, err)
		assert.Equal(t, "urn:hg:tgn:7006952", batch.lastURN)
		assert.Contains(t, result.Contents[0].Text, "http://vocab.getty.edu/tgn/7006952")
	})

	t.Run("invalid uri returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{URN: &mockURNService{}, Batch: &mockBatchService{}})
		require.NoError(t, err)

		_, err = server.handleConcordanceResource(ctx, makeReadResourceRequest("hgurn://other"))
		assert.Error(t, err)
	})

	t.Run("lookup failure is wrapped", func(t *testing.T) {
		batch := &mockBatchService{err: errors.New("disk gone")}
		server, err := NewServer(&Ports{URN: &mockURNService{}, Batch: batch})
		require.NoError(t, err)

		_, err = server.handleConcordanceResource(ctx, makeReadResourceRequest("hgurn://concordance/urn:hg:x:1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")
	})
}
