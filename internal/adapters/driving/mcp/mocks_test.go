package mcp

import (
	"context"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
	"github.com/custodia-labs/hgurn/internal/core/ports/driving"
)

// mockURNService implements driving.URNService for testing.
type mockURNService struct {
	urn        string
	url        string
	namespaces []domain.Namespace
	err        error

	lastIdentifier string
	lastDataset    string
}

var _ driving.URNService = (*mockURNService)(nil)

func (m *mockURNService) Normalize(identifier, datasetScope string) (string, error) {
	m.lastIdentifier = identifier
	m.lastDataset = datasetScope
	return m.urn, m.err
}

func (m *mockURNService) URLToURN(url, _ string) (string, error) {
	m.lastIdentifier = url
	return m.urn, m.err
}

func (m *mockURNService) URNToURL(_ string) (string, error) {
	return m.url, m.err
}

func (m *mockURNService) RegisterNamespace(_ string, _ driven.NamespaceHandler) error {
	return m.err
}

func (m *mockURNService) RemoveNamespace(_ string) error {
	return m.err
}

func (m *mockURNService) Namespaces() []domain.Namespace {
	return m.namespaces
}

// mockBatchService implements driving.BatchService for testing.
type mockBatchService struct {
	summary *domain.BatchSummary
	lookup  []domain.Concordance
	err     error

	lastURN string
}

var _ driving.BatchService = (*mockBatchService)(nil)

func (m *mockBatchService) Run(
	_ context.Context,
	_ []domain.IdentifierRecord,
	_ driving.BatchOptions,
) (*domain.BatchSummary, error) {
	return m.summary, m.err
}

func (m *mockBatchService) Lookup(_ context.Context, urn string) ([]domain.Concordance, error) {
	m.lastURN = urn
	return m.lookup, m.err
}
