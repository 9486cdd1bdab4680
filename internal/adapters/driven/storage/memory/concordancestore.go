package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// Ensure ConcordanceStore implements the interface.
var _ driven.ConcordanceStore = (*ConcordanceStore)(nil)

// ConcordanceStore is an in-memory implementation of driven.ConcordanceStore.
type ConcordanceStore struct {
	mu      sync.RWMutex
	records []domain.Concordance
}

// NewConcordanceStore creates a new in-memory concordance store.
func NewConcordanceStore() *ConcordanceStore {
	return &ConcordanceStore{}
}

// Save stores the records of a batch run.
func (s *ConcordanceStore) Save(_ context.Context, records []domain.Concordance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

// FindByURN returns every stored record that normalised to urn, oldest first.
func (s *ConcordanceStore) FindByURN(_ context.Context, urn string) ([]domain.Concordance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Concordance, 0)
	for _, c := range s.records {
		if c.URN == urn {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// ListByRun returns the records of one run in input order.
func (s *ConcordanceStore) ListByRun(_ context.Context, runID string) ([]domain.Concordance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Concordance, 0)
	for _, c := range s.records {
		if c.RunID == runID {
			result = append(result, c)
		}
	}
	return result, nil
}
