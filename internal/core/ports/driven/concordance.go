package driven

import (
	"context"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

// ConcordanceStore persists the identifier to URN mappings produced by batch runs.
type ConcordanceStore interface {
	// Save stores the records of a batch run.
	Save(ctx context.Context, records []domain.Concordance) error

	// FindByURN returns every stored record that normalised to urn,
	// oldest first.
	FindByURN(ctx context.Context, urn string) ([]domain.Concordance, error)

	// ListByRun returns the records of one run in input order.
	ListByRun(ctx context.Context, runID string) ([]domain.Concordance, error)
}
