package driving

import (
	"context"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

// BatchOptions configures a batch run.
type BatchOptions struct {
	// DefaultDataset scopes bare ids that carry no dataset of their own.
	DefaultDataset string

	// Record saves the results to the concordance store, if one is configured.
	Record bool
}

// BatchService normalises many identifiers in one run.
type BatchService interface {
	// Run normalises records in order. Per-record failures are reported in
	// the results; only cancellation and storage failures abort the run.
	Run(ctx context.Context, records []domain.IdentifierRecord, opts BatchOptions) (*domain.BatchSummary, error)

	// Lookup returns stored records that normalised to urn.
	Lookup(ctx context.Context, urn string) ([]domain.Concordance, error)
}
