package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
	"github.com/custodia-labs/hgurn/internal/core/ports/driving"
	"github.com/custodia-labs/hgurn/internal/logger"
)

// Ensure BatchService implements the interface.
var _ driving.BatchService = (*BatchService)(nil)

// BatchService normalises sequences of identifier records.
type BatchService struct {
	urns  driving.URNService
	store driven.ConcordanceStore
	newID func() string
	now   func() time.Time
}

// NewBatchService creates a batch service. The store is optional; without
// it runs are not recorded and Lookup fails. newID generates run ids.
func NewBatchService(urns driving.URNService, store driven.ConcordanceStore, newID func() string) *BatchService {
	return &BatchService{
		urns:  urns,
		store: store,
		newID: newID,
		now:   time.Now,
	}
}

// Run normalises records in order.
func (s *BatchService) Run(
	ctx context.Context,
	records []domain.IdentifierRecord,
	opts driving.BatchOptions,
) (*domain.BatchSummary, error) {
	if opts.Record && s.store == nil {
		return nil, domain.ErrConcordanceUnavailable
	}

	summary := &domain.BatchSummary{
		RunID:   s.newID(),
		Results: make([]domain.Concordance, 0, len(records)),
	}
	logger.Section("Batch " + summary.RunID)

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := s.normalise(rec, opts.DefaultDataset)
		c.RunID = summary.RunID

		summary.Total++
		if !c.OK() {
			summary.Failed++
			logger.Warn("%s: %s", rec.Identifier, c.Error)
		}
		summary.Results = append(summary.Results, c)
	}

	if opts.Record {
		if err := s.store.Save(ctx, summary.Results); err != nil {
			return nil, fmt.Errorf("saving concordance: %w", err)
		}
	}

	logger.Info("normalised %d identifiers, %d failed", summary.Total, summary.Failed)
	return summary, nil
}

func (s *BatchService) normalise(rec domain.IdentifierRecord, defaultDataset string) domain.Concordance {
	c := domain.Concordance{
		Identifier: rec.Identifier,
		Dataset:    rec.Dataset,
		CreatedAt:  s.now().UTC(),
	}

	scope := rec.Dataset
	if scope == "" {
		scope = defaultDataset
	}

	urn, err := s.urns.Normalize(rec.Identifier, scope)
	if err != nil {
		c.Error = err.Error()
		return c
	}
	c.URN = urn

	// urn:hgid: URNs have no namespace and therefore no URL.
	if domain.IsHGURN(urn) {
		if url, err := s.urns.URNToURL(urn); err == nil {
			c.URL = url
		}
	}
	return c
}

// Lookup returns stored records that normalised to urn.
func (s *BatchService) Lookup(ctx context.Context, urn string) ([]domain.Concordance, error) {
	if s.store == nil {
		return nil, domain.ErrConcordanceUnavailable
	}
	return s.store.FindByURN(ctx, urn)
}
