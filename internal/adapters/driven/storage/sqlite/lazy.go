package sqlite

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// Ensure LazyStore implements the interface.
var _ driven.ConcordanceStore = (*LazyStore)(nil)

// LazyStore opens the concordance database on first use, so commands that
// never record or look up concordance leave no database behind.
// Open failures are reported as domain.ErrConcordanceUnavailable.
type LazyStore struct {
	dataDir string

	once  sync.Once
	store *Store
	err   error
}

// NewLazyStore creates a store that opens dataDir on first use.
// An empty dataDir means the NewStore default.
func NewLazyStore(dataDir string) *LazyStore {
	return &LazyStore{dataDir: dataDir}
}

func (l *LazyStore) open() (*Store, error) {
	l.once.Do(func() {
		l.store, l.err = NewStore(l.dataDir)
		if l.err != nil {
			l.err = fmt.Errorf("%w: %v", domain.ErrConcordanceUnavailable, l.err)
		}
	})
	return l.store, l.err
}

// Opened reports whether the database has been opened.
func (l *LazyStore) Opened() bool {
	return l.store != nil
}

// Save opens the database if needed and stores records.
func (l *LazyStore) Save(ctx context.Context, records []domain.Concordance) error {
	s, err := l.open()
	if err != nil {
		return err
	}
	return s.Save(ctx, records)
}

// FindByURN opens the database if needed and finds records by URN.
func (l *LazyStore) FindByURN(ctx context.Context, urn string) ([]domain.Concordance, error) {
	s, err := l.open()
	if err != nil {
		return nil, err
	}
	return s.FindByURN(ctx, urn)
}

// ListByRun opens the database if needed and lists the records of a run.
func (l *LazyStore) ListByRun(ctx context.Context, runID string) ([]domain.Concordance, error) {
	s, err := l.open()
	if err != nil {
		return nil, err
	}
	return s.ListByRun(ctx, runID)
}

// Close closes the database if it was opened.
func (l *LazyStore) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}
