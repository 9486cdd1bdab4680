package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

func TestLazyStore_OpensOnFirstUse(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	store := NewLazyStore(dir)
	defer store.Close()

	assert.False(t, store.Opened())
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "data directory should not exist before first use")

	require.NoError(t, store.Save(ctx, []domain.Concordance{
		{RunID: "run-1", Identifier: "tgn/1", URN: "urn:hg:tgn:1", CreatedAt: time.Now()},
	}))
	assert.True(t, store.Opened())
	assert.FileExists(t, filepath.Join(dir, "concordance.db"))

	found, err := store.FindByURN(ctx, "urn:hg:tgn:1")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "tgn/1", found[0].Identifier)

	byRun, err := store.ListByRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, byRun, 1)
}

func TestLazyStore_CloseWithoutUse(t *testing.T) {
	store := NewLazyStore(t.TempDir())
	assert.NoError(t, store.Close())
	assert.False(t, store.Opened())
}

func TestLazyStore_OpenFailure(t *testing.T) {
	// A regular file where the data directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	store := NewLazyStore(filepath.Join(blocker, "data"))

	_, err := store.FindByURN(context.Background(), "urn:hg:tgn:1")
	assert.ErrorIs(t, err, domain.ErrConcordanceUnavailable)

	err = store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrConcordanceUnavailable)
}
