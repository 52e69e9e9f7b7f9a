package storage

import (
	"adventbot/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Storage = (*MemoryRunJournal)(nil)
var _ Storage = (*PostgresRunJournal)(nil)

func TestMemoryRunJournal_ListRuns_NewestFirst(t *testing.T) {
	journal := NewMemoryRunJournal(10, 2)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, journal.SaveRun(ctx, domain.RunRecord{ID: id}))
	}

	runs, err := journal.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)

	runs, err = journal.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestMemoryRunJournal_EvictsOldest(t *testing.T) {
	journal := NewMemoryRunJournal(2, 10)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, journal.SaveRun(ctx, domain.RunRecord{ID: id}))
	}

	runs, err := journal.ListRuns(ctx, 10)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)
}

func TestMemoryRunJournal_Empty(t *testing.T) {
	runs, err := NewMemoryRunJournal(0, 10).ListRuns(context.Background(), 5)

	require.NoError(t, err)
	assert.Empty(t, runs)
}
