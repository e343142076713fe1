package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "gitgym.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLastSection_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.LastSection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got, "fresh store should have no last section")

	require.NoError(t, s.SetLastSection(ctx, "staging"))
	got, err = s.LastSection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "staging", got)

	// Overwrites, single row.
	require.NoError(t, s.SetLastSection(ctx, "branching"))
	got, err = s.LastSection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "branching", got)
}

func TestAttempts_AppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	recs, err := s.Attempts(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)

	older := AttemptRecord{
		ID:      "attempt-1",
		TakenAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		Correct: 14, Total: 20, Percent: 70, Passed: false,
	}
	newer := AttemptRecord{
		ID:      "attempt-2",
		TakenAt: time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
		Correct: 17, Total: 20, Percent: 85, Passed: true,
	}
	require.NoError(t, s.AppendAttempt(ctx, older))
	require.NoError(t, s.AppendAttempt(ctx, newer))

	recs, err = s.Attempts(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Most recent first.
	assert.Equal(t, "attempt-2", recs[0].ID)
	assert.True(t, recs[0].Passed)
	assert.Equal(t, 85, recs[0].Percent)
	assert.Equal(t, "attempt-1", recs[1].ID)
	assert.False(t, recs[1].Passed)
	assert.True(t, recs[0].TakenAt.After(recs[1].TakenAt))
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetLastSection(ctx, "remotes"))
	require.NoError(t, s.AppendAttempt(ctx, AttemptRecord{
		ID: "attempt-1", TakenAt: time.Now(), Correct: 20, Total: 20, Percent: 100, Passed: true,
	}))

	require.NoError(t, s.Reset(ctx))

	got, err := s.LastSection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	recs, err := s.Attempts(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestOpen_Reopen(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "gitgym.db")
	ctx := context.Background()

	s, err := Open(dsn)
	require.NoError(t, err)
	require.NoError(t, s.SetLastSection(ctx, "ignoring"))
	require.NoError(t, s.Close())

	s, err = Open(dsn)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.LastSection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ignoring", got, "progress should survive reopen")
}
