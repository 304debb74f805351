package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/noether/internal/testutil"
	"github.com/roach88/noether/solver"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// openTestStore opens an on-disk store with deterministic IDs and
// timestamps, pre-loaded with enough IDs for the heaviest test.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "history.db"),
		WithIDGenerator(testutil.NewFixedIDGenerator(
			"solve-01", "solve-02", "solve-03", "solve-04",
			"solve-05", "solve-06", "solve-07", "solve-08",
		)),
		WithNow(testutil.NewClock(testStart, time.Second).Now),
	)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Migrations are idempotent on an existing database.
	s, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, s.verifyPragma("user_version", "1"))
	require.NoError(t, s.Close())
}

func TestOpen_InMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.RecordSolve(context.Background(), SolveRecord{
		Domain: "wave",
		Inputs: map[string]float64{"f": 50},
	}, nil)
	assert.NoError(t, err)
}

func TestRecordSolve_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	trace := []solver.Firing{
		{Pass: 1, Symbol: "v", Equation: "v = u + a*t", Value: 50},
		{Pass: 1, Symbol: "s", Equation: "s = (u + v)/2*t", Value: 250},
	}
	id, err := s.RecordSolve(ctx, SolveRecord{
		Domain:  "kinematics",
		Inputs:  map[string]float64{"u": 0, "a": 5, "t": 10},
		Outputs: map[string]float64{"u": 0, "a": 5, "t": 10, "v": 50, "s": 250},
	}, trace)
	require.NoError(t, err)
	assert.Equal(t, "solve-01", id)

	rec, err := s.GetSolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "kinematics", rec.Domain)
	assert.Equal(t, testStart, rec.CreatedAt)
	assert.Equal(t, map[string]float64{"u": 0, "a": 5, "t": 10}, rec.Inputs)
	assert.Equal(t, 50.0, rec.Outputs["v"])
	assert.Empty(t, rec.ErrorKind)

	firings, err := s.ListFirings(ctx, id)
	require.NoError(t, err)
	require.Len(t, firings, 2)
	assert.Equal(t, FiringRecord{SolveID: id, Seq: 0, Pass: 1, Symbol: "v", Equation: "v = u + a*t", Value: 50}, firings[0])
	assert.Equal(t, FiringRecord{SolveID: id, Seq: 1, Pass: 1, Symbol: "s", Equation: "s = (u + v)/2*t", Value: 250}, firings[1])
}

func TestRecordSolve_Failure(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.RecordSolve(ctx, SolveRecord{
		Domain:    "light",
		Inputs:    map[string]float64{"n1": 1.5, "n2": 1, "theta1": 50},
		ErrorKind: "physics_impossible",
		ErrorMsg:  "total internal reflection",
	}, nil)
	require.NoError(t, err)

	rec, err := s.GetSolve(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, rec.Outputs)
	assert.Equal(t, "physics_impossible", rec.ErrorKind)
	assert.Equal(t, "total internal reflection", rec.ErrorMsg)

	firings, err := s.ListFirings(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, firings)
}

func TestGetSolve_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetSolve(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ListFirings(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSolves_Filters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.RecordSolve(ctx, SolveRecord{
		Domain:  "kinematics",
		Inputs:  map[string]float64{"u": 0, "a": 5, "t": 10},
		Outputs: map[string]float64{"v": 50},
	}, nil)
	require.NoError(t, err)
	_, err = s.RecordSolve(ctx, SolveRecord{
		Domain:    "kinematics",
		Inputs:    map[string]float64{"u": 1, "a": -5, "s": 100},
		ErrorKind: "physics_impossible",
		ErrorMsg:  "u^2 + 2*a*s is negative",
	}, nil)
	require.NoError(t, err)
	_, err = s.RecordSolve(ctx, SolveRecord{
		Domain:  "wave",
		Inputs:  map[string]float64{"f": 50},
		Outputs: map[string]float64{"T": 0.02},
	}, nil)
	require.NoError(t, err)

	// Newest first.
	all, err := s.ListSolves(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "solve-03", all[0].ID)
	assert.Equal(t, "solve-02", all[1].ID)
	assert.Equal(t, "solve-01", all[2].ID)

	byDomain, err := s.ListSolves(ctx, Filter{Domain: "kinematics"})
	require.NoError(t, err)
	require.Len(t, byDomain, 2)

	failures, err := s.ListSolves(ctx, Filter{ErrorsOnly: true})
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "solve-02", failures[0].ID)

	limited, err := s.ListSolves(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "solve-03", limited[0].ID)
}
