package migration_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomigrate/adjacency"
	"github.com/katalvlaran/geomigrate/migration"
)

// ob builds an Observation from raw time text and a state id.
func ob(t *testing.T, raw string, state int) migration.Observation {
	t.Helper()
	tm, err := migration.ParseTime(raw)
	require.NoError(t, err)

	return migration.Observation{Time: tm, State: adjacency.State(state)}
}

// pairIndex returns an index where states 1 and 2 are adjacent.
func pairIndex(t *testing.T) *adjacency.Index {
	t.Helper()
	idx, err := adjacency.New([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	return idx
}

// emptyIndex returns a 2-state index with no adjacency at all.
func emptyIndex(t *testing.T) *adjacency.Index {
	t.Helper()
	idx, err := adjacency.New([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)

	return idx
}

func TestValidate_NilIndex(t *testing.T) {
	_, err := migration.Validate(migration.PathSet{}, nil)
	require.ErrorIs(t, err, migration.ErrNilIndex)
}

// TestValidate_AdjacentHop: states 1,2 adjacent, path 1→2 — clean.
func TestValidate_AdjacentHop(t *testing.T) {
	paths := migration.PathSet{
		1: {ob(t, "0", 1), ob(t, "1", 2)},
	}
	report, err := migration.Validate(paths, pairIndex(t))
	require.NoError(t, err)
	require.True(t, report.Valid())
}

// TestValidate_SymmetricReturn: the matrix only sets one direction, yet the
// return hop 2→1 is legal because the index symmetrizes on construction.
func TestValidate_SymmetricReturn(t *testing.T) {
	idx, err := adjacency.New([][]int{{0, 1}, {0, 0}})
	require.NoError(t, err)

	paths := migration.PathSet{
		7: {ob(t, "0", 1), ob(t, "1", 2), ob(t, "2", 1)},
	}
	report, err := migration.Validate(paths, idx)
	require.NoError(t, err)
	require.True(t, report.Valid())
}

// TestValidate_IllegalTransition: no adjacency at all, hop 1→2 flagged.
func TestValidate_IllegalTransition(t *testing.T) {
	paths := migration.PathSet{
		3: {ob(t, "0", 1), ob(t, "1", 2)},
	}
	report, err := migration.Validate(paths, emptyIndex(t))
	require.NoError(t, err)
	require.Len(t, report, 1)
	require.Len(t, report[3], 1)

	v, ok := report[3][0].(migration.IllegalTransition)
	require.True(t, ok, "want IllegalTransition, got %T", report[3][0])
	require.Equal(t, adjacency.State(1), v.From)
	require.Equal(t, adjacency.State(2), v.To)
	require.Equal(t, "0", v.Start.String())
	require.Equal(t, "1", v.End.String())
	require.Equal(t, migration.KindIllegalTransition, v.Kind())
}

// TestValidate_DuplicateTimestamp: same time, two distinct states.
func TestValidate_DuplicateTimestamp(t *testing.T) {
	paths := migration.PathSet{
		2: {ob(t, "5", 1), ob(t, "5", 2)},
	}
	report, err := migration.Validate(paths, pairIndex(t))
	require.NoError(t, err)
	require.Len(t, report[2], 1)

	v, ok := report[2][0].(migration.DuplicateTimestamp)
	require.True(t, ok, "want DuplicateTimestamp, got %T", report[2][0])
	require.Equal(t, "5", v.Time.String())
	require.Equal(t, []adjacency.State{1, 2}, v.States)
	require.Equal(t, migration.KindDuplicateTimestamp, v.Kind())
}

// TestValidate_SameTimeSameState: repeating an identical observation is not
// a duplicate finding, and the repeated pair never reaches the index.
func TestValidate_SameTimeSameState(t *testing.T) {
	paths := migration.PathSet{
		4: {ob(t, "5", 1), ob(t, "5", 1), ob(t, "6", 2)},
	}
	report, err := migration.Validate(paths, pairIndex(t))
	require.NoError(t, err)
	require.True(t, report.Valid())
}

// TestValidate_BothKinds: a duplicated timestamp does not suppress the
// transition check; both findings fire, duplicates listed first.
func TestValidate_BothKinds(t *testing.T) {
	paths := migration.PathSet{
		9: {ob(t, "0", 1), ob(t, "0", 2), ob(t, "1", 2), ob(t, "2", 1)},
	}
	report, err := migration.Validate(paths, emptyIndex(t))
	require.NoError(t, err)
	require.Len(t, report[9], 3)

	require.IsType(t, migration.DuplicateTimestamp{}, report[9][0])
	require.IsType(t, migration.IllegalTransition{}, report[9][1])
	require.IsType(t, migration.IllegalTransition{}, report[9][2])
}

// TestValidate_StayIsFree: inserting same-state observations at any position
// never introduces an IllegalTransition.
func TestValidate_StayIsFree(t *testing.T) {
	base := []migration.Observation{
		ob(t, "0", 1), ob(t, "1", 2), ob(t, "2", 1),
	}
	idx := pairIndex(t)

	before, err := migration.Validate(migration.PathSet{1: base}, idx)
	require.NoError(t, err)

	// Duplicate every state at a fresh time right after each observation.
	padded := []migration.Observation{
		ob(t, "0", 1), ob(t, "0.5", 1),
		ob(t, "1", 2), ob(t, "1.5", 2),
		ob(t, "2", 1), ob(t, "2.5", 1),
	}
	after, err := migration.Validate(migration.PathSet{1: padded}, idx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

// TestValidate_ShuffleInvariant: the validator sorts internally, so a
// shuffled path yields exactly the same findings as a sorted one.
func TestValidate_ShuffleInvariant(t *testing.T) {
	sorted := []migration.Observation{
		ob(t, "0", 1), ob(t, "1", 2), ob(t, "2", 1), ob(t, "3", 2), ob(t, "4", 1),
	}
	idx := emptyIndex(t)

	want, err := migration.Validate(migration.PathSet{1: sorted}, idx)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]migration.Observation, len(sorted))
		copy(shuffled, sorted)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got, err := migration.Validate(migration.PathSet{1: shuffled}, idx)
		require.NoError(t, err)
		require.Equal(t, want, got, "trial %d", trial)
	}
}

// TestValidate_EntityIndependence: entities never interact and the report is
// keyed, so any mixture of clean and dirty entities yields the same result.
func TestValidate_EntityIndependence(t *testing.T) {
	idx := pairIndex(t)
	dirty := []migration.Observation{ob(t, "5", 1), ob(t, "5", 2)}
	clean := []migration.Observation{ob(t, "0", 1), ob(t, "1", 2)}

	r1, err := migration.Validate(migration.PathSet{1: dirty, 2: clean}, idx)
	require.NoError(t, err)
	r2, err := migration.Validate(migration.PathSet{2: clean, 1: dirty}, idx)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
	require.Len(t, r1, 1)
	require.Contains(t, r1, migration.EntityID(1))
}

// TestValidate_SingleObservation: no consecutive pair exists, so a lone
// observation can never violate anything.
func TestValidate_SingleObservation(t *testing.T) {
	paths := migration.PathSet{
		1: {ob(t, "3", 1)},
		2: {},
	}
	report, err := migration.Validate(paths, emptyIndex(t))
	require.NoError(t, err)
	require.True(t, report.Valid())
}

// TestValidate_ExactTimeEquality: "0.5" and "0.50" are numerically equal but
// textually distinct, so they are different time points — no duplicate fires
// even with distinct states, while the (sorted-neighbor) transition check
// still applies.
func TestValidate_ExactTimeEquality(t *testing.T) {
	paths := migration.PathSet{
		1: {ob(t, "0.5", 1), ob(t, "0.50", 2)},
	}
	report, err := migration.Validate(paths, pairIndex(t))
	require.NoError(t, err)
	require.True(t, report.Valid())

	report, err = migration.Validate(paths, emptyIndex(t))
	require.NoError(t, err)
	require.Len(t, report[1], 1)
	require.IsType(t, migration.IllegalTransition{}, report[1][0])
}

// TestValidate_Parallel: WithParallelism must produce a byte-identical
// report to the sequential run.
func TestValidate_Parallel(t *testing.T) {
	idx, err := adjacency.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	paths := make(migration.PathSet, 64)
	for id := migration.EntityID(1); id <= 64; id++ {
		k := 1 + rng.Intn(12)
		obs := make([]migration.Observation, 0, k)
		for i := 0; i < k; i++ {
			obs = append(obs, migration.Observation{
				Time:  migration.TimeFromFloat(float64(rng.Intn(8))),
				State: adjacency.State(1 + rng.Intn(3)),
			})
		}
		paths[id] = obs
	}

	want, err := migration.Validate(paths, idx)
	require.NoError(t, err)
	got, err := migration.Validate(paths, idx, migration.WithParallelism(8))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestWithParallelism_Panics documents the programmer-error contract.
func TestWithParallelism_Panics(t *testing.T) {
	require.Panics(t, func() { migration.WithParallelism(0) })
	require.Panics(t, func() { migration.WithParallelism(-3) })
}

func TestParseTime_Bad(t *testing.T) {
	_, err := migration.ParseTime("NaN-ish")
	require.ErrorIs(t, err, migration.ErrBadTime)
}
