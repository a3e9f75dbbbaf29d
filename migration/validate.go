package migration

import (
	"sort"
	"sync"

	"github.com/katalvlaran/geomigrate/adjacency"
)

// Validate checks every entity path in paths against the adjacency index and
// returns a Report of all findings. Entities are evaluated independently and
// exhaustively: one entity's violations never abort or affect another's.
//
// Stage 1 (Validate): idx must be non-nil.
// Stage 2 (Prepare): resolve options, pick sequential or fan-out execution.
// Stage 3 (Execute): per entity — duplicate-timestamp check on the raw
// observation multiset, stable sort by time, transition check over sorted
// neighbors.
// Stage 4 (Finalize): collect non-empty violation lists keyed by entity id.
//
// Returns ErrNilIndex when idx is nil. An empty Report means all paths are
// valid. Complexity: O(Σ kᵢ·log kᵢ).
func Validate(paths PathSet, idx *adjacency.Index, opts ...Option) (Report, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	o := gatherOptions(opts...)

	report := make(Report)
	if o.parallelism <= 1 || len(paths) < 2 {
		for id, obs := range paths {
			if vs := validatePath(obs, idx); len(vs) > 0 {
				report[id] = vs
			}
		}

		return report, nil
	}

	// Fan out across entities. Entities share no mutable state, so a single
	// mutex around report insertion is the only coordination needed; the
	// resulting Report is identical to the sequential one.
	ids := make(chan EntityID)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	workers := o.parallelism
	if workers > len(paths) {
		workers = len(paths)
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for id := range ids {
				if vs := validatePath(paths[id], idx); len(vs) > 0 {
					mu.Lock()
					report[id] = vs
					mu.Unlock()
				}
			}
		}()
	}
	for id := range paths {
		ids <- id
	}
	close(ids)
	wg.Wait()

	return report, nil
}

// validatePath runs both checks over one entity's observations and returns
// the concatenated findings: duplicate timestamps first (first-encountered
// grouping order), then illegal transitions in chronological order.
func validatePath(obs []Observation, idx *adjacency.Index) []Violation {
	violations := checkDuplicateTimes(obs)

	// Sort a private copy; the caller's slice stays untouched.
	sorted := make([]Observation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Less(sorted[j].Time)
	})

	return append(violations, checkTransitions(sorted, idx)...)
}

// checkDuplicateTimes groups raw observations by exact time value and emits
// one DuplicateTimestamp per time holding two or more distinct states.
// The check is order-independent, so it runs on the unsorted multiset.
func checkDuplicateTimes(obs []Observation) []Violation {
	groups := make(map[string][]adjacency.State, len(obs))
	order := make([]Time, 0, len(obs))

	for _, ob := range obs {
		key := ob.Time.String()
		states, seen := groups[key]
		if !seen {
			order = append(order, ob.Time)
		}
		if !containsState(states, ob.State) {
			groups[key] = append(states, ob.State)
		}
	}

	var violations []Violation
	for _, t := range order {
		states := groups[t.String()]
		if len(states) < 2 {
			continue
		}
		// Set semantics: order within the group is not significant, so sort
		// for deterministic output.
		sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
		violations = append(violations, DuplicateTimestamp{Time: t, States: states})
	}

	return violations
}

// checkTransitions walks consecutive pairs of the sorted path. Staying in the
// same state is always legal and never consults the index; any other pair
// must be present in the (symmetric) index.
func checkTransitions(sorted []Observation, idx *adjacency.Index) []Violation {
	var violations []Violation
	for i := 0; i+1 < len(sorted); i++ {
		from, to := sorted[i].State, sorted[i+1].State
		if from == to {
			continue
		}
		if !idx.IsAdjacent(from, to) {
			violations = append(violations, IllegalTransition{
				Start: sorted[i].Time,
				End:   sorted[i+1].Time,
				From:  from,
				To:    to,
			})
		}
	}

	return violations
}

// containsState reports membership in a small state slice. Entity paths hold
// a handful of states per time point, so linear scan beats a map here.
func containsState(states []adjacency.State, s adjacency.State) bool {
	for _, have := range states {
		if have == s {
			return true
		}
	}

	return false
}
