package server

import (
	"net/http"
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/katalvlaran/geomigrate/adjacency"
	"github.com/katalvlaran/geomigrate/ingest"
	"github.com/katalvlaran/geomigrate/metrics"
	"github.com/katalvlaran/geomigrate/migration"
)

// validateResponse is the body of POST /api/validate.
type validateResponse struct {
	RunID        string           `json:"run_id"`
	Valid        bool             `json:"valid"`
	InvalidEdges migration.Report `json:"invalid_edges"`
}

// migrationStep is one hop of a served migration path.
type migrationStep struct {
	SourceID adjacency.State `json:"source_id"`
	TargetID adjacency.State `json:"target_id"`
	Time     migration.Time  `json:"time"`
}

// migrationPath is one entity's hop sequence, the shape the frontend
// consumes.
type migrationPath struct {
	EdgeID migration.EntityID `json:"edge_id"`
	Steps  []migrationStep    `json:"steps"`
}

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleValidate runs the validator over the request body. The body shape is
// chosen by ?format=flat|nested (flat by default); an unknown format or a
// malformed body is the caller's error, never a 500.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var (
		paths migration.PathSet
		err   error
	)
	switch format := r.URL.Query().Get("format"); format {
	case "", "flat":
		paths, err = ingest.DecodeFlat(r.Body)
	case "nested":
		paths, err = ingest.DecodeNested(r.Body)
	default:
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "unknown format: " + format})

		return
	}
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})

		return
	}

	report, err := migration.Validate(paths, s.idx, migration.WithParallelism(s.parallelism))
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})

		return
	}

	outcome := "violations"
	if report.Valid() {
		outcome = "valid"
	}
	metrics.ValidationRunsTotal.WithLabelValues(outcome).Inc()
	for _, id := range report.Entities() {
		for _, v := range report[id] {
			switch v.Kind() {
			case migration.KindDuplicateTimestamp:
				metrics.ViolationsTotal.WithLabelValues("duplicate_timestamp").Inc()
			case migration.KindIllegalTransition:
				metrics.ViolationsTotal.WithLabelValues("illegal_transition").Inc()
			}
		}
	}

	s.writeJSON(w, http.StatusOK, validateResponse{
		RunID:        uuid.New().String(),
		Valid:        report.Valid(),
		InvalidEdges: report,
	})
}

// handleMigration serves every preloaded path that visits the requested
// state, as hop sequences over the time-sorted observations.
func (s *Server) handleMigration(w http.ResponseWriter, r *http.Request) {
	stateID, err := strconv.Atoi(r.PathValue("state"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "state must be an integer"})

		return
	}
	state := adjacency.State(stateID)

	out := make([]migrationPath, 0)
	for id, obs := range s.paths {
		if !visits(obs, state) {
			continue
		}
		sorted := make([]migration.Observation, len(obs))
		copy(sorted, obs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Time.Less(sorted[j].Time)
		})

		steps := make([]migrationStep, 0, len(sorted))
		for i := 0; i+1 < len(sorted); i++ {
			steps = append(steps, migrationStep{
				SourceID: sorted[i].State,
				TargetID: sorted[i+1].State,
				Time:     sorted[i+1].Time,
			})
		}
		out = append(out, migrationPath{EdgeID: id, Steps: steps})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EdgeID < out[j].EdgeID })

	s.writeJSON(w, http.StatusOK, out)
}

// visits reports whether any observation of the path is in state.
func visits(obs []migration.Observation, state adjacency.State) bool {
	for _, ob := range obs {
		if ob.State == state {
			return true
		}
	}

	return false
}

// writeJSON writes one JSON response; encoding failures are logged, not
// retried, since headers are already gone.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := gojson.NewEncoder(w).Encode(body); err != nil {
		s.log.Errorw("encode response", "err", err)
	}
}
