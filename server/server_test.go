package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomigrate/adjacency"
	"github.com/katalvlaran/geomigrate/migration"
	"github.com/katalvlaran/geomigrate/server"
)

// newTestServer builds a server over a 2-state world with no adjacency and
// one preloaded entity hopping 1→2.
func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	idx, err := adjacency.New([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)

	t0, err := migration.ParseTime("0")
	require.NoError(t, err)
	t1, err := migration.ParseTime("1")
	require.NoError(t, err)
	paths := migration.PathSet{
		1: {
			{Time: t1, State: 2}, // deliberately unsorted
			{Time: t0, State: 1},
		},
	}

	srv, err := server.New(":0", idx, paths, 1)
	require.NoError(t, err)

	return srv
}

func do(t *testing.T, srv *server.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	return w
}

func TestNew_NilIndex(t *testing.T) {
	_, err := server.New(":0", nil, nil, 1)
	require.ErrorIs(t, err, migration.ErrNilIndex)
}

func TestHealthz(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestValidate_Flat(t *testing.T) {
	const body = `[
		{"edge_id": 9, "state_id": 1, "time": 0},
		{"edge_id": 9, "state_id": 2, "time": 1}
	]`
	w := do(t, newTestServer(t), http.MethodPost, "/api/validate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RunID        string                         `json:"run_id"`
		Valid        bool                           `json:"valid"`
		InvalidEdges map[string][]gojson.RawMessage `json:"invalid_edges"`
	}
	require.NoError(t, gojson.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RunID)
	require.False(t, resp.Valid)
	require.Len(t, resp.InvalidEdges["9"], 1)
	require.Contains(t, string(resp.InvalidEdges["9"][0]), "Non-adjacent states transition")
}

func TestValidate_NestedClean(t *testing.T) {
	const body = `[
		{"edge_id": 4, "entries": [
			{"time": 0, "state_id": 2},
			{"time": 1, "state_id": 2}
		]}
	]`
	w := do(t, newTestServer(t), http.MethodPost, "/api/validate?format=nested", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"valid":true`)
}

func TestValidate_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/validate?format=sideways", `[]`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Missing time on a record: malformed input is the caller's problem.
	w = do(t, srv, http.MethodPost, "/api/validate", `[{"edge_id": 1, "state_id": 2}]`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, srv, http.MethodPost, "/api/validate", `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMigration_ByState(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/migration/2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var paths []struct {
		EdgeID int `json:"edge_id"`
		Steps  []struct {
			SourceID int `json:"source_id"`
			TargetID int `json:"target_id"`
		} `json:"steps"`
	}
	require.NoError(t, gojson.Unmarshal(w.Body.Bytes(), &paths))
	require.Len(t, paths, 1)
	require.Equal(t, 1, paths[0].EdgeID)
	// Steps follow the time-sorted order even though storage was unsorted.
	require.Len(t, paths[0].Steps, 1)
	require.Equal(t, 1, paths[0].Steps[0].SourceID)
	require.Equal(t, 2, paths[0].Steps[0].TargetID)
}

func TestMigration_NoVisitors(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/api/migration/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]\n", w.Body.String())
}

func TestMigration_BadState(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/api/migration/two", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
