package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/geomigrate/adjacency"
	"github.com/katalvlaran/geomigrate/logger"
	"github.com/katalvlaran/geomigrate/migration"
)

// Server holds the HTTP interface over one adjacency index and an optional
// preloaded dataset.
type Server struct {
	idx         *adjacency.Index
	paths       migration.PathSet // may be nil: /api/migration then serves nothing
	parallelism int

	log        *zap.SugaredLogger
	httpServer *http.Server
}

// New assembles a Server listening on addr. paths may be nil when only the
// validation endpoint is needed; parallelism < 1 is treated as sequential.
func New(addr string, idx *adjacency.Index, paths migration.PathSet, parallelism int) (*Server, error) {
	if idx == nil {
		return nil, migration.ErrNilIndex
	}
	if parallelism < 1 {
		parallelism = 1
	}

	s := &Server{
		idx:         idx,
		paths:       paths,
		parallelism: parallelism,
		log:         logger.For("server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/migration/{state}", s.handleMigration)
	mux.HandleFunc("POST /api/validate", s.handleValidate)

	// Recovery outermost so panics anywhere below become clean 500s.
	var handler http.Handler = mux
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler returns the fully assembled handler chain; used by tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Run blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Run() error {
	s.log.Infow("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Infow("HTTP server shutting down")

	return s.httpServer.Shutdown(ctx)
}
