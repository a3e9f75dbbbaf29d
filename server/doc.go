// Package server exposes the validator over HTTP: a validation endpoint for
// uploaded observation data, a read-only migration-path endpoint over the
// preloaded dataset, plus the usual /healthz and /metrics plumbing.
//
// Routes:
//
//   - GET  /healthz                      — liveness probe.
//   - GET  /metrics                      — Prometheus exposition.
//   - GET  /api/migration/{state}        — paths that visit a state.
//   - POST /api/validate?format=flat|nested — run validation on the body.
//
// The middleware chain is recovery → logging/metrics → mux; recovery sits
// outermost so panics in any layer become clean 500s.
package server
