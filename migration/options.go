// Package migration: functional configuration for Validate.
//
// Design goals:
//   - Deterministic behavior: the Report never depends on an option value.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); public APIs consume ...Option.
package migration

import "fmt"

// DefaultParallelism is the default worker count: sequential validation.
const DefaultParallelism = 1

// options holds resolved configuration; fields are unexported, public APIs
// consume ...Option.
type options struct {
	parallelism int
}

// Option configures a single Validate call.
type Option func(*options)

// WithParallelism fans validation out over n workers across entities. The
// result is identical for any n since entities never interact; use it for
// large datasets only. Panics if n < 1 (programmer error).
func WithParallelism(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("migration: WithParallelism(%d): n must be ≥ 1", n))
	}

	return func(o *options) { o.parallelism = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{parallelism: DefaultParallelism}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
