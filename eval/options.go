// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// options.go: functional options for New.

package eval

import (
	"log/slog"
	"math"
)

// DefaultDegenerateEps is the length under which the helper segments of the
// line–circle non-degeneracy loss count as collapsed.
const DefaultDegenerateEps = 1e-6

// Option customizes an Evaluator.
type Option func(*config)

type config struct {
	log *slog.Logger
	eps float64
}

func newConfig(opts ...Option) config {
	cfg := config{log: slog.New(slog.DiscardHandler), eps: DefaultDegenerateEps}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes per-instruction debug events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("eval: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

// WithEpsilon overrides DefaultDegenerateEps. Panics unless eps is finite
// and positive.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("eval: WithEpsilon requires a finite eps > 0")
	}
	return func(c *config) { c.eps = eps }
}
