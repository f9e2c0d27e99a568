// SPDX-License-Identifier: MIT
// Package: geomopt/field
//
// options.go: functional options for the free-variable store.
//
// Contract:
//   • Options are functional (type Option func(*varsConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package field

import "math/rand"

// Option customizes a Vars store before its first declaration.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*varsConfig)

// varsConfig aggregates the knobs of a Vars store.
type varsConfig struct {
	rng *rand.Rand
}

// newVarsConfig applies options in order (last wins) over deterministic
// defaults: rng seeded with defaultRNGSeed.
func newVarsConfig(opts ...Option) varsConfig {
	cfg := varsConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithSeed seeds the initial-value sampler (seed 0 ⇒ default seed).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *varsConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG for initial-value sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("field: WithRand(nil)")
	}
	return func(c *varsConfig) {
		c.rng = r
	}
}
