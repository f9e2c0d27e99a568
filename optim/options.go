// SPDX-License-Identifier: MIT

package optim

import (
	"log/slog"

	"github.com/katalvlaran/geomopt/eval"
)

// Option customizes Solve.
type Option func(*options)

type options struct {
	log      *slog.Logger
	logEvery int
	evalOpts []eval.Option
}

// DefaultLogEvery is the step interval of debug progress events.
const DefaultLogEvery = 100

func newOptions(opts ...Option) options {
	o := options{log: slog.New(slog.DiscardHandler), logEvery: DefaultLogEvery}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes restart and convergence events (info) and descent
// progress (debug) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("optim: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// WithLogEvery sets the step interval of debug progress events.
// Panics unless n > 0.
func WithLogEvery(n int) Option {
	if n <= 0 {
		panic("optim: WithLogEvery requires n > 0")
	}
	return func(o *options) { o.logEvery = n }
}

// WithEvalOptions forwards opts to every Evaluator the driver builds.
func WithEvalOptions(opts ...eval.Option) Option {
	return func(o *options) { o.evalOpts = append(o.evalOpts, opts...) }
}
