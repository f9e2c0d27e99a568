// SPDX-License-Identifier: MIT
// Package: geomopt/deps
//
// types.go: visitation states, sentinel errors and options.

package deps

import (
	"context"
	"errors"
)

// Visitation states of an instruction during Order and Ancestors.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrNilInstruction is returned by Build for a nil program entry.
	ErrNilInstruction = errors.New("deps: nil instruction")

	// ErrDuplicateDefinition indicates two instructions defining one point.
	ErrDuplicateDefinition = errors.New("deps: point defined twice")

	// ErrUndefinedPoint indicates a reference to a point no instruction defines.
	ErrUndefinedPoint = errors.New("deps: undefined point")

	// ErrCycleDetected indicates instructions that depend on each other, or on
	// the point they define.
	ErrCycleDetected = errors.New("deps: cycle detected")
)

// Option configures Order and Ancestors.
type Option func(*options)

type options struct {
	ctx context.Context // cancellation; defaults to Background
}

func newOptions(opts ...Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCancelContext sets the cancellation context of a traversal.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
