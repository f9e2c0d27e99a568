// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// types.go: Result, Residual, Segment and NamedPoint.

package eval

import "github.com/katalvlaran/geomopt/geom"

// Regularization, polygon and intersection loss weights.
const (
	RegularizationWeight    = 1e-4
	PolygonAngleSumWeight   = 1e-1
	PolygonClosureWeight    = 1e-2
	PolygonFirstAngleWeight = 1e-2
	LCIntersectWeight       = 1e-1
)

// NamedPoint is one entry of the point registry.
type NamedPoint[S any] struct {
	Name  string
	Point geom.Point[S]
}

// Residual is a labeled, weighted scalar. Losses and goals vanish when their
// predicate holds; NDG residuals should stay away from zero.
type Residual[S any] struct {
	Label  string
	Value  S
	Weight float64
}

// Residuals is a registry in registration order. Labels are unique.
type Residuals[S any] []Residual[S]

// Get returns the residual registered under label.
// Complexity: O(n).
func (rs Residuals[S]) Get(label string) (Residual[S], bool) {
	for _, r := range rs {
		if r.Label == label {
			return r, true
		}
	}
	return Residual[S]{}, false
}

// Labels lists labels in registration order.
func (rs Residuals[S]) Labels() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Label
	}
	return out
}

// Segment is a drawn segment between two points.
type Segment[S any] struct {
	A, B geom.Point[S]
}

// Result holds everything one interpretation pass produced. It is owned by
// the caller; the Evaluator keeps no reference to it.
type Result[S any] struct {
	Points   []NamedPoint[S]
	Losses   Residuals[S]
	NDGs     Residuals[S]
	Goals    Residuals[S]
	Segments []Segment[S]
	Circles  []geom.Circle[S]
}

// Point returns the point registered under name.
// Complexity: O(n).
func (r *Result[S]) Point(name string) (geom.Point[S], bool) {
	for _, np := range r.Points {
		if np.Name == name {
			return np.Point, true
		}
	}
	return geom.Point[S]{}, false
}

// Names lists point names in registration order.
func (r *Result[S]) Names() []string {
	out := make([]string, len(r.Points))
	for i, np := range r.Points {
		out[i] = np.Name
	}
	return out
}
