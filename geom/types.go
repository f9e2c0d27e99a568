// SPDX-License-Identifier: MIT
// Package: geomopt/geom
//
// types.go: Point, Line, Circle and the numeric tolerances.

package geom

// Point is an ordered pair over the backend scalar. Points are values:
// every operation returns a new one.
type Point[S any] struct {
	X, Y S
}

// Line is the slope/intercept normal form y = M·x + B. The two defining
// points are kept so intersections can be solved from the points themselves
// when the slope is numerically unstable (near-vertical lines).
type Line[S any] struct {
	M, B   S
	P1, P2 Point[S]
}

// Circle is the center/radius normal form.
type Circle[S any] struct {
	Center Point[S]
	Radius S
}

// Numeric thresholds shared by the kernel (single source of truth).
const (
	// PointEqEps is the distance under which two points count as equal in
	// root selection (PtEq/PtNeq).
	PointEqEps = 1e-6

	// InvertEps is the magnitude under which InvertOrZero returns 0 instead
	// of a reciprocal.
	InvertEps = 1e-5

	// RadicalAxisEps decides which coordinate the radical axis is solved for.
	RadicalAxisEps = 1e-6

	// GapMargin is the fraction trimmed from each end of a segment before
	// the between/on-ray sign tests.
	GapMargin = 0.2

	// AngleDiffScale scales EqAngle6Diff to keep it comparable to other
	// residual magnitudes.
	AngleDiffScale = 0.1
)
