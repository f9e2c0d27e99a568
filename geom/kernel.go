// SPDX-License-Identifier: MIT
// Package: geomopt/geom
//
// kernel.go: the Kernel type and vector arithmetic over a backend.
//
// Complexity: every operation is O(1) backend calls.

package geom

import "github.com/katalvlaran/geomopt/field"

// Kernel evaluates geometric constructions over the backend F.
// It holds no state besides F and is safe to copy.
type Kernel[S, C any] struct {
	F field.Field[S, C]
}

// NewKernel wraps a backend.
func NewKernel[S, C any](f field.Field[S, C]) *Kernel[S, C] {
	return &Kernel[S, C]{F: f}
}

// c lifts a literal.
func (k *Kernel[S, C]) c(x float64) S { return k.F.Const(x) }

// sq returns a².
func (k *Kernel[S, C]) sq(a S) S { return k.F.Mul(a, a) }

// mulF returns a·x for a literal x.
func (k *Kernel[S, C]) mulF(a S, x float64) S { return k.F.Mul(a, k.c(x)) }

// Pt builds a constant point.
func (k *Kernel[S, C]) Pt(x, y float64) Point[S] {
	return Point[S]{X: k.c(x), Y: k.c(y)}
}

// Add returns p + q.
func (k *Kernel[S, C]) Add(p, q Point[S]) Point[S] {
	return Point[S]{X: k.F.Add(p.X, q.X), Y: k.F.Add(p.Y, q.Y)}
}

// Sub returns p − q.
func (k *Kernel[S, C]) Sub(p, q Point[S]) Point[S] {
	return Point[S]{X: k.F.Sub(p.X, q.X), Y: k.F.Sub(p.Y, q.Y)}
}

// Scale returns s·p.
func (k *Kernel[S, C]) Scale(p Point[S], s S) Point[S] {
	return Point[S]{X: k.F.Mul(p.X, s), Y: k.F.Mul(p.Y, s)}
}

// ScaleF returns x·p for a literal x.
func (k *Kernel[S, C]) ScaleF(p Point[S], x float64) Point[S] {
	return k.Scale(p, k.c(x))
}

// Midp is the midpoint of AB.
func (k *Kernel[S, C]) Midp(a, b Point[S]) Point[S] {
	return k.ScaleF(k.Add(a, b), 0.5)
}

// MidpFrom returns the point P such that M is the midpoint of AP.
func (k *Kernel[S, C]) MidpFrom(m, a Point[S]) Point[S] {
	return k.Add(a, k.ScaleF(k.Sub(m, a), 2))
}

// SqDist is |AB|².
func (k *Kernel[S, C]) SqDist(a, b Point[S]) S {
	return k.F.Add(k.sq(k.F.Sub(a.X, b.X)), k.sq(k.F.Sub(a.Y, b.Y)))
}

// Dist is |AB|.
func (k *Kernel[S, C]) Dist(a, b Point[S]) S {
	return k.F.Sqrt(k.SqDist(a, b))
}

// Inner is the dot product of two vectors.
func (k *Kernel[S, C]) Inner(a, b Point[S]) S {
	return k.F.Add(k.F.Mul(a.X, b.X), k.F.Mul(a.Y, b.Y))
}

// ScalarProduct is (A−O)·(B−O).
func (k *Kernel[S, C]) ScalarProduct(o, a, b Point[S]) S {
	return k.Inner(k.Sub(a, o), k.Sub(b, o))
}

// Rotate turns p counterclockwise by theta about the origin.
func (k *Kernel[S, C]) Rotate(theta S, p Point[S]) Point[S] {
	cos, sin := k.F.Cos(theta), k.F.Sin(theta)
	return Point[S]{
		X: k.F.Sub(k.F.Mul(cos, p.X), k.F.Mul(sin, p.Y)),
		Y: k.F.Add(k.F.Mul(sin, p.X), k.F.Mul(cos, p.Y)),
	}
}

// RotateCW90 turns p clockwise by a right angle: (x, y) → (y, −x).
func (k *Kernel[S, C]) RotateCW90(p Point[S]) Point[S] {
	return Point[S]{X: p.Y, Y: k.F.Neg(p.X)}
}

// RotateCCW90 turns p counterclockwise by a right angle: (x, y) → (−y, x).
func (k *Kernel[S, C]) RotateCCW90(p Point[S]) Point[S] {
	return Point[S]{X: k.F.Neg(p.Y), Y: p.X}
}

// SelectPoint picks p where cond holds, q otherwise, coordinate-wise.
func (k *Kernel[S, C]) SelectPoint(cond C, p, q Point[S]) Point[S] {
	return Point[S]{X: k.F.Select(cond, p.X, q.X), Y: k.F.Select(cond, p.Y, q.Y)}
}

// Softmax normalizes exp(xs) to weights summing to one.
func (k *Kernel[S, C]) Softmax(xs []S) []S {
	exps := make([]S, len(xs))
	for i, x := range xs {
		exps[i] = k.F.Exp(x)
	}
	total := k.F.Sum(exps)
	out := make([]S, len(xs))
	for i, e := range exps {
		out[i] = k.F.Div(e, total)
	}
	return out
}

// Values projects a point to float64 coordinates.
func (k *Kernel[S, C]) Values(p Point[S]) (x, y float64) {
	return k.F.Value(p.X), k.F.Value(p.Y)
}
