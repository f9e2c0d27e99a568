// SPDX-License-Identifier: MIT
// Package: geomopt/geom
//
// conjugates.go: trilinear conversion, isogonal and isotomic conjugates,
// inversion and the harmonic conjugate.
//
// Contract:
//  - Near-zero trilinears invert to 0 (InvertOrZero) instead of dividing.
//  - All branches go through F.Select.

package geom

import "math"

// ToTrilinear returns the signed distances of p to BC, CA and AB. A distance
// is negative when p lies on the other side of that side from the opposite
// vertex.
func (k *Kernel[S, C]) ToTrilinear(p, a, b, c Point[S]) (S, S, S) {
	signed := func(vertex, s1, s2 Point[S]) S {
		d := k.Dist(p, k.Foot(p, s1, s2))
		return k.F.Select(k.OppSides(p, vertex, s1, s2), k.F.Neg(d), d)
	}
	return signed(a, b, c), signed(b, c, a), signed(c, a, b)
}

// InvertOrZero is 1/x, or 0 when |x| < InvertEps.
func (k *Kernel[S, C]) InvertOrZero(x S) S {
	small := k.F.Lt(k.F.Abs(x), k.c(InvertEps))
	return k.F.Select(small, k.c(0), k.F.Div(k.c(1), x))
}

// Isogonal is the isogonal conjugate of p w.r.t. ABC: trilinears 1/x : 1/y : 1/z.
func (k *Kernel[S, C]) Isogonal(p, a, b, c Point[S]) Point[S] {
	x, y, z := k.ToTrilinear(p, a, b, c)
	return k.Trilinear(a, b, c, k.InvertOrZero(x), k.InvertOrZero(y), k.InvertOrZero(z))
}

// Isotomic is the isotomic conjugate of p w.r.t. ABC: trilinears
// 1/(a²x) : 1/(b²y) : 1/(c²z).
func (k *Kernel[S, C]) Isotomic(p, a, b, c Point[S]) Point[S] {
	la, lb, lc := k.SideLengths(a, b, c)
	x, y, z := k.ToTrilinear(p, a, b, c)
	w := func(side, t S) S { return k.F.Div(k.InvertOrZero(t), k.sq(side)) }
	return k.Trilinear(a, b, c, w(la, x), w(lb, y), w(lc, z))
}

// Inverse is the inversion of x in the circle centered at o through a.
func (k *Kernel[S, C]) Inverse(x, o, a Point[S]) Point[S] {
	ratio := k.F.Div(k.SqDist(o, a), k.SqDist(o, x))
	return k.Add(o, k.Scale(k.Sub(x, o), ratio))
}

// HarmonicLConj is the harmonic conjugate of x w.r.t. segment AB, built with
// the complete-quadrilateral construction from an auxiliary point L off the
// line AB.
func (k *Kernel[S, C]) HarmonicLConj(x, a, b Point[S]) Point[S] {
	l := k.Add(a, k.ScaleF(k.Rotate(k.c(math.Pi/3), k.Sub(x, a)), 0.5))
	m := k.Midp(a, l)
	n := k.InterLL(k.LineThrough(b, l), k.LineThrough(x, m))
	kk := k.InterLL(k.LineThrough(a, n), k.LineThrough(b, m))
	return k.InterLL(k.LineThrough(l, kk), k.LineThrough(a, x))
}
