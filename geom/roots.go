// SPDX-License-Identifier: MIT
// Package: geomopt/geom
//
// roots.go: root-selection policies for two-valued constructions.

package geom

// Root selection between the two values of a two-valued construction.
// Every policy is a Select, so the chosen root is a smooth function of the
// inputs away from the decision boundary.

// NotEqual picks r1 unless it coincides with ref, else r2.
func (k *Kernel[S, C]) NotEqual(r1, r2, ref Point[S]) Point[S] {
	return k.SelectPoint(k.PtNeq(r1, ref), r1, r2)
}

// CloserTo picks the root nearer to ref (r1 on ties).
func (k *Kernel[S, C]) CloserTo(r1, r2, ref Point[S]) Point[S] {
	return k.SelectPoint(k.F.Lte(k.SqDist(r1, ref), k.SqDist(r2, ref)), r1, r2)
}

// FurtherFrom picks the root farther from ref (r2 on ties).
func (k *Kernel[S, C]) FurtherFrom(r1, r2, ref Point[S]) Point[S] {
	return k.SelectPoint(k.F.Lt(k.SqDist(r2, ref), k.SqDist(r1, ref)), r1, r2)
}

// OppSidesOf picks r1 when it is on the opposite side of line AB from ref, else r2.
func (k *Kernel[S, C]) OppSidesOf(r1, r2, ref, a, b Point[S]) Point[S] {
	return k.SelectPoint(k.OppSides(r1, ref, a, b), r1, r2)
}

// SameSideOf picks r1 when it is on the same side of line AB as ref, else r2.
func (k *Kernel[S, C]) SameSideOf(r1, r2, ref, a, b Point[S]) Point[S] {
	return k.SelectPoint(k.SameSide(r1, ref, a, b), r1, r2)
}

// Canonical picks a root independently of argument order: the one with the
// smaller y, or the smaller x when the y values agree within PointEqEps.
func (k *Kernel[S, C]) Canonical(r1, r2 Point[S]) Point[S] {
	f := k.F
	tie := f.Lt(f.Abs(f.Sub(r1.Y, r2.Y)), k.c(PointEqEps))
	byX := k.SelectPoint(f.Lte(r1.X, r2.X), r1, r2)
	byY := k.SelectPoint(f.Lt(r1.Y, r2.Y), r1, r2)
	return k.SelectPoint(tie, byX, byY)
}
