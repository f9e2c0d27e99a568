// SPDX-License-Identifier: MIT
// Package: geomopt/geom
//
// residuals.go: polynomial residuals behind the predicates.

package geom

// Residual forms. Each vanishes exactly when its predicate holds and is a
// polynomial (or a max of polynomials) in the coordinates.

// CollPhi is twice the signed area of ABC.
func (k *Kernel[S, C]) CollPhi(a, b, c Point[S]) S {
	f := k.F
	return f.Sum([]S{
		f.Mul(a.X, f.Sub(b.Y, c.Y)),
		f.Mul(b.X, f.Sub(c.Y, a.Y)),
		f.Mul(c.X, f.Sub(a.Y, b.Y)),
	})
}

// PerpPhi is (A−B)·(C−D).
func (k *Kernel[S, C]) PerpPhi(a, b, c, d Point[S]) S {
	return k.Inner(k.Sub(a, b), k.Sub(c, d))
}

// ParaPhi is the cross product (A−B)×(C−D).
func (k *Kernel[S, C]) ParaPhi(a, b, c, d Point[S]) S {
	u, v := k.Sub(a, b), k.Sub(c, d)
	return k.cross2(u.X, u.Y, v.X, v.Y)
}

// CongDiff is |AB|² − |CD|².
func (k *Kernel[S, C]) CongDiff(a, b, c, d Point[S]) S {
	return k.F.Sub(k.SqDist(a, b), k.SqDist(c, d))
}

// Det3 is the cross product (A−O)×(B−O).
func (k *Kernel[S, C]) Det3(a, o, b Point[S]) S {
	u, v := k.Sub(a, o), k.Sub(b, o)
	return k.cross2(u.X, u.Y, v.X, v.Y)
}

// SideScoreProd is positive when a and b are strictly on the same side of
// line XY and negative when strictly on opposite sides.
func (k *Kernel[S, C]) SideScoreProd(a, b, x, y Point[S]) S {
	return k.F.Mul(k.Det3(a, x, y), k.Det3(b, x, y))
}

// OppSides holds when a and b are strictly on opposite sides of line XY.
func (k *Kernel[S, C]) OppSides(a, b, x, y Point[S]) C {
	return k.F.Lt(k.SideScoreProd(a, b, x, y), k.c(0))
}

// SameSide holds when a and b are strictly on the same side of line XY.
func (k *Kernel[S, C]) SameSide(a, b, x, y Point[S]) C {
	return k.F.Gt(k.SideScoreProd(a, b, x, y), k.c(0))
}

// EqAngle6Diff compares the directed angles ABC and PQR through their
// sine/cosine numerators: sin₁·cos₂ − sin₂·cos₁ (scaled by AngleDiffScale).
// It vanishes when the angles agree modulo π.
func (k *Kernel[S, C]) EqAngle6Diff(a, b, c, p, q, r Point[S]) S {
	s1, c1 := k.Det3(a, b, c), k.ScalarProduct(b, a, c)
	s2, c2 := k.Det3(p, q, r), k.ScalarProduct(q, p, r)
	return k.mulF(k.F.Sub(k.F.Mul(s1, c2), k.F.Mul(s2, c1)), AngleDiffScale)
}

// EqAngle8Diff compares the angle between lines (B1→A, B2→C) with the angle
// between lines (Q1→P, Q2→R) by translating the second ray of each pair to a
// common vertex.
func (k *Kernel[S, C]) EqAngle8Diff(a, b1, b2, c, p, q1, q2, r Point[S]) S {
	c1 := k.Add(k.Sub(c, b2), b1)
	r1 := k.Add(k.Sub(r, q2), q1)
	return k.EqAngle6Diff(a, b1, c1, p, q1, r1)
}

// EqRatioDiff vanishes when |AB|/|CD| = |PQ|/|RS|.
func (k *Kernel[S, C]) EqRatioDiff(a, b, c, d, p, q, r, s Point[S]) S {
	lhs := k.F.Sqrt(k.F.Mul(k.Dist(a, b), k.Dist(r, s)))
	rhs := k.F.Sqrt(k.F.Mul(k.Dist(p, q), k.Dist(c, d)))
	return k.F.Sub(lhs, rhs)
}

// CyclDiff vanishes when ABCD is concyclic (inscribed angles ABD and ACD agree).
func (k *Kernel[S, C]) CyclDiff(a, b, c, d Point[S]) S {
	return k.EqAngle6Diff(a, b, d, a, c, d)
}

// DiffSigns is max(0, x·y): positive exactly when x and y share a strict sign.
func (k *Kernel[S, C]) DiffSigns(x, y S) S {
	return k.F.Max(k.c(0), k.F.Mul(x, y))
}

// shrink moves a toward b by GapMargin of the segment.
func (k *Kernel[S, C]) shrink(a, b Point[S]) Point[S] {
	return k.Add(a, k.ScaleF(k.Sub(b, a), GapMargin))
}

// BetweenGap returns per-axis residuals that vanish when x lies between the
// trimmed endpoints of AB.
func (k *Kernel[S, C]) BetweenGap(x, a, b Point[S]) []S {
	a1, b1 := k.shrink(a, b), k.shrink(b, a)
	return []S{
		k.DiffSigns(k.F.Sub(x.X, a1.X), k.F.Sub(x.X, b1.X)),
		k.DiffSigns(k.F.Sub(x.Y, a1.Y), k.F.Sub(x.Y, b1.Y)),
	}
}

// OnRayGap returns per-axis residuals that vanish when x lies on the ray
// from a through b, past the trimmed start.
func (k *Kernel[S, C]) OnRayGap(x, a, b Point[S]) []S {
	a1 := k.shrink(a, b)
	return []S{
		k.DiffSigns(k.F.Sub(x.X, a1.X), k.F.Sub(a1.X, b.X)),
		k.DiffSigns(k.F.Sub(x.Y, a1.Y), k.F.Sub(a1.Y, b.Y)),
	}
}

// InPolyPhis returns one residual per polygon edge; each vanishes when x is
// on the same side of edge (Pᵢ, Pᵢ₊₁) as the next vertex Pᵢ₊₂.
func (k *Kernel[S, C]) InPolyPhis(x Point[S], poly []Point[S]) []S {
	n := len(poly)
	out := make([]S, 0, n)
	for i := range n {
		a, b, c := poly[i], poly[(i+1)%n], poly[(i+2)%n]
		out = append(out, k.F.Max(k.c(0), k.F.Neg(k.SideScoreProd(x, c, a, b))))
	}
	return out
}

// PtEq holds when |p1p2| < PointEqEps.
func (k *Kernel[S, C]) PtEq(p1, p2 Point[S]) C {
	return k.F.Lt(k.Dist(p1, p2), k.c(PointEqEps))
}

// PtNeq holds when |p1p2| > PointEqEps.
func (k *Kernel[S, C]) PtNeq(p1, p2 Point[S]) C {
	return k.F.Gt(k.Dist(p1, p2), k.c(PointEqEps))
}
