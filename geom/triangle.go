// SPDX-License-Identifier: MIT
// Package: geomopt/geom
//
// triangle.go: angles, triangle centers and radii.
//
// Complexity: O(1); each center costs a fixed number of square roots.

package geom

// Triangle centers are expressed through trilinear coordinates x:y:z
// (distances to the sides BC, CA, AB up to a common factor) and barycentric
// coordinates, both converted to Cartesian form by Trilinear.

// SideLengths returns a = |BC|, b = |CA|, c = |AB|.
func (k *Kernel[S, C]) SideLengths(a, b, c Point[S]) (S, S, S) {
	return k.Dist(b, c), k.Dist(c, a), k.Dist(a, b)
}

// Angle is the unsigned angle ABC at vertex B, in radians.
func (k *Kernel[S, C]) Angle(a, b, c Point[S]) S {
	la, lb, lc := k.SideLengths(a, b, c)
	num := k.F.Sub(k.F.Add(k.sq(la), k.sq(lc)), k.sq(lb))
	den := k.mulF(k.F.Mul(la, lc), 2)
	return k.F.Acos(k.F.Div(num, den))
}

// Conway returns Sa = (b²+c²−a²)/2, Sb = (c²+a²−b²)/2, Sc = (a²+b²−c²)/2.
func (k *Kernel[S, C]) Conway(a, b, c Point[S]) (S, S, S) {
	la, lb, lc := k.SideLengths(a, b, c)
	a2, b2, c2 := k.sq(la), k.sq(lb), k.sq(lc)
	half := func(p, q, r S) S { return k.mulF(k.F.Sub(k.F.Add(p, q), r), 0.5) }
	return half(b2, c2, a2), half(c2, a2, b2), half(a2, b2, c2)
}

// Trilinear converts trilinear coordinates x:y:z relative to ABC to a point.
func (k *Kernel[S, C]) Trilinear(a, b, c Point[S], x, y, z S) Point[S] {
	la, lb, lc := k.SideLengths(a, b, c)
	wa, wb, wc := k.F.Mul(la, x), k.F.Mul(lb, y), k.F.Mul(lc, z)
	den := k.F.Sum([]S{wa, wb, wc})
	num := func(pa, pb, pc S) S {
		return k.F.Sum([]S{k.F.Mul(wa, pa), k.F.Mul(wb, pb), k.F.Mul(wc, pc)})
	}
	return Point[S]{
		X: k.F.Div(num(a.X, b.X, c.X), den),
		Y: k.F.Div(num(a.Y, b.Y, c.Y), den),
	}
}

// Barycentric converts barycentric coordinates x:y:z relative to ABC to a point.
func (k *Kernel[S, C]) Barycentric(a, b, c Point[S], x, y, z S) Point[S] {
	la, lb, lc := k.SideLengths(a, b, c)
	return k.Trilinear(a, b, c, k.F.Div(x, la), k.F.Div(y, lb), k.F.Div(z, lc))
}

// Circumcenter has barycentrics a²Sa : b²Sb : c²Sc.
func (k *Kernel[S, C]) Circumcenter(a, b, c Point[S]) Point[S] {
	la, lb, lc := k.SideLengths(a, b, c)
	sa, sb, sc := k.Conway(a, b, c)
	return k.Barycentric(a, b, c,
		k.F.Mul(k.sq(la), sa), k.F.Mul(k.sq(lb), sb), k.F.Mul(k.sq(lc), sc))
}

// Orthocenter has barycentrics SbSc : ScSa : SaSb.
func (k *Kernel[S, C]) Orthocenter(a, b, c Point[S]) Point[S] {
	sa, sb, sc := k.Conway(a, b, c)
	return k.Barycentric(a, b, c, k.F.Mul(sb, sc), k.F.Mul(sc, sa), k.F.Mul(sa, sb))
}

// Centroid has barycentrics 1 : 1 : 1.
func (k *Kernel[S, C]) Centroid(a, b, c Point[S]) Point[S] {
	one := k.c(1)
	return k.Barycentric(a, b, c, one, one, one)
}

// Incenter has trilinears 1 : 1 : 1.
func (k *Kernel[S, C]) Incenter(a, b, c Point[S]) Point[S] {
	one := k.c(1)
	return k.Trilinear(a, b, c, one, one, one)
}

// Excenter is the A-excenter, trilinears −1 : 1 : 1.
func (k *Kernel[S, C]) Excenter(a, b, c Point[S]) Point[S] {
	one := k.c(1)
	return k.Trilinear(a, b, c, k.c(-1), one, one)
}

// Semiperimeter is (a+b+c)/2.
func (k *Kernel[S, C]) Semiperimeter(a, b, c Point[S]) S {
	la, lb, lc := k.SideLengths(a, b, c)
	return k.mulF(k.F.Sum([]S{la, lb, lc}), 0.5)
}

// Area uses Heron's formula.
func (k *Kernel[S, C]) Area(a, b, c Point[S]) S {
	la, lb, lc := k.SideLengths(a, b, c)
	s := k.Semiperimeter(a, b, c)
	prod := k.F.Mul(k.F.Mul(s, k.F.Sub(s, la)), k.F.Mul(k.F.Sub(s, lb), k.F.Sub(s, lc)))
	return k.F.Sqrt(prod)
}

// Inradius is area / semiperimeter.
func (k *Kernel[S, C]) Inradius(a, b, c Point[S]) S {
	return k.F.Div(k.Area(a, b, c), k.Semiperimeter(a, b, c))
}

// Exradius is the A-exradius r·s/(s−a).
func (k *Kernel[S, C]) Exradius(a, b, c Point[S]) S {
	la, _, _ := k.SideLengths(a, b, c)
	r := k.Inradius(a, b, c)
	s := k.Semiperimeter(a, b, c)
	return k.F.Div(k.F.Mul(r, s), k.F.Sub(s, la))
}

// MixtilinearIncenter is the center of the A-mixtilinear incircle, trilinears
// (1 + cos A − cos B − cos C)/2 : 1 : 1.
func (k *Kernel[S, C]) MixtilinearIncenter(a, b, c Point[S]) Point[S] {
	ta, tb, tc := k.Angle(c, a, b), k.Angle(a, b, c), k.Angle(b, c, a)
	x := k.mulF(k.F.Sub(k.F.Sub(k.F.Add(k.c(1), k.F.Cos(ta)), k.F.Cos(tb)), k.F.Cos(tc)), 0.5)
	one := k.c(1)
	return k.Trilinear(a, b, c, x, one, one)
}

// MixtilinearInradius is r / cos²(A/2).
func (k *Kernel[S, C]) MixtilinearInradius(a, b, c Point[S]) S {
	r := k.Inradius(a, b, c)
	half := k.F.Cos(k.mulF(k.Angle(c, a, b), 0.5))
	return k.F.Div(r, k.sq(half))
}
