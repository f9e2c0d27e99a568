// SPDX-License-Identifier: MIT
// Package: geomopt/geom
//
// lines.go: line construction and line/line, line/circle and
// circle/circle intersection.
//
// Contract:
//  - Lines keep their defining points; intersections are solved from them.
//  - InterLineCircle returns finite values when the line misses the circle.

package geom

// LineThrough is the slope/intercept form of the line through p1 and p2.
// M and B are ±Inf/NaN for vertical lines; P1/P2 stay exact.
func (k *Kernel[S, C]) LineThrough(p1, p2 Point[S]) Line[S] {
	m := k.F.Div(k.F.Sub(p2.Y, p1.Y), k.F.Sub(p2.X, p1.X))
	b := k.F.Sub(p1.Y, k.F.Mul(m, p1.X))
	return Line[S]{M: m, B: b, P1: p1, P2: p2}
}

// cross2 is the 2×2 determinant x1·y2 − y1·x2.
func (k *Kernel[S, C]) cross2(x1, y1, x2, y2 S) S {
	return k.F.Sub(k.F.Mul(x1, y2), k.F.Mul(y1, x2))
}

// InterLL intersects two lines. The linear system is solved from the
// defining points, so vertical lines are exact. Parallel lines divide by zero
// and yield non-finite coordinates; callers keep such configurations away
// with losses.
func (k *Kernel[S, C]) InterLL(l1, l2 Line[S]) Point[S] {
	f := k.F
	p1, p2, p3, p4 := l1.P1, l1.P2, l2.P1, l2.P2
	dx12, dy12 := f.Sub(p1.X, p2.X), f.Sub(p1.Y, p2.Y)
	dx34, dy34 := f.Sub(p3.X, p4.X), f.Sub(p3.Y, p4.Y)
	den := k.cross2(dx12, dy12, dx34, dy34)
	d12 := k.cross2(p1.X, p1.Y, p2.X, p2.Y)
	d34 := k.cross2(p3.X, p3.Y, p4.X, p4.Y)
	return Point[S]{
		X: f.Div(f.Sub(f.Mul(d12, dx34), f.Mul(dx12, d34)), den),
		Y: f.Div(f.Sub(f.Mul(d12, dy34), f.Mul(dy12, d34)), den),
	}
}

// Foot is the orthogonal projection of x onto the line AB.
func (k *Kernel[S, C]) Foot(x, a, b Point[S]) Point[S] {
	ab := k.Sub(b, a)
	t := k.F.Div(k.Inner(k.Sub(x, a), ab), k.Inner(ab, ab))
	return k.Add(a, k.Scale(ab, t))
}

// Reflect mirrors x across the line AB.
func (k *Kernel[S, C]) Reflect(x, a, b Point[S]) Point[S] {
	return k.MidpFrom(k.Foot(x, a, b), x)
}

// InterLineCircle intersects the line through p1, p2 with circle c and
// returns both roots (see mathworld Circle-LineIntersection, with the circle
// translated to the origin).
//
// When the discriminant is negative the line misses the circle. Both roots
// are then replaced by the midpoint of the foot F of the center on the line
// and the projection of F onto the circle. This point has no geometric
// meaning; it only keeps values and gradients finite while optimization
// pulls the line back across the circle. The choice is made with Select.
func (k *Kernel[S, C]) InterLineCircle(p1, p2 Point[S], c Circle[S]) (Point[S], Point[S]) {
	f := k.F
	q1, q2 := k.Sub(p1, c.Center), k.Sub(p2, c.Center)

	dx, dy := f.Sub(q1.X, q2.X), f.Sub(q1.Y, q2.Y)
	dr2 := f.Add(k.sq(dx), k.sq(dy))
	d := k.cross2(q2.X, q2.Y, q1.X, q1.Y)
	radicand := f.Sub(f.Mul(k.sq(c.Radius), dr2), k.sq(d))
	root := f.Sqrt(radicand)

	sgn := f.Select(f.Lt(dy, k.c(0)), k.c(-1), k.c(1))
	xa, xb := f.Mul(d, dy), f.Mul(f.Mul(sgn, dx), root)
	ya, yb := f.Neg(f.Mul(d, dx)), f.Mul(f.Abs(dy), root)
	r1 := Point[S]{X: f.Div(f.Add(xa, xb), dr2), Y: f.Div(f.Add(ya, yb), dr2)}
	r2 := Point[S]{X: f.Div(f.Sub(xa, xb), dr2), Y: f.Div(f.Sub(ya, yb), dr2)}

	origin := k.Pt(0, 0)
	foot := k.Foot(origin, q1, q2)
	onCircle := k.Scale(foot, f.Div(c.Radius, k.Dist(origin, foot)))
	fallback := k.Midp(foot, onCircle)

	miss := f.Lt(radicand, k.c(0))
	r1 = k.SelectPoint(miss, fallback, r1)
	r2 = k.SelectPoint(miss, fallback, r2)
	return k.Add(r1, c.Center), k.Add(r2, c.Center)
}

// RadicalAxisPoints returns two points on the radical axis of c1 and c2,
// the line 2(x2−x1)·x + 2(y2−y1)·y = (r1²−r2²) + (y2²−y1²) + (x2²−x1²).
// The axis is solved for x unless its x-coefficient is below RadicalAxisEps.
func (k *Kernel[S, C]) RadicalAxisPoints(c1, c2 Circle[S]) (Point[S], Point[S]) {
	f := k.F
	o1, o2 := c1.Center, c2.Center
	a := k.mulF(f.Sub(o2.X, o1.X), 2)
	b := k.mulF(f.Sub(o2.Y, o1.Y), 2)
	rhs := f.Sum([]S{
		f.Sub(k.sq(c1.Radius), k.sq(c2.Radius)),
		f.Sub(k.sq(o2.Y), k.sq(o1.Y)),
		f.Sub(k.sq(o2.X), k.sq(o1.X)),
	})

	solveX := f.Gt(f.Abs(a), k.c(RadicalAxisEps))
	yOnAxis := f.Div(rhs, b)
	p1 := k.SelectPoint(solveX,
		Point[S]{X: f.Div(f.Sub(rhs, b), a), Y: k.c(1)},
		Point[S]{X: k.c(1), Y: yOnAxis})
	p2 := k.SelectPoint(solveX,
		Point[S]{X: f.Div(rhs, a), Y: k.c(0)},
		Point[S]{X: k.c(0), Y: yOnAxis})
	return p1, p2
}

// RadicalAxis is the radical axis of two circles as a Line.
func (k *Kernel[S, C]) RadicalAxis(c1, c2 Circle[S]) Line[S] {
	p1, p2 := k.RadicalAxisPoints(c1, c2)
	return k.LineThrough(p1, p2)
}

// SecondMeet is the second intersection of line AB with the circle centered
// at o through a: of the two roots, the one farther from a.
func (k *Kernel[S, C]) SecondMeet(a, b, o Point[S]) Point[S] {
	r1, r2 := k.InterLineCircle(a, b, Circle[S]{Center: o, Radius: k.Dist(o, a)})
	return k.SelectPoint(k.F.Lt(k.SqDist(a, r1), k.SqDist(a, r2)), r2, r1)
}

// AmidpOpp is the midpoint of arc BC of the circumcircle not containing A.
func (k *Kernel[S, C]) AmidpOpp(b, c, a Point[S]) Point[S] {
	o := k.Circumcenter(a, b, c)
	i := k.Incenter(a, b, c)
	return k.SecondMeet(a, i, o)
}

// AmidpSame is the midpoint of arc BC containing A, the antipode of AmidpOpp.
func (k *Kernel[S, C]) AmidpSame(b, c, a Point[S]) Point[S] {
	m := k.AmidpOpp(b, c, a)
	o := k.Circumcenter(a, b, c)
	return k.SecondMeet(m, o, o)
}
