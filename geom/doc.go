// Package geom is the computational geometry kernel of geomopt: closed-form
// Euclidean constructions and polynomial residual forms, written once and
// evaluated over any field.Field backend.
//
// 🚀 What lives here?
//
//	• Vector algebra on Point[S]: add, subtract, scale, rotate, distances.
//	• Triangle centers through trilinear/barycentric coordinates and the
//	  Conway quantities Sa, Sb, Sc: circumcenter, orthocenter, centroid,
//	  incenter, excenter, mixtilinear incenter (+ matching radii).
//	• Line and circle normal forms (Line = slope/intercept + defining points,
//	  Circle = center/radius) and their intersections: line–line,
//	  line–circle, circle–circle (through the radical axis).
//	• Conjugates: isogonal, isotomic, inversion, harmonic conjugate.
//	• Residual forms used by predicates: CollPhi, PerpPhi, ParaPhi, CongDiff,
//	  EqAngle6Diff and friends. They are determinant and dot-product polynomials, so
//	  they stay finite and differentiable at degenerate configurations.
//	• Root-selection primitives for two-valued intersections.
//
// ✨ The one rule:
//
//	Every decision that depends on a backend quantity goes through
//	Field.Select. Conditions are an opaque type parameter C, so the compiler
//	rejects a native `if` on them. Degenerate inputs (parallel lines, a line
//	missing a circle, a point on a triangle side) never error: they yield
//	NaN/Inf in an unselected branch, a guarded reciprocal, or a smooth
//	fallback point.
//
// ⚙️ Usage:
//
//	k := geom.NewKernel[float64, bool](field.NewFloat(nil))
//	A, B, C := k.Pt(0, 0), k.Pt(4, 0), k.Pt(0, 3)
//	O := k.Circumcenter(A, B, C) // (2, 1.5)
//
// Complexity:
//
//	Every operation is O(1) in backend calls; InPolyPhis and Softmax are O(n).
package geom
