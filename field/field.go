// SPDX-License-Identifier: MIT

package field

// Field is the capability set the geometry kernel needs from a numeric
// backend. S is the scalar type, C the opaque condition type produced by
// comparisons.
//
// Contract:
//   - All operations are pure: operands are never mutated.
//   - Select(c, a, b) returns a where c holds, b otherwise, and must be
//     differentiable with respect to a and b. Both branches are always
//     evaluated by the caller; a NaN in the unselected branch must not leak.
//   - Value projects a scalar to float64 for read-only consumers (reporting,
//     degeneracy checks in a driver). Kernel code never branches on it.
type Field[S, C any] interface {
	// Const lifts a literal into the scalar type.
	Const(x float64) S
	// Var declares (or re-uses) the free variable called name. The initial
	// value of a fresh variable is drawn uniformly from [lo, hi].
	Var(name string, lo, hi float64) S

	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Div(a, b S) S
	Neg(a S) S
	Sum(xs []S) S

	Sqrt(a S) S
	Sin(a S) S
	Cos(a S) S
	Acos(a S) S
	Tanh(a S) S
	Sigmoid(a S) S
	Exp(a S) S
	Abs(a S) S
	Max(a, b S) S

	Lt(a, b S) C
	Lte(a, b S) C
	Gt(a, b S) C
	Gte(a, b S) C
	Or(a, b C) C
	Select(c C, a, b S) S

	Value(a S) float64
}
