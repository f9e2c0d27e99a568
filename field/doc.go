// Package field defines the scalar backend every geometric computation in
// geomopt is written against, together with two concrete backends.
//
// 🚀 What is a Field?
//
//	A Field[S, C] supplies arithmetic, elementary functions, comparisons and a
//	single branching primitive Select(c, a, b) over a scalar type S. The
//	condition type C is opaque to callers: the only thing generic code can do
//	with a C is hand it to Select or Or. Native `if` on a quantity that may
//	carry a gradient is therefore impossible by construction.
//
// ✨ Backends:
//   - Float: plain float64 arithmetic. Used for testing, one-shot sampling
//     and post-hoc evaluation where no gradient is needed.
//   - DualField: forward-mode automatic differentiation. Every Dual carries
//     its value and the dense gradient with respect to all free variables
//     declared so far.
//
// 🎲 Free variables:
//
//	Both backends delegate Var(name, lo, hi) to a shared *Vars store. The first
//	time a name is seen its initial value is drawn uniformly from [lo, hi]
//	using a seeded RNG; afterwards the same name always resolves to the same
//	variable, so repeated evaluation passes are re-entrant. An optimizer
//	updates the store between passes via SetValues.
//
// ⚙️ Usage:
//
//	vars := field.NewVars(field.WithSeed(7))
//	f := field.NewFloat(vars)
//	x := f.Var("x", -1, 1)
//	y := f.Select(f.Lt(x, f.Const(0)), f.Neg(x), x) // |x| without an if
//
// Concurrency:
//
//	Vars wraps a *rand.Rand and is NOT goroutine-safe. Use one store per
//	evaluation goroutine.
package field
