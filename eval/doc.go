// Package eval interprets geomopt programs: it realizes every sampled,
// computed and parameterized point over a field.Field backend and turns
// predicates into weighted residuals for an external optimizer.
//
// 🚀 One pass:
//
//	ev := eval.New[float64, bool](field.NewFloat(vars))
//	res, err := ev.Run(prog)
//
// Run walks the program once, in order. Each instruction registers points,
// appends residuals to one of three registries and records figures:
//
//	Points    name → Point, insertion-ordered, unique names
//	Losses    Assert residuals plus the soft losses of samplers,
//	          parameterizations and line–circle intersections
//	NDGs      AssertNDG residuals (labels prefixed "not_")
//	Goals     Confirm residuals (never optimized)
//	Segments, Circles   figures implied by constructions and predicates
//
// A predicate with k residuals registers them under "<pred>_<points>_<i>"
// with weight 1/k so wide predicates do not dominate narrow ones.
//
// ✨ Re-entrancy:
//
// The Evaluator holds configuration only. Free variables are declared on
// the backend's field.Vars under names scoped to the declaring instruction
// ("i3/tri"), so a second Run over the same store re-derives every point
// from the current variable values, bit for bit.
//
// ⚙️ Errors:
//
// Malformed programs (unknown tags, wrong arity, unknown or duplicate
// names, negated asserts) abort the pass with a wrapped sentinel and no
// Result. Degenerate geometry never errors; it is absorbed by Select-based
// fallbacks and penalized by losses such as "interLC_<point>".
package eval
