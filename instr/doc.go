// Package instr is the data model of geomopt construction programs: an
// ordered list of instructions that sample, compute or parameterize points
// and assert, forbid or confirm predicates over them.
//
// 🚀 The six instruction variants:
//
//	Sample        introduce points from fresh free variables (priors per method)
//	Compute       derive one point deterministically from registered points
//	Parameterize  introduce one point as a smooth function of a free variable
//	Assert        equality residual → optimized loss set
//	AssertNDG     non-degeneracy residual → NDG set (kept away from zero)
//	Confirm       residual → goal set (evaluated, never optimized)
//
// Instruction, Computation and Parameterization are sealed sum types: only
// the variants declared here implement them, so consumers switch on the
// concrete type and treat the default case as a contract violation.
//
// ✨ Program files:
//
// Programs are produced by an external frontend. Decode and Load read the
// structured form of a program (not the construction language itself) from
// YAML; JSON documents are accepted as a YAML subset. Each list entry holds
// exactly one instruction key:
//
//	- sample:       {method: acuteIsoTri, points: [A, B, C], args: [A]}
//	- compute:      {point: M, method: midp, points: [B, C]}
//	- compute:      {point: X, method: interLC,
//	                 line:   {kind: connecting, points: [A, M]},
//	                 circle: {kind: c3, points: [A, B, C]},
//	                 root:   {kind: neq, points: [A]}}
//	- parameterize: {point: P, method: onSeg, points: [B, C]}
//	- assert:       {pred: perp, points: [A, P, B, C]}
//	- assertNDG:    {pred: coll, points: [A, B, C]}
//	- confirm:      {pred: cycl, points: [A, B, C, P], negate: false}
//
// Decoding checks structure only (required fields, point-name syntax,
// payload shape for the intersection methods). Method and predicate tags are
// resolved by the evaluator, which rejects unknown ones.
package instr
