// SPDX-License-Identifier: MIT

package optim

import (
	"github.com/katalvlaran/geomopt/eval"
	"github.com/katalvlaran/geomopt/field"
)

// Objective is the weighted residual sum of res over any backend:
// Σ w·v² for losses plus Σ w·max(0, margin − |v|)² for NDG residuals.
// Goals do not contribute.
//
// Complexity: O(|Losses| + |NDGs|).
func Objective[S, C any](f field.Field[S, C], res *eval.Result[S], margin float64) S {
	terms := make([]S, 0, len(res.Losses)+len(res.NDGs))
	for _, r := range res.Losses {
		terms = append(terms, f.Mul(f.Const(r.Weight), f.Mul(r.Value, r.Value)))
	}
	m := f.Const(margin)
	for _, r := range res.NDGs {
		gap := f.Max(f.Const(0), f.Sub(m, f.Abs(r.Value)))
		terms = append(terms, f.Mul(f.Const(r.Weight), f.Mul(gap, gap)))
	}
	if len(terms) == 0 {
		return f.Const(0)
	}
	return f.Sum(terms)
}
