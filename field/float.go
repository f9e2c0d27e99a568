// SPDX-License-Identifier: MIT

package field

import "math"

// Float is the plain float64 backend. Conditions are Go bools; Select is the
// only place they are branched on.
type Float struct {
	vars *Vars
}

var _ Field[float64, bool] = Float{}

// NewFloat returns a float64 backend drawing free variables from vars.
// A nil vars gets a fresh default-seeded store.
func NewFloat(vars *Vars) Float {
	if vars == nil {
		vars = NewVars()
	}
	return Float{vars: vars}
}

// Vars exposes the underlying store.
func (f Float) Vars() *Vars { return f.vars }

func (Float) Const(x float64) float64 { return x }

func (f Float) Var(name string, lo, hi float64) float64 {
	return f.vars.At(f.vars.Declare(name, lo, hi))
}

func (Float) Add(a, b float64) float64 { return a + b }
func (Float) Sub(a, b float64) float64 { return a - b }
func (Float) Mul(a, b float64) float64 { return a * b }
func (Float) Div(a, b float64) float64 { return a / b }
func (Float) Neg(a float64) float64    { return -a }

func (Float) Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func (Float) Sqrt(a float64) float64 { return math.Sqrt(a) }
func (Float) Sin(a float64) float64  { return math.Sin(a) }
func (Float) Cos(a float64) float64  { return math.Cos(a) }
func (Float) Acos(a float64) float64 { return math.Acos(a) }
func (Float) Tanh(a float64) float64 { return math.Tanh(a) }
func (Float) Exp(a float64) float64  { return math.Exp(a) }
func (Float) Abs(a float64) float64  { return math.Abs(a) }

func (Float) Sigmoid(a float64) float64 { return sigmoid(a) }

// Max follows the NaN-propagating semantics of math.Max.
func (Float) Max(a, b float64) float64 { return math.Max(a, b) }

func (Float) Lt(a, b float64) bool  { return a < b }
func (Float) Lte(a, b float64) bool { return a <= b }
func (Float) Gt(a, b float64) bool  { return a > b }
func (Float) Gte(a, b float64) bool { return a >= b }
func (Float) Or(a, b bool) bool     { return a || b }

func (Float) Select(c bool, a, b float64) float64 {
	if c {
		return a
	}
	return b
}

func (Float) Value(a float64) float64 { return a }

// sigmoid is the numerically stable logistic function.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
