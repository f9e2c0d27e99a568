// SPDX-License-Identifier: MIT

package field

import "math"

// Dual is a forward-mode AD number: value V plus the gradient G of V with
// respect to every free variable slot. G may be shorter than the number of
// declared variables; missing trailing entries are zero.
type Dual struct {
	V float64
	G []float64
}

// Grad returns the gradient padded (or truncated) to n slots.
func (d Dual) Grad(n int) []float64 {
	g := make([]float64, n)
	copy(g, d.G)
	return g
}

// DualField is the automatic-differentiation backend. Var(name) returns a
// Dual whose gradient is the unit vector of the variable's slot.
type DualField struct {
	vars *Vars
}

var _ Field[Dual, bool] = DualField{}

// NewDual returns an AD backend drawing free variables from vars.
// A nil vars gets a fresh default-seeded store.
func NewDual(vars *Vars) DualField {
	if vars == nil {
		vars = NewVars()
	}
	return DualField{vars: vars}
}

// Vars exposes the underlying store.
func (f DualField) Vars() *Vars { return f.vars }

func (DualField) Const(x float64) Dual { return Dual{V: x} }

func (f DualField) Var(name string, lo, hi float64) Dual {
	i := f.vars.Declare(name, lo, hi)
	g := make([]float64, i+1)
	g[i] = 1
	return Dual{V: f.vars.At(i), G: g}
}

func (DualField) Add(a, b Dual) Dual { return Dual{V: a.V + b.V, G: lin(1, a.G, 1, b.G)} }
func (DualField) Sub(a, b Dual) Dual { return Dual{V: a.V - b.V, G: lin(1, a.G, -1, b.G)} }
func (DualField) Neg(a Dual) Dual    { return Dual{V: -a.V, G: scale(-1, a.G)} }

func (DualField) Mul(a, b Dual) Dual {
	return Dual{V: a.V * b.V, G: lin(b.V, a.G, a.V, b.G)}
}

func (DualField) Div(a, b Dual) Dual {
	v := a.V / b.V
	return Dual{V: v, G: lin(1/b.V, a.G, -v/b.V, b.G)}
}

func (DualField) Sum(xs []Dual) Dual {
	var out Dual
	for _, x := range xs {
		out = Dual{V: out.V + x.V, G: lin(1, out.G, 1, x.G)}
	}
	return out
}

func (DualField) Sqrt(a Dual) Dual {
	v := math.Sqrt(a.V)
	return Dual{V: v, G: scale(0.5/v, a.G)}
}

func (DualField) Sin(a Dual) Dual { return Dual{V: math.Sin(a.V), G: scale(math.Cos(a.V), a.G)} }
func (DualField) Cos(a Dual) Dual { return Dual{V: math.Cos(a.V), G: scale(-math.Sin(a.V), a.G)} }

func (DualField) Acos(a Dual) Dual {
	return Dual{V: math.Acos(a.V), G: scale(-1/math.Sqrt(1-a.V*a.V), a.G)}
}

func (DualField) Tanh(a Dual) Dual {
	t := math.Tanh(a.V)
	return Dual{V: t, G: scale(1-t*t, a.G)}
}

func (DualField) Sigmoid(a Dual) Dual {
	s := sigmoid(a.V)
	return Dual{V: s, G: scale(s*(1-s), a.G)}
}

func (DualField) Exp(a Dual) Dual {
	e := math.Exp(a.V)
	return Dual{V: e, G: scale(e, a.G)}
}

// Abs has zero derivative at 0.
func (DualField) Abs(a Dual) Dual {
	switch {
	case a.V > 0:
		return a
	case a.V < 0:
		return Dual{V: -a.V, G: scale(-1, a.G)}
	default:
		return Dual{V: 0}
	}
}

// Max takes the gradient of the larger operand (a on ties).
func (DualField) Max(a, b Dual) Dual {
	if math.IsNaN(a.V) || math.IsNaN(b.V) {
		return Dual{V: math.NaN()}
	}
	if a.V >= b.V {
		return a
	}
	return b
}

func (DualField) Lt(a, b Dual) bool  { return a.V < b.V }
func (DualField) Lte(a, b Dual) bool { return a.V <= b.V }
func (DualField) Gt(a, b Dual) bool  { return a.V > b.V }
func (DualField) Gte(a, b Dual) bool { return a.V >= b.V }
func (DualField) Or(a, b bool) bool  { return a || b }

func (DualField) Select(c bool, a, b Dual) Dual {
	if c {
		return a
	}
	return b
}

func (DualField) Value(a Dual) float64 { return a.V }

// lin returns ca*a + cb*b over gradient vectors of possibly different length.
// Zero coefficients skip their operand, so 0*Inf contributes 0.
func lin(ca float64, a []float64, cb float64, b []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	if ca != 0 {
		for i, x := range a {
			out[i] += ca * x
		}
	}
	if cb != 0 {
		for i, x := range b {
			out[i] += cb * x
		}
	}
	return out
}

// scale returns c*a as a fresh slice.
func scale(c float64, a []float64) []float64 {
	return lin(c, a, 0, nil)
}
