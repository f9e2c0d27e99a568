// SPDX-License-Identifier: MIT

package optim

import "math"

// adam is the first-order state of one descent. x and g must keep the
// length the state was built with.
type adam struct {
	lr, b1, b2, eps float64
	m, v            []float64
	t               int
}

func newAdam(n int, cfg Config) *adam {
	return &adam{
		lr:  cfg.LearningRate,
		b1:  cfg.Beta1,
		b2:  cfg.Beta2,
		eps: cfg.AdamEpsilon,
		m:   make([]float64, n),
		v:   make([]float64, n),
	}
}

// step updates x in place from gradient g. Non-finite gradient entries are
// treated as zero; they arise where a distance collapses to 0.
func (a *adam) step(x, g []float64) {
	a.t++
	c1 := 1 - math.Pow(a.b1, float64(a.t))
	c2 := 1 - math.Pow(a.b2, float64(a.t))
	for i := range x {
		gi := g[i]
		if math.IsNaN(gi) || math.IsInf(gi, 0) {
			gi = 0
		}
		a.m[i] = a.b1*a.m[i] + (1-a.b1)*gi
		a.v[i] = a.b2*a.v[i] + (1-a.b2)*gi*gi
		mh, vh := a.m[i]/c1, a.v[i]/c2
		x[i] -= a.lr * mh / (math.Sqrt(vh) + a.eps)
	}
}
