package optim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdam_Quadratic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LearningRate = 0.1
	x := []float64{0, 0}
	a := newAdam(len(x), cfg)
	for range 500 {
		a.step(x, []float64{2 * (x[0] - 3), 2 * (x[1] + 1)})
	}
	assert.InDelta(t, 3.0, x[0], 1e-6)
	assert.InDelta(t, -1.0, x[1], 1e-6)
}

func TestAdam_NonFiniteGradientIsSkipped(t *testing.T) {
	cfg := DefaultConfig()
	x := []float64{1, 1, 1}
	a := newAdam(len(x), cfg)
	a.step(x, []float64{math.NaN(), math.Inf(-1), 4})

	assert.Equal(t, 1.0, x[0])
	assert.Equal(t, 1.0, x[1])
	// The first bias-corrected step has magnitude ≈ lr.
	assert.InDelta(t, 1-cfg.LearningRate, x[2], 1e-6)
}
