// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/rand"
)

// Vars is the free-variable store shared by the backends of one optimization
// run. Variables are identified by name and indexed densely in declaration
// order; the index is the gradient slot used by DualField.
type Vars struct {
	rng    *rand.Rand
	names  []string
	index  map[string]int
	values []float64
}

// NewVars returns an empty store configured by opts.
func NewVars(opts ...Option) *Vars {
	cfg := newVarsConfig(opts...)
	return &Vars{
		rng:   cfg.rng,
		index: make(map[string]int),
	}
}

// Declare returns the slot of name, creating it with an initial value drawn
// uniformly from [lo, hi] on first use. lo > hi is swapped silently.
//
// Complexity: O(1) amortized.
func (v *Vars) Declare(name string, lo, hi float64) int {
	if i, ok := v.index[name]; ok {
		return i
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	i := len(v.names)
	v.names = append(v.names, name)
	v.values = append(v.values, lo+(hi-lo)*v.rng.Float64())
	v.index[name] = i
	return i
}

// Len is the number of declared variables.
func (v *Vars) Len() int { return len(v.names) }

// Names returns declared names in slot order. The slice is a copy.
func (v *Vars) Names() []string {
	return append([]string(nil), v.names...)
}

// Values returns the current values in slot order. The slice is a copy.
func (v *Vars) Values() []float64 {
	return append([]float64(nil), v.values...)
}

// At returns the current value of slot i.
func (v *Vars) At(i int) float64 { return v.values[i] }

// SetValues overwrites every variable at once; len(xs) must equal Len().
func (v *Vars) SetValues(xs []float64) error {
	if len(xs) != len(v.values) {
		return fmt.Errorf("SetValues: got %d values for %d vars: %w", len(xs), len(v.values), ErrLengthMismatch)
	}
	copy(v.values, xs)
	return nil
}

// Lookup returns the value of name and whether it was declared.
func (v *Vars) Lookup(name string) (float64, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Set overwrites the value of an already declared variable.
func (v *Vars) Set(name string, x float64) error {
	i, ok := v.index[name]
	if !ok {
		return fmt.Errorf("Set(%q): %w", name, ErrUnknownVar)
	}
	v.values[i] = x
	return nil
}

// Index returns the slot of name and whether it was declared.
func (v *Vars) Index(name string) (int, bool) {
	i, ok := v.index[name]
	return i, ok
}
