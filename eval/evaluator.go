// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// evaluator.go: Evaluator, the per-run pass and the Assert, AssertNDG and
// Confirm handlers.

package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/geomopt/field"
	"github.com/katalvlaran/geomopt/geom"
	"github.com/katalvlaran/geomopt/instr"
)

// Evaluator interprets programs over one backend. It holds configuration
// only; all registries live in the pass created by Run.
type Evaluator[S, C any] struct {
	k   *geom.Kernel[S, C]
	cfg config
}

// New builds an Evaluator over f.
func New[S, C any](f field.Field[S, C], opts ...Option) *Evaluator[S, C] {
	return &Evaluator[S, C]{k: geom.NewKernel(f), cfg: newConfig(opts...)}
}

// Kernel exposes the geometry kernel bound to the backend.
func (e *Evaluator[S, C]) Kernel() *geom.Kernel[S, C] { return e.k }

// Run interprets prog in order with fresh registries. The first malformed
// instruction aborts the pass and no Result is returned.
//
// Free variables are named "i<index>/<name>" after the instruction that
// declares them, so repeated runs over the same backend store reuse the same
// variables and are deterministic given their values.
//
// Complexity: O(Σ cost of instructions); coll and cycl are O(C(n,3)) and
// O(C(n,4)) in their point count.
func (e *Evaluator[S, C]) Run(prog instr.Program) (*Result[S], error) {
	p := &pass[S, C]{
		Kernel: e.k,
		cfg:    e.cfg,
		points: make(map[string]geom.Point[S]),
		labels: make(map[string]struct{}),
		res:    &Result[S]{},
	}
	for i, in := range prog {
		p.step = i
		if err := p.exec(in); err != nil {
			return nil, fmt.Errorf("eval: instruction %d: %w", i, err)
		}
	}
	e.cfg.log.Debug("pass complete",
		"points", len(p.res.Points),
		"losses", len(p.res.Losses),
		"ndgs", len(p.res.NDGs),
		"goals", len(p.res.Goals))
	return p.res, nil
}

// pass is the state of one interpretation.
type pass[S, C any] struct {
	*geom.Kernel[S, C]
	cfg    config
	step   int
	points map[string]geom.Point[S]
	labels map[string]struct{}
	res    *Result[S]
}

func (p *pass[S, C]) exec(in instr.Instruction) error {
	switch in := in.(type) {
	case instr.Sample:
		p.cfg.log.Debug("sample", "step", p.step, "method", in.Method, "points", in.Points)
		return p.sample(in)
	case instr.Compute:
		if in.Computation == nil {
			return errorf("compute", ErrUnsupported, "nil computation for %q", in.Point)
		}
		p.cfg.log.Debug("compute", "step", p.step, "point", in.Point, "method", in.Computation.Method())
		return p.compute(in.Point, in.Computation)
	case instr.Parameterize:
		if in.Parameterization == nil {
			return errorf("parameterize", ErrUnsupported, "nil parameterization for %q", in.Point)
		}
		p.cfg.log.Debug("parameterize", "step", p.step, "point", in.Point, "method", in.Parameterization.Method())
		return p.parameterize(in.Point, in.Parameterization)
	case instr.Assert:
		return p.assert(in.Constraint)
	case instr.AssertNDG:
		return p.assertNDG(in.Constraint)
	case instr.Confirm:
		return p.confirm(in.Constraint)
	default:
		return errorf("exec", ErrUnsupported, "instruction %T", in)
	}
}

// mkvar declares a free variable scoped to the current instruction.
func (p *pass[S, C]) mkvar(name string, lo, hi float64) S {
	return p.F.Var("i"+strconv.Itoa(p.step)+"/"+name, lo, hi)
}

func (p *pass[S, C]) register(name string, pt geom.Point[S]) error {
	if _, ok := p.points[name]; ok {
		return errorf("register", ErrDuplicatePoint, "%q", name)
	}
	p.points[name] = pt
	p.res.Points = append(p.res.Points, NamedPoint[S]{Name: name, Point: pt})
	return nil
}

// lookup resolves exactly n names (any number when n < 0).
func (p *pass[S, C]) lookup(method string, names []string, n int) ([]geom.Point[S], error) {
	if n >= 0 && len(names) != n {
		return nil, errorf(method, ErrBadArgs, "want %d points, got %d", n, len(names))
	}
	out := make([]geom.Point[S], len(names))
	for i, name := range names {
		pt, ok := p.points[name]
		if !ok {
			return nil, errorf(method, ErrUnknownPoint, "%q", name)
		}
		out[i] = pt
	}
	return out, nil
}

// lookupAtLeast resolves at least min names.
func (p *pass[S, C]) lookupAtLeast(method string, names []string, min int) ([]geom.Point[S], error) {
	if len(names) < min {
		return nil, errorf(method, ErrBadArgs, "want at least %d points, got %d", min, len(names))
	}
	return p.lookup(method, names, -1)
}

func (p *pass[S, C]) segment(a, b geom.Point[S]) {
	p.res.Segments = append(p.res.Segments, Segment[S]{A: a, B: b})
}

func (p *pass[S, C]) circle(c geom.Circle[S]) {
	p.res.Circles = append(p.res.Circles, c)
}

// uniqueLabel suffixes "_dupN" to labels seen earlier in the pass.
func (p *pass[S, C]) uniqueLabel(label string) string {
	out := label
	for n := 1; ; n++ {
		if _, seen := p.labels[out]; !seen {
			break
		}
		out = label + "_dup" + strconv.Itoa(n)
	}
	p.labels[out] = struct{}{}
	return out
}

func (p *pass[S, C]) addLoss(label string, v S, w float64) {
	p.res.Losses = append(p.res.Losses, Residual[S]{Label: p.uniqueLabel(label), Value: v, Weight: w})
}

func (p *pass[S, C]) addNDG(label string, v S, w float64) {
	p.res.NDGs = append(p.res.NDGs, Residual[S]{Label: p.uniqueLabel(label), Value: v, Weight: w})
}

func (p *pass[S, C]) addGoal(label string, v S, w float64) {
	p.res.Goals = append(p.res.Goals, Residual[S]{Label: p.uniqueLabel(label), Value: v, Weight: w})
}

// constraintLabel is "<pred>_<p1>_<p2>...".
func constraintLabel(c instr.Constraint) string {
	return c.Pred + "_" + strings.Join(c.Points, "_")
}

// spread registers vals under label (suffixed "_i" when there are several)
// with weight 1/len(vals).
func spread[S any](label string, vals []S, add func(string, S, float64)) {
	w := 1 / float64(len(vals))
	for i, v := range vals {
		l := label
		if len(vals) > 1 {
			l = label + "_" + strconv.Itoa(i)
		}
		add(l, v, w)
	}
}

func (p *pass[S, C]) assert(c instr.Constraint) error {
	if c.Negate {
		return errorf("assert", ErrNegatedAssert, "%s", constraintLabel(c))
	}
	vals, err := p.predicate(c.Pred, c.Points)
	if err != nil {
		return err
	}
	spread(constraintLabel(c), vals, p.addLoss)
	return nil
}

func (p *pass[S, C]) assertNDG(c instr.Constraint) error {
	vals, err := p.predicate(c.Pred, c.Points)
	if err != nil {
		return err
	}
	spread("not_"+constraintLabel(c), vals, p.addNDG)
	return nil
}

// confirm registers goals. A negated goal is labeled "not_..." and is
// satisfied when its residual is non-zero.
func (p *pass[S, C]) confirm(c instr.Constraint) error {
	vals, err := p.predicate(c.Pred, c.Points)
	if err != nil {
		return err
	}
	label := constraintLabel(c)
	if c.Negate {
		label = "not_" + label
	}
	spread(label, vals, p.addGoal)
	return nil
}

// FarEnoughApart reports whether every pair of registered points is at
// least minDist apart, and names the first offending pair otherwise.
// Drivers use it to reject degenerate initial samples.
// Complexity: O(n²).
func FarEnoughApart[S, C any](k *geom.Kernel[S, C], res *Result[S], minDist float64) (ok bool, a, b string) {
	for i := range res.Points {
		for j := i + 1; j < len(res.Points); j++ {
			d := k.F.Value(k.Dist(res.Points[i].Point, res.Points[j].Point))
			if !(d >= minDist) {
				return false, res.Points[i].Name, res.Points[j].Name
			}
		}
	}
	return true, "", ""
}
