// SPDX-License-Identifier: MIT

package optim

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/geomopt/eval"
	"github.com/katalvlaran/geomopt/field"
	"github.com/katalvlaran/geomopt/instr"
)

// Solve searches for a configuration of prog that drives every loss to zero
// while keeping NDG residuals away from zero.
//
// Errors:
//   - ErrInvalidConfig for an out-of-range cfg.
//   - eval sentinels when prog is malformed (checked on the first sample).
//   - ErrNoValidSample when every restart sampled coincident points.
//   - ctx.Err() wrapped, when ctx ends before a restart converges.
//
// Complexity: O(Restarts · Steps · P·V) where P is the cost of one pass and
// V the number of free variables (forward-mode gradients).
func Solve(ctx context.Context, prog instr.Program, cfg Config, opts ...Option) (*Solution, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	base := rand.New(rand.NewSource(cfg.Seed))

	var best *Solution
	for r := range cfg.Restarts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("optim: restart %d: %w", r, err)
		}
		vars := field.NewVars(field.WithRand(field.DeriveRand(base, uint64(r))))
		flt := eval.New[float64, bool](field.NewFloat(vars), o.evalOpts...)
		res, err := flt.Run(prog)
		if err != nil {
			return nil, err
		}
		if ok, a, b := eval.FarEnoughApart(flt.Kernel(), res, cfg.MinDist); !ok {
			o.log.Info("degenerate sample", "restart", r, "a", a, "b", b, "min_dist", cfg.MinDist)
			continue
		}

		sol, err := descend(ctx, prog, vars, cfg, o, r)
		if err != nil {
			return nil, err
		}
		if best == nil || sol.better(best) {
			best = sol
		}
		if sol.Converged {
			o.log.Info("converged", "restart", r, "steps", sol.Steps, "loss", sol.Loss, "goals_met", sol.GoalsMet())
			break
		}
		o.log.Info("restart did not converge", "restart", r, "steps", sol.Steps, "loss", sol.Loss)
	}
	if best == nil {
		return nil, fmt.Errorf("optim: %d restarts: %w", cfg.Restarts, ErrNoValidSample)
	}
	return best, nil
}

// descend runs Adam over vars from its current values and reports the
// final configuration.
func descend(ctx context.Context, prog instr.Program, vars *field.Vars, cfg Config, o options, restart int) (*Solution, error) {
	dual := eval.New[field.Dual, bool](field.NewDual(vars), o.evalOpts...)
	df := dual.Kernel().F
	x := vars.Values()
	opt := newAdam(len(x), cfg)

	steps, converged := 0, false
	for ; steps < cfg.Steps; steps++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("optim: restart %d step %d: %w", restart, steps, err)
		}
		res, err := dual.Run(prog)
		if err != nil {
			return nil, err
		}
		loss := Objective(df, res, cfg.NDGMargin)
		if math.IsNaN(loss.V) || math.IsInf(loss.V, 0) {
			o.log.Info("non-finite objective", "restart", restart, "step", steps)
			break
		}
		if loss.V < cfg.Tolerance {
			converged = true
			break
		}
		if steps%o.logEvery == 0 {
			o.log.Debug("descent", "restart", restart, "step", steps, "loss", loss.V)
		}
		opt.step(x, loss.Grad(len(x)))
		if err := vars.SetValues(x); err != nil {
			return nil, err
		}
	}
	return finish(prog, vars, cfg, o, restart, steps, converged)
}

// finish evaluates the final configuration over floats.
func finish(prog instr.Program, vars *field.Vars, cfg Config, o options, restart, steps int, converged bool) (*Solution, error) {
	flt := eval.New[float64, bool](field.NewFloat(vars), o.evalOpts...)
	res, err := flt.Run(prog)
	if err != nil {
		return nil, err
	}
	sol := &Solution{
		Loss:      Objective(flt.Kernel().F, res, cfg.NDGMargin),
		Steps:     steps,
		Restart:   restart,
		Converged: converged,
	}
	for _, np := range res.Points {
		sol.Points = append(sol.Points, PointValue{Name: np.Name, X: np.Point.X, Y: np.Point.Y})
	}
	for _, g := range res.Goals {
		zero := math.Abs(g.Value) < cfg.GoalTolerance
		met := zero
		if strings.HasPrefix(g.Label, "not_") {
			met = !zero && !math.IsNaN(g.Value)
		}
		sol.Goals = append(sol.Goals, GoalStatus{Label: g.Label, Value: g.Value, Met: met})
	}
	return sol, nil
}
