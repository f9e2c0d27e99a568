// Package geomopt is a differentiable interpreter for geometry construction
// programs: plane figures described as a sequence of sampling, construction
// and constraint instructions, evaluated over an abstract numeric backend so
// that the same program yields plain coordinates or coordinates with
// gradients.
//
// 🚀 What is inside?
//
//	field/        backend contract, float64 and dual-number (forward AD)
//	              backends, the shared free-variable store
//	geom/         generic geometry kernel: triangle centers, conjugates,
//	              intersections, residual functions, root selection
//	instr/        program data model and YAML/JSON decoding
//	eval/         the interpreter: point registry, losses, NDG residuals, goals
//	optim/        Adam driver with restarts, degeneracy rejection and goal check
//	deps/         point dependency graph: reordering, unused points, ancestors
//	cmd/geomopt/  CLI (eval, solve, deps)
//
// ✨ Quick example:
//
//	prog, _ := instr.Load("orthocenter.yaml")
//	res, _ := eval.New[float64, bool](field.NewFloat(nil)).Run(prog)
//	sol, _ := optim.Solve(ctx, prog, optim.DefaultConfig())
//
// Branching inside the kernel never inspects values directly: every
// decision goes through the backend's Select, so a differentiable backend
// sees one smooth expression per branch.
package geomopt
