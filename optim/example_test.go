package optim_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/geomopt/instr"
	"github.com/katalvlaran/geomopt/optim"
)

// ExampleSolve moves a point on BC to the foot of the altitude from the
// apex of an isosceles triangle.
func ExampleSolve() {
	prog := instr.Program{
		instr.Sample{Method: instr.SampleIsoTri, Points: []string{"A", "B", "C"}, Args: []string{"A"}},
		instr.Parameterize{Point: "D", Parameterization: instr.PointsParam{Name: instr.ParamOnSeg, Args: []string{"B", "C"}}},
		instr.Assert{Constraint: instr.Constraint{Pred: instr.PredMidp, Points: []string{"D", "B", "C"}}},
		instr.Confirm{Constraint: instr.Constraint{Pred: instr.PredPerp, Points: []string{"A", "D", "B", "C"}}},
	}
	sol, err := optim.Solve(context.Background(), prog, optim.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("converged:", sol.Converged)
	fmt.Println("goals met:", sol.GoalsMet())
	// Output:
	// converged: true
	// goals met: true
}
