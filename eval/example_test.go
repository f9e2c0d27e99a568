package eval_test

import (
	"fmt"

	"github.com/katalvlaran/geomopt/eval"
	"github.com/katalvlaran/geomopt/field"
	"github.com/katalvlaran/geomopt/instr"
)

// ExampleEvaluator_Run builds the circumcenter of a sampled equilateral
// triangle and confirms it coincides with the centroid.
func ExampleEvaluator_Run() {
	prog := instr.Program{
		instr.Sample{Method: instr.SampleEquiTri, Points: []string{"A", "B", "C"}},
		instr.Compute{Point: "O", Computation: instr.PointsComputation{
			Name: instr.CompCircumcenter, Args: []string{"A", "B", "C"},
		}},
		instr.Compute{Point: "G", Computation: instr.PointsComputation{
			Name: instr.CompCentroid, Args: []string{"A", "B", "C"},
		}},
		instr.Confirm{Constraint: instr.Constraint{Pred: instr.PredMidp, Points: []string{"O", "G", "G"}}},
	}

	res, err := eval.New[float64, bool](field.NewFloat(nil)).Run(prog)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	o, _ := res.Point("O")
	goal, _ := res.Goals.Get("midp_O_G_G")
	fmt.Printf("O.y = %.3f\n", o.Y)
	fmt.Printf("%s satisfied: %v\n", goal.Label, goal.Value < 1e-9)
	// Output:
	// O.y = 1.155
	// midp_O_G_G satisfied: true
}
