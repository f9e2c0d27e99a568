package deps_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/geomopt/deps"
	"github.com/katalvlaran/geomopt/instr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleABC = instr.Sample{Method: instr.SampleTriangle, Points: []string{"A", "B", "C"}}
	midpM     = instr.Compute{Point: "M", Computation: instr.PointsComputation{Name: instr.CompMidp, Args: []string{"B", "C"}}}
	interX    = instr.Compute{Point: "X", Computation: instr.InterLC{
		Line:   instr.LineSpec{Kind: instr.LineConnecting, Points: []string{"A", "M"}},
		Circle: instr.CircleSpec{Kind: instr.CircC3, Points: []string{"A", "B", "C"}},
		Root:   instr.RootSelect{Kind: instr.RootNeq, Points: []string{"A"}},
	}}
	onSegP  = instr.Parameterize{Point: "P", Parameterization: instr.PointsParam{Name: instr.ParamOnSeg, Args: []string{"B", "C"}}}
	perpAMP = instr.Assert{Constraint: instr.Constraint{Pred: instr.PredPerp, Points: []string{"A", "M", "B", "C"}}}
	cyclX   = instr.Confirm{Constraint: instr.Constraint{Pred: instr.PredCycl, Points: []string{"A", "B", "C", "X"}}}
)

func TestOrder_KeepsOrderedProgram(t *testing.T) {
	prog := instr.Program{sampleABC, midpM, interX, onSegP, perpAMP, cyclX}
	g, err := deps.Build(prog)
	require.NoError(t, err)

	got, err := g.Order()
	require.NoError(t, err)
	if diff := cmp.Diff(prog, got); diff != "" {
		t.Fatalf("ordered program changed (-want +got):\n%s", diff)
	}
}

func TestOrder_Rearranges(t *testing.T) {
	g, err := deps.Build(instr.Program{cyclX, interX, perpAMP, midpM, sampleABC})
	require.NoError(t, err)

	got, err := g.Order()
	require.NoError(t, err)
	want := instr.Program{sampleABC, midpM, interX, cyclX, perpAMP}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestOrder_Cycles(t *testing.T) {
	mid := func(name string, args ...string) instr.Instruction {
		return instr.Compute{Point: name, Computation: instr.PointsComputation{Name: instr.CompMidp, Args: args}}
	}
	uniform := instr.Sample{Method: instr.SampleUniform, Points: []string{"A"}}

	for name, prog := range map[string]instr.Program{
		"mutual": {mid("X", "Y", "A"), mid("Y", "X", "A"), uniform},
		"self":   {uniform, mid("M", "M", "A")},
	} {
		t.Run(name, func(t *testing.T) {
			g, err := deps.Build(prog)
			require.NoError(t, err)
			_, err = g.Order()
			assert.ErrorIs(t, err, deps.ErrCycleDetected)
		})
	}
}

func TestOrder_Cancelled(t *testing.T) {
	g, err := deps.Build(instr.Program{sampleABC, midpM})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Order(deps.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		prog instr.Program
		want error
	}{
		{"nil", instr.Program{sampleABC, nil}, deps.ErrNilInstruction},
		{"duplicate", instr.Program{sampleABC, instr.Compute{Point: "A", Computation: midpM.Computation}}, deps.ErrDuplicateDefinition},
		{"undefined", instr.Program{midpM}, deps.ErrUndefinedPoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := deps.Build(tc.prog)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestAnalysis(t *testing.T) {
	g, err := deps.Build(instr.Program{sampleABC, midpM, interX, onSegP, perpAMP})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "M", "X", "P"}, g.Points())
	assert.Equal(t, []string{"X", "P"}, g.Unused())

	anc, err := g.Ancestors("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "M"}, anc)

	anc, err = g.Ancestors("B")
	require.NoError(t, err)
	assert.Empty(t, anc)

	_, err = g.Ancestors("Z")
	assert.ErrorIs(t, err, deps.ErrUndefinedPoint)

	i, ok := g.Definer("M")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestUses(t *testing.T) {
	in := instr.Compute{Point: "Y", Computation: instr.InterCC{
		C1: instr.CircleSpec{Kind: instr.CircCoa, Points: []string{"O", "A"}},
		C2: instr.CircleSpec{Kind: instr.CircDiam, Points: []string{"A", "B"}},
		Root: instr.RootSelect{
			Kind:   instr.RootOppSides,
			Points: []string{"M"},
			Line:   &instr.LineSpec{Kind: instr.LineConnecting, Points: []string{"O", "B"}},
		},
	}}
	assert.Equal(t, []string{"O", "A", "B", "M"}, deps.Uses(in))
	assert.Equal(t, []string{"Y"}, deps.Defines(in))

	s := instr.Sample{Method: instr.SampleIsoTri, Points: []string{"A", "B", "C"}, Args: []string{"A"}}
	assert.Nil(t, deps.Uses(s))
	assert.Equal(t, []string{"A", "B", "C"}, deps.Defines(s))
	assert.Nil(t, deps.Defines(perpAMP))
}
