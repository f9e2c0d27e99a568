package eval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geomopt/eval"
	"github.com/katalvlaran/geomopt/field"
	"github.com/katalvlaran/geomopt/instr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The 13-14-15 triangle A B C with its centers in closed form:
// incenter I (r = 4), circumcenter O (R = 65/8), orthocenter H, centroid G,
// arc midpoints M (opposite A) and N (containing A), A-excenter E (r_a = 12).
var triangle1314 = []pin{
	{"A", 5, 12}, {"B", 0, 0}, {"C", 14, 0},
	{"I", 6, 4}, {"O", 7, 4.125}, {"H", 5, 3.75}, {"G", 19.0 / 3, 4},
	{"M", 7, -4}, {"N", 7, 12.25}, {"D", 7, 0}, {"E", 8, -12},
	{"F", -3, 12}, {"R", 5, -12}, {"K", 4, 0},
	{"A2", 9, -12}, // A rotated half a turn about D
	{"A4", 2.5, 6}, // A scaled by 1/2 about B
}

// runOn evaluates the pinned triangle followed by tail and returns the
// result together with the counts contributed by the prefix.
func runOn(t *testing.T, tail ...instr.Instruction) (res *eval.Result[float64], segs, circles, losses int) {
	t.Helper()
	vars := field.NewVars()
	prefix := pinned(vars, triangle1314...)
	base, _ := run(t, vars, prefix)
	res, _ = run(t, vars, append(prefix, tail...))
	return res, len(res.Segments) - len(base.Segments),
		len(res.Circles) - len(base.Circles),
		len(res.Losses) - len(base.Losses)
}

func TestPredicate_Dispatch(t *testing.T) {
	cases := []struct {
		pred        string
		holds, fail []string
		vals        int
		segs, circs int
	}{
		{instr.PredAmidpOpp, []string{"M", "B", "C", "A"}, []string{"N", "B", "C", "A"}, 1, 0, 0},
		{instr.PredAmidpSame, []string{"N", "B", "C", "A"}, []string{"M", "B", "C", "A"}, 1, 0, 0},
		{instr.PredBetween, []string{"D", "B", "C"}, []string{"B", "D", "C"}, 2, 0, 0},
		{instr.PredCircumcenter, []string{"O", "A", "B", "C"}, []string{"I", "A", "B", "C"}, 1, 0, 1},
		{instr.PredContri, []string{"A", "B", "C", "A2", "C", "B"}, []string{"A", "B", "C", "A4", "B", "D"}, 6, 6, 0},
		{instr.PredDistLt, []string{"B", "D", "B", "C"}, []string{"B", "C", "B", "D"}, 1, 0, 0},
		{instr.PredDistGt, []string{"B", "C", "B", "D"}, []string{"B", "D", "B", "C"}, 1, 0, 0},
		{instr.PredEqAngle, []string{"B", "A", "A", "H", "O", "A", "A", "C"}, []string{"B", "A", "A", "O", "O", "A", "A", "C"}, 1, 0, 0},
		{instr.PredEqOAngle, []string{"B", "A", "I", "I", "A", "C"}, []string{"B", "A", "I", "B", "A", "C"}, 1, 0, 0},
		{instr.PredEqRatio, []string{"B", "D", "B", "C", "C", "D", "C", "B"}, []string{"B", "A", "B", "C", "C", "D", "C", "B"}, 1, 0, 0},
		{instr.PredIBisector, []string{"I", "B", "A", "C"}, []string{"O", "B", "A", "C"}, 1, 3, 0},
		{instr.PredIncenter, []string{"I", "A", "B", "C"}, []string{"O", "A", "B", "C"}, 1, 0, 0},
		{instr.PredInsidePolygon, []string{"I", "A", "B", "C"}, []string{"E", "A", "B", "C"}, 3, 0, 0},
		{instr.PredInterLL, []string{"B", "A", "B", "C", "D"}, []string{"D", "A", "B", "C", "B"}, 2, 0, 0},
		{instr.PredIsogonal, []string{"O", "H", "A", "B", "C"}, []string{"H", "H", "A", "B", "C"}, 1, 0, 0},
		{instr.PredMidp, []string{"D", "B", "C"}, []string{"I", "B", "C"}, 1, 0, 0},
		{instr.PredOnRay, []string{"C", "B", "D"}, []string{"C", "D", "B"}, 3, 0, 0},
		{instr.PredOnSeg, []string{"D", "B", "C"}, []string{"C", "B", "D"}, 3, 0, 0},
		{instr.PredOppSides, []string{"A", "M", "B", "C"}, []string{"A", "I", "B", "C"}, 1, 0, 0},
		{instr.PredOrthocenter, []string{"H", "A", "B", "C"}, []string{"O", "A", "B", "C"}, 1, 0, 0},
		{instr.PredPara, []string{"B", "C", "F", "A"}, []string{"B", "C", "A", "I"}, 1, 0, 0},
		{instr.PredReflectPL, []string{"A", "R", "B", "C"}, []string{"A", "H", "B", "C"}, 2, 0, 0},
		{instr.PredSameSide, []string{"A", "I", "B", "C"}, []string{"A", "M", "B", "C"}, 1, 0, 0},
		{instr.PredSimTri, []string{"A", "B", "C", "A4", "B", "D"}, []string{"A", "B", "C", "A", "C", "B"}, 3, 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.pred, func(t *testing.T) {
			res, segs, circs, n := runOn(t, instr.Assert{Constraint: instr.Constraint{Pred: tc.pred, Points: tc.holds}})
			require.Equal(t, tc.vals, n, "residual count")
			assert.Equal(t, tc.segs, segs, "segments")
			assert.Equal(t, tc.circs, circs, "circles")
			for _, r := range res.Losses[len(res.Losses)-n:] {
				assert.InDelta(t, 0.0, r.Value, 1e-6, r.Label)
				assert.InDelta(t, 1/float64(tc.vals), r.Weight, tol, r.Label)
			}

			res, _, _, n = runOn(t, instr.Assert{Constraint: instr.Constraint{Pred: tc.pred, Points: tc.fail}})
			require.Equal(t, tc.vals, n)
			worst := 0.0
			for _, r := range res.Losses[len(res.Losses)-n:] {
				worst = math.Max(worst, math.Abs(r.Value))
			}
			assert.Greater(t, worst, 1e-3, "%v should not hold", tc.fail)
		})
	}
}

func TestPredicate_DistExact(t *testing.T) {
	for pred, pts := range map[string][]string{
		instr.PredDistLt: {"B", "C", "B", "D"},
		instr.PredDistGt: {"B", "D", "B", "C"},
	} {
		res, _, _, _ := runOn(t, instr.Assert{Constraint: instr.Constraint{Pred: pred, Points: pts}})
		last := res.Losses[len(res.Losses)-1]
		assert.InDelta(t, 7.0, last.Value, tol, last.Label)
	}
}

func TestCompute_Dispatch(t *testing.T) {
	line := func(kind string, pts ...string) instr.LineSpec { return instr.LineSpec{Kind: kind, Points: pts} }
	circ := func(kind string, pts ...string) instr.CircleSpec { return instr.CircleSpec{Kind: kind, Points: pts} }
	root := func(kind string, pts ...string) instr.RootSelect { return instr.RootSelect{Kind: kind, Points: pts} }
	sameSide := root(instr.RootSameSide, "A")
	sameSide.Line = &instr.LineSpec{Kind: instr.LineConnecting, Points: []string{"B", "C"}}

	cases := []struct {
		name        string
		comp        instr.Computation
		x, y        float64
		segs, circs int
		losses      int
	}{
		{"mediators", instr.InterLL{L1: line(instr.LineMediator, "B", "C"), L2: line(instr.LineMediator, "C", "A")}, 7, 4.125, 0, 0, 0},
		{"internal bisectors", instr.InterLL{L1: line(instr.LineIBisector, "A", "B", "C"), L2: line(instr.LineIBisector, "B", "C", "A")}, 6, 4, 0, 0, 0},
		{"external bisectors", instr.InterLL{L1: line(instr.LineEBisector, "A", "B", "C"), L2: line(instr.LineEBisector, "B", "C", "A")}, 8, -12, 0, 0, 0},
		{"parallel at", instr.InterLL{L1: line(instr.LineParaAt, "A", "B", "C"), L2: line(instr.LineMediator, "B", "C")}, 7, 12, 0, 0, 0},
		{"equal angle", instr.InterLL{L1: line(instr.LineEqOAngle, "B", "C", "C", "B", "A"), L2: line(instr.LineConnecting, "A", "C")}, 5, 12, 3, 0, 0},
		{"diam closerTo", instr.InterLC{
			Line: line(instr.LineMediator, "B", "C"), Circle: circ(instr.CircDiam, "B", "C"), Root: root(instr.RootCloserTo, "A"),
		}, 7, 7, 0, 1, 1},
		{"diam furtherFrom", instr.InterLC{
			Line: line(instr.LineMediator, "B", "C"), Circle: circ(instr.CircDiam, "B", "C"), Root: root(instr.RootFurtherFrom, "A"),
		}, 7, -7, 0, 1, 1},
		{"diam sameSide", instr.InterLC{
			Line: line(instr.LineMediator, "B", "C"), Circle: circ(instr.CircDiam, "B", "C"), Root: sameSide,
		}, 7, 7, 0, 1, 1},
		{"cong closerTo", instr.InterLC{
			Line: line(instr.LineMediator, "B", "C"), Circle: circ(instr.CircCong, "O", "B", "C"), Root: root(instr.RootCloserTo, "A"),
		}, 7, 18.125, 0, 1, 1},
		{"isogonal", instr.PointsComputation{Name: instr.CompIsogonal, Args: []string{"H", "A", "B", "C"}}, 7, 4.125, 0, 0, 0},
		{"isotomic", instr.PointsComputation{Name: instr.CompIsotomic, Args: []string{"G", "A", "B", "C"}}, 19.0 / 3, 4, 0, 0, 0},
		{"harmonic", instr.PointsComputation{Name: instr.CompHarmonicLConj, Args: []string{"K", "B", "C"}}, -28.0 / 3, 0, 2, 0, 0},
		{"amidpOpp", instr.PointsComputation{Name: instr.CompAmidpOpp, Args: []string{"B", "C", "A"}}, 7, -4, 0, 0, 0},
		{"amidpSame", instr.PointsComputation{Name: instr.CompAmidpSame, Args: []string{"B", "C", "A"}}, 7, 12.25, 0, 0, 0},
		{"mixtilinear", instr.PointsComputation{Name: instr.CompMixtilinearIncenter, Args: []string{"A", "B", "C"}}, 310.0 / 49, 68.0 / 49, 0, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, segs, circs, losses := runOn(t, instr.Compute{Point: "X", Computation: tc.comp})
			X := mustPoint(t, res, "X")
			assert.InDelta(t, tc.x, X.X, 1e-9, "x")
			assert.InDelta(t, tc.y, X.Y, 1e-9, "y")
			assert.Equal(t, tc.segs, segs, "segments")
			assert.Equal(t, tc.circs, circs, "circles")
			require.Equal(t, tc.losses, losses, "losses")
			if losses > 0 {
				last := res.Losses[len(res.Losses)-1]
				assert.Equal(t, "interLC_X", last.Label)
				assert.InDelta(t, 0.0, last.Value, tol)
			}
		})
	}
}

func TestCompute_DispatchCircles(t *testing.T) {
	res, _, _, _ := runOn(t,
		instr.Compute{Point: "X", Computation: instr.InterLC{
			Line:   instr.LineSpec{Kind: instr.LineMediator, Points: []string{"B", "C"}},
			Circle: instr.CircleSpec{Kind: instr.CircCong, Points: []string{"O", "B", "C"}},
			Root:   instr.RootSelect{Kind: instr.RootArbitrary},
		}},
		instr.Compute{Point: "Y", Computation: instr.PointsComputation{Name: instr.CompMixtilinearIncenter, Args: []string{"A", "B", "C"}}},
	)
	require.GreaterOrEqual(t, len(res.Circles), 2)
	cong, mixt := res.Circles[len(res.Circles)-2], res.Circles[len(res.Circles)-1]
	assert.InDelta(t, 14.0, cong.Radius, tol)
	assert.InDelta(t, 4.125, cong.Center.Y, tol)
	assert.InDelta(t, 260.0/49, mixt.Radius, 1e-9)
}
