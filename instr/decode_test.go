package instr_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/geomopt/instr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orthocenterProgram = `
- sample: {method: acuteIsoTri, points: [A, B, C], args: [A]}
- compute: {point: M, method: midp, points: [B, C]}
- compute:
    point: H
    method: interLL
    lines:
      - {kind: perpAt, points: [A, B, C]}
      - {kind: perpAt, points: [B, C, A]}
- compute:
    point: X
    method: interLC
    line: {kind: connecting, points: [A, M]}
    circle: {kind: c3, points: [A, B, C]}
    root: {kind: neq, points: [A]}
- compute:
    point: Y
    method: interCC
    circles:
      - {kind: coa, points: [B, A]}
      - {kind: diam, points: [A, C]}
    root:
      kind: oppSides
      points: [M]
      line: {kind: connecting, points: [A, C]}
- parameterize: {point: P, method: onSeg, points: [B, C]}
- parameterize: {point: Q, method: onCirc, circle: {kind: coa, points: [M, B]}}
- parameterize: {point: R, method: coords}
- assert: {pred: perp, points: [A, P, B, C]}
- assertNDG: {pred: coll, points: [A, B, P]}
- confirm: {pred: cycl, points: [A, B, C, X], negate: true}
`

func TestDecode_AllVariants(t *testing.T) {
	prog, err := instr.Decode(strings.NewReader(orthocenterProgram))
	require.NoError(t, err)

	want := instr.Program{
		instr.Sample{Method: instr.SampleAcuteIsoTri, Points: []string{"A", "B", "C"}, Args: []string{"A"}},
		instr.Compute{Point: "M", Computation: instr.PointsComputation{Name: instr.CompMidp, Args: []string{"B", "C"}}},
		instr.Compute{Point: "H", Computation: instr.InterLL{
			L1: instr.LineSpec{Kind: instr.LinePerpAt, Points: []string{"A", "B", "C"}},
			L2: instr.LineSpec{Kind: instr.LinePerpAt, Points: []string{"B", "C", "A"}},
		}},
		instr.Compute{Point: "X", Computation: instr.InterLC{
			Line:   instr.LineSpec{Kind: instr.LineConnecting, Points: []string{"A", "M"}},
			Circle: instr.CircleSpec{Kind: instr.CircC3, Points: []string{"A", "B", "C"}},
			Root:   instr.RootSelect{Kind: instr.RootNeq, Points: []string{"A"}},
		}},
		instr.Compute{Point: "Y", Computation: instr.InterCC{
			C1: instr.CircleSpec{Kind: instr.CircCoa, Points: []string{"B", "A"}},
			C2: instr.CircleSpec{Kind: instr.CircDiam, Points: []string{"A", "C"}},
			Root: instr.RootSelect{
				Kind:   instr.RootOppSides,
				Points: []string{"M"},
				Line:   &instr.LineSpec{Kind: instr.LineConnecting, Points: []string{"A", "C"}},
			},
		}},
		instr.Parameterize{Point: "P", Parameterization: instr.PointsParam{Name: instr.ParamOnSeg, Args: []string{"B", "C"}}},
		instr.Parameterize{Point: "Q", Parameterization: instr.OnCirc{
			Circle: instr.CircleSpec{Kind: instr.CircCoa, Points: []string{"M", "B"}},
		}},
		instr.Parameterize{Point: "R", Parameterization: instr.Coords{}},
		instr.Assert{Constraint: instr.Constraint{Pred: instr.PredPerp, Points: []string{"A", "P", "B", "C"}}},
		instr.AssertNDG{Constraint: instr.Constraint{Pred: instr.PredColl, Points: []string{"A", "B", "P"}}},
		instr.Confirm{Constraint: instr.Constraint{Pred: instr.PredCycl, Points: []string{"A", "B", "C", "X"}, Negate: true}},
	}
	if diff := cmp.Diff(want, prog); diff != "" {
		t.Fatalf("Decode mismatch (-want +got):\n%s", diff)
	}

	kinds := make([]string, len(prog))
	for i, in := range prog {
		kinds[i] = in.Kind()
	}
	assert.Equal(t, []string{
		"sample", "compute", "compute", "compute", "compute",
		"parameterize", "parameterize", "parameterize",
		"assert", "assertNDG", "confirm",
	}, kinds)
}

func TestDecode_JSON(t *testing.T) {
	doc := `[{"sample": {"method": "uniform", "points": ["A"]}},
	         {"compute": {"point": "B", "method": "midpFrom", "points": ["A", "A"]}}]`
	prog, err := instr.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, prog, 2)
	assert.Equal(t, instr.CompMidpFrom, prog[1].(instr.Compute).Computation.Method())
}

func TestDecode_Empty(t *testing.T) {
	prog, err := instr.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, prog)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not yaml":          "- sample: [unterminated",
		"no instruction":    "- {}",
		"two instructions":  "- {sample: {method: uniform, points: [A]}, assert: {pred: coll, points: [A]}}",
		"missing method":    "- sample: {points: [A]}",
		"empty point list":  "- assert: {pred: coll, points: []}",
		"space in name":     "- sample: {method: uniform, points: ['A B']}",
		"interLL one line":  "- compute: {point: X, method: interLL, lines: [{kind: connecting, points: [A, B]}]}",
		"interLC no root":   "- compute: {point: X, method: interLC, line: {kind: connecting, points: [A, B]}, circle: {kind: coa, points: [A, B]}}",
		"interCC no circle": "- compute: {point: X, method: interCC, root: {kind: arbitrary}}",
		"onLine no line":    "- parameterize: {point: P, method: onLine}",
		"onCirc no circle":  "- parameterize: {point: P, method: onCirc}",
		"line without kind": "- parameterize: {point: P, method: onLine, line: {points: [A, B]}}",
		"unknown entry key": "- {sampel: {method: uniform, points: [A]}}",
		"confirm negated":   "- confirm: {pred: coll, points: [A, B, C], negated: true}",
		"compute pionts":    "- compute: {point: M, method: midp, pionts: [A, B]}",
		"line extra key":    "- parameterize: {point: P, method: onLine, line: {kind: connecting, points: [A, B], at: C}}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := instr.Decode(strings.NewReader(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, instr.ErrMalformed)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(orthocenterProgram), 0o600))

	prog, err := instr.Load(path)
	require.NoError(t, err)
	assert.Len(t, prog, 11)

	_, err = instr.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, instr.ErrMalformed)
}
