// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// predicates.go: predicate residuals and the figures they imply.
//
// Contract:
//  - Residuals come back in a fixed order per predicate.
//  - coll is O(C(n,3)) and cycl O(C(n,4)) in their point counts.

package eval

import (
	"slices"

	"github.com/katalvlaran/geomopt/geom"
	"github.com/katalvlaran/geomopt/instr"
)

// predicateArity lists fixed-arity predicates. Variadic ones (coll, cycl,
// insidePolygon) have a minimum in predicateMinArity instead.
var predicateArity = map[string]int{
	instr.PredAmidpOpp:     4,
	instr.PredAmidpSame:    4,
	instr.PredBetween:      3,
	instr.PredCircumcenter: 4,
	instr.PredCong:         4,
	instr.PredContri:       6,
	instr.PredDistLt:       4,
	instr.PredDistGt:       4,
	instr.PredEqAngle:      8,
	instr.PredEqOAngle:     6,
	instr.PredEqRatio:      8,
	instr.PredFoot:         4,
	instr.PredIBisector:    4,
	instr.PredIncenter:     4,
	instr.PredInterLL:      5,
	instr.PredIsogonal:     5,
	instr.PredMidp:         3,
	instr.PredOnRay:        3,
	instr.PredOnSeg:        3,
	instr.PredOppSides:     4,
	instr.PredOrthocenter:  4,
	instr.PredPerp:         4,
	instr.PredPara:         4,
	instr.PredReflectPL:    4,
	instr.PredSameSide:     4,
	instr.PredSimTri:       6,
}

var predicateMinArity = map[string]int{
	instr.PredColl:          3,
	instr.PredCycl:          4,
	instr.PredInsidePolygon: 4,
}

// predicate returns the residuals of pred over names, in a fixed order.
// Assert drives them to zero; AssertNDG keeps them away from zero.
func (p *pass[S, C]) predicate(pred string, names []string) ([]S, error) {
	var (
		ps  []geom.Point[S]
		err error
	)
	if n, ok := predicateArity[pred]; ok {
		ps, err = p.lookup(pred, names, n)
	} else if n, ok := predicateMinArity[pred]; ok {
		ps, err = p.lookupAtLeast(pred, names, n)
	} else {
		return nil, errorf("predicate", ErrUnsupported, "%q", pred)
	}
	if err != nil {
		return nil, err
	}

	f := p.F
	zero := f.Const(0)
	one := func(v S) []S { return []S{v} }

	switch pred {
	case instr.PredAmidpOpp:
		return one(p.Dist(ps[0], p.AmidpOpp(ps[1], ps[2], ps[3]))), nil
	case instr.PredAmidpSame:
		return one(p.Dist(ps[0], p.AmidpSame(ps[1], ps[2], ps[3]))), nil
	case instr.PredBetween:
		return p.BetweenGap(ps[0], ps[1], ps[2]), nil
	case instr.PredCircumcenter:
		o := ps[0]
		p.circle(geom.Circle[S]{Center: o, Radius: p.Dist(o, ps[1])})
		return one(p.Dist(o, p.Circumcenter(ps[1], ps[2], ps[3]))), nil

	case instr.PredColl:
		var out []S
		forCombinations(len(ps), 3, func(ix []int) {
			out = append(out, p.CollPhi(ps[ix[0]], ps[ix[1]], ps[ix[2]]))
		})
		for i := 0; i+1 < len(ps); i++ {
			p.segment(ps[i], ps[i+1])
		}
		return out, nil

	case instr.PredCong:
		a, b := ps[0], ps[1]
		// A shared endpoint names the center of an implied circle.
		switch {
		case slices.Contains(names[2:], names[0]):
			p.circle(geom.Circle[S]{Center: a, Radius: p.Dist(a, b)})
		case slices.Contains(names[2:], names[1]):
			p.circle(geom.Circle[S]{Center: b, Radius: p.Dist(a, b)})
		}
		return one(p.CongDiff(a, b, ps[2], ps[3])), nil

	case instr.PredContri:
		a, b, c, x, y, z := ps[0], ps[1], ps[2], ps[3], ps[4], ps[5]
		p.triangleSegments(a, b, c, x, y, z)
		return []S{
			p.EqAngle6Diff(a, b, c, x, y, z),
			p.EqAngle6Diff(b, c, a, y, z, x),
			p.EqAngle6Diff(c, a, b, z, x, y),
			p.CongDiff(a, b, x, y),
			p.CongDiff(a, c, x, z),
			p.CongDiff(b, c, y, z),
		}, nil

	case instr.PredCycl:
		var out []S
		forCombinations(len(ps), 4, func(ix []int) {
			out = append(out, p.CyclDiff(ps[ix[0]], ps[ix[1]], ps[ix[2]], ps[ix[3]]))
		})
		o := p.Circumcenter(ps[0], ps[1], ps[2])
		p.circle(geom.Circle[S]{Center: o, Radius: p.Dist(o, ps[0])})
		return out, nil

	case instr.PredDistLt:
		return one(f.Max(zero, f.Sub(p.Dist(ps[0], ps[1]), p.Dist(ps[2], ps[3])))), nil
	case instr.PredDistGt:
		return one(f.Max(zero, f.Sub(p.Dist(ps[2], ps[3]), p.Dist(ps[0], ps[1])))), nil
	case instr.PredEqAngle:
		return one(p.EqAngle8Diff(ps[0], ps[1], ps[2], ps[3], ps[4], ps[5], ps[6], ps[7])), nil
	case instr.PredEqOAngle:
		return one(f.Sub(p.Angle(ps[0], ps[1], ps[2]), p.Angle(ps[3], ps[4], ps[5]))), nil
	case instr.PredEqRatio:
		return one(p.EqRatioDiff(ps[0], ps[1], ps[2], ps[3], ps[4], ps[5], ps[6], ps[7])), nil
	case instr.PredFoot:
		ft, x, a, b := ps[0], ps[1], ps[2], ps[3]
		return []S{p.CollPhi(ft, a, b), p.PerpPhi(ft, x, a, b)}, nil

	case instr.PredIBisector:
		x, b, a, c := ps[0], ps[1], ps[2], ps[3]
		p.segment(b, a)
		p.segment(a, x)
		p.segment(a, c)
		return one(p.EqAngle8Diff(b, a, a, x, x, a, a, c)), nil

	case instr.PredIncenter:
		return one(p.Dist(ps[0], p.Incenter(ps[1], ps[2], ps[3]))), nil
	case instr.PredInsidePolygon:
		return p.InPolyPhis(ps[0], ps[1:]), nil
	case instr.PredInterLL:
		x := ps[0]
		return []S{p.CollPhi(x, ps[1], ps[2]), p.CollPhi(x, ps[3], ps[4])}, nil
	case instr.PredIsogonal:
		return one(p.Dist(ps[0], p.Isogonal(ps[1], ps[2], ps[3], ps[4]))), nil
	case instr.PredMidp:
		return one(p.Dist(ps[0], p.Midp(ps[1], ps[2]))), nil
	case instr.PredOnRay:
		return append(one(p.CollPhi(ps[0], ps[1], ps[2])), p.OnRayGap(ps[0], ps[1], ps[2])...), nil
	case instr.PredOnSeg:
		return append(one(p.CollPhi(ps[0], ps[1], ps[2])), p.BetweenGap(ps[0], ps[1], ps[2])...), nil
	case instr.PredOppSides:
		return one(f.Max(zero, p.SideScoreProd(ps[0], ps[1], ps[2], ps[3]))), nil
	case instr.PredSameSide:
		return one(f.Max(zero, f.Neg(p.SideScoreProd(ps[0], ps[1], ps[2], ps[3])))), nil
	case instr.PredOrthocenter:
		return one(p.Dist(ps[0], p.Orthocenter(ps[1], ps[2], ps[3]))), nil
	case instr.PredPerp:
		return one(p.PerpPhi(ps[0], ps[1], ps[2], ps[3])), nil
	case instr.PredPara:
		return one(p.ParaPhi(ps[0], ps[1], ps[2], ps[3])), nil
	case instr.PredReflectPL:
		x, y, a, b := ps[0], ps[1], ps[2], ps[3]
		return []S{p.PerpPhi(x, y, a, b), p.CongDiff(a, x, a, y)}, nil

	default: // instr.PredSimTri
		a, b, c, x, y, z := ps[0], ps[1], ps[2], ps[3], ps[4], ps[5]
		p.triangleSegments(a, b, c, x, y, z)
		return []S{
			p.EqAngle6Diff(a, b, c, x, y, z),
			p.EqAngle6Diff(b, c, a, y, z, x),
			p.EqAngle6Diff(c, a, b, z, x, y),
		}, nil
	}
}

func (p *pass[S, C]) triangleSegments(a, b, c, x, y, z geom.Point[S]) {
	for _, s := range [][2]geom.Point[S]{{a, b}, {b, c}, {c, a}, {x, y}, {y, z}, {z, x}} {
		p.segment(s[0], s[1])
	}
}

// forCombinations calls fn with every k-subset of [0, n) in lexicographic
// order. The slice passed to fn is reused between calls.
func forCombinations(n, k int, fn func([]int)) {
	ix := make([]int, k)
	for i := range ix {
		ix[i] = i
	}
	for {
		fn(ix)
		i := k - 1
		for i >= 0 && ix[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		ix[i]++
		for j := i + 1; j < k; j++ {
			ix[j] = ix[j-1] + 1
		}
	}
}
