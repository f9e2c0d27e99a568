// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// compute.go: Compute dispatch over intersections and point constructions.
//
// Contract:
//  - interLC and interCC register the circles they use and an interLC_<name> loss.
//  - Unknown methods fail with ErrUnsupported; wrong arity with ErrBadArgs.

package eval

import (
	"github.com/katalvlaran/geomopt/geom"
	"github.com/katalvlaran/geomopt/instr"
)

func (p *pass[S, C]) compute(name string, c instr.Computation) error {
	switch c := c.(type) {
	case instr.PointsComputation:
		pt, err := p.computePoints(c)
		if err != nil {
			return err
		}
		return p.register(name, pt)

	case instr.InterLL:
		l1, err := p.line(c.L1)
		if err != nil {
			return err
		}
		l2, err := p.line(c.L2)
		if err != nil {
			return err
		}
		return p.register(name, p.InterLL(l1, l2))

	case instr.InterLC:
		l, err := p.line(c.Line)
		if err != nil {
			return err
		}
		circ, err := p.circleOf(c.Circle)
		if err != nil {
			return err
		}
		r1, r2 := p.InterLineCircle(l.P1, l.P2, circ)
		p.circle(circ)
		pt, err := p.selectRoot(r1, r2, c.Root)
		if err != nil {
			return err
		}
		p.makeLCIntersect(name, l, circ)
		return p.register(name, pt)

	case instr.InterCC:
		c1, err := p.circleOf(c.C1)
		if err != nil {
			return err
		}
		c2, err := p.circleOf(c.C2)
		if err != nil {
			return err
		}
		axis := p.RadicalAxis(c1, c2)
		r1, r2 := p.InterLineCircle(axis.P1, axis.P2, c1)
		p.circle(c1)
		p.circle(c2)
		pt, err := p.selectRoot(r1, r2, c.Root)
		if err != nil {
			return err
		}
		p.makeLCIntersect(name, axis, c1)
		return p.register(name, pt)

	default:
		return errorf("compute", ErrUnsupported, "computation %T", c)
	}
}

// computePoints handles the computations whose arguments are point names.
func (p *pass[S, C]) computePoints(c instr.PointsComputation) (geom.Point[S], error) {
	var zero geom.Point[S]
	arity, ok := computeArity[c.Name]
	if !ok {
		return zero, errorf("compute", ErrUnsupported, "method %q", c.Name)
	}
	ps, err := p.lookup(c.Name, c.Args, arity)
	if err != nil {
		return zero, err
	}

	switch c.Name {
	case instr.CompMidp:
		p.segment(ps[0], ps[1])
		return p.Midp(ps[0], ps[1]), nil
	case instr.CompMidpFrom:
		out := p.MidpFrom(ps[0], ps[1])
		p.segment(out, ps[1])
		return out, nil
	case instr.CompAmidpOpp:
		return p.AmidpOpp(ps[0], ps[1], ps[2]), nil
	case instr.CompAmidpSame:
		return p.AmidpSame(ps[0], ps[1], ps[2]), nil
	case instr.CompCircumcenter:
		o := p.Circumcenter(ps[0], ps[1], ps[2])
		p.circle(geom.Circle[S]{Center: o, Radius: p.Dist(o, ps[0])})
		return o, nil
	case instr.CompOrthocenter:
		return p.Orthocenter(ps[0], ps[1], ps[2]), nil
	case instr.CompCentroid:
		return p.Centroid(ps[0], ps[1], ps[2]), nil
	case instr.CompIncenter:
		i := p.Incenter(ps[0], ps[1], ps[2])
		p.circle(geom.Circle[S]{Center: i, Radius: p.Inradius(ps[0], ps[1], ps[2])})
		return i, nil
	case instr.CompExcenter:
		i := p.Excenter(ps[0], ps[1], ps[2])
		p.circle(geom.Circle[S]{Center: i, Radius: p.Exradius(ps[0], ps[1], ps[2])})
		return i, nil
	case instr.CompMixtilinearIncenter:
		i := p.MixtilinearIncenter(ps[0], ps[1], ps[2])
		p.circle(geom.Circle[S]{Center: i, Radius: p.MixtilinearInradius(ps[0], ps[1], ps[2])})
		return i, nil
	case instr.CompIsogonal:
		return p.Isogonal(ps[0], ps[1], ps[2], ps[3]), nil
	case instr.CompIsotomic:
		return p.Isotomic(ps[0], ps[1], ps[2], ps[3]), nil
	case instr.CompInverse:
		p.circle(geom.Circle[S]{Center: ps[1], Radius: p.Dist(ps[1], ps[2])})
		return p.Inverse(ps[0], ps[1], ps[2]), nil
	case instr.CompHarmonicLConj:
		y := p.HarmonicLConj(ps[0], ps[1], ps[2])
		p.segment(ps[1], ps[2])
		p.segment(ps[0], y)
		return y, nil
	case instr.CompFoot:
		ft := p.Foot(ps[0], ps[1], ps[2])
		p.segment(ps[1], ps[2])
		p.segment(ps[0], ft)
		return ft, nil
	default: // instr.CompReflectPL
		y := p.Reflect(ps[0], ps[1], ps[2])
		p.segment(ps[1], ps[2])
		p.segment(ps[0], y)
		return y, nil
	}
}

// computeArity lists the point-argument computations and their arity.
var computeArity = map[string]int{
	instr.CompMidp:                2,
	instr.CompMidpFrom:            2,
	instr.CompAmidpOpp:            3,
	instr.CompAmidpSame:           3,
	instr.CompCircumcenter:        3,
	instr.CompOrthocenter:         3,
	instr.CompCentroid:            3,
	instr.CompIncenter:            3,
	instr.CompExcenter:            3,
	instr.CompMixtilinearIncenter: 3,
	instr.CompIsogonal:            4,
	instr.CompIsotomic:            4,
	instr.CompInverse:             3,
	instr.CompHarmonicLConj:       3,
	instr.CompFoot:                3,
	instr.CompReflectPL:           3,
}
