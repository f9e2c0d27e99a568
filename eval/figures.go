// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// figures.go: line, circle and root-selection descriptions resolved
// against the pass registry.

package eval

import (
	"github.com/katalvlaran/geomopt/geom"
	"github.com/katalvlaran/geomopt/instr"
)

// linePoints resolves a line description to two distinct points on it.
func (p *pass[S, C]) linePoints(l instr.LineSpec) (geom.Point[S], geom.Point[S], error) {
	var zero geom.Point[S]
	switch l.Kind {
	case instr.LineConnecting:
		ps, err := p.lookup(l.Kind, l.Points, 2)
		if err != nil {
			return zero, zero, err
		}
		return ps[0], ps[1], nil

	case instr.LineParaAt, instr.LinePerpAt:
		ps, err := p.lookup(l.Kind, l.Points, 3)
		if err != nil {
			return zero, zero, err
		}
		x, a, b := ps[0], ps[1], ps[2]
		if l.Kind == instr.LineParaAt {
			return x, p.Add(x, p.Sub(b, a)), nil
		}
		return x, p.Add(x, p.RotateCCW90(p.Sub(a, b))), nil

	case instr.LineMediator:
		ps, err := p.lookup(l.Kind, l.Points, 2)
		if err != nil {
			return zero, zero, err
		}
		m := p.Midp(ps[0], ps[1])
		return m, p.Add(m, p.RotateCCW90(p.Sub(ps[0], ps[1]))), nil

	case instr.LineIBisector, instr.LineEBisector:
		ps, err := p.lookup(l.Kind, l.Points, 3)
		if err != nil {
			return zero, zero, err
		}
		a, b, c := ps[0], ps[1], ps[2]
		// X on ray BA with |BX| = |BC|; BM bisects the angle ABC.
		x := p.Add(b, p.Scale(p.Sub(a, b), p.F.Div(p.Dist(b, c), p.Dist(b, a))))
		m := p.Midp(x, c)
		if l.Kind == instr.LineIBisector {
			return b, m, nil
		}
		return b, p.Add(b, p.RotateCCW90(p.Sub(m, b))), nil

	case instr.LineEqOAngle:
		ps, err := p.lookup(l.Kind, l.Points, 5)
		if err != nil {
			return zero, zero, err
		}
		b, c, d, e, f := ps[0], ps[1], ps[2], ps[3], ps[4]
		x := p.Add(b, p.Rotate(p.Angle(d, e, f), p.Sub(c, b)))
		p.segment(b, c)
		p.segment(d, e)
		p.segment(e, f)
		return b, x, nil

	default:
		return zero, zero, errorf("line", ErrUnsupported, "kind %q", l.Kind)
	}
}

func (p *pass[S, C]) line(l instr.LineSpec) (geom.Line[S], error) {
	a, b, err := p.linePoints(l)
	if err != nil {
		return geom.Line[S]{}, err
	}
	return p.LineThrough(a, b), nil
}

func (p *pass[S, C]) circleOf(c instr.CircleSpec) (geom.Circle[S], error) {
	switch c.Kind {
	case instr.CircC3:
		ps, err := p.lookup(c.Kind, c.Points, 3)
		if err != nil {
			return geom.Circle[S]{}, err
		}
		o := p.Circumcenter(ps[0], ps[1], ps[2])
		return geom.Circle[S]{Center: o, Radius: p.Dist(o, ps[0])}, nil
	case instr.CircCoa:
		ps, err := p.lookup(c.Kind, c.Points, 2)
		if err != nil {
			return geom.Circle[S]{}, err
		}
		return geom.Circle[S]{Center: ps[0], Radius: p.Dist(ps[0], ps[1])}, nil
	case instr.CircCong:
		ps, err := p.lookup(c.Kind, c.Points, 3)
		if err != nil {
			return geom.Circle[S]{}, err
		}
		return geom.Circle[S]{Center: ps[0], Radius: p.Dist(ps[1], ps[2])}, nil
	case instr.CircDiam:
		ps, err := p.lookup(c.Kind, c.Points, 2)
		if err != nil {
			return geom.Circle[S]{}, err
		}
		o := p.Midp(ps[0], ps[1])
		return geom.Circle[S]{Center: o, Radius: p.Dist(o, ps[0])}, nil
	default:
		return geom.Circle[S]{}, errorf("circle", ErrUnsupported, "kind %q", c.Kind)
	}
}

// selectRoot resolves a two-valued intersection. Every policy is a Select.
// arbitrary picks the canonical root, independent of argument order.
func (p *pass[S, C]) selectRoot(r1, r2 geom.Point[S], rs instr.RootSelect) (geom.Point[S], error) {
	switch rs.Kind {
	case instr.RootArbitrary:
		return p.Canonical(r1, r2), nil
	case instr.RootNeq, instr.RootCloserTo, instr.RootFurtherFrom:
		ps, err := p.lookup(rs.Kind, rs.Points, 1)
		if err != nil {
			return geom.Point[S]{}, err
		}
		switch rs.Kind {
		case instr.RootNeq:
			return p.NotEqual(r1, r2, ps[0]), nil
		case instr.RootCloserTo:
			return p.CloserTo(r1, r2, ps[0]), nil
		default:
			return p.FurtherFrom(r1, r2, ps[0]), nil
		}
	case instr.RootOppSides, instr.RootSameSide:
		ps, err := p.lookup(rs.Kind, rs.Points, 1)
		if err != nil {
			return geom.Point[S]{}, err
		}
		if rs.Line == nil {
			return geom.Point[S]{}, errorf(rs.Kind, ErrBadArgs, "missing reference line")
		}
		a, b, err := p.linePoints(*rs.Line)
		if err != nil {
			return geom.Point[S]{}, err
		}
		if rs.Kind == instr.RootOppSides {
			return p.OppSidesOf(r1, r2, ps[0], a, b), nil
		}
		return p.SameSideOf(r1, r2, ps[0], a, b), nil
	default:
		return geom.Point[S]{}, errorf("root", ErrUnsupported, "kind %q", rs.Kind)
	}
}

// lcIntersectLoss is the hinge max(0, d − r) where d is the distance from
// the center to the line. It is 0 whenever the line meets the circle, and
// also when the defining points of the line have collapsed.
func (p *pass[S, C]) lcIntersectLoss(l geom.Line[S], c geom.Circle[S]) S {
	f := p.F
	a, b, o := l.P1, l.P2, c.Center
	operp := p.Add(p.RotateCCW90(p.Sub(a, b)), o)
	foot := p.InterLL(l, p.LineThrough(o, operp))
	d := p.Dist(o, foot)
	hinge := f.Select(f.Lt(c.Radius, d), f.Sub(d, c.Radius), f.Const(0))

	eps := f.Const(p.cfg.eps)
	degenerate := f.Or(f.Lt(p.Dist(o, operp), eps), f.Lt(p.Dist(a, b), eps))
	return f.Select(degenerate, f.Const(0), hinge)
}

func (p *pass[S, C]) makeLCIntersect(name string, l geom.Line[S], c geom.Circle[S]) {
	p.addLoss("interLC_"+name, p.lcIntersectLoss(l, c), LCIntersectWeight)
}
