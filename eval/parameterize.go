// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// parameterize.go: free points and their regularization losses.

package eval

import (
	"math"

	"github.com/katalvlaran/geomopt/geom"
	"github.com/katalvlaran/geomopt/instr"
)

// Parameterization constants.
const (
	latentSquash    = 0.2 // scales the onSeg/onLine latent before the sigmoid
	lineOvershoot   = 3.0 // onLine spans [A − 3(B−A), B + 3(B−A)]
	minPolyVertices = 3
)

// parameterize introduces one point as a smooth function of fresh latents.
// Every unbounded latent z also registers the residual z under
// "<point>_<method>_regularization" so it cannot drift.
func (p *pass[S, C]) parameterize(name string, pm instr.Parameterization) error {
	f := p.F
	method := pm.Method()
	latent := func(suffix string) S { return p.mkvar(name+"_"+suffix, -1, 1) }
	regularize := func(label string, z S) {
		p.addLoss(name+"_"+label+"_regularization", z, RegularizationWeight)
	}

	switch pm := pm.(type) {
	case instr.Coords:
		return p.sampleUniform([]string{name})

	case instr.OnLine:
		a, b, err := p.linePoints(pm.Line)
		if err != nil {
			return err
		}
		z := f.Mul(f.Const(latentSquash), latent(method))
		regularize(method, z)
		p1 := p.Add(a, p.ScaleF(p.Sub(a, b), lineOvershoot))
		p2 := p.Add(b, p.ScaleF(p.Sub(b, a), lineOvershoot))
		p.segment(a, b)
		return p.register(name, p.Add(p1, p.Scale(p.Sub(p2, p1), f.Sigmoid(z))))

	case instr.OnCirc:
		c, err := p.circleOf(pm.Circle)
		if err != nil {
			return err
		}
		rot := latent(method)
		regularize(method, rot)
		theta := f.Mul(rot, f.Const(2*math.Pi))
		x := geom.Point[S]{
			X: f.Add(c.Center.X, f.Mul(c.Radius, f.Cos(theta))),
			Y: f.Add(c.Center.Y, f.Mul(c.Radius, f.Sin(theta))),
		}
		p.circle(c)
		return p.register(name, x)

	case instr.PointsParam:
		return p.parameterizePoints(name, pm, latent, regularize)

	default:
		return errorf("parameterize", ErrUnsupported, "parameterization %T", pm)
	}
}

func (p *pass[S, C]) parameterizePoints(name string, pm instr.PointsParam,
	latent func(string) S, regularize func(string, S)) error {
	f := p.F
	switch pm.Name {
	case instr.ParamOnSeg:
		ps, err := p.lookup(pm.Name, pm.Args, 2)
		if err != nil {
			return err
		}
		a, b := ps[0], ps[1]
		z := f.Mul(f.Const(latentSquash), latent(pm.Name))
		regularize(pm.Name, z)
		p.segment(a, b)
		return p.register(name, p.Add(a, p.Scale(p.Sub(b, a), f.Sigmoid(z))))

	case instr.ParamOnRay, instr.ParamOnRayOpp:
		ps, err := p.lookup(pm.Name, pm.Args, 2)
		if err != nil {
			return err
		}
		a, b := ps[0], ps[1]
		z := latent(pm.Name)
		regularize(pm.Name, z)
		dir := p.Sub(b, a)
		if pm.Name == instr.ParamOnRayOpp {
			dir = p.Sub(a, b)
		}
		x := p.Add(a, p.Scale(dir, f.Exp(z)))
		p.segment(a, b)
		p.segment(a, x)
		return p.register(name, x)

	case instr.ParamInPoly:
		ps, err := p.lookupAtLeast(pm.Name, pm.Args, minPolyVertices)
		if err != nil {
			return err
		}
		zs := make([]S, len(ps))
		for i, v := range pm.Args {
			zs[i] = latent(pm.Name + "_" + v)
			regularize(pm.Name+"_"+v, zs[i])
		}
		ws := p.Softmax(zs)
		xs, ys := make([]S, len(ps)), make([]S, len(ps))
		for i, v := range ps {
			xs[i], ys[i] = f.Mul(v.X, ws[i]), f.Mul(v.Y, ws[i])
		}
		return p.register(name, geom.Point[S]{X: f.Sum(xs), Y: f.Sum(ys)})

	case instr.ParamCoords:
		return p.sampleUniform([]string{name})

	default:
		return errorf("parameterize", ErrUnsupported, "method %q", pm.Name)
	}
}
