// SPDX-License-Identifier: MIT
// Package: geomopt/eval
//
// sample.go: the sampling methods and their initial configurations.

package eval

import (
	"math"
	"strconv"

	"github.com/katalvlaran/geomopt/geom"
	"github.com/katalvlaran/geomopt/instr"
)

// Sampling priors.
const (
	triXLo, triXHi     = -1.0, 1.2
	apexLoAcute        = 1.1
	apexLoGeneric      = 0.4
	apexSpan           = 3.0
	polygonAngleZBound = 0.5
	polygonSquash      = 0.2
	polygonScaleSpan   = 0.5
)

func (p *pass[S, C]) sample(in instr.Sample) error {
	switch in.Method {
	case instr.SampleUniform:
		return p.sampleUniform(in.Points)
	case instr.SamplePolygon:
		return p.samplePolygon(in.Method, in.Points)
	case instr.SampleTriangle:
		return p.samplePolygon(in.Method, in.Points)
	case instr.SampleAcuteTri:
		return p.sampleTriangle(in.Method, in.Points, triangleShape{acute: true})
	case instr.SampleEquiTri:
		return p.sampleTriangle(in.Method, in.Points, triangleShape{equi: true})
	case instr.SampleAcuteIsoTri, instr.SampleIsoTri, instr.SampleRightTri:
		if len(in.Args) != 1 {
			return errorf(in.Method, ErrBadArgs, "want one vertex argument, got %d", len(in.Args))
		}
		shape := triangleShape{acute: in.Method == instr.SampleAcuteIsoTri}
		if in.Method == instr.SampleRightTri {
			shape.right = in.Args[0]
		} else {
			shape.iso = in.Args[0]
		}
		return p.sampleTriangle(in.Method, in.Points, shape)
	default:
		return errorf("sample", ErrUnsupported, "method %q", in.Method)
	}
}

func (p *pass[S, C]) sampleUniform(names []string) error {
	if len(names) != 1 {
		return errorf(instr.SampleUniform, ErrBadArgs, "want 1 point, got %d", len(names))
	}
	n := names[0]
	return p.register(n, geom.Point[S]{X: p.mkvar(n+"x", -1, 1), Y: p.mkvar(n+"y", -1, 1)})
}

// samplePolygon walks from the base edge (-2,0)→(2,0), turning by a bounded
// latent interior angle and rescaling the edge at every vertex. Closure is
// only approximate, so three soft losses pull the walk shut.
func (p *pass[S, C]) samplePolygon(method string, names []string) error {
	n := len(names)
	if n < 3 {
		return errorf(method, ErrBadArgs, "want at least 3 points, got %d", n)
	}
	f := p.F

	mult := float64(n-2)/float64(n)*math.Pi + math.Pi/3
	angles := make([]S, n)
	scales := make([]S, n)
	for i := range n {
		az := p.mkvar("polygon_angle_zs_"+strconv.Itoa(i), -polygonAngleZBound, polygonAngleZBound)
		angles[i] = f.Mul(f.Const(mult), f.Tanh(f.Mul(f.Const(polygonSquash), az)))
	}
	for i := range n {
		sz := p.mkvar("polygon_scale_zs_"+strconv.Itoa(i), -1, 1)
		scales[i] = f.Mul(f.Const(polygonScaleSpan), f.Tanh(f.Mul(f.Const(polygonSquash), sz)))
	}

	ps := []geom.Point[S]{p.Pt(-2, 0), p.Pt(2, 0)}
	side := p.Dist(ps[0], ps[1])
	for i := 2; i <= n; i++ {
		a, b := ps[len(ps)-2], ps[len(ps)-1]
		x := p.Add(b, p.Rotate(f.Neg(angles[i-1]), p.Sub(a, b)))
		length := f.Mul(side, f.Add(f.Const(1), scales[i-1]))
		ps = append(ps, p.Add(b, p.Scale(p.Sub(x, b), f.Div(length, p.Dist(x, b)))))
	}

	p.addLoss("polygon-angle-sum", f.Sub(f.Sum(angles), f.Const(math.Pi*float64(n-2))), PolygonAngleSumWeight)
	p.addLoss("polygon-first-eq-last", p.Dist(ps[0], ps[n]), PolygonClosureWeight)
	p.addLoss("polygon-first-angle-eq-sampled",
		f.Sub(angles[0], p.Angle(ps[n-1], ps[0], ps[1])), PolygonFirstAngleWeight)

	for i := range n {
		p.segment(ps[i], ps[(i+1)%n])
	}
	for i, name := range names {
		if err := p.register(name, ps[i]); err != nil {
			return err
		}
	}
	return nil
}

// triangleShape selects a triangle prior. iso and right name the special
// vertex when set.
type triangleShape struct {
	iso, right  string
	acute, equi bool
}

// sampleTriangle fixes B=(-2,0), C=(2,0) and places the apex A from free
// variables, then rebinds names so the special vertex gets the apex.
func (p *pass[S, C]) sampleTriangle(method string, names []string, shape triangleShape) error {
	if len(names) != 3 {
		return errorf(method, ErrBadArgs, "want 3 points, got %d", len(names))
	}
	nA, nB, nC := names[0], names[1], names[2]
	if special := shape.iso + shape.right; special != "" && special != nA && special != nB && special != nC {
		return errorf(method, ErrBadArgs, "vertex %q is not one of %v", special, names)
	}
	f := p.F
	b, c := p.Pt(-2, 0), p.Pt(2, 0)

	var ax, ay S
	if shape.iso != "" || shape.equi {
		ax = f.Const(0)
	} else {
		ax = p.mkvar("tri_x", triXLo, triXHi)
	}
	switch {
	case shape.right != "":
		ay = f.Sqrt(f.Sub(f.Const(4), f.Mul(ax, ax)))
	case shape.equi:
		ay = f.Const(2 * math.Sqrt(3))
	default:
		lo := apexLoGeneric
		if shape.acute {
			lo = apexLoAcute
		}
		ay = f.Add(f.Const(lo), f.Mul(f.Const(apexSpan), f.Sigmoid(p.mkvar("tri", -1, 1))))
	}
	a := geom.Point[S]{X: ax, Y: ay}

	switch special := shape.iso + shape.right; special {
	case nB:
		a, b = b, a
	case nC:
		a, c = c, a
	}
	for _, np := range []struct {
		name string
		pt   geom.Point[S]
	}{{nA, a}, {nB, b}, {nC, c}} {
		if err := p.register(np.name, np.pt); err != nil {
			return err
		}
	}
	p.segment(a, b)
	p.segment(b, c)
	p.segment(c, a)
	return nil
}
