// SPDX-License-Identifier: MIT

package instr

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// programValidate checks wire structs. Initialized in init() with the custom
// point-name rule.
var programValidate *validator.Validate

func init() {
	programValidate = validator.New()
	if err := programValidate.RegisterValidation("pointname", validatePointName); err != nil {
		panic(fmt.Sprintf("instr: register pointname validation: %v", err))
	}
}

// validatePointName accepts non-empty names without whitespace.
func validatePointName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) < 0
}

type wireLine struct {
	Kind   string   `yaml:"kind" validate:"required"`
	Points []string `yaml:"points" validate:"required,min=1,dive,pointname"`
}

type wireCircle struct {
	Kind   string   `yaml:"kind" validate:"required"`
	Points []string `yaml:"points" validate:"required,min=1,dive,pointname"`
}

type wireRoot struct {
	Kind   string    `yaml:"kind" validate:"required"`
	Points []string  `yaml:"points" validate:"dive,pointname"`
	Line   *wireLine `yaml:"line"`
}

type wireSample struct {
	Method string   `yaml:"method" validate:"required"`
	Points []string `yaml:"points" validate:"required,min=1,dive,pointname"`
	Args   []string `yaml:"args" validate:"dive,pointname"`
}

type wireCompute struct {
	Point   string       `yaml:"point" validate:"required,pointname"`
	Method  string       `yaml:"method" validate:"required"`
	Points  []string     `yaml:"points" validate:"dive,pointname"`
	Line    *wireLine    `yaml:"line"`
	Lines   []wireLine   `yaml:"lines" validate:"omitempty,len=2,dive"`
	Circle  *wireCircle  `yaml:"circle"`
	Circles []wireCircle `yaml:"circles" validate:"omitempty,len=2,dive"`
	Root    *wireRoot    `yaml:"root"`
}

type wireParameterize struct {
	Point  string      `yaml:"point" validate:"required,pointname"`
	Method string      `yaml:"method" validate:"required"`
	Points []string    `yaml:"points" validate:"dive,pointname"`
	Line   *wireLine   `yaml:"line"`
	Circle *wireCircle `yaml:"circle"`
}

type wireConstraint struct {
	Pred   string   `yaml:"pred" validate:"required"`
	Points []string `yaml:"points" validate:"required,min=1,dive,pointname"`
	Negate bool     `yaml:"negate"`
}

type wireInstruction struct {
	Sample       *wireSample       `yaml:"sample"`
	Compute      *wireCompute      `yaml:"compute"`
	Parameterize *wireParameterize `yaml:"parameterize"`
	Assert       *wireConstraint   `yaml:"assert"`
	AssertNDG    *wireConstraint   `yaml:"assertNDG"`
	Confirm      *wireConstraint   `yaml:"confirm"`
}

// Load reads a program file.
func Load(path string) (Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instr: Load: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a program document: a YAML (or JSON) list of entries with
// exactly one instruction key each. An empty document is an empty Program.
// Unknown keys are rejected.
func Decode(r io.Reader) (Program, error) {
	var entries []wireInstruction
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("instr: Decode: %v: %w", err, ErrMalformed)
	}

	prog := make(Program, 0, len(entries))
	for i, e := range entries {
		if err := programValidate.Struct(e); err != nil {
			return nil, entryErrorf(i, "%v", err)
		}
		in, err := e.convert(i)
		if err != nil {
			return nil, err
		}
		prog = append(prog, in)
	}
	return prog, nil
}

func (e wireInstruction) convert(i int) (Instruction, error) {
	var out []Instruction
	if e.Sample != nil {
		out = append(out, Sample{Method: e.Sample.Method, Points: e.Sample.Points, Args: e.Sample.Args})
	}
	if e.Compute != nil {
		c, err := e.Compute.convert(i)
		if err != nil {
			return nil, err
		}
		out = append(out, Compute{Point: e.Compute.Point, Computation: c})
	}
	if e.Parameterize != nil {
		p, err := e.Parameterize.convert(i)
		if err != nil {
			return nil, err
		}
		out = append(out, Parameterize{Point: e.Parameterize.Point, Parameterization: p})
	}
	if e.Assert != nil {
		out = append(out, Assert{Constraint: e.Assert.constraint()})
	}
	if e.AssertNDG != nil {
		out = append(out, AssertNDG{Constraint: e.AssertNDG.constraint()})
	}
	if e.Confirm != nil {
		out = append(out, Confirm{Constraint: e.Confirm.constraint()})
	}
	if len(out) != 1 {
		return nil, entryErrorf(i, "want exactly one instruction key, got %d", len(out))
	}
	return out[0], nil
}

func (w *wireCompute) convert(i int) (Computation, error) {
	switch w.Method {
	case CompInterLL:
		if len(w.Lines) != 2 {
			return nil, entryErrorf(i, "%s needs two lines", w.Method)
		}
		return InterLL{L1: w.Lines[0].toLine(), L2: w.Lines[1].toLine()}, nil
	case CompInterLC:
		if w.Line == nil || w.Circle == nil || w.Root == nil {
			return nil, entryErrorf(i, "%s needs line, circle and root", w.Method)
		}
		return InterLC{Line: w.Line.toLine(), Circle: w.Circle.toCircle(), Root: w.Root.toRoot()}, nil
	case CompInterCC:
		if len(w.Circles) != 2 || w.Root == nil {
			return nil, entryErrorf(i, "%s needs two circles and root", w.Method)
		}
		return InterCC{C1: w.Circles[0].toCircle(), C2: w.Circles[1].toCircle(), Root: w.Root.toRoot()}, nil
	default:
		return PointsComputation{Name: w.Method, Args: w.Points}, nil
	}
}

func (w *wireParameterize) convert(i int) (Parameterization, error) {
	switch w.Method {
	case ParamCoords:
		return Coords{}, nil
	case ParamOnLine:
		if w.Line == nil {
			return nil, entryErrorf(i, "%s needs a line", w.Method)
		}
		return OnLine{Line: w.Line.toLine()}, nil
	case ParamOnCirc:
		if w.Circle == nil {
			return nil, entryErrorf(i, "%s needs a circle", w.Method)
		}
		return OnCirc{Circle: w.Circle.toCircle()}, nil
	default:
		return PointsParam{Name: w.Method, Args: w.Points}, nil
	}
}

func (w wireLine) toLine() LineSpec       { return LineSpec{Kind: w.Kind, Points: w.Points} }
func (w wireCircle) toCircle() CircleSpec { return CircleSpec{Kind: w.Kind, Points: w.Points} }

func (w wireRoot) toRoot() RootSelect {
	rs := RootSelect{Kind: w.Kind, Points: w.Points}
	if w.Line != nil {
		l := w.Line.toLine()
		rs.Line = &l
	}
	return rs
}

func (w wireConstraint) constraint() Constraint {
	return Constraint{Pred: w.Pred, Points: w.Points, Negate: w.Negate}
}
