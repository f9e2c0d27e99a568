// SPDX-License-Identifier: MIT

package instr

// Instruction is one step of a Program. The set of implementations is closed.
type Instruction interface {
	// Kind is the instruction key as it appears in program files.
	Kind() string
	instruction()
}

// Program is an ordered instruction list. Later instructions may reference
// any point registered by an earlier one.
type Program []Instruction

// Sample introduces Points from fresh free variables using Method's prior.
// Args carries method extras such as the apex name of an isosceles triangle.
type Sample struct {
	Method string
	Points []string
	Args   []string
}

// Compute derives Point from already registered points.
type Compute struct {
	Point       string
	Computation Computation
}

// Parameterize introduces Point as a smooth function of a free variable.
type Parameterize struct {
	Point            string
	Parameterization Parameterization
}

// Assert adds equality residuals to the loss set.
type Assert struct{ Constraint Constraint }

// AssertNDG adds non-degeneracy residuals to the NDG set.
type AssertNDG struct{ Constraint Constraint }

// Confirm adds residuals to the goal set.
type Confirm struct{ Constraint Constraint }

// Constraint is a predicate over an ordered list of point names.
type Constraint struct {
	Pred   string
	Points []string
	Negate bool
}

func (Sample) Kind() string       { return "sample" }
func (Compute) Kind() string      { return "compute" }
func (Parameterize) Kind() string { return "parameterize" }
func (Assert) Kind() string       { return "assert" }
func (AssertNDG) Kind() string    { return "assertNDG" }
func (Confirm) Kind() string      { return "confirm" }

func (Sample) instruction()       {}
func (Compute) instruction()      {}
func (Parameterize) instruction() {}
func (Assert) instruction()       {}
func (AssertNDG) instruction()    {}
func (Confirm) instruction()      {}

// Computation is the payload of Compute.
type Computation interface {
	Method() string
	computation()
}

// PointsComputation is every computation whose arguments are point names.
type PointsComputation struct {
	Name string
	Args []string
}

// InterLL intersects two lines.
type InterLL struct{ L1, L2 LineSpec }

// InterLC intersects a line with a circle and picks a root.
type InterLC struct {
	Line   LineSpec
	Circle CircleSpec
	Root   RootSelect
}

// InterCC intersects two circles and picks a root.
type InterCC struct {
	C1, C2 CircleSpec
	Root   RootSelect
}

func (c PointsComputation) Method() string { return c.Name }
func (InterLL) Method() string             { return CompInterLL }
func (InterLC) Method() string             { return CompInterLC }
func (InterCC) Method() string             { return CompInterCC }

func (PointsComputation) computation() {}
func (InterLL) computation()           {}
func (InterLC) computation()           {}
func (InterCC) computation()           {}

// Parameterization is the payload of Parameterize.
type Parameterization interface {
	Method() string
	parameterization()
}

// PointsParam is every parameterization whose arguments are point names.
type PointsParam struct {
	Name string
	Args []string
}

// OnLine places the point on a line.
type OnLine struct{ Line LineSpec }

// OnCirc places the point on a circle.
type OnCirc struct{ Circle CircleSpec }

// Coords gives the point two free coordinates.
type Coords struct{}

func (p PointsParam) Method() string { return p.Name }
func (OnLine) Method() string        { return ParamOnLine }
func (OnCirc) Method() string        { return ParamOnCirc }
func (Coords) Method() string        { return ParamCoords }

func (PointsParam) parameterization() {}
func (OnLine) parameterization()      {}
func (OnCirc) parameterization()      {}
func (Coords) parameterization()      {}

// LineSpec names a line by construction kind and point arguments.
type LineSpec struct {
	Kind   string
	Points []string
}

// CircleSpec names a circle by construction kind and point arguments.
type CircleSpec struct {
	Kind   string
	Points []string
}

// RootSelect is the tie-break policy for a two-valued intersection. Line is
// set only for the side-based policies.
type RootSelect struct {
	Kind   string
	Points []string
	Line   *LineSpec
}
