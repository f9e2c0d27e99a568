// SPDX-License-Identifier: MIT

package deps

import "github.com/katalvlaran/geomopt/instr"

// Defines lists the points an instruction introduces.
func Defines(in instr.Instruction) []string {
	switch in := in.(type) {
	case instr.Sample:
		return in.Points
	case instr.Compute:
		return []string{in.Point}
	case instr.Parameterize:
		return []string{in.Point}
	default:
		return nil
	}
}

// Uses lists the points an instruction references, without repeats, in
// first-mention order. Sample arguments name the sampled points themselves
// and are not references.
func Uses(in instr.Instruction) []string {
	var names []string
	switch in := in.(type) {
	case instr.Compute:
		names = computationRefs(in.Computation)
	case instr.Parameterize:
		names = parameterizationRefs(in.Parameterization)
	case instr.Assert:
		names = in.Constraint.Points
	case instr.AssertNDG:
		names = in.Constraint.Points
	case instr.Confirm:
		names = in.Constraint.Points
	}
	return dedupe(names)
}

func computationRefs(c instr.Computation) []string {
	switch c := c.(type) {
	case instr.PointsComputation:
		return c.Args
	case instr.InterLL:
		return concat(c.L1.Points, c.L2.Points)
	case instr.InterLC:
		return concat(c.Line.Points, c.Circle.Points, rootRefs(c.Root))
	case instr.InterCC:
		return concat(c.C1.Points, c.C2.Points, rootRefs(c.Root))
	default:
		return nil
	}
}

func parameterizationRefs(p instr.Parameterization) []string {
	switch p := p.(type) {
	case instr.PointsParam:
		return p.Args
	case instr.OnLine:
		return p.Line.Points
	case instr.OnCirc:
		return p.Circle.Points
	default:
		return nil
	}
}

func rootRefs(r instr.RootSelect) []string {
	if r.Line == nil {
		return r.Points
	}
	return concat(r.Points, r.Line.Points)
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
