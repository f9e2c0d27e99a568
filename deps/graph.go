// SPDX-License-Identifier: MIT

package deps

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/geomopt/instr"
)

// Graph is the dependency graph of one program. Vertices are instruction
// indices; instruction i has an edge to the definer of every point it uses.
// A Graph is read-only after Build.
type Graph struct {
	prog    instr.Program
	definer map[string]int // point → defining instruction
	points  []string       // defined points in program order
	edges   [][]int        // per instruction: definers of its references, deduplicated
}

// Build indexes prog. Every referenced point must be defined exactly once,
// anywhere in the program.
//
// Complexity: O(I + R).
func Build(prog instr.Program) (*Graph, error) {
	g := &Graph{
		prog:    prog,
		definer: make(map[string]int),
		edges:   make([][]int, len(prog)),
	}
	// 1. Definitions.
	for i, in := range prog {
		if in == nil {
			return nil, fmt.Errorf("deps: instruction %d: %w", i, ErrNilInstruction)
		}
		for _, p := range Defines(in) {
			if j, ok := g.definer[p]; ok {
				return nil, fmt.Errorf("deps: %q at instructions %d and %d: %w", p, j, i, ErrDuplicateDefinition)
			}
			g.definer[p] = i
			g.points = append(g.points, p)
		}
	}
	// 2. References.
	for i, in := range prog {
		for _, p := range Uses(in) {
			j, ok := g.definer[p]
			if !ok {
				return nil, fmt.Errorf("deps: instruction %d: %q: %w", i, p, ErrUndefinedPoint)
			}
			if !slices.Contains(g.edges[i], j) {
				g.edges[i] = append(g.edges[i], j)
			}
		}
	}
	return g, nil
}

// Points lists defined points in program order.
func (g *Graph) Points() []string { return slices.Clone(g.points) }

// Definer returns the index of the instruction defining p.
func (g *Graph) Definer(p string) (int, bool) {
	i, ok := g.definer[p]
	return i, ok
}

// Order returns the instructions rearranged so every point is defined
// before its first use. Instructions are emitted in DFS post-order, starting
// from each instruction in program order, so a program that is already in
// definition-before-use order comes back unchanged.
//
// A point whose definition depends on itself, directly or through other
// definitions, yields ErrCycleDetected.
func (g *Graph) Order(opts ...Option) (instr.Program, error) {
	o := newOptions(opts...)
	w := &walker{g: g, ctx: o.ctx, state: make([]int, len(g.prog))}
	out := make(instr.Program, 0, len(g.prog))
	w.emit = func(i int) { out = append(out, g.prog[i]) }
	for i := range g.prog {
		if err := w.visit(i); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Ancestors lists the points defined by every instruction that the
// definition of p depends on transitively, in program order. Points defined
// by p's own instruction are excluded.
func (g *Graph) Ancestors(p string, opts ...Option) ([]string, error) {
	start, ok := g.definer[p]
	if !ok {
		return nil, fmt.Errorf("deps: %q: %w", p, ErrUndefinedPoint)
	}
	o := newOptions(opts...)
	reached := make([]bool, len(g.prog))
	w := &walker{g: g, ctx: o.ctx, state: make([]int, len(g.prog))}
	w.emit = func(i int) { reached[i] = true }
	if err := w.visit(start); err != nil {
		return nil, err
	}
	var out []string
	for _, q := range g.points {
		if i := g.definer[q]; reached[i] && i != start {
			out = append(out, q)
		}
	}
	return out, nil
}

// Unused lists defined points that no other instruction references.
func (g *Graph) Unused() []string {
	used := make(map[string]struct{}, len(g.points))
	for i, in := range g.prog {
		for _, p := range Uses(in) {
			if g.definer[p] != i {
				used[p] = struct{}{}
			}
		}
	}
	var out []string
	for _, p := range g.points {
		if _, ok := used[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// walker is the three-color DFS shared by Order and Ancestors.
type walker struct {
	g     *Graph
	ctx   context.Context
	state []int
	emit  func(int)
}

func (w *walker) visit(i int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	switch w.state[i] {
	case Gray:
		return fmt.Errorf("deps: instruction %d: %w", i, ErrCycleDetected)
	case Black:
		return nil
	}
	w.state[i] = Gray
	for _, j := range w.g.edges[i] {
		if j == i {
			return fmt.Errorf("deps: instruction %d uses its own point: %w", i, ErrCycleDetected)
		}
		if err := w.visit(j); err != nil {
			return err
		}
	}
	w.state[i] = Black
	w.emit(i)
	return nil
}
