// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geomopt/deps"
	"github.com/katalvlaran/geomopt/instr"
	"github.com/spf13/cobra"
)

// loadProgram reads a program file, rearranging it into
// definition-before-use order when reorder is set.
func loadProgram(path string, reorder bool) (instr.Program, error) {
	prog, err := instr.Load(path)
	if err != nil || !reorder {
		return prog, err
	}
	g, err := deps.Build(prog)
	if err != nil {
		return nil, err
	}
	return g.Order()
}

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [program]",
		Short: "Print the point dependencies of a program",
		Long: `deps lists every defined point with its transitive dependencies and
reports points that nothing references. Instructions may appear in any order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := instr.Load(args[0])
			if err != nil {
				return err
			}
			g, err := deps.Build(prog)
			if err != nil {
				return err
			}
			if _, err := g.Order(deps.WithCancelContext(cmd.Context())); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range g.Points() {
				anc, err := g.Ancestors(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-8s <- %s\n", p, strings.Join(anc, " "))
			}
			if unused := g.Unused(); len(unused) > 0 {
				fmt.Fprintf(w, "unused: %s\n", strings.Join(unused, " "))
			}
			return nil
		},
	}
}
