// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/geomopt/eval"
	"github.com/katalvlaran/geomopt/field"
	"github.com/spf13/cobra"
)

func newEvalCmd(rf *rootFlags) *cobra.Command {
	var (
		seed    int64
		minDist float64
		reorder bool
	)
	cmd := &cobra.Command{
		Use:   "eval [program]",
		Short: "Evaluate a program once from a seeded sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(args[0], reorder)
			if err != nil {
				return err
			}
			ev := eval.New[float64, bool](field.NewFloat(field.NewVars(field.WithSeed(seed))), eval.WithLogger(rf.logger))
			res, err := ev.Run(prog)
			if err != nil {
				return err
			}
			if ok, a, b := eval.FarEnoughApart(ev.Kernel(), res, minDist); !ok {
				rf.logger.Warn("points too close", "a", a, "b", b, "min_dist", minDist)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed of the initial sample")
	cmd.Flags().Float64Var(&minDist, "min-dist", 0.1, "warn when two points are closer than this")
	cmd.Flags().BoolVar(&reorder, "reorder", false, "sort instructions into definition-before-use order")
	return cmd
}

func printResult(w io.Writer, res *eval.Result[float64]) {
	fmt.Fprintln(w, "points:")
	for _, np := range res.Points {
		fmt.Fprintf(w, "  %-8s (%.6f, %.6f)\n", np.Name, np.Point.X, np.Point.Y)
	}
	for _, sec := range []struct {
		name string
		rs   eval.Residuals[float64]
	}{{"losses", res.Losses}, {"ndgs", res.NDGs}, {"goals", res.Goals}} {
		if len(sec.rs) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", sec.name)
		for _, r := range sec.rs {
			fmt.Fprintf(w, "  %-32s % .6e  w=%g\n", r.Label, r.Value, r.Weight)
		}
	}
	fmt.Fprintf(w, "figures: %d segments, %d circles\n", len(res.Segments), len(res.Circles))
}
