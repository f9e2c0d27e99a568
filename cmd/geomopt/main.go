// SPDX-License-Identifier: MIT

// Command geomopt evaluates and solves geometry construction programs.
//
//	geomopt eval  program.yaml [--seed N] [--reorder]
//	geomopt solve program.yaml [--config optim.yaml] [--timeout 30s] [--reorder]
//	geomopt deps  program.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	logLevel string
	logger   *slog.Logger
}

// newRootCmd builds the command tree; logs go to logw.
func newRootCmd(logw io.Writer) *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:   "geomopt",
		Short: "Differentiable geometry construction interpreter",
		Long: `geomopt interprets geometry construction programs (YAML or JSON).
eval runs one pass from a seeded sample and prints the points and residuals.
solve optimizes the free variables until every asserted constraint holds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := parseLevel(rf.logLevel)
			if err != nil {
				return err
			}
			rf.logger = slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.AddCommand(newEvalCmd(rf), newSolveCmd(rf), newDepsCmd())
	return root
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q", s)
	}
	return lvl, nil
}
