// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"time"

	"github.com/katalvlaran/geomopt/optim"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSolveCmd(rf *rootFlags) *cobra.Command {
	var (
		configPath string
		seed       int64
		minDist    float64
		timeout    time.Duration
		reorder    bool
	)
	cmd := &cobra.Command{
		Use:   "solve [program]",
		Short: "Optimize a program until its constraints hold",
		Long: `solve runs Adam over the free variables of the program and prints the
best configuration as YAML. Flags override values from --config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(args[0], reorder)
			if err != nil {
				return err
			}
			cfg := optim.DefaultConfig()
			if configPath != "" {
				if cfg, err = optim.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("min-dist") {
				cfg.MinDist = minDist
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			sol, err := optim.Solve(ctx, prog, cfg, optim.WithLogger(rf.logger))
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(sol); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "optimizer config (YAML)")
	cmd.Flags().Int64Var(&seed, "seed", optim.DefaultSeed, "restart RNG seed")
	cmd.Flags().Float64Var(&minDist, "min-dist", optim.DefaultMinDist, "reject samples with points closer than this")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort after this long (0 disables)")
	cmd.Flags().BoolVar(&reorder, "reorder", false, "sort instructions into definition-before-use order")
	return cmd
}
