// SPDX-License-Identifier: MIT
// Command lvroad grows deterministic Halton roadmaps from a YAML
// configuration and reports their statistics.
//
//	lvroad generate --config roadmap.yaml --batches 8 --set seed=7 --format json
//	lvroad ensemble --config roadmap.yaml --seeds 1,2,3 --parallel 2
//	lvroad schedule --radius 0.5 --dim 2 --batches 6
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lvroad",
		Short:         "Deterministic offset-Halton roadmap generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newEnsembleCmd(),
		newScheduleCmd(),
	)

	return rootCmd
}
