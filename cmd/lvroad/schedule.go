// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroad/core"
	"github.com/katalvlaran/lvroad/nn"
	"github.com/katalvlaran/lvroad/roadmap"
	"github.com/katalvlaran/lvroad/space"
)

func newScheduleCmd() *cobra.Command {
	var (
		radius  float64
		dim     int
		batches int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the per-batch connection radius",
		Long: `Print r(i) = radius * (1/(i+1))^(1/dim) for the first --batches batches.

Example: lvroad schedule --radius 0.5 --dim 2 --batches 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := space.NewRealVector(space.NewBounds(dim, 0, 1))
			if err != nil {
				return err
			}
			gen, err := roadmap.New(sp, core.NewGraph(), nn.NewLinear(sp.Distance),
				roadmap.WithRadiusFirstBatch(radius))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "batch\tradius")
			for i := 0; i < batches; i++ {
				fmt.Fprintf(tw, "%d\t%.6f\n", i, gen.Radius(i))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 1, "Radius of the first batch")
	cmd.Flags().IntVar(&dim, "dim", 2, "Space dimension")
	cmd.Flags().IntVar(&batches, "batches", 10, "Number of batches to print")

	return cmd
}
