// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroad/config"
	"github.com/katalvlaran/lvroad/driver"
	"github.com/katalvlaran/lvroad/summary"
)

// report is the document printed for one roadmap.
type report struct {
	Run     driver.Result     `json:"run" yaml:"run"`
	Params  map[string]string `json:"params" yaml:"params"`
	Offset  []float64         `json:"offset" yaml:"offset"`
	Summary summary.Summary   `json:"summary" yaml:"summary"`
}

func newGenerateCmd() *cobra.Command {
	var (
		cfgPath string
		batches int
		sets    []string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one roadmap and print its statistics",
		Long: `Generate one roadmap from a YAML configuration and print a report.

Parameters come from roadmap.params in the file, then LVROAD_* variables
(and a .env file), then --set flags. --batches overrides run.batches.

Example: lvroad generate --config roadmap.yaml --batches 8 --set seed=7 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseSets(sets)
			if err != nil {
				return err
			}
			batchesSet := cmd.Flags().Changed("batches")
			cfg, err := config.Load(cfgPath, config.WithOverride(func(c *config.Config) {
				for k, v := range overrides {
					c.Roadmap.Params[k] = config.Scalar(v)
				}
				if batchesSet {
					c.Run.Batches = batches
				}
			}))
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			gen, g, err := buildRoadmap(cfg, cfg.Params(), logger)
			if err != nil {
				return err
			}
			res, err := driver.Run(cmd.Context(), gen, cfg.Budget(), driver.WithLogger(logger))
			if err != nil {
				return err
			}
			sum, err := summary.Summarize(g)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), format, report{
				Run:     res,
				Params:  gen.Params().Values(),
				Offset:  gen.Offset(),
				Summary: sum,
			})
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to the YAML configuration")
	cmd.Flags().IntVar(&batches, "batches", 0, "Number of batches (overrides run.batches)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Generator parameter as name=value (repeatable)")
	cmd.Flags().StringVar(&format, "format", formatYAML, "Report format: yaml|json")

	return cmd
}
