// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroad/config"
	"github.com/katalvlaran/lvroad/core"
	"github.com/katalvlaran/lvroad/driver"
	"github.com/katalvlaran/lvroad/roadmap"
	"github.com/katalvlaran/lvroad/summary"
)

func newEnsembleCmd() *cobra.Command {
	var (
		cfgPath  string
		seeds    []string
		parallel int
		format   string
	)

	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "Generate one roadmap per seed concurrently",
		Long: `Generate independent roadmaps that differ only in seed, running at most
--parallel at once, and print one report per seed in seed order.

Example: lvroad ensemble --config roadmap.yaml --seeds 1,2,3 --parallel 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseSeeds(seeds)
			if err != nil {
				return err
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			base := cfg.Params()
			build := func(seed uint64) (roadmap.Generator, *core.Graph, error) {
				params := make(map[string]string, len(base)+1)
				for k, v := range base {
					params[k] = v
				}
				params[roadmap.ParamSeed] = strconv.FormatUint(seed, 10)
				return buildRoadmap(cfg, params, logger.With(slog.Uint64("seed", seed)))
			}

			results, err := driver.Ensemble(cmd.Context(), parsed, build, cfg.Budget(), parallel, driver.WithLogger(logger))
			if err != nil {
				return err
			}

			reports := make([]report, 0, len(results))
			for _, res := range results {
				sum, err := summary.Summarize(res.Graph)
				if err != nil {
					return err
				}
				reports = append(reports, report{Run: res, Summary: sum})
			}

			return writeReport(cmd.OutOrStdout(), format, reports)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to the YAML configuration")
	cmd.Flags().StringSliceVar(&seeds, "seeds", nil, "Comma-separated seeds")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Maximum concurrent runs (0 = unbounded)")
	cmd.Flags().StringVar(&format, "format", formatYAML, "Report format: yaml|json")
	_ = cmd.MarkFlagRequired("seeds")

	return cmd
}

func parseSeeds(raw []string) ([]uint64, error) {
	out := make([]uint64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("--seeds %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
