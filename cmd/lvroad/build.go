// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroad/config"
	"github.com/katalvlaran/lvroad/core"
	"github.com/katalvlaran/lvroad/nn"
	"github.com/katalvlaran/lvroad/roadmap"
	"github.com/katalvlaran/lvroad/space"
)

// Output formats for reports.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// newLogger builds the handler selected by cfg.Log and tags every record
// with an invocation ID.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if cfg.Log.Format == config.FormatJSON {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	return slog.New(h).With(slog.String("invocation", uuid.NewString())), nil
}

// newIndex returns the nearest-neighbor index named by cfg.Index.
func newIndex(cfg *config.Config, sp *space.RealVector) nn.Index {
	if cfg.Index == config.IndexLinear {
		return nn.NewLinear(sp.Distance)
	}

	return nn.NewKDTree(sp.Dimension())
}

// buildRoadmap wires a space, graph, index and generator from cfg, with
// params applied on top of the generator's declared parameters.
func buildRoadmap(cfg *config.Config, params map[string]string, logger *slog.Logger) (*roadmap.HaltonOffDens, *core.Graph, error) {
	bounds, err := cfg.SpaceBounds()
	if err != nil {
		return nil, nil, err
	}
	sp, err := space.NewRealVector(bounds)
	if err != nil {
		return nil, nil, err
	}

	g := core.NewGraph()
	gen, err := roadmap.New(sp, g, newIndex(cfg, sp), roadmap.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	if err = gen.Params().Apply(params); err != nil {
		return nil, nil, err
	}

	return gen, g, nil
}

// parseSets turns repeated name=value flags into a map.
func parseSets(sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, kv := range sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("--set %q: want name=value", kv)
		}
		out[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return out, nil
}

// writeReport encodes v as YAML or indented JSON.
func writeReport(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want %s|%s)", format, formatYAML, formatJSON)
	}
}
