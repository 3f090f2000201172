package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the YAML run-config loaded via --config. Flags passed on
// the command line override the matching field after loading.
type RunConfig struct {
	MinPoints        int    `yaml:"min_points"`
	SelfEdges        bool   `yaml:"self_edges"`
	CompactHierarchy bool   `yaml:"compact_hierarchy"`
	Rowwise          bool   `yaml:"rowwise"`
	Input            string `yaml:"input"`
	DumpHierarchy    string `yaml:"dump_hierarchy"`
	DumpViz          string `yaml:"dump_viz"`
}

func defaultRunConfig() *RunConfig {
	return &RunConfig{
		MinPoints: 5,
		SelfEdges: true,
		Rowwise:   true,
	}
}

// loadRunConfig reads a YAML run-config from path. An empty path returns
// the defaults unchanged, matching the CLI's "config is optional, flags
// are enough for a quick run" posture.
func loadRunConfig(path string) (*RunConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}

	return cfg, nil
}
