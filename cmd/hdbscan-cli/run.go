package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ojmakhura/hdbscan"
)

var (
	flagInput            string
	flagMinPoints        int
	flagNoSelfEdges      bool
	flagCompactHierarchy bool
	flagDumpHierarchy    string
	flagDumpViz          string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run HDBSCAN* over a CSV point set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cfg, cmd)

		if cfg.Input == "" {
			return fmt.Errorf("no input: pass --input or set input in the run config")
		}

		data, rows, cols, err := readPointsCSV(cfg.Input)
		if err != nil {
			return err
		}
		log.Info().Str("input", cfg.Input).Int("rows", rows).Int("cols", cols).Msg("loaded points")

		opts := []hdbscan.Option{
			hdbscan.WithSelfEdges(cfg.SelfEdges),
			hdbscan.WithCompactHierarchy(cfg.CompactHierarchy),
		}
		h, err := hdbscan.New(cfg.MinPoints, opts...)
		if err != nil {
			return fmt.Errorf("configuring hdbscan: %w", err)
		}

		start := time.Now()
		result, err := h.Run(context.Background(), data, rows, cols, cfg.Rowwise, hdbscan.Float64)
		if err != nil {
			return fmt.Errorf("running hdbscan: %w", err)
		}
		log.Info().
			Dur("elapsed", time.Since(start)).
			Int("clusters", len(result.Clusters)-1).
			Bool("infinite_stability", result.InfiniteStability).
			Msg("run complete")

		if result.InfiniteStability {
			log.Warn().Msg("at least one cluster reported infinite stability")
		}

		for i, label := range result.Labels {
			fmt.Printf("%d\t%d\t%.6f\n", i, label, result.CoreDistances[i])
		}

		if cfg.DumpHierarchy != "" {
			if err := dumpTo(cfg.DumpHierarchy, result.DumpHierarchyCSV); err != nil {
				return err
			}
		}
		if cfg.DumpViz != "" {
			if err := dumpTo(cfg.DumpViz, result.DumpVisualizationHeader); err != nil {
				return err
			}
		}

		return nil
	},
}

func applyFlagOverrides(cfg *RunConfig, cmd *cobra.Command) {
	if cmd.Flags().Changed("input") {
		cfg.Input = flagInput
	}
	if cmd.Flags().Changed("min-points") {
		cfg.MinPoints = flagMinPoints
	}
	if cmd.Flags().Changed("no-self-edges") {
		cfg.SelfEdges = !flagNoSelfEdges
	}
	if cmd.Flags().Changed("compact-hierarchy") {
		cfg.CompactHierarchy = flagCompactHierarchy
	}
	if cmd.Flags().Changed("dump-hierarchy") {
		cfg.DumpHierarchy = flagDumpHierarchy
	}
	if cmd.Flags().Changed("dump-viz") {
		cfg.DumpViz = flagDumpViz
	}
}

func dumpTo(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dump file %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing dump file %s: %w", path, err)
	}

	return nil
}

func init() {
	runCmd.Flags().StringVar(&flagInput, "input", "", "path to a CSV file of numeric rows")
	runCmd.Flags().IntVar(&flagMinPoints, "min-points", 5, "minimum cluster size / core-distance neighbor count")
	runCmd.Flags().BoolVar(&flagNoSelfEdges, "no-self-edges", false, "omit self edges from the mutual-reachability graph")
	runCmd.Flags().BoolVar(&flagCompactHierarchy, "compact-hierarchy", false, "omit hierarchy levels that mint no new cluster, except the level right after one that does")
	runCmd.Flags().StringVar(&flagDumpHierarchy, "dump-hierarchy", "", "write the hierarchy CSV to this path")
	runCmd.Flags().StringVar(&flagDumpViz, "dump-viz", "", "write the visualization header to this path")
}
