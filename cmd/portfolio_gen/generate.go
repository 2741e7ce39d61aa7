package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/craig/portfolio-visualizer/internal/charts"
	"github.com/craig/portfolio-visualizer/internal/config"
	"github.com/craig/portfolio-visualizer/internal/generator"
	"github.com/craig/portfolio-visualizer/internal/skillgraph"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the portfolio charts as HTML documents",
	Long: `Renders the built-in portfolio dataset into self-contained HTML chart documents.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values. A failed chart is reported and skipped; the run continues with the remaining charts.`,
	RunE: runGenerate,
}

var (
	generateConfigPath string
	generateChart      string
	generateOutputDir  string
	generateOpen       bool
	generateParallel   bool
	generateVerbose    bool
	generateLayoutSeed uint64
)

func init() {
	// Config file flag (processed first)
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCmd.Flags().StringVarP(&generateChart, "chart", "c", charts.SelectorAll, "Chart to generate (timeline, radar, heatmap, treemap, network) or 'all'")
	generateCmd.Flags().StringVarP(&generateOutputDir, "out", "o", generator.DefaultOutputDir, "Output directory for HTML documents")
	generateCmd.Flags().BoolVar(&generateOpen, "open", false, "Open generated documents in the default browser")
	generateCmd.Flags().BoolVar(&generateParallel, "parallel", false, "Render charts concurrently")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")
	generateCmd.Flags().Uint64Var(&generateLayoutSeed, "layout-seed", skillgraph.DefaultLayoutSeed, "Seed for the network layout (same seed, same layout)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if generateConfigPath != "" {
		loadedCfg, err := config.LoadConfig(generateConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if generateVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", generateConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("chart") {
		cfg.Chart = generateChart
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = generateOutputDir
	}
	if cmd.Flags().Changed("open") {
		cfg.Open = generateOpen
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = generateParallel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = generateVerbose
	}
	if cmd.Flags().Changed("layout-seed") {
		cfg.LayoutSeed = generateLayoutSeed
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		OutputDir:  generator.DefaultOutputDir,
		Chart:      charts.SelectorAll,
		LayoutSeed: skillgraph.DefaultLayoutSeed,
	})

	names, err := charts.Resolve(cfg.Chart)
	if err != nil {
		return err
	}

	summary, err := generator.Run(ctx, generator.RunOptions{
		Charts:     names,
		OutputDir:  cfg.OutputDir,
		LayoutSeed: cfg.LayoutSeed,
		Parallel:   cfg.Parallel,
		Verbose:    cfg.Verbose,
		Out:        os.Stdout,
	})
	if err != nil {
		return err
	}

	if cfg.Open {
		for _, file := range summary.Files() {
			if err := browser.OpenFile(file); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: could not open %s: %v\n", file, err)
			}
		}
	}

	return nil
}
