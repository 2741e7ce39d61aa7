package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/craig/portfolio-visualizer/internal/charts"
	"github.com/craig/portfolio-visualizer/internal/config"
	"github.com/craig/portfolio-visualizer/internal/generator"
	"github.com/craig/portfolio-visualizer/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture PNG images of generated charts with a headless browser",
	Long:  "Loads previously generated HTML chart documents in headless Chrome and writes a full-page PNG per chart. Requires Chrome or Chromium on the system.",
	RunE:  runSnapshot,
}

var (
	snapshotConfigPath string
	snapshotChart      string
	snapshotHTMLDir    string
	snapshotOutDir     string
	snapshotTimeout    int
)

const defaultSnapshotDir = "output/snapshots"

func init() {
	snapshotCmd.Flags().StringVar(&snapshotConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	snapshotCmd.Flags().StringVarP(&snapshotChart, "chart", "c", charts.SelectorAll, "Chart to capture (timeline, radar, heatmap, treemap, network) or 'all'")
	snapshotCmd.Flags().StringVar(&snapshotHTMLDir, "html", generator.DefaultOutputDir, "Directory containing the generated HTML documents")
	snapshotCmd.Flags().StringVarP(&snapshotOutDir, "out", "o", defaultSnapshotDir, "Output directory for PNG captures")
	snapshotCmd.Flags().IntVar(&snapshotTimeout, "timeout", int(snapshot.DefaultTimeout/time.Second), "Per-chart capture timeout in seconds")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if snapshotConfigPath != "" {
		loadedCfg, err := config.LoadConfig(snapshotConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("chart") {
		cfg.Chart = snapshotChart
	}
	if cmd.Flags().Changed("html") {
		cfg.OutputDir = snapshotHTMLDir
	}
	if cmd.Flags().Changed("out") {
		cfg.SnapshotDir = snapshotOutDir
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		OutputDir:   generator.DefaultOutputDir,
		SnapshotDir: defaultSnapshotDir,
		Chart:       charts.SelectorAll,
	})

	names, err := charts.Resolve(cfg.Chart)
	if err != nil {
		return err
	}

	timeout := time.Duration(snapshotTimeout) * time.Second
	if err := snapshot.CaptureCharts(context.Background(), names, cfg.OutputDir, cfg.SnapshotDir, timeout); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Captured %d charts to: %s\n", len(names), cfg.SnapshotDir)
	return nil
}
