package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craig/portfolio-visualizer/internal/observability"
	"github.com/craig/portfolio-visualizer/internal/portfolio"
	"github.com/craig/portfolio-visualizer/internal/skillgraph"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the connection-graph analysis for the built-in dataset",
	Long:  "Builds the skill-connection graph from the built-in dataset and prints node/edge counts, density and the top nodes by degree and betweenness centrality.",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	g, err := skillgraph.Build(portfolio.Connections)
	if err != nil {
		return fmt.Errorf("failed to build connection graph: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintNetworkStats(g.Stats())
	return nil
}
