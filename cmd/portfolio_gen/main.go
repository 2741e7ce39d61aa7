// Package main provides the entry point for the portfolio visualization CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_gen",
	Short: "Portfolio visualization generator",
	Long:  "portfolio_gen renders a career portfolio dataset into interactive HTML charts: a career timeline, a skill radar, a skill-by-role heatmap, a tooling treemap and a skill-connection network.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
