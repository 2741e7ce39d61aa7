package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/craig/portfolio-visualizer/internal/observability"
	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the built-in dataset for data-quality violations",
	Long:  "Runs the data-quality checks over the built-in dataset and prints any violations. Exits non-zero when error-severity violations are present; warnings alone do not fail the command.",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	violations := portfolio.ValidateData(portfolio.Default())
	observability.NewPrinter(os.Stdout).PrintViolations(violations)

	if violations.HasErrors() {
		return fmt.Errorf("dataset has %d error-severity violations", violations.ErrorCount())
	}
	return nil
}
