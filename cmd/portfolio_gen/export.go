package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
	"github.com/craig/portfolio-visualizer/internal/schemas"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the built-in dataset as schema-validated JSON",
	Long:  "Serializes the built-in portfolio dataset to a JSON document, validates it against the portfolio schema and writes it to the given path.",
	RunE:  runExport,
}

var (
	exportOutputFile string
	exportPretty     bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to output JSON file (required)")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "Indent the JSON output")

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	data := portfolio.Default()

	var (
		doc []byte
		err error
	)
	if exportPretty {
		doc, err = json.MarshalIndent(data, "", "  ")
	} else {
		doc, err = json.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	if err := schemas.ValidatePortfolio(doc); err != nil {
		return fmt.Errorf("dataset does not validate against schema: %w", err)
	}

	if dir := filepath.Dir(exportOutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutputFile, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Exported dataset to: %s\n", exportOutputFile)
	return nil
}
