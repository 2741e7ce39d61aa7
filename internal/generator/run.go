// Package generator provides the high-level orchestration for chart generation.
package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/craig/portfolio-visualizer/internal/charts"
	"github.com/craig/portfolio-visualizer/internal/inspect"
	"github.com/craig/portfolio-visualizer/internal/observability"
	"github.com/craig/portfolio-visualizer/internal/portfolio"
	"github.com/craig/portfolio-visualizer/internal/skillgraph"
)

// DefaultOutputDir is where chart documents land unless overridden.
const DefaultOutputDir = "output/visualizations"

// RunOptions holds configuration for a generation run
type RunOptions struct {
	Data       *portfolio.Data // nil means the built-in dataset
	Charts     []string        // chart names; empty means every chart
	OutputDir  string          // empty means DefaultOutputDir
	AsOfYear   int             // 0 means the current year
	LayoutSeed uint64          // 0 means the default layout seed
	Parallel   bool
	Verbose    bool
	Out        io.Writer // progress output; nil means os.Stdout
}

// ChartResult records the outcome of one chart generation.
type ChartResult struct {
	Name string
	File string
	Err  error
}

// Summary reports a completed generation run.
type Summary struct {
	RunID     uuid.UUID
	OutputDir string
	Results   []ChartResult
	Stats     *skillgraph.Stats
	Started   time.Time
	Finished  time.Time
}

// Generated returns the number of charts that rendered successfully.
func (s *Summary) Generated() int {
	count := 0
	for _, result := range s.Results {
		if result.Err == nil {
			count++
		}
	}
	return count
}

// Failed returns the number of charts that did not render.
func (s *Summary) Failed() int {
	return len(s.Results) - s.Generated()
}

// Files returns the paths of successfully generated documents.
func (s *Summary) Files() []string {
	var files []string
	for _, result := range s.Results {
		if result.Err == nil {
			files = append(files, result.File)
		}
	}
	return files
}

// Run generates the requested charts, prints per-chart progress and the
// network analysis, and writes the run manifest into the output directory.
// Individual chart failures are recorded in the summary, not returned as
// errors; Run fails only when the run itself cannot proceed (unknown chart
// name, unusable output directory, manifest write failure).
func Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	data := opts.Data
	if data == nil {
		data = portfolio.Default()
	}
	names := opts.Charts
	if len(names) == 0 {
		names = charts.Names
	}
	for _, name := range names {
		if !charts.Known(name) {
			return nil, fmt.Errorf("unknown chart %q (valid: %s)", name, strings.Join(charts.Names, ", "))
		}
	}
	asOfYear := opts.AsOfYear
	if asOfYear == 0 {
		asOfYear = time.Now().Year()
	}
	seed := opts.LayoutSeed
	if seed == 0 {
		seed = skillgraph.DefaultLayoutSeed
	}
	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	printer := observability.NewPrinter(out)
	if opts.Verbose {
		fmt.Fprintf(out, "[VERBOSE] Dataset: %d roles, %d skills, %d tools, %d connections\n",
			len(data.Experience), len(data.Skills), len(data.Tools), len(data.Connections))
		printer.PrintViolations(portfolio.ValidateData(data))
	}

	summary := &Summary{
		RunID:     uuid.New(),
		OutputDir: outputDir,
		Results:   make([]ChartResult, len(names)),
		Started:   time.Now(),
	}

	if opts.Parallel {
		g, gCtx := errgroup.WithContext(ctx)
		var mu sync.Mutex
		for i, name := range names {
			g.Go(func() error {
				result := generateChart(gCtx, name, data, asOfYear, seed, outputDir)
				mu.Lock()
				summary.Results[i] = result
				mu.Unlock()
				return nil
			})
		}
		// Workers never return errors; failures live in the indexed results.
		_ = g.Wait()
		for _, result := range summary.Results {
			if result.Err != nil {
				fmt.Fprintf(out, "Generating %s chart... ✗ (%v)\n", result.Name, result.Err)
			} else {
				fmt.Fprintf(out, "Generating %s chart... ✓\n", result.Name)
			}
		}
	} else {
		for i, name := range names {
			fmt.Fprintf(out, "Generating %s chart... ", name)
			result := generateChart(ctx, name, data, asOfYear, seed, outputDir)
			summary.Results[i] = result
			if result.Err != nil {
				fmt.Fprintf(out, "✗ (%v)\n", result.Err)
			} else {
				fmt.Fprintf(out, "✓\n")
			}
		}
	}

	if g, err := skillgraph.Build(data.Connections); err != nil {
		fmt.Fprintf(out, "Warning: network analysis skipped: %v\n", err)
	} else {
		summary.Stats = g.Stats()
		printer.PrintNetworkStats(summary.Stats)
	}

	summary.Finished = time.Now()
	if err := WriteManifest(summary, filepath.Join(outputDir, ManifestFile)); err != nil {
		return nil, fmt.Errorf("writing run manifest: %w", err)
	}

	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		absDir = outputDir
	}
	fmt.Fprintf(out, "\nCompleted: %d/%d charts in %s\n",
		summary.Generated(), len(names), summary.Finished.Sub(summary.Started).Round(time.Millisecond))
	fmt.Fprintf(out, "Output: %s\n", absDir)

	return summary, nil
}

// generateChart builds, renders and structurally verifies a single chart.
func generateChart(ctx context.Context, name string, data *portfolio.Data, asOfYear int, seed uint64, outputDir string) ChartResult {
	result := ChartResult{Name: name}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	fig, err := buildChart(name, data, asOfYear, seed)
	if err != nil {
		result.Err = err
		return result
	}

	path := filepath.Join(outputDir, name+".html")
	if err := charts.WriteHTML(fig, path); err != nil {
		result.Err = err
		return result
	}
	if err := inspect.VerifyChartFile(path); err != nil {
		result.Err = err
		return result
	}

	result.File = path
	return result
}

func buildChart(name string, data *portfolio.Data, asOfYear int, seed uint64) (charts.Figure, error) {
	switch name {
	case charts.ChartTimeline:
		return charts.BuildTimeline(data.Experience, asOfYear)
	case charts.ChartRadar:
		return charts.BuildRadar(data.Skills, data.Bands)
	case charts.ChartHeatmap:
		return charts.BuildHeatmap(data.SkillsByRole, data.Competencies)
	case charts.ChartTreemap:
		return charts.BuildTreemap(data.Tools, data.NodeCategories)
	case charts.ChartNetwork:
		return charts.BuildNetwork(data, seed)
	}
	return nil, fmt.Errorf("unknown chart %q", name)
}
