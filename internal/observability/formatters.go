// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
	"github.com/craig/portfolio-visualizer/internal/skillgraph"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintNetworkStats outputs the connection-graph analysis summary.
func (p *Printer) PrintNetworkStats(stats *skillgraph.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Nodes:    %d\n", stats.Nodes))
	sb.WriteString(fmt.Sprintf("Edges:    %d\n", stats.Edges))
	sb.WriteString(fmt.Sprintf("Density:  %.3f\n", stats.Density))

	if len(stats.TopConnected) > 0 {
		sb.WriteString("\nMost connected:\n")
		count := min(len(stats.TopConnected), maxItemsToShow)
		for i := 0; i < count; i++ {
			score := stats.TopConnected[i]
			sb.WriteString(fmt.Sprintf("  %d. %-22s %.3f\n", i+1, score.Name, score.Score))
		}
	}

	if len(stats.TopBridging) > 0 {
		sb.WriteString("\nTop bridges:\n")
		count := min(len(stats.TopBridging), maxItemsToShow)
		for i := 0; i < count; i++ {
			score := stats.TopBridging[i]
			sb.WriteString(fmt.Sprintf("  %d. %-22s %.3f\n", i+1, score.Name, score.Score))
		}
	}

	p.printBox("NETWORK ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any data-quality violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *portfolio.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations (%d errors, %d warnings):\n\n",
		len(violations.Violations), violations.ErrorCount(), violations.WarningCount()))

	for i, v := range violations.Violations {
		icon := "⚠"
		if v.Severity == portfolio.SeverityError {
			icon = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", icon, v.Type))
		if v.Record != "" {
			sb.WriteString(fmt.Sprintf("  at %s\n", v.Record))
		}
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DATA-QUALITY VIOLATIONS", sb.String())
}
