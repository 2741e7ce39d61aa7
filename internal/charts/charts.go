package charts

import (
	"fmt"
	"strings"
)

// Chart names accepted by the CLI, in generation order.
const (
	ChartTimeline = "timeline"
	ChartRadar    = "radar"
	ChartHeatmap  = "heatmap"
	ChartTreemap  = "treemap"
	ChartNetwork  = "network"
)

// SelectorAll requests every chart.
const SelectorAll = "all"

// Names lists every chart in generation order.
var Names = []string{ChartTimeline, ChartRadar, ChartHeatmap, ChartTreemap, ChartNetwork}

// Known reports whether name identifies a chart.
func Known(name string) bool {
	for _, known := range Names {
		if name == known {
			return true
		}
	}
	return false
}

// Resolve expands a --chart selector into the list of charts to generate.
// An empty selector or "all" selects every chart.
func Resolve(selector string) ([]string, error) {
	if selector == "" || selector == SelectorAll {
		names := make([]string, len(Names))
		copy(names, Names)
		return names, nil
	}
	if !Known(selector) {
		return nil, fmt.Errorf("unknown chart %q (valid: %s, %s)", selector, strings.Join(Names, ", "), SelectorAll)
	}
	return []string{selector}, nil
}
