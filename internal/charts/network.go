package charts

import (
	"fmt"
	"strings"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
	"github.com/craig/portfolio-visualizer/internal/skillgraph"
)

// Canvas dimensions the normalized layout coordinates are scaled onto.
const (
	networkCanvasWidth  = 1000.0
	networkCanvasHeight = 800.0
)

// maxTooltipNeighbors caps the neighbor list shown per node.
const maxTooltipNeighbors = 5

// BuildNetwork lays out the connection graph with a fixed-seed force
// embedding and renders it as a graph chart: node size from the display-size
// table, node color and legend grouping from the category table.
func BuildNetwork(d *portfolio.Data, seed uint64) (*echarts.Graph, error) {
	g, err := skillgraph.Build(d.Connections)
	if err != nil {
		return nil, &BuildError{Chart: ChartNetwork, Message: "building connection graph", Cause: err}
	}
	positions := g.Layout(seed, skillgraph.DefaultLayoutIterations)

	catIndex := make(map[portfolio.Category]int, len(portfolio.Categories))
	graphCategories := make([]*opts.GraphCategory, len(portfolio.Categories))
	legendNames := make([]string, len(portfolio.Categories))
	for i, category := range portfolio.Categories {
		catIndex[category] = i
		graphCategories[i] = &opts.GraphCategory{Name: category.DisplayName()}
		legendNames[i] = category.DisplayName()
	}

	names := g.Nodes()
	nodes := make([]opts.GraphNode, 0, len(names))
	tips := make(map[string]string, len(names))
	for _, name := range names {
		pos := positions[name]
		category := d.CategoryOf(name)
		size := d.SizeOf(name)

		nodes = append(nodes, opts.GraphNode{
			Name:       name,
			X:          float32(pos.X * networkCanvasWidth),
			Y:          float32((1 - pos.Y) * networkCanvasHeight),
			SymbolSize: float32(size) / 2,
			Category:   catIndex[category],
			ItemStyle:  &opts.ItemStyle{Color: d.ColorOf(name)},
		})
		tips[name] = networkTooltip(name, category, g)
	}

	links := make([]opts.GraphLink, 0, len(d.Connections))
	for _, conn := range d.Connections {
		links = append(links, opts.GraphLink{Source: conn.Source, Target: conn.Target})
	}

	graph := echarts.NewGraph()
	graph.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Skill Network",
			Width:     "1100px",
			Height:    "850px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title:    "Skill & Tool Connections",
			Subtitle: "Edges link skills used together in practice",
		}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Data: legendNames, Bottom: "0"}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: lookupFormatter("params.name", tips),
		}),
	)

	graph.AddSeries("skills", nodes, links,
		echarts.WithGraphChartOpts(opts.GraphChart{
			Layout:     "none",
			Roam:       opts.Bool(true),
			Categories: graphCategories,
			EdgeSymbol: []string{"none", "none"},
		}),
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right", Formatter: "{b}"}),
	)

	return graph, nil
}

func networkTooltip(name string, category portfolio.Category, g *skillgraph.Graph) string {
	neighbors := g.Neighbors(name)
	degree := len(neighbors)
	if degree > maxTooltipNeighbors {
		neighbors = neighbors[:maxTooltipNeighbors]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b><br/>%s<br/>%d connections",
		escape(name), escape(category.DisplayName()), degree))
	if len(neighbors) > 0 {
		sb.WriteString("<br/>Linked to: " + escape(strings.Join(neighbors, ", ")))
		if degree > maxTooltipNeighbors {
			sb.WriteString(fmt.Sprintf(" and %d more", degree-maxTooltipNeighbors))
		}
	}
	return sb.String()
}
