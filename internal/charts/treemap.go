package charts

import (
	"fmt"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

// BuildTreemap assembles the skills-and-tools treemap: category branches
// holding tool leaves sized by proficiency score. Tools without a category
// mapping land under core competencies.
func BuildTreemap(tools []portfolio.ToolScore, categories map[string]portfolio.Category) (*echarts.TreeMap, error) {
	if len(tools) == 0 {
		return nil, &BuildError{Chart: ChartTreemap, Message: "tool list is empty"}
	}

	children := make(map[portfolio.Category][]opts.TreeMapNode, len(portfolio.Categories))
	tips := make(map[string]string, len(tools))
	for _, tool := range tools {
		level, err := portfolio.LevelFromScore(tool.Score)
		if err != nil {
			return nil, &BuildError{
				Chart:   ChartTreemap,
				Message: fmt.Sprintf("tool %q has an invalid score", tool.Name),
				Cause:   err,
			}
		}

		category, ok := categories[tool.Name]
		if !ok {
			category = portfolio.NodeCategory(tool.Name)
		}
		children[category] = append(children[category], opts.TreeMapNode{
			Name:  tool.Name,
			Value: tool.Score,
		})
		tips[tool.Name] = fmt.Sprintf("<b>%s</b><br/>%s<br/>Score: %d (%s)",
			escape(tool.Name), escape(category.DisplayName()), tool.Score, level)
	}

	branches := make([]opts.TreeMapNode, 0, len(children))
	for _, category := range portfolio.Categories {
		leaves := children[category]
		if len(leaves) == 0 {
			continue
		}
		branches = append(branches, opts.TreeMapNode{
			Name:     category.DisplayName(),
			Children: leaves,
		})
	}

	tm := echarts.NewTreeMap()
	tm.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Skills & Tools",
			Width:     "1100px",
			Height:    "650px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title:    "All Skills",
			Subtitle: "Leaf area scales with proficiency score",
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: lookupFormatter("params.name", tips),
		}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	tm.AddSeries("All Skills", branches,
		echarts.WithTreeMapOpts(opts.TreeMapChart{
			UpperLabel: &opts.UpperLabel{Show: opts.Bool(true)},
		}),
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}"}),
	)

	return tm, nil
}
