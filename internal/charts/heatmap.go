package charts

import (
	"fmt"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

// heatPalette is the purple gradient of the responsibility heatmap.
var heatPalette = []string{"#f2e7f9", "#c39bd3", "#8e44ad", "#4a235a"}

// BuildHeatmap assembles the companies-by-competencies responsibility grid.
// Every company row must carry a weight for every competency column.
func BuildHeatmap(usage []portfolio.RoleUsage, competencies []string) (*echarts.HeatMap, error) {
	if len(usage) == 0 {
		return nil, &BuildError{Chart: ChartHeatmap, Message: "responsibility-weight table is empty"}
	}
	if len(competencies) == 0 {
		return nil, &BuildError{Chart: ChartHeatmap, Message: "competency list is empty"}
	}

	companies := make([]string, len(usage))
	for i, row := range usage {
		companies[i] = row.Company
	}

	data := make([]opts.HeatMapData, 0, len(usage)*len(competencies))
	tips := make(map[string]string, len(usage)*len(competencies))
	for x, row := range usage {
		for y, competency := range competencies {
			weight, ok := row.Weights[competency]
			if !ok {
				return nil, &BuildError{
					Chart:   ChartHeatmap,
					Message: fmt.Sprintf("%s has no weight for %q", row.Company, competency),
				}
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, weight}})
			tips[fmt.Sprintf("%d,%d", x, y)] = fmt.Sprintf("<b>%s</b><br/>%s: %d%%<br/>%s",
				escape(row.Company), escape(competency), weight, involvementPhrase(weight))
		}
	}

	hm := echarts.NewHeatMap()
	hm.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Skills by Role",
			Width:     "1100px",
			Height:    "600px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title:    "Responsibility Weight by Role",
			Subtitle: "Share of role effort, not proficiency",
		}),
		echarts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      companies,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 30},
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      competencies,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		echarts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        100,
			Orient:     "horizontal",
			Left:       "center",
			Bottom:     "0",
			InRange:    &opts.VisualMapInRange{Color: heatPalette},
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: lookupFormatter("params.value[0] + ',' + params.value[1]", tips),
		}),
	)

	hm.AddSeries("Responsibility weight", data,
		echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)

	return hm, nil
}
