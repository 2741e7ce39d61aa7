package charts

import (
	"fmt"
	"strings"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

// minBarYears keeps very short roles visible on the timeline.
const minBarYears = 0.5

// maxTooltipResponsibilities caps the responsibility bullets shown per role.
const maxTooltipResponsibilities = 3

// BuildTimeline assembles the career timeline as a horizontal stacked bar
// chart: one row per company, one visible bar per role. An invisible offset
// series positions each company's first bar at its start year; roles at the
// same company stack after it in order. A dashed mark line labels asOfYear.
func BuildTimeline(roles []portfolio.Role, asOfYear int) (*echarts.Bar, error) {
	if len(roles) == 0 {
		return nil, &BuildError{Chart: ChartTimeline, Message: "experience list is empty"}
	}

	companies := make([]string, 0, len(roles))
	rowIndex := make(map[string]int, len(roles))
	for _, role := range roles {
		if _, ok := rowIndex[role.Company]; !ok {
			rowIndex[role.Company] = len(companies)
			companies = append(companies, role.Company)
		}
	}

	minYear := roles[0].StartYear

	// Transparent offset bars push each company row out to its first start year.
	offsets := make([]opts.BarData, len(companies))
	placed := make([]bool, len(companies))
	for _, role := range roles {
		row := rowIndex[role.Company]
		if !placed[row] {
			offsets[row] = opts.BarData{Value: float64(role.StartYear)}
			placed[row] = true
		}
	}

	bar := echarts.NewBar()
	bar.SetXAxis(companies)
	bar.AddSeries("offset", offsets,
		echarts.WithBarChartOpts(opts.BarChart{Stack: "career"}),
		echarts.WithItemStyleOpts(opts.ItemStyle{Color: "rgba(0,0,0,0)"}),
	)

	tips := make(map[string]string, len(roles))
	for i, role := range roles {
		label := fmt.Sprintf("%s (%s)", role.Title, role.Company)
		tips[label] = timelineTooltip(role, asOfYear)

		duration := float64(role.Duration(asOfYear))
		if duration < minBarYears {
			duration = minBarYears
		}

		data := make([]opts.BarData, len(companies))
		for j := range data {
			data[j] = opts.BarData{Value: 0.0}
		}
		data[rowIndex[role.Company]] = opts.BarData{
			Value:     duration,
			ItemStyle: &opts.ItemStyle{Color: role.Color},
		}

		seriesOpts := []echarts.SeriesOpts{
			echarts.WithBarChartOpts(opts.BarChart{Stack: "career"}),
			echarts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "inside", Formatter: role.Title}),
		}
		if i == len(roles)-1 {
			seriesOpts = append(seriesOpts,
				echarts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
					Name:  fmt.Sprintf("%d", asOfYear),
					XAxis: asOfYear,
				}),
				echarts.WithMarkLineStyleOpts(opts.MarkLineStyle{
					Symbol:    []string{"none", "none"},
					Label:     &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
					LineStyle: &opts.LineStyle{Type: "dashed", Color: "#888"},
				}),
			)
		}
		bar.AddSeries(label, data, seriesOpts...)
	}

	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Career Timeline",
			Width:     "1200px",
			Height:    "600px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title:    "Professional Experience Timeline",
			Subtitle: fmt.Sprintf("%d - present", minYear),
		}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: lookupFormatter("params.seriesName", tips),
		}),
		// Value axis pre-reversal; XYReversal swaps it onto the X axis.
		echarts.WithYAxisOpts(opts.YAxis{Min: minYear - 1, Max: asOfYear + 1}),
	)
	bar.XYReversal()

	return bar, nil
}

func timelineTooltip(role portfolio.Role, asOfYear int) string {
	end := "present"
	if !role.IsCurrent() {
		end = fmt.Sprintf("%d", role.EndYear)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b><br/>%s<br/>%d - %s (%d years)",
		escape(role.Company), escape(role.Title), role.StartYear, end, role.Duration(asOfYear)))

	bullets := role.Responsibilities
	if len(bullets) > maxTooltipResponsibilities {
		bullets = bullets[:maxTooltipResponsibilities]
	}
	for _, responsibility := range bullets {
		sb.WriteString("<br/>• " + escape(responsibility))
	}
	return sb.String()
}
