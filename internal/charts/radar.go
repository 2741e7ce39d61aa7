package charts

import (
	"fmt"
	"strings"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

// BuildRadar assembles the core-skill proficiency radar: one indicator per
// skill (max 100), a filled proficiency polygon, and a dashed reference ring
// at each band ceiling below 100.
func BuildRadar(skills []portfolio.SkillProficiency, bands []portfolio.Band) (*echarts.Radar, error) {
	if len(skills) == 0 {
		return nil, &BuildError{Chart: ChartRadar, Message: "skill list is empty"}
	}

	indicators := make([]*opts.Indicator, len(skills))
	values := make([]float64, len(skills))
	var detail strings.Builder
	for i, skill := range skills {
		level, err := skill.Level()
		if err != nil {
			return nil, &BuildError{
				Chart:   ChartRadar,
				Message: fmt.Sprintf("skill %q has an invalid score", skill.Name),
				Cause:   err,
			}
		}
		indicators[i] = &opts.Indicator{Name: skill.Name, Max: 100}
		values[i] = float64(skill.Score)

		if i > 0 {
			detail.WriteString("<br/>")
		}
		detail.WriteString(fmt.Sprintf("<b>%s</b>: %d (%s) · %.1f yrs · %s<br/><i>%s</i>",
			escape(skill.Name), skill.Score, level, skill.YearsExperience,
			escape(skill.LastUsed), escape(truncate(skill.Context, maxContextRunes))))
	}

	tips := map[string]string{"Proficiency": detail.String()}

	radar := echarts.NewRadar()
	radar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Skill Proficiency",
			Width:     "900px",
			Height:    "700px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title:    "Core Skill Proficiency",
			Subtitle: "Self-assessed, 0-100 scale",
		}),
		echarts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			SplitNumber: 5,
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: lookupFormatter("params.name", tips),
		}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)

	radar.AddSeries("Proficiency", []opts.RadarData{{Name: "Proficiency", Value: values}},
		echarts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.4}),
		echarts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
	)

	// Dashed reference rings mark the band ceilings (Awareness/Applied/Proficient).
	for _, band := range bands {
		if band.MaxScore >= 100 {
			continue
		}
		ring := make([]float64, len(skills))
		for i := range ring {
			ring[i] = float64(band.MaxScore)
		}
		name := fmt.Sprintf("%s ceiling (%d)", band.Name, band.MaxScore)
		radar.AddSeries(name, []opts.RadarData{{Name: name, Value: ring}},
			echarts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Width: 1, Color: "#aaa"}),
			echarts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0}),
		)
	}

	return radar, nil
}
