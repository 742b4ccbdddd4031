package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// MaxContributionLevel is the highest level GitHub assigns to a calendar day.
const MaxContributionLevel = 4

// Activity builds a line chart of daily contribution levels, oldest first.
func Activity(username string, levels []int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Contribution activity",
			Width:     "900px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Contribution activity",
			Subtitle: username,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Level",
			Min:  0,
			Max:  MaxContributionLevel,
		}),
	)

	days := make([]string, len(levels))
	items := make([]opts.LineData, len(levels))
	for i, level := range levels {
		days[i] = "Day " + strconv.Itoa(i+1)
		items[i] = opts.LineData{Value: level}
	}

	line.SetXAxis(days).AddSeries("Contribution level", items)
	return line
}

// RenderActivity writes the standalone activity chart page to w.
func RenderActivity(w io.Writer, username string, levels []int) error {
	if err := Activity(username, levels).Render(w); err != nil {
		return fmt.Errorf("render activity chart: %w", err)
	}
	return nil
}
