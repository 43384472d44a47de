package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wireroute/connections"
	"wireroute/core"
)

func toMM(nm float64) float64 {
	return nm / float64(core.Millimeter)
}

// WriteOptionsChart renders a bar chart comparing the length and score of every
// routing option as a standalone HTML page.
func WriteOptionsChart(w io.Writer, analysis connections.RoutingAnalysis) error {
	modes := make([]string, 0, len(analysis.Options))
	lengths := make([]opts.BarData, 0, len(analysis.Options))
	scores := make([]opts.BarData, 0, len(analysis.Options))
	for _, opt := range analysis.Options {
		name := opt.Mode.String()
		if opt.Collision.HasCollision {
			name += " (collides)"
		}
		modes = append(modes, name)
		lengths = append(lengths, opts.BarData{Value: toMM(opt.Path.TotalLength)})
		scores = append(scores, opts.BarData{Value: toMM(opt.Score)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Routing options", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Routing options",
			Subtitle: fmt.Sprintf("recommended: %s", analysis.Recommended),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mm"}),
	)
	bar.SetXAxis(modes).
		AddSeries("length", lengths,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		).
		AddSeries("score", scores)

	return bar.Render(w)
}
