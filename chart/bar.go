package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cbp-tools/bpviz/shape"
)

const (
	TitleLoopCounts       = "Loop Predictor: Loop Iteration Count Distribution"
	PlaceholderLoopCounts = "No Loop Count Data Available"
)

// LoopCounts draws loop iteration counts as bars in ascending key order.
func LoopCounts(f shape.Frequency) *Figure {
	if f.Len() == 0 {
		return placeholder(PlaceholderLoopCounts)
	}

	labels := make([]string, f.Len())
	data := make([]opts.BarData, f.Len())
	for i := range f.Keys {
		labels[i] = fmt.Sprint(f.Keys[i])
		data[i] = opts.BarData{Value: f.Counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: TitleLoopCounts}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Loop Iterations", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count", Type: "value"}),
		initOpts(TitleLoopCounts),
	)
	bar.SetXAxis(labels).AddSeries("Count", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "royalblue"}),
	)
	return newFigure(TitleLoopCounts, bar)
}
