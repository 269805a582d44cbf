package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cbp-tools/bpviz/shape"
)

const (
	TitleTimeSeries       = "MPKBr over Time"
	PlaceholderTimeSeries = "No MPKBr periodic data available"

	TitleStackedArea       = "Useful Entries per Table"
	PlaceholderStackedArea = "No useful entry data available"

	// MaxTimeSeriesPoints caps the points drawn for one periodic series.
	MaxTimeSeriesPoints = 2000
)

// TimeSeries draws a periodic metric against its period index with a zoom slider.
func TimeSeries(seq []float64) *Figure {
	if len(seq) == 0 {
		return placeholder(PlaceholderTimeSeries)
	}
	xs, ys := shape.Downsample(seq, MaxTimeSeriesPoints)

	labels := make([]string, len(xs))
	data := make([]opts.LineData, len(ys))
	for i := range xs {
		labels[i] = fmt.Sprint(xs[i])
		data[i] = opts.LineData{Value: ys[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: TitleTimeSeries}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Period", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "MPKBr", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		initOpts(TitleTimeSeries),
	)
	line.SetXAxis(labels).AddSeries("MPKBr", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(len(ys) <= 100)}),
	)
	return newFigure(TitleTimeSeries, line)
}

// StackedArea draws one filled area per series, stacked on a shared index axis.
func StackedArea(series []shape.NamedSeries) *Figure {
	n := shape.MaxLen(series)
	if n == 0 {
		return placeholder(PlaceholderStackedArea)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: TitleStackedArea}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Period", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Useful Entries", Type: "value"}),
		initOpts(TitleStackedArea),
	)
	line.SetXAxis(indexLabels(n))
	for _, s := range series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data,
			charts.WithLineChartOpts(opts.LineChart{Stack: "total", ShowSymbol: opts.Bool(false)}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.6}),
		)
	}
	return newFigure(TitleStackedArea, line)
}
