package chart

import (
	"fmt"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const PlaceholderHeatmap = "No MPKBr periodic data available"

var viridis = []string{"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// HeatmapTitle names an n×n access heatmap.
func HeatmapTitle(n int) string {
	return fmt.Sprintf("Bimodal Table Access Heatmap (%dx%d periods)", n, n)
}

// Heatmap draws a square matrix with row 0 at the top.
func Heatmap(matrix [][]float64) *Figure {
	n := len(matrix)
	if n == 0 {
		return placeholder(PlaceholderHeatmap)
	}
	title := HeatmapTitle(n)

	var data []opts.HeatMapData
	maxVal := 0.0
	for r, row := range matrix {
		y := n - 1 - r
		for x, v := range row {
			maxVal = max(maxVal, v)
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, v}})
		}
	}
	rows := indexLabels(n)
	slices.Reverse(rows)
	if maxVal == 0 {
		maxVal = 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Column",
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Row",
			Type:      "category",
			Data:      rows,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxVal),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
		initOpts(title),
	)
	hm.SetXAxis(indexLabels(n)).AddSeries("Accesses", data)
	return newFigure(title, hm)
}
