package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cbp-tools/bpviz/shape"
)

const (
	TitleMispredictionFlow       = "Source of Mispredictions"
	PlaceholderMispredictionFlow = "No misprediction source data available"
)

// MispredictionFlow draws the flow graph as a Sankey diagram. A flow whose
// weights are all zero has nothing to show and becomes a placeholder.
// Links take the color of their target: a flow ending correct is green.
func MispredictionFlow(f shape.Flow) *Figure {
	if f.Total() == 0 {
		return placeholder(PlaceholderMispredictionFlow)
	}

	nodes := make([]opts.SankeyNode, len(f.Nodes))
	palette := make(opts.Colors, len(f.Nodes))
	for i, n := range f.Nodes {
		nodes[i] = opts.SankeyNode{Name: n.Label}
		palette[i] = n.Color
	}
	links := make([]opts.SankeyLink, 0, len(f.Edges))
	for _, e := range f.Edges {
		if e.Value == 0 {
			continue
		}
		links = append(links, opts.SankeyLink{
			Source: f.Nodes[e.Source].Label,
			Target: f.Nodes[e.Target].Label,
			Value:  float32(e.Value),
		})
	}

	sk := charts.NewSankey()
	sk.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: TitleMispredictionFlow}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithColorsOpts(palette),
		initOpts(TitleMispredictionFlow),
	)
	sk.AddSeries("Predictions", nodes, links,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "target"}),
	)
	return newFigure(TitleMispredictionFlow, sk)
}
