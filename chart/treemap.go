package chart

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cbp-tools/bpviz/shape"
)

const (
	TitleTreeMap       = "Predictor Component Sizes"
	PlaceholderTreeMap = "Dictionary with component sizes not available"
)

// TreeMap draws the predictor size hierarchy. Containers carry no value of
// their own so each is sized by the sum of its leaves. Leaf sizes are drawn
// as integers; a positive size below one is kept at one so it stays visible.
func TreeMap(h shape.Hierarchy) *Figure {
	if h.Len() <= 1 {
		return placeholder(PlaceholderTreeMap)
	}

	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: TitleTreeMap}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		initOpts(TitleTreeMap),
	)
	tm.AddSeries("Size", []opts.TreeMapNode{treeNode(h, 0)},
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return newFigure(TitleTreeMap, tm)
}

func treeNode(h shape.Hierarchy, idx int) opts.TreeMapNode {
	node := opts.TreeMapNode{
		Name:  h.Labels[idx],
		Value: leafSize(h.Values[idx]),
	}
	for child := idx + 1; child < h.Len(); child++ {
		if h.ParentIndex[child] == idx {
			node.Children = append(node.Children, treeNode(h, child))
		}
	}
	return node
}

func leafSize(v float64) int {
	size := int(math.Round(v))
	if size < 1 && v > 0 {
		return 1
	}
	return size
}
