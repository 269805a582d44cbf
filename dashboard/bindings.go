package dashboard

import (
	"errors"
	"fmt"

	"github.com/cbp-tools/bpviz/chart"
	"github.com/cbp-tools/bpviz/results"
	"github.com/cbp-tools/bpviz/shape"
)

// ErrUnknownPanel is returned when a panel id has no binding.
var ErrUnknownPanel = errors.New("unknown panel")

// RootLabel names the root of the component size tree.
const RootLabel = "Predictor Components"

// BuildFunc builds a panel's figure for one trace. It must only read ds.
type BuildFunc func(trace string, ds *results.Dataset) *chart.Figure

// Panel binds a page section to the figure that fills it.
type Panel struct {
	ID          string
	Heading     string
	Description string
	Build       BuildFunc
}

// Bindings is an ordered registry of panels. Registration order is render order.
type Bindings struct {
	panels []Panel
	index  map[string]int
}

// NewBindings creates an empty registry.
func NewBindings() *Bindings {
	return &Bindings{index: make(map[string]int)}
}

// Register adds p. Ids must be unique and non-empty.
func (b *Bindings) Register(p Panel) error {
	if p.ID == "" {
		return fmt.Errorf("panel id is required")
	}
	if p.Build == nil {
		return fmt.Errorf("panel %q: build func is required", p.ID)
	}
	if _, dup := b.index[p.ID]; dup {
		return fmt.Errorf("panel %q already registered", p.ID)
	}
	b.index[p.ID] = len(b.panels)
	b.panels = append(b.panels, p)
	return nil
}

// Panels returns the registered panels in render order.
func (b *Bindings) Panels() []Panel {
	return append([]Panel(nil), b.panels...)
}

// Lookup returns the panel registered under id.
func (b *Bindings) Lookup(id string) (Panel, bool) {
	i, ok := b.index[id]
	if !ok {
		return Panel{}, false
	}
	return b.panels[i], true
}

// Build runs the panel's build func for trace.
func (b *Bindings) Build(id, trace string, ds *results.Dataset) (*chart.Figure, error) {
	p, ok := b.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPanel, id)
	}
	return p.Build(trace, ds), nil
}

// DefaultBindings registers the six dashboard panels.
func DefaultBindings() *Bindings {
	b := NewBindings()
	for _, p := range []Panel{
		{
			ID:          "tree-map",
			Heading:     "Size of Individual Predictor Components",
			Description: "Visualization of predictor structure and size of all components.",
			Build:       buildTreeMap,
		},
		{
			ID:          "heatmap-graph",
			Heading:     "Bimodal Table Access Heatmap",
			Description: "Accesses per bimodal table period laid out on a square grid. Each cell represents a measurement period.",
			Build:       buildHeatmap,
		},
		{
			ID:          "timeseries-graph",
			Heading:     "Mispredictions Per Thousand Branches (MPKBr) over Time",
			Description: "Each point represents a thousand retired branches.",
			Build:       buildTimeSeries,
		},
		{
			ID:          "stacked-area",
			Heading:     "Useful Entries",
			Description: "Useful entries of each tagged table over time.",
			Build:       buildStackedArea,
		},
		{
			ID:          "loop-count-bar",
			Heading:     "Loop Iteration Counts",
			Description: "How often the loop predictor saw each loop iteration count.",
			Build:       buildLoopCounts,
		},
		{
			ID:          "src-misp-sankey",
			Heading:     "Source of Mispredictions",
			Description: "Flow of correct and incorrect predictions from each predictor component to the final prediction.",
			Build:       buildMispredictionFlow,
		},
	} {
		if err := b.Register(p); err != nil {
			panic(err)
		}
	}
	return b
}

func buildTreeMap(trace string, ds *results.Dataset) *chart.Figure {
	rec := ds.Lookup(trace)
	return chart.TreeMap(shape.FlattenTree(rec.SizeTree(results.FieldSizeMap), RootLabel))
}

// heatmapSequence prefers bimodal accesses and falls back to the periodic MPKBr series.
func heatmapSequence(rec results.Record) []float64 {
	if seq := rec.Floats(results.FieldBimodalAccesses); len(seq) > 0 {
		return seq
	}
	return rec.Floats(results.FieldMPKBrPeriodic)
}

func buildHeatmap(trace string, ds *results.Dataset) *chart.Figure {
	return chart.Heatmap(shape.ReshapeSquare(heatmapSequence(ds.Lookup(trace))))
}

func buildTimeSeries(trace string, ds *results.Dataset) *chart.Figure {
	return chart.TimeSeries(ds.Lookup(trace).Floats(results.FieldMPKBrPeriodic))
}

func buildStackedArea(trace string, ds *results.Dataset) *chart.Figure {
	return chart.StackedArea(shape.NameSeries(ds.Lookup(trace).SeriesList(results.FieldUsefulEntries)))
}

func buildLoopCounts(trace string, ds *results.Dataset) *chart.Figure {
	return chart.LoopCounts(shape.FrequencyTable(ds.Lookup(trace).Pairs(results.FieldLoopCounts)))
}

func buildMispredictionFlow(trace string, ds *results.Dataset) *chart.Figure {
	return chart.MispredictionFlow(shape.BuildMispredictionFlow(ds.Lookup(trace)))
}
