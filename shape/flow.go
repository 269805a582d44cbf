package shape

import "github.com/cbp-tools/bpviz/results"

// Node colors of the misprediction flow.
const (
	ColorCorrect   = "mediumseagreen"
	ColorIncorrect = "indianred"

	linkCorrect   = "rgba(60, 179, 113, 0.4)"
	linkIncorrect = "rgba(205, 92, 92, 0.4)"
)

// Flow node indices.
const (
	NodeTageCorrect = iota
	NodeTageIncorrect
	NodeLoopCorrect
	NodeLoopIncorrect
	NodeInternalCorrect
	NodeInternalIncorrect
	NodeFinalCorrect
	NodeFinalIncorrect
)

// FlowNode is a stage outcome in the misprediction flow.
type FlowNode struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// FlowEdge moves Value predictions from Source to Target.
type FlowEdge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Field  string  `json:"field"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Value  float64 `json:"value"`
}

// Flow is the node/edge/weight graph of prediction outcomes between predictor stages.
type Flow struct {
	Nodes []FlowNode `json:"nodes"`
	Edges []FlowEdge `json:"edges"`
}

// Total returns the sum of all edge weights.
func (f Flow) Total() float64 {
	var total float64
	for _, e := range f.Edges {
		total += e.Value
	}
	return total
}

var flowNodes = []FlowNode{
	NodeTageCorrect:       {"TAGE Correct", ColorCorrect},
	NodeTageIncorrect:     {"TAGE Incorrect", ColorIncorrect},
	NodeLoopCorrect:       {"Loop Correct", ColorCorrect},
	NodeLoopIncorrect:     {"Loop Incorrect", ColorIncorrect},
	NodeInternalCorrect:   {"Internal Prediction Correct", ColorCorrect},
	NodeInternalIncorrect: {"Internal Prediction Incorrect", ColorIncorrect},
	NodeFinalCorrect:      {"Final Prediction Correct", ColorCorrect},
	NodeFinalIncorrect:    {"Final Prediction Incorrect", ColorIncorrect},
}

// Topology and field mapping are fixed. The statistical corrector (SC) either
// agrees with the internal prediction, wants to flip it but is ignored, or flips it.
var flowEdges = []FlowEdge{
	{Source: NodeTageCorrect, Target: NodeInternalCorrect, Field: results.FieldTageCorrect, Label: "TAGE was Right", Color: linkCorrect},
	{Source: NodeTageIncorrect, Target: NodeInternalIncorrect, Field: results.FieldTageIncorrect, Label: "TAGE was Wrong", Color: linkIncorrect},
	{Source: NodeLoopCorrect, Target: NodeInternalCorrect, Field: results.FieldLoopCorrect, Label: "Loop Predictor was Right", Color: linkCorrect},
	{Source: NodeLoopIncorrect, Target: NodeInternalIncorrect, Field: results.FieldLoopIncorrect, Label: "Loop Predictor was Wrong", Color: linkIncorrect},

	{Source: NodeInternalCorrect, Target: NodeFinalCorrect, Field: results.FieldInterCorrectSCAgree, Label: "Statistical Corrector Agreed", Color: linkCorrect},
	{Source: NodeInternalCorrect, Target: NodeFinalCorrect, Field: results.FieldInterCorrectSCFlipIgn, Label: "Statistical Corrector Flip Ignored", Color: linkCorrect},
	{Source: NodeInternalCorrect, Target: NodeFinalIncorrect, Field: results.FieldInterCorrectSCFlip, Label: "Statistical Corrector Flipped Prediction", Color: linkIncorrect},

	{Source: NodeInternalIncorrect, Target: NodeFinalIncorrect, Field: results.FieldInterIncorrectSCAgree, Label: "Statistical Corrector Agreed", Color: linkIncorrect},
	{Source: NodeInternalIncorrect, Target: NodeFinalIncorrect, Field: results.FieldInterIncorrectSCFlipIgn, Label: "Statistical Corrector Flip Ignored", Color: linkIncorrect},
	{Source: NodeInternalIncorrect, Target: NodeFinalCorrect, Field: results.FieldInterIncorrectSCFlip, Label: "Statistical Corrector Flipped Prediction", Color: linkCorrect},
}

// BuildMispredictionFlow reads the prediction-source counters of rec into the
// fixed 8-node flow graph. Missing counters weigh 0.
func BuildMispredictionFlow(rec results.Record) Flow {
	f := Flow{
		Nodes: append([]FlowNode(nil), flowNodes...),
		Edges: make([]FlowEdge, len(flowEdges)),
	}
	for i, e := range flowEdges {
		e.Value = rec.Float(e.Field)
		f.Edges[i] = e
	}
	return f
}
