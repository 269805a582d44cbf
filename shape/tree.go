package shape

import "github.com/cbp-tools/bpviz/results"

// Hierarchy is a flattened size tree in pre-order. Entry 0 is the root, with an
// empty parent label and ParentIndex -1. Container entries have value 0: their
// displayed size is the sum of their descendants.
type Hierarchy struct {
	Labels      []string  `json:"labels"`
	Parents     []string  `json:"parents"`
	Values      []float64 `json:"values"`
	ParentIndex []int     `json:"parent_index"`
}

// Len returns the number of entries, root included.
func (h Hierarchy) Len() int {
	return len(h.Labels)
}

// FlattenTree walks nodes depth first, emitting one entry per node after the
// seeded root. Sibling order follows the input.
func FlattenTree(nodes []results.SizeNode, rootLabel string) Hierarchy {
	h := Hierarchy{
		Labels:      []string{rootLabel},
		Parents:     []string{""},
		Values:      []float64{0},
		ParentIndex: []int{-1},
	}
	h.walk(nodes, 0)
	return h
}

func (h *Hierarchy) walk(nodes []results.SizeNode, parent int) {
	for _, node := range nodes {
		idx := len(h.Labels)
		h.Labels = append(h.Labels, node.Key)
		h.Parents = append(h.Parents, h.Labels[parent])
		h.ParentIndex = append(h.ParentIndex, parent)
		if node.Container {
			h.Values = append(h.Values, 0)
			h.walk(node.Children, idx)
			continue
		}
		h.Values = append(h.Values, node.Value)
	}
}
