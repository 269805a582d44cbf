package shape

import (
	"cmp"
	"slices"

	"github.com/cbp-tools/bpviz/results"
)

// Frequency is an ascending ordered mapping from key to count.
type Frequency struct {
	Keys   []int64 `json:"keys"`
	Counts []int64 `json:"counts"`
}

// Len returns the number of distinct keys.
func (f Frequency) Len() int {
	return len(f.Keys)
}

// FrequencyTable sorts pairs ascending by key (stable) and collapses duplicate
// keys, keeping the value of the later occurrence.
func FrequencyTable(pairs []results.Pair) Frequency {
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b results.Pair) int {
		return cmp.Compare(a.Key, b.Key)
	})

	var f Frequency
	for _, p := range sorted {
		if n := len(f.Keys); n > 0 && f.Keys[n-1] == p.Key {
			f.Counts[n-1] = p.Value
			continue
		}
		f.Keys = append(f.Keys, p.Key)
		f.Counts = append(f.Counts, p.Value)
	}
	return f
}
