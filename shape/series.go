package shape

import (
	"fmt"

	"github.com/cbp-tools/bpviz/results"
)

// Downsample keeps every Nth point of seq so that at most maxPoints remain,
// returning the kept points with their original indices. maxPoints <= 0 keeps
// everything.
func Downsample(seq []float64, maxPoints int) (xs []int, ys []float64) {
	step := 1
	if maxPoints > 0 && len(seq) > maxPoints {
		step = (len(seq) + maxPoints - 1) / maxPoints
	}
	xs = make([]int, 0, len(seq)/step+1)
	ys = make([]float64, 0, len(seq)/step+1)
	for i := 0; i < len(seq); i += step {
		xs = append(xs, i)
		ys = append(ys, seq[i])
	}
	return xs, ys
}

// NamedSeries is a series ready for a multi-series chart.
type NamedSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// NameSeries drops empty series and names unnamed ones "Series i", where i is
// the 1-based position in the input.
func NameSeries(list []results.Series) []NamedSeries {
	var out []NamedSeries
	for i, s := range list {
		if len(s.Values) == 0 {
			continue
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Series %d", i+1)
		}
		out = append(out, NamedSeries{Name: name, Values: s.Values})
	}
	return out
}

// MaxLen returns the length of the longest series.
func MaxLen(series []NamedSeries) int {
	n := 0
	for _, s := range series {
		n = max(n, len(s.Values))
	}
	return n
}
