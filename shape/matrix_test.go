package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReshapeSquare(t *testing.T) {
	tests := []struct {
		name string
		seq  []float64
		want [][]float64
	}{
		{
			name: "perfect square",
			seq:  []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
			want: [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		},
		{
			name: "trailing elements discarded",
			seq:  []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			want: [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		},
		{
			name: "single element",
			seq:  []float64{42},
			want: [][]float64{{42}},
		},
		{
			name: "three elements make a 1x1",
			seq:  []float64{5, 6, 7},
			want: [][]float64{{5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReshapeSquare(tt.seq))
		})
	}
}

func TestReshapeSquare_Empty_ReturnsNil(t *testing.T) {
	assert.Nil(t, ReshapeSquare(nil))
	assert.Nil(t, ReshapeSquare([]float64{}))
}

func TestReshapeSquare_RowsDoNotAliasInput(t *testing.T) {
	seq := []float64{1, 2, 3, 4}

	m := ReshapeSquare(seq)
	m[0][0] = 99

	assert.Equal(t, 1.0, seq[0])
}

func TestSquareSide(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 15: 3, 16: 4, 17: 4, 1_000_000: 1000, -2: 0} {
		assert.Equal(t, want, SquareSide(n), "n=%d", n)
	}
}
