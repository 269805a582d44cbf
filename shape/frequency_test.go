package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbp-tools/bpviz/results"
)

func TestFrequencyTable_SortsAscendingByKey(t *testing.T) {
	// GIVEN loop counts in arbitrary order
	pairs := []results.Pair{{Key: 16, Value: 412}, {Key: 4, Value: 1290}, {Key: 8, Value: 877}, {Key: 64, Value: 35}}

	// WHEN building the table
	f := FrequencyTable(pairs)

	// THEN keys ascend and counts follow their keys
	assert.Equal(t, []int64{4, 8, 16, 64}, f.Keys)
	assert.Equal(t, []int64{1290, 877, 412, 35}, f.Counts)
	assert.Equal(t, 4, f.Len())
}

func TestFrequencyTable_DuplicateKey_LaterOccurrenceWins(t *testing.T) {
	pairs := []results.Pair{{Key: 3, Value: 10}, {Key: 1, Value: 5}, {Key: 3, Value: 20}}

	f := FrequencyTable(pairs)

	assert.Equal(t, []int64{1, 3}, f.Keys)
	assert.Equal(t, []int64{5, 20}, f.Counts)
}

func TestFrequencyTable_Empty(t *testing.T) {
	f := FrequencyTable(nil)

	assert.Zero(t, f.Len())
	assert.Empty(t, f.Counts)
}

func TestFrequencyTable_DoesNotReorderInput(t *testing.T) {
	pairs := []results.Pair{{Key: 2, Value: 1}, {Key: 1, Value: 1}}

	_ = FrequencyTable(pairs)

	assert.Equal(t, int64(2), pairs[0].Key)
}

func TestFrequencyTable_ObjectKeyedLoopCounts(t *testing.T) {
	// GIVEN loop counts stored as an object keyed by integer strings
	rec := results.NewRecord(`{"loop_counts": {"7": 944, "2": 50211, "3": 12004}}`)

	// WHEN tabulated
	f := FrequencyTable(rec.Pairs(results.FieldLoopCounts))

	// THEN the keys are parsed and sorted numerically
	assert.Equal(t, []int64{2, 3, 7}, f.Keys)
	assert.Equal(t, []int64{50211, 12004, 944}, f.Counts)
}
