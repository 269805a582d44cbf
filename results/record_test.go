package results

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ZeroValue_AllAccessorsReturnSentinels(t *testing.T) {
	// GIVEN the zero record
	var rec Record

	// THEN no accessor fails and each returns its zero sentinel
	assert.True(t, rec.Empty())
	assert.False(t, rec.Has(FieldBranches))
	assert.Equal(t, int64(0), rec.Int(FieldInstructions))
	assert.Equal(t, 0.0, rec.Float(FieldMPKI))
	assert.Nil(t, rec.Floats(FieldMPKBrPeriodic))
	assert.Nil(t, rec.SizeTree(FieldSizeMap))
	assert.Nil(t, rec.Pairs(FieldLoopCounts))
	assert.Nil(t, rec.SeriesList(FieldUsefulEntries))
	assert.Equal(t, "{}", rec.Raw())
}

func TestRecord_MistypedFields_ReadAsZero(t *testing.T) {
	rec := NewRecord(`{"NUM_BR": "many", "MISPRED_PER_1K_INST": null, "MPKBr_periodic": 3}`)

	assert.True(t, rec.Has(FieldBranches))
	assert.Equal(t, int64(0), rec.Int(FieldBranches))
	assert.False(t, rec.Has(FieldMPKI))
	assert.Equal(t, 0.0, rec.Float(FieldMPKI))
	assert.Nil(t, rec.Floats(FieldMPKBrPeriodic))
}

func TestRecord_Get_PathCharactersMatchLiterally(t *testing.T) {
	// GIVEN field names that gjson would otherwise read as paths
	rec := NewRecord(`{"a.b": 5, "a": {"b": 7}, "x*": 2, "n#": 3}`)

	// THEN each name resolves to its own top-level key
	assert.Equal(t, int64(5), rec.Int("a.b"))
	assert.Equal(t, int64(2), rec.Int("x*"))
	assert.Equal(t, int64(3), rec.Int("n#"))
	assert.True(t, rec.Has("a.b"))
	assert.False(t, rec.Has("a?b"))
}

func TestRecord_Floats_PreservesPositions(t *testing.T) {
	rec := NewRecord(`{"MPKBr_periodic": [1.5, "x", 3]}`)

	assert.Equal(t, []float64{1.5, 0, 3}, rec.Floats(FieldMPKBrPeriodic))
}

func TestRecord_SizeTree_ParsesLeavesAndContainers(t *testing.T) {
	// GIVEN a nested size map with an empty container and a junk entry
	rec := NewRecord(`{"size_map": [
		{"key": "TAGE", "value": [{"key": "T1", "value": 10}, {"key": "T2", "value": 20}]},
		{"key": "Loop", "value": 7.5},
		{"key": "Empty", "value": []},
		42
	]}`)

	// WHEN parsed
	nodes := rec.SizeTree(FieldSizeMap)

	// THEN leaves carry values, containers carry children
	require.Len(t, nodes, 3)
	assert.Equal(t, "TAGE", nodes[0].Key)
	assert.True(t, nodes[0].Container)
	require.Len(t, nodes[0].Children, 2)
	assert.Equal(t, SizeNode{Key: "T2", Value: 20}, nodes[0].Children[1])
	assert.Equal(t, SizeNode{Key: "Loop", Value: 7.5}, nodes[1])
	assert.True(t, nodes[2].Container)
	assert.Empty(t, nodes[2].Children)
}

func TestRecord_Pairs_AcceptsAllShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Pair
	}{
		{"object list", `{"loop_counts": [{"key": 8, "value": 3}, {"key": "2", "value": 5}]}`, []Pair{{8, 3}, {2, 5}}},
		{"array list", `{"loop_counts": [[4, 1], [1, 9], [7]]}`, []Pair{{4, 1}, {1, 9}}},
		{"object map", `{"loop_counts": {"3": 30, "1": 10, "x": 99}}`, []Pair{{3, 30}, {1, 10}}},
		{"missing", `{}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRecord(tt.raw).Pairs(FieldLoopCounts))
		})
	}
}

func TestRecord_SeriesList_NamedAndUnnamed(t *testing.T) {
	rec := NewRecord(`{"useful_entries": [[1, 2], {"key": "T2", "value": [3, 4]}, "skip"]}`)

	got := rec.SeriesList(FieldUsefulEntries)

	require.Len(t, got, 2)
	assert.Equal(t, Series{Values: []float64{1, 2}}, got[0])
	assert.Equal(t, Series{Name: "T2", Values: []float64{3, 4}}, got[1])
}

func TestRecord_MarshalJSON_EmitsRawObject(t *testing.T) {
	rec := NewRecord(`{"NUM_BR": 200}`)

	data, err := json.Marshal(map[string]Record{"traceA": rec, "empty": {}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"traceA": {"NUM_BR": 200}, "empty": {}}`, string(data))
}
