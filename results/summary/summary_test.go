package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbp-tools/bpviz/results"
)

func TestSummarize_PopulatedRecord(t *testing.T) {
	// GIVEN a record with every summary field
	rec := results.NewRecord(`{"NUM_INSTRUCTIONS": 1000, "NUM_BR": 200, "NUM_UNCOND_BR": 50,
		"NUM_CONDITIONAL_BR": 150, "NUM_MISPREDICTIONS": 7, "MISPRED_PER_1K_INST": 7.0}`)

	// WHEN summarized
	row := Summarize("traceA", rec)

	// THEN every field is projected
	assert.Equal(t, Row{
		Trace: "traceA", Instructions: 1000, Branches: 200, UncondBranches: 50,
		CondBranches: 150, Mispredictions: 7, MPKI: 7.0,
	}, row)
}

func TestSummarize_EmptyRecord_ZeroValues(t *testing.T) {
	row := Summarize("ghost", results.Record{})

	assert.Equal(t, Row{Trace: "ghost"}, row)
}

func TestRows_DatasetOrder(t *testing.T) {
	ds, err := results.ParseDocument([]byte(`{"b": {"NUM_BR": 2}, "a": {"NUM_BR": 1}}`))
	require.NoError(t, err)

	rows := Rows(ds)

	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].Trace)
	assert.Equal(t, "a", rows[1].Trace)
	assert.Empty(t, Rows(nil))
}

func TestSortRows(t *testing.T) {
	base := []Row{
		{Trace: "b", Branches: 10, MPKI: 0.5},
		{Trace: "a", Branches: 30, MPKI: 0.5},
		{Trace: "c", Branches: 20, MPKI: 0.1},
	}
	tests := []struct {
		name   string
		column string
		desc   bool
		want   []string
		ok     bool
	}{
		{"by trace", "trace", false, []string{"a", "b", "c"}, true},
		{"by branches desc", results.FieldBranches, true, []string{"a", "c", "b"}, true},
		{"stable on ties", results.FieldMPKI, false, []string{"c", "b", "a"}, true},
		{"unknown column", "bogus", false, []string{"b", "a", "c"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := append([]Row(nil), base...)
			ok := SortRows(rows, tt.column, tt.desc)
			assert.Equal(t, tt.ok, ok)
			got := make([]string, len(rows))
			for i, r := range rows {
				got[i] = r.Trace
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRow_Cells_TableFormatting(t *testing.T) {
	row := Row{Trace: "t", Instructions: 1234567, Branches: 999, MPKI: 12.3456789}

	cells := row.Cells()

	require.Len(t, cells, len(Columns))
	assert.Equal(t, "1,234,567", cells[1])
	assert.Equal(t, "999", cells[2])
	assert.Equal(t, "12.3457", cells[6])
}

func TestIsValidColumn(t *testing.T) {
	for _, c := range Columns {
		assert.True(t, IsValidColumn(c.Key), c.Key)
	}
	assert.False(t, IsValidColumn(""))
}
