package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_PreservesDocumentOrder(t *testing.T) {
	ds, err := ParseDocument([]byte(`{"zeta": {"NUM_BR": 1}, "alpha": {"NUM_BR": 2}}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, ds.Names())
	assert.Equal(t, "zeta", ds.Default())
	assert.Equal(t, int64(2), ds.Lookup("alpha").Int(FieldBranches))
}

func TestParseDocument_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"traceA": {"NUM_BR": 1}`},
		{"top-level array", `[{"NUM_BR": 1}]`},
		{"non-object record", `{"traceA": 5}`},
		{"empty input", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDataset_Put_LastWriteWinsKeepsPosition(t *testing.T) {
	// GIVEN a dataset with two traces
	ds := NewDataset()
	ds.Put("a", NewRecord(`{"NUM_BR": 1}`))
	ds.Put("b", NewRecord(`{"NUM_BR": 2}`))

	// WHEN "a" is written again
	ds.Put("a", NewRecord(`{"NUM_BR": 3}`))

	// THEN the value is replaced but the order is unchanged
	assert.Equal(t, []string{"a", "b"}, ds.Names())
	assert.Equal(t, int64(3), ds.Lookup("a").Int(FieldBranches))
	assert.Equal(t, 2, ds.Len())
}

func TestDataset_NilSafe(t *testing.T) {
	var ds *Dataset

	_, ok := ds.Get("a")
	assert.False(t, ok)
	assert.True(t, ds.Lookup("a").Empty())
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, "", ds.Default())
	assert.Nil(t, ds.Names())
}
