// Package summary projects trace records into table rows, summary cards and
// predictor information tables, and formats their numbers for display.
package summary

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/cbp-tools/bpviz/results"
)

// Row is the tabular projection of one trace record.
type Row struct {
	Trace          string  `json:"trace"`
	Instructions   int64   `json:"NUM_INSTRUCTIONS"`
	Branches       int64   `json:"NUM_BR"`
	UncondBranches int64   `json:"NUM_UNCOND_BR"`
	CondBranches   int64   `json:"NUM_CONDITIONAL_BR"`
	Mispredictions int64   `json:"NUM_MISPREDICTIONS"`
	MPKI           float64 `json:"MISPRED_PER_1K_INST"`
}

// Summarize projects a record into a Row. Missing fields read as 0.
func Summarize(name string, rec results.Record) Row {
	return Row{
		Trace:          name,
		Instructions:   rec.Int(results.FieldInstructions),
		Branches:       rec.Int(results.FieldBranches),
		UncondBranches: rec.Int(results.FieldUncondBranches),
		CondBranches:   rec.Int(results.FieldCondBranches),
		Mispredictions: rec.Int(results.FieldMispredictions),
		MPKI:           rec.Float(results.FieldMPKI),
	}
}

// Rows summarizes every trace in dataset order. Safe for a nil dataset.
func Rows(ds *results.Dataset) []Row {
	names := ds.Names()
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, Summarize(name, ds.Lookup(name)))
	}
	return rows
}

// Column describes one table column.
type Column struct {
	Key   string // JSON field name, also the ?sort= value
	Title string
}

// Columns lists the table columns in display order.
var Columns = []Column{
	{Key: "trace", Title: "Trace"},
	{Key: results.FieldInstructions, Title: "Instructions"},
	{Key: results.FieldBranches, Title: "Branches"},
	{Key: results.FieldUncondBranches, Title: "Unconditional"},
	{Key: results.FieldCondBranches, Title: "Conditional"},
	{Key: results.FieldMispredictions, Title: "Mispredictions"},
	{Key: results.FieldMPKI, Title: "MPKI"},
}

var rowComparators = map[string]func(a, b Row) int{
	"trace":                     func(a, b Row) int { return cmp.Compare(a.Trace, b.Trace) },
	results.FieldInstructions:   func(a, b Row) int { return cmp.Compare(a.Instructions, b.Instructions) },
	results.FieldBranches:       func(a, b Row) int { return cmp.Compare(a.Branches, b.Branches) },
	results.FieldUncondBranches: func(a, b Row) int { return cmp.Compare(a.UncondBranches, b.UncondBranches) },
	results.FieldCondBranches:   func(a, b Row) int { return cmp.Compare(a.CondBranches, b.CondBranches) },
	results.FieldMispredictions: func(a, b Row) int { return cmp.Compare(a.Mispredictions, b.Mispredictions) },
	results.FieldMPKI:           func(a, b Row) int { return cmp.Compare(a.MPKI, b.MPKI) },
}

// IsValidColumn returns true if column is a sortable column key.
func IsValidColumn(column string) bool {
	_, ok := rowComparators[column]
	return ok
}

// SortRows stably sorts rows in place by column. It returns false and leaves
// rows untouched when the column is unknown.
func SortRows(rows []Row, column string, desc bool) bool {
	compare, ok := rowComparators[column]
	if !ok {
		return false
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return true
}

// Cells formats the row for the trace table: integers with thousands
// separators, MPKI at a fixed 4 decimals.
func (r Row) Cells() []string {
	return []string{
		r.Trace,
		humanize.Comma(r.Instructions),
		humanize.Comma(r.Branches),
		humanize.Comma(r.UncondBranches),
		humanize.Comma(r.CondBranches),
		humanize.Comma(r.Mispredictions),
		fmt.Sprintf("%.4f", r.MPKI),
	}
}
