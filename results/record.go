// Package results loads branch-predictor simulation artifacts: per-trace metric
// records (JSON) and the predictor configuration (YAML).
// This package has no dependencies on shape/, chart/ or dashboard/: it stores pure data types.
package results

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Field names of a trace record as written by the simulator.
const (
	FieldInstructions   = "NUM_INSTRUCTIONS"
	FieldBranches       = "NUM_BR"
	FieldUncondBranches = "NUM_UNCOND_BR"
	FieldCondBranches   = "NUM_CONDITIONAL_BR"
	FieldMispredictions = "NUM_MISPREDICTIONS"
	FieldMPKI           = "MISPRED_PER_1K_INST"

	FieldMPKBrPeriodic   = "MPKBr_periodic"
	FieldBimodalAccesses = "bimodal_accesses"
	FieldSizeMap         = "size_map"
	FieldUsefulEntries   = "useful_entries"
	FieldLoopCounts      = "loop_counts"

	FieldTageCorrect             = "tage_correct"
	FieldTageIncorrect           = "tage_incorrect"
	FieldLoopCorrect             = "loop_correct"
	FieldLoopIncorrect           = "loop_incorrect"
	FieldInterCorrectSCAgree     = "inter_correct_sc_agree"
	FieldInterCorrectSCFlipIgn   = "inter_correct_sc_flip_ignored"
	FieldInterCorrectSCFlip      = "inter_correct_sc_flip"
	FieldInterIncorrectSCAgree   = "inter_incorrect_sc_agree"
	FieldInterIncorrectSCFlipIgn = "inter_incorrect_sc_flip_ignored"
	FieldInterIncorrectSCFlip    = "inter_incorrect_sc_flip"
)

// Record is the metric object of a single trace. The zero value is an empty
// record; every accessor falls back to a zero sentinel for absent or mistyped fields.
type Record struct {
	raw string
}

// NewRecord wraps a raw JSON object. It does not validate its input; use
// ParseDocument for untrusted data.
func NewRecord(raw string) Record {
	return Record{raw: strings.TrimSpace(raw)}
}

// Empty reports whether the record has no fields.
func (r Record) Empty() bool {
	if r.raw == "" {
		return true
	}
	empty := true
	gjson.Parse(r.raw).ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}

// Raw returns the record's JSON text ("{}" for the zero record).
func (r Record) Raw() string {
	if r.raw == "" {
		return "{}"
	}
	return r.raw
}

// MarshalJSON emits the record unchanged.
func (r Record) MarshalJSON() ([]byte, error) {
	return []byte(r.Raw()), nil
}

// Get returns the raw field value. The field name is escaped, so path
// characters such as '.', '*', '?' and '#' match literally.
func (r Record) Get(field string) gjson.Result {
	if r.raw == "" {
		return gjson.Result{}
	}
	return gjson.Get(r.raw, gjson.Escape(field))
}

// Has reports whether the field is present and not null.
func (r Record) Has(field string) bool {
	res := r.Get(field)
	return res.Exists() && res.Type != gjson.Null
}

// Int returns a numeric field truncated to int64, or 0.
func (r Record) Int(field string) int64 {
	res := r.Get(field)
	if res.Type != gjson.Number {
		return 0
	}
	return res.Int()
}

// Float returns a numeric field, or 0.0.
func (r Record) Float(field string) float64 {
	res := r.Get(field)
	if res.Type != gjson.Number {
		return 0
	}
	return res.Float()
}

// Floats returns a numeric list field. Non-numeric elements read as 0 so that
// positions are preserved; a missing or non-list field returns nil.
func (r Record) Floats(field string) []float64 {
	return floats(r.Get(field))
}

func floats(res gjson.Result) []float64 {
	if !res.IsArray() {
		return nil
	}
	items := res.Array()
	if len(items) == 0 {
		return nil
	}
	out := make([]float64, len(items))
	for i, item := range items {
		if item.Type == gjson.Number {
			out[i] = item.Float()
		}
	}
	return out
}

// SizeNode is one entry of a predictor size map. A container carries Children
// and no size of its own; a leaf carries Value.
type SizeNode struct {
	Key       string
	Value     float64
	Container bool
	Children  []SizeNode
}

// SizeTree parses a list of {key, value} nodes. Entries that are not objects are skipped.
func (r Record) SizeTree(field string) []SizeNode {
	return sizeNodes(r.Get(field))
}

func sizeNodes(res gjson.Result) []SizeNode {
	if !res.IsArray() {
		return nil
	}
	var nodes []SizeNode
	res.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		node := SizeNode{Key: item.Get("key").String()}
		val := item.Get("value")
		if val.IsArray() {
			node.Container = true
			node.Children = sizeNodes(val)
		} else if val.Type == gjson.Number {
			node.Value = val.Float()
		}
		nodes = append(nodes, node)
		return true
	})
	return nodes
}

// Pair is an integer key/count entry, e.g. a loop iteration count and how often it was seen.
type Pair struct {
	Key   int64
	Value int64
}

// Pairs reads a list of {key, value} objects, a list of [key, value] arrays, or
// an object keyed by integer strings. Entries whose key is not an integer are skipped.
// Input order is preserved.
func (r Record) Pairs(field string) []Pair {
	res := r.Get(field)
	var pairs []Pair
	switch {
	case res.IsArray():
		res.ForEach(func(_, item gjson.Result) bool {
			var k, v gjson.Result
			switch {
			case item.IsObject():
				k, v = item.Get("key"), item.Get("value")
			case item.IsArray():
				elems := item.Array()
				if len(elems) < 2 {
					return true
				}
				k, v = elems[0], elems[1]
			default:
				return true
			}
			if key, ok := intKey(k); ok {
				pairs = append(pairs, Pair{Key: key, Value: v.Int()})
			}
			return true
		})
	case res.IsObject():
		res.ForEach(func(k, v gjson.Result) bool {
			if key, ok := intKey(k); ok {
				pairs = append(pairs, Pair{Key: key, Value: v.Int()})
			}
			return true
		})
	}
	return pairs
}

func intKey(k gjson.Result) (int64, bool) {
	switch k.Type {
	case gjson.Number:
		return k.Int(), true
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(k.Str), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Series is one named numeric sequence. Name is empty when the source list was unnamed.
type Series struct {
	Name   string
	Values []float64
}

// SeriesList reads either a list of numeric lists or a list of {key, value}
// objects whose value is a numeric list.
func (r Record) SeriesList(field string) []Series {
	res := r.Get(field)
	if !res.IsArray() {
		return nil
	}
	var out []Series
	res.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.IsArray():
			out = append(out, Series{Values: floats(item)})
		case item.IsObject():
			out = append(out, Series{Name: item.Get("key").String(), Values: floats(item.Get("value"))})
		}
		return true
	})
	return out
}
