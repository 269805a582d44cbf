package results

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Dataset maps trace names to records. Names keep the order in which they were
// first seen; a later Put for an existing name replaces the record in place.
// Datasets are built once at load time and only read afterwards.
type Dataset struct {
	names   []string
	records map[string]Record
}

// NewDataset creates an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{records: make(map[string]Record)}
}

// Put inserts or replaces the record for name.
func (d *Dataset) Put(name string, rec Record) {
	if _, exists := d.records[name]; !exists {
		d.names = append(d.names, name)
	}
	d.records[name] = rec
}

// Merge copies every record of other into d (last write wins).
func (d *Dataset) Merge(other *Dataset) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		d.Put(name, other.records[name])
	}
}

// Get returns the record for name. Safe on a nil Dataset.
func (d *Dataset) Get(name string) (Record, bool) {
	if d == nil {
		return Record{}, false
	}
	rec, ok := d.records[name]
	return rec, ok
}

// Lookup returns the record for name, or an empty record.
func (d *Dataset) Lookup(name string) Record {
	rec, _ := d.Get(name)
	return rec
}

// Names returns the trace names in dataset order.
func (d *Dataset) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Len returns the number of traces.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Default returns the first trace name, or "" for an empty dataset.
func (d *Dataset) Default() string {
	if d.Len() == 0 {
		return ""
	}
	return d.names[0]
}

// ParseDocument parses one results document: a JSON object mapping trace name to
// a record object.
func ParseDocument(data []byte) (*Dataset, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("top-level value must be an object of trace records")
	}

	ds := NewDataset()
	var badTrace string
	found := false
	doc.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			badTrace = key.String()
			found = true
			return false
		}
		ds.Put(key.String(), Record{raw: value.Raw})
		return true
	})
	if found {
		return nil, fmt.Errorf("trace %q: record must be a JSON object", badTrace)
	}
	return ds, nil
}
