// Package catalog crawls directories and collects per-file metadata
// records for CSV export.
package catalog

// PathField is the mandatory first field of every record and the first
// CSV column. The name matches the column layout of the original tool.
const PathField = "Pfad"

// Record holds the metadata fields of one file. Keys keep their
// insertion order so that the discovered CSV header is deterministic.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates a record seeded with the path field.
func NewRecord(path string) *Record {
	r := &Record{values: make(map[string]string)}
	r.Set(PathField, path)
	return r
}

// Set stores a field value. Setting an existing key overwrites the value
// but keeps its original position.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether the field is present.
func (r *Record) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// Path returns the value of the path field.
func (r *Record) Path() string {
	return r.values[PathField]
}
