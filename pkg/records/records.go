// Package records defines the row model shared by every pipeline stage.
//
// A Record maps column names to values. Absent values are represented as nil
// entries rather than empty strings so that null-propagation through the
// cleaning steps stays mechanically checkable.
package records

// Record is a single data row keyed by canonical column name.
type Record map[string]any

// String returns the value for key as a string. The second return is false
// when the key is absent, nil, or not a string.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the value for key as an int, accepting the integer widths the
// parsers and transformers produce. The second return is false when the key
// is absent, nil, or not numeric.
func (r Record) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// IsNil reports whether key is absent or holds an explicit nil.
func (r Record) IsNil(key string) bool {
	v, ok := r[key]
	return !ok || v == nil
}

// Clone returns a shallow copy of the record. Values are shared; the map
// itself is independent, which is all the transformers need since they only
// ever replace whole values.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
