// Package dataset holds the in-memory table that flows between pipeline
// stages, plus the loader that reads it from disk.
package dataset

import (
	"catalens/pkg/records"
)

// Table is an ordered, in-memory tabular dataset: column names in source
// order plus one Record per row. Rows keep their identity end to end; no
// stage deduplicates or merges them.
type Table struct {
	Columns []string
	Rows    []records.Record
}

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) {
	return len(t.Rows), len(t.Columns)
}

// HasColumn reports whether name is a known column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RequireColumns returns a MissingColumnError for the first named column the
// table does not have. Stages call this before reading columns by name so
// that a schema gap surfaces as a fatal, attributable error instead of a
// silent run of nils.
func (t *Table) RequireColumns(names ...string) error {
	for _, n := range names {
		if !t.HasColumn(n) {
			return &MissingColumnError{Column: n}
		}
	}
	return nil
}

// AddColumn appends a derived column name unless it is already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Clone returns a deep-enough copy: new column slice, new row slice, new
// record maps. Cleaning operates on a clone so the sampled artifact and the
// analysis table stay distinct.
func (t *Table) Clone() *Table {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	rows := make([]records.Record, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Clone()
	}
	return &Table{Columns: cols, Rows: rows}
}

// ColumnCount pairs a column name with a tally.
type ColumnCount struct {
	Column string
	Count  int
}

// MissingCounts tallies nil values per column, in column order.
func (t *Table) MissingCounts() []ColumnCount {
	out := make([]ColumnCount, len(t.Columns))
	for i, c := range t.Columns {
		out[i].Column = c
		for _, r := range t.Rows {
			if r.IsNil(c) {
				out[i].Count++
			}
		}
	}
	return out
}
