// Package report prints the human-readable run summary to standard output:
// dataset shape, per-column missing-value tallies, and a preview of cleaned
// rows.
package report

import (
	"fmt"
	"io"
	"time"

	"catalens/internal/dataset"
)

// previewCellWidth caps cell rendering so the preview stays readable on a
// terminal.
const previewCellWidth = 24

// WriteShape prints a labeled (rows, columns) line.
func WriteShape(w io.Writer, label string, t *dataset.Table) {
	rows, cols := t.Shape()
	fmt.Fprintf(w, "%s shape: (%d, %d)\n", label, rows, cols)
}

// WriteMissing prints the per-column nil tally in column order.
func WriteMissing(w io.Writer, t *dataset.Table) {
	fmt.Fprintln(w, "Missing values per column:")
	width := 0
	for _, c := range t.Columns {
		if len(c) > width {
			width = len(c)
		}
	}
	for _, cc := range t.MissingCounts() {
		fmt.Fprintf(w, "  %-*s %d\n", width, cc.Column, cc.Count)
	}
}

// WritePreview prints the first n rows of the table, one "column: value"
// line per cell.
func WritePreview(w io.Writer, t *dataset.Table, n int) {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	fmt.Fprintf(w, "Preview (first %d rows):\n", n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "--- row %d ---\n", i)
		for _, col := range t.Columns {
			fmt.Fprintf(w, "  %s: %s\n", col, cell(t.Rows[i][col]))
		}
	}
}

// cell renders one value for the preview. Absent values show as <na> so
// row-local parse failures stay visible.
func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return "<na>"
	case time.Time:
		return x.Format("2006-01-02")
	case string:
		if len(x) > previewCellWidth {
			return x[:previewCellWidth-3] + "..."
		}
		return x
	default:
		return fmt.Sprint(x)
	}
}
