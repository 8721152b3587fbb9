// Package sampler draws the deterministic analysis subset and persists it.
//
// Reproducibility is the whole point: the pseudo-random source is seeded
// from an explicit parameter, never from ambient state, so the same
// (table, size, seed) triple always yields the identical subset, row for
// row.
package sampler

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/zeebo/xxh3"

	"catalens/internal/dataset"
	"catalens/pkg/records"
)

// InsufficientRowsError reports that the requested sample size exceeds the
// available rows. Sampling never clamps: short input is a fatal error.
type InsufficientRowsError struct {
	Have int
	Want int
}

func (e *InsufficientRowsError) Error() string {
	return fmt.Sprintf("sample size %d exceeds available rows %d", e.Want, e.Have)
}

// Sample selects n rows uniformly at random without replacement. Rows in the
// result appear in selection order (a permutation prefix). The input table
// is not modified; the returned table shares row maps with it, which is safe
// because cleaning always clones before mutating.
func Sample(t *dataset.Table, n int, seed int64) (*dataset.Table, error) {
	if len(t.Rows) < n {
		return nil, &InsufficientRowsError{Have: len(t.Rows), Want: n}
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(t.Rows))

	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	rows := make([]records.Record, 0, n)
	for _, idx := range perm[:n] {
		rows = append(rows, t.Rows[idx])
	}
	return &dataset.Table{Columns: cols, Rows: rows}, nil
}

// WriteSubset writes the sampled table as a CSV file (header plus rows, in
// selection order), overwriting any existing file at path. It returns the
// xxh3 checksum of the written bytes so callers can log and compare
// artifacts across runs.
func WriteSubset(t *dataset.Table, path string) (uint64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create subset file: %w", err)
	}

	h := xxh3.New()
	werr := writeCSV(io.MultiWriter(f, h), t)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return 0, fmt.Errorf("write subset file %s: %w", path, werr)
	}
	return h.Sum64(), nil
}

func writeCSV(w io.Writer, t *dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	row := make([]string, len(t.Columns))
	for _, rec := range t.Rows {
		for i, col := range t.Columns {
			row[i] = cellString(rec[col])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// cellString renders a record value for CSV output; nil becomes the empty
// cell, mirroring how the parser reads empty cells back as nil.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
