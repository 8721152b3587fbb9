// Package cleaner turns the raw sampled table into the analysis-ready table
// by chaining the field-local cleaning steps in a fixed order.
package cleaner

import (
	"catalens/internal/dataset"
	"catalens/internal/transformer"
	"catalens/internal/transformer/builtin"
)

// requiredColumns are the raw fields the cleaning chain reads by name.
var requiredColumns = []string{
	"date_added",
	"release_year",
	"duration",
	"country",
	"listed_in",
}

// derivedColumns are appended to the table, in derivation order.
var derivedColumns = []string{
	"year_added",
	"duration_int",
	"duration_type",
	"country_primary",
	"main_genre",
}

// Clean derives the analysis columns on a clone of t; the input table (the
// persisted subset artifact) is never mutated. Row-local failures surface as
// nil derived values, never as errors; the only error is a missing required
// column.
func Clean(t *dataset.Table) (*dataset.Table, error) {
	if err := t.RequireColumns(requiredColumns...); err != nil {
		return nil, err
	}

	out := t.Clone()

	chain := transformer.Chain{
		builtin.Normalize{},
		builtin.Coerce{Types: map[string]string{"release_year": "int"}},
		builtin.ParseDate{Field: "date_added", YearField: "year_added"},
		builtin.SplitDuration{Field: "duration", IntField: "duration_int", TypeField: "duration_type"},
		builtin.FirstToken{Field: "country", Target: "country_primary"},
		builtin.FirstToken{Field: "listed_in", Target: "main_genre"},
	}
	out.Rows = chain.Apply(out.Rows)

	for _, c := range derivedColumns {
		out.AddColumn(c)
	}
	return out, nil
}
