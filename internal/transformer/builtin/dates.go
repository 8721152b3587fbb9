package builtin

import (
	"time"

	"github.com/araddon/dateparse"

	"catalens/pkg/records"
)

// ParseDate parses Field as a calendar date with a tolerant parser and
// derives its year into YearField. Parse failure sets both to nil; it never
// aborts the row. A field that already holds a time.Time (from an earlier
// pass) only has its year re-derived.
type ParseDate struct {
	Field     string
	YearField string
}

func (p ParseDate) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		v, ok := r[p.Field]
		if !ok || v == nil {
			r[p.YearField] = nil
			continue
		}

		switch x := v.(type) {
		case time.Time:
			r[p.YearField] = x.Year()
		case string:
			ts, err := dateparse.ParseAny(x)
			if err != nil {
				r[p.Field] = nil
				r[p.YearField] = nil
				continue
			}
			r[p.Field] = ts
			r[p.YearField] = ts.Year()
		default:
			r[p.Field] = nil
			r[p.YearField] = nil
		}
	}
	return in
}
