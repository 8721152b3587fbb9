package builtin

import (
	"strconv"
	"strings"

	"catalens/pkg/records"
)

// SplitDuration splits a free-text duration ("90 min", "2 Seasons") on the
// first space into a numeric magnitude (IntField) and a unit string
// (TypeField). Either side becomes nil when missing or unparseable; a nil
// source yields nil for both.
type SplitDuration struct {
	Field     string
	IntField  string
	TypeField string
}

func (d SplitDuration) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		s, ok := r.String(d.Field)
		if !ok {
			// Nil source, or already-derived fields from a prior pass.
			if r.IsNil(d.Field) {
				r[d.IntField] = nil
				r[d.TypeField] = nil
			}
			continue
		}

		parts := strings.SplitN(s, " ", 2)
		if n, err := strconv.Atoi(parts[0]); err == nil {
			r[d.IntField] = n
		} else {
			r[d.IntField] = nil
		}
		if len(parts) == 2 && parts[1] != "" {
			r[d.TypeField] = parts[1]
		} else {
			r[d.TypeField] = nil
		}
	}
	return in
}
