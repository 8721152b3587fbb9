package builtin

import (
	"strconv"

	"catalens/pkg/records"
)

// Coerce converts string fields to typed values in place. Supported types:
// "int". Unparseable values become nil rather than failing the row; values
// already coerced pass through unchanged, so re-applying is a no-op.
type Coerce struct {
	Types map[string]string // field -> type
}

func (c Coerce) Apply(in []records.Record) []records.Record {
	if len(c.Types) == 0 {
		return in
	}
	for _, r := range in {
		for field, typ := range c.Types {
			v, ok := r[field]
			if !ok || v == nil {
				continue
			}
			s, isStr := v.(string)
			if !isStr {
				continue
			}
			switch typ {
			case "int":
				if n, err := strconv.Atoi(s); err == nil {
					r[field] = n
				} else {
					r[field] = nil
				}
			}
		}
	}
	return in
}
