package builtin

import (
	"strings"

	"catalens/pkg/records"
)

// FirstToken extracts the first comma-separated token of Field, trimmed,
// into Target. Nil in, nil out.
type FirstToken struct {
	Field  string
	Target string
}

func (f FirstToken) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		s, ok := r.String(f.Field)
		if !ok {
			r[f.Target] = nil
			continue
		}
		head, _, _ := strings.Cut(s, ",")
		head = strings.TrimSpace(head)
		if head == "" {
			r[f.Target] = nil
		} else {
			r[f.Target] = head
		}
	}
	return in
}
