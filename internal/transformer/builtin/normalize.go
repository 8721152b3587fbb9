// Package builtin provides the field-local cleaning steps the pipeline
// chains together. Each step is a small struct; all of them leave nil values
// untouched.
package builtin

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"catalens/pkg/records"
)

// spaceFold maps every Unicode space separator (non-breaking space included)
// to a plain ASCII space so TrimSpace catches it.
var spaceFold = runes.Map(func(r rune) rune {
	if unicode.Is(unicode.Zs, r) {
		return ' '
	}
	return r
})

// Normalize trims leading/trailing whitespace from every string field. A
// value trimmed down to nothing becomes nil, keeping the empty-means-absent
// convention from the parser.
type Normalize struct{}

func (Normalize) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for k, v := range r {
			s, ok := v.(string)
			if !ok {
				continue
			}
			if folded, _, err := transform.String(spaceFold, s); err == nil {
				s = folded
			}
			s = strings.TrimSpace(s)
			if s == "" {
				r[k] = nil
			} else {
				r[k] = s
			}
		}
	}
	return in
}
