// Package transformer defines the per-row transformation contract used by
// the cleaning stage.
package transformer

import "catalens/pkg/records"

// Transformer mutates or derives fields across a batch of records. Every
// implementation must be row-local and null-safe: a bad value affects only
// its own row's derived fields, never the batch.
type Transformer interface {
	Apply([]records.Record) []records.Record
}

// Chain is an ordered list of transformers.
type Chain []Transformer

func (c Chain) Apply(in []records.Record) []records.Record {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}
