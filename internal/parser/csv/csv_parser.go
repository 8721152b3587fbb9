// Package csv parses delimited catalog files into records. The parser is
// tolerant by design: malformed rows are skipped and counted rather than
// aborting the run, and empty cells become nil so that downstream
// null-propagation rules hold from the first stage on.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"catalens/pkg/records"
)

// Options configures the CSV parser behavior. All fields are optional;
// sensible defaults are applied when a field is zero.
type Options struct {
	// HasHeader indicates whether the first row contains column headers.
	HasHeader bool

	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// TrimSpace trims leading/trailing ASCII spaces from each field value.
	TrimSpace bool

	// HeaderMap maps source header names to canonical keys, overriding the
	// default normalization. Only applies when HasHeader is true.
	HeaderMap map[string]string

	// Logger receives capped soft-fail messages for skipped rows. Nil means
	// silent.
	Logger *zap.Logger
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// skipLogLimit caps how many skipped rows are logged individually.
const skipLogLimit = 400

// Parse consumes CSV records from r and returns the canonical column order,
// the parsed rows, and the number of rows that were skipped due to parse
// errors or field-count mismatches.
func (p *Parser) Parse(r io.Reader) ([]string, []records.Record, int, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}

	logger := p.opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var headers []string
	var out []records.Record
	var skipped int

	if p.opt.HasHeader {
		h, err := cr.Read()
		if err != nil {
			return nil, nil, 0, fmt.Errorf("read csv header: %w", err)
		}
		headers = normalizeHeaders(h, p.opt)
	}

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Soft-fail this row and continue.
			if skipped < skipLogLimit {
				logger.Warn("skipping row", zap.Int("line", line), zap.Error(err))
			}
			skipped++
			continue
		}

		if len(headers) > 0 && len(row) != len(headers) {
			if skipped < skipLogLimit {
				logger.Warn("skipping row: field count mismatch",
					zap.Int("line", line),
					zap.Int("expected", len(headers)),
					zap.Int("got", len(row)))
			}
			skipped++
			continue
		}

		if headers == nil {
			headers = make([]string, len(row))
			for i := range headers {
				headers[i] = keyFor(i, nil)
			}
		}

		rec := make(records.Record, len(row))
		for i, val := range row {
			if p.opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			rec[keyFor(i, headers)] = emptyToNil(val)
		}
		out = append(out, rec)
	}

	return headers, out, skipped, nil
}

// keyFor returns the column key for index idx, using headers when available,
// otherwise synthesizing a "col_N" name.
func keyFor(idx int, headers []string) string {
	if idx < len(headers) && headers[idx] != "" {
		return headers[idx]
	}
	return fmt.Sprintf("col_%d", idx)
}

// emptyToNil converts an empty string to nil; all other values are returned
// as-is.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// normalizeHeaders produces canonical header keys using HeaderMap (when
// provided) and simple normalization: lowercase, accents stripped
// (NFD → remove Mn → NFC), spaces to underscores. It also strips a UTF-8 BOM
// from the first cell if present.
func normalizeHeaders(h []string, opt Options) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if i == 0 {
			c = strings.TrimPrefix(c, utf8BOM)
		}
		if opt.HeaderMap != nil {
			if m, ok := opt.HeaderMap[c]; ok {
				res[i] = m
				continue
			}
		}
		res[i] = canonicalKey(c)
	}
	return res
}

// asciiFold decomposes, removes nonspacing marks, and recomposes, turning
// accented header text into its ASCII skeleton.
var asciiFold = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

func canonicalKey(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}
	return strings.ReplaceAll(strings.ToLower(folded), " ", "_")
}
