package dataset

import (
	"os"

	"go.uber.org/zap"

	csvparser "catalens/internal/parser/csv"
)

// Load reads a delimited file with a header row into a Table. Column names
// and row order are preserved as stored. Malformed rows are skipped by the
// parser; a missing, unreadable, or unparseable file is a *LoadError.
func Load(path string, logger *zap.Logger) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	p := csvparser.NewParser(csvparser.Options{
		HasHeader: true,
		Logger:    logger,
	})
	cols, rows, skipped, err := p.Parse(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if skipped > 0 && logger != nil {
		logger.Warn("skipped malformed rows during load",
			zap.String("path", path), zap.Int("skipped", skipped))
	}
	return &Table{Columns: cols, Rows: rows}, nil
}
