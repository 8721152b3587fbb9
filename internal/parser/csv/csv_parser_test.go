package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderAndRows(t *testing.T) {
	in := "title,type,release_year\nDark,TV Show,2017\nRoma,Movie,2018\n"
	p := NewParser(Options{HasHeader: true, TrimSpace: true})

	cols, rows, skipped, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "type", "release_year"}, cols)
	assert.Equal(t, 0, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dark", rows[0]["title"])
	assert.Equal(t, "2018", rows[1]["release_year"])
}

func TestParseEmptyCellBecomesNil(t *testing.T) {
	in := "title,country\nDark,\n"
	p := NewParser(Options{HasHeader: true})

	_, rows, _, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0]["country"])
	assert.True(t, rows[0].IsNil("country"))
}

func TestParseStripsBOMAndNormalizesHeaders(t *testing.T) {
	in := "\uFEFFShow Title,Release Year\nDark,2017\n"
	p := NewParser(Options{HasHeader: true})

	cols, rows, _, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"show_title", "release_year"}, cols)
	assert.Equal(t, "Dark", rows[0]["show_title"])
}

func TestParseHeaderMapOverride(t *testing.T) {
	in := "Název,Rok\nDark,2017\n"
	p := NewParser(Options{
		HasHeader: true,
		HeaderMap: map[string]string{"Název": "title", "Rok": "year"},
	})

	cols, rows, _, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "year"}, cols)
	assert.Equal(t, "2017", rows[0]["year"])
}

func TestParseAccentFoldFallback(t *testing.T) {
	in := "Pays Détail\nFrance\n"
	p := NewParser(Options{HasHeader: true})

	cols, _, _, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"pays_detail"}, cols)
}

func TestParseSkipsWidthMismatch(t *testing.T) {
	in := "a,b\n1,2\n1,2,3\n3,4\n"
	p := NewParser(Options{HasHeader: true})

	_, rows, skipped, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Len(t, rows, 2)
}

func TestParseTrimSpace(t *testing.T) {
	in := "a,b\n\" x \",\" y\"\n"
	p := NewParser(Options{HasHeader: true, TrimSpace: true})

	_, rows, _, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "x", rows[0]["a"])
	assert.Equal(t, "y", rows[0]["b"])
}

func TestParseNoHeaderSynthesizesColumns(t *testing.T) {
	in := "1,2\n3,4\n"
	p := NewParser(Options{})

	cols, rows, _, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"col_0", "col_1"}, cols)
	assert.Equal(t, "3", rows[1]["col_0"])
}
