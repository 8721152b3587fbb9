package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixtureCSV = `title,type,director,cast,country,date_added,release_year,rating,duration,listed_in,description
Alpha,Movie,,,"","January 1, 2020",2018,R,90 min,"Dramas, International Movies",first
Beta,Movie,,,"United States, India","March 5, 2019",2019,PG-13,112 min,Comedies,second
Gamma,TV Show,,,Japan,,2015,TV-MA,1 Season,Anime Series,third
Delta,Movie,,,Mexico,"July 4, 2021",2012,,88 min,Dramas,fourth
Epsilon,TV Show,,,South Korea,"September 9, 2021",2021,TV-14,3 Seasons,"TV Dramas, Korean TV Shows",fifth
Zeta,Movie,,,France,"May 1, 2018",2016,PG-13,101 min,Comedies,sixth
`

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "titles.csv")
	subset := filepath.Join(dir, "subset.csv")
	chartsOut := filepath.Join(dir, "charts.json")
	require.NoError(t, os.WriteFile(input, []byte(fixtureCSV), 0o644))

	t.Setenv("CATALENS_INPUT", input)
	t.Setenv("CATALENS_SUBSET", subset)
	t.Setenv("CATALENS_SAMPLE_SIZE", "4")
	t.Setenv("CATALENS_SEED", "42")
	t.Setenv("CATALENS_CHARTS", chartsOut)

	var out strings.Builder
	require.NoError(t, run(zap.NewNop(), &out))

	text := out.String()
	assert.Contains(t, text, "Full dataset shape: (6, 11)")
	assert.Contains(t, text, "Missing values per column:")
	assert.Contains(t, text, "Subset shape: (4, 11)")
	assert.Contains(t, text, "Cleaned dataset preview:")
	assert.Contains(t, text, "Catalog analysis complete.")

	// Subset artifact exists with header plus the requested rows.
	raw, err := os.ReadFile(subset)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	assert.Len(t, lines, 5)

	// Chart export holds all seven specs.
	chartRaw, err := os.ReadFile(chartsOut)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(chartRaw, &decoded))
	assert.Len(t, decoded, 7)
}

func TestRunDeterministicSubset(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "titles.csv")
	require.NoError(t, os.WriteFile(input, []byte(fixtureCSV), 0o644))

	t.Setenv("CATALENS_INPUT", input)
	t.Setenv("CATALENS_SAMPLE_SIZE", "4")
	t.Setenv("CATALENS_SEED", "42")

	s1 := filepath.Join(dir, "s1.csv")
	t.Setenv("CATALENS_SUBSET", s1)
	require.NoError(t, run(zap.NewNop(), &strings.Builder{}))

	s2 := filepath.Join(dir, "s2.csv")
	t.Setenv("CATALENS_SUBSET", s2)
	require.NoError(t, run(zap.NewNop(), &strings.Builder{}))

	b1, err := os.ReadFile(s1)
	require.NoError(t, err)
	b2, err := os.ReadFile(s2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "same input, size, and seed must reproduce the subset byte for byte")
}

func TestRunFailsOnMissingInput(t *testing.T) {
	t.Setenv("CATALENS_INPUT", filepath.Join(t.TempDir(), "absent.csv"))

	err := run(zap.NewNop(), &strings.Builder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load stage")
}

func TestRunFailsOnInsufficientRows(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "titles.csv")
	require.NoError(t, os.WriteFile(input, []byte(fixtureCSV), 0o644))

	t.Setenv("CATALENS_INPUT", input)
	t.Setenv("CATALENS_SUBSET", filepath.Join(dir, "subset.csv"))
	t.Setenv("CATALENS_SAMPLE_SIZE", "100")

	err := run(zap.NewNop(), &strings.Builder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample stage")
}
