package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalens/pkg/records"
)

func genreRows(counts map[string]int) []records.Record {
	var rows []records.Record
	for genre, n := range counts {
		for i := 0; i < n; i++ {
			rows = append(rows, records.Record{"main_genre": genre})
		}
	}
	rows = append(rows, records.Record{"main_genre": nil})
	return rows
}

func TestTopByCount(t *testing.T) {
	rows := genreRows(map[string]int{
		"Dramas": 5, "Comedies": 3, "Documentaries": 3, "Anime Series": 1,
	})

	top := topByCount(rows, "main_genre", 3)
	require.Len(t, top, 3)
	assert.Equal(t, CountRow{"Dramas", 5}, top[0])
	// Tie broken alphabetically for stable output.
	assert.Equal(t, CountRow{"Comedies", 3}, top[1])
	assert.Equal(t, CountRow{"Documentaries", 3}, top[2])
}

func TestTopByCountShorterThanN(t *testing.T) {
	rows := genreRows(map[string]int{"Dramas": 2})
	top := topByCount(rows, "main_genre", 10)
	assert.Len(t, top, 1)
}

func TestCountByIgnoresNil(t *testing.T) {
	rows := genreRows(map[string]int{"Dramas": 2})
	counts := countBy(rows, "main_genre")
	assert.Equal(t, map[string]int{"Dramas": 2}, counts)
}

func TestCountByYearGenre(t *testing.T) {
	rows := []records.Record{
		{"release_year": 2019, "main_genre": "Dramas"},
		{"release_year": 2019, "main_genre": "Dramas"},
		{"release_year": 2019, "main_genre": "Comedies"},
		{"release_year": 2020, "main_genre": "Dramas"},
		{"release_year": nil, "main_genre": "Dramas"},
		{"release_year": 2020, "main_genre": nil},
	}

	got := countByYearGenre(rows)
	assert.Equal(t, []yearGenreCount{
		{2019, "Comedies", 1},
		{2019, "Dramas", 2},
		{2020, "Dramas", 1},
	}, got)
}
