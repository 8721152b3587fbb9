package charts

import (
	"sort"

	"catalens/pkg/records"
)

// CountRow is one label with its row count.
type CountRow struct {
	Label string
	Count int
}

// countBy tallies rows by the string value of field. Nil and non-string
// values are ignored.
func countBy(rows []records.Record, field string) map[string]int {
	counts := map[string]int{}
	for _, r := range rows {
		if s, ok := r.String(field); ok {
			counts[s]++
		}
	}
	return counts
}

// topByCount returns the n most frequent values of field, count descending,
// label ascending on ties so the order is stable.
func topByCount(rows []records.Record, field string, n int) []CountRow {
	counts := countBy(rows, field)
	out := make([]CountRow, 0, len(counts))
	for label, c := range counts {
		out = append(out, CountRow{Label: label, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// labels projects the Label column of a CountRow slice.
func labels(rows []CountRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

// labelSet builds a membership set from labels.
func labelSet(ls []string) map[string]bool {
	set := make(map[string]bool, len(ls))
	for _, l := range ls {
		set[l] = true
	}
	return set
}

// yearGenreCount is one (release_year, main_genre) group with its count.
type yearGenreCount struct {
	Year  int
	Genre string
	Count int
}

// countByYearGenre groups rows by (release_year, main_genre), ignoring rows
// where either is absent. Output is sorted by year then genre.
func countByYearGenre(rows []records.Record) []yearGenreCount {
	type key struct {
		year  int
		genre string
	}
	counts := map[key]int{}
	for _, r := range rows {
		year, ok := r.Int("release_year")
		if !ok {
			continue
		}
		genre, ok := r.String("main_genre")
		if !ok {
			continue
		}
		counts[key{year, genre}]++
	}

	out := make([]yearGenreCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, yearGenreCount{Year: k.year, Genre: k.genre, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}
