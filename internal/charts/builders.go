package charts

import (
	"catalens/internal/dataset"
	"catalens/pkg/records"
)

// Set holds the full fixed set of exploratory charts. Keys in the JSON form
// are stable so an external viewer can pick charts by name.
type Set struct {
	ReleaseYear      *Spec `json:"titles_by_release_year"`
	TopGenres        *Spec `json:"top_genres"`
	GenreRating      *Spec `json:"genre_rating_heatmap"`
	GenreShare       *Spec `json:"genre_share_over_time"`
	TopCountries     *Spec `json:"top_countries"`
	CountryHighlight *Spec `json:"country_highlight"`
	LagHistogram     *Spec `json:"lag_histogram"`
}

// modernYearMin is the lower bound used by the release-year charts; the
// catalog before 2004 is too sparse to plot.
const modernYearMin = 2004

// Build constructs every chart from the cleaned table. Charts are mutually
// independent; the only shared piece is the top-genre list, computed once
// and reused by the genre charts.
func Build(t *dataset.Table) (*Set, error) {
	err := t.RequireColumns(
		"type", "release_year", "rating",
		"country_primary", "main_genre", "year_added",
	)
	if err != nil {
		return nil, err
	}

	topGenres := topByCount(t.Rows, "main_genre", 10)
	topCountries := topByCount(t.Rows, "country_primary", 15)

	return &Set{
		ReleaseYear:      releaseYearChart(t.Rows),
		TopGenres:        topGenresChart(topGenres),
		GenreRating:      genreRatingHeatmap(t.Rows, labels(topGenres)),
		GenreShare:       genreShareChart(t.Rows, labels(topGenres)),
		TopCountries:     topCountriesChart(topCountries),
		CountryHighlight: countryHighlightChart(topCountries),
		LagHistogram:     lagHistogram(t.Rows),
	}, nil
}

// releaseYearChart counts titles per release year split by content type,
// with a slider that hides years above the chosen threshold.
func releaseYearChart(rows []records.Record) *Spec {
	values := make([]map[string]any, 0, len(rows))
	maxYear := modernYearMin
	for _, r := range rows {
		year, ok := r.Int("release_year")
		if !ok || year < modernYearMin {
			continue
		}
		typ, ok := r.String("type")
		if !ok {
			continue
		}
		if year > maxYear {
			maxYear = year
		}
		values = append(values, map[string]any{
			"type":         typ,
			"release_year": year,
		})
	}

	return &Spec{
		Title:  "Netflix Titles by Release Year (2004-Present) - Interactive",
		Width:  chartWidth,
		Height: chartHeight,
		Data:   Data{Values: values},
		Mark:   Mark{Type: "line", Point: true},
		Params: []Param{{
			Name:  "Year",
			Value: maxYear,
			Bind:  &Bind{Input: "range", Min: modernYearMin, Max: maxYear, Step: 1},
		}},
		Transform: []Transform{{Filter: "datum.release_year <= Year"}},
		Encoding: Encoding{
			X: &Channel{
				Field: "release_year", Type: "ordinal",
				Axis: &Axis{Title: "Release Year", LabelAngle: 45},
			},
			Y: &Channel{
				Aggregate: "count", Type: "quantitative",
				Title: "Number of Titles",
			},
			Color: &Channel{
				Field: "type", Type: "nominal", Title: "Content Type",
				Scale: &Scale{
					Domain: []string{"Movie", "TV Show"},
					Range:  []string{colorRed, colorDark},
				},
			},
			Tooltip: []Channel{
				{Field: "type", Type: "nominal"},
				{Field: "release_year", Type: "ordinal"},
				{Aggregate: "count", Type: "quantitative"},
			},
		},
	}
}

// topGenresChart is a bar chart of the ten most frequent main genres.
func topGenresChart(top []CountRow) *Spec {
	values := make([]map[string]any, 0, len(top))
	for _, g := range top {
		values = append(values, map[string]any{"genre": g.Label, "count": g.Count})
	}

	return &Spec{
		Title:  "Top 10 Netflix Genres",
		Width:  chartWidth,
		Height: chartHeight,
		Data:   Data{Values: values},
		Mark:   Mark{Type: "bar", Color: colorRed},
		Encoding: Encoding{
			X: &Channel{Field: "count", Type: "quantitative", Title: "Number of Titles"},
			Y: &Channel{Field: "genre", Type: "nominal", Sort: "-x", Title: "Main Genre"},
			Tooltip: []Channel{
				{Field: "genre", Type: "nominal"},
				{Field: "count", Type: "quantitative"},
			},
		},
	}
}

// genreRatingHeatmap crosses the top genres with the three-way rating group
// over rows where both genre and rating are present.
func genreRatingHeatmap(rows []records.Record, topGenres []string) *Spec {
	inTop := labelSet(topGenres)
	values := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		genre, ok := r.String("main_genre")
		if !ok || !inTop[genre] {
			continue
		}
		if r.IsNil("rating") {
			continue
		}
		values = append(values, map[string]any{
			"main_genre":   genre,
			"rating_group": RatingGroup(r["rating"]),
		})
	}

	return &Spec{
		Title:  "Genre vs. Rating Category",
		Width:  chartWidth / 2,
		Height: chartHeight,
		Data:   Data{Values: values},
		Mark:   Mark{Type: "rect"},
		Encoding: Encoding{
			X: &Channel{Field: "rating_group", Type: "nominal", Title: "Rating Category"},
			Y: &Channel{Field: "main_genre", Type: "nominal", Title: "Main Genre", Sort: topGenres},
			Color: &Channel{
				Aggregate: "count", Type: "quantitative",
				Title: "Number of Titles",
				Scale: &Scale{Scheme: "reds"},
			},
			Tooltip: []Channel{
				{Field: "main_genre", Type: "nominal"},
				{Field: "rating_group", Type: "nominal"},
				{Aggregate: "count", Type: "quantitative"},
			},
		},
	}
}

// genreShareChart is a normalized stacked area of top-genre counts per
// release year.
func genreShareChart(rows []records.Record, topGenres []string) *Spec {
	modern := make([]records.Record, 0, len(rows))
	for _, r := range rows {
		if year, ok := r.Int("release_year"); ok && year >= modernYearMin {
			modern = append(modern, r)
		}
	}

	inTop := labelSet(topGenres)
	values := make([]map[string]any, 0, len(modern))
	for _, g := range countByYearGenre(modern) {
		if !inTop[g.Genre] {
			continue
		}
		values = append(values, map[string]any{
			"release_year": g.Year,
			"main_genre":   g.Genre,
			"count":        g.Count,
		})
	}

	return &Spec{
		Title:  "Relative Genre Share Over Time (Top 10 Genres)",
		Width:  chartWidth,
		Height: chartHeight,
		Data:   Data{Values: values},
		Mark:   Mark{Type: "area"},
		Encoding: Encoding{
			X: &Channel{Field: "release_year", Type: "ordinal", Title: "Release Year"},
			Y: &Channel{
				Field: "count", Type: "quantitative",
				Stack: "normalize", Title: "Share of Titles",
			},
			Color: &Channel{Field: "main_genre", Type: "nominal", Title: "Main Genre"},
			Tooltip: []Channel{
				{Field: "release_year", Type: "ordinal"},
				{Field: "main_genre", Type: "nominal"},
				{Field: "count", Type: "quantitative"},
			},
		},
	}
}

// topCountriesChart is a bar chart of the fifteen most frequent primary
// production countries.
func topCountriesChart(top []CountRow) *Spec {
	values := make([]map[string]any, 0, len(top))
	for _, c := range top {
		values = append(values, map[string]any{"country": c.Label, "count": c.Count})
	}

	return &Spec{
		Title:  "Top 15 Countries Producing Netflix Titles",
		Width:  chartWidth,
		Height: chartHeight,
		Data:   Data{Values: values},
		Mark:   Mark{Type: "bar", Color: colorDark},
		Encoding: Encoding{
			X: &Channel{Field: "count", Type: "quantitative", Title: "Number of Titles"},
			Y: &Channel{Field: "country", Type: "nominal", Sort: "-x", Title: "Country"},
			Tooltip: []Channel{
				{Field: "country", Type: "nominal"},
				{Field: "count", Type: "quantitative"},
			},
		},
	}
}

// countryHighlightChart is the same country ranking with a mouseover
// selection that paints the hovered bar.
func countryHighlightChart(top []CountRow) *Spec {
	values := make([]map[string]any, 0, len(top))
	for _, c := range top {
		values = append(values, map[string]any{"country": c.Label, "count": c.Count})
	}

	return &Spec{
		Title:  "Interactive Country Comparison",
		Width:  chartWidth,
		Height: chartHeight,
		Data:   Data{Values: values},
		Mark:   Mark{Type: "bar"},
		Params: []Param{{
			Name:   "highlight",
			Select: &Select{Type: "point", On: "mouseover", Fields: []string{"country"}},
		}},
		Encoding: Encoding{
			X: &Channel{Field: "count", Type: "quantitative", Title: "Number of Titles"},
			Y: &Channel{Field: "country", Type: "nominal", Sort: "-x", Title: "Country"},
			Color: &Channel{
				Condition: &Condition{Param: "highlight", Value: colorRed},
				Value:     colorDark,
			},
			Tooltip: []Channel{
				{Field: "country", Type: "nominal"},
				{Field: "count", Type: "quantitative"},
			},
		},
	}
}

// lagHistogram bins the delay in years between a title's release and its
// arrival in the catalog, for rows where the arrival year is known.
func lagHistogram(rows []records.Record) *Spec {
	values := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		added, ok := r.Int("year_added")
		if !ok {
			continue
		}
		released, ok := r.Int("release_year")
		if !ok {
			continue
		}
		typ, ok := r.String("type")
		if !ok {
			continue
		}
		values = append(values, map[string]any{
			"lag_years": added - released,
			"type":      typ,
		})
	}

	return &Spec{
		Title:  "Distribution of Delay Between Release and Being Added to Netflix",
		Width:  chartWidth,
		Height: chartHeight,
		Data:   Data{Values: values},
		Mark:   Mark{Type: "bar"},
		Encoding: Encoding{
			X: &Channel{
				Field: "lag_years", Type: "quantitative",
				Bin:   &Bin{Step: 1},
				Title: "Years Between Release and Added to Netflix",
			},
			Y: &Channel{Aggregate: "count", Type: "quantitative", Title: "Number of Titles"},
			Color: &Channel{
				Field: "type", Type: "nominal", Title: "Type",
				Scale: &Scale{
					Domain: []string{"Movie", "TV Show"},
					Range:  []string{colorRed, colorDark},
				},
			},
			Tooltip: []Channel{
				{Field: "lag_years", Type: "quantitative"},
				{Aggregate: "count", Type: "quantitative"},
			},
		},
	}
}
