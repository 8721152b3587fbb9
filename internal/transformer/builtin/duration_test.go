package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalens/pkg/records"
)

func TestSplitDuration(t *testing.T) {
	step := SplitDuration{Field: "duration", IntField: "duration_int", TypeField: "duration_type"}

	tests := []struct {
		name     string
		in       any
		wantInt  any
		wantType any
	}{
		{"minutes", "90 min", 90, "min"},
		{"seasons", "2 Seasons", 2, "Seasons"},
		{"single season", "1 Season", 1, "Season"},
		{"no unit", "90", 90, nil},
		{"unparseable magnitude", "ninety min", nil, "min"},
		{"nil", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := []records.Record{{"duration": tt.in}}
			step.Apply(recs)
			assert.Equal(t, tt.wantInt, recs[0]["duration_int"])
			assert.Equal(t, tt.wantType, recs[0]["duration_type"])
		})
	}
}

func TestSplitDurationIdempotent(t *testing.T) {
	step := SplitDuration{Field: "duration", IntField: "duration_int", TypeField: "duration_type"}
	recs := []records.Record{{"duration": "2 Seasons"}}

	step.Apply(recs)
	step.Apply(recs)

	assert.Equal(t, 2, recs[0]["duration_int"])
	assert.Equal(t, "Seasons", recs[0]["duration_type"])
}
