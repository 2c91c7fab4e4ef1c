package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberDecoding(t *testing.T) {
	tests := []struct {
		raw  string
		want Number
	}{
		{`4.5`, 4.5},
		{`"4.5"`, 4.5},
		{`" 12 "`, 12},
		{`""`, 0},
		{`"N/A"`, 0},
		{`true`, 0},
		{`{"v": 1}`, 0},
		{`[1]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n := Number(99)
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestTextDecoding(t *testing.T) {
	tests := []struct {
		raw  string
		want Text
	}{
		{`"French"`, "French"},
		{`7`, "7"},
		{`false`, "false"},
		{`{"en": "English"}`, ""},
		{`["en"]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v Text
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.want, v)
		})
	}

	var missing *Text
	assert.Equal(t, "English", missing.Or("English"))
	empty := Text("")
	assert.Equal(t, "English", empty.Or("English"))
}

func TestCourseMetadataToleratesBadFields(t *testing.T) {
	raw := `{"id": "c1", "durationMinutes": "45", "metadata": {"rating": "N/A", "language": 7, "price": null, "instructorTitle": {"x": 1}}}`

	var c CourseDTO
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, 45, c.DurationMinutes.Int())
	require.NotNil(t, c.Metadata)
	require.NotNil(t, c.Metadata.Rating)
	assert.Zero(t, c.Metadata.Rating.Float())
	assert.Nil(t, c.Metadata.Price)
	assert.Equal(t, "7", c.Metadata.Language.Or(""))
	assert.Equal(t, "Instructor", c.Metadata.InstructorTitle.Or("Instructor"))
}
