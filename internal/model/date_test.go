package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2019, time.January, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2019-01-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed.Time))
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a string", `20190101`},
		{"wrong layout", `"01-01-2019"`},
		{"with time component", `"2019-01-01T00:00:00Z"`},
		{"empty", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tt.input), &d))
		})
	}
}

func TestGameWireShape(t *testing.T) {
	game := Game{
		ID:          "abc-123",
		Title:       "Zelda",
		ReleaseDate: NewDate(2019, time.January, 1),
		Genres:      []string{"action", "adventure"},
		Developer:   "Nintendo",
	}

	data, err := json.Marshal(game)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "abc-123",
		"title": "Zelda",
		"release_date": "2019-01-01",
		"genres": ["action", "adventure"],
		"developer": "Nintendo"
	}`, string(data))
}
