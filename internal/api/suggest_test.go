package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSuggestions(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		titles []string
		want   []string
	}{
		{
			name:   "exact match first",
			query:  "alien",
			titles: []string{"Aliens", "Alien", "Alien: Romulus"},
			want:   []string{"Alien", "Aliens", "Alien: Romulus"},
		},
		{
			name:   "case-insensitive duplicates dropped",
			query:  "heat",
			titles: []string{"Heat", "HEAT", "heat "},
			want:   []string{"Heat"},
		},
		{
			name:   "empty titles dropped",
			query:  "up",
			titles: []string{"", "Up", "  "},
			want:   []string{"Up"},
		},
		{
			name:   "ties keep order",
			query:  "zzz",
			titles: []string{"Abc", "Def"},
			want:   []string{"Abc", "Def"},
		},
		{
			name:   "none",
			query:  "anything",
			titles: nil,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rankSuggestions(tt.query, tt.titles))
		})
	}
}
