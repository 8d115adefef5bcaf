package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/reel/internal/domain"
)

func watched(genres ...[]int) []domain.WatchEntry {
	entries := make([]domain.WatchEntry, len(genres))
	for i, g := range genres {
		entries[i] = domain.WatchEntry{Title: string(rune('A' + i)), GenreIDs: g, Rating: 7}
	}
	return entries
}

func TestTopGenres(t *testing.T) {
	tests := []struct {
		name    string
		watched []domain.WatchEntry
		n       int
		want    []int
	}{
		{
			name:    "empty history",
			watched: nil,
			n:       3,
			want:    []int{},
		},
		{
			name:    "single movie keeps catalog order",
			watched: watched([]int{28, 878}),
			n:       3,
			want:    []int{28, 878},
		},
		{
			name:    "single movie top one",
			watched: watched([]int{28, 878}),
			n:       1,
			want:    []int{28},
		},
		{
			name:    "most frequent first",
			watched: watched([]int{18}, []int{28, 18}, []int{35, 18, 28}),
			n:       3,
			want:    []int{18, 28, 35},
		},
		{
			name:    "ties broken by first appearance",
			watched: watched([]int{12, 35}, []int{35, 12}, []int{80}),
			n:       2,
			want:    []int{12, 35},
		},
		{
			name:    "capped at n",
			watched: watched([]int{1, 2, 3, 4, 5}),
			n:       3,
			want:    []int{1, 2, 3},
		},
		{
			name:    "non-positive n",
			watched: watched([]int{1}),
			n:       0,
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopGenres(tt.watched, tt.n))
		})
	}
}

func TestTopGenresBoundedAndDrawnFromHistory(t *testing.T) {
	history := watched([]int{28, 12}, []int{12, 16}, []int{16, 10751, 12}, []int{99})
	seen := map[int]bool{}
	for _, e := range history {
		for _, id := range e.GenreIDs {
			seen[id] = true
		}
	}

	for n := 0; n <= 7; n++ {
		got := TopGenres(history, n)
		assert.LessOrEqual(t, len(got), min(n, len(seen)))
		for _, id := range got {
			assert.True(t, seen[id], "genre %d not in history", id)
		}
		// Deterministic for the same input order
		assert.Equal(t, got, TopGenres(history, n))
	}
}

func TestAffinity(t *testing.T) {
	got := Affinity(watched([]int{28, 12}, []int{12}))
	assert.Equal(t, []GenreCount{{GenreID: 12, Count: 2}, {GenreID: 28, Count: 1}}, got)
}
