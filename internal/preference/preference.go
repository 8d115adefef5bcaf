// Package preference derives genre affinity from watch history.
package preference

import (
	"slices"

	"github.com/mmcdole/reel/internal/domain"
)

// GenreCount is one genre's tally across watched movies
type GenreCount struct {
	GenreID int
	Count   int
}

// Affinity tallies genre occurrences across watched entries.
// Each entry adds one to every genre it lists; ratings are not weighted.
// The result is ordered by descending count, ties by first appearance.
func Affinity(watched []domain.WatchEntry) []GenreCount {
	index := make(map[int]int) // genre id -> position in counts
	var counts []GenreCount

	for _, entry := range watched {
		for _, id := range entry.GenreIDs {
			if i, ok := index[id]; ok {
				counts[i].Count++
				continue
			}
			index[id] = len(counts)
			counts = append(counts, GenreCount{GenreID: id, Count: 1})
		}
	}

	// Stable sort keeps first-seen order among equal counts
	slices.SortStableFunc(counts, func(a, b GenreCount) int {
		return b.Count - a.Count
	})
	return counts
}

// TopGenres returns up to n genre ids with the highest affinity
func TopGenres(watched []domain.WatchEntry, n int) []int {
	if n <= 0 {
		return []int{}
	}
	counts := Affinity(watched)
	if len(counts) > n {
		counts = counts[:n]
	}
	ids := make([]int, len(counts))
	for i, c := range counts {
		ids[i] = c.GenreID
	}
	return ids
}
