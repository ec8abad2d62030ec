// Package stats tallies missed letters.
package stats

import (
	"sort"

	"github.com/verte-zerg/misstype/internal/model"
)

// TopLetters returns the n most-missed letters, ties broken alphabetically.
func TopLetters(counts []model.LetterCount, n int) []rune {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	items := make([]model.LetterCount, len(counts))
	copy(items, counts)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Letter < items[j].Letter
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[i].Letter)
	}
	return out
}
