package stats

import (
	"sort"
	"strconv"

	"github.com/verte-zerg/misstype/internal/model"
)

// LetterCounts counts occurrences of each letter, sorted by letter.
func LetterCounts(letters []rune) []model.LetterCount {
	if len(letters) == 0 {
		return nil
	}
	byLetter := map[rune]int{}
	for _, l := range letters {
		byLetter[l]++
	}
	out := make([]model.LetterCount, 0, len(byLetter))
	for l, n := range byLetter {
		out = append(out, model.LetterCount{Letter: l, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Letter < out[j].Letter
	})
	return out
}

// FormatTally renders counts as aligned table lines with a header.
func FormatTally(counts []model.LetterCount) []string {
	if len(counts) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{string(c.Letter), strconv.Itoa(c.Count)})
	}
	return formatTable([]string{"Letter", "Misses"}, rows, map[int]bool{1: true})
}
