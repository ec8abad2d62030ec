package stats

import (
	"testing"

	"github.com/verte-zerg/misstype/internal/model"
)

func TestTopLetters(t *testing.T) {
	counts := []model.LetterCount{
		{Letter: 'B', Count: 2},
		{Letter: 'A', Count: 2},
		{Letter: 'C', Count: 5},
	}
	top := TopLetters(counts, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 letters, got %d", len(top))
	}
	if top[0] != 'C' || top[1] != 'A' {
		t.Fatalf("unexpected order: %q", top)
	}
	if counts[0].Letter != 'B' {
		t.Fatalf("input slice was reordered")
	}
}

func TestTopLettersClamps(t *testing.T) {
	counts := []model.LetterCount{{Letter: 'A', Count: 1}}
	if got := TopLetters(counts, 5); len(got) != 1 {
		t.Fatalf("expected 1 letter, got %q", got)
	}
	if got := TopLetters(counts, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %q", got)
	}
}
