package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Letter", "Misses"}
	rows := [][]string{
		{"A", "3"},
		{"Ж", "12"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Letter Misses" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "A           3" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Ж          12" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"L", "N"}, [][]string{{"語", "1"}}, nil)
	if lines[0] != "L  N" {
		t.Fatalf("expected header padded to wide rune width, got %q", lines[0])
	}
}
