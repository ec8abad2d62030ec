// Package model defines shared data structures.
package model

// Letter orders for iterating the missed-letter set during a session.
const (
	LetterOrderFirstSeen    = "first-seen"
	LetterOrderAlphabetical = "alphabetical"
)

// Color modes for verdict styling.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config defines drill settings.
type Config struct {
	WordsPath   string
	LetterOrder string
	Dedupe      bool
	PromptWidth int
	Seed        int64
	Color       string
	TUI         bool
}

// LetterCount is the number of times a letter was reported missed.
type LetterCount struct {
	Letter rune
	Count  int
}

// Prompt is one quiz question: retype Word, selected because it contains Letter.
type Prompt struct {
	Word   string
	Letter rune
}

// Verdict classifies an answer to a prompt.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictIncorrect
	VerdictInvalid
	VerdictQuit
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictInvalid:
		return "invalid"
	case VerdictQuit:
		return "quit"
	default:
		return "unknown"
	}
}
