// Package drill implements the missed-letter practice drill.
package drill

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Command is what an entry at the idle prompt asks for.
type Command int

const (
	CommandRecord Command = iota
	CommandQuit
	CommandPractice
)

// Literal commands accepted at the prompts.
const (
	QuitInput     = "0"
	PracticeInput = "1"
)

var (
	// ErrMultipleChars is returned for entries longer than one character.
	ErrMultipleChars = errors.New("enter characters one at a time")
	// ErrInvalidInput is returned for empty, non-letter, or unknown command entries.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoMisses is returned when a session is started with an empty record.
	ErrNoMisses = errors.New("no missed letters recorded")
)

// ParseCommand classifies an entry typed at the idle prompt. For
// CommandRecord the returned rune is the upper-cased letter.
func ParseCommand(input string) (Command, rune, error) {
	switch input {
	case QuitInput:
		return CommandQuit, 0, nil
	case PracticeInput:
		return CommandPractice, 0, nil
	}
	letter, err := parseLetter(input)
	if err != nil {
		return 0, 0, err
	}
	return CommandRecord, letter, nil
}

func parseLetter(input string) (rune, error) {
	switch utf8.RuneCountInString(input) {
	case 0:
		return 0, ErrInvalidInput
	case 1:
	default:
		return 0, ErrMultipleChars
	}
	r, _ := utf8.DecodeRuneInString(input)
	if !unicode.IsLetter(r) {
		return 0, ErrInvalidInput
	}
	// Sessions match the lower-case form of the stored letter, so a letter
	// whose upper case lowers to a different rune (ı, ſ) cannot be recorded.
	up := unicode.ToUpper(r)
	if unicode.ToLower(up) != unicode.ToLower(r) {
		return 0, ErrInvalidInput
	}
	return up, nil
}

func isAllLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
