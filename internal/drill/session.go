package drill

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/misstype/internal/model"
)

// Session is one pass through the shuffled corpus.
type Session struct {
	words   []string
	letters []rune
	dedupe  bool

	wordIdx   int
	letterIdx int

	current model.Prompt
	correct int
	done    bool
}

func newSession(words []string, letters []rune, dedupe bool) *Session {
	return &Session{
		words:   words,
		letters: letters,
		dedupe:  dedupe,
	}
}

// Letters returns the missed-letter set in prompt order.
func (s *Session) Letters() []rune {
	return append([]rune(nil), s.letters...)
}

// Next returns the next prompt. A word is prompted once per missed letter it
// contains, or once in total when deduplicating. It returns false when the
// corpus is exhausted or the session was quit.
func (s *Session) Next() (model.Prompt, bool) {
	for !s.done && s.wordIdx < len(s.words) {
		word := s.words[s.wordIdx]
		for s.letterIdx < len(s.letters) {
			letter := s.letters[s.letterIdx]
			s.letterIdx++
			if !strings.ContainsRune(word, unicode.ToLower(letter)) {
				continue
			}
			if s.dedupe {
				s.advanceWord()
			}
			s.current = model.Prompt{Word: word, Letter: letter}
			return s.current, true
		}
		s.advanceWord()
	}
	s.done = true
	return model.Prompt{}, false
}

func (s *Session) advanceWord() {
	s.wordIdx++
	s.letterIdx = 0
}

// Current returns the most recently issued prompt.
func (s *Session) Current() model.Prompt {
	return s.current
}

// Answer evaluates a response to the current prompt.
func (s *Session) Answer(response string) model.Verdict {
	switch {
	case response == s.current.Word && response != "":
		s.correct++
		return model.VerdictCorrect
	case response == QuitInput:
		s.done = true
		return model.VerdictQuit
	case !isAllLetters(response):
		return model.VerdictInvalid
	default:
		return model.VerdictIncorrect
	}
}

// Correct returns the number of words typed correctly so far.
func (s *Session) Correct() int {
	return s.correct
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.done
}
