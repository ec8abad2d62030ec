package drill

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/misstype/internal/model"
	"github.com/verte-zerg/misstype/internal/stats"
)

// Loader supplies the word corpus.
type Loader func() ([]string, error)

// Shuffler reorders words in place.
type Shuffler interface {
	Shuffle(words []string)
}

// Options tune how sessions pick prompts.
type Options struct {
	// LetterOrder is model.LetterOrderFirstSeen (default) or model.LetterOrderAlphabetical.
	LetterOrder string
	// Dedupe prompts a word at most once even when it holds several missed letters.
	Dedupe bool
}

// Drill owns the missed-letter record and the word corpus.
type Drill struct {
	load     Loader
	shuffler Shuffler
	opts     Options

	record []rune
	corpus []string
	loaded bool
}

// New constructs a Drill. The corpus is loaded on the first successful Start.
func New(load Loader, shuffler Shuffler, opts Options) *Drill {
	return &Drill{
		load:     load,
		shuffler: shuffler,
		opts:     opts,
	}
}

// RecordMiss validates a single-letter entry and appends it to the record.
// Invalid entries leave the record unchanged.
func (d *Drill) RecordMiss(input string) (rune, error) {
	letter, err := parseLetter(input)
	if err != nil {
		return 0, err
	}
	d.record = append(d.record, letter)
	return letter, nil
}

// Record returns a copy of the missed-letter record in entry order.
func (d *Drill) Record() []rune {
	return append([]rune(nil), d.record...)
}

// Counts returns how many times each recorded letter was entered, sorted by letter.
func (d *Drill) Counts() []model.LetterCount {
	return stats.LetterCounts(d.record)
}

// Loaded reports whether the corpus has been loaded.
func (d *Drill) Loaded() bool {
	return d.loaded
}

// Start begins a practice session over a freshly shuffled corpus.
func (d *Drill) Start() (*Session, error) {
	if len(d.record) == 0 {
		return nil, ErrNoMisses
	}
	if !d.loaded {
		words, err := d.load()
		if err != nil {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
		d.corpus = words
		d.loaded = true
	}
	d.shuffler.Shuffle(d.corpus)
	words := append([]string(nil), d.corpus...)
	return newSession(words, d.missedSet(), d.opts.Dedupe), nil
}

func (d *Drill) missedSet() []rune {
	seen := make(map[rune]struct{}, len(d.record))
	letters := make([]rune, 0, len(d.record))
	for _, l := range d.record {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		letters = append(letters, l)
	}
	if d.opts.LetterOrder == model.LetterOrderAlphabetical {
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	}
	return letters
}
