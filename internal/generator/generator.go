// Package generator reorders practice words.
package generator

import (
	"math/rand"
	"time"
)

// Generator shuffles word lists.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for reproducible order.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle reorders words in place.
func (g *Generator) Shuffle(words []string) {
	g.rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
