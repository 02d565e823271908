// Package deck holds the embedded study decks (kana, vocabulary) and the
// drill mechanics: prompt sequencing, answer checking, and scoring.
package deck

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Card is a single prompt/answer pair. Prompt is the glyph shown to the
// user; Answer is the expected romaji (or English meaning for vocab).
type Card struct {
	Prompt string
	Answer string
	// Alt lists accepted alternate answers (e.g. "shi" and "si").
	Alt []string
}

// Deck is a named, ordered set of cards.
type Deck struct {
	ID    string
	Name  string
	Cards []Card
}

// Result summarizes a finished drill.
type Result struct {
	Answered int
	Correct  int
	Duration time.Duration
}

// Accuracy returns the share of correct answers in [0, 1].
func (r Result) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}

// ByID returns the deck for an id.
func ByID(id string) (*Deck, error) {
	switch id {
	case "hiragana":
		return &hiragana, nil
	case "katakana":
		return &katakana, nil
	case "vocab":
		return &vocab, nil
	}
	return nil, fmt.Errorf("unknown deck %q (use one of: hiragana, katakana, vocab)", id)
}

// IDs returns all deck ids in display order.
func IDs() []string {
	return []string{"hiragana", "katakana", "vocab"}
}

// Shuffled returns n cards drawn without repeats until the deck is exhausted,
// then reshuffled, using the given seed for reproducible sequences in tests.
func (d *Deck) Shuffled(n int, seed int64) []Card {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Card, 0, n)
	for len(out) < n {
		perm := rng.Perm(len(d.Cards))
		for _, i := range perm {
			if len(out) == n {
				break
			}
			out = append(out, d.Cards[i])
		}
	}
	return out
}

// Check reports whether answer matches the card, tolerating case and
// surrounding whitespace.
func (c Card) Check(answer string) bool {
	got := normalize(answer)
	if got == normalize(c.Answer) {
		return true
	}
	for _, alt := range c.Alt {
		if got == normalize(alt) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
