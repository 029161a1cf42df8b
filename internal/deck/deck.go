package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrExhausted is returned by Deal when no cards remain. Callers treat it
// as a round abort, not a crash.
var ErrExhausted = errors.New("deck exhausted")

// Deck is an ordered pool of up to 52 unique cards. All randomness comes
// from the injected rng so deals can be replayed deterministically under
// test; there is no package-level generator.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates an unshuffled 52-card deck in suit-major, rank-minor order.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// NewShuffled creates a deck and shuffles it once.
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// FromCards builds a deck holding exactly the given cards, dealt in
// argument order. Used by tests and tools that need a stacked deck.
func FromCards(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Shuffle permutes the deck in place using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card, or ErrExhausted when the deck
// is empty.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
