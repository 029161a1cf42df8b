package game

import (
	"fmt"
	rand "math/rand/v2"

	"cardhall/internal/deck"
)

// HighLowGuess is the player's call on the second card.
type HighLowGuess int

const (
	GuessHigher HighLowGuess = iota
	GuessLower
)

func (g HighLowGuess) String() string {
	return [...]string{"higher", "lower"}[g]
}

// HighLowRound shows one card and resolves a higher/lower guess against
// the next. Cards compare by blackjack value, so court cards tie each
// other and an ace outranks everything. Equal values lose the stake,
// house rules.
type HighLowRound struct {
	first    deck.Card
	second   deck.Card
	ledger   *Ledger
	resolved bool
	won      bool
}

// HighLowOption configures a round during creation.
type HighLowOption func(*highLowConfig)

type highLowConfig struct {
	deck *deck.Deck
}

// WithHighLowDeck supplies a pre-built deck instead of shuffling a fresh
// one from the rng.
func WithHighLowDeck(d *deck.Deck) HighLowOption {
	return func(cfg *highLowConfig) {
		cfg.deck = d
	}
}

// NewHighLowRound authorizes the bet and draws the visible card. The
// deck must hold at least two cards; anything less aborts before the
// stake is taken.
func NewHighLowRound(ledger *Ledger, rng *rand.Rand, bet int, opts ...HighLowOption) (*HighLowRound, error) {
	cfg := &highLowConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.deck == nil {
		cfg.deck = deck.NewShuffled(rng)
	}
	if cfg.deck.Remaining() < 2 {
		return nil, fmt.Errorf("high/low needs two cards: %w", deck.ErrExhausted)
	}

	if err := ledger.Authorize(bet); err != nil {
		return nil, err
	}

	// Both draws are taken now; the second stays hidden until Resolve.
	first, _ := cfg.deck.Deal()
	second, _ := cfg.deck.Deal()
	return &HighLowRound{
		first:  first,
		second: second,
		ledger: ledger,
	}, nil
}

// First returns the visible card.
func (r *HighLowRound) First() deck.Card {
	return r.first
}

// Resolved reports whether the round has settled.
func (r *HighLowRound) Resolved() bool {
	return r.resolved
}

// Won reports whether the player's guess was correct. Only meaningful
// after Resolve.
func (r *HighLowRound) Won() bool {
	return r.won
}

// Resolve reveals the second card and settles the stake.
func (r *HighLowRound) Resolve(guess HighLowGuess) (deck.Card, bool, error) {
	if r.resolved {
		return r.second, r.won, ErrRoundOver
	}
	r.resolved = true

	v1 := r.first.BlackjackValue()
	v2 := r.second.BlackjackValue()
	r.won = (v2 > v1 && guess == GuessHigher) || (v2 < v1 && guess == GuessLower)
	if r.won {
		_ = r.ledger.SettleWin()
	} else {
		_ = r.ledger.SettleLoss()
	}
	return r.second, r.won, nil
}
