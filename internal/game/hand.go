package game

import (
	"strings"

	"cardhall/internal/deck"
)

// Hand accumulates dealt cards into a running blackjack score. Soft aces
// are demoted from 11 to 1 as soon as the total would bust, after every
// single card added, so Value always reflects the best achievable score
// for the cards held.
type Hand struct {
	cards    []deck.Card
	value    int
	softAces int
}

// AddCard adds a card to the hand and re-applies soft-ace demotion.
func (h *Hand) AddCard(c deck.Card) {
	h.cards = append(h.cards, c)
	h.value += c.BlackjackValue()
	if c.IsAce() {
		h.softAces++
	}
	for h.value > 21 && h.softAces > 0 {
		h.value -= 10
		h.softAces--
	}
}

// Value returns the current best score.
func (h *Hand) Value() int {
	return h.value
}

// SoftAces returns how many aces are still counted as 11.
func (h *Hand) SoftAces() int {
	return h.softAces
}

// Cards returns the cards in deal order.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsBust reports whether the hand exceeds 21 with no soft ace left to
// demote.
func (h *Hand) IsBust() bool {
	return h.value > 21
}

// IsNatural reports a two-card 21. A 21 built from three or more cards
// is not a natural and does not earn the 3:2 payout.
func (h *Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.value == 21
}

// String renders the hand as space-separated cards, e.g. "A♠ K♥".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
