package deck

import (
	"errors"
	"testing"

	"cardhall/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New(randutil.New(42))

	if d.Remaining() != 52 {
		t.Fatalf("Expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for !d.IsEmpty() {
		card, err := d.Deal()
		if err != nil {
			t.Fatalf("Deal failed on non-empty deck: %v", err)
		}
		if seen[card] {
			t.Errorf("Duplicate card dealt: %s", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("Expected 52 distinct cards, got %d", len(seen))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	d := NewShuffled(randutil.New(42))

	counts := make(map[Card]int)
	for !d.IsEmpty() {
		card, _ := d.Deal()
		counts[card]++
	}

	if len(counts) != 52 {
		t.Fatalf("Shuffled deck holds %d distinct cards, want 52", len(counts))
	}
	for card, n := range counts {
		if n != 1 {
			t.Errorf("Card %s appears %d times after shuffle", card, n)
		}
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	d1 := NewShuffled(randutil.New(7))
	d2 := NewShuffled(randutil.New(7))

	for i := 0; i < 52; i++ {
		c1, _ := d1.Deal()
		c2, _ := d2.Deal()
		if c1 != c2 {
			t.Fatalf("Decks with the same seed diverged at card %d: %s != %s", i, c1, c2)
		}
	}
}

func TestDealDecrementsRemaining(t *testing.T) {
	d := NewShuffled(randutil.New(42))

	for want := 51; want >= 0; want-- {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("Deal failed with %d cards left: %v", want+1, err)
		}
		if d.Remaining() != want {
			t.Fatalf("Expected %d remaining, got %d", want, d.Remaining())
		}
	}
}

func TestDealFromEmptyDeck(t *testing.T) {
	d := NewShuffled(randutil.New(42))
	for i := 0; i < 52; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("Deal %d failed: %v", i+1, err)
		}
	}

	// Exhaustion must be a stable error, never a card.
	for i := 0; i < 3; i++ {
		if _, err := d.Deal(); !errors.Is(err, ErrExhausted) {
			t.Errorf("Expected ErrExhausted, got %v", err)
		}
	}
}

func TestFromCardsDealsInOrder(t *testing.T) {
	stacked := []Card{
		{Spades, Ace},
		{Hearts, King},
		{Diamonds, Nine},
	}
	d := FromCards(stacked...)

	if d.Remaining() != 3 {
		t.Fatalf("Expected 3 cards, got %d", d.Remaining())
	}
	for i, want := range stacked {
		got, err := d.Deal()
		if err != nil {
			t.Fatalf("Deal %d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("Deal %d: expected %s, got %s", i, want, got)
		}
	}
}
