package deck

import "testing"

func TestBlackjackValue(t *testing.T) {
	tests := []struct {
		card     Card
		expected int
	}{
		{Card{Spades, Two}, 2},
		{Card{Hearts, Seven}, 7},
		{Card{Diamonds, Ten}, 10},
		{Card{Clubs, Jack}, 10},
		{Card{Spades, Queen}, 10},
		{Card{Hearts, King}, 10},
		{Card{Diamonds, Ace}, 11},
	}

	for _, tt := range tests {
		if got := tt.card.BlackjackValue(); got != tt.expected {
			t.Errorf("%s: expected value %d, got %d", tt.card, tt.expected, got)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Spades, Ace}, "A♠"},
		{Card{Hearts, Ten}, "10♥"},
		{Card{Diamonds, Two}, "2♦"},
		{Card{Clubs, Queen}, "Q♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestIsRed(t *testing.T) {
	if !(Card{Hearts, Five}).IsRed() {
		t.Error("Hearts should be red")
	}
	if !(Card{Diamonds, Five}).IsRed() {
		t.Error("Diamonds should be red")
	}
	if (Card{Spades, Five}).IsRed() {
		t.Error("Spades should not be red")
	}
	if (Card{Clubs, Five}).IsRed() {
		t.Error("Clubs should not be red")
	}
}

func TestIsAce(t *testing.T) {
	if !(Card{Spades, Ace}).IsAce() {
		t.Error("Ace should report IsAce")
	}
	if (Card{Spades, King}).IsAce() {
		t.Error("King should not report IsAce")
	}
}
