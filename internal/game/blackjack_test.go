package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardhall/internal/deck"
	"cardhall/internal/randutil"
)

// stacked builds a deck dealing the given ranks in order. Opening deal
// order is player, dealer, player, dealer.
func stacked(ranks ...deck.Rank) *deck.Deck {
	suits := []deck.Suit{deck.Spades, deck.Hearts, deck.Diamonds, deck.Clubs}
	cards := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = deck.Card{Suit: suits[i%len(suits)], Rank: r}
	}
	return deck.FromCards(cards...)
}

func TestBlackjackPlayerNatural(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	r, err := NewBlackjackRound(l, nil, 30,
		WithDeck(stacked(deck.Ace, deck.Five, deck.King, deck.Nine)))
	require.NoError(t, err)

	assert.Equal(t, Settled, r.Phase())
	assert.Equal(t, OutcomePlayerBlackjack, r.Outcome())
	assert.Equal(t, 145, l.Balance(), "natural pays 3:2")

	// No further actions once settled.
	assert.ErrorIs(t, r.Hit(), ErrRoundOver)
	assert.ErrorIs(t, r.Stand(), ErrRoundOver)
}

func TestBlackjackBothNaturalsPush(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	r, err := NewBlackjackRound(l, nil, 30,
		WithDeck(stacked(deck.Ace, deck.King, deck.Queen, deck.Ace)))
	require.NoError(t, err)

	assert.Equal(t, OutcomePush, r.Outcome())
	assert.Equal(t, 100, l.Balance())
}

func TestBlackjackPlayerBust(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	r, err := NewBlackjackRound(l, nil, 25,
		WithDeck(stacked(deck.Ten, deck.Five, deck.Nine, deck.Nine, deck.King)))
	require.NoError(t, err)
	require.Equal(t, PlayerTurn, r.Phase())

	require.NoError(t, r.Hit()) // 10+9+K = 29
	assert.Equal(t, OutcomePlayerBust, r.Outcome())
	assert.True(t, r.Player().IsBust())
	assert.Equal(t, 75, l.Balance())
}

func TestBlackjackHitTo21AutoStands(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	r, err := NewBlackjackRound(l, nil, 10,
		WithDeck(stacked(deck.Ten, deck.Ten, deck.Five, deck.Nine, deck.Six)))
	require.NoError(t, err)

	require.NoError(t, r.Hit()) // 10+5+6 = 21
	assert.Equal(t, 21, r.Player().Value())
	assert.Equal(t, DealerTurn, r.Phase(), "hitting to 21 ends the player turn")
}

func TestBlackjackDealerBust(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	// Player stands on 20; dealer 9+7 must draw and busts on the king.
	r, err := NewBlackjackRound(l, nil, 20,
		WithDeck(stacked(deck.Ten, deck.Nine, deck.Queen, deck.Seven, deck.King)))
	require.NoError(t, err)

	require.NoError(t, r.Stand())
	require.NoError(t, r.PlayDealer())

	assert.Equal(t, OutcomeDealerBust, r.Outcome())
	assert.True(t, r.Dealer().IsBust())
	assert.Equal(t, 120, l.Balance())
}

func TestBlackjackDealerStandsAndCompares(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ranks   []deck.Rank
		outcome BlackjackOutcome
		balance int
	}{
		{
			// Player 20 vs dealer 10+9 = 19: dealer stands, player wins.
			name:    "player ahead",
			ranks:   []deck.Rank{deck.Ten, deck.Ten, deck.Queen, deck.Nine},
			outcome: OutcomePlayerWin,
			balance: 110,
		},
		{
			// Player 18 vs dealer 20.
			name:    "dealer ahead",
			ranks:   []deck.Rank{deck.Ten, deck.Ten, deck.Eight, deck.Queen},
			outcome: OutcomeDealerWin,
			balance: 90,
		},
		{
			// Both stand on 19.
			name:    "push",
			ranks:   []deck.Rank{deck.Ten, deck.Ten, deck.Nine, deck.Nine},
			outcome: OutcomePush,
			balance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(100)
			r, err := NewBlackjackRound(l, nil, 10, WithDeck(stacked(tt.ranks...)))
			require.NoError(t, err)

			require.NoError(t, r.Stand())
			require.NoError(t, r.PlayDealer())

			assert.Equal(t, tt.outcome, r.Outcome())
			assert.Equal(t, tt.balance, l.Balance())
		})
	}
}

func TestBlackjackDealerNaturalRevealedAtDealerTurn(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	// Dealer holds A+K; player 12 stands immediately.
	r, err := NewBlackjackRound(l, nil, 40,
		WithDeck(stacked(deck.Five, deck.Ace, deck.Seven, deck.King)))
	require.NoError(t, err)
	require.Equal(t, PlayerTurn, r.Phase(), "dealer natural stays hidden during the player turn")

	require.NoError(t, r.Stand())
	_, done, err := r.DealerStep()
	require.NoError(t, err)

	assert.True(t, done)
	assert.Equal(t, OutcomeDealerBlackjack, r.Outcome())
	assert.Equal(t, 60, l.Balance())
	assert.Equal(t, 2, r.Dealer().Len(), "dealer must not draw on a natural")
}

func TestBlackjackDealerDrawsBelowStandThreshold(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	// Dealer 2+2 keeps drawing fives until reaching 17: 2+2+5+5+5 = 19,
	// beating the player's 18.
	r, err := NewBlackjackRound(l, nil, 10,
		WithDeck(stacked(deck.Ten, deck.Two, deck.Eight, deck.Two,
			deck.Five, deck.Five, deck.Five)))
	require.NoError(t, err)

	require.NoError(t, r.Stand())

	draws := 0
	for {
		_, done, err := r.DealerStep()
		require.NoError(t, err)
		if done {
			break
		}
		draws++
	}

	assert.Equal(t, 19, r.Dealer().Value())
	assert.Equal(t, 2, draws, "two paced draws before the settling one")
	assert.Equal(t, OutcomeDealerWin, r.Outcome())
}

func TestBlackjackCustomStandThreshold(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	// With the house standing on 16, dealer 10+6 takes no card.
	r, err := NewBlackjackRound(l, nil, 10,
		WithDeck(stacked(deck.Ten, deck.Ten, deck.Seven, deck.Six)),
		WithDealerStands(16))
	require.NoError(t, err)

	require.NoError(t, r.Stand())
	require.NoError(t, r.PlayDealer())

	assert.Equal(t, 16, r.Dealer().Value())
	assert.Equal(t, OutcomePlayerWin, r.Outcome())
}

func TestBlackjackDeckExhaustionAbortsRound(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	// Only the opening four cards: the first hit exhausts the deck.
	r, err := NewBlackjackRound(l, nil, 50,
		WithDeck(stacked(deck.Ten, deck.Five, deck.Nine, deck.Nine)))
	require.NoError(t, err)

	err = r.Hit()
	assert.ErrorIs(t, err, deck.ErrExhausted)
	assert.Equal(t, Settled, r.Phase())
	assert.Equal(t, OutcomePending, r.Outcome())
	assert.Equal(t, 100, l.Balance(), "aborted round returns the stake")
}

func TestBlackjackSeededRoundIsReproducible(t *testing.T) {
	t.Parallel()

	play := func() (BlackjackOutcome, int) {
		l := NewLedger(1000)
		r, err := NewBlackjackRound(l, randutil.New(99), 10)
		require.NoError(t, err)
		for r.Phase() == PlayerTurn {
			if r.Player().Value() < 17 {
				require.NoError(t, r.Hit())
			} else {
				require.NoError(t, r.Stand())
			}
		}
		if r.Phase() == DealerTurn {
			require.NoError(t, r.PlayDealer())
		}
		return r.Outcome(), l.Balance()
	}

	o1, b1 := play()
	o2, b2 := play()
	assert.Equal(t, o1, o2)
	assert.Equal(t, b1, b2)
}
