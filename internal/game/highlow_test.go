package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardhall/internal/deck"
)

func TestHighLowCorrectGuessWins(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	r, err := NewHighLowRound(l, nil, 20,
		WithHighLowDeck(stacked(deck.Five, deck.King)))
	require.NoError(t, err)
	assert.Equal(t, deck.Five, r.First().Rank)

	second, won, err := r.Resolve(GuessHigher)
	require.NoError(t, err)
	assert.Equal(t, deck.King, second.Rank)
	assert.True(t, won)
	assert.Equal(t, 120, l.Balance())
}

func TestHighLowWrongGuessLoses(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	r, err := NewHighLowRound(l, nil, 20,
		WithHighLowDeck(stacked(deck.Five, deck.King)))
	require.NoError(t, err)

	_, won, err := r.Resolve(GuessLower)
	require.NoError(t, err)
	assert.False(t, won)
	assert.Equal(t, 80, l.Balance())
}

func TestHighLowTieLoses(t *testing.T) {
	t.Parallel()

	// Court cards share the value ten, so J then K is a tie and the
	// house keeps the stake whichever way the player called it.
	for _, guess := range []HighLowGuess{GuessHigher, GuessLower} {
		l := NewLedger(100)
		r, err := NewHighLowRound(l, nil, 10,
			WithHighLowDeck(stacked(deck.Jack, deck.King)))
		require.NoError(t, err)

		_, won, err := r.Resolve(guess)
		require.NoError(t, err)
		assert.False(t, won, "guess %s on a tie must lose", guess)
		assert.Equal(t, 90, l.Balance())
	}
}

func TestHighLowResolveIsSingleShot(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	r, err := NewHighLowRound(l, nil, 10,
		WithHighLowDeck(stacked(deck.Two, deck.Ace)))
	require.NoError(t, err)

	_, won, err := r.Resolve(GuessHigher)
	require.NoError(t, err)
	require.True(t, won)
	require.Equal(t, 110, l.Balance())

	// A second resolve reports the same result but settles nothing.
	second, wonAgain, err := r.Resolve(GuessLower)
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, deck.Ace, second.Rank)
	assert.True(t, wonAgain)
	assert.Equal(t, 110, l.Balance())
}

func TestHighLowNeedsTwoCards(t *testing.T) {
	t.Parallel()

	l := NewLedger(100)
	_, err := NewHighLowRound(l, nil, 10,
		WithHighLowDeck(deck.FromCards(deck.Card{Suit: deck.Spades, Rank: deck.Ace})))
	assert.ErrorIs(t, err, deck.ErrExhausted)
	assert.Equal(t, 100, l.Balance(), "pre-flight failure must not take the stake")
}
