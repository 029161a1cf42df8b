// Package game implements the casino's table games against a single
// player ledger.
//
// The building blocks are Hand (running blackjack score with soft-ace
// demotion) and Ledger (balance plus the authorized stake for the round
// in progress). BlackjackRound and HighLowRound drive one round each and
// settle the stake exactly once.
//
// # Deterministic Testing
//
// Rounds take an explicit *rand.Rand and accept a stacked deck via
// options, so outcomes are reproducible:
//
//	rng := randutil.New(42)
//	round, err := game.NewBlackjackRound(ledger, rng, 50)
//
//	d := deck.FromCards(deck.Card{Suit: deck.Spades, Rank: deck.Ace}, ...)
//	round, err := game.NewBlackjackRound(ledger, nil, 50, game.WithDeck(d))
package game
