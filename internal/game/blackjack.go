package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"cardhall/internal/deck"
)

// ErrRoundOver is returned when an action arrives after the round has
// settled.
var ErrRoundOver = errors.New("round already settled")

// BlackjackPhase tracks where a round is in its lifecycle.
type BlackjackPhase int

const (
	PlayerTurn BlackjackPhase = iota
	DealerTurn
	Settled
)

func (p BlackjackPhase) String() string {
	return [...]string{"player-turn", "dealer-turn", "settled"}[p]
}

// BlackjackOutcome is the result of a settled round.
type BlackjackOutcome int

const (
	OutcomePending BlackjackOutcome = iota
	OutcomePlayerBlackjack
	OutcomePlayerWin
	OutcomeDealerBust
	OutcomePlayerBust
	OutcomeDealerWin
	OutcomeDealerBlackjack
	OutcomePush
)

func (o BlackjackOutcome) String() string {
	return [...]string{
		"pending", "player-blackjack", "player-win", "dealer-bust",
		"player-bust", "dealer-win", "dealer-blackjack", "push",
	}[o]
}

// PlayerWins reports whether the outcome pays the player.
func (o BlackjackOutcome) PlayerWins() bool {
	return o == OutcomePlayerBlackjack || o == OutcomePlayerWin || o == OutcomeDealerBust
}

// BlackjackOption configures a round during creation.
type BlackjackOption func(*blackjackConfig)

type blackjackConfig struct {
	deck         *deck.Deck // if set, overrides rng-based deck creation
	dealerStands int
}

// WithDeck supplies a pre-built (usually stacked) deck instead of
// shuffling a fresh one from the rng.
func WithDeck(d *deck.Deck) BlackjackOption {
	return func(cfg *blackjackConfig) {
		cfg.deck = d
	}
}

// WithDealerStands overrides the total the dealer stands on (default 17).
// The dealer draws while strictly below it, soft or hard.
func WithDealerStands(total int) BlackjackOption {
	return func(cfg *blackjackConfig) {
		cfg.dealerStands = total
	}
}

// BlackjackRound runs one hand of blackjack against the ledger. The
// stake is authorized up front and settled exactly once when the round
// resolves; a deck exhaustion mid-round releases the stake and ends the
// round with OutcomePending.
type BlackjackRound struct {
	deck     *deck.Deck
	player   Hand
	dealer   Hand
	ledger   *Ledger
	standsOn int
	phase    BlackjackPhase
	outcome  BlackjackOutcome
}

// NewBlackjackRound authorizes the bet and deals the opening hands in
// player/dealer/player/dealer order. Naturals are checked before the
// player acts: both naturals push, a lone player natural pays 3:2
// immediately. A lone dealer natural is only revealed at the dealer
// turn, so the player can still bust into a plain loss first.
func NewBlackjackRound(ledger *Ledger, rng *rand.Rand, bet int, opts ...BlackjackOption) (*BlackjackRound, error) {
	cfg := &blackjackConfig{dealerStands: 17}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.deck == nil {
		cfg.deck = deck.NewShuffled(rng)
	}

	if err := ledger.Authorize(bet); err != nil {
		return nil, err
	}

	r := &BlackjackRound{
		deck:     cfg.deck,
		ledger:   ledger,
		standsOn: cfg.dealerStands,
	}
	for i := 0; i < 2; i++ {
		if err := r.dealTo(&r.player); err != nil {
			return nil, err
		}
		if err := r.dealTo(&r.dealer); err != nil {
			return nil, err
		}
	}

	switch {
	case r.player.IsNatural() && r.dealer.IsNatural():
		r.settle(OutcomePush)
	case r.player.IsNatural():
		r.settle(OutcomePlayerBlackjack)
	}
	return r, nil
}

// Hit deals the player one card. Busting settles the round as a loss;
// reaching exactly 21 stands automatically.
func (r *BlackjackRound) Hit() error {
	if r.phase != PlayerTurn {
		return ErrRoundOver
	}
	card, err := r.deck.Deal()
	if err != nil {
		r.abort()
		return err
	}
	r.player.AddCard(card)
	switch {
	case r.player.IsBust():
		r.settle(OutcomePlayerBust)
	case r.player.Value() == 21:
		return r.Stand()
	}
	return nil
}

// Stand ends the player turn and hands control to the dealer.
func (r *BlackjackRound) Stand() error {
	if r.phase != PlayerTurn {
		return ErrRoundOver
	}
	r.phase = DealerTurn
	return nil
}

// DealerStep advances the dealer by one decision: reveal a natural, draw
// one card, or stand and compare. It reports done=true once the round is
// settled, so callers can pace reveals card by card.
func (r *BlackjackRound) DealerStep() (deck.Card, bool, error) {
	if r.phase != DealerTurn {
		return deck.Card{}, true, ErrRoundOver
	}
	if r.dealer.IsNatural() {
		r.settle(OutcomeDealerBlackjack)
		return deck.Card{}, true, nil
	}
	if r.dealer.Value() >= r.standsOn {
		r.compare()
		return deck.Card{}, true, nil
	}

	card, err := r.deck.Deal()
	if err != nil {
		r.abort()
		return deck.Card{}, true, err
	}
	r.dealer.AddCard(card)
	switch {
	case r.dealer.IsBust():
		r.settle(OutcomeDealerBust)
		return card, true, nil
	case r.dealer.Value() >= r.standsOn:
		r.compare()
		return card, true, nil
	}
	return card, false, nil
}

// PlayDealer runs the dealer to completion in one call.
func (r *BlackjackRound) PlayDealer() error {
	for {
		_, done, err := r.DealerStep()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Phase returns the round's current phase.
func (r *BlackjackRound) Phase() BlackjackPhase {
	return r.phase
}

// Outcome returns the settled result, OutcomePending until then.
func (r *BlackjackRound) Outcome() BlackjackOutcome {
	return r.outcome
}

// Player returns the player's hand.
func (r *BlackjackRound) Player() *Hand {
	return &r.player
}

// Dealer returns the dealer's hand.
func (r *BlackjackRound) Dealer() *Hand {
	return &r.dealer
}

// DealerUpcard returns the dealer's visible card.
func (r *BlackjackRound) DealerUpcard() deck.Card {
	return r.dealer.cards[0]
}

func (r *BlackjackRound) dealTo(h *Hand) error {
	card, err := r.deck.Deal()
	if err != nil {
		r.abort()
		return fmt.Errorf("dealing opening hands: %w", err)
	}
	h.AddCard(card)
	return nil
}

func (r *BlackjackRound) compare() {
	switch {
	case r.dealer.Value() > r.player.Value():
		r.settle(OutcomeDealerWin)
	case r.dealer.Value() < r.player.Value():
		r.settle(OutcomePlayerWin)
	default:
		r.settle(OutcomePush)
	}
}

func (r *BlackjackRound) settle(outcome BlackjackOutcome) {
	switch outcome {
	case OutcomePlayerBlackjack:
		_ = r.ledger.SettleBlackjackWin()
	case OutcomePlayerWin, OutcomeDealerBust:
		_ = r.ledger.SettleWin()
	case OutcomePush:
		_ = r.ledger.SettlePush()
	default:
		_ = r.ledger.SettleLoss()
	}
	r.outcome = outcome
	r.phase = Settled
}

// abort releases the stake and ends the round without a result.
func (r *BlackjackRound) abort() {
	r.ledger.Release()
	r.phase = Settled
}
