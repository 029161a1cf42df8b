package game

import "errors"

var (
	// ErrInvalidBet is returned for a zero or negative stake.
	ErrInvalidBet = errors.New("bet must be positive")
	// ErrInsufficientBalance is returned when the stake exceeds the balance.
	ErrInsufficientBalance = errors.New("bet exceeds balance")
	// ErrNoActiveBet is returned when settling without an authorized stake,
	// including a second settlement of the same round.
	ErrNoActiveBet = errors.New("no authorized bet to settle")
)

// Ledger tracks the player's balance and the stake for the round in
// progress. A stake is placed with Authorize and consumed by exactly one
// settlement call; settling again before the next Authorize returns
// ErrNoActiveBet with the balance untouched.
type Ledger struct {
	balance int
	bet     int
	staked  bool
}

// NewLedger creates a ledger with the given starting balance.
func NewLedger(balance int) *Ledger {
	return &Ledger{balance: balance}
}

// Balance returns the current balance. It can reach zero or below after
// a losing settlement; the game loop treats that as out of funds before
// the next round's Authorize.
func (l *Ledger) Balance() int {
	return l.balance
}

// Bet returns the most recently authorized stake. It is retained after
// settlement so the UI can offer a re-bet.
func (l *Ledger) Bet() int {
	return l.bet
}

// Broke reports whether the player is out of funds.
func (l *Ledger) Broke() bool {
	return l.balance <= 0
}

// Authorize records the stake for the next round.
func (l *Ledger) Authorize(amount int) error {
	if amount <= 0 {
		return ErrInvalidBet
	}
	if amount > l.balance {
		return ErrInsufficientBalance
	}
	l.bet = amount
	l.staked = true
	return nil
}

// Release returns an authorized stake without settling it, used when a
// round aborts (e.g. deck exhaustion) before resolving.
func (l *Ledger) Release() {
	l.staked = false
}

// SettleWin credits the stake at 1:1.
func (l *Ledger) SettleWin() error {
	return l.settle(l.bet)
}

// SettleBlackjackWin credits the stake at 3:2, floored.
func (l *Ledger) SettleBlackjackWin() error {
	return l.settle(l.bet * 3 / 2)
}

// SettleLoss debits the stake.
func (l *Ledger) SettleLoss() error {
	return l.settle(-l.bet)
}

// SettlePush returns the stake unchanged.
func (l *Ledger) SettlePush() error {
	return l.settle(0)
}

// SettleMultiplier settles a slot spin: a zero multiplier forfeits the
// stake, otherwise the net change is bet*(multiplier-1).
func (l *Ledger) SettleMultiplier(multiplier int) error {
	if multiplier <= 0 {
		return l.settle(-l.bet)
	}
	return l.settle(l.bet * (multiplier - 1))
}

func (l *Ledger) settle(delta int) error {
	if !l.staked {
		return ErrNoActiveBet
	}
	l.balance += delta
	l.staked = false
	return nil
}
