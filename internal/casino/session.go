// Package casino ties the configured games to a single player ledger
// for one sitting at the terminal.
package casino

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"cardhall/internal/config"
	"cardhall/internal/game"
	"cardhall/internal/randutil"
	"cardhall/internal/slots"
)

// Session owns the ledger and the machines built from config. Every
// round gets its own generator derived from the session's seed source,
// so deals across rounds are independent; tests install a fixed source
// for reproducible sittings.
type Session struct {
	cfg      *config.Config
	ledger   *game.Ledger
	logger   *log.Logger
	seed     func() int64
	machines []*slots.Machine
}

// Option configures a Session during creation.
type Option func(*Session)

// WithSeedSource replaces the wall-clock seed source, making every
// round's rng deterministic.
func WithSeedSource(seed func() int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// New builds a session from config.
func New(cfg *config.Config, logger *log.Logger, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid casino config: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		ledger: game.NewLedger(cfg.Casino.StartingBalance),
		logger: logger.WithPrefix("casino"),
		seed:   randutil.TimeSeed,
	}
	for _, mc := range cfg.Machines {
		m, err := mc.Machine()
		if err != nil {
			return nil, err
		}
		s.machines = append(s.machines, m)
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("session opened",
		"balance", s.ledger.Balance(), "machines", len(s.machines))
	return s, nil
}

// Ledger returns the player's ledger.
func (s *Session) Ledger() *game.Ledger {
	return s.ledger
}

// Machines returns the configured slot machines.
func (s *Session) Machines() []*slots.Machine {
	return s.machines
}

// DealerStands returns the configured dealer stand threshold.
func (s *Session) DealerStands() int {
	return s.cfg.Casino.DealerStands
}

// NewBlackjack starts a blackjack round at the given stake with a
// freshly seeded deck.
func (s *Session) NewBlackjack(bet int) (*game.BlackjackRound, error) {
	r, err := game.NewBlackjackRound(s.ledger, s.rng(), bet,
		game.WithDealerStands(s.cfg.Casino.DealerStands))
	if err != nil {
		return nil, err
	}
	s.logger.Debug("blackjack round opened", "bet", bet,
		"player", r.Player().String(), "upcard", r.DealerUpcard())
	return r, nil
}

// NewHighLow starts a high/low round at the given stake.
func (s *Session) NewHighLow(bet int) (*game.HighLowRound, error) {
	r, err := game.NewHighLowRound(s.ledger, s.rng(), bet)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("high/low round opened", "bet", bet, "first", r.First())
	return r, nil
}

// SpinResult bundles one settled spin.
type SpinResult struct {
	Grid       slots.Grid
	Lines      []slots.LineResult
	Multiplier int
	Net        int
}

// Spin authorizes the stake, spins the machine and settles the net
// change in one synchronous step.
func (s *Session) Spin(m *slots.Machine, bet int) (*SpinResult, error) {
	if err := s.ledger.Authorize(bet); err != nil {
		return nil, err
	}
	grid := m.Spin(s.rng())
	lines, total := m.EvaluateLines(grid)
	_ = s.ledger.SettleMultiplier(total)

	res := &SpinResult{
		Grid:       grid,
		Lines:      lines,
		Multiplier: total,
		Net:        slots.Net(bet, total),
	}
	s.logger.Debug("spin settled", "machine", m.Name, "bet", bet,
		"multiplier", total, "net", res.Net, "balance", s.ledger.Balance())
	return res, nil
}

func (s *Session) rng() *rand.Rand {
	return randutil.New(s.seed())
}
