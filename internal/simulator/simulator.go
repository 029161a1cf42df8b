// Package simulator estimates return-to-player for each casino game by
// playing large numbers of seeded rounds with fixed policies.
package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"cardhall/internal/game"
	"cardhall/internal/randutil"
	"cardhall/internal/slots"
)

// Config holds configuration for a simulation run.
type Config struct {
	Rounds  int
	Bet     int
	Seed    int64
	Workers int // defaults to GOMAXPROCS
	Logger  *log.Logger
}

// Game is one simulatable game: a name plus a play function returning
// the round's net balance change.
type Game struct {
	Name string
	Play func(rng *rand.Rand, bet int) (net int, err error)
}

// Result aggregates one game's simulated rounds.
type Result struct {
	Game    string
	Rounds  int
	Wagered int64
	Net     int64
	Wins    int
	Pushes  int
	Losses  int
}

// RTP is the return-to-player ratio: total returned over total wagered.
func (r *Result) RTP() float64 {
	if r.Wagered == 0 {
		return 0
	}
	return float64(r.Wagered+r.Net) / float64(r.Wagered)
}

func (r *Result) add(net int, bet int) {
	r.Rounds++
	r.Wagered += int64(bet)
	r.Net += int64(net)
	switch {
	case net > 0:
		r.Wins++
	case net < 0:
		r.Losses++
	default:
		r.Pushes++
	}
}

func (r *Result) merge(other *Result) {
	r.Rounds += other.Rounds
	r.Wagered += other.Wagered
	r.Net += other.Net
	r.Wins += other.Wins
	r.Pushes += other.Pushes
	r.Losses += other.Losses
}

// Simulator fans seeded rounds across workers and aggregates results.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Run plays every game for the configured number of rounds. Each round
// derives its own seed from the base seed and the round index, so a run
// is reproducible regardless of worker count or scheduling.
func (s *Simulator) Run(games []Game) ([]*Result, error) {
	results := make([]*Result, 0, len(games))
	for _, g := range games {
		result, err := s.runGame(g)
		if err != nil {
			return nil, fmt.Errorf("simulating %s: %w", g.Name, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Simulator) runGame(g Game) (*Result, error) {
	result := &Result{Game: g.Name}
	var mu sync.Mutex

	var eg errgroup.Group
	eg.SetLimit(s.config.Workers)

	chunk := (s.config.Rounds + s.config.Workers - 1) / s.config.Workers
	for start := 0; start < s.config.Rounds; start += chunk {
		end := min(start+chunk, s.config.Rounds)
		eg.Go(func() error {
			local := &Result{Game: g.Name}
			for round := start; round < end; round++ {
				rng := randutil.New(s.config.Seed + int64(round))
				net, err := g.Play(rng, s.config.Bet)
				if err != nil {
					return fmt.Errorf("round %d: %w", round, err)
				}
				local.add(net, s.config.Bet)
			}
			mu.Lock()
			result.merge(local)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if s.config.Logger != nil {
		s.config.Logger.Info("simulated game", "game", g.Name,
			"rounds", result.Rounds, "rtp", fmt.Sprintf("%.4f", result.RTP()))
	}
	return result, nil
}

// Blackjack simulates blackjack with the player mirroring the dealer
// policy: hit below the stand threshold, stand otherwise.
func Blackjack(dealerStands int) Game {
	return Game{
		Name: "blackjack",
		Play: func(rng *rand.Rand, bet int) (int, error) {
			ledger := game.NewLedger(bet)
			r, err := game.NewBlackjackRound(ledger, rng, bet,
				game.WithDealerStands(dealerStands))
			if err != nil {
				return 0, err
			}
			for r.Phase() == game.PlayerTurn {
				if r.Player().Value() < dealerStands {
					err = r.Hit()
				} else {
					err = r.Stand()
				}
				if err != nil {
					return 0, err
				}
			}
			if r.Phase() == game.DealerTurn {
				if err := r.PlayDealer(); err != nil {
					return 0, err
				}
			}
			return ledger.Balance() - bet, nil
		},
	}
}

// HighLow simulates high/low guessing by the visible card's value:
// lower for 8 and above, higher below.
func HighLow() Game {
	return Game{
		Name: "high-low",
		Play: func(rng *rand.Rand, bet int) (int, error) {
			ledger := game.NewLedger(bet)
			r, err := game.NewHighLowRound(ledger, rng, bet)
			if err != nil {
				return 0, err
			}
			guess := game.GuessHigher
			if r.First().BlackjackValue() >= 8 {
				guess = game.GuessLower
			}
			if _, _, err := r.Resolve(guess); err != nil {
				return 0, err
			}
			return ledger.Balance() - bet, nil
		},
	}
}

// Slots simulates spins of the given machine.
func Slots(m *slots.Machine) Game {
	return Game{
		Name: m.Name,
		Play: func(rng *rand.Rand, bet int) (int, error) {
			grid := m.Spin(rng)
			_, total := m.EvaluateLines(grid)
			return slots.Net(bet, total), nil
		},
	}
}
