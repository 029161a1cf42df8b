package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"cardhall/internal/config"
	"cardhall/internal/randutil"
	"cardhall/internal/simulator"
)

// SimulateCmd estimates per-game RTP with fixed policies.
type SimulateCmd struct {
	Config  string `kong:"default='casino.hcl',help='Casino configuration file (HCL)'"`
	Rounds  int    `kong:"default='100000',help='Rounds to simulate per game'"`
	Bet     int    `kong:"default='10',help='Stake per round'"`
	Seed    int64  `kong:"default='0',help='RNG seed (0 for random)'"`
	Game    string `kong:"default='all',help='Game to simulate: all, blackjack, high-low, or a machine name'"`
	Workers int    `kong:"default='0',help='Worker goroutines (0 for GOMAXPROCS)'"`
	Verbose bool   `kong:"help='Verbose logging'"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if c.Seed == 0 {
		c.Seed = randutil.TimeSeed()
	}
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	games := []simulator.Game{
		simulator.Blackjack(cfg.Casino.DealerStands),
		simulator.HighLow(),
	}
	for _, mc := range cfg.Machines {
		m, err := mc.Machine()
		if err != nil {
			return err
		}
		games = append(games, simulator.Slots(m))
	}

	if c.Game != "all" {
		selected := games[:0]
		for _, g := range games {
			if g.Name == c.Game {
				selected = append(selected, g)
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("unknown game %q", c.Game)
		}
		games = selected
	}

	fmt.Printf("Simulating %d rounds per game at bet %d (seed %d)\n\n",
		c.Rounds, c.Bet, c.Seed)

	sim := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Bet:     c.Bet,
		Seed:    c.Seed,
		Workers: c.Workers,
		Logger:  logger,
	})
	results, err := sim.Run(games)
	if err != nil {
		return err
	}

	fmt.Print(simulator.Report(results))
	return nil
}
