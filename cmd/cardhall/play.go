package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"cardhall/internal/casino"
	"cardhall/internal/config"
	"cardhall/internal/randutil"
	"cardhall/internal/tui"
)

// PlayCmd runs the interactive casino.
type PlayCmd struct {
	Config   string `kong:"default='casino.hcl',help='Casino configuration file (HCL)'"`
	DebugLog string `kong:"help='Write debug logs to this file (the TUI owns the terminal)'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs cannot share the terminal with the TUI, so they go to a
	// file or nowhere.
	var out io.Writer = io.Discard
	if c.DebugLog != "" {
		f, err := os.OpenFile(c.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			return fmt.Errorf("creating debug log: %w", err)
		}
		defer f.Close()
		out = f
	}
	level, err := log.ParseLevel(cfg.Casino.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log_level: %w", err)
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	var opts []casino.Option
	if c.Seed != nil {
		master := randutil.New(*c.Seed)
		opts = append(opts, casino.WithSeedSource(master.Int64))
		logger.Info("using deterministic seed", "seed", *c.Seed)
	}

	session, err := casino.New(cfg, logger, opts...)
	if err != nil {
		return err
	}

	model := tui.New(session, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	fmt.Printf("Final balance: %d\n", session.Ledger().Balance())
	return nil
}
