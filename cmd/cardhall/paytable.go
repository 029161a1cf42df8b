package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cardhall/internal/config"
)

var (
	machineHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1).
				Bold(true)
	wildNoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Italic(true)
)

// PaytableCmd prints every configured machine's paytable and paylines.
type PaytableCmd struct {
	Config string `kong:"default='casino.hcl',help='Casino configuration file (HCL)'"`
}

func (c *PaytableCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	for i, mc := range cfg.Machines {
		m, err := mc.Machine()
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Println(machineHeaderStyle.Render(fmt.Sprintf(" %s (%dx%d) ", m.Name, m.Rows, m.Cols)))
		fmt.Println()

		for _, sym := range m.Symbols {
			fmt.Printf("  %s %s %s  pays %dx\n", sym, sym, sym, m.Paytable.Payout(sym))
		}
		if m.Wild != "" {
			fmt.Println(wildNoteStyle.Render(
				fmt.Sprintf("  %s is wild and completes any line", m.Wild)))
		}

		fmt.Printf("\n  %d payline(s):\n", len(m.Paylines))
		for j, line := range m.Paylines {
			cells := make([]string, len(line))
			for k, cell := range line {
				cells[k] = fmt.Sprintf("r%dc%d", cell/m.Cols, cell%m.Cols)
			}
			fmt.Printf("    %d: %s\n", j+1, strings.Join(cells, " → "))
		}
	}
	return nil
}
