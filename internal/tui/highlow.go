package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cardhall/internal/game"
)

func (m *Model) updateHighLow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.highlow.Resolved() {
		switch msg.String() {
		case "enter", "q", "esc":
			m.toMenu()
		}
		return m, nil
	}

	var guess game.HighLowGuess
	switch msg.String() {
	case "h":
		guess = game.GuessHigher
	case "l":
		guess = game.GuessLower
	default:
		return m, nil
	}

	second, won, err := m.highlow.Resolve(guess)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.revealed = &second
	m.logger.Debug("high/low resolved", "guess", guess, "won", won,
		"balance", m.session.Ledger().Balance())
	return m, nil
}

func (m *Model) viewHighLow() string {
	r := m.highlow
	var b strings.Builder

	first := r.First()
	fmt.Fprintf(&b, "First card: %s  (value %d)\n", renderCard(first), first.BlackjackValue())

	if !r.Resolved() {
		b.WriteString("\n")
		b.WriteString(ActionsStyle.Render("Next card [h]igher or [l]ower?"))
		return b.String()
	}

	fmt.Fprintf(&b, "Next card:  %s  (value %d)\n\n", renderCard(*m.revealed), m.revealed.BlackjackValue())
	if r.Won() {
		b.WriteString(WinStyle.Render("Correct! Pays 1:1."))
	} else if first.BlackjackValue() == m.revealed.BlackjackValue() {
		b.WriteString(LoseStyle.Render("Tie. House takes the stake."))
	} else {
		b.WriteString(LoseStyle.Render("Wrong."))
	}
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("enter back to menu"))
	return b.String()
}
