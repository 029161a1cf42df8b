package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cardhall/internal/deck"
	"cardhall/internal/game"
)

var blackjackOutcomeText = map[game.BlackjackOutcome]string{
	game.OutcomePlayerBlackjack: "Blackjack! Pays 3:2.",
	game.OutcomePlayerWin:       "You win.",
	game.OutcomeDealerBust:      "Dealer busts. You win.",
	game.OutcomePlayerBust:      "Bust. Dealer takes the stake.",
	game.OutcomeDealerWin:       "Dealer wins.",
	game.OutcomeDealerBlackjack: "Dealer has blackjack.",
	game.OutcomePush:            "Push. Stake returned.",
}

func (m *Model) updateBlackjack(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dealerBusy {
		// Reveals are paced; ignore input until the dealer finishes.
		return m, nil
	}
	if m.blackjack.Phase() == game.Settled {
		switch msg.String() {
		case "enter", "q", "esc":
			m.toMenu()
		}
		return m, nil
	}

	switch msg.String() {
	case "h":
		if err := m.blackjack.Hit(); err != nil {
			return m.blackjackAborted(err)
		}
		if m.blackjack.Phase() == game.DealerTurn {
			return m.startDealer()
		}
	case "s":
		if err := m.blackjack.Stand(); err != nil {
			return m.blackjackAborted(err)
		}
		return m.startDealer()
	}
	return m, nil
}

func (m *Model) startDealer() (tea.Model, tea.Cmd) {
	m.dealerBusy = true
	return m, m.pacer.Wait(dealerStepMsg{})
}

func (m *Model) advanceDealer() (tea.Model, tea.Cmd) {
	if m.blackjack == nil || m.blackjack.Phase() != game.DealerTurn {
		m.dealerBusy = false
		return m, nil
	}
	_, done, err := m.blackjack.DealerStep()
	if err != nil {
		return m.blackjackAborted(err)
	}
	if done {
		m.dealerBusy = false
		m.logger.Debug("blackjack settled", "outcome", m.blackjack.Outcome(),
			"balance", m.session.Ledger().Balance())
		return m, nil
	}
	return m, m.pacer.Wait(dealerStepMsg{})
}

func (m *Model) blackjackAborted(err error) (tea.Model, tea.Cmd) {
	m.dealerBusy = false
	if errors.Is(err, deck.ErrExhausted) {
		m.status = "The shoe ran dry; round abandoned, stake returned."
	} else {
		m.status = err.Error()
	}
	return m, nil
}

func (m *Model) viewBlackjack() string {
	r := m.blackjack
	var b strings.Builder

	fmt.Fprintf(&b, "Your hand:   %s  (%d)\n", renderHand(r.Player()), r.Player().Value())

	if r.Phase() == game.PlayerTurn {
		fmt.Fprintf(&b, "Dealer shows: %s  [hidden]\n", renderCard(r.DealerUpcard()))
	} else {
		fmt.Fprintf(&b, "Dealer hand: %s  (%d)\n", renderHand(r.Dealer()), r.Dealer().Value())
	}
	b.WriteString("\n")

	switch {
	case m.dealerBusy:
		b.WriteString(InfoStyle.Render("Dealer is drawing..."))
	case r.Phase() == game.PlayerTurn:
		b.WriteString(ActionsStyle.Render("[h]it · [s]tand"))
	case r.Phase() == game.Settled:
		b.WriteString(outcomeStyle(r.Outcome()).Render(blackjackOutcomeText[r.Outcome()]))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("enter back to menu"))
	}
	return b.String()
}

func outcomeStyle(o game.BlackjackOutcome) interface{ Render(...string) string } {
	switch {
	case o.PlayerWins():
		return WinStyle
	case o == game.OutcomePush:
		return PushStyle
	default:
		return LoseStyle
	}
}
