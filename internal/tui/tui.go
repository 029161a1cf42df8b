// Package tui renders the casino floor with Bubble Tea: a menu over the
// configured games, a bet prompt, and one screen per game family. All
// game rules live in internal/game and internal/slots; this package is
// presentation and input only.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"cardhall/internal/casino"
	"cardhall/internal/deck"
	"cardhall/internal/game"
	"cardhall/internal/slots"
)

type screen int

const (
	screenMenu screen = iota
	screenBet
	screenBlackjack
	screenHighLow
	screenSlots
)

type gameKind int

const (
	gameBlackjack gameKind = iota
	gameHighLow
	gameSlots
)

type menuItem struct {
	label   string
	kind    gameKind
	machine *slots.Machine // set for gameSlots
}

// Internal pacing messages.
type dealerStepMsg struct{}
type spinRevealMsg struct{}

// Model is the Bubble Tea model for a casino sitting.
type Model struct {
	session *casino.Session
	logger  *log.Logger
	pacer   *Pacer

	screen screen
	cursor int
	items  []menuItem

	betInput textinput.Model
	pending  menuItem
	status   string

	blackjack  *game.BlackjackRound
	dealerBusy bool

	highlow  *game.HighLowRound
	revealed *deck.Card

	machine  *slots.Machine
	spin     *casino.SpinResult
	spinning bool
	slotsBet int

	width    int
	height   int
	quitting bool
}

// ModelOption configures the model during creation.
type ModelOption func(*Model)

// WithClock swaps the pacing clock, letting tests advance reveals
// without real delays.
func WithClock(clock quartz.Clock) ModelOption {
	return func(m *Model) {
		m.pacer = NewPacer(clock, m.pacer.delay)
	}
}

// New creates the model over an open session.
func New(session *casino.Session, logger *log.Logger, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "bet amount"
	ti.CharLimit = 12
	ti.Width = 20
	ti.Prompt = "> "
	ti.PromptStyle = ActionsStyle

	items := []menuItem{
		{label: "Blackjack", kind: gameBlackjack},
		{label: "High/Low", kind: gameHighLow},
	}
	for _, machine := range session.Machines() {
		items = append(items, menuItem{
			label:   fmt.Sprintf("Slots: %s", machine.Name),
			kind:    gameSlots,
			machine: machine,
		})
	}

	m := &Model{
		session:  session,
		logger:   logger.WithPrefix("tui"),
		pacer:    NewPacer(nil, 600*time.Millisecond),
		betInput: ti,
		items:    items,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case dealerStepMsg:
		return m.advanceDealer()
	case spinRevealMsg:
		return m.revealSpin()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenBet:
			return m.updateBet(msg)
		case screenBlackjack:
			return m.updateBlackjack(msg)
		case screenHighLow:
			return m.updateHighLow(msg)
		case screenSlots:
			return m.updateSlots(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return fmt.Sprintf("Thanks for playing! Final balance: %d\n", m.session.Ledger().Balance())
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Card Hall ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(BalanceStyle.Render(fmt.Sprintf("Balance: %d", m.session.Ledger().Balance())))
	b.WriteString("\n\n")

	switch m.screen {
	case screenMenu:
		b.WriteString(m.viewMenu())
	case screenBet:
		b.WriteString(m.viewBet())
	case screenBlackjack:
		b.WriteString(m.viewBlackjack())
	case screenHighLow:
		b.WriteString(m.viewHighLow())
	case screenSlots:
		b.WriteString(m.viewSlots())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(LoseStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if m.session.Ledger().Broke() {
			m.status = "Out of funds."
			return m, nil
		}
		m.pending = m.items[m.cursor]
		m.screen = screenBet
		m.betInput.SetValue("")
		m.betInput.Focus()
		m.logger.Debug("game selected", "game", m.pending.label)
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) viewMenu() string {
	var b strings.Builder
	b.WriteString("Pick a game:\n\n")
	for i, item := range m.items {
		line := "  " + item.label
		if i == m.cursor {
			line = SelectedStyle.Render("> " + item.label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ move · enter play · q quit"))
	return b.String()
}

func (m *Model) updateBet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.toMenu()
		return m, nil
	case "enter":
		amount, err := strconv.Atoi(strings.TrimSpace(m.betInput.Value()))
		if err != nil {
			m.status = "Bets are numbers."
			return m, nil
		}
		return m.startGame(amount)
	}
	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) viewBet() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Enter your bet for %s:\n\n", m.pending.label)
	b.WriteString(m.betInput.View())
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("enter confirm · esc back"))
	return b.String()
}

// startGame authorizes the stake and moves to the game screen. Bet
// errors keep the player on the prompt with a message.
func (m *Model) startGame(bet int) (tea.Model, tea.Cmd) {
	m.status = ""
	switch m.pending.kind {
	case gameBlackjack:
		round, err := m.session.NewBlackjack(bet)
		if err != nil {
			return m.betFailed(err)
		}
		m.blackjack = round
		m.dealerBusy = false
		m.screen = screenBlackjack
	case gameHighLow:
		round, err := m.session.NewHighLow(bet)
		if err != nil {
			return m.betFailed(err)
		}
		m.highlow = round
		m.revealed = nil
		m.screen = screenHighLow
	case gameSlots:
		if err := m.checkSlotsBet(bet); err != nil {
			return m.betFailed(err)
		}
		m.slotsBet = bet
		m.machine = m.pending.machine
		m.spin = nil
		m.spinning = false
		m.screen = screenSlots
	}
	return m, nil
}

func (m *Model) betFailed(err error) (tea.Model, tea.Cmd) {
	m.status = err.Error()
	m.betInput.SetValue("")
	return m, nil
}

// checkSlotsBet pre-flights a slot stake without holding it; the spin
// itself authorizes per pull.
func (m *Model) checkSlotsBet(bet int) error {
	if bet <= 0 {
		return game.ErrInvalidBet
	}
	if bet > m.session.Ledger().Balance() {
		return game.ErrInsufficientBalance
	}
	return nil
}

func (m *Model) toMenu() {
	m.screen = screenMenu
	m.status = ""
	m.blackjack = nil
	m.highlow = nil
	m.revealed = nil
	m.machine = nil
	m.spin = nil
	m.spinning = false
	m.betInput.Blur()
}

// renderCard styles a card red or black by suit.
func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func renderHand(h *game.Hand) string {
	parts := make([]string, 0, h.Len())
	for _, c := range h.Cards() {
		parts = append(parts, renderCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}
