package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
)

// Pacer issues delayed messages on an injectable clock, giving dealer
// draws and slot spins their reveal beat. Tests install quartz's mock
// clock and advance it instead of sleeping.
type Pacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewPacer creates a pacer. A nil clock uses the real one.
func NewPacer(clock quartz.Clock, delay time.Duration) *Pacer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Pacer{clock: clock, delay: delay}
}

// Wait returns a command delivering msg after the pacer delay.
func (p *Pacer) Wait(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		timer := p.clock.NewTimer(p.delay)
		<-timer.C
		return msg
	}
}
