package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateSlots(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.spinning {
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.toMenu()
		return m, nil
	case "c":
		// Back to the bet prompt, same machine.
		m.screen = screenBet
		m.spin = nil
		m.betInput.SetValue("")
		m.betInput.Focus()
		return m, nil
	case "enter", "s", " ":
		if err := m.checkSlotsBet(m.slotsBet); err != nil {
			m.status = fmt.Sprintf("Cannot spin: %s. Change your bet.", err)
			return m, nil
		}
		m.status = ""
		m.spinning = true
		return m, m.pacer.Wait(spinRevealMsg{})
	}
	return m, nil
}

func (m *Model) revealSpin() (tea.Model, tea.Cmd) {
	m.spinning = false
	if m.machine == nil {
		return m, nil
	}
	res, err := m.session.Spin(m.machine, m.slotsBet)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.spin = res
	m.logger.Debug("spin revealed", "machine", m.machine.Name,
		"multiplier", res.Multiplier, "net", res.Net)
	return m, nil
}

func (m *Model) viewSlots() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s · bet %d\n\n", m.machine.Name, m.slotsBet)

	switch {
	case m.spinning:
		b.WriteString(InfoStyle.Render("Spinning..."))
		b.WriteString("\n")
	case m.spin != nil:
		b.WriteString(m.renderGrid())
		b.WriteString("\n")
		if m.spin.Multiplier > 0 {
			lines := make([]string, len(m.spin.Lines))
			for i, lr := range m.spin.Lines {
				lines[i] = fmt.Sprintf("%d", lr.Line)
			}
			b.WriteString(WinStyle.Render(fmt.Sprintf(
				"WIN on line(s) %s · x%d · net %+d",
				strings.Join(lines, ", "), m.spin.Multiplier, m.spin.Net)))
		} else {
			b.WriteString(LoseStyle.Render(fmt.Sprintf("No winning lines. %+d", m.spin.Net)))
		}
		b.WriteString("\n")
	default:
		b.WriteString(InfoStyle.Render("Pull the lever."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("enter/s spin · c change bet · q back"))
	return b.String()
}

// renderGrid draws the spun window with winning cells highlighted.
func (m *Model) renderGrid() string {
	winning := make(map[int]bool)
	for _, lr := range m.spin.Lines {
		line := m.machine.Paylines[lr.Line-1]
		for _, cell := range line {
			winning[cell] = true
		}
	}

	rows := make([]string, 0, m.machine.Rows)
	for r := 0; r < m.machine.Rows; r++ {
		cells := make([]string, 0, m.machine.Cols)
		for c := 0; c < m.machine.Cols; c++ {
			idx := r*m.machine.Cols + c
			style := GridCellStyle
			if winning[idx] {
				style = WinningCellStyle
			}
			cells = append(cells, style.Render(string(m.spin.Grid[idx])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
