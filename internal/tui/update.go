package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Close):
			m.sheet = noSheet
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(buttons)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(buttons)
		case key.Matches(msg, m.keys.Press):
			return m.press(m.cursor)
		case key.Matches(msg, m.keys.DateTime):
			return m.press(0)
		case key.Matches(msg, m.keys.PublicIP):
			return m.press(1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.now = m.clock()
		return m, tickCmd()

	case ResolvedMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		if msg.Result.OK() {
			m.publicIP = msg.Result.Address
		} else {
			m.publicIP = ""
			m.logger.Info("public ip unavailable for display",
				zap.Stringer("kind", msg.Result.Failure.Kind))
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// press activates the button at idx. Pressing the button whose sheet is
// already open closes it. Every press of the public IP button starts a
// lookup, whether it opens or closes the sheet.
func (m Model) press(idx int) (tea.Model, tea.Cmd) {
	m.cursor = idx
	target := buttons[idx].opens
	if m.sheet == target {
		m.sheet = noSheet
	} else {
		m.sheet = target
	}

	switch target {
	case dateTimeSheet:
		m.now = m.clock()
	case publicIPSheet:
		m.inflight++
		return m, lookupCmd(m.ctx, m.resolver)
	}
	return m, nil
}
