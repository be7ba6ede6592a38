package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"anchorpoint-it.com/infopanel/internal/system"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(24).
			Align(lipgloss.Center)

	selectedButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("57")).
				Bold(true)

	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 2).
			MarginTop(1)

	infoStyle = lipgloss.NewStyle().
			MarginTop(1)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Useful Information"))
	b.WriteString("\n")

	for i, btn := range buttons {
		style := buttonStyle
		if i == m.cursor {
			style = selectedButtonStyle
		}
		b.WriteString(style.Render(btn.title))
		b.WriteString("\n")
	}

	if m.sheet == publicIPSheet && m.publicIP != "" {
		b.WriteString(infoStyle.Render("Public IP: " + m.publicIP))
		b.WriteString("\n")
	}

	switch m.sheet {
	case dateTimeSheet:
		b.WriteString(sheetStyle.Render(system.FormatDateTime(m.now, m.layout)))
		b.WriteString("\n")
	case publicIPSheet:
		content := m.publicIP
		if m.inflight > 0 {
			content = m.spinner.View() + " Looking up public IP..."
		}
		b.WriteString(sheetStyle.Render(content))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
