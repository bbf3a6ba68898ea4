package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/displayctl/internal/display"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

const helpLine = "j/k move · e toggle · p primary · r rotate · a apply · R reload · q quit"

// View renders the panel.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("displayctl"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.statusMessage != "" {
		if m.statusIsError {
			b.WriteString(errorStyle.Render(m.statusMessage))
		} else {
			b.WriteString(statusStyle.Render(m.statusMessage))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	return b.String()
}

// renderRows renders one line per display for the viewport.
func (m *Model) renderRows() string {
	if len(m.displays) == 0 {
		return helpStyle.Render("no connected displays")
	}
	lines := make([]string, 0, len(m.displays))
	for i, d := range m.displays {
		line := renderRow(d)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else if d.Pending().Any() {
			line = pendingStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderRow formats one display as a row.
func renderRow(d *display.Display) string {
	state := "off"
	if d.IsEnabled() {
		state = "on"
	}
	primary := " "
	if d.IsPrimary() {
		primary = "*"
	}
	resolution := "-"
	if !d.Resolution().IsZero() {
		resolution = d.Resolution().String()
	}
	pending := ""
	if d.Pending().Any() {
		pending = " (pending)"
	}
	return fmt.Sprintf("%-12s %-4s %s %-11s %-8s%s",
		d.Name(), state, primary, resolution, d.Rotation(), pending)
}
