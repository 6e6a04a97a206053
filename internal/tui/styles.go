package tui

import "github.com/charmbracelet/lipgloss"

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	promptBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
