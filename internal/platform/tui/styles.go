package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	flavorStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245"))

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	gallowsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	missedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	clockLowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
