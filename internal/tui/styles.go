package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	panelStyle   = lipgloss.NewStyle().MarginTop(1)
)
