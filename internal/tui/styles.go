package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorMuted   = lipgloss.Color("240") // Dark gray
	colorGray    = lipgloss.Color("245") // Gray
	colorGreen   = lipgloss.Color("34")
	colorRed     = lipgloss.Color("196")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	similarityStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	insertStyle = lipgloss.NewStyle().Foreground(colorGreen)
	deleteStyle = lipgloss.NewStyle().Foreground(colorRed)
	equalStyle  = lipgloss.NewStyle().Foreground(colorGray)
)
