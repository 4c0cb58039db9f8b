package tui

import "github.com/charmbracelet/lipgloss"

var (
	green  = lipgloss.Color("#00FF00")
	yellow = lipgloss.Color("#FFFF00")
	red    = lipgloss.Color("#FF0000")
	cyan   = lipgloss.Color("#00FFFF")
	gray   = lipgloss.Color("#808080")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(gray)

	arrowStyle = lipgloss.NewStyle().
			Foreground(gray).
			Faint(true)

	outputStyle = lipgloss.NewStyle().
			Bold(true)

	homeSourceStyle = lipgloss.NewStyle().
			Foreground(green)

	fallbackSourceStyle = lipgloss.NewStyle().
				Foreground(yellow)

	lastResortSourceStyle = lipgloss.NewStyle().
				Foreground(red)

	unchangedSourceStyle = lipgloss.NewStyle().
				Foreground(gray).
				Faint(true)
)
