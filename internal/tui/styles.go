// Package tui implements the interactive renderlab demo: a windowed list
// over a large generated dataset with a debounced filter, lazy row
// hydration, and a live stats panel.
package tui

import "github.com/charmbracelet/lipgloss"

// Demo color palette.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	statusPendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	statusCompletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)
