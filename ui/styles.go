// Package ui holds the lipgloss styles shared by the tutorial programs.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#8BC34A")
	danger = lipgloss.Color("#e53935")
	info   = lipgloss.Color("#2196F3")

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	resultStyle = lipgloss.NewStyle().
			Foreground(info).
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)

	noteStyle = lipgloss.NewStyle().Faint(true)
)

// Banner renders the program title box.
func Banner(title string) string { return bannerStyle.Render(title) }

// Result renders the final output panel.
func Result(text string) string { return resultStyle.Render(text) }

// Error renders a validation or failure line.
func Error(text string) string { return errorStyle.Render(text) }

// Note renders a secondary hint line.
func Note(text string) string { return noteStyle.Render(text) }
