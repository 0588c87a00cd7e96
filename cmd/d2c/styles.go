package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5599FF"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00CC66"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	statusRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CC66"))
	statusPending = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))
	statusFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
)
