package main

import "github.com/charmbracelet/lipgloss"

// Shared color palette for CLI output, tuned for dark terminals.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	itemStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
)
