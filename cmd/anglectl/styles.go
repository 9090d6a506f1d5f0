package main

import "github.com/charmbracelet/lipgloss"

const (
	colorMuted     = lipgloss.Color("#6B7280")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorHighlight = lipgloss.Color("#3B82F6")
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(9)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	trueStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	falseStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)
