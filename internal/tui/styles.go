package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	EchoStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	OutputStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

func RenderError(err string) string {
	return ErrorStyle.Render("error: " + err)
}
