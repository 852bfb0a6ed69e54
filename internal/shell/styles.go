package shell

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles holds the styles used for shell messages
type Styles struct {
	Title  lipgloss.Style
	Help   lipgloss.Style
	Prompt lipgloss.Style
	Info   lipgloss.Style
	Error  lipgloss.Style
}

// ColorStyles returns the colored shell styles
func ColorStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		Prompt: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(colorMuted),
		Error: lipgloss.NewStyle().
			Foreground(colorError),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:  plain,
		Help:   plain,
		Prompt: plain,
		Info:   plain,
		Error:  plain,
	}
}
