package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/termfab/internal/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color

	// Button styles, one per interaction state.
	ButtonIdle  lipgloss.Style
	ButtonHover lipgloss.Style
	ButtonDrag  lipgloss.Style
	ButtonFocus lipgloss.Style

	Hint      lipgloss.Style
	StatusBar lipgloss.Style
	Title     lipgloss.Style
}

// NewTheme builds a theme from the configured palette.
func NewTheme(cfg config.ThemeConfig) Theme {
	accent := lipgloss.Color(cfg.Accent)
	text := lipgloss.Color(cfg.Text)
	muted := lipgloss.Color(cfg.Muted)

	button := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		Foreground(text).
		BorderForeground(muted)

	return Theme{
		Accent: accent,
		Text:   text,
		Muted:  muted,

		ButtonIdle:  button,
		ButtonHover: button.BorderForeground(accent),
		ButtonDrag:  button.BorderForeground(accent).Bold(true),
		ButtonFocus: button.Border(lipgloss.ThickBorder()).BorderForeground(accent),

		Hint:      lipgloss.NewStyle().Foreground(muted),
		StatusBar: lipgloss.NewStyle().Foreground(muted),
		Title:     lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}
