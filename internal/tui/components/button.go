package components

import (
	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ButtonLabel is the plain text a button renders as. Mouse hit-testing
// searches the rendered view for this exact text.
func ButtonLabel(label string) string {
	return "[ " + label + " ]"
}

// CloseLabel is the close control drawn in every panel header.
const CloseLabel = "[x]"

// Button renders a clickable action. primary buttons use the accent fill.
func Button(label string, primary bool) string {
	t := theme.Active
	style := lipgloss.NewStyle().Bold(true)
	if primary {
		style = style.Foreground(t.TextPrimary).Background(t.Accent)
	} else {
		style = style.Foreground(t.AccentBright).Background(t.SurfaceBright)
	}
	return style.Render(ButtonLabel(label))
}

// CloseButton renders the panel close control.
func CloseButton() string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(CloseLabel)
}

// Badge renders a small colored pill such as "+273% Returns" or "Active".
func Badge(text string, color lipgloss.Color) string {
	if text == "" {
		return ""
	}
	t := theme.Active
	return lipgloss.NewStyle().
		Foreground(color).
		Background(t.SurfaceBright).
		Bold(true).
		Padding(0, 1).
		Render(text)
}
