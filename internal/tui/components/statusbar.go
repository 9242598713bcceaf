package components

import (
	"strings"

	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// NewHelp returns a help model styled with the active theme.
func NewHelp() help.Model {
	t := theme.Active
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.AccentBright)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	h.Styles.Ellipsis = h.Styles.ShortSeparator
	return h
}

// RenderStatusBar renders the bottom status bar: key help on the left and
// an optional note (such as the theme name) on the right.
func RenderStatusBar(width int, h help.Model, keys help.KeyMap, right string) string {
	t := theme.Active

	h.Width = width - lipgloss.Width(right) - 2
	left := " " + h.View(keys)
	if right != "" {
		right += " "
	}

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Background).
		Width(width)

	if lipgloss.Height(left) > 1 {
		return style.Render(left + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Right, right))
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
