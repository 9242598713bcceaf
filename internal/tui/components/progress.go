package components

import (
	"fmt"

	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders how much of a whole is made up of returns, e.g. the
// returns portion of net value. pct is clamped to [0, 1].
func ShareBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	pct = max(0, min(pct, 1))

	bar := progress.New(
		progress.WithSolidFill(string(t.Returns)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.Invested)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.Returns).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
