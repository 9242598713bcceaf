package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StackedBar is one column of a two-segment bar chart.
type StackedBar struct {
	Label string
	Lower float64
	Upper float64
}

// Total is the height of the whole bar.
func (b StackedBar) Total() float64 { return b.Lower + b.Upper }

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = max(0, min(idx, len(blocks)-1))
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// ChartWindow returns the [start, end) range of bars that fit in width
// columns while keeping cursor visible.
func ChartWindow(n, cursor, width int) (int, int) {
	fit := (width + 1) / 2 // one column bar plus one column gap
	if fit < 1 {
		fit = 1
	}
	if n <= fit {
		return 0, n
	}
	start := 0
	if cursor >= fit {
		start = cursor - fit + 1
	}
	return start, start + fit
}

// StackedBarChart renders bars with the Lower segment in the Invested color
// and the Upper segment in the Returns color. The bar at cursor is marked
// under the x-axis; pass -1 for no cursor. tick formats y-axis labels.
func StackedBarChart(bars []StackedBar, cursor, width, height int, tick func(float64) string) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active
	if tick == nil {
		tick = func(v float64) string { return fmt.Sprintf("%.0f", v) }
	}

	if width < 15 || height < 3 {
		totals := make([]float64, len(bars))
		for i, b := range bars {
			totals[i] = b.Total()
		}
		return Sparkline(totals, t.Returns)
	}

	maxVal := 0.0
	for _, b := range bars {
		maxVal = math.Max(maxVal, b.Total())
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(int(math.Round(ceiling/tickStep)), 1)

	rowsPerTick := max(height/numIntervals, 2)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(lipgloss.Width(tick(ceiling))+1, 4)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = tick(tickStep * float64(i))
	}

	chartW := max(width-yLabelW-1, 5)

	start, end := ChartWindow(len(bars), cursor, chartW)
	visible := bars[start:end]
	n := len(visible)

	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	barW = max(1, min(barW, 6))
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	surface := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	lowerStyle := lipgloss.NewStyle().Foreground(t.Invested).Background(t.Surface)
	upperStyle := lipgloss.NewStyle().Foreground(t.Returns).Background(t.Surface)

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, bar := range visible {
			if i > 0 && gap > 0 {
				b.WriteString(surface.Render(strings.Repeat(" ", gap)))
			}
			total := bar.Total()

			// A cell belongs to the segment covering its midpoint.
			style := upperStyle
			if bar.Upper <= 0 || bar.Lower >= (rowTop+rowBottom)/2 {
				style = lowerStyle
			}

			switch {
			case total >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case total > rowBottom:
				if bar.Upper <= 0 {
					style = lowerStyle
				} else {
					style = upperStyle
				}
				idx := int((total - rowBottom) / (rowTop - rowBottom) * 8)
				idx = max(1, min(idx, 8))
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(surface.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line with 0 label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	// X-axis labels, skipping any that would collide with the previous one.
	buf := []rune(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for i, bar := range visible {
		pos := i * (barW + gap)
		lbl := []rune(bar.Label)
		if pos <= lastEnd || len(lbl) == 0 {
			continue
		}
		if pos+len(lbl) > axisLen {
			lbl = lbl[:axisLen-pos]
		}
		copy(buf[pos:], lbl)
		lastEnd = pos + len(lbl)
	}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	indent := surface.Render(strings.Repeat(" ", yLabelW+1))
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))

	if cursor >= start && cursor < end {
		pos := (cursor - start) * (barW + gap)
		marker := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(surface.Render(strings.Repeat(" ", pos)))
		b.WriteString(marker.Render(strings.Repeat("▲", barW)))
	}

	return b.String()
}

// ChartLegend renders the two-color key shown under the chart.
func ChartLegend(lower, upper string) string {
	t := theme.Active
	swatch := func(c lipgloss.Color) string {
		return lipgloss.NewStyle().Foreground(c).Background(t.Surface).Render("■")
	}
	text := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)
	return swatch(t.Invested) + space.Render(" ") + text.Render(lower) +
		space.Render("   ") +
		swatch(t.Returns) + space.Render(" ") + text.Render(upper)
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}
