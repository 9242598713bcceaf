package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/sipdash/internal/cli"
	"github.com/theirongolddev/sipdash/internal/tui/components"
	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Trigger button labels. Mouse hit-testing looks these up in the rendered view.
const (
	labelWithdraw = "Withdraw"
	labelPayNow   = "Pay now"
	labelProfile  = "Profile"
)

func (a App) renderHeader(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Background).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
	fill := lipgloss.NewStyle().Background(t.Background)

	title := titleStyle.Render("◈ Investor's Dashboard")
	button := components.Button(labelProfile, false)
	gap := max(cw-lipgloss.Width(title)-lipgloss.Width(button), 1)

	var b strings.Builder
	b.WriteString(title + fill.Render(strings.Repeat(" ", gap)) + button)
	b.WriteString("\n")
	b.WriteString(subStyle.Render("  Welcome back, " + a.profile.Name))
	return b.String()
}

func (a App) renderDashboard(cw int) string {
	var b strings.Builder

	b.WriteString(a.renderHeader(cw))
	b.WriteString("\n\n")

	b.WriteString(a.renderWithdrawableCard(cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.MetricCard(
			"Months Enrolled",
			cli.FormatPeriods(a.scheme.Periods),
			"Active since "+cli.FormatMonthYear(a.since),
			halves[0],
		),
		components.MetricCard(
			"Total Invested",
			a.currency.Format(a.summary.CurrentInvested),
			a.currency.Format(a.scheme.MonthlyInvestment)+" per month (average)",
			halves[1],
		),
	}))
	b.WriteString("\n")

	b.WriteString(a.renderOverviewCard(cw))
	b.WriteString("\n")

	b.WriteString(a.renderNextPaymentCard(cw))

	return b.String()
}

func (a App) renderWithdrawableCard(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.Returns).Background(t.Surface)

	body := components.SpreadLine(
		valueStyle.Render(a.currency.Format(a.account.WithdrawableBalance)),
		components.Button(labelWithdraw, true),
		inner,
	) + "\n" + noteStyle.Render("Ready to withdraw anytime")

	return components.HighlightCard("Available for Withdrawal", body, cw)
}

func (a App) renderOverviewCard(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	gainStyle := lipgloss.NewStyle().Foreground(t.Returns).Background(t.Surface).Bold(true)

	var b strings.Builder
	b.WriteString(components.SpreadLine(
		titleStyle.Render("Investment Overview"),
		components.Badge(cli.FormatReturnBadge(a.summary), t.Returns),
		inner,
	))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Your investment growth over time"))
	b.WriteString("\n\n")

	if len(a.series) == 0 {
		b.WriteString(mutedStyle.Render("No installments yet."))
	} else {
		chartH := 8
		if a.isCompactLayout() {
			chartH = 6
		}
		b.WriteString(components.StackedBarChart(a.chartBars(), a.cursor, inner, chartH, a.currency.FormatCompact))
		b.WriteString("\n\n")
		b.WriteString(components.ChartLegend("Invested", "Returns"))
		b.WriteString("\n")
		b.WriteString(a.renderTooltip())
	}
	b.WriteString("\n\n")

	stats := []struct {
		label, value string
		gain         bool
	}{
		{"Monthly Investment", a.currency.Format(a.scheme.MonthlyInvestment), false},
		{"Current Monthly Returns", a.currency.Format(a.scheme.MonthlyReturn), true},
		{"Net Value", a.currency.Format(a.summary.NetValue), false},
	}
	for i, s := range stats {
		style := valueStyle
		if s.gain {
			style = gainStyle
		}
		b.WriteString(components.SpreadLine(mutedStyle.Render(s.label), style.Render(s.value), inner))
		if i < len(stats)-1 {
			b.WriteString("\n")
		}
	}

	if a.summary.NetValue > 0 {
		share := float64(a.summary.CurrentReturn) / float64(a.summary.NetValue)
		labelW := len("Returns share")
		barW := max(inner-labelW-6, 4)
		b.WriteString("\n")
		b.WriteString(components.ShareBar("Returns share", share, labelW, barW))
	}

	return components.ContentCard("", b.String(), cw)
}

// renderTooltip describes the period under the chart cursor.
func (a App) renderTooltip() string {
	t := theme.Active
	if a.cursor < 0 || a.cursor >= len(a.series) {
		return ""
	}
	p := a.series[a.cursor]

	labelStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	investStyle := lipgloss.NewStyle().Foreground(t.Invested).Background(t.Surface).Bold(true)
	returnStyle := lipgloss.NewStyle().Foreground(t.Returns).Background(t.Surface).Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%s (#%d)", p.Label, p.Index+1)) +
		mutedStyle.Render("  Invested ") + investStyle.Render(a.currency.Format(p.CumulativeInvested)) +
		mutedStyle.Render("  Returns ") + returnStyle.Render(a.currency.Format(p.CumulativeReturn)) +
		mutedStyle.Render("  Total ") + totalStyle.Render(a.currency.Format(p.Total()))
}

func (a App) chartBars() []components.StackedBar {
	bars := make([]components.StackedBar, len(a.series))
	for i, p := range a.series {
		bars[i] = components.StackedBar{
			Label: p.Label,
			Lower: float64(p.CumulativeInvested),
			Upper: float64(p.CumulativeReturn),
		}
	}
	return bars
}

func (a App) renderNextPaymentCard(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	gainStyle := lipgloss.NewStyle().Foreground(t.Returns).Background(t.Surface).Bold(true)

	var b strings.Builder
	b.WriteString(components.SpreadLine(
		titleStyle.Render("Next Payment Due"),
		components.Button(labelPayNow, false),
		inner,
	))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Your upcoming investment installment"))
	b.WriteString("\n\n")

	b.WriteString(components.SpreadLine(mutedStyle.Render("Due Date"), valueStyle.Render(a.account.NextDueDate), inner))
	b.WriteString("\n")
	b.WriteString(components.SpreadLine(mutedStyle.Render("Amount Due"), valueStyle.Render(a.currency.Format(a.account.NextDueAmount)), inner))
	b.WriteString("\n")
	b.WriteString(components.SpreadLine(mutedStyle.Render("Expected Return"), gainStyle.Render(a.currency.Format(a.scheme.MonthlyReturn)+" ↗"), inner))
	b.WriteString("\n\n")

	b.WriteString(components.SpreadLine(
		valueStyle.Render("Auto-debit scheduled"),
		components.Badge("Active", t.Returns),
		inner,
	))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Payment will be automatically processed on the due date"))

	return components.HighlightCard("", b.String(), cw)
}
