package tui

import (
	"strings"

	"github.com/theirongolddev/sipdash/internal/cli"
	"github.com/theirongolddev/sipdash/internal/overlay"
	"github.com/theirongolddev/sipdash/internal/tui/components"
	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const maxPanelWidth = 60

func (a App) panelWidth() int {
	return max(min(maxPanelWidth, a.width-4), 30)
}

// renderPanel draws the modal card for kind.
func (a App) renderPanel(kind overlay.Kind) string {
	t := theme.Active
	w := a.panelWidth()
	inner := w - 8 // border + padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	var title, body, action string
	switch kind {
	case overlay.Withdraw:
		title = "Withdraw Funds"
		body = a.withdrawBody(inner)
		action = components.Button("Confirm Withdrawal", true)
	case overlay.PayNow:
		title = "Pay Investment Installment"
		body = a.payNowBody(inner)
		action = components.Button("Proceed to Pay "+a.currency.Format(a.account.NextDueAmount), true)
	case overlay.Profile:
		title = "Profile Details"
		body = a.profileBody()
		action = components.Button("Edit Profile", true)
	}

	var b strings.Builder
	b.WriteString(components.SpreadLine(titleStyle.Render(title), components.CloseButton(), inner))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(action)
	b.WriteString("\n\n")
	b.WriteString(a.help.ShortHelpView(panelKeyMap{a.keys}.ShortHelp()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		BorderBackground(t.Backdrop).
		Background(t.Surface).
		Width(w-2).
		Padding(1, 3).
		Render(b.String())
}

// panelCard is renderPanel cut to the terminal height. Anything taller would
// be scrolled by the renderer and drift away from the computed bounds.
func (a App) panelCard(kind overlay.Kind) string {
	return truncateHeight(a.renderPanel(kind), max(a.height, 1))
}

// panelRect returns where panelCard lands when centered on screen.
func (a App) panelRect(kind overlay.Kind) overlay.Rect {
	card := a.panelCard(kind)
	w, h := lipgloss.Size(card)
	return overlay.Rect{
		X: max((a.width-w)/2, 0),
		Y: max((a.height-h)/2, 0),
		W: w,
		H: h,
	}
}

// closeRect locates the [x] control of kind in screen coordinates.
func (a App) closeRect(kind overlay.Kind) (overlay.Rect, bool) {
	r, ok := locate(a.panelCard(kind), components.CloseLabel)
	if !ok {
		return overlay.Rect{}, false
	}
	bounds := a.panelRect(kind)
	r.X += bounds.X
	r.Y += bounds.Y
	return r, true
}

func (a App) viewPanel(kind overlay.Kind) string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.panelCard(kind),
		lipgloss.WithWhitespaceBackground(t.Backdrop))
}

func (a App) withdrawBody(inner int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Width(inner)

	return mutedStyle.Render("Amount available for withdrawal: ") +
		valueStyle.Render(a.currency.Format(a.account.WithdrawableBalance)) + "\n" +
		mutedStyle.Render("Estimated processing time: ") +
		valueStyle.Render(a.account.WithdrawalProcessing) + "\n\n" +
		noticeStyle.Render("Notice: Withdrawing your entire balance will end your current investment scheme.")
}

func (a App) payNowBody(inner int) string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Width(inner)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	return textStyle.Render("Your next investment installment of "+
		valueStyle.Render(a.currency.Format(a.account.NextDueAmount))+" is due.") + "\n" +
		textStyle.Render("Please proceed to make the payment.")
}

func (a App) profileBody() string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	p := a.profile
	rows := []struct{ label, value string }{
		{"Member Since:", p.MemberSince},
		{"Investment Plan:", p.Plan},
		{"Total Referrals:", cli.FormatNumber(int64(p.Referrals))},
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(p.Email))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(r.label+" ") + valueStyle.Render(r.value))
	}
	return b.String()
}
