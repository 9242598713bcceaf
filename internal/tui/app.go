// Package tui provides the interactive Bubble Tea dashboard for sipdash.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/sipdash/internal/config"
	"github.com/theirongolddev/sipdash/internal/model"
	"github.com/theirongolddev/sipdash/internal/money"
	"github.com/theirongolddev/sipdash/internal/overlay"
	"github.com/theirongolddev/sipdash/internal/projection"
	"github.com/theirongolddev/sipdash/internal/tui/components"
	"github.com/theirongolddev/sipdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	scheme   model.Scheme
	account  model.Account
	profile  model.Profile
	series   []model.PeriodSnapshot
	summary  model.Summary
	currency money.Currency
	since    time.Time

	// Overlay panels share one pointer registry. The set is a pointer so
	// value copies of App made by Bubble Tea all see the same panels.
	panels *overlay.Set

	log  logrus.FieldLogger
	keys keyMap
	help help.Model

	// UI state
	width  int
	height int
	cursor int // selected chart bar
	scroll int // first visible content line
}

const (
	minTerminalWidth = 60
	compactWidth     = 90
	maxContentWidth  = 110
	minContentHeight = 5
)

// NewApp builds the dashboard from cfg. A nil log discards output.
func NewApp(cfg config.Config, log logrus.FieldLogger) App {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	scheme := cfg.SchemeModel()
	series := projection.ProjectScheme(scheme)

	a := App{
		scheme:   scheme,
		account:  cfg.AccountModel(),
		profile:  cfg.ProfileModel(),
		series:   series,
		summary:  projection.Summarize(series),
		currency: money.New(cfg.Display.Currency, cfg.Display.Locale),
		since:    projection.ActiveSince(time.Now(), scheme.Periods),
		panels:   overlay.NewSet(),
		log:      log,
		keys:     newKeyMap(),
		help:     components.NewHelp(),
		cursor:   len(series) - 1,
	}

	a.panels.OnChange(func(k overlay.Kind, s overlay.State) {
		log.WithFields(logrus.Fields{
			"panel":       k.String(),
			"state":       s.String(),
			"subscribers": a.panels.Registry().Len(),
		}).Debug("panel state changed")
	})

	log.WithFields(logrus.Fields{
		"periods":  scheme.Periods,
		"invested": a.summary.CurrentInvested,
		"returns":  a.summary.CurrentReturn,
	}).Debug("dashboard ready")

	return a
}

// Panels exposes the overlay set so callers can tear it down on exit.
func (a App) Panels() *overlay.Set { return a.panels }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.syncPanelBounds()
		a.scroll = min(a.scroll, a.maxScroll())
		return a, nil

	case tea.MouseMsg:
		if a.width < minTerminalWidth {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			a.press(msg.X, msg.Y)
		case tea.MouseButtonRight, tea.MouseButtonMiddle:
			// Any button press outside an open panel dismisses it.
			if a.panels.AnyOpen() {
				a.panels.Press(msg.X, msg.Y)
			}
		case tea.MouseButtonWheelUp:
			if !a.panels.AnyOpen() {
				a.scroll = max(a.scroll-1, 0)
			}
		case tea.MouseButtonWheelDown:
			if !a.panels.AnyOpen() {
				a.scroll = min(a.scroll+1, a.maxScroll())
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		a.panels.Teardown()
		a.log.Debug("quit")
		return a, tea.Quit
	}

	// An open panel is modal: only the close binding reaches it.
	if top, ok := a.panels.Top(); ok {
		if key.Matches(msg, a.keys.Close) {
			top.Close()
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Withdraw):
		a.openPanel(overlay.Withdraw)
	case key.Matches(msg, a.keys.PayNow):
		a.openPanel(overlay.PayNow)
	case key.Matches(msg, a.keys.Profile):
		a.openPanel(overlay.Profile)
	case key.Matches(msg, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Right):
		if a.cursor < len(a.series)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Up):
		a.scroll = max(a.scroll-1, 0)
	case key.Matches(msg, a.keys.Down):
		a.scroll = min(a.scroll+1, a.maxScroll())
	case key.Matches(msg, a.keys.Theme):
		theme.Active = theme.Next()
		showAll := a.help.ShowAll
		a.help = components.NewHelp()
		a.help.ShowAll = showAll
		a.log.WithField("theme", theme.Active.Name).Debug("theme changed")
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

// press handles a left-button press at screen cell (x, y).
func (a App) press(x, y int) {
	if top, ok := a.panels.Top(); ok {
		if r, ok := a.closeRect(top.Kind()); ok && r.Contains(x, y) {
			top.Close()
			return
		}
		// Presses outside the panel's bounds close it through its subscription.
		a.panels.Press(x, y)
		return
	}

	for _, hb := range a.triggerHitboxes() {
		if hb.rect.Contains(x, y) {
			a.openPanel(hb.kind)
			return
		}
	}
}

func (a App) openPanel(kind overlay.Kind) {
	p := a.panels.Panel(kind)
	p.SetBounds(a.panelRect(kind))
	p.Open()
}

func (a App) syncPanelBounds() {
	for _, k := range overlay.Kinds {
		if p := a.panels.Panel(k); p.IsOpen() {
			p.SetBounds(a.panelRect(k))
		}
	}
}

type hitbox struct {
	kind overlay.Kind
	rect overlay.Rect
}

// triggerHitboxes finds the panel trigger buttons in the rendered main view.
func (a App) triggerHitboxes() []hitbox {
	view := a.viewMain()
	triggers := []struct {
		kind  overlay.Kind
		label string
	}{
		{overlay.Withdraw, labelWithdraw},
		{overlay.PayNow, labelPayNow},
		{overlay.Profile, labelProfile},
	}

	var out []hitbox
	for _, tr := range triggers {
		if r, ok := locate(view, components.ButtonLabel(tr.label)); ok {
			out = append(out, hitbox{kind: tr.kind, rect: r})
		}
	}
	return out
}

// locate returns the cell rectangle of the first occurrence of label in a
// rendered, possibly styled, block of text.
func locate(rendered, label string) (overlay.Rect, bool) {
	for y, line := range strings.Split(rendered, "\n") {
		plain := ansi.Strip(line)
		if idx := strings.Index(plain, label); idx >= 0 {
			return overlay.Rect{
				X: ansi.StringWidth(plain[:idx]),
				Y: y,
				W: ansi.StringWidth(label),
				H: 1,
			}, true
		}
	}
	return overlay.Rect{}, false
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if top, ok := a.panels.Top(); ok {
		return a.viewPanel(top.Kind())
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  sipdash needs at least %d columns.\n  Current width: %d\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) statusBar() string {
	return components.RenderStatusBar(a.width, a.help, a.keys, theme.Active.Name)
}

// contentHeight is the number of dashboard lines visible above the status bar.
func (a App) contentHeight() int {
	return max(a.height-lipgloss.Height(a.statusBar()), minContentHeight)
}

func (a App) maxScroll() int {
	if a.width < minTerminalWidth {
		return 0
	}
	lines := lipgloss.Height(a.renderDashboard(a.contentWidth()))
	return max(lines-a.contentHeight(), 0)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	statusBar := a.statusBar()
	contentH := a.contentHeight()

	content := a.renderDashboard(cw)
	if a.scroll > 0 {
		lines := strings.Split(content, "\n")
		start := min(a.scroll, len(lines))
		content = strings.Join(lines[start:], "\n")
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)

	// Center the content column when the terminal is wider than it.
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, content, statusBar)

	// Never hand the renderer more lines than the terminal has; it would drop
	// the top rows and shift every hitbox.
	return truncateHeight(lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background)), h)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
