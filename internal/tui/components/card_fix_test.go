package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/sipdash/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for total := 10; total < 40; total++ {
		for n := 1; n <= 4; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("violet")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no ANSI codes; padding would show the terminal background", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("violet")

	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	joined := CardRow([]string{tallCard, shortCard})
	want := lipgloss.Width(tallCard) + lipgloss.Width(shortCard)
	for i, line := range strings.Split(joined, "\n") {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
	}
}

func TestContentCardOuterWidth(t *testing.T) {
	for _, w := range []int{20, 33, 60} {
		if got := lipgloss.Width(ContentCard("Title", "body", w)); got != w {
			t.Errorf("ContentCard width %d rendered as %d", w, got)
		}
		if got := lipgloss.Width(HighlightCard("", "body", w)); got != w {
			t.Errorf("HighlightCard width %d rendered as %d", w, got)
		}
	}
}

func TestButtonRendersLabel(t *testing.T) {
	for _, primary := range []bool{true, false} {
		b := Button("Withdraw", primary)
		if !strings.Contains(b, ButtonLabel("Withdraw")) {
			t.Fatalf("Button(primary=%v) = %q, missing label", primary, b)
		}
		if lipgloss.Width(b) != len("[ Withdraw ]") {
			t.Fatalf("Button width = %d", lipgloss.Width(b))
		}
	}
}

func TestBadgeEmptyText(t *testing.T) {
	if got := Badge("", theme.Active.Returns); got != "" {
		t.Fatalf("Badge(\"\") = %q, want empty", got)
	}
	if got := Badge("Active", theme.Active.Returns); !strings.Contains(got, "Active") {
		t.Fatalf("Badge missing text: %q", got)
	}
}
