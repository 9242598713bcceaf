// Package theme defines color themes for the sipdash TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Backdrop      lipgloss.Color // Dimmed background behind an open panel
	Surface       lipgloss.Color // Card backgrounds
	SurfaceBright lipgloss.Color // Buttons, badges, selected chart bar
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // Highlight cards and modal borders
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Invested      lipgloss.Color // Lower chart segment
	Returns       lipgloss.Color // Upper chart segment, gains
	Info          lipgloss.Color // Soft highlight for the enrollment and payment cards
	Warning       lipgloss.Color
}

// Active is the currently selected theme.
var Active = Violet

// Violet is the default brand theme: purple investments, green returns.
var Violet = Theme{
	Name:          "violet",
	Background:    lipgloss.Color("#0F0A1E"),
	Backdrop:      lipgloss.Color("#07050F"),
	Surface:       lipgloss.Color("#1A1233"),
	SurfaceBright: lipgloss.Color("#2A1D52"),
	Border:        lipgloss.Color("#3B2A6B"),
	BorderAccent:  lipgloss.Color("#5D17EB"),
	TextDim:       lipgloss.Color("#6B6287"),
	TextMuted:     lipgloss.Color("#A59CC4"),
	TextPrimary:   lipgloss.Color("#F5F3FF"),
	Accent:        lipgloss.Color("#8A2BE2"),
	AccentBright:  lipgloss.Color("#B58CFF"),
	Invested:      lipgloss.Color("#5D17EB"),
	Returns:       lipgloss.Color("#03AC13"),
	Info:          lipgloss.Color("#7DD3FC"),
	Warning:       lipgloss.Color("#F87171"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Backdrop:      lipgloss.Color("#080707"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Invested:      lipgloss.Color("#8B7EC8"),
	Returns:       lipgloss.Color("#879A39"),
	Info:          lipgloss.Color("#4385BE"),
	Warning:       lipgloss.Color("#D14D41"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Backdrop:      lipgloss.Color("#101119"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	Invested:      lipgloss.Color("#BB9AF7"),
	Returns:       lipgloss.Color("#9ECE6A"),
	Info:          lipgloss.Color("#7DCFFF"),
	Warning:       lipgloss.Color("#F7768E"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Backdrop:      lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("5"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("5"),
	AccentBright:  lipgloss.Color("13"),
	Invested:      lipgloss.Color("5"),
	Returns:       lipgloss.Color("2"),
	Info:          lipgloss.Color("6"),
	Warning:       lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{Violet, FlexokiDark, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to Violet.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Violet
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Next returns the theme after the active one, wrapping around.
func Next() Theme {
	for i, t := range All {
		if t.Name == Active.Name {
			return All[(i+1)%len(All)]
		}
	}
	return All[0]
}

// Names lists every theme name in order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
