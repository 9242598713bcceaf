package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Withdraw key.Binding
	PayNow   key.Binding
	Profile  key.Binding
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Withdraw: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "withdraw")),
		PayNow:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pay now")),
		Profile:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "profile")),
		Close:    key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close panel")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Withdraw, k.PayNow, k.Profile, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Withdraw, k.PayNow, k.Profile, k.Close},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Theme},
		{k.Help, k.Quit},
	}
}

// panelKeyMap is shown in the status bar while a panel is open.
type panelKeyMap struct{ keyMap }

func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Quit}
}

func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
