package console

import "github.com/charmbracelet/bubbles/key"

type consoleKeyMap struct {
	quit       key.Binding
	toggleRail key.Binding
	pageUp     key.Binding
	pageDown   key.Binding
}

func newConsoleKeyMap() *consoleKeyMap {
	return &consoleKeyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		toggleRail: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle sidebar"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

func (m consoleKeyMap) help() []key.Binding {
	return []key.Binding{m.toggleRail, m.quit}
}
