package sidebar

import "github.com/charmbracelet/bubbles/key"

type sidebarKeyMap struct {
	selectEntry key.Binding
	grab        key.Binding
	commit      key.Binding
	cancel      key.Binding
	moveUp      key.Binding
	moveDown    key.Binding
}

func newSidebarKeyMap() *sidebarKeyMap {
	return &sidebarKeyMap{
		selectEntry: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open / toggle"),
		),
		// Terminals report the spacebar inconsistently, so both
		// spellings are bound.
		grab: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "grab"),
		),
		commit: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("↵", "place"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		moveUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "move up"),
		),
		moveDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "move down"),
		),
	}
}

func (m sidebarKeyMap) grabHelp() []key.Binding {
	return []key.Binding{m.moveUp, m.moveDown, m.commit, m.cancel}
}

func (m sidebarKeyMap) baseHelp() []key.Binding {
	return []key.Binding{m.selectEntry, m.grab}
}
