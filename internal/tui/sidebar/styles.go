package sidebar

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667788"))

	featureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667788"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224"))

	grabbedStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#0AF")).
			Foreground(lipgloss.Color("#FFF"))

	indicatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#667788")).
				Italic(true)

	activeMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF"))

	announceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"}).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("#334455"))
)

const (
	indicatorBefore = "▲ "
	indicatorAfter  = "▼ "
	collapsedGlyph  = "▸ "
	expandedGlyph   = "▾ "
	grabbedGlyph    = "◉ "
	activeGlyph     = " ●"
)
