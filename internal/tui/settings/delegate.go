package settings

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/studio/internal/config"
)

func newItemDelegate(keys *delegateKeyMap, cfg *config.Config) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		item, ok := m.SelectedItem().(ListItem)
		if !ok {
			return nil
		}

		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.reset) {
			if err := resetField(cfg, item.Title()); err != nil {
				return m.NewStatusMessage(statusMessageStyle("Error saving the configuration: " + err.Error()))
			}

			return tea.Batch(
				m.NewStatusMessage(statusMessageStyle("Reset to default: "+item.Title())),
				m.SetItems(settingsItems(cfg)),
			)
		}

		return nil
	}

	help := []key.Binding{keys.reset}

	d.ShortHelpFunc = func() []key.Binding {
		return help
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}

	return d
}

// resetField clears the field and saves; Save fills the default back in
// on the way out.
func resetField(cfg *config.Config, field string) error {
	switch field {
	case itemBackend:
		cfg.Storage.Backend = ""
	case itemStyle:
		cfg.Preview.Style = ""
	case itemSidebar:
		cfg.Sidebar.Collapsed = false
	case itemWidth:
		cfg.Sidebar.Width = 0
	case itemManifest:
		cfg.CatalogManifest = ""
	}

	return cfg.Save()
}

type delegateKeyMap struct {
	reset key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset to default"),
		),
	}
}
