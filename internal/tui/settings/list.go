package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/Paintersrp/studio/internal/config"
)

// Item titles double as the config field names shown in the list.
const (
	itemBackend  = "Backend"
	itemStyle    = "PreviewStyle"
	itemSidebar  = "Sidebar"
	itemWidth    = "SidebarWidth"
	itemManifest = "CatalogManifest"
)

type ListItem struct {
	title       string
	description string
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.description }
func (i ListItem) FilterValue() string { return i.title }

type listKeyMap struct {
	toggleTitleBar   key.Binding
	toggleStatusBar  key.Binding
	togglePagination key.Binding
	toggleHelpMenu   key.Binding
	toggleEditItem   key.Binding
	exitInputMode    key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "toggle title"),
		),
		toggleStatusBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle status"),
		),
		togglePagination: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle pagination"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit input mode"),
		),
	}
}

// ListModel drives the settings screen. At most one editor is open at a
// time: a promptkit selection for enumerated fields, the text input for
// free-form ones.
type ListModel struct {
	list         list.Model
	keys         *listKeyMap
	delegateKeys *delegateKeyMap
	config       *config.Config
	configInput  ListInputModel
	inputActive  bool
	sel          *selection.Model[string]
	selField     string
	selActive    bool
}

func NewListModel(cfg *config.Config) ListModel {
	delegateKeys := newDelegateKeyMap()
	listKeys := newListKeyMap()
	configInput := initialInputModel()

	delegate := newItemDelegate(delegateKeys, cfg)
	configList := list.New(settingsItems(cfg), delegate, 0, 0)
	configList.Title = "Settings"
	configList.Styles.Title = titleStyle
	configList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			listKeys.toggleTitleBar,
			listKeys.toggleStatusBar,
			listKeys.togglePagination,
			listKeys.toggleHelpMenu,
		}
	}

	return ListModel{
		list:         configList,
		keys:         listKeys,
		delegateKeys: delegateKeys,
		config:       cfg,
		configInput:  configInput,
	}
}

func settingsItems(cfg *config.Config) []list.Item {
	sidebarState := "expanded"
	if cfg.Sidebar.Collapsed {
		sidebarState = "rail"
	}
	manifest := cfg.CatalogManifest
	if manifest == "" {
		manifest = "built-in catalog"
	}

	return []list.Item{
		ListItem{title: itemBackend, description: cfg.Storage.Backend},
		ListItem{title: itemStyle, description: cfg.Preview.Style},
		ListItem{title: itemSidebar, description: sidebarState},
		ListItem{title: itemWidth, description: strconv.Itoa(cfg.Sidebar.Width)},
		ListItem{title: itemManifest, description: manifest},
	}
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// Don't match any of the keys below if we're actively filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}

		if m.selActive {
			return m.handleSelectUpdate(msg)
		}
		if m.inputActive {
			return m.handleInputUpdate(msg)
		}

		switch {
		case key.Matches(msg, m.keys.toggleEditItem):
			return m.startEdit()

		case key.Matches(msg, m.keys.toggleTitleBar):
			v := !m.list.ShowTitle()
			m.list.SetShowTitle(v)
			m.list.SetShowFilter(v)
			m.list.SetFilteringEnabled(v)
			return m, nil

		case key.Matches(msg, m.keys.toggleStatusBar):
			m.list.SetShowStatusBar(!m.list.ShowStatusBar())
			return m, nil

		case key.Matches(msg, m.keys.togglePagination):
			m.list.SetShowPagination(!m.list.ShowPagination())
			return m, nil

		case key.Matches(msg, m.keys.toggleHelpMenu):
			m.list.SetShowHelp(!m.list.ShowHelp())
			return m, nil
		}
	}

	// This will also call our delegate's update function.
	newListModel, cmd := m.list.Update(msg)
	m.list = newListModel
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// startEdit opens the editor matching the selected item. Enumerated
// fields get a selection, free-form fields get the text input seeded
// with the current value.
func (m ListModel) startEdit() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return m, nil
	}

	switch item.Title() {
	case itemBackend:
		return m.startSelection(itemBackend, []string{"file", "memory", "postgres"})
	case itemStyle:
		return m.startSelection(itemStyle, []string{"dracula", "dark", "light", "notty", "ascii", "auto", "pink"})
	case itemSidebar:
		return m.startSelection(itemSidebar, []string{"expanded", "rail"})
	case itemWidth:
		return m.startInput(itemWidth, strconv.Itoa(m.config.Sidebar.Width))
	case itemManifest:
		return m.startInput(itemManifest, m.config.CatalogManifest)
	}

	return m, nil
}

func (m ListModel) startSelection(field string, choices []string) (tea.Model, tea.Cmd) {
	sel := selection.New(fmt.Sprintf("Please select a value for %s.", field), choices)
	sel.Filter = nil

	m.sel = selection.NewModel(sel)
	m.selField = field
	m.selActive = true

	return m, m.sel.Init()
}

func (m ListModel) startInput(field, value string) (tea.Model, tea.Cmd) {
	m.configInput.Title = field
	m.configInput.Input.SetValue(value)
	m.configInput.Input.CursorEnd()
	cmd := m.configInput.Input.Focus()
	m.inputActive = true

	return m, cmd
}

func (m ListModel) handleSelectUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInputMode) {
		m.selActive = false
		return m, nil
	}

	_, cmd := m.sel.Update(msg)

	if key.Matches(msg, m.keys.toggleEditItem) {
		choice, err := m.sel.Value()
		if err != nil {
			return m, nil
		}
		m.selActive = false

		if err := m.applyChoice(m.selField, choice); err != nil {
			statusCmd := m.list.NewStatusMessage(statusMessageStyle("Error saving the configuration: " + err.Error()))
			return m, statusCmd
		}

		statusCmd := m.list.NewStatusMessage(statusMessageStyle("Updated and Saved: " + m.selField))
		itemsCmd := m.list.SetItems(settingsItems(m.config))
		return m, tea.Batch(statusCmd, itemsCmd)
	}

	return m, cmd
}

func (m ListModel) handleInputUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInputMode) {
		m.configInput.Input.Reset()
		m.configInput.Input.Blur()
		m.inputActive = false
		return m, nil
	}

	if key.Matches(msg, m.keys.toggleEditItem) {
		value := m.configInput.Input.Value()
		m.configInput.Input.Reset()
		m.configInput.Input.Blur()
		m.inputActive = false

		if err := m.applyInput(m.configInput.Title, value); err != nil {
			statusCmd := m.list.NewStatusMessage(statusMessageStyle("Error saving the configuration: " + err.Error()))
			return m, statusCmd
		}

		statusCmd := m.list.NewStatusMessage(statusMessageStyle("Updated and Saved: " + m.configInput.Title))
		itemsCmd := m.list.SetItems(settingsItems(m.config))
		return m, tea.Batch(statusCmd, itemsCmd)
	}

	var cmd tea.Cmd
	m.configInput.Input, cmd = m.configInput.Input.Update(msg)
	return m, cmd
}

func (m ListModel) applyChoice(field, choice string) error {
	switch field {
	case itemBackend:
		return m.config.ChangeBackend(choice)
	case itemStyle:
		return m.config.ChangeStyle(choice)
	case itemSidebar:
		return m.config.SetSidebarCollapsed(choice == "rail")
	}
	return nil
}

func (m ListModel) applyInput(field, value string) error {
	switch field {
	case itemWidth:
		width, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("sidebar width must be a number, got %q", value)
		}
		return m.config.SetSidebarWidth(width)
	case itemManifest:
		return m.config.SetCatalogManifest(strings.TrimSpace(value))
	}
	return nil
}

func (m ListModel) View() string {
	if m.inputActive {
		return appStyle.Render(inputStyle.Render(m.configInput.View()))
	}
	if m.selActive {
		return appStyle.Render(m.sel.View())
	}
	return appStyle.Render(m.list.View())
}

// Run opens the settings screen and blocks until it exits.
func Run(cfg *config.Config) error {
	if _, err := tea.NewProgram(NewListModel(cfg), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("settings exited: %w", err)
	}

	return nil
}
