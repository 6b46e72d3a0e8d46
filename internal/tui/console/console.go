// Package console is the root model of the authoring console: the
// sidebar on the left, a rendered reference document for the previewed
// mode on the right, and a one-line footer. It owns window sizing,
// routes input between the panes, and reacts to external rewrites of
// the persisted arrangement.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/studio/internal/cache"
	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/internal/tui/sidebar"
	"github.com/Paintersrp/studio/utils"
)

const (
	footerHeight       = 1
	previewTitleHeight = 1

	// railWidth fits the collapsed sidebar: a two-cell gutter, a
	// two-cell icon, one spare column, and the border.
	railWidth = 6
)

type Model struct {
	state   *state.State
	sidebar *sidebar.Model
	preview viewport.Model
	cache   *cache.RenderCache
	keys    *consoleKeyMap

	width  int
	height int

	previewMode string
	status      string
}

func NewModel(s *state.State) *Model {
	sb := sidebar.New(s.Organizer, s.Catalog)
	sb.SetRail(s.Config.Sidebar.Collapsed)
	sb.SetActiveMode(s.Config.ActiveMode)

	previewMode := s.Config.ActiveMode
	if _, ok := s.Catalog.Mode(previewMode); !ok {
		previewMode = ""
		if len(s.Catalog.Modes) > 0 {
			previewMode = s.Catalog.Modes[0].ID
		}
	}

	return &Model{
		state:       s,
		sidebar:     sb,
		preview:     viewport.New(0, 0),
		cache:       cache.NewRenderCache(s.Config.Preview.CacheSize),
		keys:        newConsoleKeyMap(),
		previewMode: previewMode,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.watchCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.syncPreview()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sidebar.ModeSelectedMsg:
		if err := m.state.Config.SetActiveMode(msg.ID); err != nil {
			m.status = fmt.Sprintf("Config save failed: %v", err)
		}
		m.renderPreview(msg.ID)
		return m, nil

	case state.OrganizationChangedMsg:
		m.state.Organizer.Load()
		m.sidebar.Refresh()
		m.status = ""
		m.syncPreview()
		return m, m.watchCmd()

	case state.WatcherErrMsg:
		m.status = fmt.Sprintf("Watcher error: %v", msg.Err)
		return m, m.watchCmd()
	}

	return m, nil
}

// handleMouse splits the window at the sidebar's right edge. A live
// drag owns the pointer wherever it goes, so ambient motion and the
// final release reach the drag session instead of the preview.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.sidebar.DragActive() || msg.X < m.sidebarWidth() {
		cmd := m.sidebar.Update(msg)
		m.syncPreview()
		return m, cmd
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Mid-session keys belong to the sidebar: esc cancels, arrows
	// step a grabbed row. Quit stays out of reach until the session
	// ends.
	if m.sidebar.DragActive() || m.sidebar.GrabActive() {
		cmd := m.sidebar.Update(msg)
		m.syncPreview()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggleRail):
		m.toggleRail()
		return m, nil

	case key.Matches(msg, m.keys.pageUp):
		m.preview.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.pageDown):
		m.preview.HalfViewDown()
		return m, nil
	}

	cmd := m.sidebar.Update(msg)
	m.syncPreview()
	return m, cmd
}

func (m *Model) toggleRail() {
	rail := !m.sidebar.Rail()
	m.sidebar.SetRail(rail)
	if err := m.state.Config.SetSidebarCollapsed(rail); err != nil {
		m.status = fmt.Sprintf("Config save failed: %v", err)
	}
	m.resize()
	m.syncPreview()
}

func (m *Model) resize() {
	m.sidebar.SetSize(m.sidebarWidth(), max(0, m.height-footerHeight))
	m.preview.Width = m.previewWidth()
	m.preview.Height = max(0, m.height-footerHeight-previewTitleHeight)
}

func (m *Model) sidebarWidth() int {
	if m.sidebar.Rail() {
		return railWidth
	}

	w := m.state.Config.Sidebar.Width
	if m.width > 0 && w > m.width/2 {
		w = m.width / 2
	}
	if w < railWidth {
		w = railWidth
	}
	return w
}

func (m *Model) previewWidth() int {
	return max(0, m.width-m.sidebarWidth())
}

// syncPreview follows the sidebar cursor: feature rows preview live,
// header and placeholder rows keep whatever was showing.
func (m *Model) syncPreview() {
	id := m.previewMode
	if row, ok := m.sidebar.SelectedRow(); ok && row.Kind == sidebar.RowFeature {
		id = row.ID
	}
	if id == "" {
		return
	}
	m.renderPreview(id)
}

func (m *Model) renderPreview(id string) {
	mode, ok := m.state.Catalog.Mode(id)
	if !ok {
		return
	}

	width := m.previewWidth()
	if wrap := m.state.Config.Preview.WordWrap; wrap > 0 && width > wrap {
		width = wrap
	}
	if width <= 0 {
		return
	}

	style := m.state.Config.Preview.Style
	key := cache.Key(id, width, style)
	rendered, hit := m.cache.Get(key)
	if !hit {
		rendered = utils.RenderMarkdownDoc(mode.Doc, width, style)
		m.cache.Put(key, rendered)
	}

	switched := id != m.previewMode
	m.previewMode = id
	m.preview.SetContent(rendered)
	if switched {
		m.preview.GotoTop()
	}
}

func (m *Model) watchCmd() tea.Cmd {
	if m.state.Watcher == nil {
		return nil
	}
	return m.state.Watcher.Start()
}

func (m *Model) View() string {
	title := previewTitleStyle.MaxWidth(m.previewWidth()).Render(m.previewTitle())
	right := lipgloss.JoinVertical(lipgloss.Left, title, m.preview.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footerView())
}

func (m *Model) previewTitle() string {
	if mode, ok := m.state.Catalog.Mode(m.previewMode); ok {
		return mode.Label
	}
	return "Preview"
}

func (m *Model) footerView() string {
	bindings := append(m.sidebar.Help(), m.keys.help()...)
	if m.sidebar.GrabActive() {
		bindings = m.sidebar.GrabHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}

	line := footerStyle.Render(strings.Join(parts, " • "))
	if m.status != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Left, line, statusStyle.Render(m.status))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// Run starts the console program. Mouse cell motion is required for
// drag hover tracking; without it only press and release arrive.
func Run(s *state.State) error {
	m := NewModel(s)

	p := tea.NewProgram(
		m,
		tea.WithInput(os.Stdin),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console exited: %w", err)
	}
	return nil
}
