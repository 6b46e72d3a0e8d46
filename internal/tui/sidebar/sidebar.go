// Package sidebar implements the navigation sidebar: an ordered,
// categorized list of mode shortcuts that can be rearranged by mouse
// drag or keyboard grab, with every move written through to the
// organizer store.
package sidebar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/studio/internal/catalog"
	"github.com/Paintersrp/studio/internal/organizer"
)

// ModeSelectedMsg is emitted when the user activates a feature row.
type ModeSelectedMsg struct {
	ID string
}

const (
	headerHeight   = 1
	announceHeight = 1
)

// Model is the sidebar component. It owns the drag and grab sessions
// and the flattened row list; the parent decides its size, forwards
// input, and reacts to ModeSelectedMsg.
type Model struct {
	store   *organizer.Store
	catalog *catalog.Catalog

	drag     *DragController
	grab     *GrabController
	suppress *ClickSuppressor
	announce *Announcer
	keys     *sidebarKeyMap

	list       list.Model
	rail       bool
	activeMode string

	width  int
	height int

	lastGen      int
	placeholders bool
}

func New(store *organizer.Store, cat *catalog.Catalog) *Model {
	m := &Model{
		store:    store,
		catalog:  cat,
		suppress: NewClickSuppressor(),
		announce: &Announcer{},
		keys:     newSidebarKeyMap(),
	}
	m.drag = NewDragController(store)
	m.grab = NewGrabController(store)

	l := list.New(nil, rowDelegate{sb: m}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	m.list = l

	m.Refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize fixes the sidebar's footprint. One column is reserved for the
// right border, one line for the title, and one for the status line.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(m.innerWidth(), max(0, height-headerHeight-announceHeight))
}

func (m *Model) innerWidth() int {
	return max(0, m.width-1)
}

func (m *Model) listHeight() int {
	return max(0, m.height-headerHeight-announceHeight)
}

func (m *Model) Width() int {
	return m.width
}

// SetRail switches between the icon-only rail and the expanded view.
// The row list itself is untouched: both views share one topology.
func (m *Model) SetRail(rail bool) {
	m.rail = rail
}

func (m *Model) Rail() bool {
	return m.rail
}

func (m *Model) SetActiveMode(id string) {
	m.activeMode = id
}

func (m *Model) ActiveMode() string {
	return m.activeMode
}

// Announcement returns the current status line text.
func (m *Model) Announcement() string {
	return m.announce.Last()
}

// DragActive reports a live pointer session, armed or dragging. The
// parent keeps routing pointer events here while it is true, even when
// they wander outside the sidebar's columns.
func (m *Model) DragActive() bool {
	return m.drag.phase != phaseIdle
}

func (m *Model) GrabActive() bool {
	return m.grab.Active()
}

func (m *Model) GrabHelp() []key.Binding {
	return m.keys.grabHelp()
}

// Help returns the bindings shown in the footer outside a grab session.
func (m *Model) Help() []key.Binding {
	return m.keys.baseHelp()
}

// Refresh rebuilds the row list from the store, keeping the cursor on
// the row it was on when that row still exists.
func (m *Model) Refresh() {
	prevKey := ""
	if row, ok := m.SelectedRow(); ok {
		prevKey = row.key()
	}

	featureDrag := m.drag.DraggingFeature()
	rows := buildRows(m.store.Snapshot(), m.catalog, featureDrag)
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = r
	}
	m.list.SetItems(items)
	m.lastGen = m.store.Generation()
	m.placeholders = featureDrag

	if prevKey != "" {
		m.selectKey(prevKey)
	}
}

// syncRows rebuilds only when the arrangement or the placeholder
// topology actually changed, so render state stays cheap to keep fresh.
func (m *Model) syncRows() {
	if m.store.Generation() != m.lastGen || m.drag.DraggingFeature() != m.placeholders {
		m.Refresh()
	}
}

func (m *Model) selectKey(key string) {
	for i, item := range m.list.Items() {
		if row, ok := item.(Row); ok && row.key() == key {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) SelectedRow() (Row, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return Row{}, false
	}
	row, ok := item.(Row)
	return row, ok
}

// rowAt resolves a pointer position to the row box under it. The title
// line, the border column, the status line, and anything past the
// rendered rows all miss.
func (m *Model) rowAt(x, y int) (Row, organizer.Box, bool) {
	if x < 0 || x >= m.innerWidth() {
		return Row{}, organizer.Box{}, false
	}
	if y < headerHeight || y >= headerHeight+m.listHeight() {
		return Row{}, organizer.Box{}, false
	}

	items := m.list.Items()
	if len(items) == 0 {
		return Row{}, organizer.Box{}, false
	}

	start, end := m.list.Paginator.GetSliceBounds(len(items))
	idx := start + (y-headerHeight)/rowHeight
	if idx < start || idx >= end {
		return Row{}, organizer.Box{}, false
	}
	row, ok := items[idx].(Row)
	if !ok {
		return Row{}, organizer.Box{}, false
	}

	top := headerHeight + (idx-start)*rowHeight
	return row, organizer.Box{Top: top, Bottom: top + rowHeight - 1}, true
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.list.CursorUp()
			return nil
		case tea.MouseButtonWheelDown:
			m.list.CursorDown()
			return nil
		}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		// The pointer takes over from an unfinished keyboard
		// session, restoring its origin first.
		if m.grab.Active() {
			m.grab.Cancel()
			m.syncRows()
		}
		if row, _, ok := m.rowAt(msg.X, msg.Y); ok {
			if m.drag.Press(row) {
				m.selectKey(row.key())
			}
		}
		return nil

	case tea.MouseActionMotion:
		if row, box, ok := m.rowAt(msg.X, msg.Y); ok {
			m.drag.Motion(&HoverTarget{Row: row, Side: organizer.Resolve(box, msg.Y)})
		} else {
			m.drag.Motion(nil)
		}
		m.syncRows()
		return nil

	case tea.MouseActionRelease:
		return m.finishDrag(m.drag.Release())
	}
	return nil
}

func (m *Model) finishDrag(res DragResult) tea.Cmd {
	if res.ArmSuppressor {
		m.suppress.Arm(res.Source)
	}
	if res.Moved && res.Kind == DragFeature {
		m.announce.FeatureMoved(res.FromCategory, res.ToCategory, m.catalog.Label(res.ToCategory))
	}

	var cmd tea.Cmd
	if res.Clicked && !m.suppress.Suppress(res.Source) {
		cmd = m.activate(res.Source)
	}
	m.syncRows()
	return cmd
}

// activate is the click action: features select, headers toggle their
// bucket open or closed.
func (m *Model) activate(row Row) tea.Cmd {
	switch row.Kind {
	case RowFeature:
		m.activeMode = row.ID
		id := row.ID
		return func() tea.Msg { return ModeSelectedMsg{ID: id} }
	case RowCategory:
		m.store.ToggleCollapsed(row.ID)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.drag.Dragging() {
		if key.Matches(msg, m.keys.cancel) {
			res := m.drag.Cancel()
			if res.ArmSuppressor {
				m.suppress.Arm(res.Source)
			}
			m.syncRows()
		}
		return nil
	}

	if m.grab.Active() {
		switch {
		case key.Matches(msg, m.keys.moveUp):
			if m.grab.MoveUp() {
				m.syncRows()
			}
		case key.Matches(msg, m.keys.moveDown):
			if m.grab.MoveDown() {
				m.syncRows()
			}
		case key.Matches(msg, m.keys.commit):
			res := m.grab.Place()
			if res.Placed && res.Kind == DragFeature {
				m.announce.FeatureMoved(res.FromCategory, res.ToCategory, m.catalog.Label(res.ToCategory))
			}
		case key.Matches(msg, m.keys.cancel):
			if m.grab.Cancel() {
				m.syncRows()
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.grab):
		if row, ok := m.SelectedRow(); ok {
			m.grab.Grab(row)
		}
		return nil
	case key.Matches(msg, m.keys.selectEntry):
		if row, ok := m.SelectedRow(); ok {
			cmd := m.activate(row)
			m.syncRows()
			return cmd
		}
		return nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) View() string {
	title := titleStyle.MaxWidth(m.innerWidth()).Render(m.titleText())
	status := announceStyle.MaxWidth(m.innerWidth()).Render(m.announce.Last())

	body := lipgloss.JoinVertical(lipgloss.Left, title, m.list.View(), status)
	return sidebarStyle.Height(m.height).Render(body)
}

func (m *Model) titleText() string {
	if m.rail {
		return "≡"
	}
	return "studio"
}
