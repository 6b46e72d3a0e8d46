package settings

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/studio/internal/config"
)

// Tests write the config under a throwaway HOME, so they cannot use
// t.Parallel while t.Setenv is in play.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := &config.Config{}
	if err := cfg.Save(); err != nil {
		t.Fatalf("saving initial config: %v", err)
	}

	return cfg
}

func newTestSettings(t *testing.T) (ListModel, *config.Config) {
	t.Helper()

	cfg := newTestConfig(t)
	m := NewListModel(cfg)
	m = updateSettings(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	return m, cfg
}

func updateSettings(t *testing.T, m ListModel, msg tea.Msg) ListModel {
	t.Helper()

	model, _ := m.Update(msg)
	next, ok := model.(ListModel)
	if !ok {
		t.Fatalf("expected ListModel, got %T", model)
	}

	return next
}

func keypress(t *testing.T, m ListModel, keyType tea.KeyType) ListModel {
	t.Helper()
	return updateSettings(t, m, tea.KeyMsg{Type: keyType})
}

func runeKey(t *testing.T, m ListModel, r rune) ListModel {
	t.Helper()
	return updateSettings(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func itemDescriptions(m ListModel) map[string]string {
	out := make(map[string]string, len(m.list.Items()))
	for _, it := range m.list.Items() {
		li := it.(ListItem)
		out[li.Title()] = li.Description()
	}
	return out
}

func reloadConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Load(os.Getenv("HOME"))
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	return cfg
}

func TestSettingsItemsReflectConfig(t *testing.T) {
	m, _ := newTestSettings(t)

	got := itemDescriptions(m)
	want := map[string]string{
		itemBackend:  "file",
		itemStyle:    "dracula",
		itemSidebar:  "expanded",
		itemWidth:    "34",
		itemManifest: "built-in catalog",
	}
	for title, desc := range want {
		if got[title] != desc {
			t.Errorf("item %s: expected description %q, got %q", title, desc, got[title])
		}
	}
}

func TestSettingsBackendSelection(t *testing.T) {
	m, cfg := newTestSettings(t)

	m = keypress(t, m, tea.KeyEnter)
	if !m.selActive {
		t.Fatalf("expected selection to open on enter")
	}
	if m.selField != itemBackend {
		t.Fatalf("expected selection for %s, got %s", itemBackend, m.selField)
	}

	m = keypress(t, m, tea.KeyDown)
	m = keypress(t, m, tea.KeyEnter)

	if m.selActive {
		t.Fatalf("expected selection to close after commit")
	}
	if cfg.Storage.Backend != "memory" {
		t.Fatalf("expected backend memory, got %q", cfg.Storage.Backend)
	}
	if got := reloadConfig(t).Storage.Backend; got != "memory" {
		t.Fatalf("expected persisted backend memory, got %q", got)
	}
	if got := itemDescriptions(m)[itemBackend]; got != "memory" {
		t.Fatalf("expected item description memory, got %q", got)
	}
}

func TestSettingsSidebarSelection(t *testing.T) {
	m, cfg := newTestSettings(t)

	m = keypress(t, m, tea.KeyDown)
	m = keypress(t, m, tea.KeyDown)
	m = keypress(t, m, tea.KeyEnter)
	if !m.selActive || m.selField != itemSidebar {
		t.Fatalf("expected selection for %s, got active=%v field=%s", itemSidebar, m.selActive, m.selField)
	}

	m = keypress(t, m, tea.KeyDown)
	m = keypress(t, m, tea.KeyEnter)

	if !cfg.Sidebar.Collapsed {
		t.Fatalf("expected sidebar collapsed after choosing rail")
	}
	if got := itemDescriptions(m)[itemSidebar]; got != "rail" {
		t.Fatalf("expected item description rail, got %q", got)
	}
	if !reloadConfig(t).Sidebar.Collapsed {
		t.Fatalf("expected persisted collapsed state")
	}
}

func TestSettingsWidthInput(t *testing.T) {
	m, cfg := newTestSettings(t)

	for i := 0; i < 3; i++ {
		m = keypress(t, m, tea.KeyDown)
	}
	m = keypress(t, m, tea.KeyEnter)
	if !m.inputActive {
		t.Fatalf("expected input to open on enter")
	}
	if m.configInput.Title != itemWidth {
		t.Fatalf("expected input for %s, got %s", itemWidth, m.configInput.Title)
	}
	if got := m.configInput.Input.Value(); got != "34" {
		t.Fatalf("expected input seeded with 34, got %q", got)
	}

	m.configInput.Input.SetValue("20")
	m = keypress(t, m, tea.KeyEnter)

	if m.inputActive {
		t.Fatalf("expected input to close after commit")
	}
	if cfg.Sidebar.Width != 20 {
		t.Fatalf("expected width 20, got %d", cfg.Sidebar.Width)
	}
	if got := reloadConfig(t).Sidebar.Width; got != 20 {
		t.Fatalf("expected persisted width 20, got %d", got)
	}
	if got := itemDescriptions(m)[itemWidth]; got != "20" {
		t.Fatalf("expected item description 20, got %q", got)
	}

	// A non-numeric value closes the editor but changes nothing.
	m = keypress(t, m, tea.KeyEnter)
	m.configInput.Input.SetValue("abc")
	m = keypress(t, m, tea.KeyEnter)

	if m.inputActive {
		t.Fatalf("expected input to close after invalid commit")
	}
	if cfg.Sidebar.Width != 20 {
		t.Fatalf("expected width unchanged at 20, got %d", cfg.Sidebar.Width)
	}
}

func TestSettingsManifestInput(t *testing.T) {
	m, cfg := newTestSettings(t)

	for i := 0; i < 4; i++ {
		m = keypress(t, m, tea.KeyDown)
	}
	m = keypress(t, m, tea.KeyEnter)
	if !m.inputActive || m.configInput.Title != itemManifest {
		t.Fatalf("expected input for %s, got active=%v title=%s", itemManifest, m.inputActive, m.configInput.Title)
	}
	if got := m.configInput.Input.Value(); got != "" {
		t.Fatalf("expected empty seed for built-in catalog, got %q", got)
	}

	m.configInput.Input.SetValue("/tmp/catalog.json")
	m = keypress(t, m, tea.KeyEnter)

	if cfg.CatalogManifest != "/tmp/catalog.json" {
		t.Fatalf("expected manifest path, got %q", cfg.CatalogManifest)
	}
	if got := itemDescriptions(m)[itemManifest]; got != "/tmp/catalog.json" {
		t.Fatalf("expected item description with path, got %q", got)
	}

	m = runeKey(t, m, 'R')

	if cfg.CatalogManifest != "" {
		t.Fatalf("expected manifest cleared, got %q", cfg.CatalogManifest)
	}
	if got := itemDescriptions(m)[itemManifest]; got != "built-in catalog" {
		t.Fatalf("expected built-in catalog after reset, got %q", got)
	}
}

func TestSettingsResetKey(t *testing.T) {
	m, cfg := newTestSettings(t)

	if err := cfg.ChangeBackend("memory"); err != nil {
		t.Fatalf("changing backend: %v", err)
	}
	m = runeKey(t, m, 'R')

	if cfg.Storage.Backend != "file" {
		t.Fatalf("expected backend reset to file, got %q", cfg.Storage.Backend)
	}
	if got := reloadConfig(t).Storage.Backend; got != "file" {
		t.Fatalf("expected persisted backend file, got %q", got)
	}
	if got := itemDescriptions(m)[itemBackend]; got != "file" {
		t.Fatalf("expected item description file, got %q", got)
	}

	if err := cfg.SetSidebarWidth(20); err != nil {
		t.Fatalf("setting width: %v", err)
	}
	for i := 0; i < 3; i++ {
		m = keypress(t, m, tea.KeyDown)
	}
	m = runeKey(t, m, 'R')

	if cfg.Sidebar.Width != 34 {
		t.Fatalf("expected width reset to 34, got %d", cfg.Sidebar.Width)
	}
}

func TestSettingsEscExitsEditing(t *testing.T) {
	m, cfg := newTestSettings(t)

	m = keypress(t, m, tea.KeyEnter)
	if !m.selActive {
		t.Fatalf("expected selection to open")
	}
	m = keypress(t, m, tea.KeyEsc)
	if m.selActive {
		t.Fatalf("expected esc to close the selection")
	}
	if cfg.Storage.Backend != "file" {
		t.Fatalf("expected backend untouched, got %q", cfg.Storage.Backend)
	}

	for i := 0; i < 3; i++ {
		m = keypress(t, m, tea.KeyDown)
	}
	m = keypress(t, m, tea.KeyEnter)
	if !m.inputActive {
		t.Fatalf("expected input to open")
	}
	m = keypress(t, m, tea.KeyEsc)
	if m.inputActive {
		t.Fatalf("expected esc to close the input")
	}
	if cfg.Sidebar.Width != 34 {
		t.Fatalf("expected width untouched, got %d", cfg.Sidebar.Width)
	}
}
