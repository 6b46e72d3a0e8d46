package state

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// OrganizationChangedMsg reports that the persisted arrangement was
// rewritten on disk, by this process or another one.
type OrganizationChangedMsg struct {
	Path string
}

type WatcherErrMsg struct {
	Err error
}

// SnapshotWatcher observes the state directory for rewrites of the
// organization document. The document is replaced via rename on every
// save, so the watch is on the directory and filtered by file name.
type SnapshotWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	file    string
	done    chan struct{}
	once    sync.Once
}

func NewSnapshotWatcher(dir, file string) (*SnapshotWatcher, error) {
	cleaned := filepath.Clean(dir)
	if cleaned == "" || cleaned == "." {
		return nil, errors.New("state directory cannot be empty")
	}

	// The directory may not exist until the first save; create it so the
	// watch can be established up front.
	if err := os.MkdirAll(cleaned, 0o755); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(cleaned); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &SnapshotWatcher{
		watcher: w,
		dir:     cleaned,
		file:    file,
		done:    make(chan struct{}),
	}, nil
}

// Start returns a command that blocks until the document changes, then
// delivers a single message. The caller re-arms by invoking Start again
// after handling the message.
func (w *SnapshotWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}
				return OrganizationChangedMsg{Path: event.Name}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return WatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *SnapshotWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func (w *SnapshotWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Base(event.Name) == w.file
}
