package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// File persists each key as a JSON document in its own file under dir.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
type File struct {
	dir string
}

func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Path returns the file a key is stored at, which is also what the
// snapshot watcher observes for external edits.
func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (f *File) Set(key, value string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	path := f.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
