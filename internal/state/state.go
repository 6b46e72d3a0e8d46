package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Paintersrp/studio/internal/catalog"
	"github.com/Paintersrp/studio/internal/config"
	"github.com/Paintersrp/studio/internal/constants"
	"github.com/Paintersrp/studio/internal/organizer"
	"github.com/Paintersrp/studio/internal/storage"
)

// State wires one session: config, the mode catalog, the storage
// backend, and the organizer store the sidebar mutates. Commands and
// the console both run against it.
type State struct {
	Config      *config.Config
	Catalog     *catalog.Catalog
	Backend     storage.Store
	BackendName string
	Organizer   *organizer.Store
	Watcher     *SnapshotWatcher
	Home        string

	closer interface{ Close() error }
}

// NewState builds a session. backendOverride forces a storage backend
// regardless of config, which keeps one-off commands off the shared
// document when asked.
func NewState(backendOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.CatalogManifest)
	if err != nil {
		return nil, err
	}

	backendName := cfg.Storage.Backend
	if backendOverride != "" {
		if err := config.ValidateBackend(backendOverride); err != nil {
			return nil, err
		}
		backendName = backendOverride
	}

	s := &State{
		Config:  cfg,
		Catalog: cat,
		Home:    home,
	}

	if err := s.openBackend(backendName); err != nil {
		return nil, err
	}

	s.Organizer = organizer.NewStore(s.Backend, constants.OrganizationKey, cat.DefaultSnapshot())
	s.Organizer.Load()

	return s, nil
}

// UseBackend swaps the session onto another storage backend and reopens
// the organizer store against it. An empty or unchanged name is a
// no-op, so it can take a flag value directly.
func (s *State) UseBackend(name string) error {
	if name == "" || name == s.BackendName {
		return nil
	}
	if err := config.ValidateBackend(name); err != nil {
		return err
	}
	if err := s.Close(); err != nil {
		return err
	}
	if err := s.openBackend(name); err != nil {
		return err
	}

	s.Organizer = organizer.NewStore(s.Backend, constants.OrganizationKey, s.Catalog.DefaultSnapshot())
	s.Organizer.Load()

	return nil
}

func (s *State) openBackend(name string) error {
	s.BackendName = name

	switch name {
	case "memory":
		s.Backend = storage.NewMemory()
	case "postgres":
		pg, err := storage.NewPostgres(s.Config.Storage.PostgresDSN)
		if err != nil {
			return err
		}
		s.Backend = pg
		s.closer = pg
	default:
		files := storage.NewFile(s.Config.StateDir(s.Home))
		s.Backend = files

		docPath := files.Path(constants.OrganizationKey)
		watcher, err := NewSnapshotWatcher(filepath.Dir(docPath), filepath.Base(docPath))
		if err != nil {
			return fmt.Errorf("failed to create snapshot watcher: %w", err)
		}
		s.Watcher = watcher
	}

	return nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	// TODO: Eventually will factor out Viper entirely
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases the snapshot watcher and any backend connection.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = append(errs, err)
		}
		s.closer = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
