package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"

	"github.com/Paintersrp/studio/internal/constants"
)

type StorageConfig struct {
	Backend     string `yaml:"backend"      json:"backend"`
	Dir         string `yaml:"dir"          json:"dir"`
	PostgresDSN string `yaml:"postgres_dsn" json:"postgres_dsn"`
}

type SidebarConfig struct {
	Collapsed bool `yaml:"collapsed" json:"collapsed"`
	Width     int  `yaml:"width"     json:"width"`
}

type PreviewConfig struct {
	Style     string `yaml:"style"      json:"style"`
	WordWrap  int    `yaml:"word_wrap"  json:"word_wrap"`
	CacheSize int    `yaml:"cache_size" json:"cache_size"`
}

type BackupConfig struct {
	Bucket string `yaml:"bucket" json:"bucket"`
	Prefix string `yaml:"prefix" json:"prefix"`
	Region string `yaml:"region" json:"region"`
}

type Config struct {
	Storage         StorageConfig `yaml:"storage"          json:"storage"`
	Sidebar         SidebarConfig `yaml:"sidebar"          json:"sidebar"`
	Preview         PreviewConfig `yaml:"preview"          json:"preview"`
	Backup          BackupConfig  `yaml:"backup"           json:"backup"`
	CatalogManifest string        `yaml:"catalog_manifest" json:"catalog_manifest"`
	ActiveMode      string        `yaml:"active_mode"      json:"active_mode"`
}

const (
	defaultBackend      = "file"
	defaultPreviewStyle = "dracula"
	defaultWordWrap     = 100
	defaultCacheSize    = 32
	defaultSidebarWidth = 34
)

var ValidBackends = map[string]bool{
	"file":     true,
	"memory":   true,
	"postgres": true,
}

var validStyleNames = []string{"dracula", "dark", "light", "notty", "ascii", "auto", "pink"}

var ValidStyles = func() map[string]bool {
	styles := make(map[string]bool, len(validStyleNames))
	for _, style := range validStyleNames {
		styles[style] = true
	}

	return styles
}()

func ValidateBackend(backend string) error {
	if _, valid := ValidBackends[backend]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid storage backend: %q. Please choose from 'file', 'memory', or 'postgres'",
		backend,
	)
}

func ValidateStyle(style string) error {
	if _, valid := ValidStyles[style]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid preview style: %q. Please choose from %s.",
		style,
		validStyleList(),
	)
}

func validStyleList() string {
	quoted := make([]string, len(validStyleNames))
	for i, name := range validStyleNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 0 {
		return ""
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// legacyConfig is the flat layout used before storage gained its own
// section. Load migrates it in place on first read.
type legacyConfig struct {
	Backend     string `yaml:"backend"`
	StateDir    string `yaml:"statedir"`
	PostgresDSN string `yaml:"postgres_dsn"`
	Style       string `yaml:"style"`
	Collapsed   bool   `yaml:"collapsed"`
	ActiveMode  string `yaml:"active_mode"`
}

func newConfig() *Config {
	cfg := &Config{}
	cfg.ensureDefaults()
	return cfg
}

func (cfg *Config) ensureDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaultBackend
	}
	if cfg.Preview.Style == "" {
		cfg.Preview.Style = defaultPreviewStyle
	}
	if cfg.Preview.WordWrap <= 0 {
		cfg.Preview.WordWrap = defaultWordWrap
	}
	if cfg.Preview.CacheSize <= 0 {
		cfg.Preview.CacheSize = defaultCacheSize
	}
	if cfg.Sidebar.Width <= 0 {
		cfg.Sidebar.Width = defaultSidebarWidth
	}
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) == 0 {
		cfg = newConfig()
	} else {
		raw := make(map[string]interface{})
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}

		if _, ok := raw["storage"]; ok {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		} else {
			var legacy legacyConfig
			if err := yaml.Unmarshal(data, &legacy); err != nil {
				return nil, err
			}
			cfg = migrateLegacyConfig(&legacy)
		}
	}

	cfg.ensureDefaults()

	if err := ValidateBackend(cfg.Storage.Backend); err != nil {
		return nil, err
	}
	if err := ValidateStyle(cfg.Preview.Style); err != nil {
		return nil, err
	}

	cfg.syncViper()

	return cfg, nil
}

func migrateLegacyConfig(legacy *legacyConfig) *Config {
	cfg := newConfig()
	if legacy.Backend != "" {
		cfg.Storage.Backend = legacy.Backend
	}
	cfg.Storage.Dir = legacy.StateDir
	cfg.Storage.PostgresDSN = legacy.PostgresDSN
	if legacy.Style != "" {
		cfg.Preview.Style = legacy.Style
	}
	cfg.Sidebar.Collapsed = legacy.Collapsed
	cfg.ActiveMode = legacy.ActiveMode
	return cfg
}

func (cfg *Config) syncViper() {
	viper.Set("backend", cfg.Storage.Backend)
	viper.Set("statedir", cfg.Storage.Dir)
	viper.Set("postgres_dsn", cfg.Storage.PostgresDSN)
	viper.Set("catalog_manifest", cfg.CatalogManifest)
	viper.Set("preview_style", cfg.Preview.Style)
	viper.Set("sidebar_collapsed", cfg.Sidebar.Collapsed)
	viper.Set("active_mode", cfg.ActiveMode)
	viper.Set("backup_bucket", cfg.Backup.Bucket)
	viper.Set("backup_prefix", cfg.Backup.Prefix)
	viper.Set("backup_region", cfg.Backup.Region)
}

// StateDir returns the directory file-backed documents live in,
// resolving the default under the config dir when unset.
func (cfg *Config) StateDir(home string) string {
	if cfg.Storage.Dir != "" {
		return cfg.Storage.Dir
	}
	return filepath.Join(home, constants.ConfigDir, constants.StateDirName)
}

func (cfg *Config) GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

func (cfg *Config) ChangeBackend(backend string) error {
	if err := ValidateBackend(backend); err != nil {
		return err
	}

	cfg.Storage.Backend = backend
	return cfg.Save()
}

func (cfg *Config) ChangeStyle(style string) error {
	if err := ValidateStyle(style); err != nil {
		return err
	}

	cfg.Preview.Style = style
	return cfg.Save()
}

func (cfg *Config) SetActiveMode(id string) error {
	cfg.ActiveMode = id
	return cfg.Save()
}

func (cfg *Config) SetSidebarCollapsed(collapsed bool) error {
	cfg.Sidebar.Collapsed = collapsed
	return cfg.Save()
}

func (cfg *Config) SetSidebarWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("sidebar width must be positive, got %d", width)
	}

	cfg.Sidebar.Width = width
	return cfg.Save()
}

func (cfg *Config) SetCatalogManifest(path string) error {
	cfg.CatalogManifest = strings.TrimSpace(path)
	return cfg.Save()
}

func (cfg *Config) SetBackup(bucket, prefix, region string) error {
	cfg.Backup.Bucket = strings.TrimSpace(bucket)
	cfg.Backup.Prefix = strings.TrimSpace(prefix)
	cfg.Backup.Region = strings.TrimSpace(region)
	return cfg.Save()
}

func (cfg *Config) Save() error {
	cfg.ensureDefaults()

	if err := ValidateBackend(cfg.Storage.Backend); err != nil {
		return err
	}
	if err := ValidateStyle(cfg.Preview.Style); err != nil {
		return err
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
