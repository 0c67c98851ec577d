package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Environment overrides, e.g. TERMFAB_LOGGING_LEVEL, TERMFAB_STORAGE_PATH.
	v.SetEnvPrefix("TERMFAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}
	m.setDefaults()

	return m, nil
}

// Load reads the configuration file, falling back to defaults when no file
// exists. The loaded config is validated before it is adopted.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		// No file is fine; defaults apply. Write one so the user has
		// something to edit.
		if writeErr := m.writeDefaultConfig(); writeErr != nil {
			// Best effort only; the in-memory defaults still stand.
			return nil
		}
		return nil
	}

	return fmt.Errorf("failed to read config file: %w", err)
}

func (m *Manager) writeDefaultConfig() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	return m.viper.SafeWriteConfig()
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ensureStoragePath(config); err != nil {
		return nil, err
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ensureStoragePath fills in the default database path when unset.
func ensureStoragePath(config *Config) error {
	if config.Storage.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Storage.Path = dbPath
	return nil
}

// Get returns the current configuration, loading defaults if Load was never
// called.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// GetConfigFile returns the path of the config file in use, or the default
// location when none was found.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "config.toml")
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("control.label", defaults.Control.Label)
	m.viper.SetDefault("control.idle_hint", defaults.Control.IdleHint)
	m.viper.SetDefault("control.drag_hint", defaults.Control.DragHint)
	m.viper.SetDefault("control.margin_x", defaults.Control.MarginX)
	m.viper.SetDefault("control.margin_y", defaults.Control.MarginY)

	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("theme.accent", defaults.Theme.Accent)
	m.viper.SetDefault("theme.text", defaults.Theme.Text)
	m.viper.SetDefault("theme.muted", defaults.Theme.Muted)
}
