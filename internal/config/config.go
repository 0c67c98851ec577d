// Package config handles termfab configuration loading, validation, and
// live reloading.
package config

// Config represents the complete configuration for termfab.
type Config struct {
	// Control configures the floating launcher button.
	Control ControlConfig `mapstructure:"control" toml:"control" json:"control"`
	// Storage configures where UI state is persisted.
	Storage StorageConfig `mapstructure:"storage" toml:"storage" json:"storage"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Theme configures the control's colors.
	Theme ThemeConfig `mapstructure:"theme" toml:"theme" json:"theme"`
}

// ControlConfig configures the floating launcher button. The hint strings
// are surfaced verbatim in the status bar; swapping them out is how
// localization plugs in.
type ControlConfig struct {
	// Label is the text rendered inside the button.
	Label string `mapstructure:"label" toml:"label" json:"label"`
	// IdleHint is shown while the control is idle or hovered.
	IdleHint string `mapstructure:"idle_hint" toml:"idle_hint" json:"idle_hint"`
	// DragHint is shown while the control is being repositioned.
	DragHint string `mapstructure:"drag_hint" toml:"drag_hint" json:"drag_hint"`
	// MarginX and MarginY offset the default bottom-right anchor, in cells.
	MarginX int `mapstructure:"margin_x" toml:"margin_x" json:"margin_x"`
	MarginY int `mapstructure:"margin_y" toml:"margin_y" json:"margin_y"`
}

// StorageConfig configures the state database.
type StorageConfig struct {
	// Path is the SQLite database file. Defaults to the XDG data dir.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level"`
	// Format is one of console, json.
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// ThemeConfig holds the control's colors as lipgloss-compatible values
// (ANSI 256 numbers or hex strings).
type ThemeConfig struct {
	Accent string `mapstructure:"accent" toml:"accent" json:"accent"`
	Text   string `mapstructure:"text" toml:"text" json:"text"`
	Muted  string `mapstructure:"muted" toml:"muted" json:"muted"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Control: ControlConfig{
			Label:    ">_ terminal",
			IdleHint: "click to open a terminal · drag to reposition",
			DragHint: "repositioning · release to drop",
			MarginX:  2,
			MarginY:  1,
		},
		Storage: StorageConfig{
			Path: "", // resolved to the XDG data dir at load time
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Theme: ThemeConfig{
			Accent: "62",
			Text:   "230",
			Muted:  "241",
		},
	}
}
