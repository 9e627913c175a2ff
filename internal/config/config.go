package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// AppName names the config and state directories.
const AppName = "cookieshell"

// EnvPrefix prefixes environment overrides, e.g. COOKIESHELL_TUI_THEME.
const EnvPrefix = "COOKIESHELL"

// Config represents the complete Cookie Shell configuration
type Config struct {
	Shell    ShellConfig    `mapstructure:"shell"`
	Fortunes FortunesConfig `mapstructure:"fortunes"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ShellConfig controls the command interpreter
type ShellConfig struct {
	// BakeDelay is how long "cookie bake" takes (default: 2s, 0 disables the wait)
	BakeDelay time.Duration `mapstructure:"bake_delay"`
	// Seed makes every random choice reproducible. 0 draws a fresh seed.
	Seed int64 `mapstructure:"seed"`
}

// FortunesConfig controls where fortunes come from
type FortunesConfig struct {
	// File is a YAML fortune list. Empty uses the built-in list.
	File string `mapstructure:"file"`
	// Watch reloads File whenever it changes on disk
	Watch bool `mapstructure:"watch"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the starting theme: "light" or "dark"
	Theme string `mapstructure:"theme"`
	// MaxLines limits the scrollback (0 means unlimited)
	MaxLines int `mapstructure:"max_lines"`
}

// ServerConfig controls the WebSocket server
type ServerConfig struct {
	// Addr is the listen address (default: 127.0.0.1:8080)
	Addr string `mapstructure:"addr"`
	// AllowedOrigins restricts browser Origin headers. Empty allows any.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			BakeDelay: 2 * time.Second,
			Seed:      0,
		},
		Fortunes: FortunesConfig{
			File:  "",
			Watch: false,
		},
		TUI: TUIConfig{
			Theme:    "light",
			MaxLines: 500,
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{},
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Shell defaults
	viper.SetDefault("shell.bake_delay", defaults.Shell.BakeDelay.String())
	viper.SetDefault("shell.seed", defaults.Shell.Seed)

	// Fortune defaults
	viper.SetDefault("fortunes.file", defaults.Fortunes.File)
	viper.SetDefault("fortunes.watch", defaults.Fortunes.Watch)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.max_lines", defaults.TUI.MaxLines)

	// Server defaults
	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	// Fall back to ~/.config/cookieshell
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".local", "state", AppName)
}
