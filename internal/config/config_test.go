package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default shell config
	if cfg.Shell.BakeDelay != 2*time.Second {
		t.Errorf("Shell.BakeDelay = %v, want 2s", cfg.Shell.BakeDelay)
	}
	if cfg.Shell.Seed != 0 {
		t.Errorf("Shell.Seed = %d, want 0", cfg.Shell.Seed)
	}

	// Verify default fortune config
	if cfg.Fortunes.File != "" {
		t.Errorf("Fortunes.File = %q, want empty", cfg.Fortunes.File)
	}
	if cfg.Fortunes.Watch {
		t.Error("Fortunes.Watch should be false by default")
	}

	// Verify default TUI config
	if cfg.TUI.Theme != "light" {
		t.Errorf("TUI.Theme = %q, want light", cfg.TUI.Theme)
	}
	if cfg.TUI.MaxLines != 500 {
		t.Errorf("TUI.MaxLines = %d, want 500", cfg.TUI.MaxLines)
	}

	// Verify default server config
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Server.Addr = %q, want 127.0.0.1:8080", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 0 {
		t.Errorf("Server.AllowedOrigins should be empty, got %v", cfg.Server.AllowedOrigins)
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.MaxSizeMB != 10 || cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging rotation = %d/%d, want 10/3", cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		if got := ConfigDir(); got != "/custom/config/cookieshell" {
			t.Errorf("ConfigDir() = %q, want /custom/config/cookieshell", got)
		}
	})

	t.Run("falls back to ~/.config/cookieshell", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("Cannot determine home directory")
		}
		expected := filepath.Join(home, ".config", "cookieshell")
		if got := ConfigDir(); got != expected {
			t.Errorf("ConfigDir() = %q, want %q", got, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := ConfigFile(); got != "/xdg/cookieshell/config.yaml" {
		t.Errorf("ConfigFile() = %q", got)
	}
}

func TestStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	if got := StateDir(); got != "/xdg/state/cookieshell" {
		t.Errorf("StateDir() = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Shell.BakeDelay != 2*time.Second {
		t.Errorf("BakeDelay = %v, want 2s", cfg.Shell.BakeDelay)
	}
	if cfg.TUI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.TUI.Theme)
	}
}

func TestLoadFromYAML(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	yaml := `
shell:
  bake_delay: 500ms
  seed: 42
tui:
  theme: dark
server:
  allowed_origins:
    - https://cookies.example
`
	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Shell.BakeDelay != 500*time.Millisecond {
		t.Errorf("BakeDelay = %v, want 500ms", cfg.Shell.BakeDelay)
	}
	if cfg.Shell.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Shell.Seed)
	}
	if cfg.TUI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.TUI.Theme)
	}
	if cfg.TUI.MaxLines != 500 {
		t.Errorf("MaxLines = %d, want default 500", cfg.TUI.MaxLines)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://cookies.example" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	t.Setenv("COOKIESHELL_TUI_THEME", "dark")
	t.Setenv("COOKIESHELL_SHELL_BAKE_DELAY", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TUI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.TUI.Theme)
	}
	if cfg.Shell.BakeDelay != 0 {
		t.Errorf("BakeDelay = %v, want 0", cfg.Shell.BakeDelay)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("tui.theme", "sepia")
	viper.Set("tui.max_lines", -1)

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(verrs), verrs)
	}
}

func TestGet(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("logging.level", "loud")

	// Invalid config falls back to defaults
	cfg := Get()
	if cfg.Logging.Level != "info" {
		t.Errorf("Get() Logging.Level = %q, want fallback info", cfg.Logging.Level)
	}
}
