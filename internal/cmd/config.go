package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Iron-Ham/cookieshell/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Cookie Shell configuration",
	Long: `View and modify Cookie Shell configuration settings.

Configuration is loaded from (in order of precedence):
  1. Environment variables (COOKIESHELL_*)
  2. Config file (~/.config/cookieshell/config.yaml)
  3. Default values`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print the effective configuration as YAML, after defaults, the config file and environment overrides are merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it to the config file.

Available keys:
  shell.bake_delay       How long "cookie bake" takes (e.g. 2s, 500ms, 0s)
  shell.seed             Random seed; 0 picks a fresh one per session
  fortunes.file          YAML file with a "fortunes" list
  fortunes.watch         Reload fortunes.file when it changes (true/false)
  tui.theme              Starting theme: light or dark
  tui.max_lines          Scrollback limit (0 for unlimited)
  server.addr            WebSocket listen address (host:port)
  logging.enabled        Write log files (true/false)
  logging.level          debug, info, warn or error
  logging.max_size_mb    Log size that triggers rotation
  logging.max_backups    Rotated log files to keep

Examples:
  cookieshell config set tui.theme dark
  cookieshell config set shell.bake_delay 0s`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a commented config file with default values at ~/.config/cookieshell/config.yaml`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// settableKeys maps every key "config set" accepts to its value kind.
var settableKeys = map[string]string{
	"shell.bake_delay":    "duration",
	"shell.seed":          "int",
	"fortunes.file":       "string",
	"fortunes.watch":      "bool",
	"tui.theme":           "string",
	"tui.max_lines":       "int",
	"server.addr":         "string",
	"logging.enabled":     "bool",
	"logging.level":       "string",
	"logging.max_size_mb": "int",
	"logging.max_backups": "int",
}

// effectiveSettings returns the merged settings without flag-only keys.
func effectiveSettings() map[string]any {
	settings := viper.AllSettings()
	delete(settings, "config")
	return settings
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out, err := yaml.Marshal(effectiveSettings())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	w := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(w, "# Config file: %s\n", used)
	} else {
		fmt.Fprintf(w, "# Config file: (none - using defaults)\n")
	}
	_, err = w.Write(out)
	return err
}

// parseSetting converts a "config set" argument to the key's type.
func parseSetting(key, value string) (any, error) {
	kind, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'cookieshell config set --help' to see valid keys", key)
	}

	switch kind {
	case "duration":
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected a duration like 2s", key)
		}
		return d.String(), nil
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "int":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typed, err := parseSetting(key, args[1])
	if err != nil {
		return err
	}

	viper.Set(key, typed)
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("refusing to save: %w", err)
	}

	target := viper.ConfigFileUsed()
	if target == "" {
		target = config.ConfigFile()
	}
	if err := writeSettings(target); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typed)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", target)
	return nil
}

// writeSettings saves the effective settings as YAML at path.
func writeSettings(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	out, err := yaml.Marshal(effectiveSettings())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

const defaultConfigFile = `# Cookie Shell configuration
# Every key can also be set through COOKIESHELL_<SECTION>_<KEY>,
# e.g. COOKIESHELL_TUI_THEME=dark.

shell:
  # How long "cookie bake" takes. 0s answers immediately.
  bake_delay: 2s
  # Random seed. 0 picks a fresh seed for every session.
  seed: 0

fortunes:
  # YAML file with a top-level "fortunes" list. Empty uses the built-in list.
  file: ""
  # Reload the file whenever it changes.
  watch: false

tui:
  # Starting theme: light or dark
  theme: light
  # Maximum scrollback lines (0 for unlimited)
  max_lines: 500

server:
  # WebSocket listen address for "cookieshell serve"
  addr: 127.0.0.1:8080
  # Browser origins allowed to connect. Empty allows any.
  allowed_origins: []

logging:
  enabled: true
  # debug, info, warn or error
  level: info
  max_size_mb: 10
  max_backups: 3
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'cookieshell config set' to modify values", configFile)
	}

	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigFile), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize Cookie Shell.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(w, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(w, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(w, "\nSearch paths:")
	fmt.Fprintf(w, "  1. %s\n", config.ConfigFile())
	fmt.Fprintf(w, "  2. $HOME/.config/%s/config.yaml\n", config.AppName)
	fmt.Fprintf(w, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintf(w, "\nEnvironment variables: %s_* (e.g., %s_TUI_THEME)\n", config.EnvPrefix, config.EnvPrefix)
	return nil
}
