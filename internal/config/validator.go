package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.max_lines")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// maxBakeDelay keeps a misconfigured oven from hanging a session.
const maxBakeDelay = time.Minute

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid TUI themes
func ValidThemes() []string {
	return []string{"light", "dark"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateShell()...)
	errors = append(errors, c.validateFortunes()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateShell validates the ShellConfig
func (c *Config) validateShell() []ValidationError {
	var errors []ValidationError

	if c.Shell.BakeDelay < 0 {
		errors = append(errors, ValidationError{
			Field:   "shell.bake_delay",
			Value:   c.Shell.BakeDelay,
			Message: "must be non-negative",
		})
	}
	if c.Shell.BakeDelay > maxBakeDelay {
		errors = append(errors, ValidationError{
			Field:   "shell.bake_delay",
			Value:   c.Shell.BakeDelay,
			Message: fmt.Sprintf("exceeds maximum of %s", maxBakeDelay),
		})
	}

	return errors
}

// validateFortunes validates the FortunesConfig
func (c *Config) validateFortunes() []ValidationError {
	var errors []ValidationError

	if c.Fortunes.Watch && c.Fortunes.File == "" {
		errors = append(errors, ValidationError{
			Field:   "fortunes.watch",
			Value:   c.Fortunes.Watch,
			Message: "requires fortunes.file to be set",
		})
	}

	if c.Fortunes.File != "" {
		info, err := os.Stat(c.Fortunes.File)
		switch {
		case err != nil:
			errors = append(errors, ValidationError{
				Field:   "fortunes.file",
				Value:   c.Fortunes.File,
				Message: "file does not exist or is not readable",
			})
		case info.IsDir():
			errors = append(errors, ValidationError{
				Field:   "fortunes.file",
				Value:   c.Fortunes.File,
				Message: "must be a file, not a directory",
			})
		}
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.MaxLines < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_lines",
			Value:   c.TUI.MaxLines,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateServer validates the ServerConfig
func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		errors = append(errors, ValidationError{
			Field:   "server.addr",
			Value:   c.Server.Addr,
			Message: "must be a host:port address",
		})
	}

	for i, origin := range c.Server.AllowedOrigins {
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || (u.Path != "" && u.Path != "/") {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("server.allowed_origins[%d]", i),
				Value:   origin,
				Message: "must be an http(s) origin like https://example.com",
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// Max size must be positive
	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
