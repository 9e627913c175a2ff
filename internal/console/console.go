// Package console adapts the shell interpreter to a line-oriented display.
//
// A Console owns one session, one random source and the scrollback of
// rendered lines. Front ends (the terminal UI, the plain REPL and the
// WebSocket server) drive it through Submit and render what it reports.
package console

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Iron-Ham/cookieshell/internal/logging"
	"github.com/Iron-Ham/cookieshell/internal/shell"
)

// Prompt precedes every echoed command line.
const Prompt = "cookie 🍪 ~ $ "

// DefaultMaxLines is the scrollback limit used when none is configured.
const DefaultMaxLines = 500

// ErrorMessage replaces the output of a resolution that failed internally.
const ErrorMessage = "An error occurred while processing your command."

var (
	// ErrLocked is returned by Submit after the session has exited.
	ErrLocked = errors.New("session is closed")
	// ErrBusy is returned by Submit while another submission is resolving.
	ErrBusy = errors.New("a command is still running")
)

// Resolver resolves one input line. *shell.Interpreter satisfies it.
type Resolver interface {
	Resolve(input string, s shell.Session, rng shell.Random) (shell.Result, shell.Session, error)
}

// Theme is the display theme toggled by "cookie theme".
type Theme string

// Available themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// LineKind separates echoed input from interpreter output.
type LineKind string

// Line kinds.
const (
	LineCommand LineKind = "command"
	LineOutput  LineKind = "output"
)

// Line is one entry of the scrollback.
type Line struct {
	Kind    LineKind `json:"kind"`
	Content string   `json:"content"`
	Style   string   `json:"style,omitempty"`
}

// Update describes what one Submit changed.
type Update struct {
	// Result is what the interpreter returned. It is zero when the
	// resolution failed.
	Result shell.Result
	// Lines are the lines appended by this submission, in order.
	Lines []Line
	// Cleared is set when the scrollback was wiped.
	Cleared bool
	// Locked is set when this submission ended the session.
	Locked bool
	// Theme is the theme after this submission.
	Theme Theme
}

// Console is safe for concurrent use. Submissions are serialized: a second
// Submit while one is resolving fails with ErrBusy rather than queueing.
type Console struct {
	resolver Resolver
	rng      shell.Random
	logger   *logging.Logger
	maxLines int

	mu      sync.Mutex
	session shell.Session
	lines   []Line
	theme   Theme
	locked  bool
	busy    bool
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger for resolution events.
func WithLogger(l *logging.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxLines caps the scrollback. Zero or negative means unlimited.
func WithMaxLines(n int) Option {
	return func(c *Console) { c.maxLines = n }
}

// WithTheme sets the starting theme. Unknown themes are ignored.
func WithTheme(t Theme) Option {
	return func(c *Console) {
		if t.IsValid() {
			c.theme = t
		}
	}
}

// WelcomeLines returns the lines every console starts with.
func WelcomeLines() []Line {
	return []Line{
		{Kind: LineOutput, Content: "🍪 Welcome to Cookie Shell! 🍪", Style: shell.StyleInfo},
		{Kind: LineOutput, Content: `Type "cookie help" to see available commands.`, Style: shell.StyleInfo},
	}
}

// New creates a Console in the root folder showing the welcome lines.
func New(r Resolver, rng shell.Random, opts ...Option) *Console {
	c := &Console{
		resolver: r,
		rng:      rng,
		logger:   logging.NopLogger(),
		maxLines: DefaultMaxLines,
		session:  shell.NewSession(),
		lines:    WelcomeLines(),
		theme:    ThemeLight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit resolves one input line and applies the result.
//
// Blank input is a no-op and returns the zero Update. The lock is not held
// while the interpreter runs, so Lines and the other readers stay
// available during a slow command such as "cookie bake".
func (c *Console) Submit(input string) (Update, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Update{Theme: c.Theme()}, nil
	}

	c.mu.Lock()
	if c.locked {
		c.mu.Unlock()
		return Update{}, ErrLocked
	}
	if c.busy {
		c.mu.Unlock()
		return Update{}, ErrBusy
	}
	c.busy = true
	session := c.session
	echo := Line{Kind: LineCommand, Content: trimmed}
	c.appendLocked(echo)
	c.mu.Unlock()

	res, next, err := c.resolver.Resolve(trimmed, session, c.rng)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		c.logger.Error("command failed",
			"folder", string(session.Folder),
			"error", err.Error(),
		)
		line := Line{Kind: LineOutput, Content: ErrorMessage, Style: shell.StyleError}
		c.appendLocked(line)
		return Update{Lines: []Line{echo, line}, Theme: c.theme}, nil
	}

	c.session = next
	up := Update{Result: res, Lines: []Line{echo}}

	switch res.Kind {
	case shell.KindClear:
		c.lines = nil
		up.Lines = nil
		up.Cleared = true
	case shell.KindOutput, shell.KindExit:
		line := Line{Kind: LineOutput, Content: res.Content, Style: res.Style}
		c.appendLocked(line)
		up.Lines = append(up.Lines, line)
	}

	if res.Kind == shell.KindExit {
		c.locked = true
		up.Locked = true
	}
	if res.ToggleTheme {
		c.theme = c.theme.Toggle()
	}
	up.Theme = c.theme

	c.logger.Debug("command resolved",
		"folder", string(next.Folder),
		"kind", res.Kind.String(),
		"in_game", next.InGame(),
	)
	return up, nil
}

func (c *Console) appendLocked(l Line) {
	c.lines = append(c.lines, l)
	if c.maxLines > 0 && len(c.lines) > c.maxLines {
		c.lines = c.lines[len(c.lines)-c.maxLines:]
	}
}

// Lines returns a copy of the scrollback.
func (c *Console) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Session returns the current session state.
func (c *Console) Session() shell.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Locked reports whether the session has exited.
func (c *Console) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked
}

// Busy reports whether a submission is resolving.
func (c *Console) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Theme returns the current theme.
func (c *Console) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// String renders a line as plain text, prefixing commands with Prompt.
func (l Line) String() string {
	if l.Kind == LineCommand {
		return Prompt + l.Content
	}
	return l.Content
}

// ParseTheme validates a theme name.
func ParseTheme(name string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(name)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown theme %q (want %q or %q)", name, ThemeLight, ThemeDark)
	}
	return t, nil
}
