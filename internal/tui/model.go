package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/logging"
	"github.com/Iron-Ham/cookieshell/internal/shell"
	"github.com/Iron-Ham/cookieshell/internal/tui/styles"
)

// Rows reserved below the scrollback: input line and status bar.
const chromeHeight = 2

// Model is the bubbletea model for the terminal console.
type Model struct {
	console *console.Console
	logger  *logging.Logger
	styles  *styles.Styles

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	busy   bool
	locked bool
	notice string
}

// NewModel creates a model driving c.
func NewModel(c *console.Console, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}
	st := styles.New(c.Theme())

	ti := textinput.New()
	ti.Prompt = console.Prompt
	ti.Placeholder = "cookie help"
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		console:  c,
		logger:   logger,
		input:    ti,
		viewport: viewport.New(0, 0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		locked:   c.Locked(),
	}
	m.applyStyles(st)
	return m
}

func (m *Model) applyStyles(st *styles.Styles) {
	m.styles = st
	m.input.PromptStyle = st.Prompt
	m.input.TextStyle = st.Command
	m.input.PlaceholderStyle = st.Status
	m.spinner.Style = st.Spinner
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-len([]rune(console.Prompt))-1, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resolvedMsg:
		return m.handleResolved(msg), nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		// The echoed command appears while the resolution is still running.
		m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyEnter:
		if m.locked {
			return m, nil
		}
		if m.busy {
			m.notice = "🍪 Still working on the last command..."
			return m, nil
		}
		value := m.input.Value()
		m.input.Reset()
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		m.busy = true
		m.notice = ""
		return m, tea.Batch(submit(m.console, value), m.spinner.Tick)
	}

	if m.locked {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResolved(msg resolvedMsg) Model {
	m.busy = false

	switch {
	case errors.Is(msg.err, console.ErrLocked):
		m.locked = true
	case errors.Is(msg.err, console.ErrBusy):
		m.notice = "🍪 Still working on the last command..."
	case msg.err != nil:
		m.logger.Error("submit failed", "error", msg.err.Error())
		m.notice = msg.err.Error()
	}

	if msg.update.Theme.IsValid() && msg.update.Theme != m.styles.Theme {
		m.applyStyles(styles.New(msg.update.Theme))
		m.logger.Info("theme changed", "theme", string(msg.update.Theme))
	}
	if msg.update.Locked {
		m.locked = true
		m.input.Blur()
	}

	m.refresh()
	return m
}

// refresh re-renders the scrollback into the viewport and follows the tail.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderLines(m.console.Lines(), m.styles, m.width))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Preheating the oven..."
	}

	var input string
	switch {
	case m.locked:
		input = m.styles.Locked.Render("Session closed. Press esc to quit.")
	case m.busy:
		input = m.spinner.View() + " " + m.styles.Status.Render("baking...")
	default:
		input = m.input.View()
	}

	return m.viewport.View() + "\n" + input + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	var bar string
	if m.notice != "" {
		bar = m.styles.ForTag(shell.StyleWarning).Render(m.notice)
	} else {
		s := m.console.Session()
		status := fmt.Sprintf("📂 %s · %s theme · esc to quit", s.Folder, m.styles.Theme)
		if s.InGame() {
			status = fmt.Sprintf("🎲 guessing (%d left) · %s", s.Game.MaxAttempts-s.Game.Attempts, status)
		}
		bar = m.styles.Status.Render(status)
	}
	// The status bar must fit on one row.
	if m.width > 0 && ansi.StringWidth(bar) > m.width {
		bar = ansi.Truncate(bar, m.width, "...")
	}
	return bar
}
