package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/cookieshell/internal/console"
)

// resolvedMsg carries the outcome of a console submission back to Update.
type resolvedMsg struct {
	update console.Update
	err    error
}

// submit resolves input off the event loop so a slow command such as
// "cookie bake" never freezes the UI.
func submit(c *console.Console, input string) tea.Cmd {
	return func() tea.Msg {
		up, err := c.Submit(input)
		return resolvedMsg{update: up, err: err}
	}
}
