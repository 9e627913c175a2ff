// Package tui is the full-screen terminal front end for Cookie Shell.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	logger  *logging.Logger
}

// New creates a new TUI application driving c.
func New(c *console.Console, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(c, logger),
		logger: logger,
	}
}

// Run starts the TUI and blocks until the user quits or ctx is done.
// Cancellation is a clean exit, not an error.
func (a *App) Run(ctx context.Context) error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	a.logger.Info("terminal console started")
	_, err := a.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	a.logger.Info("terminal console stopped")
	return err
}
