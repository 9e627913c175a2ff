package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/cookieshell/internal/config"
	"github.com/Iron-Ham/cookieshell/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the terminal console",
	Long: `Open the Cookie Shell console in the terminal.

On an interactive terminal this starts the full-screen console. When stdin
or stdout is not a terminal, or --plain is given, commands are read one
per line and answered as plain text, which makes scripting easy:

  printf 'cookie fortune\ncookie exit\n' | cookieshell run`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

var runPlain bool

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runPlain, "plain", false, "Use the line-based console even on a terminal")
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	st, err := newStack(cfg, config.StateDir())
	if err != nil {
		return err
	}
	defer st.Close()

	c, err := st.newConsole()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	interactive := !runPlain && isTerminal(os.Stdin) && isTerminal(os.Stdout)
	if interactive {
		if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			st.logger.Debug("terminal size", "width", width, "height", height)
		}
		// The plain console blocks in a read, so only the full-screen one
		// traps signals.
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return st.watchFortunes(gctx) })
	g.Go(func() error {
		// The console decides when the session is over.
		defer cancel()
		if interactive {
			return tui.New(c, st.logger).Run(gctx)
		}
		return tui.RunPlain(gctx, c, cmd.InOrStdin(), cmd.OutOrStdout())
	})
	return g.Wait()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
