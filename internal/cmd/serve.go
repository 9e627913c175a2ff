package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/cookieshell/internal/config"
	"github.com/Iron-Ham/cookieshell/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the console to browsers over WebSocket",
	Long: `Serve Cookie Shell over WebSocket.

Every connection to /ws gets its own session. Clients send
{"input": "cookie help"} and receive frames carrying the new lines,
the current theme and whether the session was cleared or closed.
/healthz answers "ok" while the server is up.

Logs are written to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", config.Default().Server.Addr, "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	st, err := newStack(cfg, "")
	if err != nil {
		return err
	}
	defer st.Close()

	opts := []server.Option{server.WithLogger(st.logger)}
	if cfg.Fortunes.Watch {
		opts = append(opts, server.WithWatcher(st.fortunes))
	}
	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Seed:           cfg.Shell.Seed,
		MaxLines:       cfg.TUI.MaxLines,
		Theme:          st.theme(),
	}, st.interpreter, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving Cookie Shell on ws://%s/ws (Ctrl+C to stop)\n", cfg.Server.Addr)
	return srv.Run(ctx)
}
