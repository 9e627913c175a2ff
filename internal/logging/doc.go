// Package logging provides structured logging for Cookie Shell.
//
// It wraps Go's log/slog with a JSON handler, adds child loggers that carry
// persistent attributes (session ID, remote address, folder), and can write
// to a size-rotated file so the terminal UI never has to share the screen
// with log output.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(stateDir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	sessionLogger := logger.WithSession("4f6c…")
//	sessionLogger.Info("command resolved", "kind", "output", "folder", "cookie jar")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"command resolved","session_id":"4f6c…","kind":"output","folder":"cookie jar"}
//
// # Thread Safety
//
// [Logger] and [RotatingWriter] are safe for concurrent use. Child loggers
// share the parent's writer.
package logging
