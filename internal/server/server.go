// Package server exposes Cookie Shell consoles over WebSocket.
//
// Every connection to /ws gets its own console, random source and session
// ID. The client sends {"input": "..."} frames; the server answers each one
// with a single Frame describing what changed.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/logging"
	"github.com/Iron-Ham/cookieshell/internal/shell"
)

const (
	// maxMessageSize bounds a single client frame.
	maxMessageSize = 4096
	// shutdownTimeout bounds graceful HTTP shutdown.
	shutdownTimeout = 5 * time.Second
	// closeGrace is how long a close frame may take to send.
	closeGrace = time.Second
)

// Config configures a Server.
type Config struct {
	// Addr is the TCP listen address used by Run.
	Addr string
	// AllowedOrigins lists accepted Origin headers. Empty accepts any.
	AllowedOrigins []string
	// Seed makes per-connection randomness reproducible. Zero draws a fresh
	// seed for every connection.
	Seed int64
	// MaxLines caps each console's scrollback.
	MaxLines int
	// Theme is the starting theme for new consoles.
	Theme console.Theme
}

// Watcher runs a background reload loop until ctx is done.
// *fortune.Store satisfies it.
type Watcher interface {
	Watch(ctx context.Context) error
}

// Server serves WebSocket consoles.
type Server struct {
	cfg      Config
	resolver console.Resolver
	logger   *logging.Logger
	watcher  Watcher
	upgrader websocket.Upgrader

	connSeq atomic.Int64
	conns   sync.WaitGroup

	mu      sync.Mutex
	clients map[string]*websocket.Conn
	closing bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWatcher runs w alongside the HTTP server in Run.
func WithWatcher(w Watcher) Option {
	return func(s *Server) { s.watcher = w }
}

// New creates a Server resolving input with r.
func New(cfg Config, r console.Resolver, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		resolver: r,
		logger:   logging.NopLogger(),
		clients:  make(map[string]*websocket.Conn),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// Handler returns the HTTP routes: /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Run listens on Config.Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully: open WebSocket sessions are sent a close frame and awaited.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	if s.watcher != nil {
		// A failed watcher only stops reloads; consoles keep the last list.
		g.Go(func() error {
			if err := s.watcher.Watch(gctx); err != nil {
				s.logger.Warn("fortune watcher stopped", "error", err.Error())
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.closeClients()
		return err
	})

	err := g.Wait()
	s.conns.Wait()
	s.logger.Info("server stopped")
	return err
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, origin)
}

func (s *Server) newRandom() (shell.Random, error) {
	if s.cfg.Seed != 0 {
		return shell.NewRandom(s.cfg.Seed + s.connSeq.Add(1) - 1), nil
	}
	seed, err := shell.NewSeed()
	if err != nil {
		return nil, err
	}
	return shell.NewRandom(seed), nil
}

// track registers conn for shutdown. It reports false once shutdown has
// begun, in which case the caller must drop the connection.
func (s *Server) track(id string, conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.clients[id] = conn
	return true
}

func (s *Server) untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}

// closeClients asks every open connection to close. Handlers notice on
// their next read and exit.
func (s *Server) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closing = true
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for id, conn := range s.clients {
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace))
		_ = conn.Close()
		delete(s.clients, id)
	}
}

// ActiveSessions returns the number of open WebSocket sessions.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func newSessionID() string {
	return uuid.NewString()
}
