package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/shell"
)

// Frame types sent to the client.
const (
	FrameLines = "lines"
	FrameClear = "clear"
	FrameExit  = "exit"
	FrameError = "error"
)

// ClientMessage is the only frame a client sends.
type ClientMessage struct {
	Input string `json:"input"`
}

// Frame is sent to the client after the welcome and after every input.
type Frame struct {
	Type    string         `json:"type"`
	Session string         `json:"session,omitempty"`
	Lines   []console.Line `json:"lines,omitempty"`
	Theme   console.Theme  `json:"theme"`
	Error   string         `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Counted before the upgrade so Serve cannot finish waiting while a
	// handshake is still in flight.
	s.conns.Add(1)
	defer s.conns.Done()

	rng, err := s.newRandom()
	if err != nil {
		s.logger.Error("seeding session failed", "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.logger.Warn("websocket upgrade failed",
			"origin", r.Header.Get("Origin"),
			"error", err.Error(),
		)
		return
	}

	id := newSessionID()
	log := s.logger.WithSession(id)

	if !s.track(id, conn) {
		_ = conn.Close()
		return
	}
	defer func() {
		s.untrack(id)
		_ = conn.Close()
		log.Info("session closed")
	}()

	conn.SetReadLimit(maxMessageSize)

	opts := []console.Option{console.WithLogger(log)}
	if s.cfg.MaxLines != 0 {
		opts = append(opts, console.WithMaxLines(s.cfg.MaxLines))
	}
	if s.cfg.Theme.IsValid() {
		opts = append(opts, console.WithTheme(s.cfg.Theme))
	}
	c := console.New(s.resolver, rng, opts...)
	log.Info("session opened", "remote", r.RemoteAddr)

	welcome := Frame{Type: FrameLines, Session: id, Lines: c.Lines(), Theme: c.Theme()}
	if err := conn.WriteJSON(welcome); err != nil {
		log.Warn("write welcome failed", "error", err.Error())
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("read failed", "error", err.Error())
			}
			return
		}

		if err := conn.WriteJSON(s.respond(c, data)); err != nil {
			log.Warn("write failed", "error", err.Error())
			return
		}
	}
}

// respond turns one client frame into the reply frame.
func (s *Server) respond(c *console.Console, data []byte) Frame {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Frame{Type: FrameError, Error: "invalid message", Theme: c.Theme()}
	}

	up, err := c.Submit(msg.Input)
	if err != nil {
		if errors.Is(err, console.ErrLocked) || errors.Is(err, console.ErrBusy) {
			return Frame{Type: FrameError, Error: err.Error(), Theme: c.Theme()}
		}
		return Frame{Type: FrameError, Error: console.ErrorMessage, Theme: c.Theme()}
	}

	f := Frame{Type: FrameLines, Lines: up.Lines, Theme: up.Theme}
	switch {
	case up.Cleared:
		f.Type = FrameClear
	case up.Result.Kind == shell.KindExit:
		f.Type = FrameExit
	}
	return f
}
