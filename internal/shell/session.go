package shell

// Folder is a named mode of the session. It scopes which reaction verbs are
// available and how shared verbs resolve.
type Folder string

// Known folders. Root is where every session starts and cannot be entered
// with cd.
const (
	FolderRoot          Folder = "root"
	FolderCookieJar     Folder = "cookie jar"
	FolderEvilCookieJar Folder = "evil cookie jar"
)

// Folders returns the folders reachable with "cookie cd", in listing order.
func Folders() []Folder {
	return []Folder{FolderCookieJar, FolderEvilCookieJar}
}

// IsValid reports whether f is one of the known folders, root included.
func (f Folder) IsValid() bool {
	switch f {
	case FolderRoot, FolderCookieJar, FolderEvilCookieJar:
		return true
	}
	return false
}

// MaxAttempts is the number of guesses a player gets per game.
const MaxAttempts = 3

// Guess range for the number game.
const (
	MinGuess = 1
	MaxGuess = 5
)

// GameState is the state of an in-progress number game.
type GameState struct {
	Active      bool
	Target      int
	Attempts    int
	MaxAttempts int
}

// Session is the per-console state threaded through Resolve.
// It is a value: Resolve never mutates the session it receives.
type Session struct {
	Folder Folder
	Game   *GameState
}

// NewSession returns the start-of-session state.
func NewSession() Session {
	return Session{Folder: FolderRoot}
}

// InGame reports whether guesses are currently being intercepted.
func (s Session) InGame() bool {
	return s.Game != nil && s.Game.Active
}

// withFolder returns a copy of s in folder f.
func (s Session) withFolder(f Folder) Session {
	s.Folder = f
	return s
}

// withGame returns a copy of s holding its own copy of g (nil ends the game).
func (s Session) withGame(g *GameState) Session {
	if g != nil {
		cp := *g
		g = &cp
	}
	s.Game = g
	return s
}
