// Package shell is the Cookie Shell command interpreter.
//
// An [Interpreter] turns one raw input line plus the current [Session] into
// a [Result] and the next Session. It performs no I/O: every effect (new
// output line, screen clear, exit lock, theme toggle) is described by the
// returned Result, and every random choice comes from the [Random] passed
// to [Interpreter.Resolve].
//
// Resolution order is fixed: an active number game swallows all input;
// then "cookie ls", "cookie cd", the global verbs, hidden verbs, and
// finally the current folder's reaction table. Anything else is an
// unknown command.
package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/cookieshell/internal/fortune"
	"golang.org/x/text/cases"
)

// Prefix is the first word of every command.
const Prefix = "cookie"

// DefaultBakeDelay is how long "cookie bake" keeps the oven busy.
const DefaultBakeDelay = 2 * time.Second

// ErrInternal reports a failure inside a command handler. Resolve returns
// it together with the unchanged input session.
var ErrInternal = errors.New("internal interpreter failure")

// FortuneSource supplies the fortune list. List must return a non-empty
// slice that the caller will not modify.
type FortuneSource interface {
	List() []string
}

type staticFortunes []string

func (s staticFortunes) List() []string { return s }

// command is a tokenized input line.
type command struct {
	raw      string   // trimmed input, original casing
	prefixed bool     // first word folds to "cookie"
	verb     string   // folded second word, "" when absent
	args     []string // words after the verb, original casing
	rest     string   // folded words after the verb joined by one space
}

// call is what a command implementation receives.
type call struct {
	cmd     command
	session Session
	rng     Random
}

// commandFunc is the signature for command implementations.
type commandFunc func(c call) (Result, Session)

// Interpreter resolves input lines. It holds only immutable tables and
// configuration, so one Interpreter may serve any number of sessions
// concurrently as long as each session has its own Random.
type Interpreter struct {
	globals   map[string]commandFunc
	fortunes  FortuneSource
	bakeDelay time.Duration
	after     func(time.Duration) <-chan time.Time
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithFortunes sets the fortune list source.
func WithFortunes(src FortuneSource) Option {
	return func(in *Interpreter) {
		if src != nil {
			in.fortunes = src
		}
	}
}

// WithBakeDelay sets how long "cookie bake" suspends. Zero or negative
// disables the wait.
func WithBakeDelay(d time.Duration) Option {
	return func(in *Interpreter) { in.bakeDelay = d }
}

// WithClock replaces time.After for the bake delay.
func WithClock(after func(time.Duration) <-chan time.Time) Option {
	return func(in *Interpreter) {
		if after != nil {
			in.after = after
		}
	}
}

// New creates an Interpreter with all commands registered.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		globals:   make(map[string]commandFunc),
		fortunes:  staticFortunes(fortune.Default),
		bakeDelay: DefaultBakeDelay,
		after:     time.After,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.registerCommands()
	return in
}

// registerCommands sets up the verbs available in every folder.
func (in *Interpreter) registerCommands() {
	in.globals["help"] = cmdHelp
	in.globals["clear"] = cmdClear
	in.globals["exit"] = cmdExit
	in.globals["bake"] = in.cmdBake
	in.globals["crumble"] = cmdCrumble
	in.globals["eat"] = cmdEat
	in.globals["fortune"] = in.cmdFortune
	in.globals["game"] = cmdGame
	in.globals["fun"] = cmdFun
	in.globals["nerd"] = cmdNerd
	in.globals["theme"] = cmdTheme
}

// GlobalVerbs returns the verbs that resolve the same way in every folder.
func (in *Interpreter) GlobalVerbs() []string {
	verbs := make([]string, 0, len(in.globals))
	for v := range in.globals {
		verbs = append(verbs, v)
	}
	return verbs
}

// Resolve interprets one input line against s.
//
// Empty or whitespace-only input yields the zero Result and s unchanged.
// The only error is ErrInternal (wrapped); on error the returned session
// is s, so a failed resolution is a no-op on session state.
//
// "cookie bake" blocks the calling goroutine for the bake delay; callers
// that must stay responsive run Resolve off their event loop.
func (in *Interpreter) Resolve(input string, s Session, rng Random) (res Result, next Session, err error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Result{}, s, nil
	}
	if rng == nil {
		return Result{}, s, fmt.Errorf("%w: nil random source", ErrInternal)
	}

	defer func() {
		if r := recover(); r != nil {
			res, next, err = Result{}, s, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if s.InGame() {
		res, next = guess(trimmed, s)
		return res, next, nil
	}

	cur := s
	if !cur.Folder.IsValid() {
		cur.Folder = FolderRoot
	}

	cmd := parse(trimmed)
	if !cmd.prefixed {
		return errorOutput(fmt.Sprintf("Unknown command: \"%s\". Try 'cookie help'.", cmd.raw)), cur, nil
	}

	res, next = in.dispatch(call{cmd: cmd, session: cur, rng: rng})
	return res, next, nil
}

// dispatch applies the folder-independent rules first, then hidden verbs,
// then the current folder's reactions.
func (in *Interpreter) dispatch(c call) (Result, Session) {
	switch c.cmd.verb {
	case "ls":
		return cmdList(c)
	case "cd":
		return cmdChangeFolder(c)
	}

	if fn, ok := in.globals[c.cmd.verb]; ok {
		return fn(c)
	}

	table := reactionTables[c.session.Folder]
	if _, shadowed := table[c.cmd.verb]; !shadowed {
		if fn, ok := hiddenCommands[c.cmd.verb]; ok {
			return fn(c.rng), c.session
		}
	}

	if reaction, ok := table[c.cmd.verb]; ok {
		return output(reaction.Render(mentionedUser(c.cmd.args)), reaction.Style), c.session
	}

	if c.session.Folder == FolderRoot && isFolderVerb(c.cmd.verb) {
		return output("You are not inside any known cookie folder. Use 'cookie cd [folder]' to switch folders.", StyleWarning), c.session
	}

	return errorOutput(fmt.Sprintf("🍪 Unknown cookie command: \"%s\". Try 'cookie help'.", c.cmd.raw)), c.session
}

// parse splits a trimmed line into prefix, verb and arguments. Matching
// fields are Unicode case-folded; args keep the user's casing.
func parse(trimmed string) command {
	words := strings.Fields(trimmed)
	folded := strings.Fields(cases.Fold().String(trimmed))

	cmd := command{raw: trimmed}
	if len(folded) == 0 || folded[0] != Prefix || len(folded) != len(words) {
		return cmd
	}
	cmd.prefixed = true

	if len(folded) > 1 {
		cmd.verb = folded[1]
	}
	if len(words) > 2 {
		cmd.args = words[2:]
		cmd.rest = strings.Join(folded[2:], " ")
	}
	return cmd
}

// mentionedUser returns the first argument that starts with "@".
func mentionedUser(args []string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, "@") {
			return arg
		}
	}
	return ""
}

func isFolderVerb(verb string) bool {
	for _, table := range reactionTables {
		if _, ok := table[verb]; ok {
			return true
		}
	}
	return false
}
