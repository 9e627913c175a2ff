package shell

// Kind tells the presentation layer how to apply a Result.
type Kind int

const (
	// KindNone is the zero Result: nothing to emit.
	KindNone Kind = iota
	// KindOutput appends Content as a new display line.
	KindOutput
	// KindClear discards every prior line.
	KindClear
	// KindExit appends Content, then locks the session for good.
	KindExit
)

// String returns the lowercase name used on the wire and in logs.
func (k Kind) String() string {
	switch k {
	case KindOutput:
		return "output"
	case KindClear:
		return "clear"
	case KindExit:
		return "exit"
	default:
		return "none"
	}
}

// Style tags. They are opaque hints for the presentation layer; the
// interpreter picks them but never interprets them.
const (
	StyleDefault  = ""
	StyleInfo     = "info"
	StyleSuccess  = "success"
	StyleError    = "error"
	StyleWarning  = "warning"
	StyleFolder   = "folder"
	StyleHelp     = "help"
	StyleHelpEvil = "help-evil"
	StyleFortune  = "fortune"
	StyleNerd     = "nerd"
	StyleTheme    = "theme"
	StyleGame     = "game"
	StyleFriendly = "friendly"
	StyleEvil     = "evil"
	StyleMystic   = "mystic"
	StyleHacker   = "hacker"
	StyleGlitch   = "glitch"
	StyleLore     = "lore"
)

// Result is the outcome of resolving one input line.
type Result struct {
	Kind    Kind
	Content string
	Style   string

	// ToggleTheme asks the presentation layer to flip between its light
	// and dark themes after appending Content.
	ToggleTheme bool
}

// IsZero reports whether r is the no-op result.
func (r Result) IsZero() bool {
	return r.Kind == KindNone
}

func output(content, style string) Result {
	return Result{Kind: KindOutput, Content: content, Style: style}
}

func errorOutput(content string) Result {
	return Result{Kind: KindOutput, Content: content, Style: StyleError}
}
