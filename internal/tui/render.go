package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/tui/markup"
	"github.com/Iron-Ham/cookieshell/internal/tui/styles"
)

// renderLine styles one scrollback line. Echoed commands are user text and
// are never parsed as markup.
func renderLine(l console.Line, st *styles.Styles) string {
	if l.Kind == console.LineCommand {
		return st.Prompt.Render(console.Prompt) + st.Command.Render(l.Content)
	}
	return markup.Render(l.Content, st.ForTag(l.Style), st)
}

// renderLines renders the scrollback wrapped to width. A width of zero or
// less disables wrapping.
func renderLines(lines []console.Line, st *styles.Styles, width int) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		s := renderLine(l, st)
		if width > 0 {
			s = ansi.Wrap(s, width, "")
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n")
}
