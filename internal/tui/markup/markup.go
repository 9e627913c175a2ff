// Package markup renders the small HTML subset used in shell output as
// styled terminal text.
//
// Supported: <strong>/<b> (bold), <em>/<i> (italic), <span class="...">
// and <div class="..."> with palette classes, <pre> (kept verbatim) and
// <br>. Any other tag is written back out unchanged so that user text such
// as an echoed "<foo>" survives.
package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Styler resolves tag and class styles. *styles.Styles satisfies it.
type Styler interface {
	Bold() lipgloss.Style
	Italic() lipgloss.Style
	ForClass(class string) (lipgloss.Style, bool)
}

// Render converts content to terminal text, applying base to every run of
// text and layering tag styles on top.
func Render(content string, base lipgloss.Style, st Styler) string {
	var b strings.Builder
	stack := []frame{{tag: atom.Atom(0), style: base}}
	z := html.NewTokenizer(strings.NewReader(content))

	for {
		tt := z.Next()
		// Raw must be read before Token, which may rewrite the buffer.
		raw := string(z.Raw())
		switch tt {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce.
			return b.String()

		case html.TextToken:
			writeStyled(&b, string(z.Text()), stack[len(stack)-1].style)

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Br {
				b.WriteString("\n")
				continue
			}
			style, ok := tagStyle(tok, st)
			if !ok {
				writeStyled(&b, raw, stack[len(stack)-1].style)
				continue
			}
			if tt == html.SelfClosingTagToken {
				continue
			}
			stack = append(stack, frame{
				tag:   tok.DataAtom,
				style: style.Inherit(stack[len(stack)-1].style),
			})

		case html.EndTagToken:
			tok := z.Token()
			if _, ok := tagStyle(tok, st); !ok {
				writeStyled(&b, raw, stack[len(stack)-1].style)
				continue
			}
			// Pop back to the matching open tag; stray closers are dropped.
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].tag == tok.DataAtom {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

// Strip returns content with markup removed and entities decoded.
func Strip(content string) string {
	return Render(content, lipgloss.NewStyle(), plain{})
}

type frame struct {
	tag   atom.Atom
	style lipgloss.Style
}

// tagStyle reports the style a known tag contributes. Unknown tags are
// not ok.
func tagStyle(tok html.Token, st Styler) (lipgloss.Style, bool) {
	switch tok.DataAtom {
	case atom.Strong, atom.B:
		return st.Bold(), true
	case atom.Em, atom.I:
		return st.Italic(), true
	case atom.Pre:
		return lipgloss.NewStyle(), true
	case atom.Span, atom.Div:
		style := lipgloss.NewStyle()
		for _, attr := range tok.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, class := range strings.Fields(attr.Val) {
				if cs, ok := st.ForClass(class); ok {
					style = style.Inherit(cs)
				}
			}
		}
		return style, true
	}
	return lipgloss.Style{}, false
}

// writeStyled renders each line separately so lipgloss never pads a
// multi-line block to a common width.
func writeStyled(b *strings.Builder, text string, style lipgloss.Style) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		if line != "" {
			b.WriteString(style.Render(line))
		}
	}
}

type plain struct{}

func (plain) Bold() lipgloss.Style                   { return lipgloss.NewStyle() }
func (plain) Italic() lipgloss.Style                 { return lipgloss.NewStyle() }
func (plain) ForClass(string) (lipgloss.Style, bool) { return lipgloss.NewStyle(), true }
