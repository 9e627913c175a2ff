// Package styles maps Cookie Shell style tags and markup classes to
// lipgloss styles for the light and dark themes.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/shell"
)

// Styles is the resolved style set for one theme.
type Styles struct {
	Theme   console.Theme
	Palette *ColorPalette

	Prompt  lipgloss.Style
	Command lipgloss.Style
	Spinner lipgloss.Style
	Status  lipgloss.Style
	Locked  lipgloss.Style
	Title   lipgloss.Style

	tags    map[string]lipgloss.Style
	classes map[string]lipgloss.Style
}

// New builds the style set for theme.
func New(theme console.Theme) *Styles {
	p := PaletteFor(theme)
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	s := &Styles{
		Theme:   theme,
		Palette: p,
		Prompt:  fg(p.Prompt).Bold(true),
		Command: fg(p.Text),
		Spinner: fg(p.Prompt),
		Status:  fg(p.Muted),
		Locked:  fg(p.Muted).Italic(true),
		Title:   fg(p.Prompt).Bold(true),
	}

	s.tags = map[string]lipgloss.Style{
		shell.StyleDefault:  fg(p.Text),
		shell.StyleInfo:     fg(p.Info),
		shell.StyleSuccess:  fg(p.Success),
		shell.StyleError:    fg(p.Error),
		shell.StyleWarning:  fg(p.Warning),
		shell.StyleFolder:   fg(p.Folder).Bold(true),
		shell.StyleHelp:     fg(p.Text),
		shell.StyleHelpEvil: fg(p.Evil),
		shell.StyleFortune:  fg(p.Fortune).Italic(true),
		shell.StyleNerd:     fg(p.Nerd),
		shell.StyleTheme:    fg(p.Purple),
		shell.StyleGame:     fg(p.Game),
		shell.StyleFriendly: fg(p.Friendly),
		shell.StyleEvil:     fg(p.Evil).Bold(true),
		shell.StyleMystic:   fg(p.Mystic).Italic(true),
		shell.StyleHacker:   fg(p.Hacker),
		shell.StyleGlitch:   fg(p.Glitch).Strikethrough(true),
		shell.StyleLore:     fg(p.Lore).Italic(true),
	}

	s.classes = map[string]lipgloss.Style{
		"cmd":    fg(p.Command).Bold(true),
		"bold":   lipgloss.NewStyle().Bold(true),
		"italic": lipgloss.NewStyle().Italic(true),
		"muted":  fg(p.Muted),
		"red":    fg(p.Red),
		"green":  fg(p.Green),
		"blue":   fg(p.Blue),
		"yellow": fg(p.Yellow),
		"purple": fg(p.Purple),
		"pink":   fg(p.Pink),
		"orange": fg(p.Orange),
	}
	return s
}

// ForTag returns the line style for a result style tag. Unknown tags get
// the default text style.
func (s *Styles) ForTag(tag string) lipgloss.Style {
	if st, ok := s.tags[tag]; ok {
		return st
	}
	return s.tags[shell.StyleDefault]
}

// ForClass returns the style for a markup class.
func (s *Styles) ForClass(class string) (lipgloss.Style, bool) {
	st, ok := s.classes[class]
	return st, ok
}

// Bold returns the style used for <strong> and <b>.
func (s *Styles) Bold() lipgloss.Style {
	return s.classes["bold"]
}

// Italic returns the style used for <em> and <i>.
func (s *Styles) Italic() lipgloss.Style {
	return s.classes["italic"]
}
