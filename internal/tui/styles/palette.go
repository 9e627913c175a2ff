package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/cookieshell/internal/console"
)

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Text is the default foreground.
	Text lipgloss.Color
	// Muted is used for de-emphasized text and the status bar.
	Muted lipgloss.Color
	// Prompt colors the input prompt and echoed commands.
	Prompt lipgloss.Color
	// Command colors command names inside help output.
	Command lipgloss.Color

	Info     lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Folder   lipgloss.Color
	Friendly lipgloss.Color
	Evil     lipgloss.Color
	Fortune  lipgloss.Color
	Nerd     lipgloss.Color
	Game     lipgloss.Color
	Mystic   lipgloss.Color
	Hacker   lipgloss.Color
	Glitch   lipgloss.Color
	Lore     lipgloss.Color

	// Named accents reachable from markup color classes.
	Red    lipgloss.Color
	Green  lipgloss.Color
	Blue   lipgloss.Color
	Yellow lipgloss.Color
	Purple lipgloss.Color
	Pink   lipgloss.Color
	Orange lipgloss.Color
}

// LightPalette is tuned for light terminal backgrounds.
func LightPalette() *ColorPalette {
	return &ColorPalette{
		Text:    lipgloss.Color("#3B2A1A"), // Dark chocolate
		Muted:   lipgloss.Color("#8A7560"),
		Prompt:  lipgloss.Color("#9A4A00"), // Burnt orange
		Command: lipgloss.Color("#1D4ED8"),

		Info:     lipgloss.Color("#3B2A1A"),
		Success:  lipgloss.Color("#047857"),
		Error:    lipgloss.Color("#B91C1C"),
		Warning:  lipgloss.Color("#B45309"),
		Folder:   lipgloss.Color("#1D4ED8"),
		Friendly: lipgloss.Color("#BE185D"),
		Evil:     lipgloss.Color("#7F1D1D"),
		Fortune:  lipgloss.Color("#92400E"),
		Nerd:     lipgloss.Color("#4338CA"),
		Game:     lipgloss.Color("#6D28D9"),
		Mystic:   lipgloss.Color("#7C3AED"),
		Hacker:   lipgloss.Color("#15803D"),
		Glitch:   lipgloss.Color("#0E7490"),
		Lore:     lipgloss.Color("#78350F"),

		Red:    lipgloss.Color("#B91C1C"),
		Green:  lipgloss.Color("#047857"),
		Blue:   lipgloss.Color("#1D4ED8"),
		Yellow: lipgloss.Color("#A16207"),
		Purple: lipgloss.Color("#6D28D9"),
		Pink:   lipgloss.Color("#BE185D"),
		Orange: lipgloss.Color("#C2410C"),
	}
}

// DarkPalette is tuned for dark terminal backgrounds.
func DarkPalette() *ColorPalette {
	return &ColorPalette{
		Text:    lipgloss.Color("#F5E6D3"), // Cookie dough
		Muted:   lipgloss.Color("#A8A29E"),
		Prompt:  lipgloss.Color("#FBBF24"),
		Command: lipgloss.Color("#60A5FA"),

		Info:     lipgloss.Color("#F5E6D3"),
		Success:  lipgloss.Color("#34D399"),
		Error:    lipgloss.Color("#F87171"),
		Warning:  lipgloss.Color("#FBBF24"),
		Folder:   lipgloss.Color("#60A5FA"),
		Friendly: lipgloss.Color("#F472B6"),
		Evil:     lipgloss.Color("#EF4444"),
		Fortune:  lipgloss.Color("#FCD34D"),
		Nerd:     lipgloss.Color("#818CF8"),
		Game:     lipgloss.Color("#A78BFA"),
		Mystic:   lipgloss.Color("#C4B5FD"),
		Hacker:   lipgloss.Color("#4ADE80"),
		Glitch:   lipgloss.Color("#22D3EE"),
		Lore:     lipgloss.Color("#D6A77A"),

		Red:    lipgloss.Color("#F87171"),
		Green:  lipgloss.Color("#34D399"),
		Blue:   lipgloss.Color("#60A5FA"),
		Yellow: lipgloss.Color("#FDE047"),
		Purple: lipgloss.Color("#A78BFA"),
		Pink:   lipgloss.Color("#F472B6"),
		Orange: lipgloss.Color("#FB923C"),
	}
}

// PaletteFor returns the palette for theme, defaulting to light.
func PaletteFor(theme console.Theme) *ColorPalette {
	if theme == console.ThemeDark {
		return DarkPalette()
	}
	return LightPalette()
}
