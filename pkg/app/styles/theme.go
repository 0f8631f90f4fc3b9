package styles

import (
	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
	"github.com/charmbracelet/lipgloss"
)

var (
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Foreground lipgloss.Color
	Highlight  lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:    lipgloss.Color("#FF6B9D"),
		Secondary:  lipgloss.Color("#C792EA"),
		Success:    lipgloss.Color("#2ECC71"),
		Error:      lipgloss.Color("#F07178"),
		Muted:      lipgloss.Color("#546E7A"),
		Foreground: lipgloss.Color("#EEFFFF"),
		Highlight:  lipgloss.Color("#37474F"),
	}

	LightPalette = Palette{
		Primary:    lipgloss.Color("#1F6FEB"),
		Secondary:  lipgloss.Color("#8250DF"),
		Success:    lipgloss.Color("#1A7F37"),
		Error:      lipgloss.Color("#CF222E"),
		Muted:      lipgloss.Color("#8C959F"),
		Foreground: lipgloss.Color("#24292F"),
		Highlight:  lipgloss.Color("#DDF4FF"),
	}
)

// Theme holds every style the tracker screen renders with.
type Theme struct {
	Name    data.Theme
	Palette Palette

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Card         lipgloss.Style
	ActiveCard   lipgloss.Style
	Header       lipgloss.Style
	Cursor       lipgloss.Style
	Captured     lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	ProgressBar  lipgloss.Style
	ProgressRest lipgloss.Style
}

// NewTheme returns the dark theme unless name is light.
func NewTheme(name data.Theme) Theme {
	p := DarkPalette
	if name == data.ThemeLight {
		p = LightPalette
	} else {
		name = data.ThemeDark
	}

	return Theme{
		Name:    name,
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Italic(true),

		Text: lipgloss.NewStyle().
			Foreground(p.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Card: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(p.Secondary).
			Padding(0, 1),

		ActiveCard: lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(p.Primary).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Primary).
			Background(p.Highlight).
			Bold(true),

		Captured: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			MarginTop(1),

		Input: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(p.Secondary).
			Padding(0, 1),

		FocusedInput: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(p.Primary).
			Padding(0, 1),

		ProgressBar: lipgloss.NewStyle().
			Foreground(p.Success),

		ProgressRest: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

// Icon is the header glyph for a theme.
func (t Theme) Icon() string {
	if t.Name == data.ThemeLight {
		return "☀️"
	}
	return "🌙"
}
