package page

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/herofx/internal/particles"
)

// Theme defines the page colour scheme.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeMidnight = Theme{
		Name:       "midnight",
		Primary:    lipgloss.Color("#3b82f6"), // Blue accent of the hero
		Secondary:  lipgloss.Color("#60a5fa"),
		Accent:     lipgloss.Color("#a855f7"),
		Background: lipgloss.Color("#0b0f19"),
		Text:       lipgloss.Color("#f8fafc"),
		Muted:      lipgloss.Color("#64748b"),
	}

	ThemePaper = Theme{
		Name:       "paper",
		Primary:    lipgloss.Color("#e5e7eb"),
		Secondary:  lipgloss.Color("#9ca3af"),
		Accent:     lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#111111"),
		Text:       lipgloss.Color("#f3f4f6"),
		Muted:      lipgloss.Color("#6b7280"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"), // Cyan
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{ThemeMidnight, ThemePaper, ThemeCyberpunk, ThemeOcean, ThemeSunset}
)

// GetTheme returns the named theme, falling back to midnight.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMidnight
}

// NextTheme cycles to the theme after t.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BackgroundRGBA is the theme background as an opaque canvas colour.
func (t Theme) BackgroundRGBA() particles.RGBA {
	c, err := colorful.Hex(string(t.Background))
	if err != nil {
		return particles.RGBA{A: 1}
	}
	r, g, b := c.RGB255()
	return particles.RGBA{R: r, G: g, B: b, A: 1}
}
