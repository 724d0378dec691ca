package page

import "github.com/charmbracelet/lipgloss"

type styles struct {
	nav        lipgloss.Style
	navItem    lipgloss.Style
	navActive  lipgloss.Style
	headline   lipgloss.Style
	typed      lipgloss.Style
	cursor     lipgloss.Style
	subtitle   lipgloss.Style
	section    lipgloss.Style
	card       lipgloss.Style
	cardActive lipgloss.Style
	cardTilted lipgloss.Style
	cardTitle  lipgloss.Style
	cardBody   lipgloss.Style
	muted      lipgloss.Style
	help       lipgloss.Style
}

func newStyles(t Theme) styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1)

	return styles{
		nav:        lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		navItem:    lipgloss.NewStyle().Foreground(t.Text).MarginRight(2),
		navActive:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginRight(2),
		headline:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		typed:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		cursor:     lipgloss.NewStyle().Foreground(t.Secondary).Blink(true),
		subtitle:   lipgloss.NewStyle().Foreground(t.Muted),
		section:    lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).MarginTop(1).MarginBottom(1),
		card:       card,
		cardActive: card.BorderForeground(t.Primary),
		cardTilted: card.BorderForeground(t.Accent),
		cardTitle:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		cardBody:   lipgloss.NewStyle().Foreground(t.Muted),
		muted:      lipgloss.NewStyle().Foreground(t.Muted),
		help:       lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}
