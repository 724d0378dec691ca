package page

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/herofx/internal/tilt"
)

const (
	cardGap       = 2
	cardHeight    = 5 // three content rows plus border
	maxCardWidth  = 32
	minCardWidth  = 12
	maxToolsWidth = 64
)

var sectionOrder = []string{"hero", "tools", "features", "contact"}

// layout recomputes section offsets and hit boxes. Call it whenever a
// section changes height.
func (m *Model) layout() {
	offset := 0
	for _, id := range sectionOrder {
		m.offsets[id] = offset
		m.scroller.Register(id, float64(offset))
		offset += m.sectionHeight(id)
	}
	m.scroller.SetMax(float64(m.maxScroll()))

	m.navRects = m.navRects[:0]
	x := 1 // nav padding
	for _, l := range navLinks {
		w := lipgloss.Width(l.key + " " + l.label)
		m.navRects = append(m.navRects, span{x, x + w})
		x += w + 2
	}

	header := lipgloss.Height(m.sectionHeader("x"))

	m.toolRects = m.toolRects[:0]
	top := m.offsets["tools"] + header
	for i := 0; i < m.tools.Len(); i++ {
		h := lipgloss.Height(m.toolCard(i))
		m.toolRects = append(m.toolRects, span{top, top + h})
		top += h
	}

	m.cardRects = m.cardRects[:0]
	w := m.featureCardWidth()
	top = m.offsets["features"] + header
	for i := range m.cfg.Cards {
		m.cardRects = append(m.cardRects, tilt.Rect{
			Left:   float64(i * (w + cardGap)),
			Top:    float64(top),
			Width:  float64(w),
			Height: cardHeight,
		})
	}
}

func (m Model) sectionHeight(id string) int {
	if id == "hero" {
		return m.canvas.Rows + heroChrome
	}
	return lipgloss.Height(m.renderSection(id))
}

func (m Model) renderSection(id string) string {
	switch id {
	case "hero":
		return m.heroView()
	case "tools":
		return m.toolsView()
	case "features":
		return m.featuresView()
	case "contact":
		return m.contactView()
	}
	return ""
}

// View renders the nav bar over the visible slice of the page.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.opts.HeroOnly {
		return m.canvas.Render(m.theme.BackgroundRGBA()) + "\n" + m.headlineLine(true)
	}

	sections := make([]string, len(sectionOrder))
	for i, id := range sectionOrder {
		sections[i] = m.renderSection(id)
	}
	lines := strings.Split(strings.Join(sections, "\n"), "\n")

	vh := m.viewportHeight()
	from := min(m.scrollRow(), len(lines))
	to := min(from+vh, len(lines))
	visible := append([]string(nil), lines[from:to]...)
	for len(visible) < vh {
		visible = append(visible, "")
	}
	return m.navView() + "\n" + strings.Join(visible, "\n")
}

func (m Model) navView() string {
	active := m.activeSection()
	items := make([]string, len(navLinks))
	for i, l := range navLinks {
		text := l.key + " " + l.label
		if l.href[1:] == active {
			items[i] = m.st.navActive.Render(text)
		} else {
			items[i] = m.st.navItem.Render(text)
		}
	}
	return m.st.nav.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

// activeSection is the last section whose top has scrolled into view.
func (m Model) activeSection() string {
	pos := m.scrollRow()
	active := sectionOrder[0]
	for _, id := range sectionOrder {
		if m.offsets[id] <= pos {
			active = id
		}
	}
	return active
}

func (m Model) heroView() string {
	lines := []string{
		m.canvas.Render(m.theme.BackgroundRGBA()),
		"",
		m.headlineLine(false),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			m.st.subtitle.Render("We build the automations that give your team its week back.")),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m Model) headlineLine(status bool) string {
	line := m.st.headline.Render("Eliminate ") + m.st.typed.Render(m.headline) + m.st.cursor.Render("▌")
	if status {
		line += "  " + m.st.muted.Render(m.Status())
		if m.paused {
			line += m.st.muted.Render(" · paused")
		}
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

func (m Model) sectionHeader(title string) string {
	return m.st.section.Render(title)
}

func (m Model) toolsView() string {
	parts := []string{m.sectionHeader("Tools we work with")}
	for i := 0; i < m.tools.Len(); i++ {
		parts = append(parts, m.toolCard(i))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) toolCard(i int) string {
	c := m.cfg.Tools[i]
	width := min(m.width, maxToolsWidth) - 2

	marker := "▸"
	if m.tools.Expanded(i) {
		marker = "▾"
	}
	content := marker + " " + m.st.cardTitle.Render(c.Title) + "  " + m.st.cardBody.Render(c.Body)
	if m.tools.Expanded(i) && c.Detail != "" {
		content += "\n" + m.st.muted.Render(c.Detail)
	}

	style := m.st.card
	if i == m.toolCursor {
		style = m.st.cardActive
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

func (m Model) featureCardWidth() int {
	n := len(m.cfg.Cards)
	if n == 0 {
		return 0
	}
	w := (m.width - (n-1)*cardGap) / n
	return max(minCardWidth, min(maxCardWidth, w))
}

func (m Model) featuresView() string {
	w := m.featureCardWidth()
	row := make([]string, 0, 2*len(m.cfg.Cards))
	for i := range m.cfg.Cards {
		if i > 0 {
			row = append(row, strings.Repeat(" ", cardGap))
		}
		row = append(row, m.featureCard(i, w))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.sectionHeader("What we do"),
		lipgloss.JoinHorizontal(lipgloss.Top, row...))
}

// featureCard draws a card of fixed height w wide. Tilt shifts the text
// towards the pointer and lights the border.
func (m Model) featureCard(i, w int) string {
	c := m.cfg.Cards[i]
	t := m.tilts[i]
	text := w - 4 // border and padding

	shift := 2 + int(math.Round(t.RotateY/tilt.MaxAngle*2))
	indent := strings.Repeat(" ", shift)
	room := max(0, text-shift)

	status := ""
	style := m.st.card
	if !t.IsFlat() {
		status = fmt.Sprintf("%+.0f° %+.0f°", t.RotateX, t.RotateY)
		style = m.st.cardTilted
	}
	content := strings.Join([]string{
		indent + m.st.cardTitle.Render(fit(c.Title, room)),
		indent + m.st.cardBody.Render(fit(c.Body, room)),
		m.st.muted.Render(fit(status, text)),
	}, "\n")
	return style.Width(w - 2).Render(content)
}

func (m Model) contactView() string {
	help := "1-4 jump · j/k select · enter expand · t theme · ? help · q quit"
	if m.showHelp {
		help = strings.Join([]string{
			"1-4        jump to Home, Tools, Features, Contact",
			"j/k ↑/↓    select a tool card",
			"enter      expand or collapse the selected card",
			"pgup/pgdn  scroll half a page",
			"space      pause the particle field",
			"r          reseed the particle field",
			"t          next theme (" + m.theme.Name + ")",
			"q          quit",
		}, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.sectionHeader("Contact"),
		m.st.headline.Render("Ready to reclaim your week?"),
		m.st.muted.Render("hello@herofx.dev"),
		"",
		m.st.help.Render(help),
		"",
	)
}

// fit truncates s to n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	return string(r[:n-1]) + "…"
}
