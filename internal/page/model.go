package page

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/herofx/internal/cards"
	"github.com/san-kum/herofx/internal/config"
	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/scroll"
	"github.com/san-kum/herofx/internal/surface"
	"github.com/san-kum/herofx/internal/tilt"
	"github.com/san-kum/herofx/internal/typing"
)

const (
	navHeight   = 1
	heroChrome  = 4 // blank, headline, subtitle, blank
	minHeroRows = 4
	wheelStep   = 3

	// DefaultCellScale maps field units onto braille dots: one dot covers
	// four CSS pixels.
	DefaultCellScale = 0.25
)

type navLink struct {
	key, label, href string
}

var navLinks = []navLink{
	{"1", "Home", "#hero"},
	{"2", "Tools", "#tools"},
	{"3", "Features", "#features"},
	{"4", "Contact", "#contact"},
}

type (
	frameMsg time.Time
	typeMsg  struct{}
)

// Options tune how the page is hosted.
type Options struct {
	HeroOnly  bool    // render only the particle field and headline
	CellScale float64 // field units to braille dots, DefaultCellScale when 0
}

type span struct{ from, to int }

// Model contains the page state: the effects and the layout they sit in.
type Model struct {
	cfg   *config.Config
	opts  Options
	theme Theme
	st    styles

	width, height int

	canvas *surface.Braille
	field  *particles.Field
	stats  particles.FrameStats

	typer    *typing.Typewriter
	headline string

	tools      *cards.Group
	toolCursor int
	toolRects  []span // content rows per tool card

	tilts     []tilt.Transform
	cardRects []tilt.Rect // content coordinates per feature card

	scroller  *scroll.Scroller
	offsets   map[string]int
	navRects  []span // columns per nav link
	lastFrame time.Time

	paused   bool
	showHelp bool
}

// New builds the page from cfg. The field waits for the first window size
// before it has anything to draw.
func New(cfg *config.Config, opts Options) (Model, error) {
	if opts.CellScale <= 0 {
		opts.CellScale = DefaultCellScale
	}
	pc, err := cfg.ParticleConfig()
	if err != nil {
		return Model{}, err
	}

	var src particles.Source
	if cfg.Seed != 0 {
		src = rand.New(rand.NewSource(cfg.Seed))
	}
	canvas := surface.NewBraille(0, 0)
	field, err := particles.New(surface.Scaled{Surface: canvas, Factor: opts.CellScale}, pc, src)
	if err != nil {
		return Model{}, err
	}

	typer, err := typing.New(cfg.Typing.Words, cfg.Typing.Timing)
	if err != nil {
		return Model{}, err
	}

	tilts := make([]tilt.Transform, len(cfg.Cards))
	for i := range tilts {
		tilts[i] = tilt.Flat()
	}

	theme := GetTheme(cfg.Theme)
	return Model{
		cfg:      cfg,
		opts:     opts,
		theme:    theme,
		st:       newStyles(theme),
		canvas:   canvas,
		field:    field,
		typer:    typer,
		tools:    cards.NewGroup(len(cfg.Tools)),
		tilts:    tilts,
		scroller: scroll.New(0, cfg.Scroll.Duration),
		offsets:  make(map[string]int),
	}, nil
}

// Run starts the page as a full-screen program with mouse motion enabled.
func Run(cfg *config.Config, opts Options) error {
	m, err := New(cfg, opts)
	if err != nil {
		return err
	}
	slog.Info("page starting", "hero_only", opts.HeroOnly, "theme", m.theme.Name, "fps", cfg.FPS)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(typeAfter(0), m.nextFrame())
}

func (m Model) nextFrame() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func typeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return typeMsg{} })
}

// Update handles input, frames and typing steps.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case frameMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastFrame.IsZero() {
			dt = max(0, now.Sub(m.lastFrame))
		}
		if now.After(m.lastFrame) {
			m.lastFrame = now
		}
		if !m.paused {
			m.stats = m.field.RenderFrame()
		}
		m.scroller.Advance(dt)
		return m, m.nextFrame()
	case typeMsg:
		step := m.typer.Step()
		m.headline = step.Text
		return m, typeAfter(step.Delay)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

// resize resizes the canvas and reinitialises the field in one step, so the
// next frame sees the new size only.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h

	rows := h - navHeight - heroChrome
	if m.opts.HeroOnly {
		rows = h - 1
	}
	if rows < minHeroRows {
		rows = minHeroRows
	}
	m.canvas.Resize(w, rows)
	FitBraille(m.field, m.canvas, m.opts.CellScale, false)
	slog.Debug("page resized", "cols", w, "rows", h, "canvas_rows", rows)

	m.layout()
}

// FitBraille points f at canvas, one braille dot per 1/scale field units,
// and sizes the field to cover it. With keep the current particles are
// scaled into the new size (a restored snapshot); otherwise the field is
// reinitialised.
func FitBraille(f *particles.Field, canvas *surface.Braille, scale float64, keep bool) {
	if scale <= 0 {
		scale = DefaultCellScale
	}
	f.SetSurface(surface.Scaled{Surface: canvas, Factor: scale})
	pw, ph := canvas.PixelSize()
	w, h := float64(pw)/scale, float64(ph)/scale
	if keep {
		f.Refit(w, h)
		return
	}
	f.Resize(w, h)
	f.Initialize()
}

func (m Model) viewportHeight() int {
	if h := m.height - navHeight; h > 0 {
		return h
	}
	return 0
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3", "4":
		m.clickNav(int(msg.String()[0] - '1'))
	case "up", "k":
		if m.toolCursor > 0 {
			m.toolCursor--
		}
	case "down", "j":
		if m.toolCursor < m.tools.Len()-1 {
			m.toolCursor++
		}
	case "enter":
		m.clickTool(m.toolCursor)
	case "pgdown", "ctrl+d":
		m.scroller.Jump(m.scroller.Position() + float64(m.viewportHeight()/2))
	case "pgup", "ctrl+u":
		m.scroller.Jump(m.scroller.Position() - float64(m.viewportHeight()/2))
	case "home", "g":
		m.scroller.Click("#hero")
	case "end", "G":
		m.scroller.ScrollTo(float64(m.maxScroll()))
	case " ":
		m.paused = !m.paused
	case "r":
		m.field.Initialize()
	case "t":
		m.theme = NextTheme(m.theme)
		m.st = newStyles(m.theme)
		m.layout()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) clickNav(i int) {
	if i < 0 || i >= len(navLinks) {
		return
	}
	m.scroller.Click(navLinks[i].href)
}

func (m *Model) clickTool(i int) {
	if err := m.tools.Click(i); err != nil {
		slog.Debug("tool click ignored", "error", err)
		return
	}
	m.toolCursor = i
	m.layout()
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.opts.HeroOnly {
		return m
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroller.Jump(m.scroller.Position() - wheelStep)
		return m
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroller.Jump(m.scroller.Position() + wheelStep)
		return m
	}

	if msg.Y < navHeight {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for i, r := range m.navRects {
				if msg.X >= r.from && msg.X < r.to {
					m.clickNav(i)
				}
			}
		}
		m.leaveCards()
		return m
	}

	row := msg.Y - navHeight + m.scrollRow()
	m.tiltCards(float64(msg.X), float64(row))

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for i, r := range m.toolRects {
			if row >= r.from && row < r.to {
				m.clickTool(i)
				break
			}
		}
	}
	return m
}

// tiltCards tilts the card under the pointer and flattens the rest.
func (m *Model) tiltCards(x, y float64) {
	for i, r := range m.cardRects {
		if r.Contains(x, y) {
			// Sample the pointer at the centre of its cell.
			m.tilts[i] = tilt.Move(r, x+0.5, y+0.5)
		} else if !m.tilts[i].IsFlat() {
			m.tilts[i] = tilt.Leave()
		}
	}
}

func (m *Model) leaveCards() {
	for i := range m.tilts {
		m.tilts[i] = tilt.Leave()
	}
}

func (m Model) scrollRow() int { return int(math.Round(m.scroller.Position())) }

func (m Model) maxScroll() int {
	total := 0
	for _, id := range sectionOrder {
		total += m.sectionHeight(id)
	}
	if n := total - m.viewportHeight(); n > 0 {
		return n
	}
	return 0
}

// Status summarises the last frame for the hero footer.
func (m Model) Status() string {
	return fmt.Sprintf("%d particles · %d visible · %d edges", m.cfg.Field.Count, m.stats.Visible, m.stats.Edges)
}
