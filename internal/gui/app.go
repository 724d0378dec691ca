package gui

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/herofx/internal/config"
	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/tilt"
	"github.com/san-kum/herofx/internal/typing"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720

	headlineSize = 48
	bodySize     = 20
	cardWidth    = 260
	cardHeight   = 110
	cardGap      = 32
	cardMargin   = 48
)

type App struct {
	Config *config.Config
	Field  *particles.Field
	Canvas *Canvas
	Typer  *typing.Typewriter

	Headline string
	NextType time.Time
	Tilts    []tilt.Transform
	Paused   bool

	// The field renders into an offscreen target so a paused frame stays
	// on screen without advancing.
	Target rl.RenderTexture2D

	Accent rl.Color
	Text   rl.Color
	Muted  rl.Color
}

// initWindow opens a resizable window and caps the frame rate to fps.
func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(defaultWidth, defaultHeight, "herofx")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(rl.KeyQ)
}

// NewApp builds the field, typewriter and card state for cfg. The window
// must already be open since the offscreen target lives on the GPU.
func NewApp(cfg *config.Config) (*App, error) {
	pc, err := cfg.ParticleConfig()
	if err != nil {
		return nil, err
	}
	var src particles.Source
	if cfg.Seed != 0 {
		src = rand.New(rand.NewSource(cfg.Seed))
	}

	canvas := &Canvas{Background: rl.NewColor(11, 15, 25, 255)}
	field, err := particles.New(canvas, pc, src)
	if err != nil {
		return nil, err
	}
	typer, err := typing.New(cfg.Typing.Words, cfg.Typing.Timing)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Field:  field,
		Canvas: canvas,
		Typer:  typer,
		Tilts:  make([]tilt.Transform, len(cfg.Cards)),
		Accent: toColor(pc.Accent),
		Text:   rl.NewColor(248, 250, 252, 255),
		Muted:  rl.NewColor(100, 116, 139, 255),
	}
	for i := range a.Tilts {
		a.Tilts[i] = tilt.Flat()
	}
	a.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer rl.UnloadRenderTexture(app.Target)

	slog.Info("window opened", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update(time.Now())
		a.Draw()
	}
}

// resize reallocates the offscreen target and restarts the field at the new
// size.
func (a *App) resize(w, h int) {
	if a.Target.ID != 0 {
		rl.UnloadRenderTexture(a.Target)
	}
	a.Target = rl.LoadRenderTexture(int32(w), int32(h))
	a.Field.Resize(float64(w), float64(h))
	a.Field.Initialize()
	slog.Debug("window resized", "width", w, "height", h)
}

func (a *App) Update(now time.Time) {
	if rl.IsWindowResized() {
		a.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.Paused = !a.Paused
	case rl.IsKeyPressed(rl.KeyR):
		a.Field.Initialize()
	}

	if !now.Before(a.NextType) {
		step := a.Typer.Step()
		a.Headline = step.Text
		a.NextType = now.Add(step.Delay)
	}

	mouse := rl.GetMousePosition()
	for i, r := range a.cardRects() {
		if r.Contains(float64(mouse.X), float64(mouse.Y)) {
			a.Tilts[i] = tilt.Move(r, float64(mouse.X), float64(mouse.Y))
		} else {
			a.Tilts[i] = tilt.Leave()
		}
	}
}

func (a *App) Draw() {
	if !a.Paused {
		rl.BeginTextureMode(a.Target)
		a.Field.RenderFrame()
		rl.EndTextureMode()
	}

	rl.BeginDrawing()
	rl.ClearBackground(a.Canvas.Background)

	// Render textures are stored upside down.
	tex := a.Target.Texture
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	rl.DrawTextureRec(tex, src, rl.NewVector2(0, 0), rl.White)

	a.drawHeadline()
	a.drawCards()

	if a.Paused {
		rl.DrawText("PAUSED", 16, 16, bodySize, a.Muted)
	}
	rl.EndDrawing()
}

func (a *App) drawHeadline() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	prefix := "Eliminate "
	full := prefix + a.Headline + "|"
	x := int32(w)/2 - rl.MeasureText(full, headlineSize)/2
	y := int32(h)/3

	rl.DrawText(prefix, x, y, headlineSize, a.Text)
	x += rl.MeasureText(prefix, headlineSize)
	rl.DrawText(a.Headline, x, y, headlineSize, a.Accent)
	x += rl.MeasureText(a.Headline, headlineSize)
	if time.Now().UnixMilli()/500%2 == 0 {
		rl.DrawText("|", x+2, y, headlineSize, a.Accent)
	}

	sub := "We build the automations that give your team its week back."
	rl.DrawText(sub, int32(w)/2-rl.MeasureText(sub, bodySize)/2, y+headlineSize+16, bodySize, a.Muted)
}

// cardRects lays the feature cards out in a centred row near the bottom of
// the window.
func (a *App) cardRects() []tilt.Rect {
	n := len(a.Config.Cards)
	if n == 0 {
		return nil
	}
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	total := float64(n)*cardWidth + float64(n-1)*cardGap
	left := (w - total) / 2
	top := h - cardHeight - cardMargin

	rects := make([]tilt.Rect, n)
	for i := range rects {
		rects[i] = tilt.Rect{Left: left + float64(i)*(cardWidth+cardGap), Top: top, Width: cardWidth, Height: cardHeight}
	}
	return rects
}

// drawCards approximates the CSS transform: the card grows by its hover
// scale and leans towards the pointer by the sine of each rotation.
func (a *App) drawCards() {
	for i, r := range a.cardRects() {
		t := a.Tilts[i]
		rec := tiltedRect(r, t)

		border := a.Muted
		if !t.IsFlat() {
			border = a.Accent
		}
		rl.DrawRectangleRec(rec, rl.Fade(rl.Black, 0.55))
		rl.DrawRectangleLinesEx(rec, 1.5, border)

		c := a.Config.Cards[i]
		rl.DrawText(c.Title, int32(rec.X)+20, int32(rec.Y)+24, bodySize+4, a.Text)
		rl.DrawText(c.Body, int32(rec.X)+20, int32(rec.Y)+60, bodySize-4, a.Muted)
	}
}

func tiltedRect(r tilt.Rect, t tilt.Transform) rl.Rectangle {
	w, h := r.Width*t.Scale, r.Height*t.Scale
	dx := math.Sin(t.RotateY*math.Pi/180) * t.Perspective / 50
	dy := -math.Sin(t.RotateX*math.Pi/180) * t.Perspective / 50
	x := r.Left - (w-r.Width)/2 + dx
	y := r.Top - (h-r.Height)/2 + dy
	return rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
}
