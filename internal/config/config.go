package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/typing"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 60
	DefaultTheme      = "midnight"
	DefaultAccent     = "#3b82f6"
	DefaultForeground = "#ffffff"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Theme  string       `yaml:"theme"`
	FPS    int          `yaml:"fps"`
	Seed   int64        `yaml:"seed"`
	Field  FieldConfig  `yaml:"field"`
	Typing TypingConfig `yaml:"typing"`
	Scroll ScrollConfig `yaml:"scroll"`
	Tools  []Card       `yaml:"tools"`
	Cards  []Card       `yaml:"cards"`
}

type FieldConfig struct {
	Count              int     `yaml:"count"`
	ConnectionDistance float64 `yaml:"connection_distance"`
	Rotation           float64 `yaml:"rotation"`
	Perspective        float64 `yaml:"perspective"`
	DepthOffset        float64 `yaml:"depth_offset"`
	VelocityRange      float64 `yaml:"velocity_range"`
	Accent             string  `yaml:"accent"`
	Foreground         string  `yaml:"foreground"`
}

type TypingConfig struct {
	Words  []string      `yaml:"words"`
	Timing typing.Timing `yaml:"timing"`
}

type ScrollConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// Card is the copy shown on a tool or feature card.
type Card struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Detail string `yaml:"detail,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		FPS:   DefaultFPS,
		Field: FieldConfig{
			Count:              particles.DefaultCount,
			ConnectionDistance: particles.DefaultConnectionDistance,
			Rotation:           particles.DefaultRotation,
			Perspective:        particles.DefaultPerspective,
			DepthOffset:        particles.DefaultDepthOffset,
			VelocityRange:      particles.DefaultVelocityRange,
			Accent:             DefaultAccent,
			Foreground:         DefaultForeground,
		},
		Typing: TypingConfig{
			Words:  append([]string(nil), typing.DefaultWords...),
			Timing: typing.DefaultTiming(),
		},
		Scroll: ScrollConfig{Duration: 450 * time.Millisecond},
		Tools:  defaultTools(),
		Cards:  defaultCards(),
	}
}

func defaultTools() []Card {
	return []Card{
		{Title: "n8n", Body: "workflow automation", Detail: "Self-hosted pipelines that glue your SaaS stack together."},
		{Title: "Make", Body: "visual scenarios", Detail: "Drag-and-drop flows for teams without developers."},
		{Title: "Zapier", Body: "instant integrations", Detail: "Thousands of triggers wired up in minutes."},
		{Title: "OpenAI", Body: "language models", Detail: "Drafting, classification and extraction inside every flow."},
	}
}

func defaultCards() []Card {
	return []Card{
		{Title: "Audit", Body: "Map every manual step"},
		{Title: "Automate", Body: "Replace busywork with flows"},
		{Title: "Scale", Body: "Grow without new headcount"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if len(c.Typing.Words) == 0 {
		return fmt.Errorf("%w: typing needs at least one word", ErrInvalid)
	}
	if _, err := c.ParticleConfig(); err != nil {
		return err
	}
	return nil
}

// ParticleConfig converts the field section to the animator's tunables.
func (c *Config) ParticleConfig() (particles.Config, error) {
	pc := particles.DefaultConfig()
	pc.Count = c.Field.Count
	pc.ConnectionDistance = c.Field.ConnectionDistance
	pc.Rotation = c.Field.Rotation
	pc.Perspective = c.Field.Perspective
	pc.DepthOffset = c.Field.DepthOffset
	pc.VelocityRange = c.Field.VelocityRange

	var err error
	if pc.Accent, err = ParseColor(c.Field.Accent); err != nil {
		return pc, err
	}
	if pc.Foreground, err = ParseColor(c.Field.Foreground); err != nil {
		return pc, err
	}
	if err := pc.Validate(); err != nil {
		return pc, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return pc, nil
}

// ParseColor parses a "#rrggbb" colour as an opaque RGBA.
func ParseColor(hex string) (particles.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return particles.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, hex)
	}
	r, g, b := c.RGB255()
	return particles.RGBA{R: r, G: g, B: b, A: 1}, nil
}
