package config

import "sort"

// Presets are named overrides of the field and typing sections.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"dense": func(c *Config) {
		c.Field.Count = 140
		c.Field.ConnectionDistance = 110
	},
	"calm": func(c *Config) {
		c.Field.Count = 40
		c.Field.Rotation = 0.0008
		c.Field.VelocityRange = 0.2
		c.Typing.Timing.Hold *= 2
	},
	"hyperspace": func(c *Config) {
		c.Field.Count = 90
		c.Field.Rotation = 0.01
		c.Field.VelocityRange = 2
		c.Field.ConnectionDistance = 180
		c.Field.Accent = "#a855f7"
	},
	"mono": func(c *Config) {
		c.Theme = "paper"
		c.Field.Accent = "#9ca3af"
		c.Field.Foreground = "#e5e7eb"
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Apply overlays the named preset onto cfg. Unknown names report false.
func Apply(cfg *Config, name string) bool {
	apply, ok := Presets[name]
	if ok {
		apply(cfg)
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
