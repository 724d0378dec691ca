// Package scroll animates in-page navigation: clicking a "#id" link
// suppresses the jump and eases the viewport to the anchor instead.
package scroll

import (
	"math"
	"strings"
	"time"
)

// DefaultDuration is the length of one smooth scroll.
const DefaultDuration = 450 * time.Millisecond

// Scroller owns the viewport offset of a page.
type Scroller struct {
	targets  map[string]float64
	max      float64
	duration time.Duration

	pos       float64
	from, to  float64
	elapsed   time.Duration
	animating bool
}

// New returns a scroller over a page that can scroll down to limit.
func New(limit float64, duration time.Duration) *Scroller {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Scroller{targets: make(map[string]float64), max: math.Max(0, limit), duration: duration}
}

// Register makes id a scroll target at offset.
func (s *Scroller) Register(id string, offset float64) { s.targets[id] = offset }

// SetMax updates the scroll range after a relayout, clamping the position.
func (s *Scroller) SetMax(limit float64) {
	s.max = math.Max(0, limit)
	s.pos = s.clamp(s.pos)
	s.to = s.clamp(s.to)
}

func (s *Scroller) Position() float64 { return s.pos }
func (s *Scroller) Animating() bool   { return s.animating }

// Click handles an anchor click. Any same-page link ("#...") has its default
// jump prevented, even when no such target exists; true reports that.
func (s *Scroller) Click(href string) bool {
	if !strings.HasPrefix(href, "#") {
		return false
	}
	if offset, ok := s.targets[href[1:]]; ok {
		s.ScrollTo(offset)
	}
	return true
}

// ScrollTo starts an eased animation from the current position.
func (s *Scroller) ScrollTo(offset float64) {
	s.from, s.to = s.pos, s.clamp(offset)
	s.elapsed = 0
	s.animating = s.from != s.to
}

// Jump moves immediately, cancelling any animation.
func (s *Scroller) Jump(offset float64) {
	s.pos = s.clamp(offset)
	s.animating = false
}

// Advance moves the animation forward by dt and reports whether it is still
// running. Time never runs backwards: dt <= 0 leaves the position as is.
func (s *Scroller) Advance(dt time.Duration) bool {
	if !s.animating || dt <= 0 {
		return s.animating
	}
	s.elapsed += dt
	t := math.Max(0, math.Min(1, float64(s.elapsed)/float64(s.duration)))
	s.pos = s.clamp(s.from + (s.to-s.from)*EaseInOutCubic(t))
	if t >= 1 {
		s.pos = s.to
		s.animating = false
	}
	return s.animating
}

func (s *Scroller) clamp(v float64) float64 {
	return math.Max(0, math.Min(s.max, v))
}

// EaseInOutCubic maps t in [0, 1] onto a slow-fast-slow curve.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
