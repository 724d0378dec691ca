package scroll

import (
	"math"
	"testing"
	"time"
)

func TestClickPreventsSamePageLinks(t *testing.T) {
	s := New(1000, 0)
	s.Register("tools", 400)

	tests := []struct {
		href      string
		prevented bool
		animating bool
	}{
		{"#tools", true, true},
		{"#missing", true, false},
		{"https://example.com", false, false},
		{"/about", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			s.Jump(0)
			if got := s.Click(tt.href); got != tt.prevented {
				t.Errorf("expected prevented=%v, got %v", tt.prevented, got)
			}
			if s.Animating() != tt.animating {
				t.Errorf("expected animating=%v", tt.animating)
			}
		})
	}
}

func TestAdvanceReachesTarget(t *testing.T) {
	s := New(1000, 400*time.Millisecond)
	s.Register("contact", 800)
	s.Click("#contact")

	s.Advance(200 * time.Millisecond)
	if math.Abs(s.Position()-400) > 1e-9 {
		t.Errorf("expected halfway at the midpoint of the curve, got %f", s.Position())
	}

	prev := s.Position()
	for s.Advance(16 * time.Millisecond) {
		if s.Position() < prev {
			t.Fatalf("scroll went backwards: %f < %f", s.Position(), prev)
		}
		prev = s.Position()
	}
	if s.Position() != 800 {
		t.Errorf("expected to land on 800, got %f", s.Position())
	}
}

func TestScrollClampsToRange(t *testing.T) {
	s := New(300, 10*time.Millisecond)
	s.Register("footer", 900)
	s.Click("#footer")
	s.Advance(time.Second)
	if s.Position() != 300 {
		t.Errorf("expected clamp to 300, got %f", s.Position())
	}

	s.SetMax(100)
	if s.Position() != 100 {
		t.Errorf("expected position clamped after relayout, got %f", s.Position())
	}

	s.Jump(-50)
	if s.Position() != 0 {
		t.Errorf("expected clamp to 0, got %f", s.Position())
	}
}

func TestScrollToCurrentPositionIsNoop(t *testing.T) {
	s := New(100, 0)
	s.ScrollTo(0)
	if s.Animating() {
		t.Error("expected no animation to the current position")
	}
	if s.Advance(time.Second) {
		t.Error("advance without an animation should report idle")
	}
}

func TestEaseInOutCubic(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.0625}} {
		if got := EaseInOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ease(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestAdvanceIgnoresNegativeTime(t *testing.T) {
	s := New(100, 0)
	s.ScrollTo(100)

	for _, dt := range []time.Duration{-DefaultDuration, 0, -time.Millisecond} {
		if !s.Advance(dt) {
			t.Errorf("Advance(%v) should leave the animation running", dt)
		}
		if s.Position() != 0 {
			t.Errorf("Advance(%v) moved to %f", dt, s.Position())
		}
	}

	s.Advance(DefaultDuration / 2)
	mid := s.Position()
	s.Advance(-time.Second)
	if s.Position() != mid {
		t.Errorf("negative dt moved back from %f to %f", mid, s.Position())
	}
	if p := s.Position(); p < 0 || p > 100 {
		t.Errorf("position %f out of [0, 100]", p)
	}

	s.Advance(time.Second)
	if s.Position() != 100 || s.Animating() {
		t.Errorf("expected to finish at 100, got %f", s.Position())
	}
}
