// Package typing implements the hero headline's typewriter loop: type a
// word, hold it, delete it, pause, and move on to the next word.
package typing

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoWords   = errors.New("typing: no words")
	ErrEmptyWord = errors.New("typing: empty word")
)

// DefaultWords is the headline rotation.
var DefaultWords = []string{"Manual Work", "Busywork", "Repetitive Tasks", "Inefficiency"}

// Timing holds the delay after each kind of step.
type Timing struct {
	Type   time.Duration `yaml:"type"`
	Delete time.Duration `yaml:"delete"`
	Hold   time.Duration `yaml:"hold"` // after a word is fully typed
	Next   time.Duration `yaml:"next"` // after a word is fully deleted
}

func DefaultTiming() Timing {
	return Timing{
		Type:   150 * time.Millisecond,
		Delete: 50 * time.Millisecond,
		Hold:   2000 * time.Millisecond,
		Next:   500 * time.Millisecond,
	}
}

// Step is one change of the displayed text and the wait before the next.
type Step struct {
	Text  string
	Delay time.Duration
}

// Typewriter holds the loop position. The zero value is not usable; build
// one with New.
type Typewriter struct {
	words    [][]rune
	timing   Timing
	word     int
	char     int
	deleting bool
	text     string
}

func New(words []string, timing Timing) (*Typewriter, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	tw := &Typewriter{timing: timing, words: make([][]rune, len(words))}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyWord, i)
		}
		tw.words[i] = []rune(w)
	}
	return tw, nil
}

// Text is the currently displayed text.
func (tw *Typewriter) Text() string { return tw.text }

// Word is the index of the word being typed or deleted.
func (tw *Typewriter) Word() int { return tw.word }

// Step advances one character and reports the new text with the delay to
// wait before calling Step again.
func (tw *Typewriter) Step() Step {
	w := tw.words[tw.word]

	var delay time.Duration
	if tw.deleting {
		tw.char--
		delay = tw.timing.Delete
	} else {
		tw.char++
		delay = tw.timing.Type
	}
	tw.text = string(w[:tw.char])

	switch {
	case !tw.deleting && tw.char == len(w):
		tw.deleting = true
		delay = tw.timing.Hold
	case tw.deleting && tw.char == 0:
		tw.deleting = false
		tw.word = (tw.word + 1) % len(tw.words)
		delay = tw.timing.Next
	}
	return Step{Text: tw.text, Delay: delay}
}

// Clock abstracts waiting so the loop can be stepped in tests.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// RealClock waits on wall time.
type RealClock struct{}

func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Run steps the typewriter forever, handing each text to show. It returns
// when ctx is done.
func (tw *Typewriter) Run(ctx context.Context, clock Clock, show func(string)) error {
	for {
		step := tw.Step()
		show(step.Text)
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(step.Delay):
		}
	}
}
