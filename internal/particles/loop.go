package particles

import (
	"context"
	"log/slog"
	"time"
)

// Size is a surface-resize notification.
type Size struct {
	Width, Height float64
}

// Scheduler is the "next frame" primitive: Next blocks until the next
// display frame is due or ctx is done.
type Scheduler interface {
	Next(ctx context.Context) error
}

// Observer is notified after every rendered frame.
type Observer interface {
	OnFrame(stats FrameStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(FrameStats)

func (fn ObserverFunc) OnFrame(stats FrameStats) { fn(stats) }

// Ticker schedules frames at a fixed rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker returns a scheduler firing fps times per second. Non-positive
// rates fall back to 60.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

func (t *Ticker) Stop() { t.t.Stop() }

// Run renders frames until ctx is cancelled or the scheduler fails. Resize
// notifications are applied between frames, so a frame never observes a
// half-updated size. A nil or closed sizes channel is ignored.
func (f *Field) Run(ctx context.Context, sched Scheduler, sizes <-chan Size) error {
	slog.Debug("particle loop started", "count", f.cfg.Count)
	defer slog.Debug("particle loop stopped", "frames", f.frame)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sizes = f.applyResizes(sizes)

		stats := f.RenderFrame()
		for _, o := range f.observers {
			o.OnFrame(stats)
		}

		if err := sched.Next(ctx); err != nil {
			return err
		}
	}
}

// applyResizes drains pending notifications and reinitialises once with the
// latest size. It returns nil in place of a closed channel.
func (f *Field) applyResizes(sizes <-chan Size) <-chan Size {
	var (
		latest  Size
		pending bool
	)
	for sizes != nil {
		select {
		case s, ok := <-sizes:
			if !ok {
				sizes = nil
				continue
			}
			latest, pending = s, true
			continue
		default:
		}
		break
	}
	if pending {
		f.Resize(latest.Width, latest.Height)
		f.Initialize()
	}
	return sizes
}
