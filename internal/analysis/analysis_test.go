package analysis

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/surface"
)

func TestProfile(t *testing.T) {
	f, err := particles.New(surface.NewRecorder(), particles.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	f.Resize(800, 600)
	f.Initialize()

	rep := Profile(f, 64)
	if len(rep.Frames) != 64 {
		t.Fatalf("expected 64 frames, got %d", len(rep.Frames))
	}
	if rep.VisibleMean <= 0 || rep.VisibleMean > particles.DefaultCount {
		t.Errorf("visible mean out of range: %f", rep.VisibleMean)
	}
	if rep.EdgesMax < int(rep.EdgesMean) {
		t.Errorf("max %d below mean %f", rep.EdgesMax, rep.EdgesMean)
	}
	if !strings.Contains(rep.String(), "frames    64") {
		t.Errorf("unexpected report:\n%s", rep)
	}
	if rep.Plot(40, 5) == "" {
		t.Error("expected a chart")
	}
}

func TestSummarize(t *testing.T) {
	rep := Summarize([]particles.FrameStats{
		{Visible: 10, Edges: 2},
		{Visible: 20, Edges: 6},
	})
	if rep.VisibleMean != 15 || rep.EdgesMean != 4 || rep.EdgesMax != 6 {
		t.Errorf("unexpected summary: %+v", rep)
	}
	if math.Abs(rep.VisibleStd-math.Sqrt(50)) > 1e-9 {
		t.Errorf("expected sample std %f, got %f", math.Sqrt(50), rep.VisibleStd)
	}

	empty := Summarize(nil)
	if empty.VisibleMean != 0 || empty.Plot(10, 3) != "" {
		t.Errorf("expected zero report, got %+v", empty)
	}
}

func TestDominantPeriod(t *testing.T) {
	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = 5 + math.Sin(2*math.Pi*float64(i)/32)
	}
	if p := DominantPeriod(data); math.Abs(p-32) > 1e-9 {
		t.Errorf("expected period 32, got %f", p)
	}

	flat := make([]float64, 16)
	if p := DominantPeriod(flat); p != 0 {
		t.Errorf("expected 0 for a flat series, got %f", p)
	}
	if DominantPeriod([]float64{1}) != 0 {
		t.Error("expected 0 for a single sample")
	}
}

func TestEnsemble(t *testing.T) {
	e := NewEnsemble(particles.DefaultConfig(), 800, 600, 4, 10)
	reports, err := e.Run(context.Background(), 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 4 {
		t.Fatalf("expected 4 reports, got %d", len(reports))
	}
	for i, r := range reports {
		if len(r.Frames) != 16 {
			t.Errorf("run %d: expected 16 frames, got %d", i, len(r.Frames))
		}
	}

	// Same seed, same run.
	again, err := NewEnsemble(particles.DefaultConfig(), 800, 600, 1, 10).Run(context.Background(), 16)
	if err != nil {
		t.Fatal(err)
	}
	if again[0].EdgesMean != reports[0].EdgesMean {
		t.Errorf("seed 10 not reproducible: %f vs %f", again[0].EdgesMean, reports[0].EdgesMean)
	}

	if got := len(Combine(reports).Frames); got != 64 {
		t.Errorf("combined report has %d frames, want 64", got)
	}
}

func TestEnsemble_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEnsemble(particles.DefaultConfig(), 800, 600, 2, 1).Run(ctx, 8)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEnsemble_InvalidConfig(t *testing.T) {
	cfg := particles.DefaultConfig()
	cfg.Perspective = 0
	_, err := NewEnsemble(cfg, 800, 600, 2, 1).Run(context.Background(), 8)
	if !errors.Is(err, particles.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
