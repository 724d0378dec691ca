package analysis

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/herofx/internal/particles"
	"gonum.org/v1/gonum/stat"
)

// Report summarises a profiled run.
type Report struct {
	Frames      []particles.FrameStats
	VisibleMean float64
	VisibleStd  float64
	EdgesMean   float64
	EdgesStd    float64
	EdgesMax    int
	// EdgePeriod is the dominant period of the edge count in frames, 0 when
	// the run is too short to tell.
	EdgePeriod float64
}

// Profile renders frames frames on f and summarises them. The field must
// already be sized and initialised.
func Profile(f *particles.Field, frames int) Report {
	stats := make([]particles.FrameStats, 0, frames)
	for i := 0; i < frames; i++ {
		stats = append(stats, f.RenderFrame())
	}
	return Summarize(stats)
}

func Summarize(frames []particles.FrameStats) Report {
	r := Report{Frames: frames}
	if len(frames) == 0 {
		return r
	}
	visible, edges := r.Series()
	r.VisibleMean, r.VisibleStd = meanStd(visible)
	r.EdgesMean, r.EdgesStd = meanStd(edges)
	for _, s := range frames {
		if s.Edges > r.EdgesMax {
			r.EdgesMax = s.Edges
		}
	}
	r.EdgePeriod = DominantPeriod(edges)
	return r
}

func meanStd(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return stat.Mean(xs, nil), 0
	}
	return stat.MeanStdDev(xs, nil)
}

// Series returns the visible and edge counts as float series.
func (r Report) Series() (visible, edges []float64) {
	visible = make([]float64, len(r.Frames))
	edges = make([]float64, len(r.Frames))
	for i, s := range r.Frames {
		visible[i] = float64(s.Visible)
		edges[i] = float64(s.Edges)
	}
	return visible, edges
}

// Plot charts visible points and edges per frame.
func (r Report) Plot(width, height int) string {
	if len(r.Frames) == 0 {
		return ""
	}
	visible, edges := r.Series()
	return asciigraph.PlotMany([][]float64{visible, edges},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.White, asciigraph.DodgerBlue),
		asciigraph.Caption("visible (white) / edges (blue) per frame"),
	)
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frames    %d\n", len(r.Frames))
	fmt.Fprintf(&b, "visible   %.2f ± %.2f\n", r.VisibleMean, r.VisibleStd)
	fmt.Fprintf(&b, "edges     %.2f ± %.2f (max %d)\n", r.EdgesMean, r.EdgesStd, r.EdgesMax)
	if r.EdgePeriod > 0 {
		fmt.Fprintf(&b, "period    %.0f frames\n", r.EdgePeriod)
	}
	return b.String()
}
