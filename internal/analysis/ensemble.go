package analysis

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/surface"
)

// Ensemble profiles the same field configuration across consecutive seeds.
type Ensemble struct {
	cfg           particles.Config
	width, height float64
	numRuns       int
	seedStart     int64
}

func NewEnsemble(cfg particles.Config, width, height float64, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, width: width, height: height, numRuns: numRuns, seedStart: seedStart}
}

// Run profiles every seed concurrently, each on its own field and recorder.
// Results are ordered by seed.
func (e *Ensemble) Run(ctx context.Context, frames int) ([]Report, error) {
	reports := make([]Report, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			src := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			f, err := particles.New(surface.NewRecorder(), e.cfg, src)
			if err != nil {
				errs[idx] = err
				return
			}
			f.Resize(e.width, e.height)
			f.Initialize()

			stats := make([]particles.FrameStats, 0, frames)
			for n := 0; n < frames; n++ {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					return
				}
				stats = append(stats, f.RenderFrame())
			}
			reports[idx] = Summarize(stats)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return reports, nil
}

// Combine merges per-seed reports into one summary over every frame.
func Combine(reports []Report) Report {
	var all []particles.FrameStats
	for _, r := range reports {
		all = append(all, r.Frames...)
	}
	return Summarize(all)
}
