package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// Spectrum returns the magnitude of the first half of the DFT of data with
// its mean removed.
func Spectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	mean := stat.Mean(data, nil)
	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}

	spec := fft.FFTReal(centred)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantPeriod is the period, in samples, of the strongest non-constant
// component of data. Flat or too-short series yield 0.
func DominantPeriod(data []float64) float64 {
	ps := Spectrum(data)
	best, bestMag := 0, 1e-9
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestMag {
			best, bestMag = k, ps[k]
		}
	}
	if best == 0 {
		return 0
	}
	return float64(len(data)) / float64(best)
}
