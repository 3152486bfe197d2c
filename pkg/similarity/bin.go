package similarity

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ChrisMcGann/chemtools/pkg/core"
)

// Bin sums peak intensities into bins of the given width over [min, max).
// Peaks outside the range are ignored.
func Bin(spec *core.Spectrum, width, min, max float64) ([]float64, error) {
	if width <= 0 {
		return nil, fmt.Errorf("bin width must be positive, got %g", width)
	}
	if max <= min {
		return nil, fmt.Errorf("invalid m/z range [%g, %g]", min, max)
	}

	n := int((max-min)/width + 0.5)
	if n < 1 {
		n = 1
	}
	dividers := make([]float64, n+1)
	floats.Span(dividers, min, max)

	peaks := make([]core.Peak, 0, len(spec.Peaks))
	for _, p := range spec.Peaks {
		if p.MZ >= min && p.MZ < max {
			peaks = append(peaks, p)
		}
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].MZ < peaks[j].MZ })

	x := make([]float64, len(peaks))
	w := make([]float64, len(peaks))
	for i, p := range peaks {
		x[i] = p.MZ
		w[i] = p.Intensity
	}
	return stat.Histogram(nil, dividers, x, w), nil
}

// CosineBinned scores two binned spectra with a plain cosine.
func CosineBinned(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("binned spectra differ in length: %d and %d", len(a), len(b))
	}
	return cosine(a, b), nil
}
