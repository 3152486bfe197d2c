// Package similarity compares mass spectra. Two peak lists are normalised,
// aligned on a common m/z axis and scored with a weighted cosine.
package similarity

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/ChrisMcGann/chemtools/pkg/core"
)

var (
	// ErrNegativeThreshold is returned when Options.MZThreshold is negative.
	ErrNegativeThreshold = errors.New("m/z threshold must not be negative")
	// ErrEmptySpectrum is returned when a spectrum has no peak with positive
	// intensity.
	ErrEmptySpectrum = errors.New("spectrum has no peaks with positive intensity")
)

// Options control the alignment and scoring.
type Options struct {
	Tolerance      float64 // m/z window for matching peaks
	Baseline       float64 // minimum normalised intensity (0-100) kept
	MZMin          float64 // lower bound of the m/z range compared
	MZMax          float64 // upper bound of the m/z range compared
	MZThreshold    float64 // aligned rows below this m/z are ignored
	MZPower        float64 // exponent applied to m/z in the weights
	IntensityPower float64 // exponent applied to intensity in the weights
	Logger         *slog.Logger
}

// DefaultOptions returns the usual settings for unit resolution EI spectra.
func DefaultOptions() Options {
	return Options{
		Tolerance:      0.25,
		Baseline:       10,
		MZMin:          50,
		MZMax:          1200,
		MZThreshold:    0,
		MZPower:        0,
		IntensityPower: 1,
	}
}

// Validate checks the option values.
func (o Options) Validate() error {
	if o.MZThreshold < 0 {
		return ErrNegativeThreshold
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", o.Tolerance)
	}
	if o.MZMax < o.MZMin {
		return fmt.Errorf("invalid m/z range [%g, %g]", o.MZMin, o.MZMax)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Row is one aligned m/z with the normalised intensity of both spectra.
// A zero intensity means the spectrum has no peak at that m/z.
type Row struct {
	MZ     float64
	Top    float64
	Bottom float64
}

// Alignment is the result of aligning two spectra.
type Alignment struct {
	// Top and Bottom are the normalised, filtered peak lists before
	// matching.
	Top    []core.Peak
	Bottom []core.Peak
	Rows   []Row
	// Ambiguous is set when an m/z occurs in more than one row, which
	// happens when the tolerance matches several peaks to one.
	Ambiguous bool

	// peaks holds the number of top and bottom peaks at each aligned m/z.
	peaks map[float64]*peakCount
}

type peakCount struct {
	top, bottom int
}

// Score holds the similarity scores and peak match diagnostics.
type Score struct {
	Forward               float64 `json:"forward"`
	Reverse               float64 `json:"reverse"`
	Matched               int     `json:"matched"`
	TopPeaks              int     `json:"top_peaks"`
	BottomPeaks           int     `json:"bottom_peaks"`
	TopMatchedFraction    float64 `json:"top_matched_fraction"`
	BottomMatchedFraction float64 `json:"bottom_matched_fraction"`
}

// normalise scales intensities to 100 x I / max(I), restricts the peaks to
// the m/z range and drops those below the baseline.
func normalise(spec *core.Spectrum, opts Options) ([]core.Peak, error) {
	maxIntensity := 0.0
	for _, p := range spec.Peaks {
		if p.Intensity > maxIntensity {
			maxIntensity = p.Intensity
		}
	}
	if maxIntensity <= 0 {
		return nil, ErrEmptySpectrum
	}

	var out []core.Peak
	for _, p := range spec.Peaks {
		if p.MZ < opts.MZMin || p.MZ > opts.MZMax {
			continue
		}
		norm := 100 * p.Intensity / maxIntensity
		if norm < opts.Baseline {
			continue
		}
		out = append(out, core.Peak{MZ: p.MZ, Intensity: norm, Annotation: p.Annotation})
	}
	return out, nil
}

// Align normalises both spectra and aligns them on a common m/z axis.
//
// Every top peak within Tolerance of a bottom peak is moved onto that bottom
// peak's m/z; bottom peaks are visited in order, so later ones win. The two
// lists are then outer-joined on m/z, missing intensities are zero and rows
// are sorted by m/z. Rows below MZThreshold are dropped.
func Align(top, bottom *core.Spectrum, opts Options) (*Alignment, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	topPeaks, err := normalise(top, opts)
	if err != nil {
		return nil, fmt.Errorf("top spectrum: %w", err)
	}
	bottomPeaks, err := normalise(bottom, opts)
	if err != nil {
		return nil, fmt.Errorf("bottom spectrum: %w", err)
	}

	snapped := make([]core.Peak, len(topPeaks))
	copy(snapped, topPeaks)
	for _, b := range bottomPeaks {
		for i := range snapped {
			if snapped[i].MZ >= b.MZ-opts.Tolerance && snapped[i].MZ <= b.MZ+opts.Tolerance {
				snapped[i].MZ = b.MZ
			}
		}
	}

	rows := outerJoin(snapped, bottomPeaks)

	al := &Alignment{Top: topPeaks, Bottom: bottomPeaks}
	for i := 1; i < len(rows); i++ {
		if rows[i].MZ == rows[i-1].MZ {
			al.Ambiguous = true
			break
		}
	}
	if al.Ambiguous {
		opts.logger().Warn("m/z tolerance is set too high", "tolerance", opts.Tolerance)
	}

	for _, r := range rows {
		if r.MZ >= opts.MZThreshold {
			al.Rows = append(al.Rows, r)
		}
	}
	al.peaks = countPeaks(snapped, bottomPeaks, opts.MZThreshold)
	return al, nil
}

// countPeaks tallies the peaks of each side per aligned m/z at or above
// threshold.
func countPeaks(top, bottom []core.Peak, threshold float64) map[float64]*peakCount {
	counts := make(map[float64]*peakCount)
	at := func(mz float64) *peakCount {
		c, ok := counts[mz]
		if !ok {
			c = &peakCount{}
			counts[mz] = c
		}
		return c
	}
	for _, p := range top {
		if p.MZ >= threshold {
			at(p.MZ).top++
		}
	}
	for _, p := range bottom {
		if p.MZ >= threshold {
			at(p.MZ).bottom++
		}
	}
	return counts
}

// outerJoin merges two peak lists on exact m/z. Duplicate keys produce every
// top and bottom pairing.
func outerJoin(top, bottom []core.Peak) []Row {
	topBy := make(map[float64][]float64)
	bottomBy := make(map[float64][]float64)
	var keys []float64
	seen := make(map[float64]bool)
	add := func(mz float64) {
		if !seen[mz] {
			seen[mz] = true
			keys = append(keys, mz)
		}
	}
	for _, p := range top {
		topBy[p.MZ] = append(topBy[p.MZ], p.Intensity)
		add(p.MZ)
	}
	for _, p := range bottom {
		bottomBy[p.MZ] = append(bottomBy[p.MZ], p.Intensity)
		add(p.MZ)
	}
	sort.Float64s(keys)

	var rows []Row
	for _, mz := range keys {
		ts := topBy[mz]
		bs := bottomBy[mz]
		if len(ts) == 0 {
			ts = []float64{0}
		}
		if len(bs) == 0 {
			bs = []float64{0}
		}
		for _, t := range ts {
			for _, b := range bs {
				rows = append(rows, Row{MZ: mz, Top: t, Bottom: b})
			}
		}
	}
	return rows
}

// Score computes the forward and reverse scores with weights
// w = mz^mzPower x intensity^intensityPower. The reverse score only uses rows
// where the top spectrum has a peak. Peak counts are over distinct peaks, so
// peaks repeated across rows of an ambiguous alignment count once, and each
// peak is matched at most once.
func (a *Alignment) Score(mzPower, intensityPower float64) Score {
	var s Score
	var u, v, ru, rv []float64
	for _, r := range a.Rows {
		wu := weight(r.MZ, r.Top, mzPower, intensityPower)
		wv := weight(r.MZ, r.Bottom, mzPower, intensityPower)
		u = append(u, wu)
		v = append(v, wv)
		if r.Top > 0 {
			ru = append(ru, wu)
			rv = append(rv, wv)
		}
	}
	for _, c := range a.peaks {
		s.TopPeaks += c.top
		s.BottomPeaks += c.bottom
		s.Matched += min(c.top, c.bottom)
	}

	s.Forward = cosine(u, v)
	s.Reverse = cosine(ru, rv)
	if s.TopPeaks > 0 {
		s.TopMatchedFraction = float64(s.Matched) / float64(s.TopPeaks)
	}
	if s.BottomPeaks > 0 {
		s.BottomMatchedFraction = float64(s.Matched) / float64(s.BottomPeaks)
	}
	return s
}

func weight(mz, intensity, mzPower, intensityPower float64) float64 {
	if intensity == 0 {
		return 0
	}
	return math.Pow(mz, mzPower) * math.Pow(intensity, intensityPower)
}

// cosine returns u.v / (|u| |v|), or 0 when either vector has zero norm.
func cosine(u, v []float64) float64 {
	if len(u) == 0 || len(u) != len(v) {
		return 0
	}
	nu := floats.Norm(u, 2)
	nv := floats.Norm(v, 2)
	if nu == 0 || nv == 0 {
		return 0
	}
	return floats.Dot(u, v) / (nu * nv)
}

// Print writes the aligned rows as a table.
func (a *Alignment) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "mz\tintensity.top\tintensity.bottom\t")
	for _, r := range a.Rows {
		fmt.Fprintf(tw, "%.4f\t%.2f\t%.2f\t\n", r.MZ, r.Top, r.Bottom)
	}
	return tw.Flush()
}

// Compare aligns two spectra and scores them with the powers in opts.
func Compare(top, bottom *core.Spectrum, opts Options) (Score, *Alignment, error) {
	al, err := Align(top, bottom, opts)
	if err != nil {
		return Score{}, nil, err
	}
	return al.Score(opts.MZPower, opts.IntensityPower), al, nil
}
