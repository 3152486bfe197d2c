package similarity

import (
	"io"

	"github.com/ChrisMcGann/chemtools/pkg/core"
)

// SpectrumSimilarity keeps two spectra together with their alignment so the
// result can be scored, printed and plotted.
type SpectrumSimilarity struct {
	Top       *core.Spectrum
	Bottom    *core.Spectrum
	Options   Options
	Alignment *Alignment
}

// New aligns top against bottom.
func New(top, bottom *core.Spectrum, opts Options) (*SpectrumSimilarity, error) {
	al, err := Align(top, bottom, opts)
	if err != nil {
		return nil, err
	}
	return &SpectrumSimilarity{Top: top, Bottom: bottom, Options: opts, Alignment: al}, nil
}

// Score scores the alignment with the configured powers.
func (s *SpectrumSimilarity) Score() Score {
	return s.Alignment.Score(s.Options.MZPower, s.Options.IntensityPower)
}

// PrintAlignment writes the aligned rows to w.
func (s *SpectrumSimilarity) PrintAlignment(w io.Writer) error {
	return s.Alignment.Print(w)
}

// Plot writes a head-to-tail plot of the two spectra to path. The image
// format follows the file extension.
func (s *SpectrumSimilarity) Plot(topLabel, bottomLabel, path string) error {
	if topLabel == "" {
		topLabel = s.Top.Label()
	}
	if bottomLabel == "" {
		bottomLabel = s.Bottom.Label()
	}
	return PlotMirror(s.Alignment, s.Score(), topLabel, bottomLabel, path)
}
