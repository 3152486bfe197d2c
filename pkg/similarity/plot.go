package similarity

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ChrisMcGann/chemtools/pkg/core"
)

var (
	topColor    = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	bottomColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// stickLine draws peaks as vertical sticks joined along the baseline.
// sign is 1 for peaks pointing up and -1 for peaks pointing down.
func stickLine(peaks []core.Peak, sign float64, c color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, 0, 3*len(peaks))
	for _, p := range peaks {
		pts = append(pts,
			plotter.XY{X: p.MZ, Y: 0},
			plotter.XY{X: p.MZ, Y: sign * p.Intensity},
			plotter.XY{X: p.MZ, Y: 0},
		)
	}
	if len(pts) == 0 {
		pts = append(pts, plotter.XY{})
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(1)
	return l, nil
}

// PlotMirror writes a head-to-tail plot of the normalised spectra in al:
// the top spectrum points up, the bottom spectrum down. The title carries
// the forward and reverse scores. The format follows the extension of path
// (png, svg, pdf, ...).
func PlotMirror(al *Alignment, score Score, topLabel, bottomLabel, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Similarity score: %.3f (reverse %.3f)", score.Forward, score.Reverse)
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "m/z"
	p.Y.Label.Text = "intensity (%)"
	p.Y.Min = -105
	p.Y.Max = 105
	p.Add(plotter.NewGrid())

	top, err := stickLine(al.Top, 1, topColor)
	if err != nil {
		return fmt.Errorf("plotting top spectrum: %w", err)
	}
	bottom, err := stickLine(al.Bottom, -1, bottomColor)
	if err != nil {
		return fmt.Errorf("plotting bottom spectrum: %w", err)
	}
	p.Add(top, bottom)
	p.Legend.Add(topLabel, top)
	p.Legend.Add(bottomLabel, bottom)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
