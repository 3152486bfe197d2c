package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ChrisMcGann/chemtools/pkg/core"
	"github.com/ChrisMcGann/chemtools/pkg/reader"
	"github.com/ChrisMcGann/chemtools/pkg/similarity"
)

// similarityFlags registers the scoring flags shared by compare and
// library search. Only flags given on the command line override the config.
type similarityFlags struct {
	flags *pflag.FlagSet
	opts  similarity.Options
}

func addSimilarityFlags(fs *pflag.FlagSet) *similarityFlags {
	sf := &similarityFlags{flags: fs}
	d := similarity.DefaultOptions()
	fs.Float64Var(&sf.opts.Tolerance, "tolerance", d.Tolerance, "m/z window for matching peaks")
	fs.Float64Var(&sf.opts.Baseline, "baseline", d.Baseline, "Drop peaks below this % of the base peak")
	fs.Float64Var(&sf.opts.MZMin, "mz-min", d.MZMin, "Lower bound of the compared m/z range")
	fs.Float64Var(&sf.opts.MZMax, "mz-max", d.MZMax, "Upper bound of the compared m/z range")
	fs.Float64Var(&sf.opts.MZThreshold, "mz-threshold", d.MZThreshold, "Ignore aligned peaks below this m/z")
	fs.Float64Var(&sf.opts.MZPower, "mz-power", d.MZPower, "Exponent of m/z in the peak weights")
	fs.Float64Var(&sf.opts.IntensityPower, "intensity-power", d.IntensityPower, "Exponent of intensity in the peak weights")
	return sf
}

// options returns the configured options with explicit flags applied.
func (sf *similarityFlags) options(a *app) similarity.Options {
	opts := a.cfg.Similarity.Options()
	for _, f := range []struct {
		name string
		dst  *float64
		val  float64
	}{
		{"tolerance", &opts.Tolerance, sf.opts.Tolerance},
		{"baseline", &opts.Baseline, sf.opts.Baseline},
		{"mz-min", &opts.MZMin, sf.opts.MZMin},
		{"mz-max", &opts.MZMax, sf.opts.MZMax},
		{"mz-threshold", &opts.MZThreshold, sf.opts.MZThreshold},
		{"mz-power", &opts.MZPower, sf.opts.MZPower},
		{"intensity-power", &opts.IntensityPower, sf.opts.IntensityPower},
	} {
		if sf.flags.Changed(f.name) {
			*f.dst = f.val
		}
	}
	opts.Logger = a.logger
	return opts
}

type compareOptions struct {
	topName    string
	bottomName string
	alignment  bool
	plot       string
	binWidth   float64
	asJSON     bool
}

func newCompareCmd(a *app) *cobra.Command {
	opts := &compareOptions{}
	var sf *similarityFlags

	cmd := &cobra.Command{
		Use:   "compare <top-file> <bottom-file>",
		Short: "Compare two mass spectra",
		Long: `Align two spectra read from MSP or MGF files and print their forward and
reverse similarity scores. The first spectrum of each file is used unless a
name is given.

Examples:
  # Score two library entries
  chemtools compare unknown.msp nist.msp --bottom-name "Ethyl centralite"

  # Print the alignment and save a head-to-tail plot
  chemtools compare a.mgf b.mgf --alignment --plot mirror.png

  # Weight peaks by m/z like the NIST composite score
  chemtools compare a.msp b.msp --mz-power 3 --intensity-power 0.6`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.OutOrStdout(), a, opts, sf.options(a), args[0], args[1])
		},
	}

	sf = addSimilarityFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.topName, "top-name", "", "Name of the spectrum to use from the top file")
	cmd.Flags().StringVar(&opts.bottomName, "bottom-name", "", "Name of the spectrum to use from the bottom file")
	cmd.Flags().BoolVar(&opts.alignment, "alignment", false, "Print the aligned peak table")
	cmd.Flags().StringVar(&opts.plot, "plot", "", "Save a head-to-tail plot (.png, .svg, .pdf)")
	cmd.Flags().Float64Var(&opts.binWidth, "bin-width", 0, "Also print the cosine of spectra binned at this width (0 = off)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the scores as JSON")

	return cmd
}

func runCompare(w io.Writer, a *app, opts *compareOptions, simOpts similarity.Options, topPath, bottomPath string) error {
	top, err := readSpectrum(topPath, opts.topName)
	if err != nil {
		return err
	}
	bottom, err := readSpectrum(bottomPath, opts.bottomName)
	if err != nil {
		return err
	}

	a.logger.Debug("comparing spectra", "top", top.Label(), "bottom", bottom.Label(), "tolerance", simOpts.Tolerance)

	sim, err := similarity.New(top, bottom, simOpts)
	if err != nil {
		return err
	}
	score := sim.Score()

	var binned *float64
	if opts.binWidth > 0 {
		tb, err := similarity.Bin(top, opts.binWidth, simOpts.MZMin, simOpts.MZMax)
		if err != nil {
			return err
		}
		bb, err := similarity.Bin(bottom, opts.binWidth, simOpts.MZMin, simOpts.MZMax)
		if err != nil {
			return err
		}
		c, err := similarity.CosineBinned(tb, bb)
		if err != nil {
			return err
		}
		binned = &c
	}

	if opts.asJSON {
		out := struct {
			Top    string           `json:"top"`
			Bottom string           `json:"bottom"`
			Score  similarity.Score `json:"score"`
			Binned *float64         `json:"binned,omitempty"`
		}{top.Label(), bottom.Label(), score, binned}
		if err := writeJSON(w, out); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "Top:    %s\n", top.Label())
		fmt.Fprintf(w, "Bottom: %s\n", bottom.Label())
		fmt.Fprintf(w, "Forward score: %.4f\n", score.Forward)
		fmt.Fprintf(w, "Reverse score: %.4f\n", score.Reverse)
		fmt.Fprintf(w, "Matched peaks: %d (%.0f%% of top, %.0f%% of bottom)\n",
			score.Matched, score.TopMatchedFraction*100, score.BottomMatchedFraction*100)
		if binned != nil {
			fmt.Fprintf(w, "Binned cosine (width %g): %.4f\n", opts.binWidth, *binned)
		}
	}

	if opts.alignment {
		fmt.Fprintln(w)
		if err := sim.PrintAlignment(w); err != nil {
			return err
		}
	}

	if opts.plot != "" {
		if err := sim.Plot("", "", opts.plot); err != nil {
			return fmt.Errorf("failed to plot: %w", err)
		}
		fmt.Fprintf(w, "Plot: %s\n", opts.plot)
	}
	return nil
}

// readSpectrum returns the first spectrum in path, or the first whose name
// matches name case-insensitively.
func readSpectrum(path, name string) (*core.Spectrum, error) {
	f, err := reader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for f.Next() {
		spec := f.Spectrum()
		if name == "" || strings.EqualFold(spec.Name, name) {
			return spec, nil
		}
	}
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if name != "" {
		return nil, fmt.Errorf("no spectrum named '%s' in %s", name, path)
	}
	return nil, fmt.Errorf("no spectra in %s", path)
}
