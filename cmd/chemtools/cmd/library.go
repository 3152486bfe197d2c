package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/chemtools/pkg/core"
	"github.com/ChrisMcGann/chemtools/pkg/filter"
	"github.com/ChrisMcGann/chemtools/pkg/library"
	"github.com/ChrisMcGann/chemtools/pkg/reader"
)

func newLibraryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Build and search SQLite spectral libraries",
	}

	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Library database (default: library.path from config)")

	cmd.AddCommand(newLibraryImportCmd(a))
	cmd.AddCommand(newLibrarySearchCmd(a))
	cmd.AddCommand(newLibraryInfoCmd(a))

	return cmd
}

type importOptions struct {
	inputs        []string
	topN          int
	cutoffPercent float64
	minMZ         float64
	maxMZ         float64
	normalize     float64
}

func newLibraryImportCmd(a *app) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import MSP and MGF files into a library",
		Long: `Import spectra from MSP and MGF files into a SQLite spectral library.
Inputs may be glob patterns, including ** for recursive matches, and may be
gzip or zstd compressed.

Examples:
  # Import a NIST export
  chemtools library import --in nist.msp --db nist.db

  # Import every MGF file below a directory, keeping the 50 largest peaks
  chemtools library import --in 'data/**/*.mgf' --db lib.db --top-n 50 --cutoff 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.OutOrStdout(), a, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.inputs, "in", "i", nil, "Input file or glob pattern (repeatable, required)")
	cmd.Flags().IntVar(&opts.topN, "top-n", 0, "Keep only top N most intense peaks (0 = no limit)")
	cmd.Flags().Float64Var(&opts.cutoffPercent, "cutoff", 0, "Intensity cutoff as % of base peak (0 = no cutoff)")
	cmd.Flags().Float64Var(&opts.minMZ, "min-mz", 0, "Drop peaks below this m/z (0 = no limit)")
	cmd.Flags().Float64Var(&opts.maxMZ, "max-mz", 0, "Drop peaks above this m/z (0 = no limit)")
	cmd.Flags().Float64Var(&opts.normalize, "normalize", 0, "Scale the base peak to this intensity (0 = keep raw)")

	cmd.MarkFlagRequired("in")

	return cmd
}

// expandInputs resolves glob patterns to a sorted, de-duplicated file list.
func expandInputs(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern '%s': %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match '%s'", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func runImport(w io.Writer, a *app, opts *importOptions) error {
	files, err := expandInputs(opts.inputs)
	if err != nil {
		return err
	}

	filterConfig := &filter.Config{
		TopN:            opts.topN,
		IntensityCutoff: opts.cutoffPercent,
		MinMZ:           opts.minMZ,
		MaxMZ:           opts.maxMZ,
		Normalize:       opts.normalize,
	}

	dbPath := a.cfg.Library.Path
	store, err := library.Open(dbPath, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer store.Close()

	fmt.Fprintf(w, "Importing %d file(s) into %s...\n", len(files), dbPath)

	count := 0
	skipped := 0
	for _, path := range files {
		f, err := reader.OpenFile(path)
		if err != nil {
			return err
		}

		for f.Next() {
			spec := f.Spectrum()

			filter.RemoveZeroIntensityPeaks(spec)
			if err := filterConfig.Apply(spec); err != nil {
				f.Close()
				return fmt.Errorf("failed to filter spectrum %s: %w", spec.Label(), err)
			}

			if _, err := store.Add(spec); err != nil {
				var verr *core.ValidationError
				if !errors.As(err, &verr) {
					f.Close()
					return fmt.Errorf("failed to write spectrum %s: %w", spec.Label(), err)
				}
				a.logger.Warn("skipping invalid spectrum", "file", path, "spectrum", spec.Label(), "error", err)
				skipped++
				continue
			}

			count++
			if count%1000 == 0 {
				fmt.Fprintf(w, "Processed %d spectra...\n", count)
			}
		}
		err = f.Err()
		f.Close()
		if err != nil {
			return fmt.Errorf("error reading %s: %w", path, err)
		}
		a.logger.Debug("imported file", "file", path, "format", f.Format)
	}

	if err := store.Finalize(); err != nil {
		return fmt.Errorf("failed to finalize library: %w", err)
	}

	fmt.Fprintf(w, "\nImport complete!\n")
	fmt.Fprintf(w, "Imported: %d spectra\n", count)
	if skipped > 0 {
		fmt.Fprintf(w, "Skipped: %d spectra (validation errors)\n", skipped)
	}
	fmt.Fprintf(w, "Output: %s\n", dbPath)
	return nil
}

type searchOptions struct {
	query  string
	name   string
	limit  int
	asJSON bool
}

func newLibrarySearchCmd(a *app) *cobra.Command {
	opts := &searchOptions{}
	var sf *similarityFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a library by spectral similarity",
		Long: `Score every library spectrum against a query spectrum and print the best
hits.

Examples:
  chemtools library search --db nist.db --query unknown.msp --limit 5
  chemtools library search --db nist.db --query run.mgf --name "scan 1042" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.OutOrStdout(), a, opts, sf)
		},
	}

	sf = addSimilarityFlags(cmd.Flags())
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "File holding the query spectrum (required)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Name of the query spectrum in the file (default: first)")
	cmd.Flags().IntVar(&opts.limit, "limit", 5, "Number of hits to print (0 = all)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON")

	cmd.MarkFlagRequired("query")

	return cmd
}

// searchHit is the --json form of a hit.
type searchHit struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Formula    string  `json:"formula,omitempty"`
	Accession  string  `json:"accession,omitempty"`
	ExactMass  float64 `json:"exact_mass,omitempty"`
	Forward    float64 `json:"forward"`
	Reverse    float64 `json:"reverse"`
	Matched    int     `json:"matched"`
	SourceFile string  `json:"source_file,omitempty"`
}

func runSearch(w io.Writer, a *app, opts *searchOptions, sf *similarityFlags) error {
	query, err := readSpectrum(opts.query, opts.name)
	if err != nil {
		return err
	}

	store, err := library.Open(a.cfg.Library.Path, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer store.Close()

	res, err := store.Search(query, sf.options(a), opts.limit)
	if err != nil {
		return err
	}

	if opts.asJSON {
		hits := make([]searchHit, 0, len(res.Hits))
		for _, h := range res.Hits {
			hits = append(hits, searchHit{
				ID:         h.Entry.ID,
				Name:       h.Entry.Spectrum.Name,
				Formula:    h.Entry.HillFormula,
				Accession:  h.Entry.Spectrum.Accession,
				ExactMass:  h.Entry.ExactMass,
				Forward:    h.Score.Forward,
				Reverse:    h.Score.Reverse,
				Matched:    h.Score.Matched,
				SourceFile: h.Entry.Spectrum.SourceFile,
			})
		}
		return writeJSON(w, map[string]any{
			"query":   query.Label(),
			"scored":  res.Scored,
			"skipped": res.Skipped,
			"mean":    res.Mean,
			"stddev":  res.StdDev,
			"hits":    hits,
		})
	}

	fmt.Fprintf(w, "Query: %s\n", query.Label())
	fmt.Fprintf(w, "Scored %d spectra (mean %.4f, sd %.4f)", res.Scored, res.Mean, res.StdDev)
	if res.Skipped > 0 {
		fmt.Fprintf(w, ", skipped %d", res.Skipped)
	}
	fmt.Fprintln(w)
	if len(res.Hits) == 0 {
		fmt.Fprintln(w, "No hits")
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tForward\tReverse\tMatched\tID\tName\tFormula")
	for i, h := range res.Hits {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%d\t%d\t%s\t%s\n",
			i+1, h.Score.Forward, h.Score.Reverse, h.Score.Matched, h.Entry.ID, h.Entry.Spectrum.Label(), h.Entry.HillFormula)
	}
	return tw.Flush()
}

type infoOptions struct {
	name    string
	formula string
}

func newLibraryInfoCmd(a *app) *cobra.Command {
	opts := &infoOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize a library or look up compounds",
		Long: `Print the number of spectra in a library. With --name or --formula the
matching entries are listed.

Examples:
  chemtools library info --db nist.db
  chemtools library info --db nist.db --name centralite
  chemtools library info --db nist.db --formula C12H11N`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "List entries whose name contains this text")
	cmd.Flags().StringVar(&opts.formula, "formula", "", "List entries with this formula")

	return cmd
}

func runInfo(w io.Writer, a *app, opts *infoOptions) error {
	store, err := library.Open(a.cfg.Library.Path, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Library: %s\n", store.Path())
	fmt.Fprintf(w, "Spectra: %d\n", n)

	var entries []*library.Entry
	switch {
	case opts.name != "":
		entries, err = store.FindByName(opts.name)
	case opts.formula != "":
		entries, err = store.FindByFormula(opts.formula)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Matches: %d\n", len(entries))
	if len(entries) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tFormula\tExact mass\tPeaks\tSource")
	for _, e := range entries {
		source := e.Spectrum.SourceFile
		if e.Spectrum.SourceFormat != "" {
			source = strings.TrimSpace(source + " (" + e.Spectrum.SourceFormat + ")")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.5f\t%d\t%s\n",
			e.ID, e.Spectrum.Label(), e.HillFormula, e.ExactMass, len(e.Spectrum.Peaks), source)
	}
	return tw.Flush()
}
