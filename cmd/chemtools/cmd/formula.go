package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/chemtools/pkg/formula"
)

type formulaOptions struct {
	asJSON       bool
	isotopes     bool
	minAbundance float64
	render       string
	adducts      []string
	adductCSV    string
	peptide      bool
}

// formulaReport is the --json form of one formula.
type formulaReport struct {
	Input       string                    `json:"input"`
	Hill        string                    `json:"hill"`
	Empirical   string                    `json:"empirical"`
	Charge      int                       `json:"charge"`
	Atoms       int                       `json:"atoms"`
	Mass        float64                   `json:"mass"`
	ExactMass   float64                   `json:"exact_mass"`
	NominalMass int                       `json:"nominal_mass"`
	MZ          float64                   `json:"mz,omitempty"`
	Rendered    string                    `json:"rendered,omitempty"`
	Composition []formula.CompositionItem `json:"composition"`
	Isotopes    []formula.IsotopePeak     `json:"isotopes,omitempty"`
	Adducts     map[string]float64        `json:"adducts,omitempty"`
}

func newFormulaCmd(a *app) *cobra.Command {
	opts := &formulaOptions{}

	cmd := &cobra.Command{
		Use:   "formula [formula...]",
		Short: "Parse formulae and print masses and composition",
		Long: `Parse chemical formulae and print their Hill notation, masses and
elemental composition.

Examples:
  # Masses and composition of caffeine
  chemtools formula C8H10N4O2

  # Isotope pattern of a labelled ion
  chemtools formula "[13C]C5H6+" --isotopes --min-abundance 1e-4

  # Precursor m/z for common adducts
  chemtools formula C8H10N4O2 --adduct "[M+H]+" --adduct "[M+Na]+"

  # Formula of a peptide
  chemtools formula --peptide PEPTIDE --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormula(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&opts.isotopes, "isotopes", false, "Print the isotope pattern")
	cmd.Flags().Float64Var(&opts.minAbundance, "min-abundance", 1e-6, "Smallest isotope abundance to print")
	cmd.Flags().StringVar(&opts.render, "render", "", "Render the formula: unicode, html or latex")
	cmd.Flags().StringArrayVar(&opts.adducts, "adduct", nil, "Print the precursor m/z of an adduct, e.g. '[M+H]+'")
	cmd.Flags().StringVar(&opts.adductCSV, "adduct-csv", "", "CSV file with extra adducts (name,massshift,charge[,multiplier])")
	cmd.Flags().BoolVar(&opts.peptide, "peptide", false, "Arguments are peptide sequences")

	return cmd
}

func runFormula(w io.Writer, opts *formulaOptions, args []string) error {
	adducts := formula.DefaultAdductDatabase()
	if opts.adductCSV != "" {
		f, err := os.Open(opts.adductCSV)
		if err != nil {
			return fmt.Errorf("failed to open adduct CSV: %w", err)
		}
		err = adducts.LoadFromCSV(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to load adduct CSV: %w", err)
		}
	}

	var reports []formulaReport
	for _, arg := range args {
		report, err := buildFormulaReport(arg, opts, adducts)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if opts.asJSON {
		return writeJSON(w, reports)
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := printFormulaReport(w, r); err != nil {
			return err
		}
	}
	return nil
}

func buildFormulaReport(input string, opts *formulaOptions, adducts *formula.AdductDatabase) (formulaReport, error) {
	var (
		f   *formula.Formula
		err error
	)
	if opts.peptide {
		f, err = formula.FromPeptide(input)
	} else {
		f, err = formula.Parse(input)
	}
	if err != nil {
		return formulaReport{}, err
	}

	r := formulaReport{
		Input:       input,
		Hill:        f.Hill(),
		Empirical:   f.Empirical().Hill(),
		Charge:      f.Charge(),
		Atoms:       f.Atoms(),
		Mass:        f.Mass(),
		ExactMass:   f.ExactMass(),
		NominalMass: f.NominalMass(),
		Composition: f.CompositionTable(),
	}
	if f.Charge() != 0 {
		r.MZ = f.MZ()
	}

	switch opts.render {
	case "":
	case "unicode":
		r.Rendered = f.Unicode()
	case "html":
		r.Rendered = f.HTML()
	case "latex":
		r.Rendered = f.LaTeX()
	default:
		return formulaReport{}, fmt.Errorf("invalid render style '%s', must be unicode, html or latex", opts.render)
	}

	if opts.isotopes {
		r.Isotopes = f.IsotopeDistribution(opts.minAbundance)
	}

	if len(opts.adducts) > 0 {
		if f.Charge() != 0 {
			return formulaReport{}, fmt.Errorf("adducts need a neutral formula, %s has charge %d", input, f.Charge())
		}
		r.Adducts = make(map[string]float64, len(opts.adducts))
		for _, name := range opts.adducts {
			adduct, ok := adducts.Get(name)
			if !ok {
				return formulaReport{}, fmt.Errorf("unknown adduct '%s'", name)
			}
			mz, err := formula.PrecursorMZ(f, adduct)
			if err != nil {
				return formulaReport{}, err
			}
			r.Adducts[name] = mz
		}
	}
	return r, nil
}

func printFormulaReport(w io.Writer, r formulaReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Formula:\t%s\n", r.Input)
	fmt.Fprintf(tw, "Hill:\t%s\n", r.Hill)
	if r.Empirical != r.Hill {
		fmt.Fprintf(tw, "Empirical:\t%s\n", r.Empirical)
	}
	if r.Rendered != "" {
		fmt.Fprintf(tw, "Rendered:\t%s\n", r.Rendered)
	}
	fmt.Fprintf(tw, "Charge:\t%d\n", r.Charge)
	fmt.Fprintf(tw, "Atoms:\t%d\n", r.Atoms)
	fmt.Fprintf(tw, "Mass:\t%.5f %s\n", r.Mass, formula.MolarMassUnit)
	fmt.Fprintf(tw, "Exact mass:\t%.5f\n", r.ExactMass)
	fmt.Fprintf(tw, "Nominal mass:\t%d\n", r.NominalMass)
	if r.MZ != 0 {
		fmt.Fprintf(tw, "m/z:\t%.5f\n", r.MZ)
	}
	for _, name := range sortedKeys(r.Adducts) {
		fmt.Fprintf(tw, "%s m/z:\t%.5f\n", name, r.Adducts[name])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nComposition:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Element\tCount\tMass\tFraction\t")
	for _, item := range r.Composition {
		fmt.Fprintf(tw, "%s\t%d\t%.5f\t%.2f%%\t\n", item.Key, item.Count, item.Mass, item.Fraction*100)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Isotopes) > 0 {
		fmt.Fprintln(w, "\nIsotope pattern:")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Mass number\tMass\tAbundance\t")
		for _, p := range r.Isotopes {
			fmt.Fprintf(tw, "%d\t%.5f\t%.4f%%\t\n", p.MassNumber, p.Mass, p.Abundance*100)
		}
		return tw.Flush()
	}
	return nil
}
