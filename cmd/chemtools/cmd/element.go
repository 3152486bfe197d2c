package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/chemtools/pkg/elements"
)

type elementReport struct {
	*elements.Element
	SeriesName       string  `json:"series_name"`
	ExactMass        float64 `json:"exact_mass"`
	MonoisotopicMass float64 `json:"monoisotopic_mass"`
	NominalMass      int     `json:"nominal_mass"`
	Neutrons         int     `json:"neutrons"`
	Eleshells        []int   `json:"eleshells,omitempty"`
}

func newElementCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "element [symbol|name|number...]",
		Short: "Print periodic table data",
		Long: `Print the data of elements looked up by symbol, name, atomic number or
isotope key such as C[13]. Without arguments the whole table is listed.

Examples:
  chemtools element Fe
  chemtools element carbon 8 "C[13]" --json
  chemtools element`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				return printElementTable(w, elements.Table.All())
			}

			var reports []elementReport
			for _, key := range args {
				e, err := elements.Table.Lookup(key)
				if err != nil {
					return err
				}
				r := elementReport{
					Element:          e,
					SeriesName:       elements.SeriesNames[e.Series],
					ExactMass:        e.ExactMass(),
					MonoisotopicMass: e.MonoisotopicMass(),
					NominalMass:      e.NominalMass(),
					Neutrons:         e.Neutrons(),
				}
				if shells, err := e.Eleshells(); err == nil {
					r.Eleshells = shells
				} else {
					a.logger.Debug("no shell configuration", "element", e.Symbol, "error", err)
				}
				reports = append(reports, r)
			}

			if asJSON {
				return writeJSON(w, reports)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := printElement(w, r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}

func printElementTable(w io.Writer, list []*elements.Element) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Number\tSymbol\tName\tMass\tSeries")
	for _, e := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\t%s\n", e.Number, e.Symbol, e.Name, e.Mass, elements.SeriesNames[e.Series])
	}
	return tw.Flush()
}

func printElement(w io.Writer, r elementReport) error {
	e := r.Element
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Element:\t%s (%s)\n", e.Name, e.Symbol)
	fmt.Fprintf(tw, "Number:\t%d\n", e.Number)
	fmt.Fprintf(tw, "Group/Period/Block:\t%d / %d / %s\n", e.Group, e.Period, e.Block)
	fmt.Fprintf(tw, "Series:\t%s\n", r.SeriesName)
	fmt.Fprintf(tw, "Relative atomic mass:\t%.6f\n", e.Mass)
	fmt.Fprintf(tw, "Exact mass:\t%.6f\n", r.ExactMass)
	fmt.Fprintf(tw, "Monoisotopic mass:\t%.6f\n", r.MonoisotopicMass)
	fmt.Fprintf(tw, "Nominal mass:\t%d\n", r.NominalMass)
	fmt.Fprintf(tw, "Neutrons:\t%d\n", r.Neutrons)
	fmt.Fprintf(tw, "Electronegativity:\t%.2f\n", e.Eleneg)
	fmt.Fprintf(tw, "Covalent radius:\t%.2f\n", e.Covrad)
	fmt.Fprintf(tw, "Van der Waals radius:\t%.2f\n", e.Vdwrad)
	fmt.Fprintf(tw, "Configuration:\t%s\n", e.Eleconfig)
	if len(r.Eleshells) > 0 {
		shells := make([]string, len(r.Eleshells))
		for i, n := range r.Eleshells {
			shells[i] = fmt.Sprint(n)
		}
		fmt.Fprintf(tw, "Shells:\t%s\n", strings.Join(shells, ", "))
	}
	for i, iso := range e.SortedIsotopes() {
		label := ""
		if i == 0 {
			label = "Isotopes:"
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, iso)
	}
	return tw.Flush()
}
