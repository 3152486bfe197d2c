package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/chemtools/pkg/pubchem"
)

func newPubChemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubchem",
		Short: "Query compound data from PubChem",
	}

	cmd.PersistentFlags().StringVar(&a.pubchemURL, "pubchem-url", "", "PUG REST base URL (default: pubchem.base_url from config)")

	cmd.AddCommand(newPubChemPropertiesCmd(a))
	cmd.AddCommand(newPubChemListPropertiesCmd())
	cmd.AddCommand(newPubChemRecordCmd(a))

	return cmd
}

func (a *app) pubchemClient() *pubchem.Client {
	opts := append(a.cfg.PubChem.ClientOptions(), pubchem.WithLogger(a.logger))
	return pubchem.NewClient(opts...)
}

type propertiesOptions struct {
	namespace  string
	properties []string
	format     string
	raw        string
	xlsx       string
}

func newPubChemPropertiesCmd(a *app) *cobra.Command {
	opts := &propertiesOptions{}

	cmd := &cobra.Command{
		Use:   "properties <identifier...>",
		Short: "Fetch computed properties of compounds",
		Long: `Fetch computed properties of compounds identified by name, CID, SMILES,
InChI, InChIKey or formula. Use 'all' to request every property.

Examples:
  chemtools pubchem properties caffeine aspirin --properties MolecularFormula,MolecularWeight
  chemtools pubchem properties 2519 --namespace cid --properties all --xlsx caffeine.xlsx
  chemtools pubchem properties caffeine --properties xlogp --format json
  chemtools pubchem properties caffeine --properties InChIKey --raw csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProperties(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", string(pubchem.NamespaceName), "Identifier namespace: cid, name, smiles, inchi, inchikey, formula")
	cmd.Flags().StringSliceVarP(&opts.properties, "properties", "p", []string{"MolecularFormula", "MolecularWeight", "IUPACName"}, "Properties to fetch (comma separated, or 'all')")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, csv or json")
	cmd.Flags().StringVar(&opts.raw, "raw", "", "Print the PubChem response unparsed as csv, txt, xml or json")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Also write the table to an Excel workbook")

	return cmd
}

func runProperties(cmd *cobra.Command, a *app, opts *propertiesOptions, ids []string) error {
	w := cmd.OutOrStdout()
	ns, err := pubchem.ParseNamespace(opts.namespace)
	if err != nil {
		return err
	}
	props, err := pubchem.ForceValidProperties(opts.properties...)
	if err != nil {
		return err
	}
	client := a.pubchemClient()

	if opts.raw != "" {
		format, err := pubchem.ParseFormat(opts.raw)
		if err != nil {
			return err
		}
		text, err := client.GetPropertiesText(cmd.Context(), ids, ns, format, props...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	}

	rows, err := client.GetProperties(cmd.Context(), ids, props, ns)
	if err != nil {
		return err
	}

	if opts.xlsx != "" {
		if err := pubchem.ExportXLSX(opts.xlsx, props, rows); err != nil {
			return err
		}
		a.logger.Info("wrote workbook", "path", opts.xlsx, "compounds", len(rows))
	}

	switch opts.format {
	case "table":
		return printPropertyTable(w, props, rows)
	case "csv":
		return pubchem.WriteCSV(w, props, rows)
	case "json":
		return writeJSON(w, rows)
	}
	return fmt.Errorf("invalid format '%s', must be table, csv or json", opts.format)
}

func printPropertyTable(w io.Writer, props []string, rows []pubchem.Properties) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CID\t"+strings.Join(props, "\t"))
	for _, p := range rows {
		cells := make([]string, 0, len(props)+1)
		cells = append(cells, strconv.Itoa(p.CID))
		for _, name := range props {
			cells = append(cells, p.Format(name))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func newPubChemListPropertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-properties",
		Short: "List the properties PubChem computes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), pubchem.ValidPropertyDescriptions())
			return err
		},
	}
}

type recordOptions struct {
	threeD bool
	asJSON bool
}

// recordReport is the --json form of a compound record.
type recordReport struct {
	CID            int                       `json:"cid"`
	Charge         int                       `json:"charge"`
	CoordinateType string                    `json:"coordinate_type,omitempty"`
	Atoms          []pubchem.Atom            `json:"atoms"`
	Bonds          []map[string]any          `json:"bonds"`
	Properties     []pubchem.PubChemProperty `json:"properties"`
}

func newPubChemRecordCmd(a *app) *cobra.Command {
	opts := &recordOptions{}

	cmd := &cobra.Command{
		Use:   "record <cid>",
		Short: "Fetch the full record of a compound",
		Long: `Fetch the full PubChem record of a compound: atoms, bonds, coordinates
and the computed properties.

Examples:
  chemtools pubchem record 2519
  chemtools pubchem record 2519 --3d --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cid, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid CID '%s'", args[0])
			}
			recordType := pubchem.Record2D
			if opts.threeD {
				recordType = pubchem.Record3D
			}

			c, err := a.pubchemClient().FromCID(cmd.Context(), cid, recordType)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.asJSON {
				bonds := make([]map[string]any, len(c.Bonds))
				for i, b := range c.Bonds {
					bonds[i] = b.ToMap()
				}
				return writeJSON(w, recordReport{
					CID:            c.CID,
					Charge:         c.Charge,
					CoordinateType: c.CoordinateType(),
					Atoms:          c.Atoms,
					Bonds:          bonds,
					Properties:     c.Properties,
				})
			}
			return printRecord(w, c)
		},
	}

	cmd.Flags().BoolVar(&opts.threeD, "3d", false, "Fetch the 3D conformer instead of the 2D record")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON")

	return cmd
}

func printRecord(w io.Writer, c *pubchem.Compound) error {
	counts := make(map[string]int)
	for _, el := range c.Elements() {
		counts[el]++
	}
	parts := make([]string, 0, len(counts))
	for _, el := range sortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%s %d", el, counts[el]))
	}

	fmt.Fprintf(w, "CID: %d\n", c.CID)
	fmt.Fprintf(w, "Charge: %d\n", c.Charge)
	if ct := c.CoordinateType(); ct != "" {
		fmt.Fprintf(w, "Coordinates: %s\n", ct)
	}
	fmt.Fprintf(w, "Atoms: %d (%s)\n", len(c.Atoms), strings.Join(parts, ", "))
	fmt.Fprintf(w, "Bonds: %d\n", len(c.Bonds))

	if len(c.Properties) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nProperties:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range c.Properties {
		label := p.Label
		if p.Name != "" {
			label += " (" + p.Name + ")"
		}
		value := fmt.Sprint(p.Value)
		if list, ok := p.Value.([]string); ok {
			value = strings.Join(list, "; ")
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, value)
	}
	return tw.Flush()
}
