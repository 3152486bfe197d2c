// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/chemtools/pkg/config"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configFile string
	// Flag overrides merged over the loaded config.
	dbPath     string
	pubchemURL string

	logger *slog.Logger
	cfg    *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.Default(), cfg: config.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "chemtools",
		Short: "chemtools - chemistry and mass spectrometry toolkit",
		Long: `chemtools works with chemical formulae, the periodic table, mass spectra
and PubChem.

- Parse formulae and compute masses, compositions and isotope patterns
- Compare mass spectra and plot head-to-tail alignments
- Build and search SQLite spectral libraries from MSP and MGF files
- Fetch compound properties and records from PubChem`,
		Version:           "1.0.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: user and project config)")

	rootCmd.AddCommand(newFormulaCmd(a))
	rootCmd.AddCommand(newElementCmd(a))
	rootCmd.AddCommand(newCompareCmd(a))
	rootCmd.AddCommand(newLibraryCmd(a))
	rootCmd.AddCommand(newPubChemCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup builds the logger and loads the configuration.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.configFile != "" {
		cfg, err := config.LoadFromFile(a.configFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", a.configFile, err)
		}
		a.cfg = cfg
	} else {
		cfg, err := config.NewLoader(a.logger).Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.cfg = cfg
	}

	a.cfg.Merge(&config.Config{
		PubChem: config.PubChemConfig{BaseURL: a.pubchemURL},
		Library: config.LibraryConfig{Path: a.dbPath},
	})
	return nil
}
