// Package config provides configuration loading and management for chemtools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ChrisMcGann/chemtools/pkg/pubchem"
	"github.com/ChrisMcGann/chemtools/pkg/similarity"
)

// Config represents the complete chemtools configuration
type Config struct {
	PubChem    PubChemConfig    `yaml:"pubchem"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Library    LibraryConfig    `yaml:"library"`
}

// PubChemConfig configures the PUG REST client
type PubChemConfig struct {
	// BaseURL is the PUG REST endpoint
	BaseURL string `yaml:"base_url"`
	// Timeout bounds a single request
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent is sent with every request
	UserAgent string `yaml:"user_agent"`
}

// SimilarityConfig holds the spectrum comparison settings
type SimilarityConfig struct {
	Tolerance      float64 `yaml:"tolerance"`
	Baseline       float64 `yaml:"baseline"`
	MZMin          float64 `yaml:"mz_min"`
	MZMax          float64 `yaml:"mz_max"`
	MZThreshold    float64 `yaml:"mz_threshold"`
	MZPower        float64 `yaml:"mz_power"`
	IntensityPower float64 `yaml:"intensity_power"`
}

// LibraryConfig configures the spectral library
type LibraryConfig struct {
	// Path is the default SQLite library file
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	opts := similarity.DefaultOptions()
	return &Config{
		PubChem: PubChemConfig{
			BaseURL:   pubchem.DefaultBaseURL,
			Timeout:   pubchem.DefaultTimeout,
			UserAgent: "chemtools",
		},
		Similarity: SimilarityConfig{
			Tolerance:      opts.Tolerance,
			Baseline:       opts.Baseline,
			MZMin:          opts.MZMin,
			MZMax:          opts.MZMax,
			MZThreshold:    opts.MZThreshold,
			MZPower:        opts.MZPower,
			IntensityPower: opts.IntensityPower,
		},
		Library: LibraryConfig{
			Path: "library.db",
		},
	}
}

// Options converts the settings to similarity options.
func (s SimilarityConfig) Options() similarity.Options {
	return similarity.Options{
		Tolerance:      s.Tolerance,
		Baseline:       s.Baseline,
		MZMin:          s.MZMin,
		MZMax:          s.MZMax,
		MZThreshold:    s.MZThreshold,
		MZPower:        s.MZPower,
		IntensityPower: s.IntensityPower,
	}
}

// ClientOptions converts the settings to PubChem client options.
func (p PubChemConfig) ClientOptions() []pubchem.Option {
	return []pubchem.Option{
		pubchem.WithBaseURL(p.BaseURL),
		pubchem.WithTimeout(p.Timeout),
		pubchem.WithUserAgent(p.UserAgent),
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.PubChem.BaseURL == "" {
		return fmt.Errorf("pubchem.base_url is required")
	}
	if c.PubChem.Timeout <= 0 {
		return fmt.Errorf("pubchem.timeout must be positive")
	}
	s := c.Similarity
	if s.Tolerance < 0 {
		return fmt.Errorf("similarity.tolerance must not be negative")
	}
	if s.Baseline < 0 || s.Baseline > 100 {
		return fmt.Errorf("similarity.baseline must be between 0 and 100")
	}
	if s.MZMax <= s.MZMin {
		return fmt.Errorf("similarity.mz_max must be greater than similarity.mz_min")
	}
	if s.MZThreshold < 0 {
		return fmt.Errorf("similarity.mz_threshold must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := mergeFile(config, path); err != nil {
		return nil, err
	}
	return config, nil
}

// mergeFile overlays the keys present in the YAML file at path onto config.
func mergeFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// PubChem
	if other.PubChem.BaseURL != "" {
		c.PubChem.BaseURL = other.PubChem.BaseURL
	}
	if other.PubChem.Timeout != 0 {
		c.PubChem.Timeout = other.PubChem.Timeout
	}
	if other.PubChem.UserAgent != "" {
		c.PubChem.UserAgent = other.PubChem.UserAgent
	}

	// Similarity
	s := other.Similarity
	if s.Tolerance != 0 {
		c.Similarity.Tolerance = s.Tolerance
	}
	if s.Baseline != 0 {
		c.Similarity.Baseline = s.Baseline
	}
	if s.MZMin != 0 {
		c.Similarity.MZMin = s.MZMin
	}
	if s.MZMax != 0 {
		c.Similarity.MZMax = s.MZMax
	}
	if s.MZThreshold != 0 {
		c.Similarity.MZThreshold = s.MZThreshold
	}
	if s.MZPower != 0 {
		c.Similarity.MZPower = s.MZPower
	}
	if s.IntensityPower != 0 {
		c.Similarity.IntensityPower = s.IntensityPower
	}

	// Library
	if other.Library.Path != "" {
		c.Library.Path = other.Library.Path
	}
}
