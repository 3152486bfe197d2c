package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ChrisMcGann/chemtools/pkg/pubchem"
	"github.com/ChrisMcGann/chemtools/pkg/similarity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PubChem.BaseURL != pubchem.DefaultBaseURL {
		t.Errorf("expected base url %q, got %q", pubchem.DefaultBaseURL, cfg.PubChem.BaseURL)
	}
	if cfg.PubChem.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.PubChem.Timeout)
	}
	if cfg.Similarity.Options() != similarity.DefaultOptions() {
		t.Errorf("similarity defaults differ: %+v", cfg.Similarity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing base url",
			modify:  func(c *Config) { c.PubChem.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			modify:  func(c *Config) { c.PubChem.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative tolerance",
			modify:  func(c *Config) { c.Similarity.Tolerance = -1 },
			wantErr: true,
		},
		{
			name:    "baseline above 100",
			modify:  func(c *Config) { c.Similarity.Baseline = 101 },
			wantErr: true,
		},
		{
			name:    "empty mz range",
			modify:  func(c *Config) { c.Similarity.MZMin, c.Similarity.MZMax = 500, 500 },
			wantErr: true,
		},
		{
			name:    "negative mz threshold",
			modify:  func(c *Config) { c.Similarity.MZThreshold = -5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.PubChem.Timeout = 5 * time.Second
	cfg.Similarity.Tolerance = 0.5
	cfg.Library.Path = "/data/nist.db"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.PubChem.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", loaded.PubChem.Timeout)
	}
	if loaded.Similarity.Tolerance != 0.5 {
		t.Errorf("expected tolerance 0.5, got %v", loaded.Similarity.Tolerance)
	}
	if loaded.Library.Path != "/data/nist.db" {
		t.Errorf("expected library path /data/nist.db, got %q", loaded.Library.Path)
	}
}

func TestLoadPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `similarity:
  mz_power: 0
  intensity_power: 0.5
pubchem:
  timeout: 10s
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Similarity.IntensityPower != 0.5 {
		t.Errorf("expected intensity power 0.5, got %v", cfg.Similarity.IntensityPower)
	}
	if cfg.PubChem.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.PubChem.Timeout)
	}
	// Untouched keys keep their defaults.
	if cfg.Similarity.Tolerance != similarity.DefaultOptions().Tolerance {
		t.Errorf("expected default tolerance, got %v", cfg.Similarity.Tolerance)
	}
	if cfg.PubChem.BaseURL != pubchem.DefaultBaseURL {
		t.Errorf("expected default base url, got %q", cfg.PubChem.BaseURL)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("similarity: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFromFile(configPath); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := LoadFromFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		PubChem: PubChemConfig{
			BaseURL: "http://localhost:8080/rest/pug",
		},
		Similarity: SimilarityConfig{
			Baseline: 5,
		},
	}

	base.Merge(other)

	if base.PubChem.BaseURL != "http://localhost:8080/rest/pug" {
		t.Errorf("expected merged base url, got %q", base.PubChem.BaseURL)
	}
	if base.Similarity.Baseline != 5 {
		t.Errorf("expected merged baseline 5, got %v", base.Similarity.Baseline)
	}
	// Zero values do not override.
	if base.PubChem.Timeout != pubchem.DefaultTimeout {
		t.Errorf("expected timeout to stay %v, got %v", pubchem.DefaultTimeout, base.PubChem.Timeout)
	}
	if base.Library.Path != "library.db" {
		t.Errorf("expected library path to stay library.db, got %q", base.Library.Path)
	}

	base.Merge(nil)
}

func TestLoaderPrecedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	work := filepath.Join(project, "sub", "dir")
	if err := os.MkdirAll(work, 0755); err != nil {
		t.Fatal(err)
	}

	userPath := filepath.Join(home, UserConfigDir, UserConfigFile)
	if err := os.MkdirAll(filepath.Dir(userPath), 0755); err != nil {
		t.Fatal(err)
	}
	user := "similarity:\n  tolerance: 0.2\n  baseline: 3\nlibrary:\n  path: user.db\n"
	if err := os.WriteFile(userPath, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}
	proj := "similarity:\n  tolerance: 0.4\n"
	if err := os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte(proj), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(nil)
	loader.HomeDir = home
	loader.WorkDir = work

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Similarity.Tolerance != 0.4 {
		t.Errorf("project config should win, got tolerance %v", cfg.Similarity.Tolerance)
	}
	if cfg.Similarity.Baseline != 3 {
		t.Errorf("expected user baseline 3, got %v", cfg.Similarity.Baseline)
	}
	if cfg.Library.Path != "user.db" {
		t.Errorf("expected user library path, got %q", cfg.Library.Path)
	}
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	project := t.TempDir()
	if err := os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte("similarity:\n  baseline: 150\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(nil)
	loader.HomeDir = t.TempDir()
	loader.WorkDir = project

	if _, err := loader.Load(); err == nil {
		t.Error("expected validation error")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	loader := NewLoader(nil)
	loader.HomeDir = t.TempDir()
	loader.WorkDir = t.TempDir()

	path, err := loader.EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}
	if path != loader.UserConfigPath() {
		t.Errorf("expected %q, got %q", loader.UserConfigPath(), path)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.PubChem.BaseURL != pubchem.DefaultBaseURL {
		t.Errorf("expected default base url, got %q", cfg.PubChem.BaseURL)
	}

	// A second call leaves the file alone.
	if err := os.WriteFile(path, []byte("library:\n  path: kept.db\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.EnsureUserConfig(); err != nil {
		t.Fatal(err)
	}
	kept, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if kept.Library.Path != "kept.db" {
		t.Errorf("expected existing file to be kept, got %q", kept.Library.Path)
	}
}
