package core

import (
	"errors"
	"math"
	"testing"
)

func TestSpectrumValidation(t *testing.T) {
	tests := []struct {
		name    string
		spec    *Spectrum
		wantErr bool
	}{
		{
			name: "valid spectrum",
			spec: &Spectrum{
				Name:          "Diphenylamine",
				PrecursorMZ:   170.0964,
				PrecursorType: "[M+H]+",
				IonMode:       "P",
				Peaks: []Peak{
					{MZ: 93.0, Intensity: 1000.0},
					{MZ: 169.0, Intensity: 2000.0},
				},
			},
			wantErr: false,
		},
		{
			name: "unknown precursor is allowed",
			spec: &Spectrum{
				Name: "EI spectrum",
				Peaks: []Peak{
					{MZ: 77.0, Intensity: 10.0},
				},
			},
			wantErr: false,
		},
		{
			name: "missing name",
			spec: &Spectrum{
				Peaks: []Peak{
					{MZ: 100.0, Intensity: 1000.0},
				},
			},
			wantErr: true,
		},
		{
			name: "negative precursor",
			spec: &Spectrum{
				Name:        "x",
				PrecursorMZ: -1,
				Peaks: []Peak{
					{MZ: 100.0, Intensity: 1000.0},
				},
			},
			wantErr: true,
		},
		{
			name: "bad ion mode",
			spec: &Spectrum{
				Name:    "x",
				IonMode: "positive",
				Peaks: []Peak{
					{MZ: 100.0, Intensity: 1000.0},
				},
			},
			wantErr: true,
		},
		{
			name: "no peaks",
			spec: &Spectrum{
				Name:  "x",
				Peaks: []Peak{},
			},
			wantErr: true,
		},
		{
			name: "unsorted peaks",
			spec: &Spectrum{
				Name: "x",
				Peaks: []Peak{
					{MZ: 200.0, Intensity: 2000.0},
					{MZ: 100.0, Intensity: 1000.0},
				},
			},
			wantErr: true,
		},
		{
			name: "NaN m/z",
			spec: &Spectrum{
				Name: "x",
				Peaks: []Peak{
					{MZ: math.NaN(), Intensity: 1000.0},
				},
			},
			wantErr: true,
		},
		{
			name: "negative intensity",
			spec: &Spectrum{
				Name: "x",
				Peaks: []Peak{
					{MZ: 100.0, Intensity: -1},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var verr *ValidationError
			if err != nil && !errors.As(err, &verr) {
				t.Errorf("Validate() error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestSortPeaks(t *testing.T) {
	spec := &Spectrum{
		Peaks: []Peak{
			{MZ: 300.0, Intensity: 100.0},
			{MZ: 100.0, Intensity: 200.0},
			{MZ: 200.0, Intensity: 150.0},
		},
	}

	spec.SortPeaks()

	if len(spec.Peaks) != 3 {
		t.Fatalf("Expected 3 peaks, got %d", len(spec.Peaks))
	}

	expected := []float64{100.0, 200.0, 300.0}
	for i, peak := range spec.Peaks {
		if peak.MZ != expected[i] {
			t.Errorf("Peak %d: expected m/z %.1f, got %.1f", i, expected[i], peak.MZ)
		}
	}
}

func TestNewSpectrum(t *testing.T) {
	spec, err := NewSpectrum([]float64{200, 100}, []float64{5, 10})
	if err != nil {
		t.Fatalf("NewSpectrum() error = %v", err)
	}
	if !spec.ArePeaksSorted() {
		t.Error("Expected sorted peaks")
	}
	if spec.Peaks[0].Intensity != 10 {
		t.Errorf("Expected intensity 10 at m/z 100, got %.1f", spec.Peaks[0].Intensity)
	}

	if _, err := NewSpectrum([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestPeakStatistics(t *testing.T) {
	spec := &Spectrum{
		Peaks: []Peak{
			{MZ: 51.0, Intensity: 20.0},
			{MZ: 77.0, Intensity: 80.0},
			{MZ: 169.0, Intensity: 100.0},
		},
	}

	base, ok := spec.BasePeak()
	if !ok || base.MZ != 169.0 {
		t.Errorf("BasePeak() = %+v, %v", base, ok)
	}
	if tic := spec.TIC(); tic != 200.0 {
		t.Errorf("TIC() = %.1f, want 200", tic)
	}

	mzs := spec.MZs()
	ints := spec.Intensities()
	if len(mzs) != 3 || mzs[1] != 77.0 || ints[1] != 80.0 {
		t.Errorf("MZs() = %v, Intensities() = %v", mzs, ints)
	}

	if _, ok := (&Spectrum{}).BasePeak(); ok {
		t.Error("BasePeak() of empty spectrum should report false")
	}
}

func TestClone(t *testing.T) {
	ce := 20.0
	spec := &Spectrum{
		Name:            "x",
		CollisionEnergy: &ce,
		Metadata:        map[string]string{"Comment": "a"},
		Peaks:           []Peak{{MZ: 1, Intensity: 1}},
	}

	c := spec.Clone()
	c.Peaks[0].MZ = 2
	c.Metadata["Comment"] = "b"
	*c.CollisionEnergy = 40

	if spec.Peaks[0].MZ != 1 || spec.Metadata["Comment"] != "a" || *spec.CollisionEnergy != 20 {
		t.Error("Clone() shares state with the original")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		spec *Spectrum
		want string
	}{
		{"name and type", &Spectrum{Name: "Caffeine", PrecursorType: "[M+H]+"}, "Caffeine [M+H]+"},
		{"name only", &Spectrum{Name: "Caffeine"}, "Caffeine"},
		{"accession", &Spectrum{Accession: "NIST-1"}, "NIST-1"},
		{"nothing", &Spectrum{}, "unnamed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Label(); got != tt.want {
				t.Errorf("Label() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		name      string
		val       float64
		precision int
		want      float64
	}{
		{"round to 2 decimals", 3.14159, 2, 3.14},
		{"round to 4 decimals", 3.14159, 4, 3.1416},
		{"round to 0 decimals", 3.6, 0, 4.0},
		{"round negative", -3.14159, 2, -3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundFloat(tt.val, tt.precision)
			if got != tt.want {
				t.Errorf("RoundFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}
