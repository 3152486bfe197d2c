// Package core provides the intermediate representation (IR) models and validation logic
// for mass spectra handled by chemtools.
package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Spectrum represents a single mass spectrum with all associated metadata.
type Spectrum struct {
	// Identification
	Name      string // Compound name
	Formula   string // Molecular formula as written in the source
	InChIKey  string
	CAS       string
	Accession string // Library accession (DB#, NIST#, generated UUID)

	// Precursor
	PrecursorMZ   float64 // 0 when unknown
	PrecursorType string  // Adduct, e.g. "[M+H]+"
	Charge        int     // Precursor charge state, 0 when unknown
	IonMode       string  // P or N

	// Acquisition
	Instrument      string
	CollisionEnergy *float64
	RetentionTime   *float64 // Seconds

	Peaks    []Peak
	Metadata map[string]string // Remaining header fields

	// Internal tracking
	SourceFile   string
	SourceFormat string // msp, mgf
}

// Peak represents a single m/z, intensity pair with optional metadata.
type Peak struct {
	MZ         float64
	Intensity  float64
	Annotation string // Peak annotation (e.g., fragment formula)
}

// NewSpectrum creates an unnamed spectrum from parallel m/z and intensity
// slices. Peaks are sorted by m/z.
func NewSpectrum(mz, intensity []float64) (*Spectrum, error) {
	if len(mz) != len(intensity) {
		return nil, &ValidationError{
			Field:   "Peaks",
			Message: fmt.Sprintf("%d m/z values but %d intensities", len(mz), len(intensity)),
		}
	}
	s := &Spectrum{Peaks: make([]Peak, len(mz))}
	for i := range mz {
		s.Peaks[i] = Peak{MZ: mz[i], Intensity: intensity[i]}
	}
	s.SortPeaks()
	return s, nil
}

// ValidationError represents an error found during spectrum validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// Validate checks that a spectrum meets all requirements for processing.
func (s *Spectrum) Validate() error {
	var errs []string

	// Required fields
	if s.Name == "" {
		errs = append(errs, "name is required")
	}
	if len(s.Peaks) == 0 {
		errs = append(errs, "at least one peak is required")
	}
	if s.PrecursorMZ < 0 || math.IsNaN(s.PrecursorMZ) {
		errs = append(errs, "precursor m/z must not be negative")
	}
	if s.IonMode != "" && s.IonMode != "P" && s.IonMode != "N" {
		errs = append(errs, fmt.Sprintf("ion mode must be P or N, got %q", s.IonMode))
	}

	// Validate peaks
	for i, peak := range s.Peaks {
		if math.IsNaN(peak.MZ) || math.IsInf(peak.MZ, 0) {
			errs = append(errs, fmt.Sprintf("peak %d has invalid m/z", i))
		}
		if math.IsNaN(peak.Intensity) || math.IsInf(peak.Intensity, 0) {
			errs = append(errs, fmt.Sprintf("peak %d has invalid intensity", i))
		}
		if peak.MZ <= 0 {
			errs = append(errs, fmt.Sprintf("peak %d m/z must be positive", i))
		}
		if peak.Intensity < 0 {
			errs = append(errs, fmt.Sprintf("peak %d intensity must be non-negative", i))
		}
	}

	// Check if peaks are sorted
	if !s.ArePeaksSorted() {
		errs = append(errs, "peaks must be sorted by m/z")
	}

	if len(errs) > 0 {
		return &ValidationError{
			Field:   "Spectrum",
			Message: strings.Join(errs, "; "),
		}
	}

	return nil
}

// ArePeaksSorted checks if peaks are sorted by m/z in ascending order.
func (s *Spectrum) ArePeaksSorted() bool {
	for i := 1; i < len(s.Peaks); i++ {
		if s.Peaks[i].MZ < s.Peaks[i-1].MZ {
			return false
		}
	}
	return true
}

// SortPeaks sorts peaks by m/z in ascending order.
func (s *Spectrum) SortPeaks() {
	sort.SliceStable(s.Peaks, func(i, j int) bool {
		return s.Peaks[i].MZ < s.Peaks[j].MZ
	})
}

// BasePeak returns the most intense peak. The second result is false for an
// empty spectrum.
func (s *Spectrum) BasePeak() (Peak, bool) {
	if len(s.Peaks) == 0 {
		return Peak{}, false
	}
	base := s.Peaks[0]
	for _, p := range s.Peaks[1:] {
		if p.Intensity > base.Intensity {
			base = p
		}
	}
	return base, true
}

// TIC returns the total ion current, the sum of all intensities.
func (s *Spectrum) TIC() float64 {
	total := 0.0
	for _, p := range s.Peaks {
		total += p.Intensity
	}
	return total
}

// MZs returns the peak m/z values.
func (s *Spectrum) MZs() []float64 {
	out := make([]float64, len(s.Peaks))
	for i, p := range s.Peaks {
		out[i] = p.MZ
	}
	return out
}

// Intensities returns the peak intensities.
func (s *Spectrum) Intensities() []float64 {
	out := make([]float64, len(s.Peaks))
	for i, p := range s.Peaks {
		out[i] = p.Intensity
	}
	return out
}

// Clone returns a deep copy of the spectrum.
func (s *Spectrum) Clone() *Spectrum {
	c := *s
	c.Peaks = append([]Peak(nil), s.Peaks...)
	if s.Metadata != nil {
		c.Metadata = make(map[string]string, len(s.Metadata))
		for k, v := range s.Metadata {
			c.Metadata[k] = v
		}
	}
	if s.CollisionEnergy != nil {
		ce := *s.CollisionEnergy
		c.CollisionEnergy = &ce
	}
	if s.RetentionTime != nil {
		rt := *s.RetentionTime
		c.RetentionTime = &rt
	}
	return &c
}

// Label returns a display name: the compound name with its precursor type,
// falling back to the accession.
func (s *Spectrum) Label() string {
	name := s.Name
	if name == "" {
		name = s.Accession
	}
	if name == "" {
		name = "unnamed"
	}
	if s.PrecursorType != "" {
		return fmt.Sprintf("%s %s", name, s.PrecursorType)
	}
	return name
}

// RoundFloat rounds a float to n decimal places
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
