// Package filter provides peak filtering and transformation functions
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ChrisMcGann/chemtools/pkg/core"
)

// Config holds filtering configuration
type Config struct {
	TopN            int      // Keep only top N most intense peaks (0 = no limit)
	IntensityCutoff float64  // Keep only peaks above this % of base peak (0 = no cutoff)
	MinMZ           float64  // Drop peaks below this m/z (0 = no limit)
	MaxMZ           float64  // Drop peaks above this m/z (0 = no limit)
	IonTypes        []string // Keep only peaks whose annotation starts with one of these (nil = all)
	Normalize       float64  // Scale the base peak to this intensity (0 = keep raw intensities)
}

// Apply applies all configured filters to a spectrum
func (c *Config) Apply(spec *core.Spectrum) error {
	if c.MinMZ < 0 || c.MaxMZ < 0 || (c.MaxMZ > 0 && c.MaxMZ < c.MinMZ) {
		return fmt.Errorf("invalid m/z range [%g, %g]", c.MinMZ, c.MaxMZ)
	}
	if c.IntensityCutoff < 0 || c.IntensityCutoff > 100 {
		return fmt.Errorf("intensity cutoff must be between 0 and 100, got %g", c.IntensityCutoff)
	}

	// Filter by ion type first
	if len(c.IonTypes) > 0 {
		c.filterByIonType(spec)
	}

	if c.MinMZ > 0 || c.MaxMZ > 0 {
		c.filterByMZ(spec)
	}

	// Apply intensity filters
	if c.IntensityCutoff > 0 {
		c.filterByIntensity(spec)
	}

	// Apply top-N filter
	if c.TopN > 0 {
		c.filterTopN(spec)
	}

	if c.Normalize > 0 {
		Normalize(spec, c.Normalize)
	}

	// Ensure peaks are sorted after all filtering
	spec.SortPeaks()

	return nil
}

// filterByIonType keeps only peaks matching specified ion types
func (c *Config) filterByIonType(spec *core.Spectrum) {
	var filtered []core.Peak
	for _, peak := range spec.Peaks {
		if matchesIonType(peak.Annotation, c.IonTypes) {
			filtered = append(filtered, peak)
		}
	}
	spec.Peaks = filtered
}

// matchesIonType checks if an annotation matches any of the allowed ion types
func matchesIonType(annotation string, ionTypes []string) bool {
	if annotation == "" {
		return false
	}

	for _, ionType := range ionTypes {
		if strings.HasPrefix(annotation, ionType) {
			return true
		}
	}
	return false
}

// filterByMZ keeps peaks inside [MinMZ, MaxMZ]
func (c *Config) filterByMZ(spec *core.Spectrum) {
	var filtered []core.Peak
	for _, peak := range spec.Peaks {
		if peak.MZ < c.MinMZ {
			continue
		}
		if c.MaxMZ > 0 && peak.MZ > c.MaxMZ {
			continue
		}
		filtered = append(filtered, peak)
	}
	spec.Peaks = filtered
}

// filterByIntensity removes peaks below the intensity cutoff percentage
func (c *Config) filterByIntensity(spec *core.Spectrum) {
	if len(spec.Peaks) == 0 {
		return
	}

	// Calculate threshold
	threshold := (c.IntensityCutoff / 100.0) * maxIntensity(spec)

	// Filter peaks
	var filtered []core.Peak
	for _, peak := range spec.Peaks {
		if peak.Intensity >= threshold {
			filtered = append(filtered, peak)
		}
	}

	spec.Peaks = filtered
}

// filterTopN keeps only the N most intense peaks
func (c *Config) filterTopN(spec *core.Spectrum) {
	if len(spec.Peaks) <= c.TopN {
		return
	}

	// Create a copy and sort by intensity descending
	peaks := make([]core.Peak, len(spec.Peaks))
	copy(peaks, spec.Peaks)

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Intensity > peaks[j].Intensity
	})

	// Keep only top N
	spec.Peaks = peaks[:c.TopN]
}

func maxIntensity(spec *core.Spectrum) float64 {
	m := 0.0
	for _, peak := range spec.Peaks {
		if peak.Intensity > m {
			m = peak.Intensity
		}
	}
	return m
}

// Normalize scales intensities so that the base peak equals scale.
// Spectra without positive intensities are left unchanged.
func Normalize(spec *core.Spectrum, scale float64) {
	m := maxIntensity(spec)
	if m <= 0 {
		return
	}
	for i := range spec.Peaks {
		spec.Peaks[i].Intensity = scale * spec.Peaks[i].Intensity / m
	}
}

// RemoveZeroIntensityPeaks removes peaks with zero or negative intensity
func RemoveZeroIntensityPeaks(spec *core.Spectrum) {
	var filtered []core.Peak
	for _, peak := range spec.Peaks {
		if peak.Intensity > 0 {
			filtered = append(filtered, peak)
		}
	}
	spec.Peaks = filtered
}
