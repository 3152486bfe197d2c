// Package mgf provides streaming readers for Mascot Generic Format (MGF) spectra
package mgf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ChrisMcGann/chemtools/pkg/core"
)

const maxLineSize = 1024 * 1024

// chargeRe matches charges written as "2+", "+2", "1-" or "3".
var chargeRe = regexp.MustCompile(`^([+-]?)(\d+)([+-]?)$`)

// Reader provides streaming access to MGF files
type Reader struct {
	scanner     *bufio.Scanner
	lineNum     int
	currentSpec *core.Spectrum
	err         error
}

// NewReader creates a new MGF reader
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Reader{scanner: scanner}
}

// Next advances to the next spectrum. Returns false when no more spectra or error.
func (r *Reader) Next() bool {
	r.currentSpec = nil

	spec, err := r.readSpectrum()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}

	r.currentSpec = spec
	return true
}

// Spectrum returns the current spectrum
func (r *Reader) Spectrum() *core.Spectrum {
	return r.currentSpec
}

// Err returns any error encountered during reading
func (r *Reader) Err() error {
	return r.err
}

// readSpectrum reads one BEGIN IONS ... END IONS block. Lines outside a
// block (global parameters, comments) are skipped.
func (r *Reader) readSpectrum() (*core.Spectrum, error) {
	var spec *core.Spectrum

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if spec == nil {
			if strings.EqualFold(line, "BEGIN IONS") {
				spec = &core.Spectrum{
					SourceFormat: "mgf",
					Peaks:        []core.Peak{},
					Metadata:     map[string]string{},
				}
			}
			continue
		}

		if strings.EqualFold(line, "END IONS") {
			spec.SortPeaks()
			return spec, nil
		}
		if strings.EqualFold(line, "BEGIN IONS") {
			return nil, fmt.Errorf("line %d: BEGIN IONS inside an open block", r.lineNum)
		}

		if key, value, ok := strings.Cut(line, "="); ok && !startsWithDigit(line) {
			if err := setParam(spec, strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(value)); err != nil {
				return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
			}
			continue
		}

		peak, err := parsePeak(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
		}
		spec.Peaks = append(spec.Peaks, peak)
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if spec != nil {
		return nil, fmt.Errorf("line %d: missing END IONS", r.lineNum)
	}
	return nil, io.EOF
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// setParam stores a block parameter on the spectrum. Unknown parameters go
// to Metadata.
func setParam(spec *core.Spectrum, key, value string) error {
	switch key {
	case "TITLE", "NAME":
		spec.Name = value
	case "PEPMASS", "PRECURSORMZ":
		// PEPMASS may carry the precursor intensity as a second field
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return fmt.Errorf("empty %s", key)
		}
		mz, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q", key, value)
		}
		spec.PrecursorMZ = mz
	case "CHARGE":
		c, err := parseCharge(value)
		if err != nil {
			return err
		}
		spec.Charge = c
		if spec.IonMode == "" && c != 0 {
			spec.IonMode = "P"
			if c < 0 {
				spec.IonMode = "N"
			}
		}
	case "RTINSECONDS":
		rt, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid RTINSECONDS %q", value)
		}
		spec.RetentionTime = &rt
	case "FORMULA":
		spec.Formula = value
	case "INCHIKEY":
		spec.InChIKey = value
	case "CAS":
		spec.CAS = value
	case "SPECTRUMID", "ACCESSION", "SCANS":
		if spec.Accession == "" {
			spec.Accession = value
		} else {
			spec.Metadata[key] = value
		}
	case "ADDUCT", "PRECURSORTYPE":
		spec.PrecursorType = value
	case "IONMODE":
		switch strings.ToLower(value) {
		case "positive", "p":
			spec.IonMode = "P"
		case "negative", "n":
			spec.IonMode = "N"
		}
	case "INSTRUMENT", "SOURCE_INSTRUMENT":
		spec.Instrument = value
	case "COLLISION_ENERGY", "COLLISIONENERGY":
		if ce, err := strconv.ParseFloat(value, 64); err == nil {
			spec.CollisionEnergy = &ce
		} else {
			spec.Metadata[key] = value
		}
	default:
		spec.Metadata[key] = value
	}
	return nil
}

// parseCharge parses the first charge of a CHARGE value such as "2+" or
// "2+ and 3+".
func parseCharge(value string) (int, error) {
	first := strings.Fields(value)
	if len(first) == 0 {
		return 0, fmt.Errorf("empty CHARGE")
	}
	m := chargeRe.FindStringSubmatch(first[0])
	if m == nil {
		return 0, fmt.Errorf("invalid CHARGE %q", value)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("invalid CHARGE %q: %w", value, err)
	}
	if m[1] == "-" || m[3] == "-" {
		n = -n
	}
	return n, nil
}

// parsePeak parses a single peak line
// Format: "mz intensity [charge]"
func parsePeak(line string) (core.Peak, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return core.Peak{}, fmt.Errorf("invalid peak format, expected at least 2 fields")
	}

	mz, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Peak{}, fmt.Errorf("invalid m/z value: %w", err)
	}

	intensity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Peak{}, fmt.Errorf("invalid intensity value: %w", err)
	}

	peak := core.Peak{
		MZ:        mz,
		Intensity: intensity,
	}
	if len(fields) >= 3 {
		peak.Annotation = strings.Join(fields[2:], " ")
	}
	return peak, nil
}
