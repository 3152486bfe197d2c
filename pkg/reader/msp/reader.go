// Package msp provides streaming readers for NIST MSP format spectral libraries
package msp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChrisMcGann/chemtools/pkg/core"
)

const maxLineSize = 1024 * 1024

// Reader provides streaming access to MSP format files
type Reader struct {
	scanner     *bufio.Scanner
	lineNum     int
	currentSpec *core.Spectrum
	err         error
}

// NewReader creates a new MSP reader
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

// readSpectrum reads a single entry. Entries are separated by blank lines;
// the peak list follows the "Num Peaks" header.
func (r *Reader) readSpectrum() (*core.Spectrum, error) {
	spec := &core.Spectrum{
		SourceFormat: "msp",
		Peaks:        []core.Peak{},
		Metadata:     map[string]string{},
	}

	started := false
	numPeaks := -1

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())

		if line == "" {
			if !started {
				continue
			}
			break
		}
		started = true

		if numPeaks >= 0 {
			peaks, err := parsePeakLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
			}
			spec.Peaks = append(spec.Peaks, peaks...)
			if len(spec.Peaks) >= numPeaks {
				break
			}
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: expected 'key: value', got %q", r.lineNum, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if normaliseKey(key) == "numpeaks" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: invalid num peaks %q", r.lineNum, value)
			}
			numPeaks = n
			if n == 0 {
				break
			}
			continue
		}
		if err := setHeader(spec, key, value); err != nil {
			return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if !started {
		return nil, io.EOF
	}
	if numPeaks < 0 {
		return nil, fmt.Errorf("line %d: entry %q has no Num Peaks line", r.lineNum, spec.Name)
	}
	if len(spec.Peaks) != numPeaks {
		return nil, fmt.Errorf("line %d: entry %q declares %d peaks but has %d",
			r.lineNum, spec.Name, numPeaks, len(spec.Peaks))
	}

	spec.SortPeaks()
	return spec, nil
}

// normaliseKey lower-cases a header key and drops spaces and underscores so
// "Num Peaks", "Num peaks" and "NUM_PEAKS" compare equal.
func normaliseKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, " ", "")
	return strings.ReplaceAll(key, "_", "")
}

// setHeader stores a header field on the spectrum. Unknown fields go to
// Metadata under their original key.
func setHeader(spec *core.Spectrum, key, value string) error {
	switch normaliseKey(key) {
	case "name":
		spec.Name = value
	case "formula":
		spec.Formula = value
	case "inchikey":
		spec.InChIKey = value
	case "cas#", "casno", "cas":
		spec.CAS = value
	case "db#", "nist#", "accession":
		if spec.Accession == "" {
			spec.Accession = value
		} else {
			spec.Metadata[key] = value
		}
	case "precursormz":
		mz, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid precursor m/z %q", value)
		}
		spec.PrecursorMZ = mz
	case "precursortype":
		spec.PrecursorType = value
	case "ionmode":
		spec.IonMode = ionMode(value)
	case "instrument", "instrumenttype":
		if spec.Instrument == "" {
			spec.Instrument = value
		} else {
			spec.Metadata[key] = value
		}
	case "collisionenergy":
		if ce, ok := leadingFloat(value); ok {
			spec.CollisionEnergy = &ce
		}
		spec.Metadata[key] = value
	case "charge":
		if c, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSuffix(value, "+"), "-")); err == nil {
			if strings.HasSuffix(value, "-") {
				c = -c
			}
			spec.Charge = c
		}
	case "synon":
		// Synonyms repeat; keep them all.
		if prev, ok := spec.Metadata[key]; ok {
			value = prev + "\n" + value
		}
		spec.Metadata[key] = value
	default:
		spec.Metadata[key] = value
	}
	return nil
}

// ionMode maps the ion mode spellings found in MSP files to P or N.
func ionMode(v string) string {
	switch strings.ToUpper(v) {
	case "P", "POS", "POSITIVE", "+":
		return "P"
	case "N", "NEG", "NEGATIVE", "-":
		return "N"
	}
	return ""
}

// leadingFloat parses the first number in s, e.g. "35 eV" or "NCE=35%".
func leadingFloat(s string) (float64, bool) {
	start := strings.IndexAny(s, "0123456789.")
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && strings.ContainsRune("0123456789.", rune(s[end])) {
		end++
	}
	f, err := strconv.ParseFloat(s[start:end], 64)
	return f, err == nil
}

// parsePeakLine parses one or more peaks from a line. Pairs are separated
// by ';' and each pair is "mz intensity" optionally followed by a quoted
// annotation.
func parsePeakLine(line string) ([]core.Peak, error) {
	var peaks []core.Peak
	for _, part := range strings.Split(line, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		peak, err := parsePeak(part)
		if err != nil {
			return nil, err
		}
		peaks = append(peaks, peak)
	}
	return peaks, nil
}

// parsePeak parses a single peak (format: "mz intensity \"annotation\"")
func parsePeak(s string) (core.Peak, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return core.Peak{}, fmt.Errorf("invalid peak %q, expected at least 2 fields", s)
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
		annotation := strings.Join(fields[2:], " ")
		peak.Annotation = strings.Trim(annotation, "\"")
	}

	return peak, nil
}
