package formula

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Adduct describes an ion species formed from a neutral molecule M, such as
// [M+H]+. MassShift is the exact mass added to Multiplier x M, electrons
// included.
type Adduct struct {
	Name       string  `json:"name"`
	MassShift  float64 `json:"mass_shift"`
	Charge     int     `json:"charge"`
	Multiplier int     `json:"multiplier"`
}

// PrecursorMZ returns the m/z of the adduct ion of f.
func PrecursorMZ(f *Formula, a Adduct) (float64, error) {
	if a.Charge == 0 {
		return 0, fmt.Errorf("adduct %s has no charge", a.Name)
	}
	mult := a.Multiplier
	if mult <= 0 {
		mult = 1
	}
	return (float64(mult)*f.ExactMass() + a.MassShift) / math.Abs(float64(a.Charge)), nil
}

// AdductDatabase stores adduct definitions by name
type AdductDatabase struct {
	adducts map[string]Adduct
}

// NewAdductDatabase creates an empty adduct database
func NewAdductDatabase() *AdductDatabase {
	return &AdductDatabase{
		adducts: make(map[string]Adduct),
	}
}

// LoadFromCSV loads adducts from a CSV file (format: name,massshift,charge[,multiplier])
func (db *AdductDatabase) LoadFromCSV(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	// Skip header line
	scanner.Scan()

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			return fmt.Errorf("line %d: invalid format, expected at least 3 comma-separated fields", lineNum)
		}

		name := strings.TrimSpace(parts[0])
		massStr := strings.TrimSpace(parts[1])
		chargeStr := strings.TrimSpace(parts[2])

		shift, err := strconv.ParseFloat(massStr, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid mass shift '%s': %w", lineNum, massStr, err)
		}
		charge, err := strconv.Atoi(chargeStr)
		if err != nil || charge == 0 {
			return fmt.Errorf("line %d: invalid charge '%s'", lineNum, chargeStr)
		}

		mult := 1
		if len(parts) > 3 && strings.TrimSpace(parts[3]) != "" {
			mult, err = strconv.Atoi(strings.TrimSpace(parts[3]))
			if err != nil || mult <= 0 {
				return fmt.Errorf("line %d: invalid multiplier '%s'", lineNum, parts[3])
			}
		}

		db.Add(Adduct{Name: name, MassShift: shift, Charge: charge, Multiplier: mult})
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading CSV: %w", err)
	}

	return nil
}

// Get returns the adduct with the given name
func (db *AdductDatabase) Get(name string) (Adduct, bool) {
	a, ok := db.adducts[name]
	return a, ok
}

// Add adds or updates an adduct
func (db *AdductDatabase) Add(a Adduct) {
	if a.Multiplier <= 0 {
		a.Multiplier = 1
	}
	db.adducts[a.Name] = a
}

// Names returns the adduct names in sorted order
func (db *AdductDatabase) Names() []string {
	names := make([]string, 0, len(db.adducts))
	for name := range db.adducts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultAdductDatabase returns an AdductDatabase pre-loaded with common ESI adducts
func DefaultAdductDatabase() *AdductDatabase {
	db := NewAdductDatabase()

	// Positive mode
	db.Add(Adduct{Name: "[M]+", MassShift: -0.000549, Charge: 1})
	db.Add(Adduct{Name: "[M+H]+", MassShift: 1.007276, Charge: 1})
	db.Add(Adduct{Name: "[M+NH4]+", MassShift: 18.033823, Charge: 1})
	db.Add(Adduct{Name: "[M+Na]+", MassShift: 22.989218, Charge: 1})
	db.Add(Adduct{Name: "[M+K]+", MassShift: 38.963158, Charge: 1})
	db.Add(Adduct{Name: "[M+Li]+", MassShift: 7.015455, Charge: 1})
	db.Add(Adduct{Name: "[M+H-H2O]+", MassShift: -17.003289, Charge: 1})
	db.Add(Adduct{Name: "[M+2Na-H]+", MassShift: 44.971160, Charge: 1})
	db.Add(Adduct{Name: "[M+2H]2+", MassShift: 2.014552, Charge: 2})
	db.Add(Adduct{Name: "[2M+H]+", MassShift: 1.007276, Charge: 1, Multiplier: 2})
	db.Add(Adduct{Name: "[2M+Na]+", MassShift: 22.989218, Charge: 1, Multiplier: 2})

	// Negative mode
	db.Add(Adduct{Name: "[M]-", MassShift: 0.000549, Charge: -1})
	db.Add(Adduct{Name: "[M-H]-", MassShift: -1.007276, Charge: -1})
	db.Add(Adduct{Name: "[M+Cl]-", MassShift: 34.969402, Charge: -1})
	db.Add(Adduct{Name: "[M+HCOO]-", MassShift: 44.998201, Charge: -1})
	db.Add(Adduct{Name: "[M+CH3COO]-", MassShift: 59.013851, Charge: -1})
	db.Add(Adduct{Name: "[M-H2O-H]-", MassShift: -19.017841, Charge: -1})
	db.Add(Adduct{Name: "[M-2H]2-", MassShift: -2.014552, Charge: -2})
	db.Add(Adduct{Name: "[2M-H]-", MassShift: -1.007276, Charge: -1, Multiplier: 2})

	return db
}
