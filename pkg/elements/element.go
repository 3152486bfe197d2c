// Package elements provides the periodic table: elements, their isotopes and
// the lookups used by the formula parser.
package elements

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ElectronMass is the rest mass of the electron in unified atomic mass units.
const ElectronMass = 0.000548579909

// Chemical series indexes used by Element.Series.
const (
	Nonmetals = iota + 1
	NobleGases
	AlkaliMetals
	AlkalineEarthMetals
	Metalloids
	Halogens
	PoorMetals
	TransitionMetals
	Lanthanides
	Actinides
)

// SeriesNames maps series indexes to their names.
var SeriesNames = map[int]string{
	Nonmetals:           "Nonmetals",
	NobleGases:          "Noble gases",
	AlkaliMetals:        "Alkali metals",
	AlkalineEarthMetals: "Alkaline earth metals",
	Metalloids:          "Metalloids",
	Halogens:            "Halogens",
	PoorMetals:          "Poor metals",
	TransitionMetals:    "Transition metals",
	Lanthanides:         "Lanthanides",
	Actinides:           "Actinides",
}

// Isotope holds the mass number, relative atomic mass and natural abundance
// of one isotope.
type Isotope struct {
	Mass       float64 `json:"mass"`
	Abundance  float64 `json:"abundance"`
	MassNumber int     `json:"massnumber"`
}

func (i Isotope) String() string {
	return fmt.Sprintf("%d, %.4f, %.6f%%", i.MassNumber, i.Mass, i.Abundance*100)
}

// Subshell identifies an electron subshell such as 3d.
type Subshell struct {
	Shell int
	Type  byte
}

func (s Subshell) String() string {
	return fmt.Sprintf("%d%c", s.Shell, s.Type)
}

// Element is a chemical element with its physical data and isotopic
// composition. Radii are in Angstrom, Mass is the relative atomic mass.
type Element struct {
	Number    int             `json:"number"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Group     int             `json:"group"`
	Period    int             `json:"period"`
	Block     string          `json:"block"`
	Series    int             `json:"series"`
	Mass      float64         `json:"mass"`
	Eleneg    float64         `json:"eleneg"`
	Covrad    float64         `json:"covrad"`
	Vdwrad    float64         `json:"vdwrad"`
	Eleconfig string          `json:"eleconfig"`
	Isotopes  map[int]Isotope `json:"isotopes"`
}

// Protons returns the number of protons, which is the atomic number.
func (e *Element) Protons() int {
	return e.Number
}

// Electrons returns the number of electrons of the neutral atom.
func (e *Element) Electrons() int {
	return e.Number
}

// NominalMass returns the mass number of the most abundant natural isotope.
func (e *Element) NominalMass() int {
	nominal := 0
	maxAbundance := -1.0
	for _, massNumber := range e.massNumbers() {
		iso := e.Isotopes[massNumber]
		if iso.Abundance > maxAbundance {
			maxAbundance = iso.Abundance
			nominal = massNumber
		}
	}
	return nominal
}

// Neutrons returns the number of neutrons in the most abundant isotope.
func (e *Element) Neutrons() int {
	return e.NominalMass() - e.Number
}

// ExactMass returns the relative atomic mass calculated from the isotopic
// composition.
func (e *Element) ExactMass() float64 {
	mass := 0.0
	for _, iso := range e.Isotopes {
		mass += iso.Mass * iso.Abundance
	}
	return mass
}

// MonoisotopicMass returns the mass of the most abundant isotope.
func (e *Element) MonoisotopicMass() float64 {
	iso, ok := e.Isotopes[e.NominalMass()]
	if !ok {
		return e.Mass
	}
	return iso.Mass
}

// IsotopeFor returns the isotope with the given mass number.
func (e *Element) IsotopeFor(massNumber int) (Isotope, bool) {
	iso, ok := e.Isotopes[massNumber]
	return iso, ok
}

// SortedIsotopes returns the isotopes ordered by mass number.
func (e *Element) SortedIsotopes() []Isotope {
	isotopes := make([]Isotope, 0, len(e.Isotopes))
	for _, massNumber := range e.massNumbers() {
		isotopes = append(isotopes, e.Isotopes[massNumber])
	}
	return isotopes
}

// IsHeavyHydrogen reports whether the element is the Deuterium or Tritium
// pseudo-element.
func (e *Element) IsHeavyHydrogen() bool {
	return e.Symbol == "D" || e.Symbol == "T"
}

// AsIsotope returns the isotope key of the element, "H[2]" for Deuterium and
// "H[3]" for Tritium. Other elements return their symbol.
func (e *Element) AsIsotope() string {
	if e.IsHeavyHydrogen() {
		return fmt.Sprintf("H[%d]", e.NominalMass())
	}
	return e.Symbol
}

// EleconfigMap returns the ground state electron configuration as a mapping
// of subshell to electron count. Noble gas cores are expanded.
func (e *Element) EleconfigMap() (map[Subshell]int, error) {
	config := make(map[Subshell]int)
	fields := strings.Fields(e.Eleconfig)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "[") {
		base, err := Lookup(strings.Trim(fields[0], "[]"))
		if err != nil {
			return nil, fmt.Errorf("%s: invalid core %s: %w", e.Symbol, fields[0], err)
		}
		core, err := base.EleconfigMap()
		if err != nil {
			return nil, err
		}
		for k, v := range core {
			config[k] = v
		}
		fields = fields[1:]
	}

	for _, field := range fields {
		if len(field) < 2 || field[0] < '1' || field[0] > '9' {
			return nil, fmt.Errorf("%s: invalid subshell %q", e.Symbol, field)
		}
		count := 1
		if len(field) > 2 {
			n, err := strconv.Atoi(field[2:])
			if err != nil {
				return nil, fmt.Errorf("%s: invalid electron count in %q: %w", e.Symbol, field, err)
			}
			count = n
		}
		config[Subshell{Shell: int(field[0] - '0'), Type: field[1]}] = count
	}
	return config, nil
}

// Eleshells returns the number of electrons per shell, skipping empty shells.
func (e *Element) Eleshells() ([]int, error) {
	config, err := e.EleconfigMap()
	if err != nil {
		return nil, err
	}
	shells := make([]int, 7)
	for sub, n := range config {
		if sub.Shell < 1 || sub.Shell > len(shells) {
			return nil, fmt.Errorf("%s: shell %d out of range", e.Symbol, sub.Shell)
		}
		shells[sub.Shell-1] += n
	}

	var ret []int
	for _, n := range shells {
		if n > 0 {
			ret = append(ret, n)
		}
	}
	return ret, nil
}

// ValidationError reports inconsistent element data.
type ValidationError struct {
	Symbol  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("element %s: %s", e.Symbol, e.Message)
}

// Validate checks the consistency of the element data.
func (e *Element) Validate() error {
	var errs []string

	if e.Period < 1 || e.Period > 7 {
		errs = append(errs, fmt.Sprintf("period %d out of range", e.Period))
	}
	if e.Group < 1 || e.Group > 18 {
		errs = append(errs, fmt.Sprintf("group %d out of range", e.Group))
	}
	if !strings.Contains("spdf", e.Block) || len(e.Block) != 1 {
		errs = append(errs, fmt.Sprintf("unknown block %q", e.Block))
	}
	if _, ok := SeriesNames[e.Series]; !ok {
		errs = append(errs, fmt.Sprintf("unknown series %d", e.Series))
	}

	shells, err := e.Eleshells()
	if err != nil {
		errs = append(errs, err.Error())
	} else {
		electrons := 0
		for _, n := range shells {
			electrons += n
		}
		if electrons != e.Protons() {
			errs = append(errs, fmt.Sprintf("number of protons (%d) must equal electrons (%d)", e.Protons(), electrons))
		}
	}

	mass := 0.0
	frac := 0.0
	for _, iso := range e.Isotopes {
		mass += iso.Abundance * iso.Mass
		frac += iso.Abundance
	}
	if math.Abs(mass-e.Mass) > 0.03 {
		errs = append(errs, fmt.Sprintf("average of isotope masses (%.4f) != mass (%.4f)", mass, e.Mass))
	}
	if math.Abs(frac-1.0) > 1e-9 {
		errs = append(errs, "sum of isotope abundances != 1.0")
	}

	if len(errs) > 0 {
		return &ValidationError{Symbol: e.Symbol, Message: strings.Join(errs, "; ")}
	}
	return nil
}

func (e *Element) String() string {
	return e.Name
}

func (e *Element) massNumbers() []int {
	keys := make([]int, 0, len(e.Isotopes))
	for k := range e.Isotopes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
