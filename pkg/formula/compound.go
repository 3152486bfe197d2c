package formula

import "fmt"

// MolarMassUnit is the unit of Compound.MolarMass.
const MolarMassUnit = "g/mol"

// Compound is a named substance with its formula and free-form data.
// The rendered names default to the Hill formula in each markup.
type Compound struct {
	Name        string
	Formula     *Formula
	Data        map[string]any
	UnicodeName string
	HTMLName    string
	LaTeXName   string
}

// NewCompound creates a compound. When f is nil the name is parsed as the
// formula.
func NewCompound(name string, f *Formula) (*Compound, error) {
	if f == nil {
		parsed, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("compound %s: %w", name, err)
		}
		f = parsed
	}
	return &Compound{
		Name:        name,
		Formula:     f,
		Data:        make(map[string]any),
		UnicodeName: f.Unicode(),
		HTMLName:    f.HTML(),
		LaTeXName:   f.LaTeX(),
	}, nil
}

// Charge returns the charge of the formula.
func (c *Compound) Charge() int {
	return c.Formula.Charge()
}

// Mass returns the average mass of the formula.
func (c *Compound) Mass() float64 {
	return c.Formula.Mass()
}

// MolarMass returns the molar mass and its unit.
func (c *Compound) MolarMass() (float64, string) {
	return c.Formula.Mass(), MolarMassUnit
}

// Equal reports whether the compound has the given name.
func (c *Compound) Equal(name string) bool {
	return c.Name == name
}

func (c *Compound) String() string {
	return c.Name
}

// GoString renders the compound as "<Compound(name, formula)>".
func (c *Compound) GoString() string {
	return fmt.Sprintf("<Compound(%s, %s)>", c.Name, c.Formula)
}
