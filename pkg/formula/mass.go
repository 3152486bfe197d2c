package formula

import (
	"math"
	"sort"

	"github.com/ChrisMcGann/chemtools/pkg/elements"
)

// CompositionItem is one row of an elemental composition table.
type CompositionItem struct {
	Key      string  `json:"key"`
	Count    int     `json:"count"`
	Mass     float64 `json:"mass"`
	Fraction float64 `json:"fraction"`
}

// IsotopePeak is one nominal mass of an isotope pattern.
type IsotopePeak struct {
	MassNumber int     `json:"massnumber"`
	Mass       float64 `json:"mass"`
	Abundance  float64 `json:"abundance"`
}

// atom resolves a composition key into its element and, for isotope keys,
// the labelled isotope.
func atom(key string) (*elements.Element, *elements.Isotope) {
	sym, massNumber, err := elements.SplitIsotope(key)
	if err != nil {
		return nil, nil
	}
	e, ok := elements.Table.Symbol(sym)
	if !ok {
		return nil, nil
	}
	if massNumber == 0 {
		return e, nil
	}
	iso, ok := e.IsotopeFor(massNumber)
	if !ok {
		return e, nil
	}
	return e, &iso
}

func averageMass(key string) float64 {
	e, iso := atom(key)
	switch {
	case iso != nil:
		return iso.Mass
	case e != nil:
		return e.Mass
	}
	return 0
}

func monoisotopicMass(key string) float64 {
	e, iso := atom(key)
	switch {
	case iso != nil:
		return iso.Mass
	case e != nil:
		return e.MonoisotopicMass()
	}
	return 0
}

// Mass returns the average molar mass in g/mol. Electrons are removed for
// cations and added for anions.
func (f *Formula) Mass() float64 {
	mass := 0.0
	for k, n := range f.composition {
		mass += float64(n) * averageMass(k)
	}
	return mass - float64(f.charge)*elements.ElectronMass
}

// ExactMass returns the monoisotopic mass: the most abundant isotope of each
// element, or the labelled isotope, corrected for the charge.
func (f *Formula) ExactMass() float64 {
	mass := 0.0
	for k, n := range f.composition {
		mass += float64(n) * monoisotopicMass(k)
	}
	return mass - float64(f.charge)*elements.ElectronMass
}

// NominalMass returns the sum of the mass numbers of the monoisotopic
// composition.
func (f *Formula) NominalMass() int {
	total := 0
	for k, n := range f.composition {
		e, iso := atom(k)
		switch {
		case iso != nil:
			total += n * iso.MassNumber
		case e != nil:
			total += n * e.NominalMass()
		}
	}
	return total
}

// MZ returns the mass to charge ratio. Neutral formulae return ExactMass.
func (f *Formula) MZ() float64 {
	if f.charge == 0 {
		return f.ExactMass()
	}
	return f.ExactMass() / math.Abs(float64(f.charge))
}

// CompositionTable returns the elemental composition in Hill order with the
// mass fraction of every element. Isotopes are listed separately.
func (f *Formula) CompositionTable() []CompositionItem {
	keys := f.Keys()
	items := make([]CompositionItem, 0, len(keys))
	total := 0.0
	for _, k := range keys {
		n := f.composition[k]
		m := float64(n) * averageMass(k)
		total += m
		items = append(items, CompositionItem{Key: k, Count: n, Mass: m})
	}
	if total > 0 {
		for i := range items {
			items[i].Fraction = items[i].Mass / total
		}
	}
	return items
}

// pruneAbundance drops intermediate peaks that cannot contribute to the
// result.
const pruneAbundance = 1e-20

type peak struct {
	mass      float64
	abundance float64
}

// IsotopeDistribution returns the isotope pattern of the formula grouped by
// nominal mass. Abundances are normalised to sum to one and peaks below
// minAbundance are dropped. Peak masses are abundance-weighted averages of
// the contributing isotopologues.
func (f *Formula) IsotopeDistribution(minAbundance float64) []IsotopePeak {
	dist := map[int]peak{0: {mass: 0, abundance: 1}}
	for _, k := range f.Keys() {
		pattern := keyPattern(k)
		for i := 0; i < f.composition[k]; i++ {
			dist = convolve(dist, pattern)
		}
	}

	total := 0.0
	for _, p := range dist {
		total += p.abundance
	}

	electrons := float64(f.charge) * elements.ElectronMass
	out := make([]IsotopePeak, 0, len(dist))
	for massNumber, p := range dist {
		if total == 0 {
			break
		}
		abundance := p.abundance / total
		if abundance < minAbundance {
			continue
		}
		out = append(out, IsotopePeak{
			MassNumber: massNumber,
			Mass:       p.mass - electrons,
			Abundance:  abundance,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MassNumber < out[j].MassNumber })
	return out
}

func keyPattern(key string) map[int]peak {
	e, iso := atom(key)
	if iso != nil {
		return map[int]peak{iso.MassNumber: {mass: iso.Mass, abundance: 1}}
	}
	pattern := make(map[int]peak)
	if e == nil {
		return pattern
	}
	for _, i := range e.SortedIsotopes() {
		if i.Abundance > 0 {
			pattern[i.MassNumber] = peak{mass: i.Mass, abundance: i.Abundance}
		}
	}
	return pattern
}

func convolve(a, b map[int]peak) map[int]peak {
	out := make(map[int]peak, len(a)+len(b))
	for na, pa := range a {
		for nb, pb := range b {
			ab := pa.abundance * pb.abundance
			if ab < pruneAbundance {
				continue
			}
			n := na + nb
			cur := out[n]
			w := cur.abundance + ab
			cur.mass = (cur.mass*cur.abundance + (pa.mass+pb.mass)*ab) / w
			cur.abundance = w
			out[n] = cur
		}
	}
	return out
}
