// Package formula parses molecular formulae and derives masses, Hill
// notation, elemental composition and isotope patterns from them.
package formula

import (
	"fmt"
	"sort"

	"github.com/ChrisMcGann/chemtools/pkg/elements"
)

// Formula is an elemental composition with an ionic charge. Composition keys
// are element symbols ("C") or isotope keys ("C[13]").
type Formula struct {
	composition map[string]int
	charge      int
}

// New creates a formula from a composition. Keys must be element symbols or
// isotope keys in either "C[13]" or "[13C]" form; D and T are normalised to
// hydrogen isotopes. Zero counts are dropped and negative counts rejected.
func New(composition map[string]int, charge int) (*Formula, error) {
	f := &Formula{composition: make(map[string]int, len(composition)), charge: charge}
	for key, n := range composition {
		if n < 0 {
			return nil, fmt.Errorf("negative count %d for %s", n, key)
		}
		if n == 0 {
			continue
		}
		canonical, err := canonicalKey(key)
		if err != nil {
			return nil, err
		}
		f.composition[canonical] += n
	}
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(composition map[string]int, charge int) *Formula {
	f, err := New(composition, charge)
	if err != nil {
		panic(err)
	}
	return f
}

func canonicalKey(key string) (string, error) {
	sym, massNumber, err := elements.SplitIsotope(key)
	if err != nil {
		return "", err
	}
	e, ok := elements.Table.Symbol(sym)
	if !ok {
		return "", fmt.Errorf("unknown element %q", sym)
	}
	if e.IsHeavyHydrogen() {
		if massNumber != 0 {
			return "", fmt.Errorf("isotope of %s is not allowed", sym)
		}
		return e.AsIsotope(), nil
	}
	if massNumber == 0 {
		return sym, nil
	}
	if _, ok := e.IsotopeFor(massNumber); !ok {
		return "", fmt.Errorf("unknown isotope %s-%d", sym, massNumber)
	}
	return elements.IsotopeKey(sym, massNumber), nil
}

// Composition returns a copy of the composition.
func (f *Formula) Composition() map[string]int {
	out := make(map[string]int, len(f.composition))
	for k, v := range f.composition {
		out[k] = v
	}
	return out
}

// Count returns the number of atoms for a composition key.
func (f *Formula) Count(key string) int {
	return f.composition[key]
}

// Charge returns the ionic charge.
func (f *Formula) Charge() int {
	return f.charge
}

// Atoms returns the total number of atoms.
func (f *Formula) Atoms() int {
	total := 0
	for _, n := range f.composition {
		total += n
	}
	return total
}

// Empty reports whether the formula has no atoms.
func (f *Formula) Empty() bool {
	return len(f.composition) == 0
}

// Keys returns the composition keys in Hill order.
func (f *Formula) Keys() []string {
	keys := make([]string, 0, len(f.composition))
	for k := range f.composition {
		keys = append(keys, k)
	}
	sortHill(keys)
	return keys
}

// Add returns the sum of two formulae. Charges are added.
func (f *Formula) Add(other *Formula) *Formula {
	out := &Formula{composition: f.Composition(), charge: f.charge + other.charge}
	for k, n := range other.composition {
		out.composition[k] += n
	}
	return out
}

// Sub returns f minus other. It fails when other contains more atoms of an
// element than f.
func (f *Formula) Sub(other *Formula) (*Formula, error) {
	out := &Formula{composition: f.Composition(), charge: f.charge - other.charge}
	for k, n := range other.composition {
		left := out.composition[k] - n
		if left < 0 {
			return nil, fmt.Errorf("cannot subtract %d %s from %d", n, k, out.composition[k])
		}
		if left == 0 {
			delete(out.composition, k)
			continue
		}
		out.composition[k] = left
	}
	return out, nil
}

// Scale multiplies every count and the charge by n, which must be positive.
func (f *Formula) Scale(n int) (*Formula, error) {
	if n <= 0 {
		return nil, fmt.Errorf("scale factor must be positive, got %d", n)
	}
	out := &Formula{composition: make(map[string]int, len(f.composition)), charge: f.charge * n}
	for k, v := range f.composition {
		out.composition[k] = v * n
	}
	return out, nil
}

// Equal reports whether both formulae have the same composition and charge.
func (f *Formula) Equal(other *Formula) bool {
	if other == nil || f.charge != other.charge || len(f.composition) != len(other.composition) {
		return false
	}
	for k, v := range f.composition {
		if other.composition[k] != v {
			return false
		}
	}
	return true
}

// Empirical returns the formula with all counts divided by their greatest
// common divisor. A non-zero charge takes part in the divisor.
func (f *Formula) Empirical() *Formula {
	d := 0
	for _, n := range f.composition {
		d = gcd(d, n)
	}
	if f.charge != 0 {
		d = gcd(d, abs(f.charge))
	}
	if d <= 1 {
		return &Formula{composition: f.Composition(), charge: f.charge}
	}
	out := &Formula{composition: make(map[string]int, len(f.composition)), charge: f.charge / d}
	for k, v := range f.composition {
		out.composition[k] = v / d
	}
	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// sortHill orders composition keys: carbon first, then hydrogen, then the
// remaining symbols alphabetically. Without carbon every symbol is sorted
// alphabetically. Isotopes follow the plain element by mass number.
func sortHill(keys []string) {
	hasCarbon := false
	for _, k := range keys {
		if sym, _, _ := elements.SplitIsotope(k); sym == "C" {
			hasCarbon = true
			break
		}
	}
	rank := func(sym string) int {
		if !hasCarbon {
			return 2
		}
		switch sym {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(keys, func(i, j int) bool {
		si, ai, _ := elements.SplitIsotope(keys[i])
		sj, aj, _ := elements.SplitIsotope(keys[j])
		ri, rj := rank(si), rank(sj)
		if ri != rj {
			return ri < rj
		}
		if si != sj {
			return si < sj
		}
		return ai < aj
	})
}
