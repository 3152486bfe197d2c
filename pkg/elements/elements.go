package elements

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Elements is an ordered periodic table with lookup by number, symbol and
// name.
type Elements struct {
	list     []*Element
	bySymbol map[string]*Element
	byName   map[string]*Element
	byLower  map[string]*Element
	extra    map[string]*Element
}

// NewElements builds a table from elements ordered by atomic number.
// Heavy hydrogen pseudo-elements are accepted as extras and are reachable
// through Lookup but do not take part in the ordering.
func NewElements(list []*Element, extras ...*Element) (*Elements, error) {
	t := &Elements{
		bySymbol: make(map[string]*Element),
		byName:   make(map[string]*Element),
		byLower:  make(map[string]*Element),
		extra:    make(map[string]*Element),
	}
	for i, e := range list {
		if e.Number != i+1 {
			return nil, fmt.Errorf("element %s has number %d, expected %d", e.Symbol, e.Number, i+1)
		}
		if _, ok := t.bySymbol[e.Symbol]; ok {
			return nil, fmt.Errorf("duplicate element symbol %s", e.Symbol)
		}
		t.list = append(t.list, e)
		t.bySymbol[e.Symbol] = e
		t.byName[e.Name] = e
		t.byLower[strings.ToLower(e.Name)] = e
	}
	for _, e := range extras {
		t.extra[e.Symbol] = e
		t.byName[e.Name] = e
		t.byLower[strings.ToLower(e.Name)] = e
	}
	return t, nil
}

// Len returns the number of ordered elements.
func (t *Elements) Len() int {
	return len(t.list)
}

// All returns the ordered elements.
func (t *Elements) All() []*Element {
	out := make([]*Element, len(t.list))
	copy(out, t.list)
	return out
}

// ByNumber returns the element with atomic number n.
func (t *Elements) ByNumber(n int) (*Element, error) {
	if n < 1 || n > len(t.list) {
		return nil, fmt.Errorf("no element with atomic number %d", n)
	}
	return t.list[n-1], nil
}

// Slice returns the elements with atomic numbers in [start, stop).
func (t *Elements) Slice(start, stop int) []*Element {
	if start < 1 {
		start = 1
	}
	if stop > len(t.list)+1 {
		stop = len(t.list) + 1
	}
	if start >= stop {
		return nil
	}
	out := make([]*Element, stop-start)
	copy(out, t.list[start-1:stop-1])
	return out
}

// Symbol returns the element for a symbol, including D and T.
func (t *Elements) Symbol(sym string) (*Element, bool) {
	if e, ok := t.bySymbol[sym]; ok {
		return e, true
	}
	e, ok := t.extra[sym]
	return e, ok
}

// Lookup finds an element by symbol, name, lowercase name or isotope key
// ("C[13]" or "[13C]"). Isotope keys resolve to the element itself and fail
// when the isotope is unknown.
func (t *Elements) Lookup(key string) (*Element, error) {
	if e, ok := t.Symbol(key); ok {
		return e, nil
	}
	if e, ok := t.byName[key]; ok {
		return e, nil
	}
	if e, ok := t.byLower[strings.ToLower(key)]; ok {
		return e, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		return t.ByNumber(n)
	}
	if strings.Contains(key, "[") {
		sym, massNumber, err := SplitIsotope(key)
		if err != nil {
			return nil, err
		}
		e, ok := t.Symbol(sym)
		if !ok {
			return nil, fmt.Errorf("unknown element %q", sym)
		}
		if _, ok := e.IsotopeFor(massNumber); !ok {
			return nil, fmt.Errorf("unknown isotope %s-%d", sym, massNumber)
		}
		return e, nil
	}
	return nil, fmt.Errorf("unknown element %q", key)
}

// Symbols returns the element symbols in order.
func (t *Elements) Symbols() []string {
	out := make([]string, len(t.list))
	for i, e := range t.list {
		out[i] = e.Symbol
	}
	return out
}

// Names returns the element names in order.
func (t *Elements) Names() []string {
	out := make([]string, len(t.list))
	for i, e := range t.list {
		out[i] = e.Name
	}
	return out
}

// LowerNames returns the lowercase element names in order.
func (t *Elements) LowerNames() []string {
	out := make([]string, len(t.list))
	for i, e := range t.list {
		out[i] = strings.ToLower(e.Name)
	}
	return out
}

// Validate checks every element in the table, including the extras.
func (t *Elements) Validate() error {
	var errs []string
	for _, e := range t.list {
		if err := e.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	for _, e := range t.extra {
		if err := e.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid element table: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (t *Elements) String() string {
	var sb strings.Builder
	for i, e := range t.list {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Symbol)
	}
	return fmt.Sprintf("Elements(%s)", sb.String())
}

// IsotopeKey returns the canonical composition key "Sym[A]".
func IsotopeKey(symbol string, massNumber int) string {
	return fmt.Sprintf("%s[%d]", symbol, massNumber)
}

// SplitIsotope splits an isotope key in either "C[13]" or "[13C]" form into
// its element symbol and mass number. A bare symbol returns mass number 0.
func SplitIsotope(key string) (string, int, error) {
	if key == "" {
		return "", 0, fmt.Errorf("empty isotope key")
	}
	if !strings.Contains(key, "[") {
		if !isSymbol(key) {
			return "", 0, fmt.Errorf("invalid element symbol %q", key)
		}
		return key, 0, nil
	}

	if strings.HasPrefix(key, "[") {
		end := strings.IndexByte(key, ']')
		if end < 0 {
			return "", 0, fmt.Errorf("unbalanced brackets in isotope %q", key)
		}
		inner := key[1:end]
		rest := key[end+1:]
		i := 0
		for i < len(inner) && inner[i] >= '0' && inner[i] <= '9' {
			i++
		}
		if i == 0 {
			return "", 0, fmt.Errorf("missing mass number in isotope %q", key)
		}
		massNumber, _ := strconv.Atoi(inner[:i])
		sym := inner[i:]
		if sym == "" {
			sym = rest
		} else if rest != "" {
			return "", 0, fmt.Errorf("trailing characters in isotope %q", key)
		}
		if !isSymbol(sym) {
			return "", 0, fmt.Errorf("invalid element symbol in isotope %q", key)
		}
		return sym, massNumber, nil
	}

	open := strings.IndexByte(key, '[')
	if !strings.HasSuffix(key, "]") {
		return "", 0, fmt.Errorf("unbalanced brackets in isotope %q", key)
	}
	sym := key[:open]
	massNumber, err := strconv.Atoi(key[open+1 : len(key)-1])
	if err != nil || massNumber <= 0 {
		return "", 0, fmt.Errorf("invalid mass number in isotope %q", key)
	}
	if !isSymbol(sym) {
		return "", 0, fmt.Errorf("invalid element symbol in isotope %q", key)
	}
	return sym, massNumber, nil
}

func isSymbol(s string) bool {
	if s == "" || len(s) > 3 {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if i > 0 && !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
