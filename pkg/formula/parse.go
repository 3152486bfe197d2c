package formula

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ChrisMcGann/chemtools/pkg/elements"
)

// ParseError describes why a formula string could not be parsed. Pos is the
// character offset of the problem in Formula.
type ParseError struct {
	Formula string
	Pos     int
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid formula %q at position %d: %s", e.Formula, e.Pos, e.Msg)
}

var (
	phaseSuffix   = regexp.MustCompile(`\((s|l|g|aq)\)$`)
	braceCharge   = regexp.MustCompile(`\{(?:(\d*)([+-])|([+-])(\d*))\}$`)
	sepCharge     = regexp.MustCompile(`[\^/](?:(\d*)([+-])|([+-])(\d*))$`)
	signDigits    = regexp.MustCompile(`([+-])(\d+)$`)
	repeatedSigns = regexp.MustCompile(`(\++|-+)$`)
	// [Fe(CN)6]3-: digits and sign after the bracket enclosing a complex.
	complexCharge = regexp.MustCompile(`^\[\D.*\](\d+)([+-])$`)
)

// maxCount bounds every atom count so composition arithmetic cannot overflow.
const maxCount = math.MaxInt32

// addCount returns a + b, or false when the sum exceeds maxCount.
func addCount(a, b int) (int, bool) {
	if b > maxCount-a {
		return 0, false
	}
	return a + b, true
}

// mulCount returns a * b, or false when the product exceeds maxCount.
func mulCount(a, b int) (int, bool) {
	if a != 0 && b > maxCount/a {
		return 0, false
	}
	return a * b, true
}

var closers = map[rune]rune{'(': ')', '[': ']', '{': '}'}

// Parse parses a molecular formula such as "C6H12O6", "CuSO4.5H2O",
// "[13C]H4", "(CH3)3C+" or "SO4^2-".
func Parse(s string) (*Formula, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return nil, &ParseError{Formula: s, Pos: 0, Msg: "empty formula"}
	}

	body := stripPhase(src)
	body, charge, err := splitCharge(body)
	if err != nil {
		return nil, &ParseError{Formula: src, Pos: len([]rune(body)), Msg: err.Error()}
	}
	body = stripPhase(body)
	if body == "" {
		return nil, &ParseError{Formula: src, Pos: 0, Msg: "formula has no atoms"}
	}

	f := &Formula{composition: make(map[string]int), charge: charge}
	p := &parser{src: src, runes: []rune(body)}
	for {
		part, err := p.parsePart()
		if err != nil {
			return nil, err
		}
		for k, n := range part {
			sum, ok := addCount(f.composition[k], n)
			if !ok {
				return nil, p.errorf("count too large")
			}
			f.composition[k] = sum
		}
		if p.pos >= len(p.runes) {
			break
		}
		if !isSeparator(p.runes[p.pos]) {
			return nil, p.errorf("unexpected character %q", p.runes[p.pos])
		}
		p.pos++
	}
	return f, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Formula {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func isSeparator(r rune) bool {
	return r == '.' || r == '·' || r == '*'
}

func stripPhase(s string) string {
	return strings.TrimSpace(phaseSuffix.ReplaceAllString(s, ""))
}

// splitCharge removes a trailing charge from s.
func splitCharge(s string) (string, int, error) {
	if m := complexCharge.FindStringSubmatchIndex(s); m != nil {
		charge, err := chargeValue(s[m[4]:m[5]], s[m[2]:m[3]])
		return s[:m[2]], charge, err
	}
	for _, re := range []*regexp.Regexp{braceCharge, sepCharge} {
		if m := re.FindStringSubmatchIndex(s); m != nil {
			sub := re.FindStringSubmatch(s)
			digits, sign := sub[1], sub[2]
			if sign == "" {
				sign, digits = sub[3], sub[4]
			}
			charge, err := chargeValue(sign, digits)
			return s[:m[0]], charge, err
		}
	}
	if m := signDigits.FindStringSubmatchIndex(s); m != nil {
		sub := signDigits.FindStringSubmatch(s)
		charge, err := chargeValue(sub[1], sub[2])
		return s[:m[0]], charge, err
	}
	if m := repeatedSigns.FindStringSubmatchIndex(s); m != nil {
		run := s[m[2]:m[3]]
		charge := len(run)
		if run[0] == '-' {
			charge = -charge
		}
		return s[:m[0]], charge, nil
	}
	return s, 0, nil
}

func chargeValue(sign, digits string) (int, error) {
	n := 1
	if digits != "" {
		v, err := strconv.Atoi(digits)
		if err != nil {
			return 0, fmt.Errorf("invalid charge %q", digits)
		}
		if v == 0 {
			return 0, fmt.Errorf("charge magnitude must not be zero")
		}
		n = v
	}
	if sign == "-" {
		n = -n
	}
	return n, nil
}

type parser struct {
	src   string
	runes []rune
	pos   int
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Formula: p.src, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	return p.runes[p.pos], true
}

// parsePart parses one hydrate part with its optional leading multiplier.
func (p *parser) parsePart() (map[string]int, error) {
	start := p.pos
	mult, ok, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	if ok && mult == 0 {
		p.pos = start
		return nil, p.errorf("multiplier must not be zero")
	}
	if !ok {
		mult = 1
	}

	comp, err := p.parseSequence(0)
	if err != nil {
		return nil, err
	}
	if len(comp) == 0 {
		return nil, p.errorf("expected element or group")
	}
	for k, n := range comp {
		scaled, ok := mulCount(n, mult)
		if !ok {
			p.pos = start
			return nil, p.errorf("count too large")
		}
		comp[k] = scaled
	}
	return comp, nil
}

// parseSequence parses atoms and groups until the closing bracket, a hydrate
// separator or the end of input. The closing bracket is not consumed.
func (p *parser) parseSequence(closing rune) (map[string]int, error) {
	comp := make(map[string]int)
	for {
		r, ok := p.peek()
		if !ok {
			if closing != 0 {
				return nil, p.errorf("missing closing %q", closing)
			}
			return comp, nil
		}

		switch {
		case r == closing:
			return comp, nil
		case closing == 0 && isSeparator(r):
			return comp, nil
		case r == '[' && p.isIsotopePrefix():
			key, err := p.parseIsotopePrefix()
			if err != nil {
				return nil, err
			}
			if err := p.addCounted(comp, map[string]int{key: 1}); err != nil {
				return nil, err
			}
		case r == '(' || r == '[' || r == '{':
			open := p.pos
			p.pos++
			inner, err := p.parseSequence(closers[r])
			if err != nil {
				return nil, err
			}
			if len(inner) == 0 {
				p.pos = open
				return nil, p.errorf("empty group")
			}
			p.pos++
			if err := p.addCounted(comp, inner); err != nil {
				return nil, err
			}
		case r == ')' || r == ']' || r == '}':
			return nil, p.errorf("unbalanced %q", r)
		case unicode.IsUpper(r):
			key, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			if err := p.addCounted(comp, map[string]int{key: 1}); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf("unexpected character %q", r)
		}
	}
}

// addCounted reads an optional count and adds the scaled group to comp.
func (p *parser) addCounted(comp, group map[string]int) error {
	start := p.pos
	n, ok, err := p.parseNumber()
	if err != nil {
		return err
	}
	if !ok {
		n = 1
	}
	if n == 0 {
		p.pos = start
		return p.errorf("count must not be zero")
	}
	for k, v := range group {
		scaled, ok := mulCount(v, n)
		if ok {
			scaled, ok = addCount(comp[k], scaled)
		}
		if !ok {
			p.pos = start
			return p.errorf("count too large")
		}
		comp[k] = scaled
	}
	return nil
}

func (p *parser) parseNumber() (int, bool, error) {
	start := p.pos
	for p.pos < len(p.runes) && p.runes[p.pos] >= '0' && p.runes[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, false, nil
	}
	n, err := strconv.Atoi(string(p.runes[start:p.pos]))
	if err != nil || n > maxCount {
		p.pos = start
		return 0, false, p.errorf("count too large")
	}
	return n, true, nil
}

func (p *parser) readSymbol() string {
	start := p.pos
	p.pos++
	for p.pos < len(p.runes) && unicode.IsLower(p.runes[p.pos]) {
		p.pos++
	}
	return string(p.runes[start:p.pos])
}

// parseElement parses a symbol with an optional "[A]" isotope suffix.
func (p *parser) parseElement() (string, error) {
	start := p.pos
	sym := p.readSymbol()
	e, ok := elements.Table.Symbol(sym)
	if !ok {
		p.pos = start
		return "", p.errorf("unknown element %q", sym)
	}

	if !p.isIsotopeSuffix() {
		return e.AsIsotope(), nil
	}
	if e.IsHeavyHydrogen() {
		p.pos = start
		return "", p.errorf("isotope of %s is not allowed", sym)
	}
	p.pos++
	massNumber, _, err := p.parseNumber()
	if err != nil {
		return "", err
	}
	p.pos++
	if _, ok := e.IsotopeFor(massNumber); !ok {
		p.pos = start
		return "", p.errorf("unknown isotope %s[%d]", sym, massNumber)
	}
	return elements.IsotopeKey(sym, massNumber), nil
}

// parseIsotopePrefix parses the "[13C]" form.
func (p *parser) parseIsotopePrefix() (string, error) {
	start := p.pos
	p.pos++
	massNumber, _, err := p.parseNumber()
	if err != nil {
		return "", err
	}
	r, ok := p.peek()
	if !ok || !unicode.IsUpper(r) {
		return "", p.errorf("expected element symbol in isotope")
	}
	sym := p.readSymbol()
	if r, ok := p.peek(); !ok || r != ']' {
		return "", p.errorf("missing closing ']' in isotope")
	}
	p.pos++

	e, ok := elements.Table.Symbol(sym)
	if !ok || e.IsHeavyHydrogen() {
		p.pos = start
		return "", p.errorf("unknown element %q", sym)
	}
	if _, ok := e.IsotopeFor(massNumber); !ok {
		p.pos = start
		return "", p.errorf("unknown isotope [%d%s]", massNumber, sym)
	}
	return elements.IsotopeKey(sym, massNumber), nil
}

// isIsotopePrefix reports whether the input continues with "[digits".
func (p *parser) isIsotopePrefix() bool {
	return p.pos+1 < len(p.runes) && p.runes[p.pos] == '[' && unicode.IsDigit(p.runes[p.pos+1])
}

// isIsotopeSuffix reports whether the input continues with "[digits]".
func (p *parser) isIsotopeSuffix() bool {
	if p.pos >= len(p.runes) || p.runes[p.pos] != '[' {
		return false
	}
	i := p.pos + 1
	for i < len(p.runes) && unicode.IsDigit(p.runes[i]) {
		i++
	}
	return i > p.pos+1 && i < len(p.runes) && p.runes[i] == ']'
}
