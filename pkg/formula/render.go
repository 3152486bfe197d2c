package formula

import (
	"strconv"
	"strings"

	"github.com/ChrisMcGann/chemtools/pkg/elements"
)

type style struct {
	count   func(int) string
	isotope func(massNumber int, sym string) string
	charge  func(string) string
}

var (
	plainStyle = style{
		count:   strconv.Itoa,
		isotope: func(a int, sym string) string { return "[" + strconv.Itoa(a) + sym + "]" },
		charge:  func(c string) string { return c },
	}
	unicodeStyle = style{
		count:   func(n int) string { return mapDigits(strconv.Itoa(n), subscripts) },
		isotope: func(a int, sym string) string { return mapDigits(strconv.Itoa(a), superscripts) + sym },
		charge:  func(c string) string { return mapDigits(c, superscripts) },
	}
	htmlStyle = style{
		count:   func(n int) string { return "<sub>" + strconv.Itoa(n) + "</sub>" },
		isotope: func(a int, sym string) string { return "<sup>" + strconv.Itoa(a) + "</sup>" + sym },
		charge:  func(c string) string { return "<sup>" + c + "</sup>" },
	}
	latexStyle = style{
		count:   func(n int) string { return "_{" + strconv.Itoa(n) + "}" },
		isotope: func(a int, sym string) string { return "^{" + strconv.Itoa(a) + "}" + sym },
		charge:  func(c string) string { return "^{" + c + "}" },
	}
)

var (
	subscripts   = map[rune]rune{'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄', '5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉'}
	superscripts = map[rune]rune{'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴', '5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '+': '⁺', '-': '⁻'}
)

func mapDigits(s string, table map[rune]rune) string {
	var sb strings.Builder
	for _, r := range s {
		if m, ok := table[r]; ok {
			sb.WriteRune(m)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (f *Formula) render(st style, chargeText string) string {
	var sb strings.Builder
	for _, k := range f.Keys() {
		sym, massNumber, _ := elements.SplitIsotope(k)
		if massNumber > 0 {
			sb.WriteString(st.isotope(massNumber, sym))
		} else {
			sb.WriteString(sym)
		}
		if n := f.composition[k]; n > 1 {
			sb.WriteString(st.count(n))
		}
	}
	if chargeText != "" {
		sb.WriteString(st.charge(chargeText))
	}
	return sb.String()
}

// Hill returns the formula in Hill notation, e.g. "C2H6O", "[13C]H4" or
// "HO4S-". The charge is appended as "+", "-", "+n" or "-n".
func (f *Formula) Hill() string {
	return f.render(plainStyle, signFirstCharge(f.charge))
}

func (f *Formula) String() string {
	return f.Hill()
}

// Unicode renders the Hill formula with subscript counts and superscript
// mass numbers and charge, e.g. "SO₄²⁻".
func (f *Formula) Unicode() string {
	return f.render(unicodeStyle, digitsFirstCharge(f.charge))
}

// HTML renders the Hill formula with sub and sup tags.
func (f *Formula) HTML() string {
	return f.render(htmlStyle, digitsFirstCharge(f.charge))
}

// LaTeX renders the Hill formula for math mode, e.g. "C_{6}H_{12}O_{6}".
func (f *Formula) LaTeX() string {
	return f.render(latexStyle, digitsFirstCharge(f.charge))
}

func signFirstCharge(charge int) string {
	switch {
	case charge == 0:
		return ""
	case charge == 1:
		return "+"
	case charge == -1:
		return "-"
	case charge > 0:
		return "+" + strconv.Itoa(charge)
	}
	return "-" + strconv.Itoa(-charge)
}

func digitsFirstCharge(charge int) string {
	switch {
	case charge == 0:
		return ""
	case charge == 1:
		return "+"
	case charge == -1:
		return "-"
	case charge > 0:
		return strconv.Itoa(charge) + "+"
	}
	return strconv.Itoa(-charge) + "-"
}
