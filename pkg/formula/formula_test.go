package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   map[string]int
		charge int
	}{
		{"water", "H2O", map[string]int{"H": 2, "O": 1}, 0},
		{"glucose", "C6H12O6", map[string]int{"C": 6, "H": 12, "O": 6}, 0},
		{"hydrate dot", "CuSO4.5H2O", map[string]int{"Cu": 1, "S": 1, "O": 9, "H": 10}, 0},
		{"hydrate middle dot", "CuSO4·5H2O", map[string]int{"Cu": 1, "S": 1, "O": 9, "H": 10}, 0},
		{"hydrate asterisk", "CaSO4*2H2O", map[string]int{"Ca": 1, "S": 1, "O": 6, "H": 4}, 0},
		{"leading multiplier", "2H2O", map[string]int{"H": 4, "O": 2}, 0},
		{"group", "(CH3)3COH", map[string]int{"C": 4, "H": 10, "O": 1}, 0},
		{"nested groups", "K4[Fe(CN)6]", map[string]int{"K": 4, "Fe": 1, "C": 6, "N": 6}, 0},
		{"brace group", "{CH2}2", map[string]int{"C": 2, "H": 4}, 0},
		{"prefix isotope", "[13C]H4", map[string]int{"C[13]": 1, "H": 4}, 0},
		{"suffix isotope", "C[13]H4", map[string]int{"C[13]": 1, "H": 4}, 0},
		{"mixed isotopes", "CH3[13C]H3", map[string]int{"C": 1, "C[13]": 1, "H": 6}, 0},
		{"deuterium", "D2O", map[string]int{"H[2]": 2, "O": 1}, 0},
		{"tritium", "CH3T", map[string]int{"C": 1, "H": 3, "H[3]": 1}, 0},
		{"phase", "NaCl(s)", map[string]int{"Na": 1, "Cl": 1}, 0},
		{"aqueous ion", "Na+(aq)", map[string]int{"Na": 1}, 1},
		{"single plus", "NH4+", map[string]int{"N": 1, "H": 4}, 1},
		{"single minus", "OH-", map[string]int{"O": 1, "H": 1}, -1},
		{"repeated signs", "PO4---", map[string]int{"P": 1, "O": 4}, -3},
		{"sign digits", "Fe+3", map[string]int{"Fe": 1}, 3},
		{"caret charge", "SO4^2-", map[string]int{"S": 1, "O": 4}, -2},
		{"slash charge", "Ca/2+", map[string]int{"Ca": 1}, 2},
		{"brace charge", "SO4{2-}", map[string]int{"S": 1, "O": 4}, -2},
		{"complex charge", "[Fe(CN)6]3-", map[string]int{"Fe": 1, "C": 6, "N": 6}, -3},
		{"complex cation", "[Cu(NH3)4]2+", map[string]int{"Cu": 1, "N": 4, "H": 12}, 2},
		{"largest count", "C2147483647", map[string]int{"C": 2147483647}, 0},
		{"whitespace", "  H2O  ", map[string]int{"H": 2, "O": 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Composition())
			assert.Equal(t, tt.charge, f.Charge())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"empty", "", 0},
		{"unknown element", "Xx", 0},
		{"unknown element later", "H2Qa", 2},
		{"unbalanced close", "H2O)", 3},
		{"missing close", "(H2O", 4},
		{"unknown isotope", "C[15]", 0},
		{"unknown prefix isotope", "[15C]", 0},
		{"zero multiplier", "CuSO4.0H2O", 6},
		{"trailing separator", "H2O.", 4},
		{"lowercase", "H2o", 2},
		{"zero count", "C0", 1},
		{"empty group", "()", 0},
		{"charge only", "+", 0},
		{"count too large", "C9223372036854775807H", 1},
		{"count beyond int", "C99999999999999999999", 1},
		{"group count too large", "(C4611686018427387904)2", 2},
		{"group product overflows", "(C65536)65536", 8},
		{"sum overflows", "C2147483647C", 12},
		{"multiplier overflows", "2147483647H2O", 0},
		{"hydrate sum overflows", "C2147483647.C", 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.pos, perr.Pos)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("Qq") })
	assert.NotPanics(t, func() { MustParse("CO2") })
}

func TestMasses(t *testing.T) {
	water := MustParse("H2O")
	assert.InDelta(t, 18.01528, water.Mass(), 1e-6)
	assert.InDelta(t, 18.0105646863, water.ExactMass(), 1e-9)
	assert.Equal(t, 18, water.NominalMass())
	assert.InDelta(t, water.ExactMass(), water.MZ(), 1e-12)

	ammonium := MustParse("NH4+")
	assert.InDelta(t, 18.03846-0.000548579909, ammonium.Mass(), 1e-6)
	assert.InDelta(t, 18.0343741336-0.000548579909, ammonium.ExactMass(), 1e-9)

	sulfate := MustParse("SO4^2-")
	assert.InDelta(t, (95.9517291784+2*0.000548579909)/2, sulfate.MZ(), 1e-8)

	labelled := MustParse("[13C]H4")
	assert.InDelta(t, 13.0033548378+4*1.0078250321, labelled.ExactMass(), 1e-9)
	assert.InDelta(t, 13.0033548378+4*1.00794, labelled.Mass(), 1e-9)
	assert.Equal(t, 17, labelled.NominalMass())

	heavy := MustParse("D2O")
	assert.Equal(t, 20, heavy.NominalMass())
}

func TestHill(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"C2H5OH", "C2H6O"},
		{"H2SO4", "H2O4S"},
		{"NaCl", "ClNa"},
		{"CH4", "CH4"},
		{"[13C]H4", "[13C]H4"},
		{"CH3[13C]H3", "C[13C]H6"},
		{"D2O", "[2H]2O"},
		{"NH4+", "H4N+"},
		{"SO4^2-", "O4S-2"},
		{"Fe+3", "Fe+3"},
		{"BrC6H5", "C6H5Br"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := MustParse(tt.input)
			assert.Equal(t, tt.want, f.Hill())
			assert.Equal(t, tt.want, f.String())

			again, err := Parse(f.Hill())
			require.NoError(t, err)
			assert.True(t, f.Equal(again))
		})
	}
}

func TestRenderers(t *testing.T) {
	glucose := MustParse("C6H12O6")
	assert.Equal(t, "C₆H₁₂O₆", glucose.Unicode())
	assert.Equal(t, "C<sub>6</sub>H<sub>12</sub>O<sub>6</sub>", glucose.HTML())
	assert.Equal(t, "C_{6}H_{12}O_{6}", glucose.LaTeX())

	sulfate := MustParse("SO4^2-")
	assert.Equal(t, "O₄S²⁻", sulfate.Unicode())
	assert.Equal(t, "O<sub>4</sub>S<sup>2-</sup>", sulfate.HTML())
	assert.Equal(t, "O_{4}S^{2-}", sulfate.LaTeX())

	labelled := MustParse("[13C]H4")
	assert.Equal(t, "¹³CH₄", labelled.Unicode())
	assert.Equal(t, "<sup>13</sup>CH<sub>4</sub>", labelled.HTML())
	assert.Equal(t, "^{13}CH_{4}", labelled.LaTeX())

	assert.Equal(t, "H₄N⁺", MustParse("NH4+").Unicode())
}

func TestEmpirical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"C6H12O6", "CH2O"},
		{"C2H4", "CH2"},
		{"H2O", "H2O"},
		{"Hg2+2", "Hg+"},
		{"C2H4+", "C2H4+"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.input).Empirical().Hill())
		})
	}
}

func TestCompositionTable(t *testing.T) {
	items := MustParse("H2O").CompositionTable()
	require.Len(t, items, 2)

	assert.Equal(t, "H", items[0].Key)
	assert.Equal(t, 2, items[0].Count)
	assert.InDelta(t, 2.01588, items[0].Mass, 1e-9)
	assert.InDelta(t, 2.01588/18.01528, items[0].Fraction, 1e-9)

	assert.Equal(t, "O", items[1].Key)
	assert.InDelta(t, 1.0, items[0].Fraction+items[1].Fraction, 1e-12)
}

func TestIsotopeDistribution(t *testing.T) {
	peaks := MustParse("Cl2").IsotopeDistribution(0)
	require.Len(t, peaks, 3)
	assert.Equal(t, 70, peaks[0].MassNumber)
	assert.InDelta(t, 0.7578*0.7578, peaks[0].Abundance, 1e-9)
	assert.Equal(t, 72, peaks[1].MassNumber)
	assert.InDelta(t, 2*0.7578*0.2422, peaks[1].Abundance, 1e-9)
	assert.Equal(t, 74, peaks[2].MassNumber)
	assert.InDelta(t, 2*34.96885271, peaks[0].Mass, 1e-9)

	methane := MustParse("CH4").IsotopeDistribution(0)
	total := 0.0
	for _, p := range methane {
		total += p.Abundance
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Equal(t, 16, methane[0].MassNumber)
	assert.InDelta(t, 16.0313001284, methane[0].Mass, 1e-9)
	assert.Greater(t, methane[0].Abundance, 0.98)

	filtered := MustParse("CH4").IsotopeDistribution(0.01)
	require.Len(t, filtered, 2)
	assert.Equal(t, 17, filtered[1].MassNumber)

	labelled := MustParse("[13C]").IsotopeDistribution(0)
	require.Len(t, labelled, 1)
	assert.Equal(t, 13, labelled[0].MassNumber)
	assert.InDelta(t, 1.0, labelled[0].Abundance, 1e-12)
}

func TestArithmetic(t *testing.T) {
	water := MustParse("H2O")
	proton := MustParse("H+")

	hydronium := water.Add(proton)
	assert.True(t, hydronium.Equal(MustParse("H3O+")))

	back, err := hydronium.Sub(proton)
	require.NoError(t, err)
	assert.True(t, back.Equal(water))

	_, err = water.Sub(MustParse("CO2"))
	assert.Error(t, err)

	doubled, err := water.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, "H4O2", doubled.Hill())

	_, err = water.Scale(0)
	assert.Error(t, err)

	assert.False(t, water.Equal(MustParse("H2O+")))
	assert.False(t, water.Equal(nil))
	assert.Equal(t, 3, water.Atoms())
	assert.Equal(t, 2, water.Count("H"))
	assert.False(t, water.Empty())
}

func TestNew(t *testing.T) {
	f, err := New(map[string]int{"D": 2, "O": 1, "N": 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"H[2]": 2, "O": 1}, f.Composition())

	f, err = New(map[string]int{"[13C]": 1, "H": 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, "[13C]H4+", f.Hill())

	_, err = New(map[string]int{"C[99]": 1}, 0)
	assert.Error(t, err)
	_, err = New(map[string]int{"Zz": 1}, 0)
	assert.Error(t, err)
	_, err = New(map[string]int{"C": -1}, 0)
	assert.Error(t, err)

	empty := MustNew(nil, 0)
	assert.True(t, empty.Empty())
	assert.Equal(t, "", empty.Hill())
}
