package elements

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsValid(t *testing.T) {
	require.NoError(t, ValidateAll())
	assert.Equal(t, 118, Table.Len())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{"symbol", "C", "C", false},
		{"name", "Carbon", "C", false},
		{"lower name", "chlorine", "Cl", false},
		{"upper name", "IRON", "Fe", false},
		{"number", "26", "Fe", false},
		{"suffix isotope", "C[13]", "C", false},
		{"prefix isotope", "[13C]", "C", false},
		{"deuterium", "D", "D", false},
		{"tritium name", "Tritium", "T", false},
		{"unknown symbol", "Xx", "", true},
		{"unknown isotope", "C[20]", "", true},
		{"lowercase symbol", "c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Lookup(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Symbol)
		})
	}
}

func TestByNumberAndSlice(t *testing.T) {
	e, err := Table.ByNumber(8)
	require.NoError(t, err)
	assert.Equal(t, "O", e.Symbol)

	_, err = Table.ByNumber(0)
	assert.Error(t, err)
	_, err = Table.ByNumber(119)
	assert.Error(t, err)

	slice := Table.Slice(1, 4)
	require.Len(t, slice, 3)
	assert.Equal(t, "H", slice[0].Symbol)
	assert.Equal(t, "Li", slice[2].Symbol)
	assert.Empty(t, Table.Slice(5, 5))
}

func TestNames(t *testing.T) {
	symbols := Table.Symbols()
	names := Table.Names()
	lower := Table.LowerNames()
	require.Len(t, symbols, 118)
	assert.Equal(t, "Og", symbols[117])
	assert.Equal(t, "Helium", names[1])
	assert.Equal(t, "helium", lower[1])
	assert.True(t, strings.HasPrefix(Table.String(), "Elements(H, He, Li"))
}

func TestElementMasses(t *testing.T) {
	c := MustLookup("C")
	assert.Equal(t, 12, c.NominalMass())
	assert.Equal(t, 6, c.Neutrons())
	assert.InDelta(t, 12.0, c.MonoisotopicMass(), 1e-12)
	assert.InDelta(t, 12.0107, c.ExactMass(), 1e-4)

	cl := MustLookup("Cl")
	assert.Equal(t, 35, cl.NominalMass())
	assert.InDelta(t, 34.96885271, cl.MonoisotopicMass(), 1e-8)

	d := MustLookup("D")
	assert.Equal(t, 2, d.NominalMass())
	assert.Equal(t, "H[2]", d.AsIsotope())
	assert.Equal(t, "H[3]", MustLookup("T").AsIsotope())
	assert.Equal(t, "C", c.AsIsotope())
}

func TestIsotopeString(t *testing.T) {
	iso, ok := MustLookup("C").IsotopeFor(13)
	require.True(t, ok)
	assert.Equal(t, "13, 13.0034, 1.070000%", iso.String())

	_, ok = MustLookup("C").IsotopeFor(14)
	assert.False(t, ok)
}

func TestEleshells(t *testing.T) {
	tests := []struct {
		symbol string
		want   []int
	}{
		{"H", []int{1}},
		{"Na", []int{2, 8, 1}},
		{"Fe", []int{2, 8, 14, 2}},
		{"Pd", []int{2, 8, 18, 18}},
		{"Au", []int{2, 8, 18, 32, 18, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			shells, err := MustLookup(tt.symbol).Eleshells()
			require.NoError(t, err)
			assert.Equal(t, tt.want, shells)
		})
	}
}

func TestEleconfigMap(t *testing.T) {
	config, err := MustLookup("Cr").EleconfigMap()
	require.NoError(t, err)
	assert.Equal(t, 5, config[Subshell{3, 'd'}])
	assert.Equal(t, 1, config[Subshell{4, 's'}])
	assert.Equal(t, 6, config[Subshell{3, 'p'}])
	assert.Equal(t, "3d", Subshell{3, 'd'}.String())
}

func TestValidateDetectsBadData(t *testing.T) {
	bad := el(6, "C", "Carbon", 14, 2, "p", Nonmetals, 12.5, 2.55, 0.76, 1.70, "[He] 2s2 2p3",
		iso(12, 12.0, 0.9), iso(13, 13.0033548378, 0.05))
	err := bad.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "C", verr.Symbol)
	assert.Contains(t, verr.Message, "protons")
	assert.Contains(t, verr.Message, "average of isotope masses")
	assert.Contains(t, verr.Message, "abundances")
}

func TestSplitIsotope(t *testing.T) {
	tests := []struct {
		key        string
		symbol     string
		massNumber int
		wantErr    bool
	}{
		{"C[13]", "C", 13, false},
		{"[13C]", "C", 13, false},
		{"[2H]", "H", 2, false},
		{"Cl", "Cl", 0, false},
		{"C[13", "", 0, true},
		{"[C]", "", 0, true},
		{"C[x]", "", 0, true},
		{"", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			sym, a, err := SplitIsotope(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, sym)
			assert.Equal(t, tt.massNumber, a)
		})
	}
}

func TestIsotopeKey(t *testing.T) {
	assert.Equal(t, "C[13]", IsotopeKey("C", 13))
}
