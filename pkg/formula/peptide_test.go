package formula

import (
	"math"
	"strings"
	"testing"
)

func TestFromPeptide(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		wantHill string
		wantErr  bool
	}{
		{"tripeptide", "AAA", "C9H17N3O4", false},
		{"lowercase", "gly", "C17H25N3O5", false},
		{"with cysteine", "GC", "C5H10N2O3S", false},
		{"empty", "", "", true},
		{"unknown residue", "AXA", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromPeptide(tt.sequence)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromPeptide() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := f.Hill(); got != tt.wantHill {
				t.Errorf("FromPeptide() = %s, want %s", got, tt.wantHill)
			}
		})
	}
}

func TestPeptideMZ(t *testing.T) {
	tests := []struct {
		name      string
		sequence  string
		charge    int
		mods      []float64
		wantMZ    float64
		tolerance float64
	}{
		{"simple peptide charge 1", "AAA", 1, nil, 232.129, 0.001},
		{"simple peptide charge 2", "AAA", 2, nil, 116.568, 0.001},
		{"peptide with modification", "AAA", 1, []float64{57.021464}, 289.151, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PeptideMZ(tt.sequence, tt.charge, tt.mods...)
			if err != nil {
				t.Fatalf("PeptideMZ() error = %v", err)
			}
			if math.Abs(got-tt.wantMZ) > tt.tolerance {
				t.Errorf("PeptideMZ() = %.4f, want %.4f (within %.4f)", got, tt.wantMZ, tt.tolerance)
			}
		})
	}

	if _, err := PeptideMZ("AAA", 0); err == nil {
		t.Error("PeptideMZ() with charge 0 should fail")
	}
}

func TestAdductDatabase(t *testing.T) {
	db := DefaultAdductDatabase()
	glucose := MustParse("C6H12O6")

	tests := []struct {
		adduct string
		wantMZ float64
	}{
		{"[M+H]+", 181.070664},
		{"[M+Na]+", 203.052606},
		{"[M-H]-", 179.056112},
		{"[M+2H]2+", 91.038970},
		{"[2M+H]+", 361.134052},
	}

	for _, tt := range tests {
		t.Run(tt.adduct, func(t *testing.T) {
			a, ok := db.Get(tt.adduct)
			if !ok {
				t.Fatalf("adduct %s not found", tt.adduct)
			}
			got, err := PrecursorMZ(glucose, a)
			if err != nil {
				t.Fatalf("PrecursorMZ() error = %v", err)
			}
			if math.Abs(got-tt.wantMZ) > 1e-5 {
				t.Errorf("PrecursorMZ() = %.6f, want %.6f", got, tt.wantMZ)
			}
		})
	}

	if _, err := PrecursorMZ(glucose, Adduct{Name: "M"}); err == nil {
		t.Error("PrecursorMZ() with neutral adduct should fail")
	}
}

func TestAdductLoadFromCSV(t *testing.T) {
	csv := "name,massshift,charge,multiplier\n" +
		"[M+H]+,1.007276,1\n" +
		"\n" +
		"[3M+H]+,1.007276,1,3\n"

	db := NewAdductDatabase()
	if err := db.LoadFromCSV(strings.NewReader(csv)); err != nil {
		t.Fatalf("LoadFromCSV() error = %v", err)
	}

	names := db.Names()
	if len(names) != 2 || names[0] != "[3M+H]+" || names[1] != "[M+H]+" {
		t.Errorf("Names() = %v", names)
	}
	a, _ := db.Get("[3M+H]+")
	if a.Multiplier != 3 || a.Charge != 1 {
		t.Errorf("Get() = %+v", a)
	}
	b, _ := db.Get("[M+H]+")
	if b.Multiplier != 1 {
		t.Errorf("default multiplier = %d, want 1", b.Multiplier)
	}

	bad := []string{
		"h\n[M+H]+,abc,1\n",
		"h\n[M+H]+,1.0\n",
		"h\n[M+H]+,1.0,0\n",
		"h\n[M+H]+,1.0,1,-2\n",
	}
	for _, in := range bad {
		if err := NewAdductDatabase().LoadFromCSV(strings.NewReader(in)); err == nil {
			t.Errorf("LoadFromCSV(%q) should fail", in)
		}
	}
}

func TestCompound(t *testing.T) {
	c, err := NewCompound("H2O", nil)
	if err != nil {
		t.Fatalf("NewCompound() error = %v", err)
	}
	if c.UnicodeName != "H₂O" || c.HTMLName != "H<sub>2</sub>O" || c.LaTeXName != "H_{2}O" {
		t.Errorf("names = %q %q %q", c.UnicodeName, c.HTMLName, c.LaTeXName)
	}
	mass, unit := c.MolarMass()
	if math.Abs(mass-18.01528) > 1e-6 || unit != "g/mol" {
		t.Errorf("MolarMass() = %f %s", mass, unit)
	}
	if !c.Equal("H2O") || c.Charge() != 0 {
		t.Error("compound should equal its name and be neutral")
	}

	if _, err := NewCompound("Water", nil); err == nil {
		t.Error("NewCompound(Water) should fail to parse")
	}

	named, err := NewCompound("Ammonium", MustParse("NH4+"))
	if err != nil {
		t.Fatalf("NewCompound() error = %v", err)
	}
	if named.Charge() != 1 || named.String() != "Ammonium" {
		t.Errorf("compound = %#v", named)
	}
	if got := named.GoString(); got != "<Compound(Ammonium, H4N+)>" {
		t.Errorf("GoString() = %s", got)
	}
}
