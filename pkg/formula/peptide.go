package formula

import (
	"fmt"
	"unicode"
)

// ProtonMass is the proton rest mass used for m/z calculations.
const ProtonMass = 1.00727646688

// residueCompositions maps amino acid one-letter codes to the elemental
// composition of the residue (amino acid minus water).
var residueCompositions = map[rune]map[string]int{
	'A': {"C": 3, "H": 5, "N": 1, "O": 1},
	'R': {"C": 6, "H": 12, "N": 4, "O": 1},
	'N': {"C": 4, "H": 6, "N": 2, "O": 2},
	'D': {"C": 4, "H": 5, "N": 1, "O": 3},
	'C': {"C": 3, "H": 5, "N": 1, "O": 1, "S": 1},
	'E': {"C": 5, "H": 7, "N": 1, "O": 3},
	'Q': {"C": 5, "H": 8, "N": 2, "O": 2},
	'G': {"C": 2, "H": 3, "N": 1, "O": 1},
	'H': {"C": 6, "H": 7, "N": 3, "O": 1},
	'I': {"C": 6, "H": 11, "N": 1, "O": 1},
	'L': {"C": 6, "H": 11, "N": 1, "O": 1},
	'K': {"C": 6, "H": 12, "N": 2, "O": 1},
	'M': {"C": 5, "H": 9, "N": 1, "O": 1, "S": 1},
	'F': {"C": 9, "H": 9, "N": 1, "O": 1},
	'P': {"C": 5, "H": 7, "N": 1, "O": 1},
	'S': {"C": 3, "H": 5, "N": 1, "O": 2},
	'T': {"C": 4, "H": 7, "N": 1, "O": 2},
	'W': {"C": 11, "H": 10, "N": 2, "O": 1},
	'Y': {"C": 9, "H": 9, "N": 1, "O": 2},
	'V': {"C": 5, "H": 9, "N": 1, "O": 1},
}

// FromPeptide returns the formula of a linear peptide: the sum of its residue
// compositions plus one water.
func FromPeptide(sequence string) (*Formula, error) {
	if sequence == "" {
		return nil, fmt.Errorf("empty peptide sequence")
	}
	comp := map[string]int{"H": 2, "O": 1}
	for i, aa := range sequence {
		residue, ok := residueCompositions[unicode.ToUpper(aa)]
		if !ok {
			return nil, fmt.Errorf("unknown amino acid %q at position %d", aa, i+1)
		}
		for k, n := range residue {
			comp[k] += n
		}
	}
	return &Formula{composition: comp}, nil
}

// PeptideMZ returns the monoisotopic m/z of a peptide protonated to the given
// charge. Modification mass shifts are added to the neutral mass.
func PeptideMZ(sequence string, charge int, modMasses ...float64) (float64, error) {
	if charge <= 0 {
		return 0, fmt.Errorf("charge must be positive, got %d", charge)
	}
	f, err := FromPeptide(sequence)
	if err != nil {
		return 0, err
	}
	mass := f.ExactMass()
	for _, m := range modMasses {
		mass += m
	}
	return (mass + float64(charge)*ProtonMass) / float64(charge), nil
}
