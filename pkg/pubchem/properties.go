package pubchem

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PropType is the value type of a property.
type PropType int

const (
	PropString PropType = iota
	PropFloat
	PropInt
	PropFormula // parsed into a *formula.Formula
	PropStringList
)

func (t PropType) String() string {
	switch t {
	case PropFloat:
		return "float"
	case PropInt:
		return "int"
	case PropFormula:
		return "formula"
	case PropStringList:
		return "string list"
	}
	return "string"
}

// PropData describes a property served by the property endpoint.
type PropData struct {
	Name        string
	Description string
	Type        PropType
	AttrName    string // snake_case alias, e.g. molecular_weight
}

var properties = []PropData{
	{
		Name:        "MolecularFormula",
		Description: "Molecular formula.",
		Type:        PropFormula,
		AttrName:    "molecular_formula",
	},
	{
		Name:        "MolecularWeight",
		Description: "The molecular weight is the sum of all atomic weights of the constituent atoms in a compound, measured in g/mol. In the absence of explicit isotope labelling, averaged natural abundance is assumed. If an atom bears an explicit isotope label, 100% isotopic purity is assumed at this location.",
		Type:        PropFloat,
		AttrName:    "molecular_weight",
	},
	{
		Name:        "CanonicalSMILES",
		Description: "Canonical SMILES (Simplified Molecular Input Line Entry System) string. It is a unique SMILES string of a compound, generated by a \"canonicalization\" algorithm.",
		Type:        PropString,
		AttrName:    "canonical_smiles",
	},
	{
		Name:        "IsomericSMILES",
		Description: "Isomeric SMILES string. It is a SMILES string with stereochemical and isotopic specifications.",
		Type:        PropString,
		AttrName:    "isomeric_smiles",
	},
	{
		Name:        "InChI",
		Description: "Standard IUPAC International Chemical Identifier (InChI). It does not allow for user selectable options in dealing with the stereochemistry and tautomer layers of the InChI string.",
		Type:        PropString,
		AttrName:    "inchi",
	},
	{
		Name:        "InChIKey",
		Description: "Hashed version of the full standard InChI, consisting of 27 characters.",
		Type:        PropString,
		AttrName:    "inchikey",
	},
	{
		Name:        "IUPACName",
		Description: "Chemical name systematically determined according to the IUPAC nomenclatures.",
		Type:        PropString,
		AttrName:    "iupac_name",
	},
	{
		Name:        "XLogP",
		Description: "Computationally generated octanol-water partition coefficient or distribution coefficient. XLogP is used as a measure of hydrophilicity or hydrophobicity of a molecule.",
		Type:        PropFloat,
		AttrName:    "xlogp",
	},
	{
		Name:        "ExactMass",
		Description: "The mass of the most likely isotopic composition for a single molecule, corresponding to the most intense ion/molecule peak in a mass spectrum.",
		Type:        PropFloat,
		AttrName:    "exact_mass",
	},
	{
		Name:        "MonoisotopicMass",
		Description: "The mass of a molecule, calculated using the mass of the most abundant isotope of each element.",
		Type:        PropFloat,
		AttrName:    "monoisotopic_mass",
	},
	{
		Name:        "TPSA",
		Description: "Topological polar surface area, computed by the algorithm described in the paper by Ertl et al.",
		Type:        PropFloat,
		AttrName:    "tpsa",
	},
	{
		Name:        "Complexity",
		Description: "The molecular complexity rating of a compound, computed using the Bertz/Hendrickson/Ihlenfeldt formula.",
		Type:        PropFloat,
		AttrName:    "complexity",
	},
	{
		Name:        "Charge",
		Description: "The total (or net) charge of a molecule.",
		Type:        PropInt,
		AttrName:    "charge",
	},
	{
		Name:        "HBondDonorCount",
		Description: "Number of hydrogen-bond donors in the structure.",
		Type:        PropInt,
		AttrName:    "h_bond_donor_count",
	},
	{
		Name:        "HBondAcceptorCount",
		Description: "Number of hydrogen-bond acceptors in the structure.",
		Type:        PropInt,
		AttrName:    "h_bond_acceptor_count",
	},
	{
		Name:        "RotatableBondCount",
		Description: "Number of rotatable bonds.",
		Type:        PropInt,
		AttrName:    "rotatable_bond_count",
	},
	{
		Name:        "HeavyAtomCount",
		Description: "Number of non-hydrogen atoms.",
		Type:        PropInt,
		AttrName:    "heavy_atom_count",
	},
	{
		Name:        "IsotopeAtomCount",
		Description: "Number of atoms with enriched isotope(s)",
		Type:        PropInt,
		AttrName:    "isotope_atom_count",
	},
	{
		Name:        "AtomStereoCount",
		Description: "Total number of atoms with tetrahedral (sp3) stereo [e.g., (R)- or (S)-configuration]",
		Type:        PropInt,
		AttrName:    "atom_stereo_count",
	},
	{
		Name:        "DefinedAtomStereoCount",
		Description: "Number of atoms with defined tetrahedral (sp3) stereo.",
		Type:        PropInt,
		AttrName:    "defined_atom_stereo_count",
	},
	{
		Name:        "UndefinedAtomStereoCount",
		Description: "Number of atoms with undefined tetrahedral (sp3) stereo.",
		Type:        PropInt,
		AttrName:    "undefined_atom_stereo_count",
	},
	{
		Name:        "BondStereoCount",
		Description: "Total number of bonds with planar (sp2) stereo [e.g., (E)- or (Z)-configuration].",
		Type:        PropInt,
		AttrName:    "bond_stereo_count",
	},
	{
		Name:        "DefinedBondStereoCount",
		Description: "Number of atoms with defined planar (sp2) stereo.",
		Type:        PropInt,
		AttrName:    "defined_bond_stereo_count",
	},
	{
		Name:        "UndefinedBondStereoCount",
		Description: "Number of atoms with undefined planar (sp2) stereo.",
		Type:        PropInt,
		AttrName:    "undefined_bond_stereo_count",
	},
	{
		Name:        "CovalentUnitCount",
		Description: "Number of covalently bound units.",
		Type:        PropInt,
		AttrName:    "covalent_unit_count",
	},
	{
		Name:        "Volume3D",
		Description: "Analytic volume of the first diverse conformer (default conformer) for a compound.",
		Type:        PropFloat,
		AttrName:    "volume_3d",
	},
	{
		Name:        "XStericQuadrupole3D",
		Description: "The x component of the quadrupole moment (Qx) of the first diverse conformer (default conformer) for a compound.",
		Type:        PropFloat,
		AttrName:    "x_steric_quadrupole_3d",
	},
	{
		Name:        "YStericQuadrupole3D",
		Description: "The y component of the quadrupole moment (Qy) of the first diverse conformer (default conformer) for a compound.",
		Type:        PropFloat,
		AttrName:    "y_steric_quadrupole_3d",
	},
	{
		Name:        "ZStericQuadrupole3D",
		Description: "The z component of the quadrupole moment (Qz) of the first diverse conformer (default conformer) for a compound.",
		Type:        PropFloat,
		AttrName:    "z_steric_quadrupole_3d",
	},
	{
		Name:        "FeatureCount3D",
		Description: "Total number of 3D features (the sum of FeatureAcceptorCount3D, FeatureDonorCount3D, FeatureAnionCount3D, FeatureCationCount3D, FeatureRingCount3D and FeatureHydrophobeCount3D)",
		Type:        PropInt,
		AttrName:    "feature_count_3d",
	},
	{
		Name:        "FeatureAcceptorCount3D",
		Description: "Number of hydrogen-bond acceptors of a conformer.",
		Type:        PropInt,
		AttrName:    "feature_acceptor_count_3d",
	},
	{
		Name:        "FeatureDonorCount3D",
		Description: "Number of hydrogen-bond donors of a conformer.",
		Type:        PropInt,
		AttrName:    "feature_donor_count_3d",
	},
	{
		Name:        "FeatureAnionCount3D",
		Description: "Number of anionic centers (at pH 7) of a conformer.",
		Type:        PropInt,
		AttrName:    "feature_anion_count_3d",
	},
	{
		Name:        "FeatureCationCount3D",
		Description: "Number of cationic centers (at pH 7) of a conformer.",
		Type:        PropInt,
		AttrName:    "feature_cation_count_3d",
	},
	{
		Name:        "FeatureRingCount3D",
		Description: "Number of rings of a conformer.",
		Type:        PropInt,
		AttrName:    "feature_ring_count_3d",
	},
	{
		Name:        "FeatureHydrophobeCount3D",
		Description: "Number of hydrophobes of a conformer.",
		Type:        PropInt,
		AttrName:    "feature_hydrophobe_count_3d",
	},
	{
		Name:        "ConformerModelRMSD3D",
		Description: "Conformer sampling RMSD in Å.",
		Type:        PropFloat,
		AttrName:    "conformer_model_rmsd_3d",
	},
	{
		Name:        "EffectiveRotorCount3D",
		Description: "Number of effective rotors of a conformer.",
		Type:        PropInt,
		AttrName:    "effective_rotor_count_3d",
	},
	{
		Name:        "ConformerCount3D",
		Description: "The number of conformers in the conformer model for a compound.",
		Type:        PropInt,
		AttrName:    "conformer_count_3d",
	},
	{
		Name:        "Fingerprint2D",
		Description: "Base64-encoded PubChem Substructure Fingerprint of a molecule.",
		Type:        PropString,
		AttrName:    "fingerprint_2d",
	},
}

var (
	propertyByName = map[string]PropData{}
	// PropertyMap maps snake_case aliases to property names.
	PropertyMap = map[string]string{}
)

func init() {
	for _, p := range properties {
		propertyByName[p.Name] = p
		PropertyMap[p.AttrName] = p.Name
	}
}

// ValidProperties returns the properties in table order.
func ValidProperties() []PropData {
	out := make([]PropData, len(properties))
	copy(out, properties)
	return out
}

// PropertyNames returns the property names in table order.
func PropertyNames() []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.Name
	}
	return out
}

// LookupProperty finds a property by name or snake_case alias.
func LookupProperty(name string) (PropData, bool) {
	if p, ok := propertyByName[name]; ok {
		return p, true
	}
	if n, ok := PropertyMap[name]; ok {
		return propertyByName[n], true
	}
	return PropData{}, false
}

// ValidPropertyDescriptions renders the property table as text.
func ValidPropertyDescriptions() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Property\tType\tDescription")
	fmt.Fprintln(tw, "--------\t----\t-----------")
	for _, p := range properties {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Type, p.Description)
	}
	tw.Flush()
	return b.String()
}

// ForceValidProperties normalises a property selection. Each argument may
// be a name, a snake_case alias or a comma-separated list of either; "all"
// selects every property. The result follows table order without
// duplicates. Unknown names and an empty selection are errors.
func ForceValidProperties(props ...string) ([]string, error) {
	wanted := map[string]bool{}
	var unknown []string
	for _, arg := range props {
		for _, p := range strings.Split(arg, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if strings.EqualFold(p, "all") {
				return PropertyNames(), nil
			}
			data, ok := LookupProperty(p)
			if !ok {
				unknown = append(unknown, p)
				continue
			}
			wanted[data.Name] = true
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown properties '%s'", strings.Join(unknown, ", "))
	}

	var ordered []string
	for _, p := range properties {
		if wanted[p.Name] {
			ordered = append(ordered, p.Name)
		}
	}
	if len(ordered) == 0 {
		return nil, fmt.Errorf("please supply one or more properties")
	}
	return ordered, nil
}
