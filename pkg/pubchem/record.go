package pubchem

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/ChrisMcGann/chemtools/pkg/elements"
)

// PubChemProperty is a property from a full compound record.
type PubChemProperty struct {
	Label  string
	Name   string // may be empty
	Value  any    // string, float64, int or []string
	Type   PropType
	Source map[string]any // remaining urn fields (software, version, ...)
}

// RawProperty is a property as it appears in the record JSON.
type RawProperty struct {
	URN   map[string]any `json:"urn"`
	Value map[string]any `json:"value"`
}

// ParseRecordProperty converts a record property using its urn datatype:
// 1 string, 2 string list, 5 integer, 7 float, 16 binary (kept as string).
func ParseRecordProperty(raw RawProperty) (PubChemProperty, error) {
	label, _ := raw.URN["label"].(string)
	name, _ := raw.URN["name"].(string)

	dtype, ok := number(raw.URN["datatype"])
	if !ok {
		return PubChemProperty{}, fmt.Errorf("property %s %s has no datatype", label, name)
	}

	var (
		key string
		pt  PropType
	)
	switch int(dtype) {
	case 1:
		key, pt = "sval", PropString
	case 2:
		key, pt = "slist", PropStringList
	case 5:
		key, pt = "ival", PropInt
	case 7:
		key, pt = "fval", PropFloat
	case 16:
		key, pt = "binary", PropString
	default:
		return PubChemProperty{}, fmt.Errorf("unknown datatype '%v' for property %s %s", dtype, name, label)
	}

	rawValue, ok := raw.Value[key]
	if !ok {
		return PubChemProperty{}, fmt.Errorf("property %s %s has no %s value", label, name, key)
	}

	var value any
	switch pt {
	case PropString:
		value = fmt.Sprint(rawValue)
	case PropStringList:
		list, ok := rawValue.([]any)
		if !ok {
			return PubChemProperty{}, fmt.Errorf("property %s %s: expected a list, got %T", label, name, rawValue)
		}
		strs := make([]string, len(list))
		for i, v := range list {
			strs[i] = fmt.Sprint(v)
		}
		value = strs
	case PropInt:
		n, ok := number(rawValue)
		if !ok {
			return PubChemProperty{}, fmt.Errorf("property %s %s: expected an integer, got %T", label, name, rawValue)
		}
		value = int(n)
	case PropFloat:
		n, ok := number(rawValue)
		if !ok {
			return PubChemProperty{}, fmt.Errorf("property %s %s: expected a number, got %T", label, name, rawValue)
		}
		value = n
	}

	source := map[string]any{}
	for k, v := range raw.URN {
		switch k {
		case "datatype", "label", "name":
			continue
		}
		source[k] = v
	}

	return PubChemProperty{Label: label, Name: name, Value: value, Type: pt, Source: source}, nil
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}

// BondType is the order of a bond in a PubChem record.
type BondType int

const (
	BondSingle    BondType = 1
	BondDouble    BondType = 2
	BondTriple    BondType = 3
	BondQuadruple BondType = 4
	BondDative    BondType = 5
	BondComplex   BondType = 6
	BondIonic     BondType = 7
	BondUnknown   BondType = 255
)

var bondNames = map[BondType]string{
	BondSingle:    "SINGLE",
	BondDouble:    "DOUBLE",
	BondTriple:    "TRIPLE",
	BondQuadruple: "QUADRUPLE",
	BondDative:    "DATIVE",
	BondComplex:   "COMPLEX",
	BondIonic:     "IONIC",
	BondUnknown:   "UNKNOWN",
}

func (b BondType) String() string {
	if s, ok := bondNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BondType(%d)", int(b))
}

// Bond joins two atoms by their atom ids.
type Bond struct {
	Aid1  int
	Aid2  int
	Order BondType
}

func (b Bond) String() string {
	return fmt.Sprintf("Bond(%d, %d, %s)", b.Aid1, b.Aid2, b.Order)
}

// ToMap returns the bond as a map of aid1, aid2 and order.
func (b Bond) ToMap() map[string]any {
	return map[string]any{"aid1": b.Aid1, "aid2": b.Aid2, "order": int(b.Order)}
}

// Atom is an atom of a compound record. Z is only meaningful for 3D
// records.
type Atom struct {
	Aid     int
	Number  int
	Element string
	X, Y, Z float64
	Charge  int
}

// Coordinate type codes used in records.
const (
	coordTwoD   = 1
	coordThreeD = 2
)

// RecordType selects the 2D or 3D record.
type RecordType string

const (
	Record2D RecordType = "2d"
	Record3D RecordType = "3d"
)

// Compound is a full PubChem compound record.
type Compound struct {
	CID        int
	Atoms      []Atom
	Bonds      []Bond
	Properties []PubChemProperty
	Charge     int
	coordTypes []int
}

type rawRecord struct {
	PCCompounds []struct {
		ID struct {
			ID struct {
				CID int `json:"cid"`
			} `json:"id"`
		} `json:"id"`
		Atoms struct {
			Aid     []int `json:"aid"`
			Element []int `json:"element"`
			Charge  []struct {
				Aid   int `json:"aid"`
				Value int `json:"value"`
			} `json:"charge"`
		} `json:"atoms"`
		Bonds struct {
			Aid1  []int `json:"aid1"`
			Aid2  []int `json:"aid2"`
			Order []int `json:"order"`
		} `json:"bonds"`
		Coords []struct {
			Type       []int `json:"type"`
			Aid        []int `json:"aid"`
			Conformers []struct {
				X []float64 `json:"x"`
				Y []float64 `json:"y"`
				Z []float64 `json:"z"`
			} `json:"conformers"`
		} `json:"coords"`
		Props  []RawProperty `json:"props"`
		Charge int           `json:"charge"`
	} `json:"PC_Compounds"`
}

// ParseRecord parses the JSON of a compound record. Only the first compound
// in the document is used.
func ParseRecord(data []byte) (*Compound, error) {
	var rec rawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if len(rec.PCCompounds) == 0 {
		return nil, fmt.Errorf("record contains no compound")
	}
	pc := rec.PCCompounds[0]

	c := &Compound{CID: pc.ID.ID.CID, Charge: pc.Charge}

	if len(pc.Atoms.Aid) != len(pc.Atoms.Element) {
		return nil, fmt.Errorf("record has %d atom ids but %d elements", len(pc.Atoms.Aid), len(pc.Atoms.Element))
	}
	index := make(map[int]int, len(pc.Atoms.Aid))
	for i, aid := range pc.Atoms.Aid {
		atom := Atom{Aid: aid, Number: pc.Atoms.Element[i]}
		if el, err := elements.Table.ByNumber(atom.Number); err == nil {
			atom.Element = el.Symbol
		}
		index[aid] = i
		c.Atoms = append(c.Atoms, atom)
	}
	for _, ch := range pc.Atoms.Charge {
		if i, ok := index[ch.Aid]; ok {
			c.Atoms[i].Charge = ch.Value
		}
	}

	if len(pc.Coords) > 0 {
		coords := pc.Coords[0]
		c.coordTypes = coords.Type
		if len(coords.Conformers) > 0 {
			conf := coords.Conformers[0]
			for j, aid := range coords.Aid {
				i, ok := index[aid]
				if !ok {
					continue
				}
				if j < len(conf.X) {
					c.Atoms[i].X = conf.X[j]
				}
				if j < len(conf.Y) {
					c.Atoms[i].Y = conf.Y[j]
				}
				if j < len(conf.Z) {
					c.Atoms[i].Z = conf.Z[j]
				}
			}
		}
	}

	b := pc.Bonds
	if len(b.Aid1) != len(b.Aid2) {
		return nil, fmt.Errorf("record has %d bond starts but %d bond ends", len(b.Aid1), len(b.Aid2))
	}
	for i := range b.Aid1 {
		order := BondSingle
		if i < len(b.Order) {
			order = BondType(b.Order[i])
		}
		c.Bonds = append(c.Bonds, Bond{Aid1: b.Aid1[i], Aid2: b.Aid2[i], Order: order})
	}

	for _, raw := range pc.Props {
		p, err := ParseRecordProperty(raw)
		if err != nil {
			return nil, err
		}
		c.Properties = append(c.Properties, p)
	}
	return c, nil
}

// FromCID fetches the record of a compound.
func (c *Client) FromCID(ctx context.Context, cid int, recordType RecordType) (*Compound, error) {
	if recordType == "" {
		recordType = Record2D
	}
	if recordType != Record2D && recordType != Record3D {
		return nil, fmt.Errorf("unknown record type %q", recordType)
	}
	body, err := c.Get(ctx, Request{
		Namespace:   NamespaceCID,
		Identifiers: []string{strconv.Itoa(cid)},
		Domain:      "record",
		Format:      FormatJSON,
		Params:      url.Values{"record_type": {string(recordType)}},
	})
	if err != nil {
		return nil, err
	}
	return ParseRecord(body)
}

// Elements returns the element symbol of every atom in atom order.
func (c *Compound) Elements() []string {
	out := make([]string, len(c.Atoms))
	for i, a := range c.Atoms {
		out[i] = a.Element
	}
	return out
}

// CoordinateType returns "2d", "3d" or "" when the record has no
// coordinates.
func (c *Compound) CoordinateType() string {
	for _, t := range c.coordTypes {
		switch t {
		case coordTwoD:
			return string(Record2D)
		case coordThreeD:
			return string(Record3D)
		}
	}
	return ""
}

// Property returns the first record property with the given label and,
// when name is not empty, name.
func (c *Compound) Property(label, name string) (PubChemProperty, bool) {
	for _, p := range c.Properties {
		if p.Label == label && (name == "" || p.Name == name) {
			return p, true
		}
	}
	return PubChemProperty{}, false
}
