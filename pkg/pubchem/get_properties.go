package pubchem

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/ChrisMcGann/chemtools/pkg/formula"
)

// Properties holds the properties of one compound. Values maps property
// names to string, float64, int or *formula.Formula values; a nil value
// means PubChem did not return the property.
type Properties struct {
	CID    int
	Names  []string // property names in table order
	Values map[string]any
}

// Get returns the value of a property by name or alias.
func (p Properties) Get(name string) (any, bool) {
	if data, ok := LookupProperty(name); ok {
		name = data.Name
	}
	v, ok := p.Values[name]
	return v, ok && v != nil
}

// Float returns a float property.
func (p Properties) Float(name string) (float64, bool) {
	v, ok := p.Get(name)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Int returns an integer property.
func (p Properties) Int(name string) (int, bool) {
	v, ok := p.Get(name)
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

// Text returns a string property.
func (p Properties) Text(name string) (string, bool) {
	v, ok := p.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Formula returns the parsed MolecularFormula, or nil.
func (p Properties) Formula() *formula.Formula {
	v, _ := p.Get("MolecularFormula")
	f, _ := v.(*formula.Formula)
	return f
}

// Format renders a property for tabular output. Missing values are empty.
func (p Properties) Format(name string) string {
	v, ok := p.Get(name)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case *formula.Formula:
		return x.String()
	case string:
		return x
	}
	return fmt.Sprint(v)
}

// MarshalJSON writes the CID and the property values, with formulae as
// strings.
func (p Properties) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Values)+1)
	m["CID"] = p.CID
	for k, v := range p.Values {
		if f, ok := v.(*formula.Formula); ok {
			v = f.String()
		}
		m[k] = v
	}
	return json.Marshal(m)
}

type propertyTable struct {
	PropertyTable struct {
		Properties []map[string]any `json:"Properties"`
	} `json:"PropertyTable"`
}

// ParseProperties parses the JSON returned by the property endpoint.
// Entries for the same CID are merged and values are converted to the
// types of the property table.
func ParseProperties(data []byte) ([]Properties, error) {
	return parseProperties(data, slog.Default())
}

func parseProperties(data []byte, logger *slog.Logger) ([]Properties, error) {
	var table propertyTable
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("decode property table: %w", err)
	}

	var order []int
	byCID := map[int]*Properties{}
	for i, entry := range table.PropertyTable.Properties {
		rawCID, ok := entry["CID"]
		if !ok {
			return nil, fmt.Errorf("property entry %d has no CID", i)
		}
		cid, err := toInt("CID", rawCID, logger)
		if err != nil {
			return nil, err
		}

		p, ok := byCID[cid]
		if !ok {
			p = &Properties{CID: cid, Values: map[string]any{}}
			byCID[cid] = p
			order = append(order, cid)
		}

		for _, prop := range properties {
			raw, ok := entry[prop.Name]
			if !ok {
				continue
			}
			v, err := coerce(prop, raw, logger)
			if err != nil {
				return nil, fmt.Errorf("CID %d: %w", cid, err)
			}
			p.Values[prop.Name] = v
		}
	}

	out := make([]Properties, 0, len(order))
	for _, cid := range order {
		p := byCID[cid]
		for _, prop := range properties {
			if _, ok := p.Values[prop.Name]; ok {
				p.Names = append(p.Names, prop.Name)
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func coerce(prop PropData, raw any, logger *slog.Logger) (any, error) {
	switch prop.Type {
	case PropFloat:
		return toFloat(prop.Name, raw)
	case PropInt:
		return toInt(prop.Name, raw, logger)
	case PropFormula:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected a string, got %T", prop.Name, raw)
		}
		f, err := formula.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", prop.Name, err)
		}
		return f, nil
	}
	switch x := raw.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	}
	return fmt.Sprint(raw), nil
}

func toFloat(name string, raw any) (float64, error) {
	switch x := raw.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid number %q", name, x)
		}
		return f, nil
	case float64:
		return x, nil
	}
	return 0, fmt.Errorf("%s: expected a number, got %T", name, raw)
}

func toInt(name string, raw any, logger *slog.Logger) (int, error) {
	var s string
	switch x := raw.(type) {
	case json.Number:
		s = x.String()
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return 0, fmt.Errorf("%s: expected an integer, got %T", name, raw)
	}

	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", name, s)
	}
	logger.Warn("loss of precision converting property from float to int", "property", name, "value", s)
	return int(f), nil
}

// GetPropertiesJSON fetches the raw JSON property table.
func (c *Client) GetPropertiesJSON(ctx context.Context, ids []string, ns Namespace, props ...string) ([]byte, error) {
	return c.getProperties(ctx, ids, ns, FormatJSON, props)
}

// GetPropertiesText fetches the property table as CSV, TXT, XML or JSON
// text.
func (c *Client) GetPropertiesText(ctx context.Context, ids []string, ns Namespace, format Format, props ...string) (string, error) {
	switch format {
	case FormatCSV, FormatTXT, FormatXML, FormatJSON:
	default:
		return "", fmt.Errorf("properties are not available as %s", format)
	}
	body, err := c.getProperties(ctx, ids, ns, format, props)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) getProperties(ctx context.Context, ids []string, ns Namespace, format Format, props []string) ([]byte, error) {
	valid, err := ForceValidProperties(props...)
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, Request{
		Namespace:   ns,
		Identifiers: ids,
		Domain:      "property/" + strings.Join(valid, ","),
		Format:      format,
	})
}

// GetProperties fetches props for the compounds identified by ids. More
// than one compound can match an identifier, so a list is returned. Each
// result carries every requested property, nil when PubChem had no value.
func (c *Client) GetProperties(ctx context.Context, ids []string, props []string, ns Namespace) ([]Properties, error) {
	valid, err := ForceValidProperties(props...)
	if err != nil {
		return nil, err
	}
	data, err := c.GetPropertiesJSON(ctx, ids, ns, valid...)
	if err != nil {
		return nil, err
	}
	parsed, err := parseProperties(data, c.logger())
	if err != nil {
		return nil, err
	}

	for i := range parsed {
		p := &parsed[i]
		values := make(map[string]any, len(valid))
		for _, name := range valid {
			values[name] = p.Values[name]
		}
		p.Values = values
		p.Names = valid
	}
	return parsed, nil
}

// GetProperty fetches a single property of the first compound matching id.
func (c *Client) GetProperty(ctx context.Context, id string, prop string, ns Namespace) (any, error) {
	valid, err := ForceValidProperties(prop)
	if err != nil {
		return nil, err
	}
	if len(valid) != 1 {
		return nil, fmt.Errorf("expected a single property, got %d", len(valid))
	}
	results, err := c.GetProperties(ctx, []string{id}, valid, ns)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, &NotFoundError{Identifier: id}
	}
	return results[0].Values[valid[0]], nil
}
