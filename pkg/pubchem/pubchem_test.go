package pubchem

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ChrisMcGann/chemtools/pkg/formula"
)

const glucoseProperties = `{
  "PropertyTable": {
    "Properties": [
      {"CID": 5793, "MolecularFormula": "C6H12O6", "MolecularWeight": "180.16", "XLogP": -2.6},
      {"CID": 5793, "HBondDonorCount": 5, "Charge": 0},
      {"CID": 2244, "MolecularFormula": "C9H8O4", "MolecularWeight": 180.16, "HBondDonorCount": 1.0}
    ]
  }
}`

const notFoundFault = `{
  "Fault": {
    "Code": "PUGREST.NotFound",
    "Message": "No CID found",
    "Details": ["No CID found that matches the given name"]
  }
}`

const badRequestFault = `{
  "Fault": {
    "Code": "PUGREST.BadRequest",
    "Message": "Invalid property",
    "Details": ["Unrecognized property name"]
  }
}`

const aspirinRecord = `{
  "PC_Compounds": [{
    "id": {"id": {"cid": 2244}},
    "atoms": {"aid": [1, 2, 3], "element": [8, 6, 1], "charge": [{"aid": 1, "value": -1}]},
    "bonds": {"aid1": [1, 2], "aid2": [2, 3], "order": [2, 4]},
    "coords": [{
      "type": [2, 5, 255],
      "aid": [1, 2, 3],
      "conformers": [{"x": [0.5, 1.5, 2.5], "y": [1, 2, 3], "z": [-1, 0, 1]}]
    }],
    "props": [
      {"urn": {"label": "Molecular Formula", "datatype": 1, "version": "2.1", "release": "2021.05.07"},
       "value": {"sval": "C9H8O4"}},
      {"urn": {"label": "Mass", "name": "Exact", "datatype": 1}, "value": {"sval": "180.04225873"}},
      {"urn": {"label": "Log P", "name": "XLogP3", "datatype": 7}, "value": {"fval": 1.2}},
      {"urn": {"label": "Count", "name": "Rotatable Bond", "datatype": 5}, "value": {"ival": 3}},
      {"urn": {"label": "Fingerprint", "name": "SubStructure Keys", "datatype": 16}, "value": {"binary": "00000371C0703800"}}
    ],
    "charge": 0
  }]
}`

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	var logs bytes.Buffer
	return NewClient(WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()), WithLogger(quietLogger(&logs))), &logs
}

func TestRequestURL(t *testing.T) {
	u, err := Request{
		Namespace:   NamespaceName,
		Identifiers: []string{"acetic acid", "glucose"},
		Domain:      "property/MolecularWeight",
		Format:      FormatJSON,
	}.URL(DefaultBaseURL)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL+"/compound/name/acetic%20acid,glucose/property/MolecularWeight/JSON", u)

	_, err = Request{Namespace: "bogus", Identifiers: []string{"x"}, Format: FormatJSON}.URL(DefaultBaseURL)
	assert.Error(t, err)
	_, err = Request{Namespace: NamespaceCID, Format: FormatJSON}.URL(DefaultBaseURL)
	assert.Error(t, err)
	_, err = Request{Namespace: NamespaceCID, Identifiers: []string{" "}, Format: FormatJSON}.URL(DefaultBaseURL)
	assert.Error(t, err)
}

func TestForceValidProperties(t *testing.T) {
	got, err := ForceValidProperties("XLogP", "molecular_weight,MolecularFormula", "XLogP")
	require.NoError(t, err)
	assert.Equal(t, []string{"MolecularFormula", "MolecularWeight", "XLogP"}, got)

	all, err := ForceValidProperties("all")
	require.NoError(t, err)
	assert.Len(t, all, len(ValidProperties()))

	_, err = ForceValidProperties("MolecularWeight", "Colour")
	assert.ErrorContains(t, err, "Colour")

	_, err = ForceValidProperties("", " , ")
	assert.Error(t, err)
}

func TestPropertyTable(t *testing.T) {
	p, ok := LookupProperty("h_bond_donor_count")
	require.True(t, ok)
	assert.Equal(t, "HBondDonorCount", p.Name)
	assert.Equal(t, PropInt, p.Type)

	assert.Equal(t, "XStericQuadrupole3D", PropertyMap["x_steric_quadrupole_3d"])
	assert.Len(t, PropertyMap, len(ValidProperties()))

	desc := ValidPropertyDescriptions()
	assert.True(t, strings.HasPrefix(desc, "Property"))
	assert.Contains(t, desc, "Fingerprint2D")
}

func TestEnums(t *testing.T) {
	ns, err := ParseNamespace("InChIKey")
	require.NoError(t, err)
	assert.Equal(t, NamespaceInChIKey, ns)
	_, err = ParseNamespace("isbn")
	assert.Error(t, err)

	f, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", f.ContentType())
	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestParseProperties(t *testing.T) {
	var logs bytes.Buffer
	got, err := parseProperties([]byte(glucoseProperties), quietLogger(&logs))
	require.NoError(t, err)
	require.Len(t, got, 2)

	glucose := got[0]
	assert.Equal(t, 5793, glucose.CID)
	assert.Equal(t, []string{"MolecularFormula", "MolecularWeight", "XLogP", "Charge", "HBondDonorCount"}, glucose.Names)
	w, ok := glucose.Float("MolecularWeight")
	require.True(t, ok)
	assert.InDelta(t, 180.16, w, 1e-9)
	donors, ok := glucose.Int("h_bond_donor_count")
	require.True(t, ok)
	assert.Equal(t, 5, donors)
	require.NotNil(t, glucose.Formula())
	assert.True(t, glucose.Formula().Equal(formula.MustParse("C6H12O6")))
	assert.Equal(t, "-2.6", glucose.Format("XLogP"))
	assert.Equal(t, "", glucose.Format("TPSA"))

	aspirin := got[1]
	donors, ok = aspirin.Int("HBondDonorCount")
	require.True(t, ok)
	assert.Equal(t, 1, donors)
	assert.Contains(t, logs.String(), "loss of precision")

	_, err = ParseProperties([]byte(`{"PropertyTable": {"Properties": [{"MolecularWeight": 1}]}}`))
	assert.Error(t, err)
	_, err = ParseProperties([]byte(`not json`))
	assert.Error(t, err)
}

func TestGetProperties(t *testing.T) {
	var gotPath, gotUA string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(glucoseProperties))
	})

	got, err := c.GetProperties(context.Background(), []string{"5793", "2244"}, []string{"MolecularWeight", "TPSA"}, NamespaceCID)
	require.NoError(t, err)
	assert.Equal(t, "/compound/cid/5793,2244/property/MolecularWeight,TPSA/JSON", gotPath)
	assert.Equal(t, "chemtools", gotUA)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"MolecularWeight", "TPSA"}, got[0].Names)
	assert.Len(t, got[0].Values, 2)
	_, ok := got[0].Get("TPSA")
	assert.False(t, ok)

	v, err := c.GetProperty(context.Background(), "5793", "molecular_weight", NamespaceCID)
	require.NoError(t, err)
	assert.InDelta(t, 180.16, v, 1e-9)

	_, err = c.GetProperties(context.Background(), []string{"5793"}, []string{"Smell"}, NamespaceCID)
	assert.Error(t, err)
}

func TestGetPropertiesText(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/CSV"))
		w.Write([]byte("\"CID\",\"MolecularWeight\"\n5793,\"180.16\"\n"))
	})

	text, err := c.GetPropertiesText(context.Background(), []string{"glucose"}, NamespaceName, FormatCSV, "MolecularWeight")
	require.NoError(t, err)
	assert.Contains(t, text, "5793")

	_, err = c.GetPropertiesText(context.Background(), []string{"glucose"}, NamespaceName, FormatPNG, "MolecularWeight")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "nothing") {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(notFoundFault))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(badRequestFault))
	})

	_, err := c.GetProperties(context.Background(), []string{"nothing"}, []string{"XLogP"}, NamespaceName)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nothing", nf.Identifier)
	assert.Equal(t, "No CID found", nf.Message)

	_, err = c.GetProperties(context.Background(), []string{"glucose"}, []string{"XLogP"}, NamespaceName)
	var re *ResponseError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusBadRequest, re.StatusCode)
	assert.Equal(t, "PUGREST.BadRequest", re.Code)
	assert.Contains(t, re.Error(), "Unrecognized property name")
}

func TestParseRecordProperty(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProperty
		want any
		typ  PropType
	}{
		{"string", RawProperty{URN: map[string]any{"label": "IUPAC Name", "datatype": 1.0}, Value: map[string]any{"sval": "x"}}, "x", PropString},
		{"float", RawProperty{URN: map[string]any{"label": "Log P", "datatype": 7.0}, Value: map[string]any{"fval": 1.5}}, 1.5, PropFloat},
		{"int", RawProperty{URN: map[string]any{"label": "Count", "datatype": 5.0}, Value: map[string]any{"ival": 3.0}}, 3, PropInt},
		{"binary", RawProperty{URN: map[string]any{"label": "Fingerprint", "datatype": 16.0}, Value: map[string]any{"binary": "00FF"}}, "00FF", PropString},
		{"list", RawProperty{URN: map[string]any{"label": "Synonyms", "datatype": 2.0}, Value: map[string]any{"slist": []any{"a", "b"}}}, []string{"a", "b"}, PropStringList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseRecordProperty(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Value)
			assert.Equal(t, tt.typ, p.Type)
		})
	}

	_, err := ParseRecordProperty(RawProperty{URN: map[string]any{"label": "X", "datatype": 99.0}, Value: map[string]any{}})
	assert.ErrorContains(t, err, "unknown datatype")
	_, err = ParseRecordProperty(RawProperty{URN: map[string]any{"label": "X", "datatype": 1.0}, Value: map[string]any{}})
	assert.Error(t, err)
}

func TestFromCID(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/compound/cid/2244/record/JSON", r.URL.Path)
		w.Write([]byte(aspirinRecord))
	})

	cmp, err := c.FromCID(context.Background(), 2244, Record3D)
	require.NoError(t, err)
	assert.Equal(t, "record_type=3d", gotQuery)

	assert.Equal(t, 2244, cmp.CID)
	assert.Equal(t, []string{"O", "C", "H"}, cmp.Elements())
	assert.Equal(t, "3d", cmp.CoordinateType())
	assert.Equal(t, -1, cmp.Atoms[0].Charge)
	assert.Equal(t, 1.5, cmp.Atoms[1].X)
	assert.Equal(t, 1.0, cmp.Atoms[2].Z)

	require.Len(t, cmp.Bonds, 2)
	assert.Equal(t, "Bond(2, 3, QUADRUPLE)", cmp.Bonds[1].String())
	assert.Equal(t, map[string]any{"aid1": 1, "aid2": 2, "order": 2}, cmp.Bonds[0].ToMap())

	p, ok := cmp.Property("Mass", "Exact")
	require.True(t, ok)
	assert.Equal(t, "180.04225873", p.Value)
	formulaProp, ok := cmp.Property("Molecular Formula", "")
	require.True(t, ok)
	assert.Equal(t, "2.1", formulaProp.Source["version"])
	rot, ok := cmp.Property("Count", "Rotatable Bond")
	require.True(t, ok)
	assert.Equal(t, 3, rot.Value)

	_, err = c.FromCID(context.Background(), 2244, "4d")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	rows, err := ParseProperties([]byte(glucoseProperties))
	require.NoError(t, err)
	props := []string{"MolecularFormula", "MolecularWeight", "HBondDonorCount"}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, props, rows))
	assert.Equal(t,
		"CID,MolecularFormula,MolecularWeight,HBondDonorCount\n"+
			"5793,C6H12O6,180.16,5\n"+
			"2244,C9H8O4,180.16,1\n",
		buf.String())

	path := filepath.Join(t.TempDir(), "props.xlsx")
	require.NoError(t, ExportXLSX(path, props, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "MolecularFormula", header)
	cid, err := f.GetCellValue(sheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2244", cid)
	assert.Equal(t, []string{sheetName}, f.GetSheetList())
}
