package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceMSP = "../../../pkg/reader/msp/testdata/reference.msp"

// execute runs the CLI with an isolated home directory and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFormulaCommand(t *testing.T) {
	out, err := execute(t, "formula", "C6H6", "--json")
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "C6H6", reports[0]["hill"])
	assert.Equal(t, "CH", reports[0]["empirical"])
	assert.InDelta(t, 78.04695, reports[0]["exact_mass"], 1e-4)
	assert.InDelta(t, 78.11184, reports[0]["mass"], 1e-4)

	out, err = execute(t, "formula", "C6H6", "--adduct", "[M+H]+", "--render", "latex")
	require.NoError(t, err)
	assert.Contains(t, out, "[M+H]+ m/z:")
	assert.Contains(t, out, "79.05423")
	assert.Contains(t, out, "C_{6}H_{6}")
	assert.Contains(t, out, "Composition:")

	_, err = execute(t, "formula", "C6H6", "--render", "braille")
	assert.Error(t, err)

	_, err = execute(t, "formula", "C6H6+", "--adduct", "[M+H]+")
	assert.Error(t, err, "adducts of an ion")

	_, err = execute(t, "formula", "C6H6", "--adduct", "[M+Xx]+")
	assert.Error(t, err)

	_, err = execute(t, "formula", "Xy2")
	assert.Error(t, err)
}

func TestFormulaPeptideAndAdductCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "adducts.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name,massshift,charge\n[M+Cs]+,132.904905,1\n"), 0644))

	out, err := execute(t, "formula", "--peptide", "GG", "--adduct-csv", csvPath, "--adduct", "[M+Cs]+", "--json")
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "C4H8N2O3", reports[0]["hill"])
	adducts, ok := reports[0]["adducts"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, adducts, "[M+Cs]+")
}

func TestElementCommand(t *testing.T) {
	out, err := execute(t, "element", "Fe", "carbon", "--json")
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.EqualValues(t, 26, reports[0]["number"])
	assert.Equal(t, "C", reports[1]["symbol"])
	assert.EqualValues(t, 12, reports[1]["nominal_mass"])

	out, err = execute(t, "element", "O")
	require.NoError(t, err)
	assert.Contains(t, out, "Oxygen (O)")
	assert.Contains(t, out, "Isotopes:")

	out, err = execute(t, "element")
	require.NoError(t, err)
	assert.Contains(t, out, "Hydrogen")

	_, err = execute(t, "element", "Unobtainium")
	assert.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", referenceMSP, referenceMSP)
	require.NoError(t, err)
	assert.Contains(t, out, "Top:    Diphenylamine")
	assert.Contains(t, out, "Forward score: 1.0000")

	plotPath := filepath.Join(t.TempDir(), "mirror.png")
	out, err = execute(t, "compare", referenceMSP, referenceMSP,
		"--bottom-name", "ethyl centralite", "--alignment", "--plot", plotPath, "--tolerance", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Bottom: Ethyl centralite")
	assert.Contains(t, out, "intensity.top")
	assert.NotContains(t, out, "Forward score: 1.0000")
	_, err = os.Stat(plotPath)
	assert.NoError(t, err)

	out, err = execute(t, "compare", referenceMSP, referenceMSP, "--bin-width", "1", "--json")
	require.NoError(t, err)
	var res struct {
		Score struct {
			Forward float64 `json:"forward"`
		} `json:"score"`
		Binned *float64 `json:"binned"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 1.0, res.Score.Forward, 1e-9)
	require.NotNil(t, res.Binned)
	assert.InDelta(t, 1.0, *res.Binned, 1e-9)

	_, err = execute(t, "compare", referenceMSP, referenceMSP, "--top-name", "missing")
	assert.Error(t, err)

	_, err = execute(t, "compare", referenceMSP, referenceMSP, "--mz-threshold", "-1")
	assert.Error(t, err)
}

func TestLibraryCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lib.db")

	out, err := execute(t, "library", "import", "--in", referenceMSP, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported: 2 spectra")

	out, err = execute(t, "library", "search", "--db", db, "--query", referenceMSP,
		"--name", "Ethyl centralite", "--limit", "1", "--json")
	require.NoError(t, err)
	var res struct {
		Scored int `json:"scored"`
		Hits   []struct {
			Name    string  `json:"name"`
			Formula string  `json:"formula"`
			Forward float64 `json:"forward"`
		} `json:"hits"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Scored)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "Ethyl centralite", res.Hits[0].Name)
	assert.Equal(t, "C17H20N2O", res.Hits[0].Formula)
	assert.Greater(t, res.Hits[0].Forward, 0.99)

	out, err = execute(t, "library", "search", "--db", db, "--query", referenceMSP)
	require.NoError(t, err)
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "Diphenylamine")

	out, err = execute(t, "library", "info", "--db", db, "--name", "centralite")
	require.NoError(t, err)
	assert.Contains(t, out, "Spectra: 2")
	assert.Contains(t, out, "Matches: 1")

	out, err = execute(t, "library", "info", "--db", db, "--formula", "C12H11N")
	require.NoError(t, err)
	assert.Contains(t, out, "Diphenylamine")

	_, err = execute(t, "library", "import", "--in", filepath.Join(t.TempDir(), "*.msp"), "--db", db)
	assert.Error(t, err, "pattern without matches")
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.msp", "sub/b.msp", "sub/deeper/c.mgf", "notes.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	files, err := expandInputs([]string{
		filepath.Join(dir, "**", "*.msp"),
		filepath.Join(dir, "a.msp"),
		filepath.Join(dir, "**", "*.mgf"),
	})
	require.NoError(t, err)
	assert.Len(t, files, 3)
	for _, f := range files {
		assert.False(t, strings.HasSuffix(f, ".txt"))
	}
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "chemtools.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("similarity:\n  tolerance: 0.3\n"), 0644))

	out, err := execute(t, "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "tolerance: 0.3")
	assert.Contains(t, out, "pubchem.ncbi.nlm.nih.gov/rest/pug")

	out, err = execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(".config", "chemtools", "config.yaml"))

	require.NoError(t, os.WriteFile(cfgPath, []byte("similarity:\n  baseline: 200\n"), 0644))
	_, err = execute(t, "config", "show", "--config", cfgPath)
	assert.Error(t, err)
}

func TestPubChemCommands(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/CSV"):
			w.Write([]byte("\"CID\",\"MolecularFormula\"\n2519,\"C8H10N4O2\"\n"))
		case strings.Contains(r.URL.Path, "/property/"):
			w.Write([]byte(`{"PropertyTable":{"Properties":[{"CID":2519,"MolecularFormula":"C8H10N4O2","MolecularWeight":"194.19"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"Fault":{"Code":"PUGREST.NotFound","Message":"No CID found"}}`))
		}
	}))
	defer server.Close()

	out, err := execute(t, "pubchem", "properties", "caffeine", "--pubchem-url", server.URL,
		"--properties", "MolecularFormula,MolecularWeight")
	require.NoError(t, err)
	assert.Contains(t, out, "2519")
	assert.Contains(t, out, "C8H10N4O2")
	assert.Contains(t, out, "194.19")

	xlsx := filepath.Join(t.TempDir(), "props.xlsx")
	out, err = execute(t, "pubchem", "properties", "caffeine", "--pubchem-url", server.URL,
		"--properties", "MolecularFormula,MolecularWeight", "--format", "csv", "--xlsx", xlsx)
	require.NoError(t, err)
	assert.Contains(t, out, "CID,MolecularFormula,MolecularWeight")
	_, err = os.Stat(xlsx)
	assert.NoError(t, err)

	out, err = execute(t, "pubchem", "properties", "caffeine", "--pubchem-url", server.URL,
		"--properties", "MolecularFormula", "--raw", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2519,\"C8H10N4O2\"")

	_, err = execute(t, "pubchem", "properties", "caffeine", "--pubchem-url", server.URL, "--properties", "Colour")
	assert.Error(t, err)

	_, err = execute(t, "pubchem", "record", "1", "--pubchem-url", server.URL)
	assert.Error(t, err)

	out, err = execute(t, "pubchem", "list-properties")
	require.NoError(t, err)
	assert.Contains(t, out, "MolecularWeight")
}
