// Package pubchem is a client for the PubChem PUG REST service. It fetches
// compound properties and full compound records.
package pubchem

import (
	"fmt"
	"strings"
)

// Namespace is the kind of identifier used to look up a compound.
type Namespace string

const (
	NamespaceCID              Namespace = "cid"
	NamespaceName             Namespace = "name"
	NamespaceSMILES           Namespace = "smiles"
	NamespaceInChI            Namespace = "inchi"
	NamespaceInChIKey         Namespace = "inchikey"
	NamespaceFormula          Namespace = "formula"
	NamespaceSDF              Namespace = "sdf"
	NamespaceFastIdentity     Namespace = "fastidentity"
	NamespaceFastSimilarity2D Namespace = "fastsimilarity_2d"
	NamespaceFastSubstructure Namespace = "fastsubstructure"
	NamespaceListKey          Namespace = "listkey"
)

var namespaces = []Namespace{
	NamespaceCID, NamespaceName, NamespaceSMILES, NamespaceInChI,
	NamespaceInChIKey, NamespaceFormula, NamespaceSDF, NamespaceFastIdentity,
	NamespaceFastSimilarity2D, NamespaceFastSubstructure, NamespaceListKey,
}

// Valid reports whether n is a namespace PubChem accepts.
func (n Namespace) Valid() bool {
	for _, v := range namespaces {
		if n == v {
			return true
		}
	}
	return false
}

func (n Namespace) String() string {
	return string(n)
}

// ParseNamespace accepts a namespace in any case.
func ParseNamespace(s string) (Namespace, error) {
	n := Namespace(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", fmt.Errorf("unknown PubChem namespace %q", s)
	}
	return n, nil
}

// Format is an output format of the REST service.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatXML  Format = "XML"
	FormatCSV  Format = "CSV"
	FormatTXT  Format = "TXT"
	FormatSDF  Format = "SDF"
	FormatPNG  Format = "PNG"
)

var contentTypes = map[Format]string{
	FormatJSON: "application/json",
	FormatXML:  "application/xml",
	FormatCSV:  "text/csv",
	FormatTXT:  "text/plain",
	FormatSDF:  "chemical/x-mdl-sdfile",
	FormatPNG:  "image/png",
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	_, ok := contentTypes[f]
	return ok
}

func (f Format) String() string {
	return string(f)
}

// ContentType returns the MIME type PubChem serves for f.
func (f Format) ContentType() string {
	return contentTypes[f]
}

// ParseFormat accepts a format in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown PubChem format %q", s)
	}
	return f, nil
}
