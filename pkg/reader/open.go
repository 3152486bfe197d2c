// Package reader opens spectral library files and picks a streaming reader
// for their format. Compressed files (.gz, .zst) are decompressed on the fly.
package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/ChrisMcGann/chemtools/pkg/core"
	"github.com/ChrisMcGann/chemtools/pkg/reader/mgf"
	"github.com/ChrisMcGann/chemtools/pkg/reader/msp"
)

// Format identifies a spectral library file format.
type Format string

const (
	FormatUnknown Format = ""
	FormatMSP     Format = "msp"
	FormatMGF     Format = "mgf"
)

// SpectrumReader is implemented by the streaming format readers.
type SpectrumReader interface {
	Next() bool
	Spectrum() *core.Spectrum
	Err() error
}

// compressionExt returns the compression suffix of path, if any.
func compressionExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".zst":
		return ext
	}
	return ""
}

// DetectFormat guesses the format from the file name, ignoring a
// compression suffix.
func DetectFormat(path string) Format {
	base := strings.ToLower(path)
	if ext := compressionExt(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	switch filepath.Ext(base) {
	case ".msp":
		return FormatMSP
	case ".mgf":
		return FormatMGF
	}
	return FormatUnknown
}

// zstdReadCloser adapts a zstd decoder, whose Close has no error result.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// multiCloser closes the decompressor before the file.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens path for reading, decompressing .gz and .zst files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch compressionExt(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
		}
		return &multiCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening zstd stream %s: %w", path, err)
		}
		z := zstdReadCloser{zr}
		return &multiCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	}
	return f, nil
}

// NewReader returns the streaming reader for format.
func NewReader(r io.Reader, format Format) (SpectrumReader, error) {
	switch format {
	case FormatMSP:
		return msp.NewReader(r), nil
	case FormatMGF:
		return mgf.NewReader(r), nil
	}
	return nil, fmt.Errorf("unsupported spectrum format %q", format)
}

// File is an open spectral library file.
type File struct {
	SpectrumReader
	io.Closer
	Path   string
	Format Format
}

// OpenFile opens path and returns a reader for its detected format.
// Each spectrum's SourceFile is set to path.
func OpenFile(path string) (*File, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("cannot detect spectrum format of %s", path)
	}
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	sr, err := NewReader(rc, format)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return &File{SpectrumReader: &sourceTagger{sr, path}, Closer: rc, Path: path, Format: format}, nil
}

type sourceTagger struct {
	SpectrumReader
	path string
}

func (s *sourceTagger) Spectrum() *core.Spectrum {
	spec := s.SpectrumReader.Spectrum()
	if spec != nil {
		spec.SourceFile = s.path
	}
	return spec
}

// ReadAll reads every spectrum from path.
func ReadAll(path string) ([]*core.Spectrum, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []*core.Spectrum
	for f.Next() {
		out = append(out, f.Spectrum())
	}
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}
