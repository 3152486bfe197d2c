package library

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gonum.org/v1/gonum/stat"

	"github.com/ChrisMcGann/chemtools/pkg/core"
	"github.com/ChrisMcGann/chemtools/pkg/formula"
	"github.com/ChrisMcGann/chemtools/pkg/similarity"
)

const selectEntry = `
	SELECT s.SpectrumId, c.CompoundId, c.Name, c.Formula, c.HillFormula, c.CASId,
		c.InChiKey, c.Mass, c.ExactMass, s.RetentionTime, s.PrecursorMass,
		s.CollisionEnergy, s.Charge, s.Polarity, s.InstrumentName, s.blobMass,
		s.blobIntensity, s.PrecursorIonType, s.Accession, s.SourceFile,
		s.SourceFormat, s.Metadata
	FROM SpectrumTable s JOIN CompoundTable c ON s.CompoundId = c.CompoundId`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		e                              Entry
		name, form, hill, cas, inchi   sql.NullString
		pol, instrument, ptype, acc    sql.NullString
		srcFile, srcFormat, meta       sql.NullString
		mass, exact, rt, precursor, ce sql.NullFloat64
		charge                         sql.NullInt64
		mzBlob, intBlob                []byte
	)
	err := row.Scan(&e.ID, &e.CompoundID, &name, &form, &hill, &cas, &inchi, &mass,
		&exact, &rt, &precursor, &ce, &charge, &pol, &instrument, &mzBlob, &intBlob,
		&ptype, &acc, &srcFile, &srcFormat, &meta)
	if err != nil {
		return nil, err
	}

	mzs, err := decodeFloat64s(mzBlob)
	if err != nil {
		return nil, fmt.Errorf("spectrum %d m/z: %w", e.ID, err)
	}
	intensities, err := decodeFloat64s(intBlob)
	if err != nil {
		return nil, fmt.Errorf("spectrum %d intensities: %w", e.ID, err)
	}
	spec, err := core.NewSpectrum(mzs, intensities)
	if err != nil {
		return nil, fmt.Errorf("spectrum %d: %w", e.ID, err)
	}

	spec.Name = name.String
	spec.Formula = form.String
	spec.CAS = cas.String
	spec.InChIKey = inchi.String
	spec.PrecursorMZ = precursor.Float64
	spec.Charge = int(charge.Int64)
	spec.IonMode = ionMode(pol.String)
	spec.Instrument = instrument.String
	spec.PrecursorType = ptype.String
	spec.Accession = acc.String
	spec.SourceFile = srcFile.String
	spec.SourceFormat = srcFormat.String
	if rt.Valid {
		v := rt.Float64
		spec.RetentionTime = &v
	}
	if ce.Valid {
		v := ce.Float64
		spec.CollisionEnergy = &v
	}
	if meta.Valid && meta.String != "" && meta.String != "null" {
		if err := json.Unmarshal([]byte(meta.String), &spec.Metadata); err != nil {
			return nil, fmt.Errorf("spectrum %d metadata: %w", e.ID, err)
		}
	}

	e.HillFormula = hill.String
	e.Mass = mass.Float64
	e.ExactMass = exact.Float64
	e.Spectrum = spec
	return &e, nil
}

// Get returns the spectrum with the given id.
func (s *Store) Get(id int64) (*Entry, error) {
	e, err := scanEntry(s.db.QueryRow(selectEntry+` WHERE s.SpectrumId = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, err
}

// Count returns the number of stored spectra.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM SpectrumTable`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count spectra: %w", err)
	}
	return n, nil
}

func (s *Store) query(where string, args ...any) ([]*Entry, error) {
	var out []*Entry
	err := s.each(where, args, func(e *Entry) error {
		out = append(out, e)
		return nil
	})
	return out, err
}

func (s *Store) each(where string, args []any, fn func(*Entry) error) error {
	rows, err := s.db.Query(selectEntry+" "+where+" ORDER BY s.SpectrumId", args...)
	if err != nil {
		return fmt.Errorf("failed to query spectra: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Each calls fn for every stored spectrum in id order. Iteration stops at
// the first error returned by fn.
func (s *Store) Each(fn func(*Entry) error) error {
	return s.each("", nil, fn)
}

// FindByName returns the spectra whose compound name contains name,
// ignoring case.
func (s *Store) FindByName(name string) ([]*Entry, error) {
	pattern := "%" + strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(name) + "%"
	return s.query(`WHERE c.Name LIKE ? ESCAPE '\'`, pattern)
}

// FindByFormula returns the spectra whose compound has the same Hill
// formula as f. f may be written in any order.
func (s *Store) FindByFormula(f string) ([]*Entry, error) {
	parsed, err := formula.Parse(f)
	if err != nil {
		return nil, err
	}
	return s.query(`WHERE c.HillFormula = ?`, parsed.Hill())
}

// Hit is one library spectrum scored against a query.
type Hit struct {
	Entry *Entry
	Score similarity.Score
}

// SearchResult holds the best hits and statistics over all scored spectra.
type SearchResult struct {
	Hits    []Hit
	Scored  int     // spectra scored against the query
	Skipped int     // spectra with no peak of positive intensity
	Mean    float64 // mean forward score over all scored spectra
	StdDev  float64
}

// Search scores every stored spectrum against query and returns the limit
// best hits ordered by forward score, then reverse score. A limit <= 0
// returns all hits. Ambiguous alignments are logged per spectrum at debug
// level.
func (s *Store) Search(query *core.Spectrum, opts similarity.Options, limit int) (*SearchResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if base, ok := query.BasePeak(); !ok || base.Intensity <= 0 {
		return nil, fmt.Errorf("query: %w", similarity.ErrEmptySpectrum)
	}
	logger := opts.Logger
	if logger == nil {
		logger = s.logger
	}
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	res := &SearchResult{}
	var scores []float64
	err := s.Each(func(e *Entry) error {
		score, al, err := similarity.Compare(query, e.Spectrum, opts)
		if errors.Is(err, similarity.ErrEmptySpectrum) {
			res.Skipped++
			logger.Debug("skipping spectrum", "id", e.ID, "name", e.Spectrum.Name, "error", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("scoring spectrum %d: %w", e.ID, err)
		}
		if al.Ambiguous {
			logger.Debug("m/z tolerance is set too high", "id", e.ID, "name", e.Spectrum.Name, "tolerance", opts.Tolerance)
		}
		res.Hits = append(res.Hits, Hit{Entry: e, Score: score})
		scores = append(scores, score.Forward)
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Scored = len(scores)
	if len(scores) > 0 {
		res.Mean, res.StdDev = stat.MeanStdDev(scores, nil)
		if len(scores) == 1 {
			res.StdDev = 0
		}
	}

	sort.SliceStable(res.Hits, func(i, j int) bool {
		a, b := res.Hits[i].Score, res.Hits[j].Score
		if a.Forward != b.Forward {
			return a.Forward > b.Forward
		}
		return a.Reverse > b.Reverse
	})
	if limit > 0 && len(res.Hits) > limit {
		res.Hits = res.Hits[:limit]
	}
	return res, nil
}
