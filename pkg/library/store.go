// Package library stores mass spectra with their compounds in a SQLite
// database and searches them by name, formula or spectral similarity.
package library

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ChrisMcGann/chemtools/pkg/core"
	"github.com/ChrisMcGann/chemtools/pkg/formula"
)

const (
	// Date format for HeaderTable (ISO 8601)
	headerDateFormat = "2006-01-02"
	// Date format for MaintenanceTable
	maintenanceDateFormat = "2006 01 02"
	// Version written to HeaderTable
	schemaVersion = 1
)

// ErrNotFound is returned by Get for an unknown spectrum id.
var ErrNotFound = errors.New("spectrum not found")

// Entry is a stored spectrum together with its compound.
type Entry struct {
	ID          int64
	CompoundID  int64
	HillFormula string  // empty when the formula could not be parsed
	Mass        float64 // average molar mass, 0 when unknown
	ExactMass   float64 // monoisotopic mass, 0 when unknown
	Spectrum    *core.Spectrum
}

// Store is a SQLite backed spectral library.
type Store struct {
	db           *sql.DB
	path         string
	logger       *slog.Logger
	compoundStmt *sql.Stmt
	spectrumStmt *sql.Stmt
	added        int
	finalized    bool
}

// Open opens or creates the library at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{
		db:     db,
		path:   path,
		logger: logger.With("library", path),
	}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file name.
func (s *Store) Path() string {
	return s.path
}

// createTables creates the required database schema
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS CompoundTable (
		CompoundId INTEGER PRIMARY KEY AUTOINCREMENT,
		Formula TEXT,
		HillFormula TEXT,
		Name TEXT,
		Synonyms BLOB_TEXT,
		CASId TEXT,
		InChiKey TEXT,
		Mass DOUBLE,
		ExactMass DOUBLE
	);

	CREATE TABLE IF NOT EXISTS SpectrumTable (
		SpectrumId INTEGER PRIMARY KEY AUTOINCREMENT,
		CompoundId INTEGER REFERENCES CompoundTable(CompoundId),
		RetentionTime DOUBLE,
		PrecursorMass DOUBLE,
		NeutralMass DOUBLE,
		CollisionEnergy DOUBLE,
		Charge INTEGER,
		Polarity TEXT,
		InstrumentName TEXT,
		blobMass BLOB,
		blobIntensity BLOB,
		CreationDate TEXT,
		PrecursorIonType TEXT,
		Accession TEXT,
		SourceFile TEXT,
		SourceFormat TEXT,
		Metadata TEXT
	);

	CREATE INDEX IF NOT EXISTS idxCompoundName ON CompoundTable(Name COLLATE NOCASE);
	CREATE INDEX IF NOT EXISTS idxCompoundHill ON CompoundTable(HillFormula);

	CREATE TABLE IF NOT EXISTS HeaderTable (
		version INTEGER NOT NULL DEFAULT 0,
		CreationDate TEXT,
		LastModifiedDate TEXT,
		Description TEXT
	);

	CREATE TABLE IF NOT EXISTS MaintenanceTable (
		CreationDate TEXT,
		NoofCompoundsModified INTEGER,
		Description TEXT
	);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (s *Store) prepareStatements() error {
	var err error

	s.compoundStmt, err = s.db.Prepare(`
		INSERT INTO CompoundTable (
			Formula, HillFormula, Name, Synonyms, CASId, InChiKey, Mass, ExactMass
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare compound statement: %w", err)
	}

	s.spectrumStmt, err = s.db.Prepare(`
		INSERT INTO SpectrumTable (
			CompoundId, RetentionTime, PrecursorMass, NeutralMass, CollisionEnergy,
			Charge, Polarity, InstrumentName, blobMass, blobIntensity,
			CreationDate, PrecursorIonType, Accession, SourceFile, SourceFormat,
			Metadata
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare spectrum statement: %w", err)
	}

	return nil
}

// Add validates spec and stores it with its compound. Compound masses are
// derived from the formula; a formula that does not parse is stored as
// written with unknown masses. A missing accession is replaced by a UUID.
// Add returns the new spectrum id.
func (s *Store) Add(spec *core.Spectrum) (int64, error) {
	if s.finalized {
		return 0, errors.New("library is closed")
	}

	// Ensure peaks are sorted
	if !spec.ArePeaksSorted() {
		spec.SortPeaks()
	}
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	var hill string
	var mass, exact any
	if spec.Formula != "" {
		f, err := formula.Parse(spec.Formula)
		if err != nil {
			s.logger.Warn("storing spectrum with unparsed formula", "name", spec.Name, "formula", spec.Formula, "error", err)
		} else {
			hill = f.Hill()
			mass = f.Mass()
			exact = f.ExactMass()
		}
	}

	if spec.Accession == "" {
		spec.Accession = uuid.New().String()
	}

	meta, err := json.Marshal(spec.Metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to encode metadata: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Stmt(s.compoundStmt).Exec(
		spec.Formula,           // Formula
		hill,                   // HillFormula
		spec.Name,              // Name
		spec.Metadata["Synon"], // Synonyms
		spec.CAS,               // CASId
		spec.InChIKey,          // InChiKey
		mass,                   // Mass
		exact,                  // ExactMass
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert compound: %w", err)
	}
	compoundID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	// Encode peaks as binary blobs (little-endian float64)
	mzBlob := encodeFloat64s(spec.MZs())
	intBlob := encodeFloat64s(spec.Intensities())

	res, err = tx.Stmt(s.spectrumStmt).Exec(
		compoundID,                          // CompoundId
		nullableFloat(spec.RetentionTime),   // RetentionTime
		spec.PrecursorMZ,                    // PrecursorMass
		exact,                               // NeutralMass
		nullableFloat(spec.CollisionEnergy), // CollisionEnergy
		spec.Charge,                         // Charge
		polarity(spec.IonMode),              // Polarity
		spec.Instrument,                     // InstrumentName
		mzBlob,                              // blobMass
		intBlob,                             // blobIntensity
		time.Now().Format(headerDateFormat), // CreationDate
		spec.PrecursorType,                  // PrecursorIonType
		spec.Accession,                      // Accession
		spec.SourceFile,                     // SourceFile
		spec.SourceFormat,                   // SourceFormat
		string(meta),                        // Metadata
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert spectrum: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit spectrum: %w", err)
	}

	s.added++
	s.logger.Debug("added spectrum", "id", id, "name", spec.Name, "peaks", len(spec.Peaks))
	return id, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func polarity(ionMode string) string {
	switch ionMode {
	case "P":
		return "+"
	case "N":
		return "-"
	}
	return ""
}

func ionMode(polarity string) string {
	switch polarity {
	case "+":
		return "P"
	case "-":
		return "N"
	}
	return ""
}

// encodeFloat64s encodes values as a little-endian float64 blob
func encodeFloat64s(values []float64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// decodeFloat64s is the inverse of encodeFloat64s.
func decodeFloat64s(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("blob length %d is not a multiple of 8", len(buf))
	}
	out := make([]float64, len(buf)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return out, nil
}

// Added returns the number of spectra added since Open.
func (s *Store) Added() int {
	return s.added
}

// Finalize writes the header and maintenance tables and closes the database
func (s *Store) Finalize() error {
	if s.finalized {
		return nil
	}
	s.finalized = true

	now := time.Now()
	var existing int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM HeaderTable`).Scan(&existing); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if existing == 0 {
		_, err := s.db.Exec(`
			INSERT INTO HeaderTable (version, CreationDate, LastModifiedDate, Description)
			VALUES (?, ?, ?, ?)
		`, schemaVersion, now.Format(headerDateFormat), now.Format(headerDateFormat), "chemtools spectral library")
		if err != nil {
			return fmt.Errorf("failed to insert header: %w", err)
		}
	} else {
		_, err := s.db.Exec(`UPDATE HeaderTable SET LastModifiedDate = ?`, now.Format(headerDateFormat))
		if err != nil {
			return fmt.Errorf("failed to update header: %w", err)
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO MaintenanceTable (CreationDate, NoofCompoundsModified, Description)
		VALUES (?, ?, ?)
	`, now.Format(maintenanceDateFormat), s.added, "import")
	if err != nil {
		return fmt.Errorf("failed to insert maintenance: %w", err)
	}

	return s.close()
}

func (s *Store) close() error {
	s.finalized = true

	// Close prepared statements
	if s.compoundStmt != nil {
		s.compoundStmt.Close()
	}
	if s.spectrumStmt != nil {
		s.spectrumStmt.Close()
	}

	// Close database
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Close finalizes the library when spectra were added, otherwise it only
// closes the database.
func (s *Store) Close() error {
	if s.finalized {
		return nil
	}
	if s.added > 0 {
		return s.Finalize()
	}
	return s.close()
}
