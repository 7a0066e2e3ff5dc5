package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/tasteops/mealweek/internal/logging"
	"github.com/tasteops/mealweek/pkg/types"
)

// Timestamp layouts as SQLite writes them. CURRENT_TIMESTAMP produces
// dateTimeLayout in UTC; week dates are bare dates.
const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// Store is the single handle to the embedded database. One Store per
// process; the credential, repository, and reporting operations all share
// its connection. Conflicting writes are serialized by SQLite itself,
// there is no extra locking layer here.
type Store struct {
	db     *sql.DB
	cfg    types.Config
	logger *zap.Logger
}

// Open creates the data directory and database file if needed, enables
// foreign key enforcement, initializes the schema, and seeds the default
// admin account on a cold database. Safe to call on every process start.
// Returns ErrStorageUnavailable if the file cannot be opened or created.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %v", types.ErrStorageUnavailable, err)
	}

	dbPath := filepath.Join(cfg.DataDir, cfg.DBFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStorageUnavailable, err)
	}

	// Single connection: FK enforcement is per-connection, and the store
	// serves one small business with no concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling foreign keys: %v", types.ErrStorageUnavailable, err)
	}

	s := &Store{db: db, cfg: cfg, logger: logging.L().Named("store")}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.SeedDefaultAdmin(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("store opened", zap.String("path", dbPath))
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.logger.Debug("closing store")
	return s.db.Close()
}

// DataDir returns the directory the store was opened against.
func (s *Store) DataDir() string {
	return s.cfg.DataDir
}

// initSchema creates all tables if absent. Existing tables and their data
// are left untouched.
func (s *Store) initSchema() error {
	for _, ddl := range schemaDDL {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("%w: creating tables: %v", types.ErrStorageUnavailable, err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on
// the given column (as "table.column"). The modernc driver reports these
// as plain errors, so the message text is the only signal.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}

// nullString maps "" to NULL so optional text columns with UNIQUE
// constraints never collide on the empty string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullDate formats an optional time as a DATE column value.
func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(dateLayout), Valid: true}
}

// parseNullDate reads a DATE column back into an optional time.
func parseNullDate(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, ns.String)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", ns.String, err)
	}
	return &t, nil
}

// nullID maps an optional foreign key to a NULLable column value.
func nullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
