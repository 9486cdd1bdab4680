package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/hgurn/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Ensure Store implements the interface.
var _ driven.ConcordanceStore = (*Store)(nil)

// Store is a SQLite-backed concordance store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the concordance database in dataDir.
// If dataDir is empty, defaults to ~/.hgurn/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".hgurn", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "concordance.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every .up.sql migration newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_concordance.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores the records of a batch run in one transaction.
func (s *Store) Save(ctx context.Context, records []domain.Concordance) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO concordance (run_id, identifier, dataset, urn, url, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range records {
		_, err := stmt.ExecContext(ctx, c.RunID, c.Identifier, c.Dataset, c.URN, c.URL, c.Error,
			c.CreatedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("saving concordance for %q: %w", c.Identifier, err)
		}
	}

	return tx.Commit()
}

// FindByURN returns every stored record that normalised to urn, oldest first.
func (s *Store) FindByURN(ctx context.Context, urn string) ([]domain.Concordance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, identifier, dataset, urn, url, error, created_at
		FROM concordance WHERE urn = ?
		ORDER BY created_at, seq
	`, urn)
	if err != nil {
		return nil, fmt.Errorf("querying concordance: %w", err)
	}
	defer rows.Close()

	return scanConcordance(rows)
}

// ListByRun returns the records of one run in input order.
func (s *Store) ListByRun(ctx context.Context, runID string) ([]domain.Concordance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, identifier, dataset, urn, url, error, created_at
		FROM concordance WHERE run_id = ?
		ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying concordance: %w", err)
	}
	defer rows.Close()

	return scanConcordance(rows)
}

func scanConcordance(rows *sql.Rows) ([]domain.Concordance, error) {
	result := make([]domain.Concordance, 0)
	for rows.Next() {
		var (
			c         domain.Concordance
			createdAt string
		)
		if err := rows.Scan(&c.RunID, &c.Identifier, &c.Dataset, &c.URN, &c.URL, &c.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning concordance: %w", err)
		}

		t, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		c.CreatedAt = t
		result = append(result, c)
	}
	return result, rows.Err()
}
