package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS ledger (
	namespace  TEXT PRIMARY KEY,
	doc        TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// SQLiteStore persists the ledger document in a single-row key-value table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := s.open(); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM ledger WHERE namespace = ?", constants.LedgerNamespace).Scan(&count); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if count > 0 {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.SaveLedger(models.NewLedger())
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) LoadLedger() (models.Ledger, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.Ledger{}, ErrNotInitialized
	}
	if err := s.open(); err != nil {
		return models.Ledger{}, err
	}

	var doc string
	err := s.db.QueryRow("SELECT doc FROM ledger WHERE namespace = ?", constants.LedgerNamespace).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ledger{}, ErrNotInitialized
	}
	if err != nil {
		return models.Ledger{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var ledger models.Ledger
	if err := json.Unmarshal([]byte(doc), &ledger); err != nil {
		return models.Ledger{}, fmt.Errorf("failed to parse ledger: %w", err)
	}
	ledger.Normalize()
	if err := ledger.Validate(); err != nil {
		return models.Ledger{}, err
	}

	return ledger, nil
}

func (s *SQLiteStore) SaveLedger(ledger models.Ledger) error {
	if err := s.open(); err != nil {
		return err
	}

	doc, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to serialize ledger: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO ledger (namespace, doc, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT (namespace) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		constants.LedgerNamespace, string(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
