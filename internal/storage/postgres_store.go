package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/models"
)

// ErrEmbeddedCredentials is returned when a connection string carries a
// password inline. Credentials belong in the OS keyring, environment
// variables, or .pgpass.
var ErrEmbeddedCredentials = errors.New("connection string contains embedded credentials")

const postgresSchema = `
CREATE TABLE IF NOT EXISTS ledger (
	namespace  TEXT PRIMARY KEY,
	doc        TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// ValidateConnString checks a PostgreSQL connection string for inline
// credentials. It returns ErrEmbeddedCredentials when a password is embedded.
func ValidateConnString(connStr string) (bool, error) {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("invalid connection string: %w", err)
		}
		if u.User != nil {
			if _, has := u.User.Password(); has {
				return false, ErrEmbeddedCredentials
			}
		}
		return true, nil
	}
	for _, field := range strings.Fields(connStr) {
		if strings.HasPrefix(field, "password=") {
			return false, ErrEmbeddedCredentials
		}
	}
	return true, nil
}

// PostgresStore persists the ledger document in a single-row key-value table
// on a PostgreSQL server.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM ledger WHERE namespace = $1", constants.LedgerNamespace).Scan(&count); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if count > 0 {
		return errors.New("storage already initialized on this database")
	}

	return s.SaveLedger(models.NewLedger())
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *PostgresStore) LoadLedger() (models.Ledger, error) {
	if err := s.open(); err != nil {
		return models.Ledger{}, err
	}

	var doc string
	err := s.db.QueryRow("SELECT doc FROM ledger WHERE namespace = $1", constants.LedgerNamespace).Scan(&doc)
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

func (s *PostgresStore) SaveLedger(ledger models.Ledger) error {
	if err := s.open(); err != nil {
		return err
	}

	doc, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to serialize ledger: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO ledger (namespace, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (namespace) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
		constants.LedgerNamespace, string(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return redactConnStr(s.connStr)
}

func redactConnStr(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
			return u.String()
		}
	}
	return connStr
}
