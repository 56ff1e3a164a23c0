package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwhitford/tick/internal/config"
	"github.com/mwhitford/tick/internal/keyring"
)

// NewProvider builds the ledger store described by the config. For the
// postgres backend the DSN comes from the config or, when unset, from the OS
// keyring.
func NewProvider(cfg config.Config) (Provider, error) {
	switch cfg.Storage.Backend {
	case config.BackendJSON, "":
		return NewJSONStore(ExpandPath(cfg.Storage.Path)), nil
	case config.BackendSQLite:
		return NewSQLiteStore(ExpandPath(cfg.Storage.Path)), nil
	case config.BackendPostgres:
		dsn := cfg.Storage.DSN
		if dsn == "" {
			var err error
			dsn, err = keyring.GetConnectionString()
			if err != nil {
				if errors.Is(err, keyring.ErrNotFound) {
					return nil, errors.New("no postgres DSN configured; set storage.dsn or use 'tick keyring set'")
				}
				return nil, err
			}
		}
		if _, err := ValidateConnString(dsn); err != nil {
			if errors.Is(err, ErrEmbeddedCredentials) && cfg.Storage.DSN != "" {
				return nil, fmt.Errorf("config DSN %w; move it to the OS keyring with 'tick keyring set'", ErrEmbeddedCredentials)
			}
			// DSNs from the keyring may embed credentials; the keyring is
			// an acceptable place for them.
			if !errors.Is(err, ErrEmbeddedCredentials) {
				return nil, err
			}
		}
		return NewPostgresStore(dsn), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
