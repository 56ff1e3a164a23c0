package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwhitford/tick/internal/models"
)

// JSONStore persists the ledger as a single pretty-printed JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.NewLedger())
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) LoadLedger() (models.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Ledger{}, ErrNotInitialized
		}
		return models.Ledger{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var ledger models.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return models.Ledger{}, fmt.Errorf("failed to parse ledger: %w", err)
	}
	ledger.Normalize()
	if err := ledger.Validate(); err != nil {
		return models.Ledger{}, err
	}

	return ledger, nil
}

func (s *JSONStore) SaveLedger(ledger models.Ledger) error {
	return s.write(ledger)
}

func (s *JSONStore) write(ledger models.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize ledger: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
