package storage

import (
	"errors"

	"github.com/mwhitford/tick/internal/models"
)

var (
	// ErrNotInitialized is returned when no ledger document exists yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'tick init' first")
	// ErrUnavailable classifies transient persistence faults. Callers keep
	// operating on their in-memory ledger and surface a non-fatal notice.
	ErrUnavailable = errors.New("storage unavailable")
)

// Provider persists the ledger as one serialized document under a single
// fixed namespace. Writes replace the whole document; reads always go back to
// the backing store so out-of-band changes (such as a restored backup) are
// picked up.
type Provider interface {
	// Init creates the backing store with an empty ledger. It fails if the
	// store already exists.
	Init() error
	Close() error

	// LoadLedger re-reads the persisted document. It returns
	// ErrNotInitialized when no document exists and wraps ErrUnavailable
	// on I/O faults.
	LoadLedger() (models.Ledger, error)
	// SaveLedger replaces the persisted document.
	SaveLedger(models.Ledger) error

	// GetConfigPath returns the backing file path or connection target.
	GetConfigPath() string
}
