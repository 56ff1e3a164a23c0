package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mwhitford/tick/internal/constants"
)

// Backend names accepted in [storage].
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Storage selects the ledger backend. Path is used by the json and sqlite
// backends; DSN by postgres (left empty, the DSN is read from the OS keyring).
type Storage struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	DSN     string `toml:"dsn"`
}

type Config struct {
	// Timezone is an IANA name, or "Local" for the system timezone. The
	// calendar day boundary follows this zone.
	Timezone string  `toml:"timezone"`
	Debug    bool    `toml:"debug"`
	Storage  Storage `toml:"storage"`
}

// Dir returns the tick config directory, creating nothing.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, constants.DefaultConfigDir), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.DefaultConfigFile), nil
}

func defaultConfig(dir string) Config {
	return Config{
		Timezone: "Local",
		Storage: Storage{
			Backend: BackendJSON,
			Path:    filepath.Join(dir, constants.DefaultStoreFile),
		},
	}
}

// LoadOrCreate reads the config file at path, writing a default one first if
// it does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendJSON
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(filepath.Dir(path), constants.DefaultStoreFile)
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Save persists the config back to disk.
func Save(path string, cfg Config) error {
	return write(path, cfg)
}
