package constants

const (
	AppName            = "tick"
	Version            = "v0.3.0"
	DefaultKeyringUser = "database-connection"

	// DefaultConfigDir is the directory (under $HOME) holding config, logs and data
	DefaultConfigDir = ".config/tick"
	// DefaultConfigFile is the TOML config file name inside the config directory
	DefaultConfigFile = "config.toml"
	// DefaultStoreFile is the default JSON ledger file name inside the config directory
	DefaultStoreFile = "tick.json"

	// LedgerNamespace is the fixed key under which the serialized ledger document
	// is stored in the key-value backends
	LedgerNamespace = "tick/ledger/v1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the format accepted by the month command (YYYY-MM)
	MonthFormat = "2006-01"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tick-"

	// ChartScaleFloor is the minimum y-axis maximum for the month chart, so
	// small counts are never visually saturated
	ChartScaleFloor = 4
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateActivities SessionState = iota
	StateChart
	StateAddActivity
	StateConfirmDelete
)
