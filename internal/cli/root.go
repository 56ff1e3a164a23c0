package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mwhitford/tick/internal/app"
	"github.com/mwhitford/tick/internal/backup"
	"github.com/mwhitford/tick/internal/config"
	"github.com/mwhitford/tick/internal/logger"
	"github.com/mwhitford/tick/internal/storage"
)

// stderr is swapped out in tests.
var stderr io.Writer = os.Stderr

// Context carries the wired application into every command.
type Context struct {
	App        *app.App
	Store      storage.Provider
	Config     config.Config
	ConfigPath string
}

// PerformAutomaticBackup creates a backup of a file-backed store and silently
// tolerates failure; the user's workflow is never interrupted for it.
func (c *Context) PerformAutomaticBackup() {
	if c.Config.Storage.Backend == config.BackendPostgres {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// warnOnSaveFailure tells the user when the last mutation could not be
// persisted. The in-memory change already happened, so the command still
// succeeds; the warning is the CLI counterpart of the TUI's storage notice.
func warnOnSaveFailure(a *app.App) {
	if err := a.SaveError(); err != nil {
		fmt.Fprintf(stderr, "Warning: storage unavailable, change not saved: %v\n", err)
	}
}
