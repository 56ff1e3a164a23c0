package main

import (
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mwhitford/tick/internal/app"
	"github.com/mwhitford/tick/internal/cli"
	"github.com/mwhitford/tick/internal/cli/backups"
	"github.com/mwhitford/tick/internal/cli/system"
	"github.com/mwhitford/tick/internal/config"
	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/errors"
	"github.com/mwhitford/tick/internal/logger"
	"github.com/mwhitford/tick/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd  `cmd:"" help:"Initialize tick storage."`
	Tui    system.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add    cli.ActivityAddCmd    `cmd:"" help:"Add a new activity."`
	List   cli.ActivityListCmd   `cmd:"" help:"List activities."`
	Delete cli.ActivityDeleteCmd `cmd:"" help:"Delete an activity (history is retained)."`
	Done   cli.DoneCmd     `cmd:"" help:"Toggle today's mark for an activity."`
	Today  cli.TodayCmd    `cmd:"" help:"Show today's status."`
	Month  cli.MonthCmd    `cmd:"" help:"Show a month's completion chart."`
	Stats  cli.StatsCmd    `cmd:"" help:"Show per-activity totals and streaks."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage ledger backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the postgres connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage database credentials."`
	Debugger system.DebugCmd `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily habit tracker with missed-day reconciliation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := CLI.Config
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			errors.Fatal(err)
		}
	}

	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	loc := time.Local
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			errors.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
		}
	}

	store, err := storage.NewProvider(cfg)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	cliCtx := &cli.Context{
		App:        app.New(store, loc),
		Store:      store,
		Config:     cfg,
		ConfigPath: configPath,
	}

	logger.Debug("Starting", "command", ctx.Command(), "backend", cfg.Storage.Backend)
	errors.Fatal(ctx.Run(cliCtx))
}
