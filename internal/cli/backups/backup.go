package backups

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mwhitford/tick/internal/backup"
	"github.com/mwhitford/tick/internal/cli"
	"github.com/mwhitford/tick/internal/config"
)

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if ctx.Config.Storage.Backend == config.BackendPostgres {
		return nil, errors.New("file backups are not supported for the postgres backend; use pg_dump")
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	infos, err := mgr.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %s  %d bytes\n", info.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(info.Path), info.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	if err := mgr.Restore(filepath.Join(mgr.BackupDir(), c.Name)); err != nil {
		return err
	}
	fmt.Printf("Restored backup: %s\n", c.Name)
	fmt.Println("The restored state will be picked up on the next run.")
	return nil
}
