package system

import (
	"encoding/json"
	"fmt"

	"github.com/mwhitford/tick/internal/cli"
)

type DebugCmd struct {
	Paths  *DebugPathsCmd  `cmd:"" help:"Show config and store paths."`
	Cursor *DebugCursorCmd `cmd:"" help:"Show the reconciliation cursor and entry counts."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump the full ledger as JSON."`
}

type DebugPathsCmd struct{}

func (c *DebugPathsCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{
		"config": ctx.ConfigPath,
		"store":  ctx.Store.GetConfigPath(),
	})
}

type DebugCursorCmd struct{}

func (c *DebugCursorCmd) Run(ctx *cli.Context) error {
	led, err := ctx.Store.LoadLedger()
	if err != nil {
		return err
	}

	entries := 0
	for _, days := range led.StatusByDate {
		entries += len(days)
	}
	return printJSON(map[string]interface{}{
		"lastClosed": string(led.LastClosed),
		"activities": len(led.Activities),
		"entries":    entries,
		"orphans":    len(led.OrphanedIDs()),
	})
}

type DebugDumpCmd struct{}

func (c *DebugDumpCmd) Run(ctx *cli.Context) error {
	led, err := ctx.Store.LoadLedger()
	if err != nil {
		return err
	}
	return printJSON(led)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
