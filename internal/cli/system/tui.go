package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitford/tick/internal/cli"
	"github.com/mwhitford/tick/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	// Focus reporting drives reconciliation when the terminal regains
	// foreground after being backgrounded.
	p := tea.NewProgram(tui.NewModel(ctx.App), tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
