package cli

import (
	"fmt"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	stats := ctx.App.Stats()
	if len(stats) == 0 {
		fmt.Println("No activities found.")
	}
	for _, st := range stats {
		fmt.Printf("%-24s done %-4d missed %-4d streak %d\n", st.Activity.Name, st.Done, st.Missed, st.Streak)
	}

	if n := ctx.App.OrphanedEntryCount(); n > 0 {
		fmt.Printf("\n%d historical entries belong to deleted activities (retained).\n", n)
	}
	return nil
}
