package cli

import (
	"fmt"

	"github.com/mwhitford/tick/internal/models"
)

type ActivityAddCmd struct {
	Name string `arg:"" help:"Activity name."`
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	act, ok := ctx.App.AddActivity(c.Name)
	if !ok {
		// Blank names are a silent no-op, not a fault.
		return nil
	}
	fmt.Printf("Added activity: %s\n", act.Name)
	warnOnSaveFailure(ctx.App)
	return nil
}

type ActivityListCmd struct{}

func (c *ActivityListCmd) Run(ctx *Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	acts := ctx.App.Ledger().Activities
	if len(acts) == 0 {
		fmt.Println("No activities found.")
		return nil
	}
	for _, a := range acts {
		fmt.Println(a.Name)
	}
	return nil
}

type ActivityDeleteCmd struct {
	Name string `arg:"" help:"Activity name."`
}

func (c *ActivityDeleteCmd) Run(ctx *Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	act, ok := ctx.App.Ledger().FindActivityByName(c.Name)
	if !ok {
		return fmt.Errorf("activity %q not found", c.Name)
	}
	ctx.App.DeleteActivity(act.ID)
	fmt.Printf("Deleted activity: %s (history retained)\n", act.Name)
	warnOnSaveFailure(ctx.App)
	return nil
}

type DoneCmd struct {
	Name string `arg:"" help:"Activity name."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	act, ok := ctx.App.Ledger().FindActivityByName(c.Name)
	if !ok {
		return fmt.Errorf("activity %q not found", c.Name)
	}

	today := ctx.App.Today()
	if !ctx.App.Toggle(act.ID, today) {
		return fmt.Errorf("could not toggle %q for %s", act.Name, today)
	}
	if st, marked := ctx.App.Ledger().StatusByDate.Get(act.ID, today); marked && st == models.StatusDone {
		fmt.Printf("Marked %s done for %s\n", act.Name, today)
	} else {
		fmt.Printf("Unmarked %s for %s\n", act.Name, today)
	}
	warnOnSaveFailure(ctx.App)
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	today := ctx.App.Today()
	fmt.Printf("Today: %s\n", today)

	acts := ctx.App.Ledger().Activities
	if len(acts) == 0 {
		fmt.Println("No activities found.")
		return nil
	}
	for _, a := range acts {
		marker := "○"
		if st, ok := ctx.App.Ledger().StatusByDate.Get(a.ID, today); ok && st == models.StatusDone {
			marker = "✓"
		}
		fmt.Printf("%s %s\n", marker, a.Name)
	}
	return nil
}
