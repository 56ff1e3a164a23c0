package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/series"
)

type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month in YYYY-MM format (default: current month)."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	if err := ctx.App.Refresh(); err != nil {
		return err
	}

	var year int
	var month time.Month
	if c.Month == "" {
		t := ctx.App.Today().Time()
		year, month = t.Year(), t.Month()
	} else {
		var err error
		year, month, err = parseMonth(c.Month)
		if err != nil {
			return err
		}
	}

	s := ctx.App.MonthSeries(year, month)
	fmt.Print(RenderMonth(s))
	return nil
}

// parseMonth accepts canonical YYYY-MM only. The round-trip check rejects
// inputs like "2024-1" that time.Parse would tolerate.
func parseMonth(arg string) (int, time.Month, error) {
	t, err := time.Parse(constants.MonthFormat, arg)
	if err != nil || t.Format(constants.MonthFormat) != arg {
		return 0, 0, fmt.Errorf("invalid month format: %s (expected YYYY-MM)", arg)
	}
	return t.Year(), t.Month(), nil
}

// RenderMonth renders the series as one horizontal bar row per day. Future
// days show a gap marker, never a zero-length bar.
func RenderMonth(s series.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d (done per day, scale max %d)\n", s.Month, s.Year, series.Scale(s.Values))

	for i, label := range s.Labels {
		v := s.Values[i]
		if v == nil {
			fmt.Fprintf(&b, "%2s  ·\n", label)
			continue
		}
		fmt.Fprintf(&b, "%2s  %s %d\n", label, strings.Repeat("█", *v), *v)
	}
	return b.String()
}
