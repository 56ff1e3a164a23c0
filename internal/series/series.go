// Package series aggregates per-day completion counts into a monthly time
// series for display.
package series

import (
	"strconv"
	"time"

	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/dayid"
	"github.com/mwhitford/tick/internal/models"
)

// Series is one month of completion counts. Labels and Values are equal-length
// and aligned by index; a nil value means the day is after today and must
// render as a gap, never as zero.
type Series struct {
	Year   int
	Month  time.Month
	Labels []string
	Values []*int
}

// BuildMonth produces the series for the given month. Days on or before today
// carry the count of done entries across every snapshot key, including
// orphaned activities whose owner was deleted: historical counts never shrink
// retroactively. The function is stateless and safe to call repeatedly.
func BuildMonth(year int, month time.Month, snapshot models.Snapshot, today dayid.DayID) Series {
	n := dayid.DaysInMonth(year, month)
	s := Series{
		Year:   year,
		Month:  month,
		Labels: make([]string, 0, n),
		Values: make([]*int, 0, n),
	}

	for day := 1; day <= n; day++ {
		id := dayid.FromParts(year, month, day)
		s.Labels = append(s.Labels, strconv.Itoa(day))
		if id.After(today) {
			s.Values = append(s.Values, nil)
			continue
		}
		count := 0
		for _, days := range snapshot {
			if days[id] == models.StatusDone {
				count++
			}
		}
		v := count
		s.Values = append(s.Values, &v)
	}

	return s
}

// Scale returns the y-axis maximum for the series: the true maximum, floored
// so small counts are never visually saturated.
func Scale(values []*int) int {
	max := constants.ChartScaleFloor
	for _, v := range values {
		if v != nil && *v > max {
			max = *v
		}
	}
	return max
}
