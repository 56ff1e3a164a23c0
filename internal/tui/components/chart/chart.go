// Package chart renders a monthly completion series as a vertical bar chart.
// Labels and values are aligned by index; nil values render as gaps, never as
// zero-height bars, and the y-axis maximum is floored so small counts do not
// saturate the chart.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitford/tick/internal/series"
)

var (
	barStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	gapStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render draws the series with one column per day.
func Render(s series.Series) string {
	max := series.Scale(s.Values)
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d\n", s.Month, s.Year)

	for row := max; row >= 1; row-- {
		fmt.Fprintf(&b, "%s ", axisStyle.Render(fmt.Sprintf("%2d │", row)))
		for _, v := range s.Values {
			switch {
			case v == nil:
				b.WriteString(gapStyle.Render("·"))
			case *v >= row:
				b.WriteString(barStyle.Render("█"))
			default:
				b.WriteString(" ")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render("   └" + strings.Repeat("──", len(s.Values))))
	b.WriteString("\n     ")
	for i, label := range s.Labels {
		day := i + 1
		if day == 1 || day%5 == 0 {
			b.WriteString(fmt.Sprintf("%-2s", label))
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	return b.String()
}
