package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/dayid"
	"github.com/mwhitford/tick/internal/tui/components/chart"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateChart:
		content = chart.Render(m.app.MonthSeries(m.chartYear, m.chartMonth))
	case constants.StateAddActivity:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = lipgloss.JoinVertical(lipgloss.Left, m.viewWeekStrip(), m.activityList.View())
	}

	var notice string
	if err := m.app.SaveError(); err != nil {
		notice = warningStyle.Render("Storage unavailable, changes held in memory")
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		notice,
		content,
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	tabs := []struct {
		name  string
		state constants.SessionState
	}{
		{"Activities", constants.StateActivities},
		{"Chart", constants.StateChart},
	}

	var parts []string
	for _, t := range tabs {
		style := inactiveTabStyle
		if t.state == m.state || (t.state == constants.StateActivities && m.state != constants.StateChart) {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(t.name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// viewWeekStrip shows the current week with today highlighted.
func (m Model) viewWeekStrip() string {
	today := m.app.Today()
	monday := dayid.StartOfWeek(today)

	var parts []string
	for i := 0; i < 7; i++ {
		day := dayid.AddDays(monday, i)
		label := day.Time().Format("Mon 2")
		if day == today {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, weekStripStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.pendingDelete != nil {
		name = m.pendingDelete.Name
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		dangerStyle.Render(fmt.Sprintf("Delete activity %q?", name)),
		"Its history is kept; past counts will not change.",
		"",
		"y: delete  n: cancel",
	)
}
