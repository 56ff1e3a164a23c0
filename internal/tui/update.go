package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		m.activityList.SetSize(msg.Width-frameW, msg.Height-frameH-4)
		return m, nil

	case tea.FocusMsg:
		// Background-to-foreground edge: re-read persisted state and
		// close any days that elapsed while we were away.
		if err := m.app.Refresh(); err != nil {
			logger.Warn("Refresh on focus failed", "error", err)
		}
		m.syncActivities()
		return m, nil

	case tea.BlurMsg:
		return m, nil
	}

	switch m.state {
	case constants.StateAddActivity:
		return m.updateAddActivity(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateChart:
		return m.updateChart(msg)
	default:
		return m.updateActivities(msg)
	}
}

func (m Model) updateActivities(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.SwitchTab):
			t := m.app.Today().Time()
			m.chartYear, m.chartMonth = t.Year(), t.Month()
			m.state = constants.StateChart
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.activityList.Selected(); ok {
				m.app.Toggle(it.Activity.ID, m.app.Today())
				m.syncActivities()
			}
			return m, nil

		case key.Matches(msg, m.keys.Add):
			m.activityForm = &ActivityFormModel{}
			m.form = newActivityForm(m.activityForm)
			m.state = constants.StateAddActivity
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Delete):
			if it, ok := m.activityList.Selected(); ok {
				act := it.Activity
				m.pendingDelete = &act
				m.state = constants.StateConfirmDelete
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.activityList, cmd = m.activityList.Update(msg)
	return m, cmd
}

func (m Model) updateAddActivity(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateActivities
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		// Blank names are silently dropped.
		m.app.AddActivity(m.activityForm.Name)
		m.syncActivities()
		m.state = constants.StateActivities
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.state = constants.StateActivities
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if m.pendingDelete != nil {
				m.app.DeleteActivity(m.pendingDelete.ID)
				m.pendingDelete = nil
				m.syncActivities()
			}
			m.state = constants.StateActivities
		case "n", "N", "esc":
			m.pendingDelete = nil
			m.state = constants.StateActivities
		}
	}
	return m, nil
}

func (m Model) updateChart(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchTab):
			// Re-entry into the activities view is a reconciliation
			// trigger of its own.
			if err := m.app.Refresh(); err != nil {
				logger.Warn("Refresh on view re-entry failed", "error", err)
			}
			m.syncActivities()
			m.state = constants.StateActivities
			return m, nil

		case key.Matches(msg, m.keys.PrevMonth):
			m.chartYear, m.chartMonth = prevMonth(m.chartYear, m.chartMonth)
			return m, nil

		case key.Matches(msg, m.keys.NextMonth):
			m.chartYear, m.chartMonth = nextMonth(m.chartYear, m.chartMonth)
			return m, nil
		}
	}
	return m, nil
}
