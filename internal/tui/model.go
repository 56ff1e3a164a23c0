package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mwhitford/tick/internal/app"
	"github.com/mwhitford/tick/internal/constants"
	"github.com/mwhitford/tick/internal/models"
	"github.com/mwhitford/tick/internal/tui/components/activities"
)

type ActivityFormModel struct {
	Name string
}

type Model struct {
	app           *app.App
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	activityList  activities.Model
	form          *huh.Form
	activityForm  *ActivityFormModel
	pendingDelete *models.Activity
	chartYear     int
	chartMonth    time.Month
	width         int
	height        int
	quitting      bool
}

func NewModel(a *app.App) Model {
	t := a.Today().Time()
	m := Model{
		app:          a,
		state:        constants.StateActivities,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		activityList: activities.New(),
		chartYear:    t.Year(),
		chartMonth:   t.Month(),
	}
	m.syncActivities()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// syncActivities rebuilds the list rows from the current ledger and today's
// marks.
func (m *Model) syncActivities() {
	led := m.app.Ledger()
	today := m.app.Today()

	items := make([]activities.Item, 0, len(led.Activities))
	for _, a := range led.Activities {
		st, ok := led.StatusByDate.Get(a.ID, today)
		items = append(items, activities.Item{
			Activity: a,
			Done:     ok && st == models.StatusDone,
		})
	}
	m.activityList.SetItems(items)
	m.activityList.SetTitle("Activities: " + string(today))
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func newActivityForm(f *ActivityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity name").
				Value(&f.Name),
		),
	)
}
