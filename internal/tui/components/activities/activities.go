package activities

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitford/tick/internal/models"
)

// Item is one activity row with its mark for today.
type Item struct {
	Activity models.Activity
	Done     bool
}

func (i Item) Title() string {
	if i.Done {
		return "✓ " + i.Activity.Name
	}
	return "○ " + i.Activity.Name
}

func (i Item) Description() string {
	if i.Done {
		return "completed today"
	}
	return "not completed today"
}

func (i Item) FilterValue() string { return i.Activity.Name }

type Model struct {
	list list.Model
}

func New() Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Activities"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return Model{list: l}
}

// SetItems replaces the rows, keeping the cursor in range.
func (m *Model) SetItems(items []Item) {
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = it
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) && len(rows) > 0 {
		m.list.Select(len(rows) - 1)
	}
}

func (m *Model) SetTitle(title string) { m.list.Title = title }

func (m *Model) SetSize(width, height int) { m.list.SetSize(width, height) }

// Selected returns the item under the cursor.
func (m Model) Selected() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string { return m.list.View() }
