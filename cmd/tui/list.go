package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/tickit/internal/ui"
	"github.com/td0m/tickit/pkg/task"
	"github.com/td0m/tickit/pkg/tasklist"
)

type listModel struct {
	viewport viewport.Model
	tabs     ui.Tabs
	cursor   int
}

func newListModel() listModel {
	return listModel{
		viewport: viewport.New(0, 0),
		tabs:     ui.NewTabs(make([]string, len(tasklist.Modes))),
	}
}

func (l *listModel) resize(w, h int) {
	l.viewport.Width = w
	l.viewport.Height = max(h, 1)
	l.tabs.Width = w
}

func (l *listModel) clampCursor(n int) {
	l.cursor = min(max(l.cursor, 0), max(n-1, 0))
}

func (m *app) selected() (task.Task, bool) {
	if m.list.cursor >= len(m.view.Tasks) {
		return task.Task{}, false
	}
	return m.view.Tasks[m.list.cursor], true
}

func (m *app) setFilter(mode tasklist.Mode) {
	m.view = tasklist.Project(m.all, mode)
	for i, mode := range tasklist.Modes {
		if mode == m.view.Mode {
			m.list.tabs.Set(i)
		}
	}
	m.list.cursor = 0
	m.list.viewport.GotoTop()
}

func (m *app) updateList(msg tea.Msg) tea.Cmd {
	k := m.keys
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, k.Quit):
			return tea.Quit
		case key.Matches(msg, k.Down):
			m.setCursor(m.list.cursor + 1)
		case key.Matches(msg, k.Up):
			m.setCursor(m.list.cursor - 1)
		case msg.String() == "g":
			m.setCursor(0)
		case msg.String() == "G":
			m.setCursor(len(m.view.Tasks) - 1)
		case key.Matches(msg, k.Filter):
			m.setFilter(m.view.Mode.Next())
		case msg.String() == "shift+tab":
			m.setFilter(m.view.Mode.Next().Next())
		case msg.String() == "1", msg.String() == "2", msg.String() == "3":
			m.setFilter(tasklist.Modes[int(msg.String()[0]-'1')])
		case key.Matches(msg, k.Toggle):
			if t, ok := m.selected(); ok {
				return m.toggle(t, 0)
			}
		case key.Matches(msg, k.Open):
			if t, ok := m.selected(); ok {
				m.details = detailsModel{id: t.ID}
				m.screen = screenDetails
			}
		case key.Matches(msg, k.Add):
			m.form = newFormModel()
			m.screen = screenForm
			return m.form.focus()
		case key.Matches(msg, k.Edit):
			if t, ok := m.selected(); ok {
				m.details = detailsModel{}
				return m.openEdit(t)
			}
		case key.Matches(msg, k.Delete):
			if t, ok := m.selected(); ok {
				return m.remove(t.ID, 0)
			}
		case key.Matches(msg, k.Theme):
			m.toggleTheme()
		case key.Matches(msg, k.Language):
			m.toggleLanguage()
		case key.Matches(msg, k.Refresh):
			return m.load()
		case key.Matches(msg, k.Logout):
			return m.logout()
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.list.viewport, cmd = m.list.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *app) toggle(t task.Task, next screen) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.tasks.Toggle(m.ctx, t)
		return tasksMsg{tasks: tasks, err: err, next: next}
	}
}

func (m *app) remove(id task.ID, next screen) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.tasks.Delete(m.ctx, id)
		return tasksMsg{tasks: tasks, err: err, next: next}
	}
}

// setCursor moves the selection and scrolls it into view
func (m *app) setCursor(value int) {
	size := len(m.view.Tasks)
	m.list.cursor = min(max(value, 0), max(size-1, 0))
	if size == 0 {
		return
	}

	linesBeforeCursor := 0
	for _, t := range m.view.Tasks[:m.list.cursor] {
		linesBeforeCursor += m.card(t, false).Lines()
	}
	cursorSize := m.card(m.view.Tasks[m.list.cursor], true).Lines()

	vp := &m.list.viewport
	if linesBeforeCursor+cursorSize > vp.YOffset+vp.Height {
		vp.SetYOffset(linesBeforeCursor + cursorSize - vp.Height)
	}
	if linesBeforeCursor < vp.YOffset {
		vp.SetYOffset(linesBeforeCursor)
	}
}

func (m *app) card(t task.Task, selected bool) ui.Card {
	return ui.Card{
		Task:     t,
		Selected: selected,
		Lang:     m.prefs.Language,
		Now:      m.now(),
		Width:    m.width,
	}
}

func (m *app) tabLabels() []string {
	labels := make([]string, len(tasklist.Modes))
	for i, mode := range tasklist.Modes {
		labels[i] = fmt.Sprintf("%s (%d)", m.t("common.status."+string(mode)), m.view.Counts.Of(mode))
	}
	return labels
}

// render refreshes the viewport content from the current view
func (m *app) render() {
	m.list.tabs.SetLabels(m.tabLabels())
	if m.view.Empty() {
		m.list.viewport.SetContent(m.emptyState())
		return
	}
	var b strings.Builder
	for i, t := range m.view.Tasks {
		b.WriteString(m.styles.RenderCard(m.card(t, i == m.list.cursor)))
		b.WriteString("\n")
	}
	m.list.viewport.SetContent(b.String())
}

func (m *app) emptyState() string {
	s := m.styles
	if m.view.Mode == tasklist.All {
		return "\n" + m.line(s.Subtitle.Render(m.t("tasks.emptyAll"))) + "\n" +
			m.line(s.Muted.Render(m.t("tasks.emptyCreate")))
	}
	filter := strings.ToLower(m.t("common.status." + string(m.view.Mode)))
	return "\n" + m.line(s.Subtitle.Render(m.t("tasks.emptyFiltered", "filter", filter)))
}

func (m *app) viewList() string {
	return m.header(m.t("tasks.myTasks")) + "\n" +
		m.list.tabs.View() +
		m.list.viewport.View() + "\n" +
		m.help.View(listKeys(m.keys))
}
