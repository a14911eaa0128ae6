package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tickit/internal/ui"
	"github.com/td0m/tickit/pkg/task"
)

// detailsModel shows one task, looked up by id in every fresh read
type detailsModel struct {
	id task.ID
}

func (m *app) detailed() (task.Task, bool) {
	for _, t := range m.all {
		if t.ID == m.details.id {
			return t, true
		}
	}
	return task.Task{}, false
}

func (m *app) updateDetails(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	k := m.keys
	t, found := m.detailed()
	switch {
	case key.Matches(km, k.Back), km.String() == "q":
		m.screen = screenList
	case !found:
	case key.Matches(km, k.Toggle):
		return m.toggle(t, 0)
	case key.Matches(km, k.Edit), key.Matches(km, k.Open):
		return m.openEdit(t)
	case key.Matches(km, k.Delete):
		return m.remove(t.ID, screenList)
	case key.Matches(km, k.Theme):
		m.toggleTheme()
	case key.Matches(km, k.Language):
		m.toggleLanguage()
	}
	return nil
}

func (m *app) viewDetails() string {
	s := m.styles
	t, ok := m.detailed()
	if !ok {
		return m.header(m.t("tasks.myTasks")) + "\n\n" +
			m.line(s.Error.Render(m.t("tasks.notFound"))) + "\n\n" +
			m.help.View(detailsKeys(m.keys))
	}

	title := s.Title
	if t.Done() {
		title = title.Strikethrough(true)
	}
	const stamp = "Mon 2 Jan 2006 15:04"
	row := func(label, value string) string {
		return m.line(s.Label.Render(label+": ") + s.Text.Render(value))
	}
	lines := []string{
		m.line(title.Render(t.Title)),
		m.line(s.StatusChip(m.prefs.Language, t.Status)),
		"",
	}
	if t.Description != "" {
		width := max(m.width-4, 20)
		desc := lipgloss.NewStyle().Width(width).Render(t.Description)
		for _, l := range strings.Split(desc, "\n") {
			lines = append(lines, m.line(s.TaskDesc.Render(l)))
		}
		lines = append(lines, "")
	}
	if t.DueDate != nil {
		due := lipgloss.NewStyle().Foreground(s.DueColor(t, m.now())).
			Render(t.DueDate.Local().Format("Mon 2 Jan 2006") + " (" + ui.FormatDue(m.prefs.Language, *t.DueDate, m.now()) + ")")
		lines = append(lines, m.line(s.Label.Render(m.t("tasks.due")+": ")+due))
	}
	lines = append(lines,
		row(m.t("tasks.created"), t.CreatedAt.Local().Format(stamp)),
		row(m.t("tasks.updated"), t.UpdatedAt.Local().Format(stamp)),
	)

	toggle := m.t("common.buttons.markCompleted")
	if t.Done() {
		toggle = m.t("common.buttons.markPending")
	}
	actions := s.Key.Render("space") + " " + s.Muted.Render(toggle)

	return m.header(m.t("tasks.myTasks")) + "\n\n" +
		lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n")) + "\n\n" +
		m.line(actions) + "\n" +
		m.help.View(detailsKeys(m.keys))
}
