package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tickit/pkg/dateinput"
	"github.com/td0m/tickit/pkg/task"
)

const (
	titleField = iota
	descriptionField
	dueField
	formFields
)

// formModel adds a task, or edits one when editing is set
type formModel struct {
	title       textinput.Model
	description textinput.Model
	due         dateinput.Model
	focused     int

	editing *task.Task

	titleErr string
	dueErr   string
}

func newFormModel() formModel {
	title := textinput.New()
	title.Prompt = ""
	title.CharLimit = 200
	title.Width = 48

	description := textinput.New()
	description.Prompt = ""
	description.CharLimit = 1000
	description.Width = 48

	due := dateinput.NewModel()
	due.Label = ""
	return formModel{title: title, description: description, due: due}
}

func editFormModel(t task.Task) formModel {
	f := newFormModel()
	f.editing = &t
	f.title.SetValue(t.Title)
	f.description.SetValue(t.Description)
	f.due.SetValue(t.DueDate)
	return f
}

// openEdit starts editing the stored copy of t, which may have changed since
// the list was last read
func (m *app) openEdit(t task.Task) tea.Cmd {
	if fresh, ok := m.tasks.Get(m.ctx, t.ID); ok {
		t = fresh
	}
	m.form = editFormModel(t)
	m.screen = screenForm
	return m.form.focus()
}

func (f *formModel) focus() tea.Cmd {
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()
	switch f.focused {
	case descriptionField:
		return f.description.Focus()
	case dueField:
		return f.due.Focus()
	}
	return f.title.Focus()
}

func (m *app) updateForm(msg tea.Msg) tea.Cmd {
	f := &m.form
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.Type == tea.KeyEsc:
			m.screen = m.formOrigin()
			return nil
		case key.Matches(msg, m.keys.Save):
			return m.submitForm()
		case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
			f.focused = (f.focused + 1) % formFields
			return f.focus()
		case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
			f.focused = (f.focused - 1 + formFields) % formFields
			return f.focus()
		case msg.Type == tea.KeyEnter:
			if f.focused < dueField {
				f.focused++
				return f.focus()
			}
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	switch f.focused {
	case titleField:
		f.title, cmd = f.title.Update(msg)
	case descriptionField:
		f.description, cmd = f.description.Update(msg)
	case dueField:
		f.due, cmd = f.due.Update(msg)
	}
	return cmd
}

// formOrigin is the screen the form was opened from
func (m *app) formOrigin() screen {
	if m.form.editing != nil && m.details.id == m.form.editing.ID {
		return screenDetails
	}
	return screenList
}

func (m *app) submitForm() tea.Cmd {
	f := &m.form
	f.titleErr, f.dueErr = "", ""

	title := strings.TrimSpace(f.title.Value())
	if err := task.ValidateTitle(title); err != nil {
		f.titleErr = m.t("tasks.titleRequired")
	}
	if f.due.Err() != nil {
		f.dueErr = m.t("tasks.dueInvalid")
	}
	if f.titleErr != "" || f.dueErr != "" {
		if f.titleErr != "" {
			f.focused = titleField
		} else {
			f.focused = dueField
		}
		return f.focus()
	}

	description := strings.TrimSpace(f.description.Value())
	due := f.due.Value()
	next := m.formOrigin()

	if f.editing == nil {
		return func() tea.Msg {
			_, tasks, err := m.tasks.Create(m.ctx, title, description, due, m.now())
			return tasksMsg{tasks: tasks, err: err, next: screenList}
		}
	}

	patch := task.Patch{Title: &title, Description: &description}
	switch {
	case due != nil:
		patch.DueDate = due
	case f.editing.DueDate != nil:
		patch.ClearDueDate = true
	}
	id := f.editing.ID
	return func() tea.Msg {
		tasks, err := m.tasks.Edit(m.ctx, id, patch)
		return tasksMsg{tasks: tasks, err: err, next: next}
	}
}

func (m *app) viewForm() string {
	f := m.form
	s := m.styles
	heading := m.t("tasks.newTask")
	if f.editing != nil {
		heading = m.t("tasks.editTask")
	}
	field := func(i int, label, body, errMsg string) string {
		box := s.Input
		if i == f.focused {
			box = s.Focused
		}
		out := m.line(s.Label.Render(label)) + "\n" + m.line(box.Render(body))
		if errMsg != "" {
			out += "\n" + m.line(s.Error.Render(errMsg))
		}
		return out
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		field(titleField, m.t("tasks.title")+" *", f.title.View(), f.titleErr),
		"",
		field(descriptionField, m.t("tasks.description"), f.description.View(), ""),
		"",
		field(dueField, m.t("tasks.dueDate"), f.due.View(), f.dueErr),
	)
	return m.header(heading) + "\n\n" + lipgloss.NewStyle().Padding(0, 2).Render(body) + "\n\n" +
		m.help.View(formKeys(m.keys))
}
