package dateinput

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.
		Foreground(lipgloss.AdaptiveColor{Light: "#c42912", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
)

// DisplayFormat is how a parsed date is echoed back, and how SetValue fills the input
const DisplayFormat = "Mon 2 Jan 2006"

const inputFormat = "02/01/2006"

// Model is a text input that understands loose due dates
type Model struct {
	Label string
	Now   func() time.Time

	i     textinput.Model
	value *time.Time
	err   error
}

func NewModel() Model {
	i := textinput.New()
	i.CharLimit = 24
	i.Prompt = ""
	i.Placeholder = "tomorrow, fri, in 3 days, 21/04"
	return Model{
		Label: "due",
		Now:   time.Now,
		i:     i,
	}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.i, cmd = m.i.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.value, m.err = Parse(m.i.Value(), m.Now())
	}
	return m, cmd
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Model) View() string {
	mark := ""
	switch {
	case m.err != nil:
		mark = cross
	case m.value != nil:
		mark = checkmark + m.value.Format(DisplayFormat)
	}
	if m.Label == "" {
		return m.i.View() + mark
	}
	return lipgloss.NewStyle().Foreground(faded).Render(m.Label+": ") + m.i.View() + mark
}

// Value is nil when no date was entered
func (m Model) Value() *time.Time {
	return m.value
}

// Err is set while the input cannot be parsed
func (m Model) Err() error {
	return m.err
}

func (m *Model) SetValue(t *time.Time) {
	m.value, m.err = t, nil
	if t == nil {
		m.i.SetValue("")
		return
	}
	m.i.SetValue(t.Local().Format(inputFormat))
}

func (m *Model) Focus() tea.Cmd {
	return m.i.Focus()
}

func (m *Model) Blur() {
	m.i.Blur()
}

func (m Model) Focused() bool {
	return m.i.Focused()
}
