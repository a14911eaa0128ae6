package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var tabContainer = lipgloss.NewStyle().Padding(1, 1)

// Tabs is the row of filter chips above the list
type Tabs struct {
	tabs []string
	i    int

	Width  int
	Info   string
	RTL    bool
	Styles Styles
}

// NewTabs creates a new tabs ui bubbletea model
func NewTabs(tabs []string) Tabs {
	return Tabs{tabs: tabs}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m Tabs) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyTab:
			m.Set((m.i + 1) % max(len(m.tabs), 1))
		case tea.KeyShiftTab:
			m.Set((m.i - 1 + len(m.tabs)) % max(len(m.tabs), 1))
		}
	}
	return m, nil
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Tabs) View() string {
	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		r := m.Styles.InactiveTab
		if i == m.i {
			r = m.Styles.ActiveTab.Underline(true)
		}
		tabs[i] = r.Render(t)
	}
	w := lipgloss.Width
	chips := strings.Join(tabs, m.Styles.TabDivider.Render(" | "))
	left, right := chips, m.Info
	if m.RTL {
		left, right = m.Info, chips
	}
	space := lipgloss.NewStyle().Width(max(m.Width-2-w(left)-w(right), 0)).Render("")
	return tabContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}

func (m Tabs) Value() int {
	return m.i
}

func (m *Tabs) Set(i int) {
	m.i = min(max(i, 0), len(m.tabs)-1)
}

// SetLabels replaces the chip texts, keeping the selection
func (m *Tabs) SetLabels(labels []string) {
	m.tabs = labels
	m.Set(m.i)
}
