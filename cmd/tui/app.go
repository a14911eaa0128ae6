package main

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/td0m/tickit/internal/ui"
	"github.com/td0m/tickit/pkg/auth"
	"github.com/td0m/tickit/pkg/i18n"
	"github.com/td0m/tickit/pkg/prefs"
	"github.com/td0m/tickit/pkg/storage"
	"github.com/td0m/tickit/pkg/task"
	"github.com/td0m/tickit/pkg/tasklist"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenForm
	screenDetails
)

// tasksMsg carries the collection read after a load or a mutation
type tasksMsg struct {
	tasks []task.Task
	err   error
	// where to go once the mutation went through, stay put when zero
	next screen
}

type app struct {
	ctx context.Context
	log *log.Logger
	now func() time.Time

	session *auth.Session
	prefs   *prefs.Preferences
	tasks   *tasklist.Controller

	screen        screen
	width, height int

	styles ui.Styles
	keys   keyMap
	help   help.Model

	// last read of the collection, never edited in place
	all  []task.Task
	view tasklist.View

	login   loginModel
	list    listModel
	form    formModel
	details detailsModel

	status string
}

func newApp(ctx context.Context, l *log.Logger, session *auth.Session, p *prefs.Preferences, c *tasklist.Controller) *app {
	a := &app{
		ctx:     ctx,
		log:     l,
		now:     time.Now,
		session: session,
		prefs:   p,
		tasks:   c,
		help:    help.New(),
		login:   newLoginModel(),
		list:    newListModel(),
		form:    newFormModel(),
	}
	a.applyPrefs()
	if !session.Initialized() {
		session.Load(ctx)
	}
	if session.Authenticated() {
		a.screen = screenList
	}
	a.view = tasklist.Project(nil, tasklist.All)
	return a
}

func (m *app) t(key string, args ...interface{}) string {
	return i18n.T(m.prefs.Language, key, args...)
}

// applyPrefs rebuilds everything that depends on theme or language
func (m *app) applyPrefs() {
	m.styles = ui.NewStyles(m.prefs.Theme)
	m.keys = newKeyMap(m.prefs.Language)
	m.help.Styles.ShortKey = m.styles.Key
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.ShortSeparator = m.styles.Muted
	m.list.tabs.Styles = m.styles
	m.list.tabs.RTL = m.prefs.Language.RTL()
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m *app) Init() tea.Cmd {
	if m.screen == screenLogin {
		return m.login.focus()
	}
	return m.load()
}

func (m *app) load() tea.Cmd {
	return func() tea.Msg {
		return tasksMsg{tasks: m.tasks.Load(m.ctx)}
	}
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.list.resize(msg.Width, msg.Height-headerHeight-footerHeight)
		m.render()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tasksMsg:
		return m, m.gotTasks(msg)
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		cmd = m.updateLogin(msg)
	case screenList:
		cmd = m.updateList(msg)
	case screenForm:
		cmd = m.updateForm(msg)
	case screenDetails:
		cmd = m.updateDetails(msg)
	}
	m.render()
	return m, cmd
}

// gotTasks replaces the displayed collection with a fresh read. Results
// that land after a logout are dropped.
func (m *app) gotTasks(msg tasksMsg) tea.Cmd {
	if !m.session.Authenticated() {
		m.log.Debug("dropping task result after logout", "err", msg.err)
		return nil
	}
	if msg.err != nil {
		m.fail(msg.err)
		return nil
	}
	m.status = ""
	m.all = msg.tasks
	m.view = tasklist.Project(m.all, m.view.Mode)
	if msg.next != 0 {
		m.screen = msg.next
	}
	m.list.clampCursor(len(m.view.Tasks))
	m.render()
	return nil
}

// fail shows an error on the status line
func (m *app) fail(err error) {
	var werr *storage.WriteError
	if errors.As(err, &werr) {
		m.log.Error("write failed", "key", werr.Key, "err", werr.Err)
	} else {
		m.log.Warn("action failed", "err", err)
	}
	m.status = m.t("errors.saveFailed", "err", err.Error())
}

func (m *app) toggleTheme() {
	m.prefs.ToggleTheme(m.ctx)
	m.applyPrefs()
}

func (m *app) toggleLanguage() {
	m.prefs.ToggleLanguage(m.ctx)
	m.applyPrefs()
}

func (m *app) logout() tea.Cmd {
	m.session.Logout(m.ctx)
	m.all = nil
	m.view = tasklist.Project(nil, tasklist.All)
	m.list = newListModel()
	m.list.resize(m.width, m.height-headerHeight-footerHeight)
	m.applyPrefs()
	m.login = newLoginModel()
	m.status = ""
	m.screen = screenLogin
	return m.login.focus()
}

const (
	headerHeight = 4
	footerHeight = 2
)

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m *app) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.viewLogin()
	case screenList:
		body = m.viewList()
	case screenForm:
		body = m.viewForm()
	case screenDetails:
		body = m.viewDetails()
	}
	if m.status != "" {
		body += "\n" + m.styles.StatusBar.Render(m.status)
	}
	return body
}

// line aligns a line to the reading direction
func (m *app) line(s string) string {
	return ui.Align(s, m.width, m.prefs.Language.RTL())
}

// header is the title bar shared by the signed in screens
func (m *app) header(title string) string {
	right := m.styles.Muted.Render(m.t("common.buttons.theme")+": "+string(m.prefs.Theme)) + "  " +
		m.styles.Muted.Render(m.t("common.buttons.language"))
	if st := m.session.State(); st.User != nil {
		right = m.styles.Subtitle.Render(m.t("auth.signedInAs", "email", st.User.Email)) + "  " + right
	}
	left := m.styles.Title.Render(title)
	if m.prefs.Language.RTL() {
		left, right = right, left
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return lipgloss.NewStyle().Padding(0, 1).Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}
