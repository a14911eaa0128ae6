package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/td0m/tickit/pkg/i18n"
	"github.com/td0m/tickit/pkg/prefs"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	Toggle   key.Binding
	Open     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Theme    key.Binding
	Language key.Binding
	Logout   key.Binding
	Refresh  key.Binding
	Back     key.Binding
	Next     key.Binding
	Save     key.Binding
	Quit     key.Binding
}

func newKeyMap(lang prefs.Language) keyMap {
	t := func(k string) string { return i18n.T(lang, k) }
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "")),
		Filter:   key.NewBinding(key.WithKeys("tab", "f"), key.WithHelp("tab", t("common.buttons.filter"))),
		Toggle:   key.NewBinding(key.WithKeys(" ", "t"), key.WithHelp("space", t("common.buttons.toggle"))),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", t("common.buttons.open"))),
		Add:      key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", t("common.buttons.addNewTask"))),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", t("common.buttons.edit"))),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", t("common.buttons.delete"))),
		Theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", t("common.buttons.theme"))),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", t("common.buttons.language"))),
		Logout:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", t("common.buttons.logout"))),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", t("common.buttons.refresh"))),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", t("common.buttons.back"))),
		Next:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", t("common.buttons.next"))),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", t("common.buttons.save"))),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", t("common.buttons.quit"))),
	}
}

// listKeys is the help shown under the task list
type listKeys keyMap

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Toggle, k.Open, k.Add, k.Delete, k.Theme, k.Language, k.Refresh, k.Logout, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type detailsKeys keyMap

func (k detailsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Delete, k.Back}
}

func (k detailsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type formKeys keyMap

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Back}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
