package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/tickit/pkg/dateinput"
	"github.com/td0m/tickit/pkg/i18n"
	"github.com/td0m/tickit/pkg/prefs"
	"github.com/td0m/tickit/pkg/task"
)

// DaysUntil counts calendar days from now to t, negative when t is in the past
func DaysUntil(t, now time.Time) int {
	day := dateinput.StartOfDay(t.In(now.Location()))
	today := dateinput.StartOfDay(now)
	return int(math.Round(day.Sub(today).Hours() / 24))
}

// FormatDue renders a due date relative to now in the given language
func FormatDue(lang prefs.Language, due, now time.Time) string {
	switch days := DaysUntil(due, now); {
	case days < 0:
		return i18n.T(lang, "tasks.overdue") + " · " + due.In(now.Location()).Format("2 Jan")
	case days == 0:
		return i18n.T(lang, "tasks.today")
	case days == 1:
		return i18n.T(lang, "tasks.tomorrow")
	case days < 14:
		return i18n.T(lang, "tasks.inDays", "n", days)
	default:
		return due.In(now.Location()).Format("2 Jan 2006")
	}
}

// DueColor gets redder as the due date comes closer
func (s Styles) DueColor(t task.Task, now time.Time) lipgloss.Color {
	if t.DueDate == nil || t.Done() {
		return s.Palette.Faded
	}
	switch days := DaysUntil(*t.DueDate, now); {
	case days <= 2:
		return s.Palette.Red
	case days <= 14:
		return s.Palette.Orange
	default:
		return s.Palette.Faded
	}
}

// StatusChip is the localized pending/completed label
func (s Styles) StatusChip(lang prefs.Language, st task.Status) string {
	if st == task.Completed {
		return s.Completed.Render("✓ " + i18n.T(lang, "common.status.completed"))
	}
	return s.Pending.Render("○ " + i18n.T(lang, "common.status.pending"))
}

// Card is one row of the task list
type Card struct {
	Task     task.Task
	Selected bool
	Lang     prefs.Language
	Now      time.Time
	Width    int
}

// Lines is how many terminal lines a card takes
func (c Card) Lines() int {
	if c.Task.Description == "" {
		return 2
	}
	return 3
}

func (s Styles) RenderCard(c Card) string {
	t := c.Task
	icon := "○"
	title := s.TaskTitle
	if t.Done() {
		icon = "✓"
		title = title.Strikethrough(true).Foreground(s.Palette.Secondary)
	}
	if c.Selected {
		title = title.Background(s.Palette.Highlight)
	}

	line := s.TaskIcon.Render(icon) + title.Render(t.Title) + s.Divider + s.StatusChip(c.Lang, t.Status)
	if t.DueDate != nil {
		line += s.Divider
		line += lipgloss.NewStyle().Foreground(s.DueColor(t, c.Now)).Render(FormatDue(c.Lang, *t.DueDate, c.Now))
	}
	lines := []string{Align(line, c.Width, c.Lang.RTL())}
	if t.Description != "" {
		desc := "   " + s.TaskDesc.Render(Truncate(firstLine(t.Description), max(c.Width-4, 10)))
		lines = append(lines, Align(desc, c.Width, c.Lang.RTL()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// Align right-aligns s within width for right to left languages
func Align(s string, width int, rtl bool) string {
	if !rtl || width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}

// Truncate shortens s to n runes, ending with an ellipsis
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
