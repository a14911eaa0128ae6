// Package tasklist projects the stored collection into what a list screen shows:
// a filtered slice plus the count behind every filter.
package tasklist

import (
	"fmt"

	"github.com/td0m/tickit/pkg/task"
)

type Mode string

const (
	All       Mode = "all"
	Pending   Mode = "pending"
	Completed Mode = "completed"
)

// Modes lists the filters in display order
var Modes = []Mode{All, Pending, Completed}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Next cycles all -> pending -> completed -> all
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return All
}

func (m Mode) match(t task.Task) bool {
	switch m {
	case Pending:
		return t.Status != task.Completed
	case Completed:
		return t.Status == task.Completed
	}
	return true
}

// Filter keeps the tasks matching the mode, in their original order
func Filter(tasks []task.Task, mode Mode) []task.Task {
	if mode == All {
		return tasks
	}
	out := []task.Task{}
	for _, t := range tasks {
		if mode.match(t) {
			out = append(out, t)
		}
	}
	return out
}

type Counts struct {
	All       int
	Pending   int
	Completed int
}

func Count(tasks []task.Task) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Status == task.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c
}

func (c Counts) Of(mode Mode) int {
	switch mode {
	case Pending:
		return c.Pending
	case Completed:
		return c.Completed
	}
	return c.All
}

// View is everything a list screen renders, derived from a fresh read
type View struct {
	Mode   Mode
	Tasks  []task.Task
	Counts Counts
}

func Project(tasks []task.Task, mode Mode) View {
	return View{
		Mode:   mode,
		Tasks:  Filter(tasks, mode),
		Counts: Count(tasks),
	}
}

func (v View) Empty() bool {
	return len(v.Tasks) == 0
}
