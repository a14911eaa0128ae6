package task

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 123456789, time.Local)

	t.Run("starts pending with equal timestamps", func(t *testing.T) {
		is := is.New(t)
		tk, err := New("  Buy milk ", " 2 litres ", nil, now)
		is.NoErr(err)
		is.Equal(tk.Title, "Buy milk")
		is.Equal(tk.Description, "2 litres")
		is.Equal(tk.Status, Pending)
		is.Equal(tk.CreatedAt, tk.UpdatedAt)
		is.Equal(tk.CreatedAt, Stamp(now))
		is.True(tk.DueDate == nil)
		is.True(tk.ID != "")
	})

	t.Run("rejects blank titles", func(t *testing.T) {
		is := is.New(t)
		for _, title := range []string{"", "   ", "\t\n"} {
			_, err := New(title, "", nil, now)
			is.Equal(err, ErrEmptyTitle)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		is := is.New(t)
		seen := map[ID]bool{}
		for i := 0; i < 100; i++ {
			tk, err := New("x", "", nil, now)
			is.NoErr(err)
			is.True(!seen[tk.ID])
			seen[tk.ID] = true
		}
	})

	t.Run("keeps the due date", func(t *testing.T) {
		is := is.New(t)
		due := now.Add(48 * time.Hour)
		tk, err := New("x", "", &due, now)
		is.NoErr(err)
		is.Equal(*tk.DueDate, Stamp(due))
	})
}

func TestValidateAll(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	a, err := New("a", "", nil, now)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("b", "", nil, now)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		tasks []Task
		err   error
	}{
		{"empty", nil, nil},
		{"valid", []Task{a, b}, nil},
		{"missing id", []Task{a, {Title: "x", Status: Pending}}, ErrMissingID},
		{"blank title", []Task{{ID: "1", Title: "\t", Status: Completed}}, ErrEmptyTitle},
		{"zero status", []Task{{ID: "1", Title: "x"}}, ErrInvalidStatus},
		{"repeated id", []Task{a, b, a}, ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			err := ValidateAll(tt.tasks)
			if tt.err == nil {
				is.NoErr(err)
				return
			}
			is.True(errors.Is(err, tt.err))
		})
	}
}

func TestStatus_Toggle(t *testing.T) {
	is := is.New(t)
	is.Equal(Pending.Toggle(), Completed)
	is.Equal(Completed.Toggle(), Pending)
	is.Equal(Pending.Toggle().Toggle(), Pending)
	is.True(!Status("archived").Valid())
}

func TestPatch_Apply(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	due := now.Add(24 * time.Hour)
	base := Task{ID: "a", Title: "title", Description: "desc", Status: Pending, DueDate: &due, CreatedAt: now, UpdatedAt: now}

	t.Run("leaves absent fields untouched", func(t *testing.T) {
		is := is.New(t)
		got := SetStatus(Completed).Apply(base)
		is.Equal(got.Status, Completed)
		is.Equal(got.Title, base.Title)
		is.Equal(got.Description, base.Description)
		is.Equal(got.DueDate, base.DueDate)
		is.Equal(got.ID, base.ID)
		is.Equal(got.CreatedAt, base.CreatedAt)
	})

	t.Run("clears the due date", func(t *testing.T) {
		is := is.New(t)
		got := Patch{ClearDueDate: true, DueDate: &now}.Apply(base)
		is.True(got.DueDate == nil)
	})

	t.Run("validates", func(t *testing.T) {
		is := is.New(t)
		blank := " "
		is.Equal(Patch{Title: &blank}.Validate(), ErrEmptyTitle)
		bad := Status("nope")
		is.Equal(Patch{Status: &bad}.Validate(), ErrInvalidStatus)
		is.True(Patch{}.Empty())
		is.NoErr(SetStatus(Pending).Validate())
	})
}

func TestTask_JSON(t *testing.T) {
	is := is.New(t)
	now := Stamp(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))
	tk := Task{ID: "1", Title: "Buy milk", Status: Pending, CreatedAt: now, UpdatedAt: now}
	bs, err := json.Marshal(tk)
	is.NoErr(err)
	is.Equal(string(bs), `{"id":"1","title":"Buy milk","status":"pending","createdAt":"2026-10-18T09:30:00Z","updatedAt":"2026-10-18T09:30:00Z"}`)
}
