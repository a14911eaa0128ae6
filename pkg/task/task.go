package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ID string

// NewID returns a random task ID
func NewID() ID {
	return ID(uuid.NewString())
}

type Status string

const (
	Pending   Status = "pending"
	Completed Status = "completed"
)

// Toggle flips between pending and completed.
// There is no third state, so anything that is not completed becomes completed.
func (s Status) Toggle() Status {
	if s == Completed {
		return Pending
	}
	return Completed
}

func (s Status) Valid() bool {
	return s == Pending || s == Completed
}

var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrMissingID     = errors.New("id is required")
	ErrInvalidStatus = errors.New("unknown status")
	ErrDuplicateID   = errors.New("duplicate id")
)

type Task struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t Task) Done() bool {
	return t.Status == Completed
}

// New creates a pending task, both timestamps set to now
func New(title, description string, due *time.Time, now time.Time) (Task, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	now = Stamp(now)
	t := Task{
		ID:          NewID(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      Pending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if due != nil {
		d := Stamp(*due)
		t.DueDate = &d
	}
	return t, nil
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Validate checks what a stored task must satisfy to be read back
func (t Task) Validate() error {
	if t.ID == "" {
		return ErrMissingID
	}
	if err := ValidateTitle(t.Title); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("task %s: %w %q", t.ID, ErrInvalidStatus, t.Status)
	}
	return nil
}

// ValidateAll validates every task and rejects repeated ids
func ValidateAll(tasks []Task) error {
	seen := make(map[ID]bool, len(tasks))
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task at %d: %w", i, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("task %s: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = true
	}
	return nil
}

// Stamp normalizes a timestamp to what survives a round trip through storage:
// UTC, millisecond precision, no monotonic reading.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
