package task

import (
	"strings"
	"time"
)

// Patch holds the fields of an update. nil fields are left untouched.
// ID and CreatedAt can never be patched.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
	DueDate     *time.Time

	// ClearDueDate removes the due date, it wins over DueDate
	ClearDueDate bool
}

func (p Patch) Validate() error {
	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Empty reports whether the patch would change nothing
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.DueDate == nil && !p.ClearDueDate
}

// Apply merges the patch into t. UpdatedAt is the caller's business.
func (p Patch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	switch {
	case p.ClearDueDate:
		t.DueDate = nil
	case p.DueDate != nil:
		d := Stamp(*p.DueDate)
		t.DueDate = &d
	}
	return t
}

// SetStatus is a shorthand for a status-only patch
func SetStatus(s Status) Patch {
	return Patch{Status: &s}
}
