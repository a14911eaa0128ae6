// Package storage keeps the task collection and the small singleton settings
// (auth state, theme, language) in a key-value backend.
//
// Reads never fail: a missing, unreadable or corrupt value reads as its default.
// Writes of tasks and auth state return a *WriteError. Writes of theme and
// language, and clearing the auth state, are only logged since they are cosmetic.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/td0m/tickit/pkg/auth"
	"github.com/td0m/tickit/pkg/persist"
	"github.com/td0m/tickit/pkg/prefs"
	"github.com/td0m/tickit/pkg/task"
)

const (
	TasksKey    = "tasks"
	AuthKey     = "auth"
	ThemeKey    = "theme"
	LanguageKey = "language"
)

// WriteError is returned when the backend refuses a write
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Storage is safe for concurrent use. Task mutations read the whole
// collection, change it and write it back; they are serialized so two
// mutations from this process never overwrite each other. Two processes
// sharing a backend can still lose updates, the last write wins.
type Storage struct {
	backend persist.Backend
	log     *log.Logger
	now     func() time.Time

	// guards the read-modify-write of TasksKey
	mu sync.Mutex
}

type Option func(*Storage)

func WithLogger(l *log.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for updatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

func New(backend persist.Backend, opts ...Option) *Storage {
	s := &Storage{
		backend: backend,
		log:     log.New(io.Discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ auth.Store  = &Storage{}
	_ prefs.Store = &Storage{}
)

// GetTasks returns the collection in insertion order, or an empty one
func (s *Storage) GetTasks(ctx context.Context) []task.Task {
	bs, err := s.backend.Get(ctx, TasksKey)
	if errors.Is(err, persist.ErrNotFound) {
		return []task.Task{}
	}
	if err != nil {
		s.log.Error("loading tasks", "err", err)
		return []task.Task{}
	}
	tasks, err := decodeTasks(bs)
	if err != nil {
		s.log.Warn("stored tasks are corrupt, reading as empty", "err", err)
		return []task.Task{}
	}
	return tasks
}

// GetTask looks a single task up in a fresh read of the collection
func (s *Storage) GetTask(ctx context.Context, id task.ID) (task.Task, bool) {
	for _, t := range s.GetTasks(ctx) {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// SaveTasks replaces the whole collection. A collection that would not read
// back is refused with a validation error and nothing is written.
func (s *Storage) SaveTasks(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	if err := task.ValidateAll(tasks); err != nil {
		return err
	}
	bs, err := json.Marshal(tasks)
	if err != nil {
		return &WriteError{Key: TasksKey, Err: err}
	}
	if err := s.backend.Set(ctx, TasksKey, bs); err != nil {
		s.log.Error("saving tasks", "err", err)
		return &WriteError{Key: TasksKey, Err: err}
	}
	return nil
}

func (s *Storage) AddTask(ctx context.Context, t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.GetTasks(ctx)
	tasks = append(tasks, t)
	return s.SaveTasks(ctx, tasks)
}

// UpdateTask merges patch into the task with the given id and bumps updatedAt.
// An unknown id is not an error, nothing is written.
func (s *Storage) UpdateTask(ctx context.Context, id task.ID, patch task.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.GetTasks(ctx)
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		updated := patch.Apply(t)
		updated.UpdatedAt = later(task.Stamp(s.now()), t.UpdatedAt)
		tasks[i] = updated
		return s.SaveTasks(ctx, tasks)
	}
	s.log.Debug("update of unknown task ignored", "id", id)
	return nil
}

// DeleteTask removes the task with the given id, if there is one
func (s *Storage) DeleteTask(ctx context.Context, id task.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.GetTasks(ctx)
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return s.SaveTasks(ctx, out)
}

func (s *Storage) GetAuthState(ctx context.Context) auth.State {
	bs, err := s.backend.Get(ctx, AuthKey)
	if errors.Is(err, persist.ErrNotFound) {
		return auth.Anonymous()
	}
	if err != nil {
		s.log.Error("loading auth state", "err", err)
		return auth.Anonymous()
	}
	var state auth.State
	if err := json.Unmarshal(bs, &state); err != nil {
		s.log.Warn("stored auth state is corrupt", "err", err)
		return auth.Anonymous()
	}
	if state.IsAuthenticated && state.User == nil {
		s.log.Warn("stored auth state has no user")
		return auth.Anonymous()
	}
	return state
}

func (s *Storage) SaveAuthState(ctx context.Context, state auth.State) error {
	bs, err := json.Marshal(state)
	if err != nil {
		return &WriteError{Key: AuthKey, Err: err}
	}
	if err := s.backend.Set(ctx, AuthKey, bs); err != nil {
		s.log.Error("saving auth state", "err", err)
		return &WriteError{Key: AuthKey, Err: err}
	}
	return nil
}

func (s *Storage) ClearAuthState(ctx context.Context) {
	if err := s.backend.Remove(ctx, AuthKey); err != nil {
		s.log.Error("clearing auth state", "err", err)
	}
}

func (s *Storage) GetTheme(ctx context.Context) prefs.Theme {
	theme := prefs.Theme(s.getString(ctx, ThemeKey))
	if theme == "" {
		return prefs.DefaultTheme
	}
	if !theme.Valid() {
		s.log.Warn("unknown theme, using default", "theme", theme)
		return prefs.DefaultTheme
	}
	return theme
}

func (s *Storage) SaveTheme(ctx context.Context, theme prefs.Theme) {
	if err := s.backend.Set(ctx, ThemeKey, []byte(theme)); err != nil {
		s.log.Error("saving theme", "err", err)
	}
}

func (s *Storage) GetLanguage(ctx context.Context) prefs.Language {
	lang := prefs.Language(s.getString(ctx, LanguageKey))
	if lang == "" {
		return prefs.DefaultLanguage
	}
	if !lang.Valid() {
		s.log.Warn("unknown language, using default", "language", lang)
		return prefs.DefaultLanguage
	}
	return lang
}

func (s *Storage) SaveLanguage(ctx context.Context, lang prefs.Language) {
	if err := s.backend.Set(ctx, LanguageKey, []byte(lang)); err != nil {
		s.log.Error("saving language", "err", err)
	}
}

// getString returns "" when the key is missing or unreadable
func (s *Storage) getString(ctx context.Context, key string) string {
	bs, err := s.backend.Get(ctx, key)
	if errors.Is(err, persist.ErrNotFound) {
		return ""
	}
	if err != nil {
		s.log.Error("loading "+key, "err", err)
		return ""
	}
	return string(bs)
}

func later(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
