package tasklist

import (
	"context"
	"time"

	"github.com/td0m/tickit/pkg/task"
)

// Store is the part of the persistence layer a list needs
type Store interface {
	GetTasks(ctx context.Context) []task.Task
	GetTask(ctx context.Context, id task.ID) (task.Task, bool)
	AddTask(ctx context.Context, t task.Task) error
	UpdateTask(ctx context.Context, id task.ID, patch task.Patch) error
	DeleteTask(ctx context.Context, id task.ID) error
}

// Controller runs list actions against the store. It keeps no copy of the
// collection: every mutation is followed by a full read, and that read is
// what the caller renders.
type Controller struct {
	store Store
}

func NewController(store Store) *Controller {
	return &Controller{store: store}
}

func (c *Controller) Load(ctx context.Context) []task.Task {
	return c.store.GetTasks(ctx)
}

// Get finds a task in a fresh read
func (c *Controller) Get(ctx context.Context, id task.ID) (task.Task, bool) {
	return c.store.GetTask(ctx, id)
}

// Create validates and stores a new pending task
func (c *Controller) Create(ctx context.Context, title, description string, due *time.Time, now time.Time) (task.Task, []task.Task, error) {
	t, err := task.New(title, description, due, now)
	if err != nil {
		return task.Task{}, nil, err
	}
	if err := c.store.AddTask(ctx, t); err != nil {
		return task.Task{}, nil, err
	}
	return t, c.Load(ctx), nil
}

// Toggle flips the status of t as the caller last saw it
func (c *Controller) Toggle(ctx context.Context, t task.Task) ([]task.Task, error) {
	return c.Edit(ctx, t.ID, task.SetStatus(t.Status.Toggle()))
}

func (c *Controller) Edit(ctx context.Context, id task.ID, patch task.Patch) ([]task.Task, error) {
	if err := c.store.UpdateTask(ctx, id, patch); err != nil {
		return nil, err
	}
	return c.Load(ctx), nil
}

func (c *Controller) Delete(ctx context.Context, id task.ID) ([]task.Task, error) {
	if err := c.store.DeleteTask(ctx, id); err != nil {
		return nil, err
	}
	return c.Load(ctx), nil
}
