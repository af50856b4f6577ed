package ports

import (
	"context"

	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
)

// TaskStore is the durable storage collaborator for tasks. Implementations
// must provide at least read-committed isolation for concurrent mutation of
// the same row; the service layer performs no locking of its own.
type TaskStore interface {
	// Save upserts a task. A zero ID requests creation; the stored entity
	// with its assigned ID is returned.
	Save(ctx context.Context, t *task.Task) (*task.Task, error)

	// FindByID returns a task or domain.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*task.Task, error)

	// Search returns the page-th window of size tasks matching the filter,
	// in insertion (primary key) order.
	Search(ctx context.Context, page, size int, filter task.Filter) ([]task.Task, error)

	// ListByEpic returns all tasks whose EpicID equals epicID, in insertion
	// order. Used to derive an epic's task list.
	ListByEpic(ctx context.Context, epicID int64) ([]task.Task, error)

	// Delete removes a task or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

// EpicStore is the durable storage collaborator for epics.
type EpicStore interface {
	// Save upserts an epic. A zero ID requests creation; the stored entity
	// with its assigned ID is returned. The derived Tasks field is ignored.
	Save(ctx context.Context, e *epic.Epic) (*epic.Epic, error)

	// FindByID returns an epic (without tasks) or domain.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*epic.Epic, error)

	// Delete removes an epic or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
