// Package app provides application services that implement the work-tracking
// business rules by coordinating domain logic, durable stores, and the
// membership policy through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/task"
	"github.com/eventplanr/task-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Local authorization (author and
// assignee comparisons) is always enforced here; the membership policy is
// consulted only where a mutation can change who is affected by an event.
type TaskService struct {
	store      ports.TaskStore
	membership ports.MembershipPolicy
	logger     *slog.Logger
	now        func() time.Time
}

// NewTaskService creates a TaskService. A nil membership policy defaults to
// OpenMembershipPolicy; a nil logger discards all output.
func NewTaskService(store ports.TaskStore, membership ports.MembershipPolicy, logger *slog.Logger) *TaskService {
	if membership == nil {
		membership = OpenMembershipPolicy{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:      store,
		membership: membership,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates and stores a new task authored by callerID. The author id
// and creation time are assigned here and never change afterwards. A task
// created without a status starts as todo.
func (s *TaskService) Create(ctx context.Context, callerID int64, t *task.Task) (*task.Task, error) {
	if t.Status == "" {
		t.Status = task.StatusTodo
	}

	now := s.now()
	if err := t.Validate(now); err != nil {
		return nil, err
	}

	if err := s.membership.CheckMembership(ctx, callerID, t.EventID, t.AssigneeID); err != nil {
		return nil, err
	}

	t.AuthorID = callerID
	t.CreatedAt = now
	t.EpicID = nil

	created, err := s.store.Save(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "Create"),
			slog.Int64("caller_id", callerID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logger.InfoContext(ctx, "task created",
		slog.Int64("task_id", created.ID),
		slog.Int64("author_id", callerID),
	)
	return created, nil
}

// Update merges the non-nil fields of upd onto the stored task. The caller
// must be the task's author or assignee. When the update changes the event
// id or the assignee, the membership policy is consulted again before the
// merged state is persisted.
func (s *TaskService) Update(ctx context.Context, taskID, callerID int64, upd *task.UpdateRequest) (*task.Task, error) {
	if err := upd.Validate(s.now()); err != nil {
		return nil, err
	}

	t, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeModifiedBy(callerID) {
		return nil, fmt.Errorf("user with id '%d' is not authorized to modify task with id '%d': %w",
			callerID, taskID, domain.ErrNotAuthorized)
	}

	scopeChanged := upd.ChangesEventScope(t)
	upd.Apply(t)

	if scopeChanged {
		if err := s.membership.CheckMembership(ctx, callerID, t.EventID, t.AssigneeID); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.Save(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "Update"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating task: %w", err)
	}

	s.logger.InfoContext(ctx, "task updated", slog.Int64("task_id", updated.ID))
	return updated, nil
}

// FindByID returns a single task by id.
func (s *TaskService) FindByID(ctx context.Context, taskID int64) (*task.Task, error) {
	return s.getTask(ctx, taskID)
}

// Search returns the page-th window of size tasks matching the filter, in
// stable insertion order. An empty filter matches every task.
func (s *TaskService) Search(ctx context.Context, page, size int, filter task.Filter) ([]task.Task, error) {
	fields := make(map[string]string)
	if page < 0 {
		fields["page"] = fmt.Sprintf("must not be negative, got %d", page)
	}
	if size <= 0 {
		fields["size"] = fmt.Sprintf("must be positive, got %d", size)
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	tasks, err := s.store.Search(ctx, page, size, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search tasks",
			slog.String("operation", "Search"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("searching tasks: %w", err)
	}

	s.logger.DebugContext(ctx, "tasks found", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Delete removes a task. Only the task's author may delete it; the failure
// paths leave the stored task untouched.
func (s *TaskService) Delete(ctx context.Context, taskID, callerID int64) error {
	t, err := s.getTask(ctx, taskID)
	if err != nil {
		return err
	}

	if !t.CanBeDeletedBy(callerID) {
		return fmt.Errorf("user with id '%d' is not authorized to delete task with id '%d': %w",
			callerID, taskID, domain.ErrNotAuthorized)
	}

	if err := s.store.Delete(ctx, taskID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "Delete"),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting task: %w", err)
	}

	s.logger.InfoContext(ctx, "task deleted", slog.Int64("task_id", taskID))
	return nil
}

func (s *TaskService) getTask(ctx context.Context, taskID int64) (*task.Task, error) {
	t, err := s.store.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("task with id '%d': %w", taskID, err)
	}
	return t, nil
}
