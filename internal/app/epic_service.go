package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventplanr/task-service/internal/app/fanout"
	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
	"github.com/eventplanr/task-service/internal/ports"
)

// Compile-time check that EpicService implements ports.EpicService.
var _ ports.EpicService = (*EpicService)(nil)

// detachWorkers bounds the concurrent task detaches performed when an epic
// with linked tasks is deleted.
const detachWorkers = 4

// EpicService implements ports.EpicService. The epic's task list is never
// stored: attach and detach mutate only the task's epic reference, and reads
// derive the list by querying the task store. Composition operations are
// executive-only, enforced locally regardless of the membership policy.
type EpicService struct {
	epics      ports.EpicStore
	tasks      ports.TaskStore
	membership ports.MembershipPolicy
	logger     *slog.Logger
	now        func() time.Time
}

// NewEpicService creates an EpicService. A nil membership policy defaults to
// OpenMembershipPolicy; a nil logger discards all output.
func NewEpicService(epics ports.EpicStore, tasks ports.TaskStore, membership ports.MembershipPolicy, logger *slog.Logger) *EpicService {
	if membership == nil {
		membership = OpenMembershipPolicy{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EpicService{
		epics:      epics,
		tasks:      tasks,
		membership: membership,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates and stores a new epic after consulting the membership
// policy with the caller against the epic's event.
func (s *EpicService) Create(ctx context.Context, callerID int64, e *epic.Epic) (*epic.Epic, error) {
	if err := e.Validate(s.now()); err != nil {
		return nil, err
	}

	if err := s.membership.CheckMembership(ctx, callerID, e.EventID, nil); err != nil {
		return nil, err
	}

	created, err := s.epics.Save(ctx, e)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create epic",
			slog.String("operation", "Create"),
			slog.Int64("caller_id", callerID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating epic: %w", err)
	}

	s.logger.InfoContext(ctx, "epic created", slog.Int64("epic_id", created.ID))
	return created, nil
}

// Update merges the non-nil fields of upd onto the stored epic. The
// membership policy is re-consulted against the epic's (possibly unchanged)
// event before the merged state is persisted.
func (s *EpicService) Update(ctx context.Context, callerID, epicID int64, upd *epic.UpdateRequest) (*epic.Epic, error) {
	if err := upd.Validate(s.now()); err != nil {
		return nil, err
	}

	e, err := s.getEpic(ctx, epicID)
	if err != nil {
		return nil, err
	}

	upd.Apply(e)

	if err := s.membership.CheckMembership(ctx, callerID, e.EventID, nil); err != nil {
		return nil, err
	}

	updated, err := s.epics.Save(ctx, e)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update epic",
			slog.String("operation", "Update"),
			slog.Int64("epic_id", epicID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating epic: %w", err)
	}

	s.logger.InfoContext(ctx, "epic updated", slog.Int64("epic_id", updated.ID))
	return updated, nil
}

// AttachTask links a task to an epic and returns the updated task. The task
// must belong to the same event as the epic and must not already belong to
// any epic; the epic's executive is the only caller allowed to attach.
func (s *EpicService) AttachTask(ctx context.Context, callerID, epicID, taskID int64) (*task.Task, error) {
	e, err := s.getEpic(ctx, epicID)
	if err != nil {
		return nil, err
	}

	if err := s.requireExecutive(e, callerID); err != nil {
		return nil, err
	}

	t, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if t.EventID != e.EventID {
		return nil, fmt.Errorf("task with id '%d' can not be added to epic with id '%d' as they belong to different events: %w",
			taskID, epicID, domain.ErrOperationNotAllowed)
	}
	if t.EpicID != nil {
		return nil, fmt.Errorf("task with id '%d' already belongs to epic with id '%d': %w",
			taskID, *t.EpicID, domain.ErrOperationNotAllowed)
	}

	t.EpicID = &e.ID

	attached, err := s.tasks.Save(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to attach task",
			slog.String("operation", "AttachTask"),
			slog.Int64("epic_id", epicID),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("attaching task: %w", err)
	}

	s.logger.InfoContext(ctx, "task attached to epic",
		slog.Int64("epic_id", epicID),
		slog.Int64("task_id", taskID),
	)
	return attached, nil
}

// DetachTask unlinks a task from an epic and returns the updated task. The
// task must currently belong to this epic; only the executive may detach.
func (s *EpicService) DetachTask(ctx context.Context, callerID, epicID, taskID int64) (*task.Task, error) {
	e, err := s.getEpic(ctx, epicID)
	if err != nil {
		return nil, err
	}

	if err := s.requireExecutive(e, callerID); err != nil {
		return nil, err
	}

	t, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if t.EpicID == nil || *t.EpicID != e.ID {
		return nil, fmt.Errorf("task with id '%d' does not belong to epic with id '%d': %w",
			taskID, epicID, domain.ErrOperationNotAllowed)
	}

	t.EpicID = nil

	detached, err := s.tasks.Save(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to detach task",
			slog.String("operation", "DetachTask"),
			slog.Int64("epic_id", epicID),
			slog.Int64("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("detaching task: %w", err)
	}

	s.logger.InfoContext(ctx, "task detached from epic",
		slog.Int64("epic_id", epicID),
		slog.Int64("task_id", taskID),
	)
	return detached, nil
}

// FindByID returns an epic with its linked tasks resolved by querying the
// task store for tasks whose epic reference equals the epic's id.
func (s *EpicService) FindByID(ctx context.Context, epicID int64) (*epic.Epic, error) {
	e, err := s.getEpic(ctx, epicID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByEpic(ctx, epicID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve epic tasks",
			slog.String("operation", "FindByID"),
			slog.Int64("epic_id", epicID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("resolving tasks for epic with id '%d': %w", epicID, err)
	}

	e.Tasks = tasks
	return e, nil
}

// Delete removes an epic after detaching all of its linked tasks, so the
// tasks survive as ungrouped work. Executive-only. Detaches run with bounded
// concurrency; the epic is removed only when every detach succeeded.
func (s *EpicService) Delete(ctx context.Context, callerID, epicID int64) error {
	e, err := s.getEpic(ctx, epicID)
	if err != nil {
		return err
	}

	if err := s.requireExecutive(e, callerID); err != nil {
		return err
	}

	linked, err := s.tasks.ListByEpic(ctx, epicID)
	if err != nil {
		return fmt.Errorf("resolving tasks for epic with id '%d': %w", epicID, err)
	}

	results := fanout.Run(ctx, detachWorkers, linked, func(ctx context.Context, t task.Task) (struct{}, error) {
		t.EpicID = nil
		_, err := s.tasks.Save(ctx, &t)
		return struct{}{}, err
	})
	if err := fanout.FirstError(results); err != nil {
		s.logger.ErrorContext(ctx, "failed to detach tasks before epic deletion",
			slog.String("operation", "Delete"),
			slog.Int64("epic_id", epicID),
			slog.Any("error", err),
		)
		return fmt.Errorf("detaching tasks of epic with id '%d': %w", epicID, err)
	}

	if err := s.epics.Delete(ctx, epicID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete epic",
			slog.String("operation", "Delete"),
			slog.Int64("epic_id", epicID),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting epic: %w", err)
	}

	s.logger.InfoContext(ctx, "epic deleted",
		slog.Int64("epic_id", epicID),
		slog.Int("detached_tasks", len(linked)),
	)
	return nil
}

func (s *EpicService) requireExecutive(e *epic.Epic, callerID int64) error {
	if !e.CanManageTasksBy(callerID) {
		return fmt.Errorf("user with id '%d' is not authorized to manage tasks of epic with id '%d': %w",
			callerID, e.ID, domain.ErrNotAuthorized)
	}
	return nil
}

func (s *EpicService) getEpic(ctx context.Context, epicID int64) (*epic.Epic, error) {
	e, err := s.epics.FindByID(ctx, epicID)
	if err != nil {
		return nil, fmt.Errorf("epic with id '%d': %w", epicID, err)
	}
	return e, nil
}

func (s *EpicService) getTask(ctx context.Context, taskID int64) (*task.Task, error) {
	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("task with id '%d': %w", taskID, err)
	}
	return t, nil
}
