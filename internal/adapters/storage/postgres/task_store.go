package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/task"
	"github.com/eventplanr/task-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskStore = (*TaskStore)(nil)

// TaskStore implements ports.TaskStore on PostgreSQL.
type TaskStore struct {
	db *DB
}

// NewTaskStore creates a TaskStore on the shared database handle.
func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{db: db}
}

// Save upserts a task. A zero ID inserts a new row and returns the entity
// with its assigned primary key; otherwise the whole row is updated.
func (s *TaskStore) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	rec := toTaskRecord(t)

	if err := s.db.gorm.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}

	stored := rec.toDomain()
	return &stored, nil
}

// FindByID returns a task or domain.ErrNotFound.
func (s *TaskStore) FindByID(ctx context.Context, id int64) (*task.Task, error) {
	var rec taskRecord
	err := s.db.gorm.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding task: %w", err)
	}

	t := rec.toDomain()
	return &t, nil
}

// Search returns the page-th window of size tasks matching the filter, in
// primary key (insertion) order. Each non-nil filter field contributes one
// equality condition; the conditions are conjoined.
func (s *TaskStore) Search(ctx context.Context, page, size int, filter task.Filter) ([]task.Task, error) {
	q := applyFilter(s.db.gorm.WithContext(ctx), filter)

	var recs []taskRecord
	err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}

	return toDomainTasks(recs), nil
}

// ListByEpic returns all tasks linked to epicID, in primary key order.
func (s *TaskStore) ListByEpic(ctx context.Context, epicID int64) ([]task.Task, error) {
	var recs []taskRecord
	err := s.db.gorm.WithContext(ctx).
		Where("epic_id = ?", epicID).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("listing tasks by epic: %w", err)
	}

	return toDomainTasks(recs), nil
}

// Delete removes a task or returns domain.ErrNotFound.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	res := s.db.gorm.WithContext(ctx).Delete(&taskRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// applyFilter conjuncts one equality condition per non-nil filter field onto
// the query. A zero-value filter adds no conditions and matches every task.
func applyFilter(q *gorm.DB, filter task.Filter) *gorm.DB {
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.AuthorID != nil {
		q = q.Where("author_id = ?", *filter.AuthorID)
	}
	return q
}

func toDomainTasks(recs []taskRecord) []task.Task {
	tasks := make([]task.Task, len(recs))
	for i := range recs {
		tasks[i] = recs[i].toDomain()
	}
	return tasks
}
