package postgres

import (
	"time"

	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
)

// taskRecord is the persistence shape of a task. The epic association is a
// plain nullable foreign key on the task row; no inverse list is stored.
type taskRecord struct {
	ID          int64 `gorm:"primaryKey"`
	Title       string
	Description string
	CreatedAt   time.Time
	Deadline    *time.Time
	Status      string
	AssigneeID  *int64 `gorm:"index"`
	AuthorID    int64  `gorm:"index"`
	EventID     int64  `gorm:"index"`
	EpicID      *int64 `gorm:"index"`
}

func (taskRecord) TableName() string { return "tasks" }

func toTaskRecord(t *task.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		Deadline:    t.Deadline,
		Status:      t.Status.String(),
		AssigneeID:  t.AssigneeID,
		AuthorID:    t.AuthorID,
		EventID:     t.EventID,
		EpicID:      t.EpicID,
	}
}

func (r *taskRecord) toDomain() task.Task {
	return task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		Deadline:    r.Deadline,
		Status:      task.Status(r.Status),
		AssigneeID:  r.AssigneeID,
		AuthorID:    r.AuthorID,
		EventID:     r.EventID,
		EpicID:      r.EpicID,
	}
}

// epicRecord is the persistence shape of an epic. The task list is derived
// from taskRecord.EpicID at read time and never stored here.
type epicRecord struct {
	ID          int64 `gorm:"primaryKey"`
	Title       string
	ExecutiveID int64
	EventID     int64 `gorm:"index"`
	Deadline    *time.Time
}

func (epicRecord) TableName() string { return "epics" }

func toEpicRecord(e *epic.Epic) epicRecord {
	return epicRecord{
		ID:          e.ID,
		Title:       e.Title,
		ExecutiveID: e.ExecutiveID,
		EventID:     e.EventID,
		Deadline:    e.Deadline,
	}
}

func (r *epicRecord) toDomain() epic.Epic {
	return epic.Epic{
		ID:          r.ID,
		Title:       r.Title,
		ExecutiveID: r.ExecutiveID,
		EventID:     r.EventID,
		Deadline:    r.Deadline,
	}
}
