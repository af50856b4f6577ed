// Package memory provides in-memory implementations of the task and epic
// store ports. The stores serialize all access with a mutex and preserve
// insertion order, matching the pagination contract of the postgres adapter.
// They back the local profile and the application-layer tests.
package memory

import (
	"context"
	"sync"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
	"github.com/eventplanr/task-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskStore = (*TaskStore)(nil)
	_ ports.EpicStore = (*EpicStore)(nil)
)

// TaskStore is a mutex-guarded, insertion-ordered task store.
type TaskStore struct {
	mu     sync.Mutex
	nextID int64
	order  []int64
	tasks  map[int64]task.Task
}

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		nextID: 1,
		tasks:  make(map[int64]task.Task),
	}
}

// Save upserts a task, assigning an id when t.ID is zero. The stored copy is
// returned; the caller's struct is never aliased.
func (s *TaskStore) Save(_ context.Context, t *task.Task) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *t
	if stored.ID == 0 {
		stored.ID = s.nextID
		s.nextID++
		s.order = append(s.order, stored.ID)
	} else if _, ok := s.tasks[stored.ID]; !ok {
		s.order = append(s.order, stored.ID)
		if stored.ID >= s.nextID {
			s.nextID = stored.ID + 1
		}
	}
	s.tasks[stored.ID] = stored

	out := stored
	return &out, nil
}

// FindByID returns a copy of the stored task or domain.ErrNotFound.
func (s *TaskStore) FindByID(_ context.Context, id int64) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := t
	return &out, nil
}

// Search returns the page-th window of size tasks matching the filter, in
// insertion order.
func (s *TaskStore) Search(_ context.Context, page, size int, filter task.Filter) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []task.Task
	for _, id := range s.order {
		t, ok := s.tasks[id]
		if !ok {
			continue
		}
		if filter.Matches(&t) {
			matched = append(matched, t)
		}
	}

	start := page * size
	if start >= len(matched) {
		return []task.Task{}, nil
	}
	end := min(start+size, len(matched))
	return matched[start:end], nil
}

// ListByEpic returns all tasks linked to epicID, in insertion order.
func (s *TaskStore) ListByEpic(_ context.Context, epicID int64) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []task.Task{}
	for _, id := range s.order {
		t, ok := s.tasks[id]
		if !ok {
			continue
		}
		if t.EpicID != nil && *t.EpicID == epicID {
			result = append(result, t)
		}
	}
	return result, nil
}

// Delete removes a task or returns domain.ErrNotFound.
func (s *TaskStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// EpicStore is a mutex-guarded epic store.
type EpicStore struct {
	mu     sync.Mutex
	nextID int64
	epics  map[int64]epic.Epic
}

// NewEpicStore creates an empty EpicStore.
func NewEpicStore() *EpicStore {
	return &EpicStore{
		nextID: 1,
		epics:  make(map[int64]epic.Epic),
	}
}

// Save upserts an epic, assigning an id when e.ID is zero. The derived Tasks
// field is not persisted.
func (s *EpicStore) Save(_ context.Context, e *epic.Epic) (*epic.Epic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *e
	stored.Tasks = nil
	if stored.ID == 0 {
		stored.ID = s.nextID
		s.nextID++
	} else if stored.ID >= s.nextID {
		s.nextID = stored.ID + 1
	}
	s.epics[stored.ID] = stored

	out := stored
	return &out, nil
}

// FindByID returns a copy of the stored epic or domain.ErrNotFound.
func (s *EpicStore) FindByID(_ context.Context, id int64) (*epic.Epic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.epics[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := e
	return &out, nil
}

// Delete removes an epic or returns domain.ErrNotFound.
func (s *EpicStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.epics[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.epics, id)
	return nil
}
