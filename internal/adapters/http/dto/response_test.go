package dto_test

import (
	"testing"
	"time"

	"github.com/eventplanr/task-service/internal/adapters/http/dto"
	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	deadline := testTime.Add(48 * time.Hour)
	in := &task.Task{
		ID:         3,
		Title:      "Book catering",
		CreatedAt:  testTime,
		Deadline:   &deadline,
		Status:     task.StatusInProgress,
		AssigneeID: int64Ptr(7),
		AuthorID:   42,
		EventID:    10,
		EpicID:     int64Ptr(1),
	}

	got := dto.ToTaskResponse(in)

	if got.CreatedAt != "2025-06-01T12:00:00Z" {
		t.Errorf("CreatedAt = %q, want RFC 3339", got.CreatedAt)
	}
	if got.Deadline != "2025-06-03T12:00:00Z" {
		t.Errorf("Deadline = %q, want RFC 3339", got.Deadline)
	}
	if got.Status != "in_progress" {
		t.Errorf("Status = %q, want in_progress", got.Status)
	}
	if got.EpicID == nil || *got.EpicID != 1 {
		t.Errorf("EpicID = %v, want 1", got.EpicID)
	}
}

func TestToTaskResponse_OmitsAbsentDeadline(t *testing.T) {
	t.Parallel()

	got := dto.ToTaskResponse(&task.Task{ID: 1, Status: task.StatusTodo, CreatedAt: testTime})
	if got.Deadline != "" {
		t.Errorf("Deadline = %q, want empty", got.Deadline)
	}
}

func TestToTaskListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToTaskListResponse([]task.Task{
		{ID: 1, Status: task.StatusTodo},
		{ID: 2, Status: task.StatusDone},
	})
	if got.Count != 2 || len(got.Tasks) != 2 {
		t.Fatalf("ToTaskListResponse() = %+v, want two entries", got)
	}

	empty := dto.ToTaskListResponse(nil)
	if empty.Count != 0 || empty.Tasks == nil {
		t.Errorf("ToTaskListResponse(nil) = %+v, want empty non-nil Tasks", empty)
	}
}

func TestToEpicResponse(t *testing.T) {
	t.Parallel()

	in := &epic.Epic{
		ID:          1,
		Title:       "Venue preparation",
		ExecutiveID: 42,
		EventID:     10,
		Tasks: []task.Task{
			{ID: 5, Status: task.StatusTodo, EpicID: int64Ptr(1)},
		},
	}

	got := dto.ToEpicResponse(in)

	if got.ID != 1 || got.ExecutiveID != 42 {
		t.Errorf("ToEpicResponse() = %+v", got)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].ID != 5 {
		t.Errorf("Tasks = %+v, want the linked task", got.Tasks)
	}
	if got.Deadline != "" {
		t.Errorf("Deadline = %q, want empty when unset", got.Deadline)
	}
}
