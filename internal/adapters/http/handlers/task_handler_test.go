package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/eventplanr/task-service/internal/adapters/http/dto"
	"github.com/eventplanr/task-service/internal/adapters/http/handlers"
	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/task"
	"github.com/eventplanr/task-service/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	return handlers.NewTaskHandler(svc), svc
}

// --- CreateTask ---

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().
		Create(mock.Anything, testCallerID, mock.MatchedBy(func(in *task.Task) bool {
			return in.Title == "Book catering" && in.EventID == 10 && in.Status == task.StatusTodo
		})).
		Return(validTask(), nil)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "Book catering", EventID: 10})
	rec := httptest.NewRecorder()
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != 1 || resp.AuthorID != testCallerID {
		t.Errorf("response = %+v, want id 1 authored by %d", resp, testCallerID)
	}
}

func TestCreateTask_MissingIdentity(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "Book catering", EventID: 10})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if !strings.Contains(resp.Detail, "X-User-Id") {
		t.Errorf("Detail = %q, want naming the identity header", resp.Detail)
	}
}

func TestCreateTask_InvalidBody(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader("{not json")))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTask_ValidationFailure(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "  ", EventID: 0})
	rec := httptest.NewRecorder()
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("Errors = %+v, want title and event_id entries", resp.Errors)
	}
}

func TestCreateTask_MembershipRejected(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().
		Create(mock.Anything, testCallerID, mock.Anything).
		Return(nil, domain.ErrNotAuthorized)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "Book catering", EventID: 10})
	rec := httptest.NewRecorder()
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body))
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

// --- GetTask ---

func TestGetTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().FindByID(mock.Anything, int64(1)).Return(validTask(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/1", nil), map[string]string{"id": "1"})
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.Title != "Book catering" {
		t.Errorf("Title = %q, want %q", resp.Title, "Book catering")
	}
}

func TestGetTask_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/404", nil), map[string]string{"id": "404"})
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetTask_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc", nil), map[string]string{"id": "abc"})
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- SearchTasks ---

func TestSearchTasks_Defaults(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().
		Search(mock.Anything, 0, 10, task.Filter{}).
		Return([]task.Task{*validTask()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.SearchTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 1 || len(resp.Tasks) != 1 {
		t.Errorf("response = %+v, want one task", resp)
	}
}

func TestSearchTasks_WithFilterAndPaging(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().
		Search(mock.Anything, 2, 5, task.Filter{
			EventID:    int64Ptr(10),
			AssigneeID: int64Ptr(7),
			AuthorID:   int64Ptr(42),
		}).
		Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/tasks?page=2&size=5&event_id=10&assignee_id=7&author_id=42", nil)
	h.SearchTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 0 {
		t.Errorf("Count = %d, want 0", resp.Count)
	}
}

func TestSearchTasks_MalformedQuery(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?page=abc", nil)
	h.SearchTasks(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSearchTasks_InvalidPaging(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().
		Search(mock.Anything, -1, 10, task.Filter{}).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"page": "must not be negative, got -1"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?page=-1", nil)
	h.SearchTasks(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdateTask ---

func TestUpdateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	want := validTask()
	want.Title = "Book catering (urgent)"
	svc.EXPECT().
		Update(mock.Anything, int64(1), testCallerID, mock.MatchedBy(func(u *task.UpdateRequest) bool {
			return u.Title != nil && *u.Title == "Book catering (urgent)" && u.Status == nil
		})).
		Return(want, nil)

	title := "Book catering (urgent)"
	body := jsonBody(t, dto.UpdateTaskRequest{Title: &title})
	rec := httptest.NewRecorder()
	req := withCaller(withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/1", body),
		map[string]string{"id": "1"},
	))
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.Title != "Book catering (urgent)" {
		t.Errorf("Title = %q, want the updated title", resp.Title)
	}
}

func TestUpdateTask_NotAuthorized(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().
		Update(mock.Anything, int64(1), testCallerID, mock.Anything).
		Return(nil, domain.ErrNotAuthorized)

	title := "hijack"
	body := jsonBody(t, dto.UpdateTaskRequest{Title: &title})
	rec := httptest.NewRecorder()
	req := withCaller(withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/1", body),
		map[string]string{"id": "1"},
	))
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestUpdateTask_MissingIdentity(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	title := "renamed"
	body := jsonBody(t, dto.UpdateTaskRequest{Title: &title})
	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/1", body),
		map[string]string{"id": "1"},
	)
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteTask ---

func TestDeleteTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().Delete(mock.Anything, int64(1), testCallerID).Return(nil)

	rec := httptest.NewRecorder()
	req := withCaller(withChiParams(
		httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/1", nil),
		map[string]string{"id": "1"},
	))
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteTask_NotAuthorized(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().Delete(mock.Anything, int64(1), testCallerID).Return(domain.ErrNotAuthorized)

	rec := httptest.NewRecorder()
	req := withCaller(withChiParams(
		httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/1", nil),
		map[string]string{"id": "1"},
	))
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestDeleteTask_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().Delete(mock.Anything, int64(404), testCallerID).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withCaller(withChiParams(
		httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/404", nil),
		map[string]string{"id": "404"},
	))
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
