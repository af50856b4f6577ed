package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/eventplanr/task-service/internal/adapters/storage/memory"
	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
	"github.com/eventplanr/task-service/mocks"
)

func validEpic() *epic.Epic {
	return &epic.Epic{
		Title:       "Venue preparation",
		ExecutiveID: 42,
		EventID:     10,
	}
}

func seedEpic(t *testing.T, store *memory.EpicStore, seed *epic.Epic) *epic.Epic {
	t.Helper()
	saved, err := store.Save(context.Background(), seed)
	if err != nil {
		t.Fatalf("seeding epic: %v", err)
	}
	return saved
}

// epicFixture wires an EpicService over fresh in-memory stores with an
// always-allowing membership policy.
type epicFixture struct {
	svc   *EpicService
	epics *memory.EpicStore
	tasks *memory.TaskStore
}

func newEpicFixture(t *testing.T) *epicFixture {
	t.Helper()
	epics := memory.NewEpicStore()
	tasks := memory.NewTaskStore()
	svc := NewEpicService(epics, tasks, allowAll(t), discardLogger())
	svc.now = fixedClock
	return &epicFixture{svc: svc, epics: epics, tasks: tasks}
}

// --- NewEpicService ---

func TestNewEpicService_NilDefaults(t *testing.T) {
	t.Parallel()

	svc := NewEpicService(memory.NewEpicStore(), memory.NewTaskStore(), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewEpicService(nil logger) should create a no-op logger, got nil")
	}
	if _, ok := svc.membership.(OpenMembershipPolicy); !ok {
		t.Fatalf("NewEpicService(nil membership) membership = %T, want OpenMembershipPolicy", svc.membership)
	}
}

// --- Create ---

func TestEpicService_Create(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)

		created, err := fx.svc.Create(context.Background(), 42, validEpic())
		if err != nil {
			t.Fatalf("Create() error = %v, want nil", err)
		}
		if created.ID == 0 {
			t.Error("Create() should assign a non-zero id")
		}
	})

	t.Run("checks membership of the caller only", func(t *testing.T) {
		t.Parallel()
		policy := mocks.NewMockMembershipPolicy(t)
		svc := NewEpicService(memory.NewEpicStore(), memory.NewTaskStore(), policy, discardLogger())
		svc.now = fixedClock

		policy.EXPECT().
			CheckMembership(mock.Anything, int64(42), int64(10), (*int64)(nil)).
			Return(nil)

		if _, err := svc.Create(context.Background(), 42, validEpic()); err != nil {
			t.Fatalf("Create() error = %v, want nil", err)
		}
	})

	t.Run("rejects invalid epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)

		in := validEpic()
		in.ExecutiveID = 0
		_, err := fx.svc.Create(context.Background(), 42, in)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Create() error type = %T, want *domain.ValidationError", err)
		}
		if verr.Fields["executive_id"] != "must be positive, got 0" {
			t.Errorf("Create() executive_id detail = %q", verr.Fields["executive_id"])
		}
	})

	t.Run("propagates membership rejection", func(t *testing.T) {
		t.Parallel()
		policy := mocks.NewMockMembershipPolicy(t)
		svc := NewEpicService(memory.NewEpicStore(), memory.NewTaskStore(), policy, discardLogger())
		svc.now = fixedClock

		policy.EXPECT().
			CheckMembership(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrNotAuthorized)

		if _, err := svc.Create(context.Background(), 42, validEpic()); !errors.Is(err, domain.ErrNotAuthorized) {
			t.Fatalf("Create() error = %v, want ErrNotAuthorized", err)
		}
	})
}

// --- Update ---

func TestEpicService_Update(t *testing.T) {
	t.Parallel()

	t.Run("merges supplied fields", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		saved := seedEpic(t, fx.epics, validEpic())

		updated, err := fx.svc.Update(context.Background(), 42, saved.ID, &epic.UpdateRequest{
			Title:       strPtr("Venue teardown"),
			ExecutiveID: int64Ptr(99),
		})
		if err != nil {
			t.Fatalf("Update() error = %v, want nil", err)
		}
		if updated.Title != "Venue teardown" {
			t.Errorf("Update() Title = %q, want %q", updated.Title, "Venue teardown")
		}
		if updated.ExecutiveID != 99 {
			t.Errorf("Update() ExecutiveID = %d, want 99", updated.ExecutiveID)
		}
		if updated.EventID != saved.EventID {
			t.Errorf("Update() EventID = %d, want untouched %d", updated.EventID, saved.EventID)
		}
	})

	t.Run("returns not found for missing epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)

		_, err := fx.svc.Update(context.Background(), 42, 9000, &epic.UpdateRequest{Title: strPtr("x")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Update() error = %v, want ErrNotFound", err)
		}
		if !strings.Contains(err.Error(), "epic with id '9000'") {
			t.Errorf("Update() error = %q, want containing epic id", err.Error())
		}
	})

	t.Run("rejects invalid patch values", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)

		past := fixedNow.Add(-24 * time.Hour)
		_, err := fx.svc.Update(context.Background(), 42, 1, &epic.UpdateRequest{Deadline: &past})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Update() error = %v, want ErrValidation", err)
		}
	})
}

// --- AttachTask ---

func TestEpicService_AttachTask(t *testing.T) {
	t.Parallel()

	t.Run("links task and returns it", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())
		tk := seedTask(t, fx.tasks, validTask())

		attached, err := fx.svc.AttachTask(context.Background(), 42, e.ID, tk.ID)
		if err != nil {
			t.Fatalf("AttachTask() error = %v, want nil", err)
		}
		if attached.EpicID == nil || *attached.EpicID != e.ID {
			t.Fatalf("AttachTask() EpicID = %v, want %d", attached.EpicID, e.ID)
		}

		stored, _ := fx.tasks.FindByID(context.Background(), tk.ID)
		if stored.EpicID == nil || *stored.EpicID != e.ID {
			t.Errorf("AttachTask() persisted EpicID = %v, want %d", stored.EpicID, e.ID)
		}
	})

	t.Run("executive only", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())
		tk := seedTask(t, fx.tasks, validTask())

		_, err := fx.svc.AttachTask(context.Background(), 7, e.ID, tk.ID)
		if !errors.Is(err, domain.ErrNotAuthorized) {
			t.Fatalf("AttachTask() error = %v, want ErrNotAuthorized", err)
		}
		want := "user with id '7' is not authorized to manage tasks of epic with id '1'"
		if !strings.Contains(err.Error(), want) {
			t.Errorf("AttachTask() error = %q, want containing %q", err.Error(), want)
		}
	})

	t.Run("rejects cross-event attach", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())
		seed := validTask()
		seed.EventID = 20
		tk := seedTask(t, fx.tasks, seed)

		_, err := fx.svc.AttachTask(context.Background(), 42, e.ID, tk.ID)
		if !errors.Is(err, domain.ErrOperationNotAllowed) {
			t.Fatalf("AttachTask() error = %v, want ErrOperationNotAllowed", err)
		}
		if !strings.Contains(err.Error(), "belong to different events") {
			t.Errorf("AttachTask() error = %q, want different-events message", err.Error())
		}
	})

	t.Run("rejects task already in an epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())
		seed := validTask()
		seed.EpicID = int64Ptr(77)
		tk := seedTask(t, fx.tasks, seed)

		_, err := fx.svc.AttachTask(context.Background(), 42, e.ID, tk.ID)
		if !errors.Is(err, domain.ErrOperationNotAllowed) {
			t.Fatalf("AttachTask() error = %v, want ErrOperationNotAllowed", err)
		}
		if !strings.Contains(err.Error(), "already belongs to epic with id '77'") {
			t.Errorf("AttachTask() error = %q, want already-belongs message", err.Error())
		}
	})

	t.Run("returns not found for missing epic or task", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())

		if _, err := fx.svc.AttachTask(context.Background(), 42, 9000, 1); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("AttachTask() missing epic error = %v, want ErrNotFound", err)
		}
		if _, err := fx.svc.AttachTask(context.Background(), 42, e.ID, 9000); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("AttachTask() missing task error = %v, want ErrNotFound", err)
		}
	})
}

// --- DetachTask ---

func TestEpicService_DetachTask(t *testing.T) {
	t.Parallel()

	t.Run("unlinks task and returns it", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())
		seed := validTask()
		seed.EpicID = &e.ID
		tk := seedTask(t, fx.tasks, seed)

		detached, err := fx.svc.DetachTask(context.Background(), 42, e.ID, tk.ID)
		if err != nil {
			t.Fatalf("DetachTask() error = %v, want nil", err)
		}
		if detached.EpicID != nil {
			t.Errorf("DetachTask() EpicID = %d, want nil", *detached.EpicID)
		}
	})

	t.Run("rejects task outside this epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())
		tk := seedTask(t, fx.tasks, validTask())

		_, err := fx.svc.DetachTask(context.Background(), 42, e.ID, tk.ID)
		if !errors.Is(err, domain.ErrOperationNotAllowed) {
			t.Fatalf("DetachTask() error = %v, want ErrOperationNotAllowed", err)
		}
		if !strings.Contains(err.Error(), "does not belong to epic with id '1'") {
			t.Errorf("DetachTask() error = %q, want does-not-belong message", err.Error())
		}
	})

	t.Run("executive only", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())
		seed := validTask()
		seed.EpicID = &e.ID
		tk := seedTask(t, fx.tasks, seed)

		if _, err := fx.svc.DetachTask(context.Background(), 7, e.ID, tk.ID); !errors.Is(err, domain.ErrNotAuthorized) {
			t.Fatalf("DetachTask() error = %v, want ErrNotAuthorized", err)
		}
	})
}

// --- FindByID ---

func TestEpicService_FindByID(t *testing.T) {
	t.Parallel()

	t.Run("resolves the linked tasks", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())

		for i := 0; i < 3; i++ {
			seed := validTask()
			if i < 2 {
				seed.EpicID = &e.ID
			}
			seedTask(t, fx.tasks, seed)
		}

		got, err := fx.svc.FindByID(context.Background(), e.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v, want nil", err)
		}
		if len(got.Tasks) != 2 {
			t.Fatalf("FindByID() resolved %d tasks, want 2", len(got.Tasks))
		}
		if got.Tasks[0].ID != 1 || got.Tasks[1].ID != 2 {
			t.Errorf("FindByID() task ids = [%d %d], want [1 2]", got.Tasks[0].ID, got.Tasks[1].ID)
		}
	})

	t.Run("empty task list for a fresh epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())

		got, err := fx.svc.FindByID(context.Background(), e.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v, want nil", err)
		}
		if got.Tasks == nil || len(got.Tasks) != 0 {
			t.Errorf("FindByID() Tasks = %v, want empty non-nil slice", got.Tasks)
		}
	})

	t.Run("returns not found for missing epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)

		if _, err := fx.svc.FindByID(context.Background(), 9000); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("FindByID() error = %v, want ErrNotFound", err)
		}
	})
}

// --- Delete ---

func TestEpicService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("detaches every task and removes the epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())

		var ids []int64
		for i := 0; i < 10; i++ {
			seed := validTask()
			seed.EpicID = &e.ID
			tk := seedTask(t, fx.tasks, seed)
			ids = append(ids, tk.ID)
		}

		if err := fx.svc.Delete(context.Background(), 42, e.ID); err != nil {
			t.Fatalf("Delete() error = %v, want nil", err)
		}

		if _, err := fx.epics.FindByID(context.Background(), e.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete() epic still present, FindByID error = %v", err)
		}
		for _, id := range ids {
			tk, err := fx.tasks.FindByID(context.Background(), id)
			if err != nil {
				t.Fatalf("Delete() removed task %d: %v", id, err)
			}
			if tk.EpicID != nil {
				t.Errorf("Delete() task %d still linked to epic %d", id, *tk.EpicID)
			}
		}
	})

	t.Run("executive only", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)
		e := seedEpic(t, fx.epics, validEpic())

		if err := fx.svc.Delete(context.Background(), 7, e.ID); !errors.Is(err, domain.ErrNotAuthorized) {
			t.Fatalf("Delete() error = %v, want ErrNotAuthorized", err)
		}
		if _, err := fx.epics.FindByID(context.Background(), e.ID); err != nil {
			t.Errorf("Delete() removed the epic despite rejection: %v", err)
		}
	})

	t.Run("keeps the epic when a detach fails", func(t *testing.T) {
		t.Parallel()
		epics := mocks.NewMockEpicStore(t)
		tasks := mocks.NewMockTaskStore(t)
		svc := NewEpicService(epics, tasks, allowAll(t), discardLogger())
		svc.now = fixedClock

		e := validEpic()
		e.ID = 1
		linked := validTask()
		linked.ID = 5
		linked.EpicID = int64Ptr(1)

		saveErr := errors.New("connection reset")
		epics.EXPECT().FindByID(mock.Anything, int64(1)).Return(e, nil)
		tasks.EXPECT().ListByEpic(mock.Anything, int64(1)).Return([]task.Task{*linked}, nil)
		tasks.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, saveErr)

		err := svc.Delete(context.Background(), 42, 1)
		if !errors.Is(err, saveErr) {
			t.Fatalf("Delete() error = %v, want wrapped %v", err, saveErr)
		}
		// No epics.Delete expectation: the epic must survive a failed detach.
	})

	t.Run("returns not found for missing epic", func(t *testing.T) {
		t.Parallel()
		fx := newEpicFixture(t)

		if err := fx.svc.Delete(context.Background(), 42, 9000); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}
