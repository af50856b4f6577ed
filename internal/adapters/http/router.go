// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventplanr/task-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	taskHandler *handlers.TaskHandler,
	epicHandler *handlers.EpicHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Task CRUD and search.
		r.Get("/tasks", taskHandler.SearchTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Patch("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)

		// Epic CRUD.
		r.Post("/epics", epicHandler.CreateEpic)
		r.Get("/epics/{id}", epicHandler.GetEpic)
		r.Patch("/epics/{id}", epicHandler.UpdateEpic)
		r.Delete("/epics/{id}", epicHandler.DeleteEpic)

		// Epic composition: link and unlink tasks.
		r.Post("/epics/{epicId}/tasks/{taskId}", epicHandler.AttachTask)
		r.Delete("/epics/{epicId}/tasks/{taskId}", epicHandler.DetachTask)
	})

	return r
}
