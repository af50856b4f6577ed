// Package health tracks the availability of downstream dependencies. The
// readiness endpoint asks the registry before declaring the service fit for
// traffic.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/eventplanr/task-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry collects [ports.HealthChecker] implementations registered during
// startup and polls them on demand. All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

func New() *Registry {
	return &Registry{}
}

// Register adds a checker. Checkers registered while CheckAll is running are
// picked up by the next probe.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and reports the outcome per checker
// name; a nil entry means healthy. The checker list is snapshotted first so
// potentially slow checks never run under the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}
