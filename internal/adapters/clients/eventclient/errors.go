package eventclient

import (
	"fmt"
	"net/http"

	"github.com/eventplanr/task-service/internal/domain"
)

// translateHTTPError maps an event service error response to a domain error.
// 404 means the referenced event is unknown; everything else is surfaced as
// an unclassified downstream failure, which propagates to the caller without
// being folded into a business error.
func translateHTTPError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("event was not found: %w", domain.ErrNotFound)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("event service rejected the request: %w", domain.ErrNotAuthorized)

	default:
		return fmt.Errorf("event service returned status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}
}
