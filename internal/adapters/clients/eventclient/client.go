// Package eventclient is the outbound adapter for the external event service.
// It translates between that service's wire representations and the domain
// read models, and maps its HTTP failures to domain errors. The underlying
// instrumented client provides circuit breaking, retry, and tracing for every
// outbound call.
package eventclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eventplanr/task-service/internal/domain/event"
	"github.com/eventplanr/task-service/internal/platform/httpclient"
	"github.com/eventplanr/task-service/internal/ports"
)

// headerUserID carries the requesting user's identity to the event service,
// which applies its own visibility rules per user.
const headerUserID = "X-User-Id"

// Compile-time interface check.
var _ ports.EventClient = (*Client)(nil)

// Client implements ports.EventClient over the event service's REST API.
type Client struct {
	httpClient *httpclient.Client
	logger     *slog.Logger
}

// New creates a Client that sends requests through the given instrumented
// HTTP client. The client's BaseURL should point at the event service root.
func New(httpClient *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{httpClient: httpClient, logger: logger}
}

// GetEvent fetches a single event from GET /events/{eventId} as callerID.
// A remote 404 is mapped to domain.ErrNotFound with the canonical
// "event was not found" detail.
func (c *Client) GetEvent(ctx context.Context, callerID, eventID int64) (*event.Event, error) {
	path := fmt.Sprintf("/events/%d", eventID)

	var dto eventDTO
	if err := c.get(ctx, path, callerID, &dto); err != nil {
		return nil, err
	}

	ev := dto.toDomain()
	return &ev, nil
}

// ListTeamMembers fetches the staffing records for an event from
// GET /events/teams/{eventId} as callerID.
func (c *Client) ListTeamMembers(ctx context.Context, callerID, eventID int64) ([]event.TeamMember, error) {
	path := fmt.Sprintf("/events/teams/%d", eventID)

	var dtos []teamMemberDTO
	if err := c.get(ctx, path, callerID, &dtos); err != nil {
		return nil, err
	}

	return toDomainTeam(dtos), nil
}

// Name identifies the downstream service in readiness output.
func (c *Client) Name() string {
	return "event-service"
}

// HealthCheck reports the event service's availability from the circuit
// breaker state; no network call is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.httpClient.HealthCheck(ctx)
}

// get executes a GET request with the caller's identity header, validates
// the status code, and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, callerID int64, out any) error {
	url := c.httpClient.BaseURL() + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	req.Header.Set(headerUserID, strconv.FormatInt(callerID, 10))

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		if resp != nil {
			defer c.closeBody(ctx, resp)
			return translateHTTPError(resp)
		}
		c.logger.ErrorContext(ctx, "event service request failed",
			slog.String("method", http.MethodGet),
			slog.String("url", url),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "event service returned unexpected status",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return translateHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from GET %s: %w", path, err)
	}
	return nil
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.Any("error", err),
		)
	}
}
