package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/eventplanr/task-service/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each backoff delay
// (±25% of the base delay).
const jitterFraction = 0.25

// doWithRetry runs the request up to maxAttempts times, replaying the
// buffered body on each attempt and backing off between them. It returns the
// final response in three shapes: (resp, nil) on a non-retryable status,
// (resp, err) when retries ran out with the last response's body intact, and
// (nil, err) when no response was obtained at all.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retryCfg.maxAttempts <= 0 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := captureBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			if waitErr := c.waitForRetry(ctx, req, attempt, lastErr); waitErr != nil {
				return nil, waitErr
			}
		}

		body.rewind(req)

		resp, doErr := c.httpClient.Do(req)
		switch {
		case doErr != nil:
			if !isRetryable(doErr) {
				return nil, doErr
			}
			lastErr = doErr

		case !isRetryableStatus(resp.StatusCode):
			return resp, nil

		default:
			lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
			if attempt == c.retryCfg.maxAttempts-1 {
				// Hand the last response back unread so the caller can
				// inspect the body.
				return resp, lastErr
			}
			// Drain before retrying so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}

	return nil, lastErr
}

// replayableBody holds a request body in memory so each retry attempt sends
// the same bytes.
type replayableBody []byte

func captureBody(req *http.Request) (replayableBody, error) {
	if req.Body == nil {
		return nil, nil
	}

	buf, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return replayableBody(buf), nil
}

func (b replayableBody) rewind(req *http.Request) {
	if b == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.ContentLength = int64(len(b))
}

// waitForRetry sleeps out the backoff for the upcoming attempt, bailing early
// on context cancellation. The retry is logged at WARN so repeated
// downstream flakiness is visible.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff computes the delay before retry number attempt (1-indexed):
// exponential growth capped at maxInterval, then ±25% jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := min(
		float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(attempt-1)),
		float64(cfg.maxInterval),
	)

	jitter := delay * jitterFraction * (2*secureRandFloat64() - 1)

	return time.Duration(max(delay+jitter, 0))
}

// secureRandFloat64 draws a uniform float64 in [0, 1) from crypto/rand.
func secureRandFloat64() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0
	}
	// Keep the top 53 bits so the value fits a float64 significand exactly.
	const significandBits = 53
	return float64(binary.BigEndian.Uint64(buf[:])>>(64-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a transport-level error is worth another
// attempt. Cancellation and deadline expiry are final; network errors and
// anything unidentified are retried.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	}

	// Network errors (including timeouts) and anything unidentified retry.
	return true
}

// isRetryableStatus reports whether a status code signals a transient
// condition: any 5xx, plus 429.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
