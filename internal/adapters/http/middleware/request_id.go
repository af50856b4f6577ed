package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/eventplanr/task-service/internal/platform/httpclient"
)

// HeaderRequestID carries the per-request correlation id on both the inbound
// request and the response.
const HeaderRequestID = "X-Request-ID"

// requestIDKey is this package's own context key. The id is additionally
// stored under httpclient's key so neither package has to import the other's
// internals.
type requestIDKey struct{}

// WithRequestID stores the request id in the context for both inbound
// consumers (logging) and the outbound HTTP client, which echoes it on the
// X-Request-ID header of downstream calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request id stored in ctx, or "" when the
// request never passed through the RequestID middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID assigns every request a correlation id. An id supplied by the
// caller on X-Request-ID is trusted and reused so that ids survive proxy
// hops; otherwise a fresh UUID v4 is generated. The id is placed in the
// request context and echoed on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = newRequestID()
			}

			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// newRequestID returns a random UUID v4 in its canonical textual form.
func newRequestID() string {
	var raw [16]byte
	_, _ = rand.Read(raw[:])

	// RFC 4122: version 4 in the high nibble of byte 6, variant 10 in the
	// top two bits of byte 8.
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80

	s := hex.EncodeToString(raw[:])
	return s[:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:]
}
