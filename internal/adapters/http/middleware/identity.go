package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// HeaderUserID is the header carrying the caller's user id. Every API
// endpoint acts on behalf of the user named here; the id is forwarded to the
// event service on outbound membership reads.
const HeaderUserID = "X-User-Id"

// userIDKey is the context key for storing the caller's user id.
type userIDKey struct{}

// WithUserID returns a new context with the given user id stored in it.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromContext extracts the caller's user id from the context.
// The second return value reports whether an id was present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// Identity returns middleware that parses the X-User-Id header and stores the
// caller's user id in the request context. A missing header is not an error
// at this layer; handlers that require an identity reject the request
// themselves so that public endpoints (health probes) pass through untouched.
func Identity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			if raw != "" {
				if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
					r = r.WithContext(WithUserID(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
