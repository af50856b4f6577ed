package middleware

import "net/http"

// Middleware wraps an http.Handler with cross-cutting behavior. Everything in
// this package returns values of this shape so they compose with Chain.
type Middleware func(http.Handler) http.Handler

// Chain folds middlewares into a single Middleware. Ordering follows the
// argument list: the first middleware sees the request first and the response
// last, so
//
//	Chain(Recovery, RequestID, Identity)(h)
//
// behaves like Recovery(RequestID(Identity(h))).
func Chain(middlewares ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		wrapped := h
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](wrapped)
		}
		return wrapped
	}
}
