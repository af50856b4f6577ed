package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/eventplanr/task-service/internal/adapters/http/dto"
)

// errInternalServer is what clients see after a recovered panic. The panic
// value and stack stay in the logs only.
var errInternalServer = errors.New("internal server error")

// Recovery converts panics in downstream handlers into logged RFC 9457 500
// responses. When the handler already started writing a response before
// panicking, the panic is logged and the partial response is left as is.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)
			defer func() {
				if v := recover(); v != nil {
					logPanic(logger, r, v)
					if !sr.wroteHeader {
						dto.WriteErrorResponse(sr, r, errInternalServer)
					}
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}

func logPanic(logger *slog.Logger, r *http.Request, v any) {
	logger.ErrorContext(r.Context(), "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}
