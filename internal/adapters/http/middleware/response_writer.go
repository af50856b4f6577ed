// Package middleware provides the inbound HTTP request pipeline.
//
// The pipeline, outermost first:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Identity → Timeout → handler
//
// Every middleware is a Middleware value and composes via Chain.
package middleware

import "net/http"

// statusRecorder observes the status code and byte count flowing through an
// http.ResponseWriter. Recovery uses it to know whether a response was
// already started; otel and logging read the final status.
type statusRecorder struct {
	http.ResponseWriter

	status      int
	bytes       int64
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code written; later calls are dropped,
// matching net/http's duplicate-WriteHeader behavior without the log spam.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wroteHeader {
		return
	}
	sr.status = code
	sr.wroteHeader = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(p []byte) (int, error) {
	// A bare Write implies 200 OK, same as the underlying writer.
	sr.wroteHeader = true
	n, err := sr.ResponseWriter.Write(p)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController and interface
// upgrades such as http.Flusher.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
