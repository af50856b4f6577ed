package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"
)

// Timeout bounds handler execution time. The handler runs with a deadline on
// its context; if it has not finished when the deadline passes, the client
// receives a 504 and whatever the handler writes afterwards is discarded.
func Timeout(limit time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			bw := &bufferedWriter{dst: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				bw.deliver()
			case <-ctx.Done():
				bw.timedOut()
			}
		})
	}
}

// bufferedWriter holds the handler's response in memory so that nothing
// reaches the client until the race between handler completion and the
// deadline is decided. The mutex serializes the handler goroutine against
// deliver/timedOut.
type bufferedWriter struct {
	dst http.ResponseWriter

	mu          sync.Mutex
	header      http.Header
	body        []byte
	status      int
	wroteHeader bool
	abandoned   bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.header == nil {
		bw.header = make(http.Header)
	}
	return bw.header
}

func (bw *bufferedWriter) Write(p []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if !bw.wroteHeader {
		bw.status = http.StatusOK
		bw.wroteHeader = true
	}
	bw.body = append(bw.body, p...)
	return len(p), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.wroteHeader {
		return
	}
	bw.status = code
	bw.wroteHeader = true
}

// deliver flushes the buffered response to the client after the handler
// finished in time.
func (bw *bufferedWriter) deliver() {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.abandoned {
		return
	}
	if bw.header != nil {
		maps.Copy(bw.dst.Header(), bw.header)
	}
	if bw.wroteHeader {
		bw.dst.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = bw.dst.Write(bw.body)
	}
}

// timedOut answers 504 and marks the buffer abandoned so a late-finishing
// handler cannot write on top of it.
func (bw *bufferedWriter) timedOut() {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	bw.abandoned = true
	bw.dst.WriteHeader(http.StatusGatewayTimeout)
}
