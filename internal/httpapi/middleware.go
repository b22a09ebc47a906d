package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/intercepted16/promptkit/internal/logger"
	"github.com/intercepted16/promptkit/internal/metrics"
)

// statusWriter captures the response status for the observability sink. It
// forwards Flush so the SSE path still sees a flusher through the wrapper.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Flush() {
	if f, ok := sw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withObservability records (method, path, status), latency, and request
// payload size for every request, and logs each request with a generated id.
func withObservability(sink *metrics.Recorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		latency := time.Since(start)
		bodyBytes := r.ContentLength
		if bodyBytes < 0 {
			bodyBytes = 0
		}

		sink.Observe(r.Method, r.URL.Path, sw.status, latency, bodyBytes)
		logger.Log.Infow("[http] request",
			"id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"latencyMs", latency.Milliseconds(),
			"bytes", bodyBytes,
		)
	})
}
