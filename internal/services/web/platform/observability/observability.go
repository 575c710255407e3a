// Package observability provides request logging middleware for the web service.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/meganhq/megan-web/internal/services/web/platform/httpx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(statusCode int) {
	rec.status = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}

// RequestLogger logs one key=value line per request.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			if logger == nil {
				return
			}
			requestID := "-"
			if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
				requestID = rid
			}
			logger.Printf(
				"request method=%s path=%s status=%d duration_ms=%d request_id=%s",
				r.Method,
				r.URL.Path,
				rec.status,
				time.Since(start).Milliseconds(),
				requestID,
			)
		})
	}
}
