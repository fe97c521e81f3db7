package middleware

import (
	"net/http"
	"time"

	"conftrack/internal/metrics"
)

// MetricsMiddleware records request count and latency per method, route
// pattern, and status. It labels by the mux pattern (not the raw URL) so
// path parameters do not explode label cardinality.
func MetricsMiddleware(m *metrics.Metrics, mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		mux.ServeHTTP(wrapped, r)
		_, pattern := mux.Handler(r)
		if pattern == "" {
			pattern = "unmatched"
		}
		m.ObserveHTTPRequest(r.Method, pattern, wrapped.status, time.Since(start))
	})
}
