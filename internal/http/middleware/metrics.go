package middleware

import (
	"net/http"
	"strconv"
	"time"

	"login_checker/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusRecorder{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(srw, r)
		if srw.status == 0 {
			srw.status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		duration := time.Since(start).Seconds()

		codeStr := strconv.Itoa(srw.status)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, codeStr).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration)

		if srw.status >= 400 {
			metrics.HTTPRequestErrorsTotal.WithLabelValues(r.Method, route, codeStr).Inc()
		}
	})
}

// statusRecorder captures HTTP status codes
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

// Write sends an implicit 200 when the handler never set a status.
func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}
