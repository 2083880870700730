package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ctxKeyRequestID struct{}

// RequestID returns the id stored by RequestIDLoggerMiddleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

func RequestIDLoggerMiddleware(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(`x-request-id`)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(`x-request-id`, reqID)
			ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, reqID)
			srw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			start := time.Now()
			defer func() {
				entry := logger.WithFields(log.Fields{
					`method`:     r.Method,
					`path`:       r.URL.Path,
					`status`:     srw.status,
					`request_id`: reqID,
					`duration`:   time.Since(start).String(),
				})

				if rec := recover(); rec != nil {
					entry = entry.WithFields(log.Fields{
						`error`: fmt.Sprintf(`%v`, rec),
						`stack`: string(debug.Stack()),
					})
					entry.Error(`panic recovered`)
					// headers already went out, the client gets a truncated response
					if srw.wroteHeader {
						return
					}
					srw.Header().Set(`Content-Type`, `application/json`)
					srw.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(srw).Encode(map[string]string{
						`error`:      `internal server error`,
						`request_id`: reqID,
					})
				} else if srw.status >= 400 {
					entry.Error(`request completed with error status`)
				} else {
					entry.Info(`request completed`)
				}
			}()

			next.ServeHTTP(srw, r.WithContext(ctx))
		})
	}
}
