package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/passvault/internal/logger"
)

// RecoveryMiddleware turns a panic into a 500 JSON response and logs the stack.
// A response that already started is left as is.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Log.Errorw("panic recovered",
					"request_id", RequestIDFromContext(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"response_started", rw.wroteHeader,
					"stack", string(debug.Stack()),
				)
				if !rw.wroteHeader {
					writeJSONError(rw, http.StatusInternalServerError, "Internal server error")
				}
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
