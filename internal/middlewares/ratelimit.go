package middlewares

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/metrics"
)

//go:generate mockgen -source=ratelimit.go -destination=mock_ratelimit.go -package=middlewares

// HitCounter counts requests for a key within a fixed window.
type HitCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitWindow is the fixed window used by RateLimitMiddleware.
const RateLimitWindow = time.Minute

// RateLimitMiddleware answers 429 once a client IP exceeds limit requests per window.
// Counter errors let the request through. A nil counter or a non-positive limit disables it.
func RateLimitMiddleware(counter HitCounter, limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if counter == nil || limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := clientIP(r)

			count, err := counter.Hit(ctx, ip, RateLimitWindow)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable",
					"request_id", RequestIDFromContext(ctx),
					"ip", ip,
					"err", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				metrics.RateLimited.Inc()
				logger.Log.Infow("rate limit exceeded", "ip", ip, "count", count)
				w.Header().Set("Retry-After", "60")
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of RemoteAddr. Forwarding headers are not
// read here; behind a trusted proxy the router rewrites RemoteAddr first.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
