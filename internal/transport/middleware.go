package transport

import (
	"net/http"
	"time"

	"go.uber.org/ratelimit"
)

// RateLimit delays requests so that next sees at most the limiter's rate.
// Waiting time is reported to metrics.
func RateLimit(limiter ratelimit.Limiter, metrics HTTPMetrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		limiter.Take()
		metrics.ObserveThrottle(time.Since(started))
		next.ServeHTTP(w, r)
	})
}
