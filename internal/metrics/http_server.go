package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_server",
		Name:      "requests_total",
		Help:      "Count of REST requests by route and status code.",
	}, []string{"route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_server",
		Name:      "request_duration_seconds",
		Help:      "Duration of REST requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})

	httpThrottleSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_server",
		Name:      "throttled_duration_seconds_total",
		Help:      "Total time requests spent waiting on the rate limiter.",
	})
)

// HTTPServer tracks metrics for the REST gateway.
type HTTPServer struct{}

// NewHTTPServer constructs a metrics collector for REST requests.
func NewHTTPServer() *HTTPServer {
	return &HTTPServer{}
}

// ObserveRequest records a finished request.
func (HTTPServer) ObserveRequest(route string, code int, started time.Time) {
	label := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(route, label).Inc()
	httpRequestDuration.WithLabelValues(route, label).Observe(time.Since(started).Seconds())
}

// ObserveThrottle records time spent waiting for a rate limiter slot.
func (HTTPServer) ObserveThrottle(waited time.Duration) {
	httpThrottleSeconds.Add(waited.Seconds())
}
