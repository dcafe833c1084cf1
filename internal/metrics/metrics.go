package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRequestsTotal counts handled requests per demo server and route pattern.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "apidemo_http_requests_total",
		Help: "Total number of HTTP requests handled by the demo servers",
	},
	[]string{"server", "route", "method", "status"},
)

// HTTPRequestDuration records request latency per demo server and route pattern.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "apidemo_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests handled by the demo servers",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"server", "route", "method"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
}

// unmatchedRoute labels requests that no route accepted, so arbitrary paths
// cannot blow up label cardinality.
const unmatchedRoute = "unmatched"

// ObserveRequest records one finished request. An empty route means the
// router did not match anything.
func ObserveRequest(server, route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = unmatchedRoute
	}
	HTTPRequestsTotal.WithLabelValues(server, route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(server, route, method).Observe(elapsed.Seconds())
}

// Handler returns an http.Handler for Prometheus scraping
func Handler() http.Handler {
	return promhttp.Handler()
}
