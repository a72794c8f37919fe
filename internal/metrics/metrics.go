package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	// OrdersCreated counts issued order ids by persistence outcome:
	// "persisted" means the backend accepted the insert, "soft" means the
	// id was returned despite a failed insert (lenient policy).
	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_created_total",
			Help: "Orders created, labelled by persistence outcome.",
		},
		[]string{"outcome"},
	)

	PersistenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_persistence_failures_total",
			Help: "Order inserts that failed against the backend.",
		},
	)

	ConfirmationEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_confirmation_emails_total",
			Help: "Confirmation email dispatch attempts by status.",
		},
		[]string{"status"},
	)
)

const (
	OutcomePersisted = "persisted"
	OutcomeSoft      = "soft"

	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
	EmailStatusSkipped = "skipped"
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		pathPattern := normalizePath(r.URL.Path)

		defer func() {

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// normalizePath collapses path parameters so the route labels stay low
// cardinality. The middleware sits outside the mux, so the raw path is all
// there is to work with.
func normalizePath(path string) string {

	prefixes := []struct{ prefix, pattern string }{
		{"/api/v1/checkout/confirmation/", "/api/v1/checkout/confirmation/{orderId}"},
		{"/api/v1/carts/items/", "/api/v1/carts/items/{id}"},
		{"/api/v1/products/", "/api/v1/products/{slug}"},
	}

	for _, p := range prefixes {
		if strings.HasPrefix(path, p.prefix) && len(path) > len(p.prefix) {
			return p.pattern
		}
	}

	return path
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
