package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes recorded on calculationsTotal.
const (
	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fincalc_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status_code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fincalc_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fincalc_calculations_total",
		Help: "Total number of calculations by type and outcome.",
	}, []string{"type", "outcome"})

	calculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fincalc_calculation_duration_seconds",
		Help:    "Duration of individual calculations in seconds.",
		Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
	}, []string{"type"})
)

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			routePattern := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				routePattern = rctx.RoutePattern()
			}
			httpRequestsTotal.WithLabelValues(r.Method, routePattern, strconv.Itoa(ww.Status())).Inc()
			httpRequestDuration.WithLabelValues(r.Method, routePattern).Observe(time.Since(start).Seconds())
		}()

		next.ServeHTTP(ww, r)
	})
}

func observeCalculation(calcType, outcome string, elapsed time.Duration) {
	calculationsTotal.WithLabelValues(calcType, outcome).Inc()
	calculationDuration.WithLabelValues(calcType).Observe(elapsed.Seconds())
}
