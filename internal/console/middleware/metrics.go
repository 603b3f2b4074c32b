package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

var (
	pageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_http_requests_total",
			Help: "Console requests by route pattern and status class",
		},
		[]string{"method", "route", "class"},
	)

	pageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_http_request_duration_seconds",
			Help:    "Console request latency, including time spent waiting on the camal API",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"route"},
	)

	sessionVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_session_verifications_total",
			Help: "Cookie tokens checked against the camal API before opening a session, by outcome",
		},
		[]string{"outcome"},
	)
)

// Metrics counts requests per chi route pattern, so every /dashboard/people/{id}
// lands on one series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routeLabel(r)
		pageRequests.WithLabelValues(r.Method, route, statusClass(status)).Inc()
		pageDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel is the matched chi pattern, or "unmatched" for 404s.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
