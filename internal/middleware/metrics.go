package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trainline/backend/internal/metrics"
)

// unmatchedRoute labels requests that did not resolve to a registered route,
// keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// NewMetricsHandler returns a middleware that counts requests and observes
// their latency, labelled by chi route pattern rather than raw path.
func NewMetricsHandler(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := routePattern(r)
			m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(statusOf(ww))).Inc()
			m.Latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
