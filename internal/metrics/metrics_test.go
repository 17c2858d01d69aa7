package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trainline/backend/internal/metrics"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.StationsAppended.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.StationsAppended))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.StationsAppended))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := metrics.New()
	m.StationsAppended.Add(3)
	m.Requests.WithLabelValues("GET", "/healthz", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "trainline_stations_appended_total 3")
	assert.Contains(t, string(body), `trainline_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
