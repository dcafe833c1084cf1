package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest_CountsPerRoute(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("test", "/t/hello", "GET", "200"))

	ObserveRequest("test", "/t/hello", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	ObserveRequest("test", "/t/hello", http.MethodGet, http.StatusOK, 7*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("test", "/t/hello", "GET", "200"))
	assert.Equal(t, before+2, after)
}

func TestObserveRequest_EmptyRouteIsUnmatched(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("test", unmatchedRoute, "GET", "404"))

	ObserveRequest("test", "", http.MethodGet, http.StatusNotFound, time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("test", unmatchedRoute, "GET", "404"))
	assert.Equal(t, before+1, after)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveRequest("scrape", "/s", http.MethodPost, http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "apidemo_http_requests_total"))
	assert.True(t, strings.Contains(body, "apidemo_http_request_duration_seconds"))
}
