//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Counters(t *testing.T) {
	r := metrics.New()

	r.ObserveConfirmation(booking.ConfirmationFull)
	r.ObserveConfirmation(booking.ConfirmationDegraded)
	r.ObserveConfirmation(booking.ConfirmationDegraded)
	r.ObserveStep("calendar", booking.StepFallback)
	r.AdminLoginFailed()

	expected := `
# HELP booking_confirmations_total Total number of booking confirmations by terminal status.
# TYPE booking_confirmations_total counter
booking_confirmations_total{status="confirmed"} 1
booking_confirmations_total{status="confirmed_degraded"} 2
# HELP admin_login_failures_total Total number of failed admin login attempts.
# TYPE admin_login_failures_total counter
admin_login_failures_total 1
`
	err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected),
		"booking_confirmations_total", "admin_login_failures_total")
	require.NoError(t, err)
}

func TestRegistry_Handler(t *testing.T) {
	r := metrics.New()
	r.ObserveHTTP("GET", "/health", "200", 0.002)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_request_duration_seconds_count{method="GET",route="/health",status="200"} 1`)
}
