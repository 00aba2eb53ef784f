package metrics

import (
	"net/http"

	"consultation-booking/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	confirmations *prometheus.CounterVec
	steps         *prometheus.CounterVec
	loginFailures prometheus.Counter
	httpDuration  *prometheus.HistogramVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg: reg,
		confirmations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "booking_confirmations_total",
			Help: "Total number of booking confirmations by terminal status.",
		}, []string{"status"}),
		steps: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "booking_step_results_total",
			Help: "Total number of orchestration step outcomes.",
		}, []string{"step", "result"}),
		loginFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "admin_login_failures_total",
			Help: "Total number of failed admin login attempts.",
		}),
		httpDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route", "status"}),
	}
}

func (r *Registry) ObserveConfirmation(status booking.ConfirmationStatus) {
	r.confirmations.WithLabelValues(string(status)).Inc()
}

func (r *Registry) ObserveStep(step string, result booking.StepResult) {
	r.steps.WithLabelValues(step, string(result)).Inc()
}

func (r *Registry) AdminLoginFailed() {
	r.loginFailures.Inc()
}

func (r *Registry) ObserveHTTP(method, route, status string, seconds float64) {
	r.httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
