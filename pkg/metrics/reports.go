package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics records outcomes of dashboard snapshot builds.
type ReportMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewReportMetrics registers the report metrics on the provided registerer.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_duration_seconds",
		Help:    "Duration of dashboard snapshot builds in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"window"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_success",
		Help: "Successful dashboard snapshot builds.",
	}, []string{"window"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_failure",
		Help: "Failed dashboard snapshot builds.",
	}, []string{"window"})
	reg.MustRegister(duration, success, failure)
	return &ReportMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the build duration for the named window.
func (r *ReportMetrics) ObserveDuration(window string, duration time.Duration) {
	if r == nil || r.duration == nil {
		return
	}
	r.duration.WithLabelValues(normalizeLabel(window)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named window.
func (r *ReportMetrics) IncSuccess(window string) {
	if r == nil || r.success == nil {
		return
	}
	r.success.WithLabelValues(normalizeLabel(window)).Inc()
}

// IncFailure increments the failure counter for the named window.
func (r *ReportMetrics) IncFailure(window string) {
	if r == nil || r.failure == nil {
		return
	}
	r.failure.WithLabelValues(normalizeLabel(window)).Inc()
}

func normalizeLabel(window string) string {
	if window == "" {
		return "custom"
	}
	return window
}
