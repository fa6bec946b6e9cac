package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics records the cost and outcome of each reporting aggregator.
// A nil *ReportMetrics is valid and records nothing.
type ReportMetrics struct {
	duration *prometheus.HistogramVec
	failure  *prometheus.CounterVec
	reports  *prometheus.CounterVec
}

// NewReportMetrics registers the reporting metrics on the provided registerer.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_aggregator_duration_seconds",
		Help:    "Duration of report aggregator queries in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"aggregator"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_aggregator_failures_total",
		Help: "Failed report aggregator queries.",
	}, []string{"aggregator"})
	reports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reports_built_total",
		Help: "Reports built per kind and outcome.",
	}, []string{"report", "outcome"})
	reg.MustRegister(duration, failure, reports)
	return &ReportMetrics{duration: duration, failure: failure, reports: reports}
}

// ObserveAggregator records one aggregator run. A non-nil err also counts
// as a failure.
func (m *ReportMetrics) ObserveAggregator(name string, d time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	name = normalizeLabel(name)
	m.duration.WithLabelValues(name).Observe(d.Seconds())
	if err != nil {
		m.failure.WithLabelValues(name).Inc()
	}
}

// IncReport counts one built (or failed) report of the given kind.
func (m *ReportMetrics) IncReport(kind string, err error) {
	if m == nil || m.reports == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.reports.WithLabelValues(normalizeLabel(kind), outcome).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
