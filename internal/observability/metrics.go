package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the render counters exported on /metrics.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Sections prometheus.Histogram
}

// NewMetrics creates the render metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cv_render_requests_total",
			Help: "Render requests by output format and outcome.",
		}, []string{"format", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cv_render_duration_seconds",
			Help:    "Time spent rendering one document.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"format"}),
		Sections: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cv_sections_rendered",
			Help:    "Number of visible sections per rendered document.",
			Buckets: prometheus.LinearBuckets(0, 2, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Duration, m.Sections)
	}
	return m
}

// ObserveRender records one finished render.
func (m *Metrics) ObserveRender(format, status string, elapsed time.Duration, sections int) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(format, status).Inc()
	m.Duration.WithLabelValues(format).Observe(elapsed.Seconds())
	if status == "ok" {
		m.Sections.Observe(float64(sections))
	}
}
