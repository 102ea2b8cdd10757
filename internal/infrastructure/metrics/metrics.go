package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the service.
type Metrics struct {
	ExtractionsTotal *prometheus.CounterVec
	ActionsExtracted prometheus.Histogram
	UploadsTotal     *prometheus.CounterVec
	EmailsSentTotal  prometheus.Counter
	SharesCreated    prometheus.Counter
}

// New registers the service metrics once and returns them.
//
// Metrics:
//   - meeting_actions_extractions_total{source} - extraction runs by source (text, upload)
//   - meeting_actions_actions_per_extraction - action items per run
//   - meeting_actions_uploads_total{kind} - uploads by kind (text, audio, rejected)
//   - meeting_actions_emails_sent_total - emails delivered
//   - meeting_actions_shares_created_total - share links created
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			ExtractionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "meeting_actions_extractions_total",
					Help: "Total number of extraction runs",
				},
				[]string{"source"},
			),
			ActionsExtracted: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "meeting_actions_actions_per_extraction",
					Help:    "Number of action items returned per extraction",
					Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
				},
			),
			UploadsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "meeting_actions_uploads_total",
					Help: "Total number of uploaded transcript files",
				},
				[]string{"kind"},
			),
			EmailsSentTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "meeting_actions_emails_sent_total",
					Help: "Total number of action item emails sent",
				},
			),
			SharesCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "meeting_actions_shares_created_total",
					Help: "Total number of share links created",
				},
			),
		}
	})
	return globalMetrics
}

// ObserveExtraction records one extraction run.
func (m *Metrics) ObserveExtraction(source string, actions int) {
	if m == nil {
		return
	}
	m.ExtractionsTotal.WithLabelValues(source).Inc()
	m.ActionsExtracted.Observe(float64(actions))
}

// ObserveUpload records one upload by kind.
func (m *Metrics) ObserveUpload(kind string) {
	if m == nil {
		return
	}
	m.UploadsTotal.WithLabelValues(kind).Inc()
}

// ObserveEmails records delivered emails.
func (m *Metrics) ObserveEmails(n int) {
	if m == nil {
		return
	}
	m.EmailsSentTotal.Add(float64(n))
}

// ObserveShare records a created share link.
func (m *Metrics) ObserveShare() {
	if m == nil {
		return
	}
	m.SharesCreated.Inc()
}
