package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message outcomes
const (
	OutcomeResolved     = "resolved"
	OutcomeUnrecognized = "unrecognized"
)

// Feed fetch results
const (
	FetchResultOK    = "ok"
	FetchResultEmpty = "empty"
	FetchResultError = "error"
)

// Metrics holds all Prometheus metrics for the bot
type Metrics struct {
	MessagesTotal      *prometheus.CounterVec
	FeedFetchesTotal   *prometheus.CounterVec
	FeedFetchErrors    *prometheus.CounterVec
	FeedFetchDuration  prometheus.Histogram
	RepliesFailedTotal prometheus.Counter
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

// NewMetrics registers all counters and histograms on the default registry.
// Call it once per process; use GetDefaultMetrics otherwise.
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipc_news_bot_messages_total",
				Help: "Total number of text messages handled, by outcome",
			},
			[]string{"outcome"},
		),
		FeedFetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipc_news_bot_feed_fetches_total",
				Help: "Total number of news feed fetches, by result",
			},
			[]string{"result"},
		),
		FeedFetchErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipc_news_bot_feed_fetch_errors_total",
				Help: "Total number of news feed fetch errors, by error type",
			},
			[]string{"error_type"},
		),
		FeedFetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ipc_news_bot_feed_fetch_duration_seconds",
			Help:    "Duration of news feed fetches",
			Buckets: prometheus.DefBuckets,
		}),
		RepliesFailedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ipc_news_bot_replies_failed_total",
			Help: "Total number of replies that could not be delivered to Telegram",
		}),
	}
}

// RecordMessage records a handled message
func (m *Metrics) RecordMessage(outcome string) {
	m.MessagesTotal.WithLabelValues(outcome).Inc()
}

// RecordFetch records a completed feed fetch and its duration
func (m *Metrics) RecordFetch(result string, durationSeconds float64) {
	m.FeedFetchesTotal.WithLabelValues(result).Inc()
	m.FeedFetchDuration.Observe(durationSeconds)
}

// RecordFetchError records a failed feed fetch
func (m *Metrics) RecordFetchError(errorType string) {
	if errorType == "" {
		errorType = "unknown"
	}
	m.FeedFetchErrors.WithLabelValues(errorType).Inc()
}

// RecordReplyFailure records a reply that Telegram rejected
func (m *Metrics) RecordReplyFailure() {
	m.RepliesFailedTotal.Inc()
}
