package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated  *prometheus.CounterVec
	transactionsImported prometheus.Counter
	transactionsDeleted  prometheus.Counter
	listQueries          *prometheus.CounterVec
	listQueryDuration    prometheus.Histogram
	analyticsQueries     *prometheus.CounterVec
	analyticsDuration    *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		transactionsImported: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_imported_total",
				Help: "Total number of transactions imported via bulk upload",
			},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		listQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_list_queries_total",
				Help: "Total number of transaction list queries",
			},
			[]string{"status"},
		),
		listQueryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_list_query_duration_milliseconds",
				Help:    "Transaction list query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		analyticsQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_queries_total",
				Help: "Total number of analytics queries by operation",
			},
			[]string{"operation", "status"},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_query_duration_milliseconds",
				Help:    "Analytics query duration in milliseconds by operation",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordTransactionCreated(transactionType string) {
	m.transactionsCreated.WithLabelValues(transactionType).Inc()
}

func (m *PrometheusMetrics) RecordTransactionsImported(count int) {
	m.transactionsImported.Add(float64(count))
}

func (m *PrometheusMetrics) RecordTransactionDeleted() {
	m.transactionsDeleted.Inc()
}

func (m *PrometheusMetrics) RecordListQuery(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.listQueries.WithLabelValues(status).Inc()
	m.listQueryDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAnalyticsQuery(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.analyticsQueries.WithLabelValues(operation, status).Inc()
	m.analyticsDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}

// noopMetricsRecorder discards all observations. Used in tests where the
// default prometheus registry would reject duplicate registrations across
// suites.
type noopMetricsRecorder struct{}

func NewNoopMetricsRecorder() MetricsRecorderInterface {
	return &noopMetricsRecorder{}
}

func (noopMetricsRecorder) RecordTransactionCreated(string)                   {}
func (noopMetricsRecorder) RecordTransactionsImported(int)                    {}
func (noopMetricsRecorder) RecordTransactionDeleted()                         {}
func (noopMetricsRecorder) RecordListQuery(time.Duration, error)              {}
func (noopMetricsRecorder) RecordAnalyticsQuery(string, time.Duration, error) {}
