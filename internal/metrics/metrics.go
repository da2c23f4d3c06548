package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FailuresReportedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recovery_failures_reported_total",
		Help: "Payment failure events accepted, by upsert result",
	}, []string{"result"})

	RecoveriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recovery_recoveries_total",
		Help: "Records moved to recovered",
	})

	DuplicateEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recovery_duplicate_events_total",
		Help: "Provider events dropped as duplicates",
	})

	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recovery_transitions_total",
		Help: "Scheduled transitions by notification kind",
	}, []string{"kind"})

	TickErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recovery_tick_errors_total",
		Help: "Per-record failures during scheduler ticks",
	})

	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recovery_tick_duration_seconds",
		Help:    "Duration of scheduler ticks in seconds",
		Buckets: prometheus.DefBuckets,
	})

	RecordsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "recovery_records_by_status",
		Help: "Number of records by status",
	}, []string{"status"})

	AmountByOutcome = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "recovery_amount_minor_units",
		Help: "Sum of record amounts in minor units by currency and outcome",
	}, []string{"currency", "outcome"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recovery_notifications_total",
		Help: "Notification intents handed off, by kind and result",
	}, []string{"kind", "result"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recovery_http_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})

	WorkerPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "recovery_worker_pool_active",
		Help: "Number of workers in the delivery pool",
	})

	WorkerPoolQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "recovery_worker_pool_queue_size",
		Help: "Current size of the delivery pool queue",
	})

	KafkaMessagesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recovery_kafka_messages_processed_total",
		Help: "Total number of processed Kafka messages",
	}, []string{"status"})

	OutboxMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recovery_outbox_messages_total",
		Help: "Outbox messages relayed, by result",
	}, []string{"result"})
)
