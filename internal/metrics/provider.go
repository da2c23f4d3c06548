package metrics

import "time"

type Provider interface {
	FailureReported(result string)
	Recovered()
	DuplicateEvent()

	Transition(kind string)
	TickCompleted(d time.Duration, errs int)

	UpdateStatusCounts(counts map[string]int)
	UpdateAmounts(currency string, byOutcome map[string]int64)

	NotificationHandedOff(kind, result string)
	OutboxRelayed(result string)
	KafkaMessageProcessed(status string)

	RecordHTTPDuration(route, status string, d time.Duration)
	UpdateWorkerPoolMetrics(active, queueSize int)
}

type PrometheusProvider struct{}

func NewPrometheusProvider() *PrometheusProvider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) FailureReported(result string) {
	FailuresReportedTotal.WithLabelValues(result).Inc()
}

func (p *PrometheusProvider) Recovered() {
	RecoveriesTotal.Inc()
}

func (p *PrometheusProvider) DuplicateEvent() {
	DuplicateEventsTotal.Inc()
}

func (p *PrometheusProvider) Transition(kind string) {
	TransitionsTotal.WithLabelValues(kind).Inc()
}

func (p *PrometheusProvider) TickCompleted(d time.Duration, errs int) {
	TickDuration.Observe(d.Seconds())
	TickErrorsTotal.Add(float64(errs))
}

func (p *PrometheusProvider) UpdateStatusCounts(counts map[string]int) {
	for status, n := range counts {
		RecordsByStatus.WithLabelValues(status).Set(float64(n))
	}
}

func (p *PrometheusProvider) UpdateAmounts(currency string, byOutcome map[string]int64) {
	for outcome, v := range byOutcome {
		AmountByOutcome.WithLabelValues(currency, outcome).Set(float64(v))
	}
}

func (p *PrometheusProvider) NotificationHandedOff(kind, result string) {
	NotificationsTotal.WithLabelValues(kind, result).Inc()
}

func (p *PrometheusProvider) OutboxRelayed(result string) {
	OutboxMessagesTotal.WithLabelValues(result).Inc()
}

func (p *PrometheusProvider) KafkaMessageProcessed(status string) {
	KafkaMessagesProcessed.WithLabelValues(status).Inc()
}

func (p *PrometheusProvider) RecordHTTPDuration(route, status string, d time.Duration) {
	HTTPDuration.WithLabelValues(route, status).Observe(d.Seconds())
}

func (p *PrometheusProvider) UpdateWorkerPoolMetrics(active, queueSize int) {
	WorkerPoolActive.Set(float64(active))
	WorkerPoolQueueSize.Set(float64(queueSize))
}

type NoOpProvider struct{}

func NewNoOpProvider() *NoOpProvider {
	return &NoOpProvider{}
}

func (p *NoOpProvider) FailureReported(string)                           {}
func (p *NoOpProvider) Recovered()                                       {}
func (p *NoOpProvider) DuplicateEvent()                                  {}
func (p *NoOpProvider) Transition(string)                                {}
func (p *NoOpProvider) TickCompleted(time.Duration, int)                 {}
func (p *NoOpProvider) UpdateStatusCounts(map[string]int)                {}
func (p *NoOpProvider) UpdateAmounts(string, map[string]int64)           {}
func (p *NoOpProvider) NotificationHandedOff(string, string)             {}
func (p *NoOpProvider) OutboxRelayed(string)                             {}
func (p *NoOpProvider) KafkaMessageProcessed(string)                     {}
func (p *NoOpProvider) RecordHTTPDuration(string, string, time.Duration) {}
func (p *NoOpProvider) UpdateWorkerPoolMetrics(int, int)                 {}
