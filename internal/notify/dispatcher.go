package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
	"gitlab.ozon.dev/safariproxd/recovery/internal/workerpool"
)

var ErrQueueFull = workerpool.ErrQueueFull

// Sink delivers an intent. Sinks may block; the dispatcher runs them on
// pool workers.
type Sink interface {
	Deliver(ctx context.Context, intent domain.NotificationIntent) error
}

type SinkFunc func(ctx context.Context, intent domain.NotificationIntent) error

func (f SinkFunc) Deliver(ctx context.Context, intent domain.NotificationIntent) error {
	return f(ctx, intent)
}

// Dispatcher implements app.Notifier on top of a worker pool.
type Dispatcher struct {
	pool    *workerpool.Pool
	sinks   []Sink
	timeout time.Duration
	metrics metrics.Provider
}

func NewDispatcher(pool *workerpool.Pool, timeout time.Duration, m metrics.Provider, sinks ...Sink) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	return &Dispatcher{pool: pool, sinks: sinks, timeout: timeout, metrics: m}
}

// Notify queues delivery and returns immediately. The delivery outlives the
// caller's context.
func (d *Dispatcher) Notify(ctx context.Context, intent domain.NotificationIntent) error {
	jobCtx := context.WithoutCancel(ctx)
	err := d.pool.TrySubmit(workerpool.Job{
		Ctx:  jobCtx,
		Name: string(intent.Kind),
		Run: func(ctx context.Context) (any, error) {
			ctx, cancel := context.WithTimeout(ctx, d.timeout)
			defer cancel()
			d.deliver(ctx, intent)
			return nil, nil
		},
	})
	st := d.pool.Stats()
	d.metrics.UpdateWorkerPoolMetrics(st.Busy, st.QueueSize)
	if err != nil {
		return fmt.Errorf("queue %s for %s: %w", intent.Kind, intent.RecordID, err)
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, intent domain.NotificationIntent) {
	for _, s := range d.sinks {
		if err := s.Deliver(ctx, intent); err != nil {
			d.metrics.NotificationHandedOff(string(intent.Kind), "sink_error")
			slog.Error("Notification delivery failed",
				"intent_id", intent.ID,
				"record_id", intent.RecordID,
				"kind", intent.Kind,
				"error", err)
		}
	}
}
