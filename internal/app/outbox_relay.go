package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

type OutboxRelayConfig struct {
	Interval  time.Duration
	BatchSize int
}

// OutboxRelay publishes stored notification intents to the broker.
type OutboxRelay struct {
	store     OutboxStore
	publisher Publisher
	metrics   metrics.Provider
	clock     func() time.Time
	cfg       OutboxRelayConfig
}

func NewOutboxRelay(store OutboxStore, publisher Publisher, m metrics.Provider, cfg OutboxRelayConfig) *OutboxRelay {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	return &OutboxRelay{store: store, publisher: publisher, metrics: m, clock: time.Now, cfg: cfg}
}

func (r *OutboxRelay) WithClock(clock func() time.Time) *OutboxRelay {
	r.clock = clock
	return r
}

// ProcessOnce relays one batch and returns the number of messages sent.
func (r *OutboxRelay) ProcessOnce(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer("recovery/app").Start(ctx, "OutboxRelay.ProcessOnce")
	defer span.End()

	now := r.clock()
	batch, err := r.store.ClaimPending(ctx, r.cfg.BatchSize, now)
	if err != nil {
		return 0, fmt.Errorf("claim pending: %w", err)
	}
	defer batch.Rollback()

	sent := 0
	var errs error
	for _, msg := range batch.Messages() {
		if !msg.CanRetry(now) {
			continue
		}
		if pubErr := r.publisher.Publish(ctx, msg.Key, msg.Payload); pubErr != nil {
			failed := msg.Attempts+1 >= domain.OutboxMaxAttempts
			if err := batch.MarkAttempt(ctx, msg.ID, now, pubErr.Error(), failed); err != nil {
				return sent, fmt.Errorf("mark attempt %s: %w", msg.ID, err)
			}
			errs = multierr.Append(errs, fmt.Errorf("publish %s: %w", msg.ID, pubErr))
			if failed {
				r.metrics.OutboxRelayed("failed")
				slog.Error("Outbox message failed permanently", "id", msg.ID, "attempts", msg.Attempts+1, "error", pubErr)
			} else {
				r.metrics.OutboxRelayed("retry")
			}
			continue
		}
		if err := batch.MarkSent(ctx, msg.ID, now); err != nil {
			return sent, fmt.Errorf("mark sent %s: %w", msg.ID, err)
		}
		r.metrics.OutboxRelayed("sent")
		sent++
	}

	if err := batch.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}
	span.SetAttributes(attribute.Int("sent", sent))
	return sent, errs
}

func (r *OutboxRelay) Run(ctx context.Context) error {
	slog.Info("Outbox relay started",
		"interval", r.cfg.Interval,
		"batch_size", r.cfg.BatchSize)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox relay stopped")
			return nil
		case <-ticker.C:
			sent, err := r.ProcessOnce(ctx)
			if err != nil {
				slog.Error("Outbox relay batch had errors", "error", err)
			}
			if sent > 0 {
				slog.Debug("Outbox batch relayed", "sent", sent)
			}
		}
	}
}
