package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
	"gitlab.ozon.dev/safariproxd/recovery/pkg/cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type IngressConfig struct {
	// Timeout bounds each store call. Zero keeps the caller's deadline.
	Timeout   time.Duration
	DedupSize int
	DedupTTL  time.Duration
}

// Ingress accepts payment events from the provider adapters.
type Ingress struct {
	store    RecordStore
	planner  Planner
	notifier Notifier
	metrics  metrics.Provider
	seen     *cache.LRUCache[string, struct{}]
	clock    func() time.Time
	timeout  time.Duration
}

type FailureOutcome struct {
	Record    domain.Record
	Result    domain.UpsertResult
	Duplicate bool
}

type SuccessOutcome struct {
	Record    domain.Record
	Recovered bool
	Duplicate bool
}

func NewIngress(store RecordStore, planner Planner, notifier Notifier, m metrics.Provider, cfg IngressConfig) *Ingress {
	if cfg.DedupSize <= 0 {
		cfg.DedupSize = 10000
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = 24 * time.Hour
	}
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	return &Ingress{
		store:    store,
		planner:  planner,
		notifier: notifier,
		metrics:  m,
		seen:     cache.New[string, struct{}](cache.Config{MaxSize: cfg.DedupSize, TTL: cfg.DedupTTL}),
		clock:    time.Now,
		timeout:  cfg.Timeout,
	}
}

func (i *Ingress) WithClock(clock func() time.Time) *Ingress {
	i.clock = clock
	return i
}

// DedupCache exposes the event id cache to the admin server.
func (i *Ingress) DedupCache() *cache.LRUCache[string, struct{}] {
	return i.seen
}

func (i *Ingress) ReportFailure(ctx context.Context, ev domain.FailureEvent) (FailureOutcome, error) {
	ctx, span := otel.Tracer("recovery/app").Start(ctx, "Ingress.ReportFailure")
	defer span.End()
	span.SetAttributes(attribute.String("payment_id", ev.PaymentID), attribute.String("event_id", ev.EventID))

	if err := ev.Validate(); err != nil {
		return FailureOutcome{}, err
	}

	if i.isDuplicate(ev.EventID) {
		rec := i.currentRecord(ctx, ev.PaymentID)
		return FailureOutcome{Record: rec, Result: domain.UpsertRefreshed, Duplicate: true}, nil
	}

	now := i.clock()
	type upserted struct {
		rec domain.Record
		res domain.UpsertResult
	}
	out, err := withTimeout(ctx, i.timeout, func(ctx context.Context) (upserted, error) {
		rec, res, err := i.store.UpsertOnFailure(ctx, ev, now, i.planner)
		return upserted{rec, res}, err
	})
	if err != nil {
		i.forget(ev.EventID)
		return FailureOutcome{}, fmt.Errorf("upsert on failure: %w", err)
	}

	i.metrics.FailureReported(out.res.String())
	slog.Info("Payment failure recorded",
		"record_id", out.rec.ID,
		"result", out.res.String(),
		"reason", out.rec.FailureReason,
		"attempts", out.rec.AttemptCount)

	if out.res == domain.UpsertCreated || out.res == domain.UpsertRestarted {
		if out.rec.NextAttemptAt != nil && !out.rec.NextAttemptAt.After(now) {
			slog.Warn("Failure event is old enough that its first attempt is already due",
				"record_id", out.rec.ID,
				"occurred_at", ev.OccurredAt,
				"next_attempt_at", *out.rec.NextAttemptAt)
		}
		i.emit(ctx, out.rec, domain.KindFailed, now)
	}
	return FailureOutcome{Record: out.rec, Result: out.res}, nil
}

func (i *Ingress) ReportSuccess(ctx context.Context, ev domain.SuccessEvent) (SuccessOutcome, error) {
	ctx, span := otel.Tracer("recovery/app").Start(ctx, "Ingress.ReportSuccess")
	defer span.End()
	span.SetAttributes(attribute.String("payment_id", ev.PaymentID), attribute.String("event_id", ev.EventID))

	if err := ev.Validate(); err != nil {
		return SuccessOutcome{}, err
	}

	if i.isDuplicate(ev.EventID) {
		rec := i.currentRecord(ctx, ev.PaymentID)
		return SuccessOutcome{Record: rec, Duplicate: true}, nil
	}

	now := i.clock()
	at := ev.OccurredAt
	if at.IsZero() || at.After(now) {
		at = now
	}

	type marked struct {
		rec domain.Record
		ok  bool
	}
	out, err := withTimeout(ctx, i.timeout, func(ctx context.Context) (marked, error) {
		rec, ok, err := i.store.MarkRecovered(ctx, ev.PaymentID, at)
		return marked{rec, ok}, err
	})
	if err != nil {
		i.forget(ev.EventID)
		return SuccessOutcome{}, fmt.Errorf("mark recovered: %w", err)
	}
	if !out.ok {
		slog.Debug("Success event ignored", "payment_id", ev.PaymentID)
		return SuccessOutcome{Record: out.rec}, nil
	}

	i.metrics.Recovered()
	slog.Info("Payment recovered",
		"record_id", out.rec.ID,
		"attempts", out.rec.AttemptCount)
	i.emit(ctx, out.rec, domain.KindRecovered, now)
	return SuccessOutcome{Record: out.rec, Recovered: true}, nil
}

func (i *Ingress) isDuplicate(eventID string) bool {
	if eventID == "" {
		return false
	}
	if i.seen.SetIfAbsent(eventID, struct{}{}) {
		return false
	}
	i.metrics.DuplicateEvent()
	slog.Debug("Duplicate provider event", "event_id", eventID)
	return true
}

func (i *Ingress) forget(eventID string) {
	if eventID != "" {
		i.seen.Delete(eventID)
	}
}

func (i *Ingress) lookup(ctx context.Context, id string) (domain.Record, error) {
	return withTimeout(ctx, i.timeout, func(ctx context.Context) (domain.Record, error) {
		return i.store.Get(ctx, id)
	})
}

// currentRecord is a best-effort read for duplicate events. A failed read
// yields an empty record.
func (i *Ingress) currentRecord(ctx context.Context, id string) domain.Record {
	rec, err := i.lookup(ctx, id)
	if err != nil {
		slog.Debug("Current record unavailable for duplicate event", "payment_id", id, "error", err)
		return domain.Record{}
	}
	return rec
}

func (i *Ingress) emit(ctx context.Context, r domain.Record, kind domain.NotificationKind, now time.Time) {
	if i.notifier == nil {
		return
	}
	if err := i.notifier.Notify(ctx, newIntent(i.planner, r, kind, now)); err != nil {
		i.metrics.NotificationHandedOff(string(kind), "error")
		slog.Warn("Notification hand-off failed", "record_id", r.ID, "kind", kind, "error", err)
		return
	}
	i.metrics.NotificationHandedOff(string(kind), "ok")
}
