package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/multierr"
)

const (
	DefaultTickInterval = time.Minute
	DefaultBatchSize    = 500
)

type SchedulerConfig struct {
	Interval  time.Duration
	BatchSize int
}

type Scheduler struct {
	store    RecordStore
	planner  Planner
	notifier Notifier
	metrics  metrics.Provider
	clock    func() time.Time
	cfg      SchedulerConfig
}

type TickResult struct {
	Due       int
	Advanced  int
	Abandoned int
	Skipped   int
	Failed    int
}

func NewScheduler(store RecordStore, planner Planner, notifier Notifier, m metrics.Provider, cfg SchedulerConfig) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultTickInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	return &Scheduler{
		store:    store,
		planner:  planner,
		notifier: notifier,
		metrics:  m,
		clock:    time.Now,
		cfg:      cfg,
	}
}

// WithClock replaces the time source used by Run.
func (s *Scheduler) WithClock(clock func() time.Time) *Scheduler {
	s.clock = clock
	return s
}

// Tick advances every record due at now. Per-record failures are combined
// into the returned error; the affected records stay due.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) (TickResult, error) {
	ctx, span := otel.Tracer("recovery/app").Start(ctx, "Scheduler.Tick")
	defer span.End()

	started := time.Now()
	var res TickResult

	due, err := s.store.DueForAttempt(ctx, now, s.cfg.BatchSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, fmt.Errorf("load due records: %w", err)
	}
	res.Due = len(due)

	var errs error
	for _, r := range due {
		var tr domain.Transition
		rec, err := s.store.ApplyTransition(ctx, r.ID, func(cur *domain.Record) error {
			t, err := cur.Advance(now, s.planner)
			tr = t
			return err
		})
		switch {
		case errors.Is(err, domain.ErrNotDue):
			// recovered or rescheduled since the scan
			res.Skipped++
			continue
		case err != nil:
			res.Failed++
			errs = multierr.Append(errs, fmt.Errorf("advance %s: %w", r.ID, err))
			continue
		}

		if tr.To == domain.StatusAbandoned {
			res.Abandoned++
		} else {
			res.Advanced++
		}
		s.metrics.Transition(string(tr.Kind))
		slog.Debug("Record advanced",
			"record_id", rec.ID,
			"from", tr.From.String(),
			"to", tr.To.String(),
			"attempt", tr.Attempt,
			"kind", tr.Kind)

		s.emit(ctx, rec, tr.Kind, now)
	}

	span.SetAttributes(
		attribute.Int("due", res.Due),
		attribute.Int("advanced", res.Advanced),
		attribute.Int("abandoned", res.Abandoned),
		attribute.Int("skipped", res.Skipped),
		attribute.Int("failed", res.Failed),
	)
	if errs != nil {
		span.RecordError(errs)
		span.SetStatus(codes.Error, "some records failed to advance")
	}
	s.metrics.TickCompleted(time.Since(started), res.Failed)
	return res, errs
}

func (s *Scheduler) emit(ctx context.Context, r domain.Record, kind domain.NotificationKind, now time.Time) {
	if s.notifier == nil {
		return
	}
	intent := newIntent(s.planner, r, kind, now)
	if err := s.notifier.Notify(ctx, intent); err != nil {
		s.metrics.NotificationHandedOff(string(kind), "error")
		slog.Warn("Notification hand-off failed",
			"record_id", r.ID,
			"kind", kind,
			"error", err)
		return
	}
	s.metrics.NotificationHandedOff(string(kind), "ok")
}

// Run ticks once immediately, then every interval until ctx is done. A tick
// in progress when ctx is canceled runs to completion.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.Info("Scheduler started",
		"interval", s.cfg.Interval,
		"batch_size", s.cfg.BatchSize)

	s.runTick(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped")
			return nil
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	res, err := s.Tick(context.WithoutCancel(ctx), s.clock())
	if err != nil {
		slog.Error("Tick finished with errors", "error", err, "failed", res.Failed)
	}
	if res.Due > 0 {
		slog.Info("Tick completed",
			"due", res.Due,
			"advanced", res.Advanced,
			"abandoned", res.Abandoned,
			"skipped", res.Skipped,
			"failed", res.Failed)
	}
}

// TickNow runs a tick at the current clock time, e.g. from the admin API.
func (s *Scheduler) TickNow(ctx context.Context) (any, error) {
	return s.Tick(ctx, s.clock())
}
