package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

//go:generate minimock -i RecordStore,Notifier,Publisher,OutboxStore,OutboxBatch -o ./mock -s _mock.go

// RecordStore keeps recovery records. Implementations serialize writes per
// record id; Snapshot is a consistent point-in-time copy.
type RecordStore interface {
	UpsertOnFailure(ctx context.Context, ev domain.FailureEvent, now time.Time, p domain.Planner) (domain.Record, domain.UpsertResult, error)
	// MarkRecovered returns false for unknown or already terminal ids.
	MarkRecovered(ctx context.Context, id string, at time.Time) (domain.Record, bool, error)
	// DueForAttempt returns active records with NextAttemptAt <= now,
	// oldest deadline first, ties broken by id.
	DueForAttempt(ctx context.Context, now time.Time, limit int) ([]domain.Record, error)
	// ApplyTransition runs mutate under the record's lock and persists the
	// result. A mutate error aborts the write and is returned as is.
	ApplyTransition(ctx context.Context, id string, mutate func(*domain.Record) error) (domain.Record, error)
	Snapshot(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
}

// Planner is the retry schedule as seen by the services.
type Planner interface {
	domain.Planner
	Hint(reason domain.FailureReason) string
}

// Notifier hands an intent off for delivery. It must not block on I/O.
// Delivery is best-effort in dispatcher mode: an intent rejected with
// notify.ErrQueueFull is dropped after its transition was committed. Only the
// outbox implementation gives at-least-once delivery.
type Notifier interface {
	Notify(ctx context.Context, intent domain.NotificationIntent) error
}

type NotifierFunc func(ctx context.Context, intent domain.NotificationIntent) error

func (f NotifierFunc) Notify(ctx context.Context, intent domain.NotificationIntent) error {
	return f(ctx, intent)
}

// OutboxBatch is a set of claimed outbox messages. Updates are applied when
// the batch is committed.
type OutboxBatch interface {
	Messages() []domain.OutboxMessage
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkAttempt(ctx context.Context, id uuid.UUID, at time.Time, errMsg string, failed bool) error
	Commit() error
	Rollback() error
}

type OutboxStore interface {
	ClaimPending(ctx context.Context, limit int, now time.Time) (OutboxBatch, error)
}

// Publisher delivers a payload to the message broker.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

func newIntent(p Planner, r domain.Record, kind domain.NotificationKind, now time.Time) domain.NotificationIntent {
	intent := domain.NewIntent(r, kind, now)
	if hint := p.Hint(r.FailureReason); hint != "" {
		intent.Context["hint"] = hint
	}
	return intent
}
