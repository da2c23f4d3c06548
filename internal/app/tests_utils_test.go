package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app/mock"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/retry"
)

var (
	contextBack   = context.Background()
	someConstTime = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
)

// intentLog collects what a NotifierMock was handed.
type intentLog struct {
	mu      sync.Mutex
	intents []domain.NotificationIntent
}

func (l *intentLog) kinds() []domain.NotificationKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.NotificationKind, 0, len(l.intents))
	for _, i := range l.intents {
		out = append(out, i.Kind)
	}
	return out
}

func (l *intentLog) all() []domain.NotificationIntent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.NotificationIntent(nil), l.intents...)
}

func NewNotifierEnv(t *testing.T) (*mock.NotifierMock, *intentLog) {
	ctrl := minimock.NewController(t)
	notifier := mock.NewNotifierMock(ctrl)
	log := &intentLog{}
	notifier.NotifyMock.Optional().Set(func(_ context.Context, intent domain.NotificationIntent) error {
		log.mu.Lock()
		defer log.mu.Unlock()
		log.intents = append(log.intents, intent)
		return nil
	})
	return notifier, log
}

func newTestPlanner(t *testing.T, reasons map[domain.FailureReason]retry.Plan) *retry.Schedule {
	t.Helper()
	policy, err := retry.NewTimePolicy(nil, time.UTC)
	require.NoError(t, err)
	strategy, err := retry.NewReasonStrategy(retry.DefaultPlan(), reasons)
	require.NoError(t, err)
	return retry.NewSchedule(policy, strategy, 0)
}

func someFailure(id string) domain.FailureEvent {
	return domain.FailureEvent{
		EventID:       "evt_fail_" + id,
		PaymentID:     id,
		CustomerID:    "cus_1",
		CustomerName:  "Ada Lovelace",
		Email:         "ada@example.com",
		Amount:        4999,
		Currency:      "usd",
		FailureReason: domain.ReasonCardDeclined,
		OccurredAt:    someConstTime,
	}
}
