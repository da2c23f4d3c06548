package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app/mock"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

type outboxMocks struct {
	store     *mock.OutboxStoreMock
	batch     *mock.OutboxBatchMock
	publisher *mock.PublisherMock
}

func NewOutboxEnv(t *testing.T) outboxMocks {
	ctrl := minimock.NewController(t)
	return outboxMocks{
		store:     mock.NewOutboxStoreMock(ctrl),
		batch:     mock.NewOutboxBatchMock(ctrl),
		publisher: mock.NewPublisherMock(ctrl),
	}
}

func TestOutboxRelay_ProcessOnce(t *testing.T) {
	t.Parallel()

	now := someConstTime
	recent := now.Add(-time.Second)
	msgs := []domain.OutboxMessage{
		{ID: uuid.New(), Key: "in_ok", Payload: []byte(`{}`)},
		{ID: uuid.New(), Key: "in_retry", Payload: []byte(`{}`), Attempts: 0},
		{ID: uuid.New(), Key: "in_last", Payload: []byte(`{}`), Attempts: domain.OutboxMaxAttempts - 1},
		{ID: uuid.New(), Key: "in_backoff", Payload: []byte(`{}`), Attempts: 1, LastAttemptAt: &recent},
	}

	m := NewOutboxEnv(t)
	var (
		keys     []string
		sent     []uuid.UUID
		attempts = map[uuid.UUID]bool{}
	)
	m.store.ClaimPendingMock.Return(m.batch, nil)
	m.batch.MessagesMock.Return(msgs)
	m.publisher.PublishMock.Set(func(_ context.Context, key string, _ []byte) error {
		if key == "in_retry" || key == "in_last" {
			return errors.New("broker unavailable")
		}
		keys = append(keys, key)
		return nil
	})
	m.batch.MarkSentMock.Set(func(_ context.Context, id uuid.UUID, at time.Time) error {
		assert.Equal(t, now, at)
		sent = append(sent, id)
		return nil
	})
	m.batch.MarkAttemptMock.Set(func(_ context.Context, id uuid.UUID, _ time.Time, errMsg string, failed bool) error {
		assert.Equal(t, "broker unavailable", errMsg)
		attempts[id] = failed
		return nil
	})
	m.batch.CommitMock.Times(1).Return(nil)
	m.batch.RollbackMock.Return(nil)

	relay := app.NewOutboxRelay(m.store, m.publisher, nil, app.OutboxRelayConfig{}).
		WithClock(func() time.Time { return now })

	n, err := relay.ProcessOnce(contextBack)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"in_ok"}, keys)
	assert.Equal(t, []uuid.UUID{msgs[0].ID}, sent)
	assert.Equal(t, map[uuid.UUID]bool{msgs[1].ID: false, msgs[2].ID: true}, attempts)
}

func TestOutboxRelay_ProcessOnce_Failures(t *testing.T) {
	t.Parallel()

	msg := domain.OutboxMessage{ID: uuid.New(), Key: "in_1", Payload: []byte(`{}`)}

	tests := []struct {
		name     string
		prepare  func(outboxMocks)
		wantSent int
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name: "Fail_Claim",
			prepare: func(m outboxMocks) {
				m.store.ClaimPendingMock.Return(nil, assert.AnError)
			},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.Contains(t, err.Error(), "claim pending")
			},
		},
		{
			name: "Fail_MarkSent",
			prepare: func(m outboxMocks) {
				m.store.ClaimPendingMock.Return(m.batch, nil)
				m.batch.MessagesMock.Return([]domain.OutboxMessage{msg})
				m.publisher.PublishMock.Times(1).Return(nil)
				m.batch.MarkSentMock.Times(1).Return(assert.AnError)
				m.batch.RollbackMock.Times(1).Return(nil)
			},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.Contains(t, err.Error(), "mark sent")
			},
		},
		{
			name: "Fail_Commit",
			prepare: func(m outboxMocks) {
				m.store.ClaimPendingMock.Return(m.batch, nil)
				m.batch.MessagesMock.Return([]domain.OutboxMessage{msg})
				m.publisher.PublishMock.Times(1).Return(nil)
				m.batch.MarkSentMock.Times(1).Return(nil)
				m.batch.CommitMock.Times(1).Return(assert.AnError)
				m.batch.RollbackMock.Times(1).Return(nil)
			},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.Contains(t, err.Error(), "commit batch")
			},
		},
		{
			name: "Success_EmptyBatch",
			prepare: func(m outboxMocks) {
				m.store.ClaimPendingMock.Return(m.batch, nil)
				m.batch.MessagesMock.Return(nil)
				m.batch.CommitMock.Times(1).Return(nil)
				m.batch.RollbackMock.Times(1).Return(nil)
			},
			wantErr: assert.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewOutboxEnv(t)
			tt.prepare(m)

			relay := app.NewOutboxRelay(m.store, m.publisher, nil, app.OutboxRelayConfig{}).
				WithClock(func() time.Time { return someConstTime })
			n, err := relay.ProcessOnce(contextBack)
			tt.wantErr(t, err)
			assert.Equal(t, tt.wantSent, n)
		})
	}
}
