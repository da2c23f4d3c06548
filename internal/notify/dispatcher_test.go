package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/workerpool"
)

func someIntent() domain.NotificationIntent {
	r := domain.Record{
		ID:           "in_1",
		CustomerName: "Ada",
		Email:        "ada@example.com",
		Amount:       1999,
		Currency:     "USD",
		Status:       domain.StatusRetrying,
		AttemptCount: 1,
	}
	return domain.NewIntent(r, domain.KindRetry1h, time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC))
}

type collectSink struct {
	mu  sync.Mutex
	got []domain.NotificationIntent
}

func (s *collectSink) Deliver(_ context.Context, intent domain.NotificationIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, intent)
	return nil
}

func (s *collectSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func TestDispatcher_DeliversToAllSinks(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(2, 8)
	a, b := &collectSink{}, &collectSink{}
	d := NewDispatcher(pool, time.Second, nil, a, SinkFunc(func(ctx context.Context, i domain.NotificationIntent) error {
		return assert.AnError
	}), b)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Notify(ctx, someIntent()))
	cancel()

	require.NoError(t, pool.Close(context.Background()))
	assert.Equal(t, 1, a.len())
	assert.Equal(t, 1, b.len())
}

func TestDispatcher_QueueFull(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(1, 1)
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	blocking := SinkFunc(func(ctx context.Context, _ domain.NotificationIntent) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return nil
	})
	d := NewDispatcher(pool, time.Second, nil, blocking)

	require.NoError(t, d.Notify(context.Background(), someIntent()))
	<-started
	require.NoError(t, d.Notify(context.Background(), someIntent()))

	err := d.Notify(context.Background(), someIntent())
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	require.NoError(t, pool.Close(context.Background()))
}

type fakeProducer struct {
	key     string
	payload []byte
	err     error
}

func (p *fakeProducer) Publish(_ context.Context, key string, payload []byte) error {
	p.key, p.payload = key, payload
	return p.err
}

func TestKafkaSink_Deliver(t *testing.T) {
	t.Parallel()

	p := &fakeProducer{}
	intent := someIntent()
	require.NoError(t, NewKafkaSink(p).Deliver(context.Background(), intent))
	assert.Equal(t, "in_1", p.key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(p.payload, &decoded))
	assert.Equal(t, "retry_1h", decoded["kind"])
	assert.Equal(t, "ada@example.com", decoded["recipient_email"])

	p.err = assert.AnError
	err := NewKafkaSink(p).Deliver(context.Background(), intent)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLogSink_Deliver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))
	require.NoError(t, sink.Deliver(context.Background(), someIntent()))
	assert.Contains(t, buf.String(), `"kind":"retry_1h"`)
	assert.Contains(t, buf.String(), `"amount":"19.99 USD"`)
}
