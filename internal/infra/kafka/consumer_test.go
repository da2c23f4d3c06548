package kafka

import (
	"context"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	ch chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

type handlerFunc func(ctx context.Context, m *sarama.ConsumerMessage) error

func (f handlerFunc) HandleMessage(ctx context.Context, m *sarama.ConsumerMessage) error {
	return f(ctx, m)
}

func TestGroupHandler_ConsumeClaim(t *testing.T) {
	t.Parallel()

	var handled []int64
	h := &groupHandler{handler: handlerFunc(func(_ context.Context, m *sarama.ConsumerMessage) error {
		handled = append(handled, m.Offset)
		if m.Offset == 1 {
			return assert.AnError
		}
		return nil
	})}

	claim := &fakeClaim{ch: make(chan *sarama.ConsumerMessage, 3)}
	for i := int64(0); i < 3; i++ {
		claim.ch <- &sarama.ConsumerMessage{Topic: "t", Offset: i}
	}
	close(claim.ch)

	session := &fakeSession{ctx: context.Background()}
	assert.NoError(t, h.ConsumeClaim(session, claim))
	assert.Equal(t, []int64{0, 1, 2}, handled)
	assert.Equal(t, []int64{0, 1, 2}, session.marked)
}

func TestGroupHandler_StopsOnSessionDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := &groupHandler{handler: handlerFunc(func(context.Context, *sarama.ConsumerMessage) error { return nil })}
	claim := &fakeClaim{ch: make(chan *sarama.ConsumerMessage)}
	assert.NoError(t, h.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
}
