package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducer_Publish(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"record_id":"in_1","kind":"retry_1h"}`)

	tests := []struct {
		name    string
		prepare func(*mocks.SyncProducer)
		ctx     func() context.Context
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "Success_SendMessage",
			prepare: func(m *mocks.SyncProducer) {
				m.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
					key, _ := msg.Key.Encode()
					value, _ := msg.Value.Encode()
					if msg.Topic != "test-topic" || string(key) != "in_1" || string(value) != string(payload) {
						return errors.New("unexpected message")
					}
					return nil
				})
			},
			ctx:     context.Background,
			wantErr: assert.NoError,
		},
		{
			name: "Fail_KafkaError",
			prepare: func(m *mocks.SyncProducer) {
				m.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
			},
			ctx: context.Background,
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, sarama.ErrOutOfBrokers) && assert.Contains(t, err.Error(), "send message to kafka")
			},
		},
		{
			name:    "Fail_ContextCanceled",
			prepare: func(*mocks.SyncProducer) {},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.Equal(t, context.Canceled, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := mocks.NewTestConfig()
			config.Producer.Return.Successes = true
			m := mocks.NewSyncProducer(t, config)
			tt.prepare(m)

			p := NewProducerWith(m, "test-topic")
			tt.wantErr(t, p.Publish(tt.ctx(), "in_1", payload))
			require.NoError(t, p.Close())
		})
	}
}

func TestProducer_Publish_ContextTimeout(t *testing.T) {
	t.Parallel()

	m := mocks.NewSyncProducer(t, nil)
	p := NewProducerWith(m, "test-topic")

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	err := p.Publish(ctx, "", []byte("test"))
	require.Error(t, err)
	assert.Equal(t, context.DeadlineExceeded, err)
	require.NoError(t, p.Close())
}
