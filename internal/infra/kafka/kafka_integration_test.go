//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/notify"
)

type chanHandler struct {
	received chan domain.NotificationIntent
}

func (h *chanHandler) HandleMessage(_ context.Context, msg *sarama.ConsumerMessage) error {
	var intent domain.NotificationIntent
	if err := json.Unmarshal(msg.Value, &intent); err != nil {
		return err
	}
	h.received <- intent
	return nil
}

type KafkaIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tckafka.KafkaContainer
	brokers   []string
}

func TestKafkaIntegration(t *testing.T) {
	suite.Run(t, new(KafkaIntegrationSuite))
}

func (s *KafkaIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tckafka.Run(s.ctx, "confluentinc/cp-kafka:7.5.0", tckafka.WithClusterID("test-cluster"))
	s.Require().NoError(err)
	s.container = container

	s.brokers, err = container.Brokers(s.ctx)
	s.Require().NoError(err)
}

func (s *KafkaIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *KafkaIntegrationSuite) createTopic(topic string) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_0_0_0

	var (
		admin sarama.ClusterAdmin
		err   error
	)
	for i := 0; i < 10; i++ {
		if admin, err = sarama.NewClusterAdmin(s.brokers, cfg); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	s.Require().NoError(err)
	defer admin.Close()

	s.Require().NoError(admin.CreateTopic(topic, &sarama.TopicDetail{NumPartitions: 3, ReplicationFactor: 1}, false))
}

func (s *KafkaIntegrationSuite) Test_KafkaSink_ToConsumer() {
	topic := "recovery-" + strings.ReplaceAll(s.T().Name(), "/", "_")
	s.createTopic(topic)

	consumer, err := NewConsumer(ConsumerConfig{
		Brokers:         s.brokers,
		Topic:           topic,
		ConsumerGroup:   "group-" + topic,
		AutoOffsetReset: "earliest",
	})
	s.Require().NoError(err)
	defer consumer.Close()

	handler := &chanHandler{received: make(chan domain.NotificationIntent, 16)}
	ctx, cancel := context.WithTimeout(s.ctx, 60*time.Second)
	defer cancel()
	go func() { _ = consumer.Consume(ctx, handler) }()

	producer, err := NewProducer(ProducerConfig{Brokers: s.brokers, Topic: topic, Timeout: 5 * time.Second, Retries: 3})
	s.Require().NoError(err)
	defer producer.Close()
	sink := notify.NewKafkaSink(producer)

	const n = 5
	sent := map[string]domain.NotificationKind{}
	for i := 0; i < n; i++ {
		r := domain.Record{ID: fmt.Sprintf("in_%d", i), Amount: 100, Currency: "USD", Email: "a@b.c"}
		intent := domain.NewIntent(r, domain.KindRetry1h, time.Now())
		sent[intent.RecordID] = intent.Kind
		s.Require().NoError(sink.Deliver(s.ctx, intent))
	}

	got := map[string]domain.NotificationKind{}
	for len(got) < n {
		select {
		case intent := <-handler.received:
			got[intent.RecordID] = intent.Kind
		case <-ctx.Done():
			s.T().Fatalf("received %d/%d intents", len(got), n)
		}
	}
	assert.Equal(s.T(), sent, got)
}

func (s *KafkaIntegrationSuite) Test_Producer_CanceledContext() {
	producer, err := NewProducer(ProducerConfig{Brokers: s.brokers, Topic: "unused"})
	require.NoError(s.T(), err)
	defer producer.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	assert.ErrorIs(s.T(), producer.Publish(ctx, "k", []byte("{}")), context.Canceled)
}
