package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

type ProducerConfig struct {
	Brokers []string
	Topic   string
	Timeout time.Duration
	Retries int
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg ProducerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Flush.Messages = 1
	config.Producer.Flush.Frequency = 10 * time.Millisecond
	config.Producer.Partitioner = sarama.NewHashPartitioner
	if cfg.Timeout > 0 {
		config.Producer.Timeout = cfg.Timeout
	}
	if cfg.Retries > 0 {
		config.Producer.Retry.Max = cfg.Retries
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}
	return NewProducerWith(producer, cfg.Topic), nil
}

// NewProducerWith wraps an existing sarama producer.
func NewProducerWith(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: producer, topic: topic}
}

func (p *Producer) Publish(ctx context.Context, key string, payload []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close producer: %w", err)
	}
	return nil
}
