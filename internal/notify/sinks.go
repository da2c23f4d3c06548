package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger.With("component", "notify")}
}

func (s *LogSink) Deliver(ctx context.Context, intent domain.NotificationIntent) error {
	s.logger.InfoContext(ctx, "Notification intent",
		"intent_id", intent.ID,
		"record_id", intent.RecordID,
		"kind", intent.Kind,
		"recipient", intent.Recipient,
		"attempt", intent.Attempt,
		"amount", intent.Context["amount"])
	return nil
}

// Producer is the subset of the Kafka producer used by KafkaSink.
type Producer interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

// KafkaSink publishes intents as JSON keyed by record id so that one
// record's messages stay ordered within a partition.
type KafkaSink struct {
	producer Producer
}

func NewKafkaSink(producer Producer) *KafkaSink {
	return &KafkaSink{producer: producer}
}

func (s *KafkaSink) Deliver(ctx context.Context, intent domain.NotificationIntent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("marshal intent: %w", err)
	}
	if err := s.producer.Publish(ctx, intent.RecordID, payload); err != nil {
		return fmt.Errorf("publish intent: %w", err)
	}
	return nil
}
