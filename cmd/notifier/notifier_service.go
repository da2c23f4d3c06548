package main

import (
	"context"
	"fmt"
	"log/slog"

	"gitlab.ozon.dev/safariproxd/recovery/internal/infra/kafka"
)

type NotifierService struct {
	consumer *kafka.Consumer
	handler  *EventHandler
}

func NewNotifierService(consumer *kafka.Consumer, handler *EventHandler) *NotifierService {
	return &NotifierService{consumer: consumer, handler: handler}
}

func (s *NotifierService) Start(ctx context.Context) error {
	slog.Info("Starting Kafka consumer...")
	if err := s.consumer.Consume(ctx, s.handler); err != nil {
		return fmt.Errorf("consumer error: %w", err)
	}
	return nil
}

func (s *NotifierService) Shutdown(_ context.Context) {
	if err := s.consumer.Close(); err != nil {
		slog.Error("Error closing consumer", "error", err)
	}
	slog.Info("Notifier service shutdown complete",
		"processed", s.handler.Processed(),
		"skipped", s.handler.Skipped())
}
