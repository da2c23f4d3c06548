package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
)

type IntentNotifier interface {
	Wants(kind domain.NotificationKind) bool
	NotifyIntent(ctx context.Context, intent domain.NotificationIntent) error
	NotifyError(ctx context.Context, errorMsg, ref string) error
}

type EventHandler struct {
	processed atomic.Uint64
	skipped   atomic.Uint64
	notifier  IntentNotifier
	metrics   metrics.Provider
}

func NewEventHandler(notifier IntentNotifier, m metrics.Provider) *EventHandler {
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	return &EventHandler{notifier: notifier, metrics: m}
}

func (h *EventHandler) HandleMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var intent domain.NotificationIntent
	if err := json.Unmarshal(message.Value, &intent); err != nil {
		h.metrics.KafkaMessageProcessed("invalid")
		errorMsg := fmt.Sprintf("failed to unmarshal intent: %v", err)
		slog.Error("Intent parsing failed", "error", err, "raw_message", string(message.Value))
		h.reportError(ctx, errorMsg, string(message.Key))
		return errors.New(errorMsg)
	}
	if err := validateIntent(&intent); err != nil {
		h.metrics.KafkaMessageProcessed("invalid")
		errorMsg := fmt.Sprintf("invalid intent: %v", err)
		slog.Error("Intent validation failed", "error", err, "intent_id", intent.ID)
		h.reportError(ctx, errorMsg, intent.RecordID)
		return errors.New(errorMsg)
	}

	logger := slog.With(
		"intent_id", intent.ID,
		"record_id", intent.RecordID,
		"kind", intent.Kind,
		"attempt", intent.Attempt,
		"kafka_partition", message.Partition,
		"kafka_offset", message.Offset)

	if !h.notifier.Wants(intent.Kind) {
		h.skipped.Add(1)
		h.metrics.KafkaMessageProcessed("skipped")
		logger.Debug("Intent kind not forwarded")
		return nil
	}

	if err := h.notifier.NotifyIntent(ctx, intent); err != nil {
		h.metrics.KafkaMessageProcessed("error")
		logger.Error("Failed to send telegram notification", "error", err)
		return nil
	}
	h.processed.Add(1)
	h.metrics.KafkaMessageProcessed("success")
	logger.Info("Telegram notification sent")
	return nil
}

func (h *EventHandler) reportError(ctx context.Context, msg, ref string) {
	if err := h.notifier.NotifyError(ctx, msg, ref); err != nil {
		slog.Error("Failed to send telegram error notification", "error", err)
	}
}

func validateIntent(intent *domain.NotificationIntent) error {
	if intent.RecordID == "" {
		return fmt.Errorf("missing record_id")
	}
	if intent.Kind == "" {
		return fmt.Errorf("missing kind")
	}
	if !intent.CreatedAt.IsZero() && time.Since(intent.CreatedAt) > 24*time.Hour {
		slog.Warn("Received old intent",
			"intent_id", intent.ID,
			"created_at", intent.CreatedAt,
			"age_hours", time.Since(intent.CreatedAt).Hours())
	}
	return nil
}

func (h *EventHandler) Processed() uint64 {
	return h.processed.Load()
}

func (h *EventHandler) Skipped() uint64 {
	return h.skipped.Load()
}
