package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/config"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra/kafka"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra/telegram"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Config load failed", "error", err)
		os.Exit(1)
	}
	loc, _ := cfg.Location()

	telegramClient := telegram.NewClient(cfg.Telegram)
	telegramNotifier := telegram.NewNotifier(telegramClient, loc)

	if !telegramClient.IsEnabled() {
		slog.Warn("Telegram notifications disabled",
			"bot_token_configured", cfg.Telegram.BotToken != "",
			"chat_id_configured", cfg.Telegram.ChatID != 0)
	}

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers:         cfg.Kafka.Brokers,
		Topic:           cfg.Kafka.Topic,
		ConsumerGroup:   cfg.Kafka.GroupID,
		AutoOffsetReset: "earliest",
	})
	if err != nil {
		slog.Error("Failed to create Kafka consumer", "error", err)
		os.Exit(1)
	}

	handler := NewEventHandler(telegramNotifier, metrics.NewPrometheusProvider())
	service := NewNotifierService(consumer, handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.Info("Notifier service started",
		"consumer_group", cfg.Kafka.GroupID,
		"topic", cfg.Kafka.Topic,
		"brokers", cfg.Kafka.Brokers,
		"telegram_enabled", telegramClient.IsEnabled())

	if telegramClient.IsEnabled() {
		startupMsg := "🚀 <b>Recovery notifier started</b>\n\n" +
			"📡 Topic: <code>" + cfg.Kafka.Topic + "</code>\n" +
			"⏰ " + time.Now().In(loc).Format("15:04:05")
		if err := telegramClient.SendMessage(ctx, startupMsg); err != nil {
			slog.Error("Failed to send startup notification", "error", err)
		}
	}

	go func() {
		if err := service.Start(ctx); err != nil {
			slog.Error("Notifier service error", "error", err)
			cancel()
		}
	}()

	infra.Graceful(ctx, 30*time.Second,
		func(context.Context) { cancel() },
		func(ctx context.Context) {
			if !telegramClient.IsEnabled() {
				return
			}
			msg := "🛑 <b>Recovery notifier stopped</b>\n\n" +
				fmt.Sprintf("📊 Sent: <code>%d</code>\n", handler.Processed()) +
				"⏰ " + time.Now().In(loc).Format("15:04:05")
			if err := telegramClient.SendMessage(ctx, msg); err != nil {
				slog.Error("Failed to send shutdown notification", "error", err)
			}
		},
		service.Shutdown,
	)
}
