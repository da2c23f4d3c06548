package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/config"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra/kafka"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
	"gitlab.ozon.dev/safariproxd/recovery/internal/repository/postgres"
	"gitlab.ozon.dev/safariproxd/recovery/pkg/db"
)

// outbox relays stored notification intents to Kafka. Several relays may run
// against one database; rows are claimed with SKIP LOCKED.
func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Config load failed", "error", err)
		os.Exit(1)
	}

	dbClient, err := db.NewClient(db.Config{
		ReadDSN:  cfg.ReadDSN(),
		WriteDSN: cfg.WriteDSN(),
		MaxOpen:  cfg.DB.Pool.MaxOpen,
		MaxIdle:  cfg.DB.Pool.MaxIdle,
	})
	if err != nil {
		slog.Error("DB client creation failed", "error", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		Timeout: cfg.Kafka.Producer.Timeout,
		Retries: cfg.Kafka.Producer.Retries,
	})
	if err != nil {
		slog.Error("Kafka producer creation failed", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	relay := app.NewOutboxRelay(postgres.NewOutboxRepository(dbClient), producer, metrics.NewPrometheusProvider(), app.OutboxRelayConfig{
		Interval:  cfg.Outbox.WorkerInterval,
		BatchSize: cfg.Outbox.BatchSize,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := relay.Run(ctx); err != nil {
			slog.Error("Outbox relay error", "error", err)
		}
	}()

	infra.Graceful(ctx, 10*time.Second, func(ctx context.Context) {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			slog.Warn("Outbox relay did not stop in time")
		}
	})
}
