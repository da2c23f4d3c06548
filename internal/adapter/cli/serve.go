package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"gitlab.ozon.dev/safariproxd/recovery/internal/adapter/httpapi"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra/kafka"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
	"gitlab.ozon.dev/safariproxd/recovery/internal/notify"
	"gitlab.ozon.dev/safariproxd/recovery/internal/tracing"
	"gitlab.ozon.dev/safariproxd/recovery/internal/workerpool"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const housekeepingInterval = 30 * time.Second

func (a *CLIAdapter) Serve(cmd *cobra.Command, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	shutdownTracing := tracing.Init(cfg.Tracing)

	m := metrics.NewPrometheusProvider()
	rt, err := a.newRuntime(cmd.Context(), cfg, m)
	if err != nil {
		shutdownTracing()
		return err
	}

	pool := workerpool.New(cfg.Notify.Workers, cfg.Notify.Queue)
	sinks := []notify.Sink{notify.NewLogSink(slog.Default())}

	var (
		producer *kafka.Producer
		relay    *app.OutboxRelay
		notifier app.Notifier
	)
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(kafka.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			Timeout: cfg.Kafka.Producer.Timeout,
			Retries: cfg.Kafka.Producer.Retries,
		})
		if err != nil {
			shutdownTracing()
			return multierr.Append(fmt.Errorf("kafka producer: %w", err), rt.Close())
		}
		rt.OnClose(producer.Close)
	}

	switch {
	case rt.Outbox != nil && producer != nil:
		notifier = rt.Outbox
		relay = app.NewOutboxRelay(rt.Outbox, producer, m, app.OutboxRelayConfig{
			Interval:  cfg.Outbox.WorkerInterval,
			BatchSize: cfg.Outbox.BatchSize,
		})
		slog.Info("Notifications go through the outbox", "topic", cfg.Kafka.Topic)
	case producer != nil:
		sinks = append(sinks, notify.NewKafkaSink(producer))
		notifier = notify.NewDispatcher(pool, cfg.Notify.Timeout, m, sinks...)
		slog.Info("Notifications go to Kafka directly", "topic", cfg.Kafka.Topic)
	default:
		notifier = notify.NewDispatcher(pool, cfg.Notify.Timeout, m, sinks...)
		slog.Info("Notifications are logged only")
	}

	ingress := rt.Ingress(notifier)
	scheduler := rt.Scheduler(notifier)

	rate, err := limiter.NewRateFromFormatted(cfg.Service.RateLimit)
	if err != nil {
		shutdownTracing()
		return multierr.Append(fmt.Errorf("service.rate_limit: %w", err), rt.Close())
	}

	httpSrv := httpapi.New(cfg.Service.HTTPAddress, httpapi.Deps{
		Ingress: ingress,
		Stats:   rt.StatsService(),
		Records: rt.Store,
		Limiter: limiter.New(memory.NewStore(), rate),
		Metrics: m,
		Timeout: cfg.Service.Timeout,
	})

	var admin *infra.AdminServer
	if cfg.Service.AdminAddress != "" {
		admin = infra.NewAdmin(cfg.Service.AdminAddress, pool, ingress.DedupCache(), scheduler)
		admin.Start()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("HTTP listening", "addr", cfg.Service.HTTPAddress)
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error { return scheduler.Run(gctx) })
	if relay != nil {
		g.Go(func() error { return relay.Run(gctx) })
	}
	g.Go(func() error {
		housekeeping(gctx, ingress, pool, m)
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	var runErr error
	infra.Graceful(gctx, cfg.Service.ShutdownWait,
		func(ctx context.Context) {
			if err := httpSrv.Shutdown(ctx); err != nil {
				slog.Warn("HTTP shutdown error", "error", err)
			}
		},
		func(ctx context.Context) {
			if admin != nil {
				admin.Shutdown(ctx)
			}
		},
		func(ctx context.Context) {
			cancel()
			select {
			case runErr = <-done:
			case <-ctx.Done():
				runErr = fmt.Errorf("background loops did not stop: %w", ctx.Err())
			}
		},
		func(ctx context.Context) {
			if err := pool.Close(ctx); err != nil {
				slog.Warn("Delivery pool did not drain", "error", err)
			}
		},
		func(context.Context) {
			if err := rt.Close(); err != nil {
				slog.Warn("Close failed", "error", err)
			}
		},
		func(context.Context) { shutdownTracing() },
	)
	return runErr
}

// housekeeping expires dedupe entries and publishes pool gauges.
func housekeeping(ctx context.Context, ingress *app.Ingress, pool *workerpool.Pool, m metrics.Provider) {
	ticker := time.NewTicker(housekeepingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := ingress.DedupCache().CleanupExpired()
			st := pool.Stats()
			m.UpdateWorkerPoolMetrics(st.Busy, st.QueueSize)
			slog.Debug("Housekeeping done",
				"dedup_expired", removed,
				"pool_busy", st.Busy,
				"pool_queue", st.QueueSize)
		}
	}
}
