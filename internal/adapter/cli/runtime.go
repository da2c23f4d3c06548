package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/config"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
	"gitlab.ozon.dev/safariproxd/recovery/internal/notify"
	"gitlab.ozon.dev/safariproxd/recovery/internal/repository/inmemory"
	"gitlab.ozon.dev/safariproxd/recovery/internal/repository/postgres"
	"gitlab.ozon.dev/safariproxd/recovery/internal/retry"
	"gitlab.ozon.dev/safariproxd/recovery/pkg/db"
	"go.uber.org/multierr"
)

// Runtime holds the pieces every command shares.
type Runtime struct {
	Config   *config.Config
	Store    app.RecordStore
	Planner  *retry.Schedule
	Metrics  metrics.Provider
	Notifier app.Notifier
	Outbox   *postgres.OutboxRepository
	DB       *db.Client

	closers []func() error
}

// NewRuntime opens storage and builds the planner. Notifications go to the
// outbox when one exists and to the log otherwise; serve replaces this with
// the asynchronous dispatcher.
func NewRuntime(ctx context.Context, cfg *config.Config, m metrics.Provider) (*Runtime, error) {
	planner, err := cfg.Schedule()
	if err != nil {
		return nil, fmt.Errorf("build schedule: %w", err)
	}
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	rt := &Runtime{Config: cfg, Planner: planner, Metrics: m}

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		client, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		rt.DB = client
		rt.closers = append(rt.closers, client.Close)
		rt.Store = postgres.NewRecordStore(client)
		rt.Outbox = postgres.NewOutboxRepository(client)
		rt.Notifier = rt.Outbox
	default:
		rt.Store = inmemory.NewRecordStore()
		rt.Notifier = app.NotifierFunc(notify.NewLogSink(slog.Default()).Deliver)
	}
	return rt, nil
}

func OpenDB(ctx context.Context, cfg *config.Config) (*db.Client, error) {
	client, err := db.NewClient(db.Config{
		ReadDSN:  cfg.ReadDSN(),
		WriteDSN: cfg.WriteDSN(),
		MaxOpen:  cfg.DB.Pool.MaxOpen,
		MaxIdle:  cfg.DB.Pool.MaxIdle,
		Logger:   slog.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("db client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		return nil, multierr.Append(fmt.Errorf("db ping: %w", err), client.Close())
	}
	return client, nil
}

func (r *Runtime) OnClose(fn func() error) {
	r.closers = append(r.closers, fn)
}

// Close runs closers in reverse registration order.
func (r *Runtime) Close() error {
	var err error
	for i := len(r.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, r.closers[i]())
	}
	r.closers = nil
	return err
}

func (r *Runtime) Ingress(notifier app.Notifier) *app.Ingress {
	return app.NewIngress(r.Store, r.Planner, notifier, r.Metrics, app.IngressConfig{
		Timeout:   r.Config.Service.Timeout,
		DedupSize: r.Config.Dedup.Size,
		DedupTTL:  r.Config.Dedup.TTL,
	})
}

func (r *Runtime) Scheduler(notifier app.Notifier) *app.Scheduler {
	return app.NewScheduler(r.Store, r.Planner, notifier, r.Metrics, app.SchedulerConfig{
		Interval:  r.Config.Scheduler.Interval,
		BatchSize: r.Config.Scheduler.BatchSize,
	})
}

func (r *Runtime) StatsService() *app.StatsService {
	return app.NewStatsService(r.Store, r.Metrics, r.Planner.Policy().Location())
}

func setupLogger(cfg *config.Config) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
