package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
)

type IngressService interface {
	ReportFailure(ctx context.Context, ev domain.FailureEvent) (app.FailureOutcome, error)
	ReportSuccess(ctx context.Context, ev domain.SuccessEvent) (app.SuccessOutcome, error)
}

type StatsService interface {
	Stats(ctx context.Context) (app.Stats, error)
}

type RecordReader interface {
	Snapshot(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
}

type Deps struct {
	Ingress IngressService
	Stats   StatsService
	Records RecordReader
	Limiter *limiter.Limiter
	Metrics metrics.Provider
	Timeout time.Duration
}

type Server struct {
	ingress IngressService
	stats   StatsService
	records RecordReader
	limiter *limiter.Limiter
	metrics metrics.Provider
	timeout time.Duration
	srv     *http.Server
}

func New(addr string, d Deps) *Server {
	if d.Metrics == nil {
		d.Metrics = metrics.NewNoOpProvider()
	}
	s := &Server{
		ingress: d.Ingress,
		stats:   d.Stats,
		records: d.Records,
		limiter: d.Limiter,
		metrics: d.Metrics,
		timeout: d.Timeout,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer, tracing, logging(s.metrics))

	r.Get("/health", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(rateLimit(s.limiter))
		}
		if s.timeout > 0 {
			r.Use(withTimeout(s.timeout))
		}
		r.Post("/webhook/stripe", s.stripeWebhook)
		r.Get("/api/stats", s.getStats)
		r.Get("/api/records", s.listRecords)
		r.Get("/api/records/{id}", s.getRecord)
	})
	return r
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
