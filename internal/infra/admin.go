package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/workerpool"
	"gitlab.ozon.dev/safariproxd/recovery/pkg/cache"
)

type CacheManager interface {
	Stats() cache.Stats
	Clear()
	CleanupExpired() int
}

// Ticker runs one scheduler pass on demand.
type Ticker interface {
	TickNow(ctx context.Context) (any, error)
}

type AdminServer struct {
	srv    *http.Server
	pool   *workerpool.Pool
	cache  CacheManager
	ticker Ticker
}

func NewAdmin(addr string, pool *workerpool.Pool, cacheManager CacheManager, ticker Ticker) *AdminServer {
	mux := http.NewServeMux()
	as := &AdminServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
		pool:   pool,
		cache:  cacheManager,
		ticker: ticker,
	}

	mux.HandleFunc("POST /resize", as.handleResize)
	mux.HandleFunc("GET /pool/stats", as.handlePoolStats)
	mux.HandleFunc("GET /cache/stats", as.handleCacheStats)
	mux.HandleFunc("POST /cache/clear", as.handleCacheClear)
	mux.HandleFunc("POST /cache/cleanup", as.handleCacheCleanup)
	mux.HandleFunc("POST /scheduler/tick", as.handleTick)
	return as
}

func (a *AdminServer) Handler() http.Handler {
	return a.srv.Handler
}

func (a *AdminServer) handleResize(w http.ResponseWriter, r *http.Request) {
	if a.pool == nil {
		http.Error(w, "pool not available", http.StatusServiceUnavailable)
		return
	}
	n, _ := strconv.Atoi(r.URL.Query().Get("workers"))
	if n <= 0 {
		http.Error(w, "workers must be > 0", http.StatusBadRequest)
		return
	}
	a.pool.Resize(n)
	writeText(w, "ok")
}

func (a *AdminServer) handlePoolStats(w http.ResponseWriter, _ *http.Request) {
	if a.pool == nil {
		http.Error(w, "pool not available", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, a.pool.Stats())
}

func (a *AdminServer) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	if a.cache == nil {
		http.Error(w, "cache not available", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, a.cache.Stats())
}

func (a *AdminServer) handleCacheClear(w http.ResponseWriter, _ *http.Request) {
	if a.cache == nil {
		http.Error(w, "cache not available", http.StatusServiceUnavailable)
		return
	}
	a.cache.Clear()
	writeText(w, "cache cleared")
}

func (a *AdminServer) handleCacheCleanup(w http.ResponseWriter, _ *http.Request) {
	if a.cache == nil {
		http.Error(w, "cache not available", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]int{"removed": a.cache.CleanupExpired()})
}

func (a *AdminServer) handleTick(w http.ResponseWriter, r *http.Request) {
	if a.ticker == nil {
		http.Error(w, "scheduler not available", http.StatusServiceUnavailable)
		return
	}
	res, err := a.ticker.TickNow(r.Context())
	if err != nil {
		slog.Warn("Manual tick finished with errors", "error", err)
	}
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("admin encode failed", "error", err)
	}
}

func writeText(w http.ResponseWriter, s string) {
	if _, err := w.Write([]byte(s)); err != nil {
		slog.Warn("admin write failed", "error", err)
	}
}

func (a *AdminServer) Start() {
	go func() {
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("admin listen error", "error", err)
		}
	}()
	slog.Info("Admin server started", "addr", a.srv.Addr)
}

func (a *AdminServer) Shutdown(ctx context.Context) {
	if err := a.srv.Shutdown(ctx); err != nil {
		slog.Warn("admin shutdown error", "error", err)
	}
}
