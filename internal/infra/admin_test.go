package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/workerpool"
	"gitlab.ozon.dev/safariproxd/recovery/pkg/cache"
)

type tickerFunc func(ctx context.Context) (any, error)

func (f tickerFunc) TickNow(ctx context.Context) (any, error) { return f(ctx) }

func TestAdminServer(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(2, 4)
	defer pool.Close(context.Background())

	seen := cache.New[string, struct{}](cache.Config{MaxSize: 10, TTL: time.Hour})
	seen.Set("evt_1", struct{}{})

	ticks := 0
	admin := NewAdmin(":0", pool, seen, tickerFunc(func(context.Context) (any, error) {
		ticks++
		return map[string]int{"due": 0}, nil
	}))
	h := admin.Handler()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"Resize", http.MethodPost, "/resize?workers=3", http.StatusOK, "ok"},
		{"ResizeBad", http.MethodPost, "/resize?workers=0", http.StatusBadRequest, "workers must be > 0"},
		{"ResizeWrongMethod", http.MethodGet, "/resize?workers=3", http.StatusMethodNotAllowed, ""},
		{"CacheStats", http.MethodGet, "/cache/stats", http.StatusOK, `"Size":1`},
		{"Tick", http.MethodPost, "/scheduler/tick", http.StatusOK, `"due":0`},
		{"CacheClear", http.MethodPost, "/cache/clear", http.StatusOK, "cache cleared"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
		assert.Equal(t, tt.wantStatus, rec.Code, tt.name)
		assert.Contains(t, rec.Body.String(), tt.wantBody, tt.name)
	}

	assert.Equal(t, 3, pool.Stats().Workers)
	assert.Equal(t, 1, ticks)
	require.Zero(t, seen.Size())
}

func TestAdminServer_NoCache(t *testing.T) {
	t.Parallel()

	admin := NewAdmin(":0", nil, nil, nil)
	rec := httptest.NewRecorder()
	admin.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cache/stats", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
