package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

type fakeAPI struct {
	mu   sync.Mutex
	sent []sendMessageRequest
	fail bool
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	f.mu.Lock()
	f.sent = append(f.sent, req)
	f.mu.Unlock()
	if f.fail {
		_ = json.NewEncoder(w).Encode(apiResponse{OK: false, ErrorCode: 400, Description: "chat not found"})
		return
	}
	_ = json.NewEncoder(w).Encode(apiResponse{OK: true})
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	c := NewClient(Config{BotToken: "token", ChatID: 42, Enabled: true, Timeout: time.Second})
	c.apiURL = srv.URL
	return c
}

func intent(kind domain.NotificationKind) domain.NotificationIntent {
	r := domain.Record{ID: "in_<1>", CustomerName: "Ada", Amount: 1999, Currency: "USD", FailureReason: domain.ReasonCardDeclined, Status: domain.StatusAbandoned, AttemptCount: 4}
	return domain.NewIntent(r, kind, time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC))
}

func TestNotifier_NotifyIntent(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	n := NewNotifier(newTestClient(t, api), time.UTC)

	require.NoError(t, n.NotifyIntent(context.Background(), intent(domain.KindAbandoned)))
	require.NoError(t, n.NotifyIntent(context.Background(), intent(domain.KindRetry1h)))

	require.Len(t, api.sent, 1)
	assert.Equal(t, int64(42), api.sent[0].ChatID)
	assert.Equal(t, "HTML", api.sent[0].ParseMode)
	assert.Contains(t, api.sent[0].Text, "Payment abandoned")
	assert.Contains(t, api.sent[0].Text, "in_&lt;1&gt;")
	assert.Contains(t, api.sent[0].Text, "19.99 USD")
}

func TestNotifier_APIError(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{fail: true}
	n := NewNotifier(newTestClient(t, api), time.UTC)

	err := n.NotifyIntent(context.Background(), intent(domain.KindRecovered))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestNotifier_Disabled(t *testing.T) {
	t.Parallel()

	n := NewNotifier(NewClient(Config{}), nil)
	assert.NoError(t, n.NotifyIntent(context.Background(), intent(domain.KindAbandoned)))
	assert.NoError(t, n.NotifyError(context.Background(), "boom", "ref"))
}
