package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/repository/inmemory"
)

func TestComputeStats_Empty(t *testing.T) {
	t.Parallel()

	st := app.ComputeStats(nil, nil)
	assert.Zero(t, st.Total)
	assert.Zero(t, st.RecoveryRate)
	assert.Empty(t, st.Currencies)
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	recoveredAt := time.Date(2025, time.March, 4, 14, 5, 0, 0, time.UTC)
	records := []domain.Record{
		{ID: "a", Amount: 1000, Currency: "USD", Status: domain.StatusPending},
		{ID: "b", Amount: 2000, Currency: "USD", Status: domain.StatusRetrying, AttemptCount: 2},
		{ID: "c", Amount: 3000, Currency: "USD", Status: domain.StatusRecovered, AttemptCount: 1, RecoveredAt: &recoveredAt},
		{ID: "d", Amount: 4000, Currency: "USD", Status: domain.StatusAbandoned, AttemptCount: 4},
		{ID: "e", Amount: 500, Currency: "EUR", Status: domain.StatusAbandoned, AttemptCount: 4},
	}

	st := app.ComputeStats(records, time.UTC)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 1, st.Pending)
	assert.Equal(t, 1, st.Retrying)
	assert.Equal(t, 1, st.Recovered)
	assert.Equal(t, 2, st.Abandoned)
	assert.InDelta(t, 0.2, st.RecoveryRate, 1e-9)
	assert.Equal(t, 11, st.AttemptsTotal)
	assert.Equal(t, 1, st.RecoveriesByHour[14])

	usd := st.Currencies["USD"]
	assert.Equal(t, app.CurrencyTotals{Total: 10000, Recovered: 3000, Lost: 4000, AtRisk: 3000, ROI: 0.3}, usd)
	eur := st.Currencies["EUR"]
	assert.Equal(t, int64(500), eur.Lost)
	assert.Zero(t, eur.ROI)

	loc := time.FixedZone("UTC-5", -5*60*60)
	assert.Equal(t, 1, app.ComputeStats(records, loc).RecoveriesByHour[9])
}

func TestStatsService(t *testing.T) {
	t.Parallel()

	store := inmemory.NewRecordStore()
	planner := newTestPlanner(t, nil)
	ev := someFailure("in_1")
	require.NoError(t, ev.Validate())
	_, _, err := store.UpsertOnFailure(contextBack, ev, someConstTime, planner)
	require.NoError(t, err)

	st, err := app.NewStatsService(store, nil, time.UTC).Stats(contextBack)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 1, st.Pending)
	assert.Equal(t, int64(4999), st.Currencies["USD"].AtRisk)
}
