package app

import (
	"context"
	"fmt"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
)

type CurrencyTotals struct {
	Total     int64   `json:"total"`
	Recovered int64   `json:"recovered"`
	Lost      int64   `json:"lost"`
	AtRisk    int64   `json:"at_risk"`
	ROI       float64 `json:"roi"`
}

type Stats struct {
	Total            int                       `json:"total"`
	Pending          int                       `json:"pending"`
	Retrying         int                       `json:"retrying"`
	Recovered        int                       `json:"recovered"`
	Abandoned        int                       `json:"abandoned"`
	RecoveryRate     float64                   `json:"recovery_rate"`
	AttemptsTotal    int                       `json:"attempts_total"`
	Currencies       map[string]CurrencyTotals `json:"currencies"`
	RecoveriesByHour [24]int                   `json:"recoveries_by_hour"`
}

// ComputeStats summarizes records. Recovery hours are bucketed in loc
// (UTC when nil).
func ComputeStats(records []domain.Record, loc *time.Location) Stats {
	if loc == nil {
		loc = time.UTC
	}
	st := Stats{Total: len(records), Currencies: make(map[string]CurrencyTotals)}

	for _, r := range records {
		ct := st.Currencies[r.Currency]
		ct.Total += r.Amount
		switch r.Status {
		case domain.StatusPending:
			st.Pending++
			ct.AtRisk += r.Amount
		case domain.StatusRetrying:
			st.Retrying++
			ct.AtRisk += r.Amount
		case domain.StatusRecovered:
			st.Recovered++
			ct.Recovered += r.Amount
			if r.RecoveredAt != nil {
				st.RecoveriesByHour[r.RecoveredAt.In(loc).Hour()]++
			}
		case domain.StatusAbandoned:
			st.Abandoned++
			ct.Lost += r.Amount
		}
		st.AttemptsTotal += r.AttemptCount
		st.Currencies[r.Currency] = ct
	}

	if st.Total > 0 {
		st.RecoveryRate = float64(st.Recovered) / float64(st.Total)
	}
	for cur, ct := range st.Currencies {
		if ct.Total > 0 {
			ct.ROI = float64(ct.Recovered) / float64(ct.Total)
		}
		st.Currencies[cur] = ct
	}
	return st
}

func (s Stats) StatusCounts() map[string]int {
	return map[string]int{
		domain.StatusPending.String():   s.Pending,
		domain.StatusRetrying.String():  s.Retrying,
		domain.StatusRecovered.String(): s.Recovered,
		domain.StatusAbandoned.String(): s.Abandoned,
	}
}

type StatsService struct {
	store   RecordStore
	metrics metrics.Provider
	loc     *time.Location
}

func NewStatsService(store RecordStore, m metrics.Provider, loc *time.Location) *StatsService {
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	return &StatsService{store: store, metrics: m, loc: loc}
}

func (s *StatsService) Stats(ctx context.Context) (Stats, error) {
	records, err := s.store.Snapshot(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("snapshot: %w", err)
	}
	st := ComputeStats(records, s.loc)

	s.metrics.UpdateStatusCounts(st.StatusCounts())
	for cur, ct := range st.Currencies {
		s.metrics.UpdateAmounts(cur, map[string]int64{
			"total":     ct.Total,
			"recovered": ct.Recovered,
			"lost":      ct.Lost,
			"at_risk":   ct.AtRisk,
		})
	}
	return st, nil
}
