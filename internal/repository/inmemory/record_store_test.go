package inmemory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/retry"
)

var someConstTime = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func newPlanner(t *testing.T) *retry.Schedule {
	t.Helper()
	policy, err := retry.NewTimePolicy(nil, time.UTC)
	require.NoError(t, err)
	return retry.NewSchedule(policy, nil, 0)
}

func failure(id string, occurred time.Time) domain.FailureEvent {
	return domain.FailureEvent{
		EventID:       "evt_" + id,
		PaymentID:     id,
		CustomerID:    "cus_" + id,
		Email:         id + "@example.com",
		Amount:        1000,
		Currency:      "USD",
		FailureReason: domain.ReasonCardDeclined,
		OccurredAt:    occurred,
	}
}

func TestRecordStore_UpsertOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	rec, res, err := s.UpsertOnFailure(ctx, failure("in_1", someConstTime), someConstTime, p)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertCreated, res)
	assert.Equal(t, int64(1), rec.Version)
	assert.Equal(t, domain.StatusPending, rec.Status)

	rec, res, err = s.UpsertOnFailure(ctx, failure("in_1", someConstTime.Add(time.Minute)), someConstTime.Add(time.Minute), p)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertRefreshed, res)
	assert.Equal(t, int64(2), rec.Version)
	assert.Equal(t, someConstTime, rec.CreatedAt)

	all, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRecordStore_MarkRecovered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	_, ok, err := s.MarkRecovered(ctx, "missing", someConstTime)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = s.UpsertOnFailure(ctx, failure("in_1", someConstTime), someConstTime, p)
	require.NoError(t, err)

	rec, ok, err := s.MarkRecovered(ctx, "in_1", someConstTime.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.StatusRecovered, rec.Status)

	_, ok, err = s.MarkRecovered(ctx, "in_1", someConstTime.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.Get(ctx, "in_1")
	require.NoError(t, err)
	assert.Equal(t, someConstTime.Add(time.Hour), *got.RecoveredAt)
}

func TestRecordStore_DueForAttempt_Order(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	// in_b and in_a share the 10:00 slot, in_c lands at 14:00.
	for _, ev := range []domain.FailureEvent{
		failure("in_c", someConstTime.Add(4*time.Hour)),
		failure("in_b", someConstTime),
		failure("in_a", someConstTime),
	} {
		_, _, err := s.UpsertOnFailure(ctx, ev, someConstTime.Add(4*time.Hour), p)
		require.NoError(t, err)
	}

	due, err := s.DueForAttempt(ctx, someConstTime.Add(time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "in_a", due[0].ID)
	assert.Equal(t, "in_b", due[1].ID)

	due, err = s.DueForAttempt(ctx, someConstTime.Add(24*time.Hour), 2)
	require.NoError(t, err)
	require.Len(t, due, 2)

	due, err = s.DueForAttempt(ctx, someConstTime.Add(24*time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, "in_c", due[2].ID)
}

func TestRecordStore_ApplyTransition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	_, err := s.ApplyTransition(ctx, "missing", func(*domain.Record) error { return nil })
	assert.ErrorIs(t, err, domain.ErrUnknownRecord)

	_, _, err = s.UpsertOnFailure(ctx, failure("in_1", someConstTime), someConstTime, p)
	require.NoError(t, err)

	_, err = s.ApplyTransition(ctx, "in_1", func(r *domain.Record) error {
		_, err := r.Advance(someConstTime, p)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotDue)

	got, err := s.Get(ctx, "in_1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.AttemptCount)
	assert.Equal(t, int64(1), got.Version)

	rec, err := s.ApplyTransition(ctx, "in_1", func(r *domain.Record) error {
		_, err := r.Advance(someConstTime.Add(time.Hour), p)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.AttemptCount)
	assert.Equal(t, domain.StatusRetrying, rec.Status)
}

func TestRecordStore_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	_, _, err := s.UpsertOnFailure(ctx, failure("in_1", someConstTime), someConstTime, p)
	require.NoError(t, err)

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	*snap[0].NextAttemptAt = someConstTime.Add(-time.Hour)
	snap[0].Status = domain.StatusAbandoned

	got, err := s.Get(ctx, "in_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, someConstTime.Add(time.Hour), *got.NextAttemptAt)
}

func TestRecordStore_ConcurrentTransitionsAndRecovery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	const n = 200
	for i := 0; i < n; i++ {
		_, _, err := s.UpsertOnFailure(ctx, failure(fmt.Sprintf("in_%03d", i), someConstTime), someConstTime, p)
		require.NoError(t, err)
	}

	now := someConstTime.Add(time.Hour)
	var wg sync.WaitGroup
	var mu sync.Mutex
	advanced := map[string]bool{}
	recovered := map[string]bool{}

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("in_%03d", i)
			_, err := s.ApplyTransition(ctx, id, func(r *domain.Record) error {
				_, err := r.Advance(now, p)
				return err
			})
			if err == nil {
				mu.Lock()
				advanced[id] = true
				mu.Unlock()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := n - 1; i >= 0; i-- {
			id := fmt.Sprintf("in_%03d", i)
			if _, ok, _ := s.MarkRecovered(ctx, id, now); ok {
				mu.Lock()
				recovered[id] = true
				mu.Unlock()
			}
		}
	}()
	wg.Wait()

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, n)
	for _, r := range snap {
		assert.True(t, recovered[r.ID], r.ID)
		assert.Equal(t, domain.StatusRecovered, r.Status, r.ID)
		assert.Nil(t, r.NextAttemptAt, r.ID)
		if advanced[r.ID] {
			assert.Equal(t, 1, r.AttemptCount, r.ID)
		} else {
			assert.Equal(t, 0, r.AttemptCount, r.ID)
		}
	}
}

func TestRecordStore_UpsertOnRecoveredIsIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	_, _, err := s.UpsertOnFailure(ctx, failure("in_1", someConstTime), someConstTime, p)
	require.NoError(t, err)
	recovered, ok, err := s.MarkRecovered(ctx, "in_1", someConstTime.Add(time.Hour))
	require.NoError(t, err)
	require.True(t, ok)

	again := failure("in_1", someConstTime.Add(3*time.Hour))
	again.EventID = "evt_in_1_again"
	rec, res, err := s.UpsertOnFailure(ctx, again, someConstTime.Add(3*time.Hour), p)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertIgnored, res)
	assert.Equal(t, domain.StatusRecovered, rec.Status)

	got, err := s.Get(ctx, "in_1")
	require.NoError(t, err)
	assert.Equal(t, recovered.Version, got.Version)
	assert.Equal(t, domain.StatusRecovered, got.Status)
	require.NotNil(t, got.RecoveredAt)
	assert.Equal(t, someConstTime.Add(time.Hour), *got.RecoveredAt)
}

func TestRecordStore_ConcurrentReingestionAndAdvance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewRecordStore()
	p := newPlanner(t)

	const n = 200
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("in_%03d", i)
		_, _, err := s.UpsertOnFailure(ctx, failure(ids[i], someConstTime), someConstTime, p)
		require.NoError(t, err)
	}

	now := someConstTime.Add(time.Hour)
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)

	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, id := range ids {
			ev := failure(id, now)
			ev.EventID = "evt_again_" + id
			ev.Amount = 2000
			if _, _, err := s.UpsertOnFailure(ctx, ev, now, p); err != nil {
				errs <- err
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := n - 1; i >= 0; i-- {
			_, err := s.ApplyTransition(ctx, ids[i], func(r *domain.Record) error {
				_, err := r.Advance(now, p)
				return err
			})
			if err != nil {
				errs <- err
			}
		}
	}()
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, n)

	seen := map[string]bool{}
	for _, r := range snap {
		assert.False(t, seen[r.ID], "duplicate record %s", r.ID)
		seen[r.ID] = true

		// A refresh never touches the schedule, so every advance lands
		// and neither write is lost.
		assert.Equal(t, 1, r.AttemptCount, r.ID)
		assert.Equal(t, domain.StatusRetrying, r.Status, r.ID)
		assert.Equal(t, someConstTime, r.CreatedAt, r.ID)
		assert.Equal(t, someConstTime, r.CycleStartedAt, r.ID)
		assert.Equal(t, int64(2000), r.Amount, r.ID)
		assert.Equal(t, int64(3), r.Version, r.ID)
	}
}

func TestRecordStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewRecordStore()
	_, err := s.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.DueForAttempt(ctx, someConstTime, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
