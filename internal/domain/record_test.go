package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var someConstTime = time.Date(2025, time.June, 28, 9, 0, 0, 0, time.UTC)

// stepPlanner puts attempt n at anchor+n hours and abandons right after the
// last attempt.
type stepPlanner struct{ max int }

func (p stepPlanner) MaxAttempts(FailureReason) int { return p.max }

func (p stepPlanner) NextAttemptAt(r Record) time.Time {
	if r.AttemptCount >= p.max {
		return *r.LastAttemptAt
	}
	return r.CycleStartedAt.Add(time.Duration(r.AttemptCount+1) * time.Hour)
}

func someFailure() FailureEvent {
	return FailureEvent{
		EventID:       "evt_1",
		PaymentID:     "in_1",
		CustomerID:    "cus_1",
		CustomerName:  "Ada",
		Email:         "ada@example.com",
		Amount:        1999,
		Currency:      "USD",
		FailureReason: ReasonCardDeclined,
		OccurredAt:    someConstTime,
	}
}

func Test_NewRecord(t *testing.T) {
	t.Parallel()

	r := NewRecord(someFailure(), someConstTime.Add(time.Minute), stepPlanner{max: 4})

	assert.Equal(t, "in_1", r.ID)
	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, 0, r.AttemptCount)
	assert.Equal(t, someConstTime, r.CreatedAt)
	assert.Equal(t, someConstTime, r.CycleStartedAt)
	require.NotNil(t, r.NextAttemptAt)
	assert.Equal(t, someConstTime.Add(time.Hour), *r.NextAttemptAt)
	assert.Nil(t, r.RecoveredAt)
	assert.Nil(t, r.LastAttemptAt)
}

func Test_NewRecord_FutureEventClamped(t *testing.T) {
	t.Parallel()

	ev := someFailure()
	ev.OccurredAt = someConstTime.Add(48 * time.Hour)
	r := NewRecord(ev, someConstTime, stepPlanner{max: 4})
	assert.Equal(t, someConstTime, r.CreatedAt)
}

func Test_ApplyFailure_ActiveRecordKeepsState(t *testing.T) {
	t.Parallel()

	p := stepPlanner{max: 4}
	cur := NewRecord(someFailure(), someConstTime, p)
	_, err := cur.Advance(someConstTime.Add(time.Hour), p)
	require.NoError(t, err)
	cur.Advance(someConstTime.Add(2*time.Hour), p)

	ev := someFailure()
	ev.Amount = 2500
	ev.CustomerName = "Somebody Else"
	ev.OccurredAt = someConstTime.Add(3 * time.Hour)

	got, res := ApplyFailure(&cur, ev, someConstTime.Add(3*time.Hour), p)
	assert.Equal(t, UpsertRefreshed, res)
	assert.Equal(t, 2, got.AttemptCount)
	assert.Equal(t, StatusRetrying, got.Status)
	assert.Equal(t, cur.CreatedAt, got.CreatedAt)
	assert.Equal(t, cur.CycleStartedAt, got.CycleStartedAt)
	assert.Equal(t, *cur.NextAttemptAt, *got.NextAttemptAt)
	assert.Equal(t, int64(2500), got.Amount)
	assert.Equal(t, "Ada", got.CustomerName)
}

func Test_ApplyFailure_RestartsAbandoned(t *testing.T) {
	t.Parallel()

	p := stepPlanner{max: 1}
	cur := NewRecord(someFailure(), someConstTime, p)
	cur.Advance(someConstTime.Add(time.Hour), p)
	tr, err := cur.Advance(someConstTime.Add(time.Hour), p)
	require.NoError(t, err)
	require.Equal(t, KindAbandoned, tr.Kind)
	require.Equal(t, StatusAbandoned, cur.Status)

	now := someConstTime.Add(10 * time.Hour)
	ev := someFailure()
	ev.OccurredAt = now
	got, res := ApplyFailure(&cur, ev, now, p)

	assert.Equal(t, UpsertRestarted, res)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, 0, got.AttemptCount)
	assert.Equal(t, someConstTime, got.CreatedAt)
	assert.Equal(t, now, got.CycleStartedAt)
	require.NotNil(t, got.NextAttemptAt)
	assert.Equal(t, now.Add(time.Hour), *got.NextAttemptAt)
	assert.Nil(t, got.LastAttemptAt)
}

func Test_ApplyFailure_RecoveredIsFinal(t *testing.T) {
	t.Parallel()

	p := stepPlanner{max: 4}
	cur := NewRecord(someFailure(), someConstTime, p)
	cur.Advance(someConstTime.Add(time.Hour), p)
	recoveredAt := someConstTime.Add(90 * time.Minute)
	require.True(t, cur.MarkRecovered(recoveredAt))
	cur.Version = 3

	ev := someFailure()
	ev.EventID = "evt_2"
	ev.Amount = 7777
	ev.OccurredAt = someConstTime.Add(5 * time.Hour)
	got, res := ApplyFailure(&cur, ev, someConstTime.Add(5*time.Hour), p)

	assert.Equal(t, UpsertIgnored, res)
	assert.Equal(t, "ignored", res.String())
	assert.Equal(t, StatusRecovered, got.Status)
	require.NotNil(t, got.RecoveredAt)
	assert.Equal(t, recoveredAt, *got.RecoveredAt)
	assert.Nil(t, got.NextAttemptAt)
	assert.Equal(t, 1, got.AttemptCount)
	assert.Equal(t, int64(1999), got.Amount)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, cur.CycleStartedAt, got.CycleStartedAt)
}

func Test_ApplyFailure_NoAlias(t *testing.T) {
	t.Parallel()

	p := stepPlanner{max: 4}
	cur := NewRecord(someFailure(), someConstTime, p)
	got, _ := ApplyFailure(&cur, someFailure(), someConstTime, p)
	got.Advance(someConstTime.Add(time.Hour), p)
	assert.Equal(t, 0, cur.AttemptCount)
}

func Test_Record_Advance_FullCycle(t *testing.T) {
	t.Parallel()

	p := stepPlanner{max: 4}
	r := NewRecord(someFailure(), someConstTime, p)

	wantKinds := []NotificationKind{KindRetry1h, KindRetry24h, KindRetry3d, KindFinalNotice}
	prev := r.AttemptCount
	for i, kind := range wantKinds {
		now := *r.NextAttemptAt
		tr, err := r.Advance(now, p)
		require.NoError(t, err)
		assert.Equal(t, kind, tr.Kind)
		assert.Equal(t, i+1, tr.Attempt)
		assert.Equal(t, StatusRetrying, r.Status)
		assert.Equal(t, prev+1, r.AttemptCount)
		prev = r.AttemptCount
		require.NotNil(t, r.NextAttemptAt)
	}

	tr, err := r.Advance(*r.NextAttemptAt, p)
	require.NoError(t, err)
	assert.Equal(t, KindAbandoned, tr.Kind)
	assert.Equal(t, StatusAbandoned, r.Status)
	assert.Equal(t, MaxAttempts, r.AttemptCount)
	assert.Nil(t, r.NextAttemptAt)

	_, err = r.Advance(someConstTime.Add(1000*time.Hour), p)
	assert.True(t, errors.Is(err, ErrNotDue))
}

func Test_Record_Advance_NotDue(t *testing.T) {
	t.Parallel()

	p := stepPlanner{max: 4}
	r := NewRecord(someFailure(), someConstTime, p)
	_, err := r.Advance(someConstTime.Add(59*time.Minute), p)
	assert.ErrorIs(t, err, ErrNotDue)
	assert.Equal(t, 0, r.AttemptCount)
	assert.Equal(t, StatusPending, r.Status)
}

func Test_Record_MarkRecovered(t *testing.T) {
	t.Parallel()

	p := stepPlanner{max: 4}
	r := NewRecord(someFailure(), someConstTime, p)
	r.Advance(someConstTime.Add(time.Hour), p)
	r.Advance(someConstTime.Add(2*time.Hour), p)

	at := someConstTime.Add(150 * time.Minute)
	assert.True(t, r.MarkRecovered(at))
	assert.Equal(t, StatusRecovered, r.Status)
	require.NotNil(t, r.RecoveredAt)
	assert.Equal(t, at, *r.RecoveredAt)
	assert.Nil(t, r.NextAttemptAt)
	assert.Equal(t, 2, r.AttemptCount)

	assert.False(t, r.MarkRecovered(at.Add(time.Hour)))
	assert.Equal(t, at, *r.RecoveredAt)
}

func Test_Record_MarkRecovered_Abandoned(t *testing.T) {
	t.Parallel()

	r := Record{ID: "in_1", Status: StatusAbandoned, AttemptCount: 4}
	assert.False(t, r.MarkRecovered(someConstTime))
	assert.Equal(t, StatusAbandoned, r.Status)
	assert.Nil(t, r.RecoveredAt)
}

func Test_KindForAttempt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt, limit int
		want           NotificationKind
	}{
		{1, 4, KindRetry1h},
		{2, 4, KindRetry24h},
		{3, 4, KindRetry3d},
		{4, 4, KindFinalNotice},
		{1, 1, KindFinalNotice},
		{2, 3, KindRetry24h},
		{3, 3, KindFinalNotice},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindForAttempt(tt.attempt, tt.limit), "attempt %d of %d", tt.attempt, tt.limit)
	}
}

func Test_FailureEvent_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*FailureEvent)
		wantErr bool
	}{
		{"Valid", func(*FailureEvent) {}, false},
		{"MissingID", func(e *FailureEvent) { e.PaymentID = "" }, true},
		{"ZeroAmount", func(e *FailureEvent) { e.Amount = 0 }, true},
		{"BadCurrency", func(e *FailureEvent) { e.Currency = "dollars" }, true},
		{"BadEmail", func(e *FailureEvent) { e.Email = "nobody" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ev := someFailure()
			tt.mutate(&ev)
			err := ev.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEvent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_FormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "19.99 USD", FormatAmount(1999, "USD"))
	assert.Equal(t, "0.05 EUR", FormatAmount(5, "EUR"))
	assert.Equal(t, "-1.00 USD", FormatAmount(-100, "USD"))
}

func Test_Domain_ErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
		substr string
	}{
		{"NotFound", UnknownRecordError("in_42"), ErrUnknownRecord, "in_42"},
		{"InvalidEvent", InvalidEventError("bad"), ErrInvalidEvent, "bad"},
		{"NotDue", NotDueError("in_7"), ErrNotDue, "in_7"},
		{"Terminal", TerminalRecordError("in_9", StatusRecovered), ErrTerminal, "recovered"},
	}

	for _, tt := range tests {
		assert.ErrorIs(t, tt.err, tt.target, tt.name)
		assert.Contains(t, tt.err.Error(), tt.substr, tt.name)
		assert.NotErrorIs(t, tt.err, Error{Code: 99}, tt.name)
	}
}
