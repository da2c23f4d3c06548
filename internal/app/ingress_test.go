package app_test

import (
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app/mock"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/repository/inmemory"
)

func newTestIngress(t *testing.T, now time.Time) (*app.Ingress, *inmemory.RecordStore, *intentLog) {
	t.Helper()
	store := inmemory.NewRecordStore()
	notifier, log := NewNotifierEnv(t)
	in := app.NewIngress(store, newTestPlanner(t, nil), notifier, nil, app.IngressConfig{Timeout: time.Second}).
		WithClock(func() time.Time { return now })
	return in, store, log
}

func TestIngress_ReportFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		prepare    func(*testing.T, *app.Ingress)
		event      func() domain.FailureEvent
		wantResult domain.UpsertResult
		wantDup    bool
		wantKinds  []domain.NotificationKind
		wantErr    assert.ErrorAssertionFunc
	}{
		{
			name:       "Success_Created",
			prepare:    func(*testing.T, *app.Ingress) {},
			event:      func() domain.FailureEvent { return someFailure("in_1") },
			wantResult: domain.UpsertCreated,
			wantKinds:  []domain.NotificationKind{domain.KindFailed},
			wantErr:    assert.NoError,
		},
		{
			name: "Success_RefreshedWithNewEventID",
			prepare: func(t *testing.T, in *app.Ingress) {
				_, err := in.ReportFailure(contextBack, someFailure("in_1"))
				require.NoError(t, err)
			},
			event: func() domain.FailureEvent {
				ev := someFailure("in_1")
				ev.EventID = "evt_other"
				return ev
			},
			wantResult: domain.UpsertRefreshed,
			wantKinds:  []domain.NotificationKind{domain.KindFailed},
			wantErr:    assert.NoError,
		},
		{
			name: "Success_DuplicateEventID",
			prepare: func(t *testing.T, in *app.Ingress) {
				_, err := in.ReportFailure(contextBack, someFailure("in_1"))
				require.NoError(t, err)
			},
			event:      func() domain.FailureEvent { return someFailure("in_1") },
			wantResult: domain.UpsertRefreshed,
			wantDup:    true,
			wantKinds:  []domain.NotificationKind{domain.KindFailed},
			wantErr:    assert.NoError,
		},
		{
			name:    "Fail_InvalidAmount",
			prepare: func(*testing.T, *app.Ingress) {},
			event: func() domain.FailureEvent {
				ev := someFailure("in_1")
				ev.Amount = -5
				return ev
			},
			wantKinds: []domain.NotificationKind{},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, domain.ErrInvalidEvent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, _, log := newTestIngress(t, someConstTime)
			tt.prepare(t, in)

			out, err := in.ReportFailure(contextBack, tt.event())
			if !tt.wantErr(t, err) || err != nil {
				assert.Equal(t, tt.wantKinds, log.kinds())
				return
			}
			assert.Equal(t, tt.wantResult, out.Result)
			assert.Equal(t, tt.wantDup, out.Duplicate)
			assert.Equal(t, "in_1", out.Record.ID)
			assert.Equal(t, "USD", out.Record.Currency)
			assert.Equal(t, tt.wantKinds, log.kinds())
		})
	}
}

func TestIngress_FailedIntentContext(t *testing.T) {
	t.Parallel()

	in, _, log := newTestIngress(t, someConstTime)
	_, err := in.ReportFailure(contextBack, someFailure("in_1"))
	require.NoError(t, err)

	intents := log.all()
	require.Len(t, intents, 1)
	intent := intents[0]
	assert.Equal(t, "ada@example.com", intent.Recipient)
	assert.Equal(t, "in_1", intent.RecordID)
	assert.Equal(t, "49.99 USD", intent.Context["amount"])
	assert.Equal(t, "Ada Lovelace", intent.Context["customer_name"])
	assert.Equal(t, "2025-03-03T10:00:00Z", intent.Context["next_attempt_at"])
	assert.Equal(t, "Please try again", intent.Context["hint"])
}

func TestIngress_ReportSuccess(t *testing.T) {
	t.Parallel()

	in, store, log := newTestIngress(t, someConstTime.Add(3*time.Hour))
	_, err := in.ReportFailure(contextBack, someFailure("in_1"))
	require.NoError(t, err)

	success := domain.SuccessEvent{EventID: "evt_ok_1", PaymentID: "in_1", OccurredAt: someConstTime.Add(2 * time.Hour)}
	out, err := in.ReportSuccess(contextBack, success)
	require.NoError(t, err)
	assert.True(t, out.Recovered)
	assert.Equal(t, domain.StatusRecovered, out.Record.Status)
	assert.Equal(t, someConstTime.Add(2*time.Hour), *out.Record.RecoveredAt)

	out, err = in.ReportSuccess(contextBack, success)
	require.NoError(t, err)
	assert.True(t, out.Duplicate)
	assert.False(t, out.Recovered)

	success.EventID = "evt_ok_2"
	out, err = in.ReportSuccess(contextBack, success)
	require.NoError(t, err)
	assert.False(t, out.Recovered)

	out, err = in.ReportSuccess(contextBack, domain.SuccessEvent{PaymentID: "in_unknown"})
	require.NoError(t, err)
	assert.False(t, out.Recovered)

	rec, err := store.Get(contextBack, "in_1")
	require.NoError(t, err)
	assert.Equal(t, someConstTime.Add(2*time.Hour), *rec.RecoveredAt)
	assert.Equal(t, []domain.NotificationKind{domain.KindFailed, domain.KindRecovered}, log.kinds())
}

func TestIngress_FailureAfterRecoveryIsIgnored(t *testing.T) {
	t.Parallel()

	in, store, log := newTestIngress(t, someConstTime.Add(2*time.Hour))
	_, err := in.ReportFailure(contextBack, someFailure("in_1"))
	require.NoError(t, err)
	_, err = in.ReportSuccess(contextBack, domain.SuccessEvent{PaymentID: "in_1"})
	require.NoError(t, err)

	ev := someFailure("in_1")
	ev.EventID = "evt_fail_again"
	ev.OccurredAt = someConstTime.Add(2 * time.Hour)
	out, err := in.ReportFailure(contextBack, ev)
	require.NoError(t, err)
	assert.Equal(t, domain.UpsertIgnored, out.Result)
	assert.Equal(t, domain.StatusRecovered, out.Record.Status)
	require.NotNil(t, out.Record.RecoveredAt)
	assert.Equal(t, someConstTime.Add(2*time.Hour), *out.Record.RecoveredAt)
	assert.Equal(t, []domain.NotificationKind{domain.KindFailed, domain.KindRecovered}, log.kinds())

	st, err := app.NewStatsService(store, nil, time.UTC).Stats(contextBack)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Recovered)
	assert.Zero(t, st.Pending)
}

func TestIngress_StoreFailures(t *testing.T) {
	t.Parallel()

	stored := domain.Record{ID: "in_1", Status: domain.StatusPending, Currency: "USD"}

	tests := []struct {
		name    string
		prepare func(*mock.RecordStoreMock)
		act     func(*app.Ingress) (domain.Record, error)
		wantErr assert.ErrorAssertionFunc
		check   func(*testing.T, *app.Ingress, domain.Record)
	}{
		{
			name: "Fail_UpsertForgetsEventID",
			prepare: func(m *mock.RecordStoreMock) {
				m.UpsertOnFailureMock.Times(2).Return(domain.Record{}, 0, assert.AnError)
			},
			act: func(in *app.Ingress) (domain.Record, error) {
				_, _ = in.ReportFailure(contextBack, someFailure("in_1"))
				out, err := in.ReportFailure(contextBack, someFailure("in_1"))
				return out.Record, err
			},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.Contains(t, err.Error(), "upsert on failure")
			},
			check: func(t *testing.T, in *app.Ingress, _ domain.Record) {
				assert.Zero(t, in.DedupCache().Size())
			},
		},
		{
			name: "Fail_MarkRecovered",
			prepare: func(m *mock.RecordStoreMock) {
				m.MarkRecoveredMock.Return(domain.Record{}, false, assert.AnError)
			},
			act: func(in *app.Ingress) (domain.Record, error) {
				out, err := in.ReportSuccess(contextBack, domain.SuccessEvent{EventID: "evt_ok", PaymentID: "in_1"})
				return out.Record, err
			},
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.Contains(t, err.Error(), "mark recovered")
			},
			check: func(t *testing.T, in *app.Ingress, _ domain.Record) {
				assert.Zero(t, in.DedupCache().Size())
			},
		},
		{
			name: "Success_DuplicateWithUnreadableRecord",
			prepare: func(m *mock.RecordStoreMock) {
				m.UpsertOnFailureMock.Times(1).Return(stored, domain.UpsertCreated, nil)
				m.GetMock.Times(1).Return(domain.Record{}, assert.AnError)
			},
			act: func(in *app.Ingress) (domain.Record, error) {
				_, err := in.ReportFailure(contextBack, someFailure("in_1"))
				if err != nil {
					return domain.Record{}, err
				}
				out, err := in.ReportFailure(contextBack, someFailure("in_1"))
				if !out.Duplicate {
					return out.Record, assert.AnError
				}
				return out.Record, err
			},
			wantErr: assert.NoError,
			check: func(t *testing.T, _ *app.Ingress, rec domain.Record) {
				assert.Equal(t, domain.Record{}, rec)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := minimock.NewController(t)
			store := mock.NewRecordStoreMock(ctrl)
			tt.prepare(store)

			in := app.NewIngress(store, newTestPlanner(t, nil), nil, nil, app.IngressConfig{})
			rec, err := tt.act(in)
			tt.wantErr(t, err)
			tt.check(t, in, rec)
		})
	}
}
