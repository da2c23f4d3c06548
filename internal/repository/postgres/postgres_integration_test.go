//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/retry"
	dbpkg "gitlab.ozon.dev/safariproxd/recovery/pkg/db"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresUser  = "user"
	postgresPass  = "password"
	postgresDB    = "testdb"
)

type StoreSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer testcontainers.Container
	sqlDB       *sql.DB
	client      *dbpkg.Client
	store       *RecordStore
	outbox      *OutboxRepository
	planner     *retry.Schedule
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.ctx = context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPass,
			"POSTGRES_DB":       postgresDB,
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}
	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err)
	s.pgContainer = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, "5432/tcp")
	s.Require().NoError(err)
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPass, host, port.Port(), postgresDB)

	s.sqlDB, err = sql.Open("postgres", dsn)
	s.Require().NoError(err)
	s.Require().Eventually(func() bool { return s.sqlDB.PingContext(s.ctx) == nil }, 10*time.Second, time.Second)
	s.Require().NoError(Migrate(s.sqlDB))

	s.client, err = dbpkg.NewClient(dbpkg.Config{ReadDSN: dsn, WriteDSN: dsn, MaxOpen: 10, MaxIdle: 5})
	s.Require().NoError(err)
	s.store = NewRecordStore(s.client)
	s.outbox = NewOutboxRepository(s.client)

	policy, err := retry.NewTimePolicy(nil, time.UTC)
	s.Require().NoError(err)
	s.planner = retry.NewSchedule(policy, nil, 0)
}

func (s *StoreSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.sqlDB != nil {
		_ = s.sqlDB.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *StoreSuite) SetupTest() {
	_, err := s.sqlDB.ExecContext(s.ctx, `TRUNCATE recovery_records, outbox`)
	s.Require().NoError(err)
}

var baseTime = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func makeFailure(id string) domain.FailureEvent {
	return domain.FailureEvent{
		EventID:       "evt_" + id,
		PaymentID:     id,
		CustomerID:    "cus_1",
		CustomerName:  "Grace",
		Email:         "grace@example.com",
		Amount:        2599,
		Currency:      "EUR",
		FailureReason: domain.ReasonInsufficientFunds,
		OccurredAt:    baseTime,
	}
}

func (s *StoreSuite) TestUpsertAndGet() {
	rec, res, err := s.store.UpsertOnFailure(s.ctx, makeFailure("in_1"), baseTime, s.planner)
	s.Require().NoError(err)
	s.Equal(domain.UpsertCreated, res)
	s.Equal(int64(1), rec.Version)

	got, err := s.store.Get(s.ctx, "in_1")
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, got.Status)
	s.Equal(int64(2599), got.Amount)
	s.True(baseTime.Equal(got.CreatedAt))
	s.Require().NotNil(got.NextAttemptAt)
	s.True(baseTime.Add(time.Hour).Equal(*got.NextAttemptAt))

	_, res, err = s.store.UpsertOnFailure(s.ctx, makeFailure("in_1"), baseTime.Add(time.Minute), s.planner)
	s.Require().NoError(err)
	s.Equal(domain.UpsertRefreshed, res)

	_, err = s.store.Get(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrUnknownRecord)
}

func (s *StoreSuite) TestTransitionsAndRecovery() {
	_, _, err := s.store.UpsertOnFailure(s.ctx, makeFailure("in_1"), baseTime, s.planner)
	s.Require().NoError(err)

	due, err := s.store.DueForAttempt(s.ctx, baseTime.Add(time.Hour), 10)
	s.Require().NoError(err)
	s.Require().Len(due, 1)

	_, err = s.store.ApplyTransition(s.ctx, "in_1", func(r *domain.Record) error {
		_, err := r.Advance(baseTime, s.planner)
		return err
	})
	s.ErrorIs(err, domain.ErrNotDue)

	rec, err := s.store.ApplyTransition(s.ctx, "in_1", func(r *domain.Record) error {
		_, err := r.Advance(baseTime.Add(time.Hour), s.planner)
		return err
	})
	s.Require().NoError(err)
	s.Equal(1, rec.AttemptCount)
	s.Equal(domain.StatusRetrying, rec.Status)

	rec, ok, err := s.store.MarkRecovered(s.ctx, "in_1", baseTime.Add(2*time.Hour))
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(domain.StatusRecovered, rec.Status)

	_, ok, err = s.store.MarkRecovered(s.ctx, "in_1", baseTime.Add(3*time.Hour))
	s.Require().NoError(err)
	s.False(ok)

	again := makeFailure("in_1")
	again.EventID = "evt_in_1_again"
	_, res, err := s.store.UpsertOnFailure(s.ctx, again, baseTime.Add(4*time.Hour), s.planner)
	s.Require().NoError(err)
	s.Equal(domain.UpsertIgnored, res)

	got, err := s.store.Get(s.ctx, "in_1")
	s.Require().NoError(err)
	s.Equal(domain.StatusRecovered, got.Status)
	s.Equal(rec.Version, got.Version)
	s.Require().NotNil(got.RecoveredAt)
	s.True(baseTime.Add(2 * time.Hour).Equal(*got.RecoveredAt))

	due, err = s.store.DueForAttempt(s.ctx, baseTime.Add(1000*time.Hour), 0)
	s.Require().NoError(err)
	s.Empty(due)
}

func (s *StoreSuite) TestConcurrentFirstInsert() {
	var wg sync.WaitGroup
	results := make([]domain.UpsertResult, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i], errs[i] = s.store.UpsertOnFailure(s.ctx, makeFailure("in_race"), baseTime, s.planner)
		}(i)
	}
	wg.Wait()

	created := 0
	for i := range results {
		s.Require().NoError(errs[i])
		if results[i] == domain.UpsertCreated {
			created++
		}
	}
	s.Equal(1, created)

	all, err := s.store.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
	s.Equal(int64(8), all[0].Version)
}

func (s *StoreSuite) TestOutboxClaimAndMark() {
	t := s.T()
	rec, _, err := s.store.UpsertOnFailure(s.ctx, makeFailure("in_1"), baseTime, s.planner)
	require.NoError(t, err)

	intent := domain.NewIntent(rec, domain.KindFailed, baseTime)
	require.NoError(t, s.outbox.Notify(s.ctx, intent))
	require.NoError(t, s.outbox.Notify(s.ctx, intent))

	batch, err := s.outbox.ClaimPending(s.ctx, 10, baseTime)
	require.NoError(t, err)
	require.Len(t, batch.Messages(), 1)
	msg := batch.Messages()[0]
	assert.Equal(t, intent.ID, msg.ID)
	assert.Equal(t, "in_1", msg.Key)

	other, err := s.outbox.ClaimPending(s.ctx, 10, baseTime)
	require.NoError(t, err)
	assert.Empty(t, other.Messages())
	require.NoError(t, other.Rollback())

	require.NoError(t, batch.MarkAttempt(s.ctx, msg.ID, baseTime, "broker down", false))
	require.NoError(t, batch.Commit())

	again, err := s.outbox.ClaimPending(s.ctx, 10, baseTime.Add(time.Second))
	require.NoError(t, err)
	assert.Empty(t, again.Messages())
	require.NoError(t, again.Rollback())

	later, err := s.outbox.ClaimPending(s.ctx, 10, baseTime.Add(domain.OutboxRetryDelay))
	require.NoError(t, err)
	require.Len(t, later.Messages(), 1)
	assert.Equal(t, 1, later.Messages()[0].Attempts)
	require.NoError(t, later.MarkSent(s.ctx, msg.ID, baseTime.Add(domain.OutboxRetryDelay)))
	require.NoError(t, later.Commit())

	var status string
	require.NoError(t, s.sqlDB.QueryRowContext(s.ctx, `SELECT status FROM outbox WHERE id = $1`, msg.ID).Scan(&status))
	assert.Equal(t, string(domain.OutboxStatusCompleted), status)
}
