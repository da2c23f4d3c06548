package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/pkg/db"
)

const recordColumns = `id, customer_id, customer_name, email, amount, currency, failure_reason,
	status, attempt_count, created_at, cycle_started_at, next_attempt_at, last_attempt_at,
	recovered_at, updated_at, version`

var errNoChange = errors.New("no change")

type RecordStore struct {
	client *db.Client
}

func NewRecordStore(client *db.Client) *RecordStore {
	return &RecordStore{client: client}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var (
		r                       domain.Record
		status, reason          string
		next, last, recoveredAt sql.NullTime
	)
	err := row.Scan(
		&r.ID, &r.CustomerID, &r.CustomerName, &r.Email, &r.Amount, &r.Currency, &reason,
		&status, &r.AttemptCount, &r.CreatedAt, &r.CycleStartedAt, &next, &last,
		&recoveredAt, &r.UpdatedAt, &r.Version,
	)
	if err != nil {
		return domain.Record{}, err
	}

	st, ok := domain.ParseStatus(status)
	if !ok {
		return domain.Record{}, fmt.Errorf("record %s has unknown status %q", r.ID, status)
	}
	r.Status = st
	r.FailureReason = domain.FailureReason(reason)
	r.NextAttemptAt = nullTime(next)
	r.LastAttemptAt = nullTime(last)
	r.RecoveredAt = nullTime(recoveredAt)
	return r, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func lockRecord(ctx context.Context, tx *db.Tx, id string) (*domain.Record, error) {
	r, err := scanRecord(tx.QueryRow(ctx, `SELECT `+recordColumns+` FROM recovery_records WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock record: %w", err)
	}
	return &r, nil
}

func insertRecord(ctx context.Context, tx *db.Tx, r domain.Record) (bool, error) {
	const query = `
		INSERT INTO recovery_records (` + recordColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO NOTHING`

	res, err := tx.Exec(ctx, query,
		r.ID, r.CustomerID, r.CustomerName, r.Email, r.Amount, r.Currency, string(r.FailureReason),
		r.Status.String(), r.AttemptCount, r.CreatedAt, r.CycleStartedAt, timeArg(r.NextAttemptAt),
		timeArg(r.LastAttemptAt), timeArg(r.RecoveredAt), r.UpdatedAt, r.Version,
	)
	if err != nil {
		return false, fmt.Errorf("exec insert: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows == 1, nil
}

func updateRecord(ctx context.Context, tx *db.Tx, r domain.Record) error {
	const query = `
		UPDATE recovery_records
		SET customer_id = $2, customer_name = $3, email = $4, amount = $5, currency = $6,
		    failure_reason = $7, status = $8, attempt_count = $9, cycle_started_at = $10,
		    next_attempt_at = $11, last_attempt_at = $12, recovered_at = $13,
		    updated_at = $14, version = $15
		WHERE id = $1`

	res, err := tx.Exec(ctx, query,
		r.ID, r.CustomerID, r.CustomerName, r.Email, r.Amount, r.Currency,
		string(r.FailureReason), r.Status.String(), r.AttemptCount, r.CycleStartedAt,
		timeArg(r.NextAttemptAt), timeArg(r.LastAttemptAt), timeArg(r.RecoveredAt),
		r.UpdatedAt, r.Version,
	)
	if err != nil {
		return fmt.Errorf("exec update: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.UnknownRecordError(r.ID)
	}
	return nil
}

func (s *RecordStore) UpsertOnFailure(ctx context.Context, ev domain.FailureEvent, now time.Time, p domain.Planner) (domain.Record, domain.UpsertResult, error) {
	var (
		out domain.Record
		res domain.UpsertResult
	)
	// A concurrent first insert for the same id loses ON CONFLICT; the
	// second pass then finds and locks the winner's row.
	for pass := 0; pass < 2; pass++ {
		inserted := true
		err := s.client.InTx(ctx, func(tx *db.Tx) error {
			cur, err := lockRecord(ctx, tx, ev.PaymentID)
			if err != nil {
				return err
			}
			out, res = domain.ApplyFailure(cur, ev, now, p)
			if res == domain.UpsertIgnored {
				return nil
			}
			if cur == nil {
				out.Version = 1
				inserted, err = insertRecord(ctx, tx, out)
				return err
			}
			out.Version = cur.Version + 1
			return updateRecord(ctx, tx, out)
		})
		if err != nil {
			return domain.Record{}, 0, fmt.Errorf("upsert %s: %w", ev.PaymentID, err)
		}
		if inserted {
			return out, res, nil
		}
	}
	return domain.Record{}, 0, fmt.Errorf("upsert %s: concurrent insert did not settle", ev.PaymentID)
}

func (s *RecordStore) update(ctx context.Context, id string, mutate func(*domain.Record) error) (domain.Record, error) {
	var out domain.Record
	err := s.client.InTx(ctx, func(tx *db.Tx) error {
		cur, err := lockRecord(ctx, tx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.UnknownRecordError(id)
		}
		if err := mutate(cur); err != nil {
			return err
		}
		cur.ID = id
		cur.Version++
		out = *cur
		return updateRecord(ctx, tx, out)
	})
	return out, err
}

func (s *RecordStore) MarkRecovered(ctx context.Context, id string, at time.Time) (domain.Record, bool, error) {
	rec, err := s.update(ctx, id, func(r *domain.Record) error {
		if !r.MarkRecovered(at) {
			return errNoChange
		}
		return nil
	})
	switch {
	case errors.Is(err, domain.ErrUnknownRecord), errors.Is(err, errNoChange):
		return domain.Record{}, false, nil
	case err != nil:
		return domain.Record{}, false, fmt.Errorf("mark recovered %s: %w", id, err)
	}
	return rec, true, nil
}

func (s *RecordStore) ApplyTransition(ctx context.Context, id string, mutate func(*domain.Record) error) (domain.Record, error) {
	return s.update(ctx, id, mutate)
}

func (s *RecordStore) DueForAttempt(ctx context.Context, now time.Time, limit int) ([]domain.Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM recovery_records
		WHERE status IN ('pending', 'retrying') AND next_attempt_at <= $1
		ORDER BY next_attempt_at, id
		LIMIT $2`

	var lim sql.NullInt64
	if limit > 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}
	return s.queryRecords(ctx, query, now, lim)
}

func (s *RecordStore) Snapshot(ctx context.Context) ([]domain.Record, error) {
	return s.queryRecords(ctx, `SELECT `+recordColumns+` FROM recovery_records ORDER BY id`)
}

func (s *RecordStore) Get(ctx context.Context, id string) (domain.Record, error) {
	r, err := scanRecord(s.client.QueryRow(ctx, `SELECT `+recordColumns+` FROM recovery_records WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, domain.UnknownRecordError(id)
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("get record: %w", err)
	}
	return r, nil
}

func (s *RecordStore) queryRecords(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := s.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}
