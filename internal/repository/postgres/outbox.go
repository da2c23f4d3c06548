package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/pkg/db"
)

type OutboxRepository struct {
	client *db.Client
}

func NewOutboxRepository(client *db.Client) *OutboxRepository {
	return &OutboxRepository{client: client}
}

// Notify stores the intent for the relay. It satisfies app.Notifier.
func (r *OutboxRepository) Notify(ctx context.Context, intent domain.NotificationIntent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("marshal intent: %w", err)
	}
	const query = `
		INSERT INTO outbox (id, key, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`

	_, err = r.client.Exec(ctx, db.ModeWrite, query,
		intent.ID, intent.RecordID, payload, domain.OutboxStatusCreated, intent.CreatedAt)
	if err != nil {
		return fmt.Errorf("save outbox message: %w", err)
	}
	return nil
}

// ClaimPending locks up to limit messages that are ready for another
// attempt. Rows locked by another relay are skipped.
func (r *OutboxRepository) ClaimPending(ctx context.Context, limit int, now time.Time) (app.OutboxBatch, error) {
	const query = `
		SELECT id, key, payload, status, error, attempts, created_at, sent_at, last_attempt_at
		FROM outbox
		WHERE status = $1 AND (last_attempt_at IS NULL OR last_attempt_at <= $2)
		ORDER BY created_at ASC
		LIMIT $3
		FOR UPDATE SKIP LOCKED`

	tx, err := r.client.BeginTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, domain.OutboxStatusCreated, now.Add(-domain.OutboxRetryDelay), limit)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("query pending messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.OutboxMessage
	for rows.Next() {
		var (
			msg                 domain.OutboxMessage
			errorStr            sql.NullString
			sentAt, lastAttempt sql.NullTime
		)
		err := rows.Scan(&msg.ID, &msg.Key, &msg.Payload, &msg.Status, &errorStr,
			&msg.Attempts, &msg.CreatedAt, &sentAt, &lastAttempt)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if errorStr.Valid {
			msg.Error = &errorStr.String
		}
		msg.SentAt = nullTime(sentAt)
		msg.LastAttemptAt = nullTime(lastAttempt)
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return &outboxBatch{tx: tx, messages: messages}, nil
}

type outboxBatch struct {
	tx       *db.Tx
	messages []domain.OutboxMessage
}

func (b *outboxBatch) Messages() []domain.OutboxMessage {
	return b.messages
}

func (b *outboxBatch) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `
		UPDATE outbox
		SET status = $2, sent_at = $3, last_attempt_at = $3, attempts = attempts + 1, error = NULL
		WHERE id = $1`
	return b.exec(ctx, query, id, domain.OutboxStatusCompleted, at)
}

func (b *outboxBatch) MarkAttempt(ctx context.Context, id uuid.UUID, at time.Time, errMsg string, failed bool) error {
	status := domain.OutboxStatusCreated
	if failed {
		status = domain.OutboxStatusFailed
	}
	const query = `
		UPDATE outbox
		SET status = $2, last_attempt_at = $3, attempts = attempts + 1, error = $4
		WHERE id = $1`
	return b.exec(ctx, query, id, status, at, errMsg)
}

func (b *outboxBatch) exec(ctx context.Context, query string, args ...any) error {
	res, err := b.tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update outbox: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("message not found: %v", args[0])
	}
	return nil
}

func (b *outboxBatch) Commit() error {
	return b.tx.Commit()
}

func (b *outboxBatch) Rollback() error {
	return b.tx.Rollback()
}
