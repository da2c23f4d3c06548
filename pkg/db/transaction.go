package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

type Tx struct {
	tx     *sql.Tx
	logger *slog.Logger
	done   bool
}

func (t *Tx) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		t.logger.Error("Error executing query", "error", err)
		return nil, fmt.Errorf("exec query: %w", err)
	}
	return result, nil
}

func (t *Tx) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		t.logger.Error("Error executing query", "error", err)
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows, nil
}

func (t *Tx) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	t.done = true
	if err := t.tx.Commit(); err != nil {
		t.logger.Error("Error committing transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback is a no-op after Commit.
func (t *Tx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		t.logger.Error("Error rolling back transaction", "error", err)
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}
