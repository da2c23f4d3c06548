package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"go.uber.org/multierr"
)

type ClientMode string

const (
	ModeRead  ClientMode = "read"
	ModeWrite ClientMode = "write"
)

// Client splits traffic between a read replica and the primary.
type Client struct {
	readDB  *sql.DB
	writeDB *sql.DB
	logger  *slog.Logger
}

type Config struct {
	ReadDSN  string
	WriteDSN string
	MaxOpen  int
	MaxIdle  int
	Logger   *slog.Logger
}

func NewClient(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "db")

	readDB, err := open(cfg.ReadDSN, cfg.MaxOpen, cfg.MaxIdle)
	if err != nil {
		return nil, fmt.Errorf("open read DB: %w", err)
	}
	if cfg.WriteDSN == "" || cfg.WriteDSN == cfg.ReadDSN {
		return &Client{readDB: readDB, writeDB: readDB, logger: logger}, nil
	}

	writeDB, err := open(cfg.WriteDSN, cfg.MaxOpen, cfg.MaxIdle)
	if err != nil {
		readDB.Close()
		return nil, fmt.Errorf("open write DB: %w", err)
	}
	return &Client{readDB: readDB, writeDB: writeDB, logger: logger}, nil
}

func open(dsn string, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	return db, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.writeDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping write DB: %w", err)
	}
	if c.readDB != c.writeDB {
		if err := c.readDB.PingContext(ctx); err != nil {
			return fmt.Errorf("ping read DB: %w", err)
		}
	}
	return nil
}

// WriteDB exposes the primary pool, e.g. for migrations.
func (c *Client) WriteDB() *sql.DB {
	return c.writeDB
}

func (c *Client) Close() error {
	var err error
	if c.readDB != nil && c.readDB != c.writeDB {
		if closeErr := c.readDB.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close read DB: %w", closeErr))
		}
	}
	if c.writeDB != nil {
		if closeErr := c.writeDB.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close write DB: %w", closeErr))
		}
	}
	return err
}

func (c *Client) Exec(ctx context.Context, mode ClientMode, query string, args ...interface{}) (sql.Result, error) {
	result, err := c.getDB(mode).ExecContext(ctx, query, args...)
	if err != nil {
		c.logger.Error("Error executing query", "error", err)
		return nil, fmt.Errorf("exec query: %w", err)
	}
	return result, nil
}

func (c *Client) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := c.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Error("Error executing query", "error", err)
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows, nil
}

func (c *Client) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.readDB.QueryRowContext(ctx, query, args...)
}

func (c *Client) BeginTx(ctx context.Context) (*Tx, error) {
	tx, err := c.writeDB.BeginTx(ctx, nil)
	if err != nil {
		c.logger.Error("Error starting transaction", "error", err)
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx, logger: c.logger}, nil
}

// InTx runs fn in a transaction, committing when fn returns nil.
func (c *Client) InTx(ctx context.Context, fn func(*Tx) error) (err error) {
	tx, err := c.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (c *Client) getDB(mode ClientMode) *sql.DB {
	if mode == ModeRead {
		return c.readDB
	}
	return c.writeDB
}
