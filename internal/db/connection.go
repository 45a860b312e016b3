// Package db provides database connection and management utilities.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fleetcard/authengine/internal/config"

	// Database drivers registered with database/sql
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DBTX is the query surface shared by *DB and *Tx, so repositories can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Dialect() Dialect
}

// DB wraps the database connection pool
type DB struct {
	*sql.DB
	logger  *slog.Logger
	dialect Dialect
}

// Connect establishes a connection to the configured database
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	dialect := Postgres
	if cfg.Driver == config.DriverSQLite {
		dialect = SQLite
	}

	logger.Info("connecting to database",
		"driver", cfg.Driver,
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	db, err := sql.Open(dialect.DriverName(), cfg.DSN())
	if err != nil {
		logger.Error("failed to open database connection", "error", err)
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if dialect == SQLite {
		// SQLite has a single writer; one connection keeps ledger commits
		// strictly serialized and avoids SQLITE_BUSY under load.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() //nolint:errcheck // already failing
		logger.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("successfully connected to database",
		"driver", cfg.Driver,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return &DB{
		DB:      db,
		logger:  logger,
		dialect: dialect,
	}, nil
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Logger returns the logger the connection was opened with.
func (db *DB) Logger() *slog.Logger {
	return db.logger
}

// Close closes the database connection and logs the closure.
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}

// Tx is a database transaction that remembers its dialect.
type Tx struct {
	*sql.Tx
	dialect Dialect
}

// Dialect returns the SQL dialect of the transaction.
func (tx *Tx) Dialect() Dialect {
	return tx.dialect
}

// BeginTx starts a transaction. If ctx is cancelled before Commit the
// transaction is rolled back. SQLite transactions are always serializable,
// so the isolation level is only passed to Postgres.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if db.dialect == SQLite && opts != nil {
		opts = &sql.TxOptions{ReadOnly: opts.ReadOnly}
	}
	tx, err := db.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, dialect: db.dialect}, nil
}

var (
	_ DBTX = (*DB)(nil)
	_ DBTX = (*Tx)(nil)
)
