package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/models"
)

// LedgerRepository persists ledger windows keyed by (cardholder, interval).
type LedgerRepository interface {
	Get(ctx context.Context, cardholderID string, interval models.Interval) (*models.LedgerWindow, error)
	GetForUpdate(ctx context.Context, cardholderID string, interval models.Interval) (*models.LedgerWindow, error)
	Ensure(ctx context.Context, w *models.LedgerWindow) error
	Save(ctx context.Context, w *models.LedgerWindow) error
	Replace(ctx context.Context, w *models.LedgerWindow) error
}

// ledgerRepository implements LedgerRepository
type ledgerRepository struct {
	db db.DBTX
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(database db.DBTX) LedgerRepository {
	return &ledgerRepository{db: database}
}

const ledgerColumns = `cardholder_id, interval_kind, window_start, window_end, accumulated_amount, version, updated_at`

func scanWindow(row interface{ Scan(...any) error }) (*models.LedgerWindow, error) {
	var (
		w   models.LedgerWindow
		end sql.NullTime
	)
	if err := row.Scan(
		&w.CardholderID,
		&w.Interval,
		&w.WindowStart,
		&end,
		&w.AccumulatedAmount,
		&w.Version,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	w.WindowStart = w.WindowStart.UTC()
	if end.Valid {
		t := end.Time.UTC()
		w.WindowEnd = &t
	}
	return &w, nil
}

func (r *ledgerRepository) get(ctx context.Context, cardholderID string, interval models.Interval, lock bool) (*models.LedgerWindow, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_windows WHERE cardholder_id = ? AND interval_kind = ?`
	if lock {
		query += r.db.Dialect().ForUpdate()
	}

	w, err := scanWindow(r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query), cardholderID, string(interval)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ledger window %s/%s: %w", cardholderID, interval, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger window: %w", err)
	}
	return w, nil
}

// Get retrieves a window without locking it
func (r *ledgerRepository) Get(ctx context.Context, cardholderID string, interval models.Interval) (*models.LedgerWindow, error) {
	return r.get(ctx, cardholderID, interval, false)
}

// GetForUpdate retrieves a window and locks its row until the enclosing
// transaction ends. Callers lock windows in interval order.
func (r *ledgerRepository) GetForUpdate(ctx context.Context, cardholderID string, interval models.Interval) (*models.LedgerWindow, error) {
	return r.get(ctx, cardholderID, interval, true)
}

// Ensure creates the window row if it does not exist yet. An existing row is
// left untouched.
func (r *ledgerRepository) Ensure(ctx context.Context, w *models.LedgerWindow) error {
	query := `
		INSERT INTO ledger_windows (` + ledgerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (cardholder_id, interval_kind) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, r.db.Dialect().Rebind(query),
		w.CardholderID, string(w.Interval), w.WindowStart.UTC(), utcPtr(w.WindowEnd),
		w.AccumulatedAmount, w.Version, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure ledger window: %w", err)
	}
	return nil
}

// Save writes w if the stored version still equals w.Version, then bumps
// w.Version. A concurrent writer yields models.ErrVersionConflict.
func (r *ledgerRepository) Save(ctx context.Context, w *models.LedgerWindow) error {
	query := `
		UPDATE ledger_windows
		SET window_start = ?, window_end = ?, accumulated_amount = ?,
		    version = version + 1, updated_at = ?
		WHERE cardholder_id = ? AND interval_kind = ? AND version = ?
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, r.db.Dialect().Rebind(query),
		w.WindowStart.UTC(), utcPtr(w.WindowEnd), w.AccumulatedAmount, now,
		w.CardholderID, string(w.Interval), w.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger window: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("ledger window %s/%s at version %d: %w",
			w.CardholderID, string(w.Interval), w.Version, models.ErrVersionConflict)
	}

	w.Version++
	w.UpdatedAt = now
	return nil
}

// Replace overwrites the window unconditionally and bumps its version. Used
// when rebuilding the ledger from transactions.
func (r *ledgerRepository) Replace(ctx context.Context, w *models.LedgerWindow) error {
	query := `
		INSERT INTO ledger_windows (` + ledgerColumns + `)
		VALUES (?, ?, ?, ?, ?, 0, ?)
		ON CONFLICT (cardholder_id, interval_kind) DO UPDATE
		SET window_start = excluded.window_start, window_end = excluded.window_end,
		    accumulated_amount = excluded.accumulated_amount,
		    version = ledger_windows.version + 1, updated_at = excluded.updated_at
		RETURNING version
	`

	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query),
		w.CardholderID, string(w.Interval), w.WindowStart.UTC(), utcPtr(w.WindowEnd), w.AccumulatedAmount, now,
	).Scan(&w.Version)
	if err != nil {
		return fmt.Errorf("failed to replace ledger window: %w", err)
	}
	w.UpdatedAt = now
	return nil
}

func utcPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
