package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/decline"
	"github.com/fleetcard/authengine/internal/models"
)

// DefaultListLimit caps a transaction listing when the filter sets no limit.
const DefaultListLimit = 50

// MaxListLimit is the largest page a listing returns.
const MaxListLimit = 500

// SettlementUpdate carries the auxiliary fields written on settlement.
type SettlementUpdate struct {
	SettledAt              time.Time
	NetworkStatus          string
	SettledAmount          int64
	ReconciliationMismatch bool
}

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByExternalID(ctx context.Context, externalID string) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	ListApprovedByCardholder(ctx context.Context, cardholderID string) ([]models.Transaction, error)
	UpdateSettlement(ctx context.Context, externalID string, u SettlementUpdate) error
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db db.DBTX
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(database db.DBTX) TransactionRepository {
	return &transactionRepository{db: database}
}

const transactionColumns = `external_id, decision_id, business_id, cardholder_id, card_id, amount,
	merchant_category_code, status, decline_code, decline_reason, authorized_at, created_at,
	updated_at, settled_amount, settled_at, network_status, reconciliation_mismatch`

// Create inserts a decided transaction. A second insert for the same
// external_id returns models.ErrDuplicateTransaction.
func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if (tx.Status == models.TransactionStatusDeclined) != (tx.DeclineCode != "") {
		return fmt.Errorf("transaction %s: decline code must be set exactly when declined", tx.ExternalID)
	}

	now := time.Now().UTC()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = tx.CreatedAt

	var code any
	if tx.DeclineCode != "" {
		code = string(tx.DeclineCode)
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL, NULL, ?)
	`
	_, err := r.db.ExecContext(ctx, r.db.Dialect().Rebind(query),
		tx.ExternalID,
		tx.DecisionID.String(),
		tx.BusinessID,
		tx.CardholderID,
		tx.CardID,
		tx.Amount,
		tx.MerchantCategoryCode,
		string(tx.Status),
		code,
		tx.DeclineReason,
		tx.AuthorizedAt.UTC(),
		tx.CreatedAt.UTC(),
		tx.UpdatedAt.UTC(),
		false,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", tx.ExternalID, models.ErrDuplicateTransaction)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	var (
		t             models.Transaction
		code          sql.NullString
		settledAmount sql.NullInt64
		settledAt     sql.NullTime
		networkStatus sql.NullString
	)
	if err := row.Scan(
		&t.ExternalID,
		&t.DecisionID,
		&t.BusinessID,
		&t.CardholderID,
		&t.CardID,
		&t.Amount,
		&t.MerchantCategoryCode,
		&t.Status,
		&code,
		&t.DeclineReason,
		&t.AuthorizedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
		&settledAmount,
		&settledAt,
		&networkStatus,
		&t.ReconciliationMismatch,
	); err != nil {
		return nil, err
	}

	if code.Valid {
		t.DeclineCode = decline.Code(code.String)
	}
	if settledAmount.Valid {
		t.SettledAmount = &settledAmount.Int64
	}
	if settledAt.Valid {
		at := settledAt.Time.UTC()
		t.SettledAt = &at
	}
	if networkStatus.Valid {
		t.NetworkStatus = &networkStatus.String
	}
	t.AuthorizedAt = t.AuthorizedAt.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

// FindByExternalID retrieves the decision stored for an external id
func (r *transactionRepository) FindByExternalID(ctx context.Context, externalID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE external_id = ?`

	t, err := scanTransaction(r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query), externalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", externalID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return t, nil
}

// List returns transactions matching filter, newest first
func (r *transactionRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	var (
		where []string
		args  []any
	)
	if filter.CardholderID != "" {
		where = append(where, "cardholder_id = ?")
		args = append(args, filter.CardholderID)
	}
	if filter.CardID != "" {
		where = append(where, "card_id = ?")
		args = append(args, filter.CardID)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, external_id LIMIT ?`
	args = append(args, limit)

	return r.list(ctx, query, args...)
}

// ListApprovedByCardholder returns every approved transaction of a
// cardholder in decision order
func (r *transactionRepository) ListApprovedByCardholder(ctx context.Context, cardholderID string) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE cardholder_id = ? AND status = ?
		ORDER BY created_at, external_id`

	return r.list(ctx, query, cardholderID, string(models.TransactionStatusApproved))
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Dialect().Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	txs := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txs, nil
}

// UpdateSettlement writes the settlement auxiliary fields. Status and the
// decision fields are never modified.
func (r *transactionRepository) UpdateSettlement(ctx context.Context, externalID string, u SettlementUpdate) error {
	query := `
		UPDATE transactions
		SET settled_amount = ?, settled_at = ?, network_status = ?,
		    reconciliation_mismatch = ?, updated_at = ?
		WHERE external_id = ?
	`

	result, err := r.db.ExecContext(ctx, r.db.Dialect().Rebind(query),
		u.SettledAmount, u.SettledAt.UTC(), u.NetworkStatus, u.ReconciliationMismatch,
		time.Now().UTC(), externalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settlement: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("transaction %s: %w", externalID, models.ErrNotFound)
	}
	return nil
}
