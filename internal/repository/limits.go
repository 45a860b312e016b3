// Package repository provides data access layer implementations for the
// authorization engine.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/models"
)

// LimitStore is the read API over card, cardholder, limit and category
// configuration. Nothing is cached; every call hits the database.
type LimitStore interface {
	GetCard(ctx context.Context, cardID string) (*models.Card, error)
	GetCardholder(ctx context.Context, cardholderID string) (*models.Cardholder, error)
	GetBusiness(ctx context.Context, businessID string) (*models.Business, error)
	GetActiveLimits(ctx context.Context, cardholderID string) ([]models.SpendingLimit, error)
	GetCardOverride(ctx context.Context, cardID string) (*models.SpendingLimit, error)
	GetCategoryRules(ctx context.Context, businessID string) ([]models.CategoryRule, error)
}

// limitStore implements LimitStore
type limitStore struct {
	db db.DBTX
}

// NewLimitStore creates a new LimitStore
func NewLimitStore(database db.DBTX) LimitStore {
	return &limitStore{db: database}
}

// GetCard retrieves a card by id
func (r *limitStore) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	query := `
		SELECT id, cardholder_id, last4, status, created_at, updated_at
		FROM cards
		WHERE id = ?
	`

	var card models.Card
	err := r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query), cardID).Scan(
		&card.ID,
		&card.CardholderID,
		&card.Last4,
		&card.Status,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %s: %w", cardID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card: %w", err)
	}

	return &card, nil
}

// GetCardholder retrieves a cardholder by id
func (r *limitStore) GetCardholder(ctx context.Context, cardholderID string) (*models.Cardholder, error) {
	query := `
		SELECT id, business_id, name, active, created_at, updated_at
		FROM cardholders
		WHERE id = ?
	`

	var holder models.Cardholder
	err := r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query), cardholderID).Scan(
		&holder.ID,
		&holder.BusinessID,
		&holder.Name,
		&holder.Active,
		&holder.CreatedAt,
		&holder.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("cardholder %s: %w", cardholderID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find cardholder: %w", err)
	}

	return &holder, nil
}

// GetBusiness retrieves a business by id
func (r *limitStore) GetBusiness(ctx context.Context, businessID string) (*models.Business, error) {
	query := `
		SELECT id, name, timezone, created_at, updated_at
		FROM businesses
		WHERE id = ?
	`

	var business models.Business
	err := r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query), businessID).Scan(
		&business.ID,
		&business.Name,
		&business.Timezone,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("business %s: %w", businessID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find business: %w", err)
	}

	return &business, nil
}

// GetActiveLimits returns the active cardholder-level limits, smallest
// window first.
func (r *limitStore) GetActiveLimits(ctx context.Context, cardholderID string) ([]models.SpendingLimit, error) {
	query := `
		SELECT interval_kind, amount, active
		FROM cardholder_limits
		WHERE cardholder_id = ? AND active = ?
	`

	rows, err := r.db.QueryContext(ctx, r.db.Dialect().Rebind(query), cardholderID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query cardholder limits: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var limits []models.SpendingLimit
	for rows.Next() {
		var l models.SpendingLimit
		if err := rows.Scan(&l.Interval, &l.Amount, &l.Active); err != nil {
			return nil, fmt.Errorf("failed to scan cardholder limit: %w", err)
		}
		limits = append(limits, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cardholder limits: %w", err)
	}

	sort.Slice(limits, func(a, b int) bool {
		return limits[a].Interval.Rank() < limits[b].Interval.Rank()
	})
	return limits, nil
}

// GetCardOverride returns the card's override limit, active or not, or nil
// when the card has none.
func (r *limitStore) GetCardOverride(ctx context.Context, cardID string) (*models.SpendingLimit, error) {
	query := `
		SELECT interval_kind, amount, active
		FROM card_limit_overrides
		WHERE card_id = ?
	`

	var l models.SpendingLimit
	err := r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query), cardID).Scan(&l.Interval, &l.Amount, &l.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card override: %w", err)
	}

	return &l, nil
}

// GetCategoryRules returns every rule of the business with its codes.
func (r *limitStore) GetCategoryRules(ctx context.Context, businessID string) ([]models.CategoryRule, error) {
	query := `
		SELECT r.id, r.business_id, r.name, r.enabled, c.merchant_category_code
		FROM category_rules r
		LEFT JOIN category_rule_codes c ON c.rule_id = r.id
		WHERE r.business_id = ?
		ORDER BY r.id, c.merchant_category_code
	`

	rows, err := r.db.QueryContext(ctx, r.db.Dialect().Rebind(query), businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category rules: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var rules []models.CategoryRule
	for rows.Next() {
		var (
			rule models.CategoryRule
			code sql.NullString
		)
		if err := rows.Scan(&rule.ID, &rule.BusinessID, &rule.Name, &rule.Enabled, &code); err != nil {
			return nil, fmt.Errorf("failed to scan category rule: %w", err)
		}
		if n := len(rules); n == 0 || rules[n-1].ID != rule.ID {
			rules = append(rules, rule)
		}
		if code.Valid {
			last := &rules[len(rules)-1]
			last.MerchantCategoryCodes = append(last.MerchantCategoryCodes, code.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category rules: %w", err)
	}

	return rules, nil
}
