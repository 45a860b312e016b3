package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/models"
)

// ConfigWriter upserts configuration rows. It backs fixture seeding; the
// decisioning path only reads configuration.
type ConfigWriter interface {
	UpsertBusiness(ctx context.Context, b *models.Business) error
	UpsertCardholder(ctx context.Context, h *models.Cardholder) error
	UpsertCard(ctx context.Context, c *models.Card) error
	SetCardholderLimit(ctx context.Context, cardholderID string, l models.SpendingLimit) error
	SetCardOverride(ctx context.Context, cardID string, l models.SpendingLimit) error
	ClearCardOverride(ctx context.Context, cardID string) error
	UpsertCategoryRule(ctx context.Context, rule *models.CategoryRule) error
}

// configWriter implements ConfigWriter
type configWriter struct {
	db db.DBTX
}

// NewConfigWriter creates a new ConfigWriter
func NewConfigWriter(database db.DBTX) ConfigWriter {
	return &configWriter{db: database}
}

func (r *configWriter) exec(ctx context.Context, what, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, r.db.Dialect().Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to upsert %s: %w", what, err)
	}
	return nil
}

// UpsertBusiness inserts or updates a business
func (r *configWriter) UpsertBusiness(ctx context.Context, b *models.Business) error {
	if b.Timezone == "" {
		b.Timezone = "UTC"
	}
	if _, err := b.Location(); err != nil {
		return err
	}

	now := time.Now().UTC()
	b.UpdatedAt = now
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}

	return r.exec(ctx, "business", `
		INSERT INTO businesses (id, name, timezone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET name = excluded.name, timezone = excluded.timezone, updated_at = excluded.updated_at
	`, b.ID, b.Name, b.Timezone, b.CreatedAt, b.UpdatedAt)
}

// UpsertCardholder inserts or updates a cardholder
func (r *configWriter) UpsertCardholder(ctx context.Context, h *models.Cardholder) error {
	now := time.Now().UTC()
	h.UpdatedAt = now
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}

	return r.exec(ctx, "cardholder", `
		INSERT INTO cardholders (id, business_id, name, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET business_id = excluded.business_id, name = excluded.name,
		    active = excluded.active, updated_at = excluded.updated_at
	`, h.ID, h.BusinessID, h.Name, h.Active, h.CreatedAt, h.UpdatedAt)
}

// UpsertCard inserts or updates a card
func (r *configWriter) UpsertCard(ctx context.Context, c *models.Card) error {
	if c.Status == "" {
		c.Status = models.CardStatusActive
	}
	if !c.Status.Valid() {
		return fmt.Errorf("card %s has unknown status %q", c.ID, c.Status)
	}

	now := time.Now().UTC()
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}

	return r.exec(ctx, "card", `
		INSERT INTO cards (id, cardholder_id, last4, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET cardholder_id = excluded.cardholder_id, last4 = excluded.last4,
		    status = excluded.status, updated_at = excluded.updated_at
	`, c.ID, c.CardholderID, c.Last4, string(c.Status), c.CreatedAt, c.UpdatedAt)
}

// SetCardholderLimit inserts or replaces the cardholder limit for an interval
func (r *configWriter) SetCardholderLimit(ctx context.Context, cardholderID string, l models.SpendingLimit) error {
	if err := l.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.exec(ctx, "cardholder limit", `
		INSERT INTO cardholder_limits (cardholder_id, interval_kind, amount, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (cardholder_id, interval_kind) DO UPDATE
		SET amount = excluded.amount, active = excluded.active, updated_at = excluded.updated_at
	`, cardholderID, string(l.Interval), l.Amount, l.Active, now, now)
}

// SetCardOverride sets the single override limit of a card, replacing any
// previous one.
func (r *configWriter) SetCardOverride(ctx context.Context, cardID string, l models.SpendingLimit) error {
	if err := l.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.exec(ctx, "card override", `
		INSERT INTO card_limit_overrides (card_id, interval_kind, amount, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (card_id) DO UPDATE
		SET interval_kind = excluded.interval_kind, amount = excluded.amount,
		    active = excluded.active, updated_at = excluded.updated_at
	`, cardID, string(l.Interval), l.Amount, l.Active, now, now)
}

// ClearCardOverride removes the override of a card, if any
func (r *configWriter) ClearCardOverride(ctx context.Context, cardID string) error {
	_, err := r.db.ExecContext(ctx, r.db.Dialect().Rebind(`DELETE FROM card_limit_overrides WHERE card_id = ?`), cardID)
	if err != nil {
		return fmt.Errorf("failed to clear card override: %w", err)
	}
	return nil
}

// UpsertCategoryRule inserts or updates a rule by (business_id, name) and
// replaces its code list. rule.ID is set on return.
func (r *configWriter) UpsertCategoryRule(ctx context.Context, rule *models.CategoryRule) error {
	for _, code := range rule.MerchantCategoryCodes {
		if !models.ValidMerchantCategoryCode(code) {
			return fmt.Errorf("category rule %q has invalid merchant category code %q", rule.Name, code)
		}
	}

	query := `
		INSERT INTO category_rules (business_id, name, enabled, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (business_id, name) DO UPDATE SET enabled = excluded.enabled
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, r.db.Dialect().Rebind(query),
		rule.BusinessID, rule.Name, rule.Enabled, time.Now().UTC(),
	).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert category rule: %w", err)
	}

	if err := r.exec(ctx, "category rule codes", `DELETE FROM category_rule_codes WHERE rule_id = ?`, rule.ID); err != nil {
		return err
	}
	for _, code := range rule.MerchantCategoryCodes {
		if err := r.exec(ctx, "category rule code", `
			INSERT INTO category_rule_codes (rule_id, merchant_category_code)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, rule.ID, code); err != nil {
			return err
		}
	}

	return nil
}
