// Package seed loads configuration fixtures (businesses, cardholders, cards,
// limits and category rules) from TOML files into the store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
)

// Fixture is the decoded content of a fixture file.
type Fixture struct {
	Businesses    []Business     `toml:"businesses"`
	Cardholders   []Cardholder   `toml:"cardholders"`
	Cards         []Card         `toml:"cards"`
	CategoryRules []CategoryRule `toml:"category_rules"`
}

// Business fixture
type Business struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Timezone string `toml:"timezone"`
}

// Cardholder fixture with its spending limits
type Cardholder struct {
	Active     *bool   `toml:"active"`
	ID         string  `toml:"id"`
	BusinessID string  `toml:"business_id"`
	Name       string  `toml:"name"`
	Limits     []Limit `toml:"limits"`
}

// Card fixture with an optional limit override
type Card struct {
	Override     *Limit `toml:"override"`
	ID           string `toml:"id"`
	CardholderID string `toml:"cardholder_id"`
	Last4        string `toml:"last4"`
	Status       string `toml:"status"`
}

// Limit fixture. Active defaults to true.
type Limit struct {
	Active   *bool  `toml:"active"`
	Interval string `toml:"interval"`
	Amount   int64  `toml:"amount"`
}

// CategoryRule fixture. Enabled defaults to true.
type CategoryRule struct {
	Enabled               *bool    `toml:"enabled"`
	BusinessID            string   `toml:"business_id"`
	Name                  string   `toml:"name"`
	MerchantCategoryCodes []string `toml:"merchant_category_codes"`
}

// Summary counts the rows a fixture wrote.
type Summary struct {
	Businesses    int
	Cardholders   int
	Cards         int
	Limits        int
	Overrides     int
	CategoryRules int
}

// LoadFile decodes the fixture at path.
func LoadFile(path string) (*Fixture, error) {
	var f Fixture
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	return &f, checkUndecoded(md)
}

// Parse decodes a fixture from TOML text.
func Parse(data string) (*Fixture, error) {
	var f Fixture
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &f, checkUndecoded(md)
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	return fmt.Errorf("unknown fixture keys: %s", strings.Join(keys, ", "))
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (l Limit) model() (models.SpendingLimit, error) {
	interval, err := models.ParseInterval(l.Interval)
	if err != nil {
		return models.SpendingLimit{}, err
	}
	return models.SpendingLimit{Interval: interval, Amount: l.Amount, Active: boolOr(l.Active, true)}, nil
}

// Apply upserts every row of the fixture in dependency order. Run it inside
// a database transaction to make a fixture all-or-nothing.
func (f *Fixture) Apply(ctx context.Context, w repository.ConfigWriter) (Summary, error) {
	var s Summary

	for _, b := range f.Businesses {
		if b.ID == "" {
			return s, errors.New("business without id")
		}
		if err := w.UpsertBusiness(ctx, &models.Business{ID: b.ID, Name: b.Name, Timezone: b.Timezone}); err != nil {
			return s, err
		}
		s.Businesses++
	}

	for _, h := range f.Cardholders {
		holder := &models.Cardholder{ID: h.ID, BusinessID: h.BusinessID, Name: h.Name, Active: boolOr(h.Active, true)}
		if err := w.UpsertCardholder(ctx, holder); err != nil {
			return s, err
		}
		s.Cardholders++

		for _, l := range h.Limits {
			limit, err := l.model()
			if err != nil {
				return s, fmt.Errorf("cardholder %s: %w", h.ID, err)
			}
			if err := w.SetCardholderLimit(ctx, h.ID, limit); err != nil {
				return s, err
			}
			s.Limits++
		}
	}

	for _, c := range f.Cards {
		card := &models.Card{ID: c.ID, CardholderID: c.CardholderID, Last4: c.Last4, Status: models.CardStatus(c.Status)}
		if err := w.UpsertCard(ctx, card); err != nil {
			return s, err
		}
		s.Cards++

		if c.Override == nil {
			if err := w.ClearCardOverride(ctx, c.ID); err != nil {
				return s, err
			}
			continue
		}
		limit, err := c.Override.model()
		if err != nil {
			return s, fmt.Errorf("card %s override: %w", c.ID, err)
		}
		if err := w.SetCardOverride(ctx, c.ID, limit); err != nil {
			return s, err
		}
		s.Overrides++
	}

	for _, r := range f.CategoryRules {
		rule := &models.CategoryRule{
			BusinessID:            r.BusinessID,
			Name:                  r.Name,
			Enabled:               boolOr(r.Enabled, true),
			MerchantCategoryCodes: r.MerchantCategoryCodes,
		}
		if err := w.UpsertCategoryRule(ctx, rule); err != nil {
			return s, err
		}
		s.CategoryRules++
	}

	return s, nil
}

// Run applies f to database in a single transaction.
func Run(ctx context.Context, database *db.DB, f *Fixture) (Summary, error) {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	summary, err := f.Apply(ctx, repository.NewConfigWriter(tx))
	if err != nil {
		return Summary{}, err
	}
	if err := tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("failed to commit fixture: %w", err)
	}
	return summary, nil
}
