package models

import (
	"fmt"
	"time"

	// Zone database for images without /usr/share/zoneinfo.
	_ "time/tzdata"
)

// Business owns cardholders, cards, spending limits and category rules.
type Business struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Timezone  string    `db:"timezone"`
}

// Location resolves the business timezone. An empty timezone means UTC.
func (b *Business) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("business %s has invalid timezone %q: %w", b.ID, b.Timezone, err)
	}
	return loc, nil
}
