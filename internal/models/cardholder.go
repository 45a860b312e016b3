package models

import "time"

// Cardholder is a driver or business owner to whom cards and limits attach.
type Cardholder struct {
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
	ID         string    `db:"id"`
	BusinessID string    `db:"business_id"`
	Name       string    `db:"name"`
	Active     bool      `db:"active"`
}

// CardStatus represents the lifecycle state of a card
type CardStatus string

const (
	CardStatusPending   CardStatus = "pending"
	CardStatusActive    CardStatus = "active"
	CardStatusInactive  CardStatus = "inactive"
	CardStatusCancelled CardStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusPending, CardStatusActive, CardStatusInactive, CardStatusCancelled:
		return true
	}
	return false
}

// Card belongs to exactly one cardholder.
type Card struct {
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	ID           string     `db:"id"`
	CardholderID string     `db:"cardholder_id"`
	Last4        string     `db:"last4"`
	Status       CardStatus `db:"status"`
}
