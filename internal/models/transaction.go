package models

import (
	"time"

	"github.com/fleetcard/authengine/internal/decline"
	"github.com/google/uuid"
)

// TransactionStatus represents the decided outcome of an authorization
type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusDeclined TransactionStatus = "declined"
)

// Transaction is the persisted decision for one external authorization.
// It is written once; settlement only fills the auxiliary fields.
type Transaction struct {
	AuthorizedAt           time.Time         `db:"authorized_at"`
	CreatedAt              time.Time         `db:"created_at"`
	UpdatedAt              time.Time         `db:"updated_at"`
	SettledAmount          *int64            `db:"settled_amount"`
	SettledAt              *time.Time        `db:"settled_at"`
	NetworkStatus          *string           `db:"network_status"`
	ExternalID             string            `db:"external_id"`
	BusinessID             string            `db:"business_id"`
	CardholderID           string            `db:"cardholder_id"`
	CardID                 string            `db:"card_id"`
	MerchantCategoryCode   string            `db:"merchant_category_code"`
	Status                 TransactionStatus `db:"status"`
	DeclineCode            decline.Code      `db:"decline_code"`
	DeclineReason          string            `db:"decline_reason"`
	Amount                 int64             `db:"amount"`
	DecisionID             uuid.UUID         `db:"decision_id"`
	ReconciliationMismatch bool              `db:"reconciliation_mismatch"`
}

// Approved reports whether the transaction was approved.
func (t *Transaction) Approved() bool {
	return t.Status == TransactionStatusApproved
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	CardholderID string
	CardID       string
	Status       TransactionStatus
	Limit        int
}
