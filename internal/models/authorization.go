package models

import "time"

// AuthorizationRequest is a card network's request to approve a purchase.
type AuthorizationRequest struct {
	Timestamp            time.Time
	ExternalID           string
	CardID               string
	MerchantCategoryCode string
	Amount               int64
}
