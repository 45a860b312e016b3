// Package decline holds the stable decline-code taxonomy and the canonical
// human-readable message for each code.
package decline

import "strings"

// Code is a stable, enumerated reason an authorization was refused.
type Code string

const (
	CodeAccountDisabled       Code = "account_disabled"
	CodeIncorrectPIN          Code = "incorrect_pin"
	CodeInsufficientFunds     Code = "insufficient_funds"
	CodeSpendingControls      Code = "spending_controls"
	CodeAuthorizationControls Code = "authorization_controls"
	CodeCardInactive          Code = "card_inactive"
	CodeCardholderInactive    Code = "cardholder_inactive"
	CodeSuspectedFraud        Code = "suspected_fraud"
	CodeVerificationFailed    Code = "verification_failed"
	CodeWebhookTimeout        Code = "webhook_timeout"
	CodeProhibitedMerchant    Code = "prohibited_merchant"
	CodeSystemError           Code = "system_error"
)

// Context carries the values a message template may reference.
type Context struct {
	MerchantCategoryCode string
}

const mccPlaceholder = "{merchant_category_code}"

// defaultMessage is used for prohibited_merchant and for any code missing
// from the table.
const defaultMessage = "Purchases from merchant category " + mccPlaceholder + " are not allowed for this business."

var messages = map[Code]string{
	CodeAccountDisabled:       "The account associated with this card is disabled.",
	CodeIncorrectPIN:          "The PIN entered was incorrect.",
	CodeInsufficientFunds:     "The account does not have sufficient funds for this purchase.",
	CodeSpendingControls:      "The purchase exceeds a spending limit set for this cardholder.",
	CodeAuthorizationControls: "The purchase exceeds a spending limit set on this card.",
	CodeCardInactive:          "The card is not active.",
	CodeCardholderInactive:    "The cardholder is not active.",
	CodeSuspectedFraud:        "The purchase was flagged as suspected fraud.",
	CodeVerificationFailed:    "The card verification checks failed.",
	CodeWebhookTimeout:        "The authorization could not be decided in time and was declined.",
	CodeProhibitedMerchant:    defaultMessage,
	CodeSystemError:           "The authorization was declined because the card configuration could not be verified.",
}

// ReasonFor returns the canonical message for code. Unknown codes resolve to
// the prohibited-merchant message.
func ReasonFor(code Code, c Context) string {
	msg, ok := messages[code]
	if !ok {
		msg = defaultMessage
	}
	if !strings.Contains(msg, mccPlaceholder) {
		return msg
	}
	mcc := c.MerchantCategoryCode
	if mcc == "" {
		mcc = "unknown"
	}
	return strings.ReplaceAll(msg, mccPlaceholder, mcc)
}

// Codes returns every code in the table.
func Codes() []Code {
	out := make([]Code, 0, len(messages))
	for c := range messages {
		out = append(out, c)
	}
	return out
}
