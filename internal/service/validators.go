package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fleetcard/authengine/internal/models"
)

// MaxExternalIDLength bounds the network's transaction identifier.
const MaxExternalIDLength = 255

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateMerchantCategoryCode checks the code is exactly four digits
func ValidateMerchantCategoryCode(mcc string) error {
	if !models.ValidMerchantCategoryCode(mcc) {
		return fmt.Errorf("invalid merchant category code %q: must be 4 digits", mcc)
	}

	return nil
}

// ValidateExternalID checks the network identifier is present, bounded and
// free of whitespace and control characters.
func ValidateExternalID(id string) error {
	if id == "" {
		return fmt.Errorf("invalid external id: cannot be empty")
	}
	if len(id) > MaxExternalIDLength {
		return fmt.Errorf("invalid external id: longer than %d bytes", MaxExternalIDLength)
	}
	if strings.IndexFunc(id, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return fmt.Errorf("invalid external id: contains whitespace or control characters")
	}

	return nil
}

// ValidateAuthorizationRequest checks every field of req
func ValidateAuthorizationRequest(req models.AuthorizationRequest) error {
	if err := ValidateExternalID(req.ExternalID); err != nil {
		return &ServiceError{Code: ErrCodeInvalidExternalID, Message: err.Error()}
	}
	if req.CardID == "" {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: "card id cannot be empty"}
	}
	if err := ValidateAmount(req.Amount); err != nil {
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}
	if err := ValidateMerchantCategoryCode(req.MerchantCategoryCode); err != nil {
		return &ServiceError{Code: ErrCodeInvalidMCC, Message: err.Error()}
	}
	if req.Timestamp.IsZero() {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: "timestamp is required"}
	}

	return nil
}
