package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidRequest       = "invalid_request"
	ErrCodeInvalidAmount        = "invalid_amount"
	ErrCodeInvalidExternalID    = "invalid_external_id"
	ErrCodeInvalidMCC           = "invalid_merchant_category_code"
	ErrCodeInvalidNetworkStatus = "invalid_network_status"
	ErrCodeTransactionNotFound  = "transaction_not_found"
	ErrCodeCardholderNotFound   = "cardholder_not_found"
	ErrCodeConfigurationInvalid = "configuration_invalid"
	ErrCodeStoreUnavailable     = "store_unavailable"
	ErrCodeInternalError        = "internal_error"
)
