package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/decline"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/service"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("mcc", func(fl validator.FieldLevel) bool { //nolint:errcheck // static tag
		return models.ValidMerchantCategoryCode(fl.Field().String())
	})

	return v
}

// validateBody checks a decoded request body against its validate tags.
func (h *Handler) validateBody(body any) error {
	if err := h.validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "mcc":
		return fmt.Sprintf("%s must be 4 digits", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

func badRequest(message string) api.BadRequestJSONResponse {
	return api.BadRequestJSONResponse{Error: api.ErrorCodeInvalidRequest, Message: message}
}

// serviceError maps err to a status code and error body.
func (h *Handler) serviceError(err error) (int, api.Error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "error", err)
		return http.StatusInternalServerError, api.Error{Error: api.ErrorCodeInternalError, Message: "internal server error"}
	}

	status := serviceErrorStatus(svcErr.Code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "code", svcErr.Code, "error", err)
	}
	return status, api.Error{Error: api.ErrorCode(svcErr.Code), Message: svcErr.Message}
}

func serviceErrorStatus(code string) int {
	switch code {
	case service.ErrCodeInvalidRequest,
		service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidExternalID,
		service.ErrCodeInvalidMCC,
		service.ErrCodeInvalidNetworkStatus:
		return http.StatusBadRequest
	case service.ErrCodeTransactionNotFound, service.ErrCodeCardholderNotFound:
		return http.StatusNotFound
	case service.ErrCodeConfigurationInvalid:
		return http.StatusUnprocessableEntity
	case service.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func isClientError(err error) bool {
	svcErr := extractServiceError(err)
	return svcErr != nil && serviceErrorStatus(svcErr.Code) == http.StatusBadRequest
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Nothing useful to do if write fails
}

// requestError answers bodies and parameters the generated router could not
// decode.
func (h *Handler) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	message := err.Error()
	switch {
	case errors.Is(err, io.EOF):
		message = "request body is empty"
	case strings.HasPrefix(message, "can't decode JSON body: "):
		message = "malformed JSON body: " + strings.TrimPrefix(message, "can't decode JSON body: ")
	}
	writeJSON(w, http.StatusBadRequest, api.Error{Error: api.ErrorCodeInvalidRequest, Message: message})
}

func (h *Handler) responseError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("response failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, api.Error{Error: api.ErrorCodeInternalError, Message: "internal server error"})
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDeclineCode(c decline.Code) *api.DeclineCode {
	if c == "" {
		return nil
	}
	code := api.DeclineCode(c)
	return &code
}

func toTransaction(t *models.Transaction) api.Transaction {
	return api.Transaction{
		ExternalId:             t.ExternalID,
		DecisionId:             t.DecisionID,
		BusinessId:             optionalString(t.BusinessID),
		CardholderId:           optionalString(t.CardholderID),
		CardId:                 t.CardID,
		Amount:                 t.Amount,
		MerchantCategoryCode:   t.MerchantCategoryCode,
		Status:                 api.DecisionOutcome(t.Status),
		DeclineCode:            optionalDeclineCode(t.DeclineCode),
		DeclineReason:          optionalString(t.DeclineReason),
		AuthorizedAt:           t.AuthorizedAt,
		CreatedAt:              t.CreatedAt,
		SettledAmount:          t.SettledAmount,
		SettledAt:              t.SettledAt,
		NetworkStatus:          t.NetworkStatus,
		ReconciliationMismatch: t.ReconciliationMismatch,
	}
}
