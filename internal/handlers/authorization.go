package handlers

import (
	"context"
	"errors"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/decline"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/service"
	"github.com/google/uuid"
)

type decideResult struct {
	decision *service.Decision
	err      error
}

// DecideAuthorization handles POST /webhooks/authorizations. Every valid
// request gets a decision within the webhook deadline; if the engine cannot
// answer in time the request is declined with webhook_timeout.
func (h *Handler) DecideAuthorization(ctx context.Context, request api.DecideAuthorizationRequestObject) (api.DecideAuthorizationResponseObject, error) {
	if request.Body == nil {
		return api.DecideAuthorization400JSONResponse{BadRequestJSONResponse: badRequest("request body is empty")}, nil
	}
	if err := h.validateBody(request.Body); err != nil {
		return api.DecideAuthorization400JSONResponse{BadRequestJSONResponse: badRequest(err.Error())}, nil //nolint:nilerr
	}

	body := request.Body
	req := models.AuthorizationRequest{
		ExternalID:           body.ExternalId,
		CardID:               body.CardId,
		Amount:               body.Amount,
		MerchantCategoryCode: body.MerchantCategoryCode,
		Timestamp:            body.Timestamp,
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, h.webhookDeadline)
	defer cancel()

	done := make(chan decideResult, 1)
	go func() {
		d, err := h.decider.Decide(deadlineCtx, req)
		done <- decideResult{decision: d, err: err}
	}()

	var res decideResult
	select {
	case res = <-done:
	case <-deadlineCtx.Done():
		res = decideResult{err: deadlineCtx.Err()}
	}

	if res.err != nil {
		if isClientError(res.err) {
			_, e := h.serviceError(res.err)
			return api.DecideAuthorization400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(e)}, nil
		}
		res.decision = h.failClosed(ctx, req, res.err)
	}

	return api.DecideAuthorization200JSONResponse(toAuthorizationDecision(res.decision)), nil
}

// failClosed declines req after the engine failed to decide it. The request
// context may already be expired, so persistence gets its own short budget.
func (h *Handler) failClosed(ctx context.Context, req models.AuthorizationRequest, cause error) *service.Decision {
	reason := service.CauseStoreUnavailable
	if errors.Is(cause, context.DeadlineExceeded) || errors.Is(cause, context.Canceled) {
		reason = service.CauseDeadline
	}
	h.logger.Warn("authorization not decided, failing closed",
		"external_id", req.ExternalID,
		"cause", reason,
		"error", cause,
	)

	fcCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.failClosedTimeout)
	defer cancel()

	decision, err := h.decider.FailClosed(fcCtx, req, reason)
	if err == nil && decision != nil {
		return decision
	}

	h.logger.Error("fail-closed decline was not recorded", "external_id", req.ExternalID, "error", err)
	return &service.Decision{
		Transaction: &models.Transaction{
			ExternalID:    req.ExternalID,
			DecisionID:    uuid.Nil,
			Status:        models.TransactionStatusDeclined,
			DeclineCode:   decline.CodeWebhookTimeout,
			DeclineReason: decline.ReasonFor(decline.CodeWebhookTimeout, decline.Context{MerchantCategoryCode: req.MerchantCategoryCode}),
		},
	}
}

func toAuthorizationDecision(d *service.Decision) api.AuthorizationDecision {
	t := d.Transaction
	return api.AuthorizationDecision{
		Decision:      api.DecisionOutcome(t.Status),
		DeclineCode:   optionalDeclineCode(t.DeclineCode),
		DeclineReason: optionalString(t.DeclineReason),
		DecisionId:    t.DecisionID,
	}
}
