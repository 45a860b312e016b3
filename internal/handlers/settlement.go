package handlers

import (
	"context"
	"net/http"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/service"
)

// RecordSettlement handles POST /webhooks/settlements
func (h *Handler) RecordSettlement(ctx context.Context, request api.RecordSettlementRequestObject) (api.RecordSettlementResponseObject, error) {
	if request.Body == nil {
		return api.RecordSettlement400JSONResponse{BadRequestJSONResponse: badRequest("request body is empty")}, nil
	}
	if err := h.validateBody(request.Body); err != nil {
		return api.RecordSettlement400JSONResponse{BadRequestJSONResponse: badRequest(err.Error())}, nil //nolint:nilerr
	}

	body := request.Body
	txn, err := h.settler.Settle(ctx, service.SettlementRequest{
		ExternalID:    body.ExternalId,
		NetworkStatus: string(body.NetworkStatus),
		SettledAmount: body.SettledAmount,
		SettledAt:     body.SettledAt,
	})
	if err != nil {
		switch status, e := h.serviceError(err); status {
		case http.StatusBadRequest:
			return api.RecordSettlement400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(e)}, nil
		case http.StatusNotFound:
			return api.RecordSettlement404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(e)}, nil
		default:
			return api.RecordSettlement500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(e)}, nil
		}
	}

	return api.RecordSettlement200JSONResponse(toTransaction(txn)), nil
}
