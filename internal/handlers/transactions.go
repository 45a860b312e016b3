package handlers

import (
	"context"
	"net/http"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/models"
)

// ListTransactions handles GET /api/v1/transactions
func (h *Handler) ListTransactions(ctx context.Context, request api.ListTransactionsRequestObject) (api.ListTransactionsResponseObject, error) {
	var filter models.TransactionFilter
	params := request.Params
	if params.CardholderId != nil {
		filter.CardholderID = *params.CardholderId
	}
	if params.CardId != nil {
		filter.CardID = *params.CardId
	}
	if params.Status != nil {
		filter.Status = models.TransactionStatus(*params.Status)
	}
	if params.Limit != nil {
		if *params.Limit < 1 {
			return api.ListTransactions400JSONResponse{BadRequestJSONResponse: badRequest("limit must be positive")}, nil
		}
		filter.Limit = *params.Limit
	}

	txs, err := h.transactions.ListTransactions(ctx, filter)
	if err != nil {
		switch status, e := h.serviceError(err); status {
		case http.StatusBadRequest:
			return api.ListTransactions400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(e)}, nil
		default:
			return api.ListTransactions500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(e)}, nil
		}
	}

	out := api.ListTransactions200JSONResponse{Data: make([]api.Transaction, 0, len(txs))}
	for i := range txs {
		out.Data = append(out.Data, toTransaction(&txs[i]))
	}
	return out, nil
}

// GetTransaction handles GET /api/v1/transactions/{externalId}
func (h *Handler) GetTransaction(ctx context.Context, request api.GetTransactionRequestObject) (api.GetTransactionResponseObject, error) {
	txn, err := h.transactions.GetTransaction(ctx, request.ExternalId)
	if err != nil {
		switch status, e := h.serviceError(err); status {
		case http.StatusNotFound:
			return api.GetTransaction404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(e)}, nil
		default:
			return api.GetTransaction500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(e)}, nil
		}
	}

	return api.GetTransaction200JSONResponse(toTransaction(txn)), nil
}
