package handlers

import (
	"context"
	"net/http"

	"github.com/fleetcard/authengine/internal/api"
)

// GetCardholderLedger handles GET /api/v1/cardholders/{cardholderId}/ledger
func (h *Handler) GetCardholderLedger(ctx context.Context, request api.GetCardholderLedgerRequestObject) (api.GetCardholderLedgerResponseObject, error) {
	view, err := h.ledgers.CardholderLedger(ctx, request.CardholderId)
	if err != nil {
		switch status, e := h.serviceError(err); status {
		case http.StatusNotFound:
			return api.GetCardholderLedger404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(e)}, nil
		case http.StatusUnprocessableEntity:
			return api.GetCardholderLedger422JSONResponse{UnprocessableEntityJSONResponse: api.UnprocessableEntityJSONResponse(e)}, nil
		default:
			return api.GetCardholderLedger500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(e)}, nil
		}
	}

	out := api.GetCardholderLedger200JSONResponse{
		AsOf:         view.AsOf,
		CardholderId: view.CardholderID,
		Timezone:     view.Timezone,
		Windows:      make([]api.LedgerWindow, 0, len(view.Windows)),
	}
	for _, v := range view.Windows {
		win := api.LedgerWindow{
			Interval:          api.LedgerWindowInterval(v.Window.Interval),
			WindowStart:       v.Window.WindowStart,
			WindowEnd:         v.Window.WindowEnd,
			AccumulatedAmount: v.Window.AccumulatedAmount,
			Accumulated:       api.MajorUnits(v.Window.AccumulatedAmount),
			Version:           v.Window.Version,
			Remaining:         v.Remaining,
		}
		if v.Limit != nil {
			amount := v.Limit.Amount
			win.Limit = &amount
		}
		out.Windows = append(out.Windows, win)
	}
	return out, nil
}
