package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/metrics"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
)

// networkApproved maps the settlement statuses a network reports to whether
// the network considers the purchase approved.
var networkApproved = map[string]bool{
	"approved": true,
	"captured": true,
	"settled":  true,
	"declined": false,
	"reversed": false,
	"refused":  false,
}

// SettlementRequest is the network's final word on an authorization.
type SettlementRequest struct {
	SettledAt     time.Time
	ExternalID    string
	NetworkStatus string
	SettledAmount int64
}

// SettlementService records settlement details on decided transactions
type SettlementService struct {
	db     *db.DB
	logger *slog.Logger
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(database *db.DB, logger *slog.Logger) *SettlementService {
	return &SettlementService{
		db:     database,
		logger: logger.With("component", "settlement"),
	}
}

// Settle writes the settlement fields of a transaction. The stored decision
// is never changed; a network outcome that disagrees with it is flagged as a
// reconciliation mismatch.
func (s *SettlementService) Settle(ctx context.Context, req SettlementRequest) (*models.Transaction, error) {
	if err := ValidateExternalID(req.ExternalID); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidExternalID, Message: err.Error()}
	}
	if req.SettledAmount < 0 {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: "invalid settled amount: cannot be negative"}
	}
	if _, ok := networkApproved[req.NetworkStatus]; !ok {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidNetworkStatus,
			Message: fmt.Sprintf("unknown network status %q", req.NetworkStatus),
		}
	}
	if req.SettledAt.IsZero() {
		return nil, &ServiceError{Code: ErrCodeInvalidRequest, Message: "settled_at is required"}
	}

	return s.performSettlement(ctx, repository.NewTransactionRepository(s.db), req)
}

// performSettlement contains the core settlement logic
func (s *SettlementService) performSettlement(
	ctx context.Context,
	transactionRepo repository.TransactionRepository,
	req SettlementRequest,
) (*models.Transaction, error) {
	stored, err := transactionRepo.FindByExternalID(ctx, req.ExternalID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{Code: ErrCodeTransactionNotFound, Message: "transaction not found", Err: err}
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to load transaction", Err: err}
	}

	mismatch := networkApproved[req.NetworkStatus] != stored.Approved()
	update := repository.SettlementUpdate{
		SettledAmount:          req.SettledAmount,
		SettledAt:              req.SettledAt,
		NetworkStatus:          req.NetworkStatus,
		ReconciliationMismatch: mismatch,
	}
	if err := transactionRepo.UpdateSettlement(ctx, req.ExternalID, update); err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to record settlement", Err: err}
	}

	if mismatch {
		metrics.ReconciliationMismatches.Inc()
		s.logger.Warn("settlement disagrees with stored decision",
			"external_id", req.ExternalID,
			"decision_id", stored.DecisionID,
			"status", stored.Status,
			"network_status", req.NetworkStatus,
		)
	}

	settledAt := req.SettledAt.UTC()
	networkStatus := req.NetworkStatus
	settledAmount := req.SettledAmount
	stored.SettledAmount = &settledAmount
	stored.SettledAt = &settledAt
	stored.NetworkStatus = &networkStatus
	stored.ReconciliationMismatch = mismatch
	return stored, nil
}
