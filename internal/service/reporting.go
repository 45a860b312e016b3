package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/ledger"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
)

// CardholderLedger is the current spend of a cardholder per interval.
type CardholderLedger struct {
	AsOf         time.Time
	CardholderID string
	Timezone     string
	Windows      []ledger.WindowView
}

// ReportingService serves the read-only views used by the dashboard and the
// operator CLI, and rebuilds ledgers on request.
type ReportingService struct {
	db     *db.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewReportingService creates a new ReportingService
func NewReportingService(database *db.DB, logger *slog.Logger) *ReportingService {
	return &ReportingService{
		db:     database,
		logger: logger.With("component", "reporting"),
		now:    time.Now,
	}
}

// GetTransaction returns the stored decision for an external id
func (s *ReportingService) GetTransaction(ctx context.Context, externalID string) (*models.Transaction, error) {
	txn, err := repository.NewTransactionRepository(s.db).FindByExternalID(ctx, externalID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{Code: ErrCodeTransactionNotFound, Message: "transaction not found", Err: err}
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to load transaction", Err: err}
	}
	return txn, nil
}

// ListTransactions returns transactions matching filter, newest first
func (s *ReportingService) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	if filter.Status != "" && filter.Status != models.TransactionStatusApproved && filter.Status != models.TransactionStatusDeclined {
		return nil, &ServiceError{Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("unknown status %q", filter.Status)}
	}
	if filter.Limit < 0 || filter.Limit > repository.MaxListLimit {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: fmt.Sprintf("limit must be between 0 and %d", repository.MaxListLimit),
		}
	}

	txs, err := repository.NewTransactionRepository(s.db).List(ctx, filter)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to list transactions", Err: err}
	}
	return txs, nil
}

// CardholderLedger returns the cardholder's windows as of now, with lazy
// rollover applied and the cardholder limits attached.
func (s *ReportingService) CardholderLedger(ctx context.Context, cardholderID string) (*CardholderLedger, error) {
	return s.performLedgerView(ctx, repository.NewLimitStore(s.db), repository.NewLedgerRepository(s.db), cardholderID)
}

func (s *ReportingService) performLedgerView(
	ctx context.Context,
	store repository.LimitStore,
	ledgerRepo repository.LedgerRepository,
	cardholderID string,
) (*CardholderLedger, error) {
	holder, business, loc, err := s.cardholderContext(ctx, store, cardholderID)
	if err != nil {
		return nil, err
	}

	limits, err := store.GetActiveLimits(ctx, holder.ID)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to load limits", Err: err}
	}

	now := s.now().UTC()
	views, err := ledger.View(ctx, ledgerRepo, ledger.Request{
		Now:          now,
		Location:     loc,
		CardholderID: holder.ID,
		Limits:       models.ResolveLimits(limits, nil),
	})
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to read ledger", Err: err}
	}

	return &CardholderLedger{
		AsOf:         now,
		CardholderID: holder.ID,
		Timezone:     business.Timezone,
		Windows:      views,
	}, nil
}

// RebuildLedger recomputes a cardholder's current windows from approved
// transactions in one database transaction.
func (s *ReportingService) RebuildLedger(ctx context.Context, cardholderID string) ([]models.LedgerWindow, error) {
	_, _, loc, err := s.cardholderContext(ctx, repository.NewLimitStore(s.db), cardholderID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to start transaction", Err: err}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	windows, err := ledger.Rebuild(ctx,
		repository.NewTransactionRepository(tx),
		repository.NewLedgerRepository(tx),
		cardholderID, s.now().UTC(), loc,
	)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to rebuild ledger", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to commit ledger rebuild", Err: err}
	}

	s.logger.Info("ledger rebuilt", "cardholder_id", cardholderID, "windows", len(windows))
	return windows, nil
}

func (s *ReportingService) cardholderContext(
	ctx context.Context,
	store repository.LimitStore,
	cardholderID string,
) (*models.Cardholder, *models.Business, *time.Location, error) {
	holder, err := store.GetCardholder(ctx, cardholderID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil, nil, &ServiceError{Code: ErrCodeCardholderNotFound, Message: "cardholder not found", Err: err}
	}
	if err != nil {
		return nil, nil, nil, &ServiceError{Code: ErrCodeInternalError, Message: "failed to load cardholder", Err: err}
	}

	business, err := store.GetBusiness(ctx, holder.BusinessID)
	if err != nil {
		return nil, nil, nil, &ServiceError{Code: ErrCodeConfigurationInvalid, Message: "failed to load business", Err: err}
	}
	loc, err := business.Location()
	if err != nil {
		return nil, nil, nil, &ServiceError{Code: ErrCodeConfigurationInvalid, Message: "invalid business timezone", Err: err}
	}
	return holder, business, loc, nil
}
