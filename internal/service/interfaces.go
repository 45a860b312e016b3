package service

import (
	"context"

	"github.com/fleetcard/authengine/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Decider decides card authorizations
type Decider interface {
	Decide(ctx context.Context, req models.AuthorizationRequest) (*Decision, error)
	FailClosed(ctx context.Context, req models.AuthorizationRequest, cause string) (*Decision, error)
}

// Settler records settlement outcomes
type Settler interface {
	Settle(ctx context.Context, req SettlementRequest) (*models.Transaction, error)
}

// TransactionReader serves stored decisions
type TransactionReader interface {
	GetTransaction(ctx context.Context, externalID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}

// LedgerViewer serves the current ledger of a cardholder
type LedgerViewer interface {
	CardholderLedger(ctx context.Context, cardholderID string) (*CardholderLedger, error)
}

// LedgerRebuilder recomputes ledgers from transactions
type LedgerRebuilder interface {
	RebuildLedger(ctx context.Context, cardholderID string) ([]models.LedgerWindow, error)
}

// Ensure concrete types implement interfaces
var (
	_ Decider           = (*DecisionEngine)(nil)
	_ Settler           = (*SettlementService)(nil)
	_ TransactionReader = (*ReportingService)(nil)
	_ LedgerViewer      = (*ReportingService)(nil)
	_ LedgerRebuilder   = (*ReportingService)(nil)
)
