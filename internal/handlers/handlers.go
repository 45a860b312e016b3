// Package handlers implements HTTP handlers for the authorization engine API.
package handlers

import (
	"log/slog"
	"time"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/config"
	"github.com/fleetcard/authengine/internal/service"
	"github.com/go-playground/validator/v10"
)

var _ api.StrictServerInterface = (*Handler)(nil)

// Handler serves the webhook, read and health endpoints
type Handler struct {
	decider           service.Decider
	settler           service.Settler
	transactions      service.TransactionReader
	ledgers           service.LedgerViewer
	healthChecker     service.HealthChecker
	validate          *validator.Validate
	logger            *slog.Logger
	webhookDeadline   time.Duration
	failClosedTimeout time.Duration
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	decider service.Decider,
	settler service.Settler,
	transactions service.TransactionReader,
	ledgers service.LedgerViewer,
	healthChecker service.HealthChecker,
	engine config.EngineConfig,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		decider:           decider,
		settler:           settler,
		transactions:      transactions,
		ledgers:           ledgers,
		healthChecker:     healthChecker,
		validate:          newValidator(),
		logger:            logger,
		webhookDeadline:   engine.WebhookDeadline,
		failClosedTimeout: engine.FailClosedTimeout,
	}
}
