package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fleetcard/authengine/internal/api"
	"github.com/fleetcard/authengine/internal/audit"
	"github.com/fleetcard/authengine/internal/auth"
	"github.com/fleetcard/authengine/internal/config"
	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/middleware"
	"github.com/fleetcard/authengine/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	engine := service.NewDecisionEngine(database, logger,
		service.WithAuditEmitter(audit.NewLogEmitter(logger)),
		service.WithStoreRetryBackoff(cfg.Engine.StoreRetryBackoff),
	)
	settlement := service.NewSettlementService(database, logger)
	reporting := service.NewReportingService(database, logger)

	handler := NewHandler(engine, settlement, reporting, reporting, database, cfg.Engine, logger)
	signer := middleware.NewSigner(cfg.Auth.WebhookSecret, cfg.Auth.SignatureTolerance)
	tokens := auth.NewTokenService(cfg.Auth)

	if !signer.Enabled() {
		logger.Warn("webhook signing secret not set, signatures are not verified")
	}
	if !tokens.Enabled() {
		logger.Warn("jwt secret not set, read API is unauthenticated")
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)

	api.RegisterDocsRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	handler.Mount(r,
		middleware.ForScheme(api.WebhookSignatureScopes, middleware.VerifySignature(signer, logger)),
		middleware.ForScheme(api.BearerAuthScopes, middleware.RequireBearer(tokens, logger)),
	)

	return r
}

// Mount registers the generated API routes on r. Middlewares run after path
// and query parameters are bound and before the request body is decoded.
func (h *Handler) Mount(r chi.Router, middlewares ...api.MiddlewareFunc) http.Handler {
	strict := api.NewStrictHandlerWithOptions(h, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.requestError,
		ResponseErrorHandlerFunc: h.responseError,
	})
	return api.HandlerWithOptions(strict, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      middlewares,
		ErrorHandlerFunc: h.requestError,
	})
}
