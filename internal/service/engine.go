package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetcard/authengine/internal/audit"
	"github.com/fleetcard/authengine/internal/db"
	"github.com/fleetcard/authengine/internal/decline"
	"github.com/fleetcard/authengine/internal/ledger"
	"github.com/fleetcard/authengine/internal/metrics"
	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

// Decision sources recorded in audit events.
const (
	SourceEngine     = "engine"
	SourceFailClosed = "fail_closed"
	SourceReplay     = "replay"
)

// Fail-closed causes.
const (
	CauseDeadline         = "deadline"
	CauseStoreUnavailable = "store_unavailable"
)

// Decision is the answer to one authorization request.
type Decision struct {
	Transaction *models.Transaction
	Evaluated   []audit.LimitCheck
	// Replayed is set when the decision was stored by an earlier delivery.
	Replayed bool
	// Persisted is false only for a fail-closed decline the store could not
	// record.
	Persisted bool
}

// Approved reports whether the authorization was approved.
func (d *Decision) Approved() bool {
	return d.Transaction.Approved()
}

type repoFactory struct {
	limits       func(db.DBTX) repository.LimitStore
	ledger       func(db.DBTX) repository.LedgerRepository
	transactions func(db.DBTX) repository.TransactionRepository
}

func defaultRepos() repoFactory {
	return repoFactory{
		limits:       repository.NewLimitStore,
		ledger:       repository.NewLedgerRepository,
		transactions: repository.NewTransactionRepository,
	}
}

// DecisionEngine decides authorizations against the configured spending
// limits and category rules and persists every decision exactly once.
type DecisionEngine struct {
	db           *db.DB
	logger       *slog.Logger
	audit        audit.Emitter
	now          func() time.Time
	repos        repoFactory
	group        singleflight.Group
	retryBackoff time.Duration
}

// EngineOption configures a DecisionEngine
type EngineOption func(*DecisionEngine)

// WithClock overrides the decision clock.
func WithClock(now func() time.Time) EngineOption {
	return func(s *DecisionEngine) { s.now = now }
}

// WithAuditEmitter sets where decision events go.
func WithAuditEmitter(e audit.Emitter) EngineOption {
	return func(s *DecisionEngine) { s.audit = e }
}

// WithStoreRetryBackoff sets the pause before retrying a transient store
// error.
func WithStoreRetryBackoff(d time.Duration) EngineOption {
	return func(s *DecisionEngine) { s.retryBackoff = d }
}

// NewDecisionEngine creates a new DecisionEngine
func NewDecisionEngine(database *db.DB, logger *slog.Logger, opts ...EngineOption) *DecisionEngine {
	s := &DecisionEngine{
		db:           database,
		logger:       logger.With("component", "engine"),
		audit:        audit.NewLogEmitter(logger),
		now:          time.Now,
		repos:        defaultRepos(),
		retryBackoff: 50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decide returns the decision for req. A request whose external id already
// has a stored decision gets that decision back unchanged. Concurrent
// deliveries of one external id share a single evaluation.
//
// Transient store errors are retried once; if the store is still unavailable
// the request fails closed with webhook_timeout. A cancelled ctx returns the
// context error and nothing is approved.
func (s *DecisionEngine) Decide(ctx context.Context, req models.AuthorizationRequest) (*Decision, error) {
	if err := ValidateAuthorizationRequest(req); err != nil {
		return nil, err
	}

	v, err, _ := s.group.Do(req.ExternalID, func() (any, error) {
		return s.decide(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Decision), nil
}

func (s *DecisionEngine) decide(ctx context.Context, req models.AuthorizationRequest) (*Decision, error) {
	started := time.Now()

	var decision *Decision
	err := s.withStoreRetry(ctx, "decide", func(ctx context.Context) error {
		d, err := s.attempt(ctx, req)
		if err != nil {
			return err
		}
		decision = d
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.Error("store unavailable, failing closed",
			"external_id", req.ExternalID,
			"error", err,
		)
		return s.FailClosed(ctx, req, CauseStoreUnavailable)
	}

	if decision.Replayed {
		metrics.DuplicateDeliveries.Inc()
		s.logger.Info("returning stored decision",
			"external_id", req.ExternalID,
			"decision_id", decision.Transaction.DecisionID,
		)
		s.emit(ctx, decision, SourceReplay)
		return decision, nil
	}

	outcome := string(decision.Transaction.Status)
	metrics.Decisions.WithLabelValues(outcome, string(decision.Transaction.DeclineCode)).Inc()
	metrics.DecisionLatency.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
	s.emit(ctx, decision, SourceEngine)
	return decision, nil
}

// withStoreRetry runs fn and retries it once after the configured backoff if
// it fails with a transient store error.
func (s *DecisionEngine) withStoreRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	backoff := s.retryBackoff
	if backoff <= 0 {
		backoff = time.Millisecond
	}
	b := retry.WithMaxRetries(1, retry.NewConstant(backoff))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && repository.IsTransient(err) {
			metrics.StoreRetries.WithLabelValues(op).Inc()
			s.logger.Warn("transient store error", "operation", op, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

// attempt runs the decision pipeline once.
func (s *DecisionEngine) attempt(ctx context.Context, req models.AuthorizationRequest) (*Decision, error) {
	txRepo := s.repos.transactions(s.db)

	existing, err := txRepo.FindByExternalID(ctx, req.ExternalID)
	if err == nil {
		return &Decision{Transaction: existing, Replayed: true, Persisted: true}, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	ev, err := s.performEvaluation(ctx, s.repos.limits(s.db), s.repos.ledger(s.db), req, now)
	if err != nil {
		return nil, err
	}

	if ev.configErr != nil {
		s.logger.Warn("declining on invalid configuration",
			"external_id", req.ExternalID,
			"card_id", req.CardID,
			"error", ev.configErr,
		)
	}

	if ev.code == "" {
		return s.commitApproval(ctx, req, ev, now)
	}
	return s.persistDecision(ctx, txRepo, ev.transaction(req, now), ev.checks)
}

// evaluation is the result of running every check against the current
// configuration and ledger.
type evaluation struct {
	card      *models.Card
	holder    *models.Cardholder
	loc       *time.Location
	configErr error
	code      decline.Code
	limits    []models.EffectiveLimit
	checks    []audit.LimitCheck
}

func (e *evaluation) decline(code decline.Code) *evaluation {
	e.code = code
	return e
}

func (e *evaluation) misconfigured(err error) *evaluation {
	e.configErr = err
	e.code = decline.CodeSystemError
	return e
}

// transaction builds the record of this evaluation's outcome.
func (e *evaluation) transaction(req models.AuthorizationRequest, now time.Time) *models.Transaction {
	t := &models.Transaction{
		ExternalID:           req.ExternalID,
		DecisionID:           uuid.New(),
		CardID:               req.CardID,
		Amount:               req.Amount,
		MerchantCategoryCode: req.MerchantCategoryCode,
		Status:               models.TransactionStatusApproved,
		AuthorizedAt:         req.Timestamp.UTC(),
		CreatedAt:            now,
	}
	if e.card != nil {
		t.CardholderID = e.card.CardholderID
	}
	if e.holder != nil {
		t.BusinessID = e.holder.BusinessID
	}
	if e.code != "" {
		t.Status = models.TransactionStatusDeclined
		t.DeclineCode = e.code
		t.DeclineReason = decline.ReasonFor(e.code, decline.Context{MerchantCategoryCode: req.MerchantCategoryCode})
	}
	return t
}

// performEvaluation runs the checks in order and stops at the first failure:
// card state, cardholder state, merchant category, per-authorization limit,
// then aggregate limits from the smallest window up. Missing or invalid
// configuration declines with system_error. Store errors are returned.
func (s *DecisionEngine) performEvaluation(
	ctx context.Context,
	store repository.LimitStore,
	ledgerRepo repository.LedgerRepository,
	req models.AuthorizationRequest,
	now time.Time,
) (*evaluation, error) {
	ev := &evaluation{}

	card, err := store.GetCard(ctx, req.CardID)
	if errors.Is(err, models.ErrNotFound) {
		return ev.misconfigured(err), nil
	}
	if err != nil {
		return nil, err
	}
	ev.card = card
	if card.Status != models.CardStatusActive {
		return ev.decline(decline.CodeCardInactive), nil
	}

	holder, err := store.GetCardholder(ctx, card.CardholderID)
	if errors.Is(err, models.ErrNotFound) {
		return ev.misconfigured(err), nil
	}
	if err != nil {
		return nil, err
	}
	ev.holder = holder
	if !holder.Active {
		return ev.decline(decline.CodeCardholderInactive), nil
	}

	business, err := store.GetBusiness(ctx, holder.BusinessID)
	if errors.Is(err, models.ErrNotFound) {
		return ev.misconfigured(err), nil
	}
	if err != nil {
		return nil, err
	}
	loc, err := business.Location()
	if err != nil {
		return ev.misconfigured(err), nil
	}
	ev.loc = loc

	rules, err := store.GetCategoryRules(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	if !models.AnyAllows(rules, req.MerchantCategoryCode) {
		return ev.decline(decline.CodeProhibitedMerchant), nil
	}

	holderLimits, err := store.GetActiveLimits(ctx, holder.ID)
	if err != nil {
		return nil, err
	}
	override, err := store.GetCardOverride(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	for _, l := range holderLimits {
		if err := l.Validate(); err != nil {
			return ev.misconfigured(fmt.Errorf("cardholder %s: %w", holder.ID, err)), nil
		}
	}
	if override != nil {
		if err := override.Validate(); err != nil {
			return ev.misconfigured(fmt.Errorf("card %s override: %w", card.ID, err)), nil
		}
	}
	ev.limits = models.ResolveLimits(holderLimits, override)

	for _, l := range ev.limits {
		if l.Interval != models.IntervalPerAuthorization {
			continue
		}
		passed := req.Amount <= l.Amount
		ev.checks = append(ev.checks, limitCheck(l, req.Amount, passed))
		if !passed {
			return ev.decline(decline.CodeSpendingControls), nil
		}
	}

	evaluations, err := ledger.Evaluate(ctx, ledgerRepo, s.ledgerRequest(ev, req, now))
	if err != nil {
		return nil, err
	}
	for _, e := range evaluations {
		ev.checks = append(ev.checks, limitCheck(e.Limit, e.Projected, !e.Exceeded()))
		if e.Exceeded() {
			return ev.decline(aggregateCode(e.Limit.Scope)), nil
		}
	}

	return ev, nil
}

func (s *DecisionEngine) ledgerRequest(ev *evaluation, req models.AuthorizationRequest, now time.Time) ledger.Request {
	return ledger.Request{
		Now:          now,
		Location:     ev.loc,
		CardholderID: ev.holder.ID,
		Limits:       ev.limits,
		Amount:       req.Amount,
	}
}

// aggregateCode maps the scope of a breached aggregate limit to its code.
func aggregateCode(scope models.LimitScope) decline.Code {
	if scope == models.ScopeCard {
		return decline.CodeAuthorizationControls
	}
	return decline.CodeSpendingControls
}

func limitCheck(l models.EffectiveLimit, projected int64, passed bool) audit.LimitCheck {
	return audit.LimitCheck{
		Interval:  string(l.Interval),
		Scope:     string(l.Scope),
		Limit:     l.Amount,
		Projected: projected,
		Passed:    passed,
	}
}

// commitApproval records an approval and its ledger increments in one
// database transaction. If the locked ledger no longer admits the amount the
// request is declined instead.
func (s *DecisionEngine) commitApproval(ctx context.Context, req models.AuthorizationRequest, ev *evaluation, now time.Time) (*Decision, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	approved, err := s.performCommit(ctx, s.repos.ledger(tx), s.repos.transactions(tx), req, ev, now)
	if err != nil {
		_ = tx.Rollback() //nolint:errcheck // release the connection before the decline path

		var exceeded *ledger.LimitExceededError
		switch {
		case errors.As(err, &exceeded):
			s.logger.Info("limit exceeded at commit",
				"external_id", req.ExternalID,
				"interval", exceeded.Evaluation.Limit.Interval,
				"projected", exceeded.Evaluation.Projected,
			)
			ev.checks = append(ev.checks, limitCheck(exceeded.Evaluation.Limit, exceeded.Evaluation.Projected, false))
			ev.decline(aggregateCode(exceeded.Evaluation.Limit.Scope))
			return s.persistDecision(ctx, s.repos.transactions(s.db), ev.transaction(req, now), ev.checks)
		case errors.Is(err, models.ErrDuplicateTransaction):
			return s.storedDecision(ctx, s.repos.transactions(s.db), req.ExternalID)
		}
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Decision{Transaction: approved, Evaluated: ev.checks, Persisted: true}, nil
}

// performCommit inserts the approved transaction and applies the ledger
// increments against locked windows.
func (s *DecisionEngine) performCommit(
	ctx context.Context,
	ledgerRepo repository.LedgerRepository,
	transactionRepo repository.TransactionRepository,
	req models.AuthorizationRequest,
	ev *evaluation,
	now time.Time,
) (*models.Transaction, error) {
	approved := ev.transaction(req, now)
	if err := transactionRepo.Create(ctx, approved); err != nil {
		return nil, err
	}

	if _, err := ledger.Commit(ctx, ledgerRepo, s.ledgerRequest(ev, req, now)); err != nil {
		return nil, err
	}

	return approved, nil
}

// persistDecision stores a decline. If another delivery stored a decision
// first, that decision is returned instead.
func (s *DecisionEngine) persistDecision(
	ctx context.Context,
	transactionRepo repository.TransactionRepository,
	t *models.Transaction,
	checks []audit.LimitCheck,
) (*Decision, error) {
	err := transactionRepo.Create(ctx, t)
	if errors.Is(err, models.ErrDuplicateTransaction) {
		return s.storedDecision(ctx, transactionRepo, t.ExternalID)
	}
	if err != nil {
		return nil, err
	}
	return &Decision{Transaction: t, Evaluated: checks, Persisted: true}, nil
}

func (s *DecisionEngine) storedDecision(ctx context.Context, transactionRepo repository.TransactionRepository, externalID string) (*Decision, error) {
	stored, err := transactionRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored decision: %w", err)
	}
	return &Decision{Transaction: stored, Replayed: true, Persisted: true}, nil
}

// FailClosed declines req with webhook_timeout and tries to persist it with
// ctx. Callers whose request context has expired pass a fresh short-lived
// context. If a decision was stored for the external id in the meantime it
// is returned instead. When the store cannot record the decline it is still
// returned, with Persisted false.
func (s *DecisionEngine) FailClosed(ctx context.Context, req models.AuthorizationRequest, cause string) (*Decision, error) {
	t := (&evaluation{code: decline.CodeWebhookTimeout}).transaction(req, s.now().UTC())
	transactionRepo := s.repos.transactions(s.db)

	decision, err := s.persistDecision(ctx, transactionRepo, t, nil)
	if err != nil {
		s.logger.Error("failed to persist fail-closed decline",
			"external_id", req.ExternalID,
			"cause", cause,
			"error", err,
		)
		decision = &Decision{Transaction: t, Persisted: false}
	}
	if decision.Replayed {
		metrics.DuplicateDeliveries.Inc()
		return decision, nil
	}

	metrics.WebhookTimeouts.WithLabelValues(cause).Inc()
	metrics.Decisions.WithLabelValues(string(t.Status), string(t.DeclineCode)).Inc()
	s.emit(ctx, decision, SourceFailClosed)
	return decision, nil
}

func (s *DecisionEngine) emit(ctx context.Context, d *Decision, source string) {
	t := d.Transaction
	s.audit.Emit(ctx, audit.Event{
		ExternalID:       t.ExternalID,
		DecisionID:       t.DecisionID,
		CardholderID:     t.CardholderID,
		CardID:           t.CardID,
		Amount:           t.Amount,
		Outcome:          string(t.Status),
		Code:             t.DeclineCode,
		Source:           source,
		EvaluatedLimits:  d.Evaluated,
		ConfigurationBad: t.DeclineCode == decline.CodeSystemError,
	})
}
