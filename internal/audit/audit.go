// Package audit emits one structured event per authorization decision.
package audit

import (
	"context"
	"log/slog"

	"github.com/fleetcard/authengine/internal/decline"
	"github.com/google/uuid"
)

// LimitCheck records one limit evaluated while deciding.
type LimitCheck struct {
	Interval  string `json:"interval"`
	Scope     string `json:"scope"`
	Limit     int64  `json:"limit"`
	Projected int64  `json:"projected"`
	Passed    bool   `json:"passed"`
}

// Event describes a decision for audit and support tooling.
type Event struct {
	ExternalID       string
	CardholderID     string
	CardID           string
	Outcome          string
	Code             decline.Code
	Source           string
	EvaluatedLimits  []LimitCheck
	Amount           int64
	DecisionID       uuid.UUID
	ConfigurationBad bool
}

// Emitter publishes decision events.
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

// LogEmitter writes events to a slog logger. Configuration failures are
// logged at WARN, everything else at INFO.
type LogEmitter struct {
	logger *slog.Logger
}

// NewLogEmitter creates a LogEmitter
func NewLogEmitter(logger *slog.Logger) *LogEmitter {
	return &LogEmitter{logger: logger.With("component", "audit")}
}

// Emit logs e
func (l *LogEmitter) Emit(ctx context.Context, e Event) {
	level := slog.LevelInfo
	if e.ConfigurationBad {
		level = slog.LevelWarn
	}

	checks := make([]any, 0, len(e.EvaluatedLimits))
	for i, c := range e.EvaluatedLimits {
		checks = append(checks, slog.Group(c.Interval,
			"index", i,
			"scope", c.Scope,
			"limit", c.Limit,
			"projected", c.Projected,
			"passed", c.Passed,
		))
	}

	attrs := []any{
		"external_id", e.ExternalID,
		"decision_id", e.DecisionID.String(),
		"cardholder_id", e.CardholderID,
		"card_id", e.CardID,
		"amount", e.Amount,
		"outcome", e.Outcome,
		"source", e.Source,
		slog.Group("evaluated_limits", checks...),
	}
	if e.Code != "" {
		attrs = append(attrs, "code", string(e.Code))
	}

	l.logger.Log(ctx, level, "authorization decided", attrs...)
}

// Discard drops every event.
type Discard struct{}

// Emit does nothing
func (Discard) Emit(context.Context, Event) {}

var (
	_ Emitter = (*LogEmitter)(nil)
	_ Emitter = Discard{}
)
