package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetcard/authengine/internal/models"
	"github.com/fleetcard/authengine/internal/repository"
)

// Evaluation is the outcome of checking one aggregate limit.
type Evaluation struct {
	Limit       models.EffectiveLimit
	Window      models.LedgerWindow
	Accumulated int64
	Projected   int64
}

// Exceeded reports whether the projected total is over the limit. Reaching
// the limit exactly is allowed.
func (e Evaluation) Exceeded() bool {
	return e.Projected > e.Limit.Amount
}

// LimitExceededError reports the first limit a commit found breached after
// locking the ledger.
type LimitExceededError struct {
	Evaluation Evaluation
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s %s limit %d exceeded: projected %d",
		e.Evaluation.Limit.Scope, e.Evaluation.Limit.Interval, e.Evaluation.Limit.Amount, e.Evaluation.Projected)
}

// Request identifies the cardholder and amount a ledger operation applies to.
type Request struct {
	Now          time.Time
	Location     *time.Location
	CardholderID string
	Limits       []models.EffectiveLimit
	Amount       int64
}

func (r Request) aggregateLimits() map[models.Interval]models.EffectiveLimit {
	out := make(map[models.Interval]models.EffectiveLimit, len(r.Limits))
	for _, l := range r.Limits {
		if l.Active && l.Interval.Aggregate() {
			out[l.Interval] = l
		}
	}
	return out
}

func (r Request) load(ctx context.Context, repo repository.LedgerRepository, interval models.Interval) (models.LedgerWindow, error) {
	stored, err := repo.Get(ctx, r.CardholderID, interval)
	if errors.Is(err, models.ErrNotFound) {
		stored = nil
	} else if err != nil {
		return models.LedgerWindow{}, err
	}
	return Project(stored, r.CardholderID, interval, r.Now, r.Location), nil
}

// Evaluate projects req.Amount onto every aggregate limit without writing.
// Results are ordered by window size.
func Evaluate(ctx context.Context, repo repository.LedgerRepository, req Request) ([]Evaluation, error) {
	limits := req.aggregateLimits()

	var out []Evaluation
	for _, interval := range AggregateIntervals() {
		limit, ok := limits[interval]
		if !ok {
			continue
		}
		e, err := ReserveAndCheck(ctx, repo, req, limit)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ReserveAndCheck projects req.Amount onto a single limit. A per-authorization
// limit is checked against the amount alone. Nothing is reserved until Commit.
func ReserveAndCheck(ctx context.Context, repo repository.LedgerRepository, req Request, limit models.EffectiveLimit) (Evaluation, error) {
	if !limit.Interval.Aggregate() {
		return Evaluation{Limit: limit, Projected: req.Amount}, nil
	}
	w, err := req.load(ctx, repo, limit.Interval)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to evaluate %s window: %w", limit.Interval, err)
	}
	return Evaluation{
		Limit:       limit,
		Window:      w,
		Accumulated: w.AccumulatedAmount,
		Projected:   w.AccumulatedAmount + req.Amount,
	}, nil
}

// Commit adds req.Amount to every aggregate window of the cardholder. It must
// run inside the caller's database transaction: rows are locked in interval
// order, rolled over if stale, re-checked against req.Limits and written with
// a version compare-and-swap. A breached limit returns *LimitExceededError and
// nothing is written.
func Commit(ctx context.Context, repo repository.LedgerRepository, req Request) ([]Evaluation, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("commit amount must be positive, got %d", req.Amount)
	}
	limits := req.aggregateLimits()
	intervals := AggregateIntervals()

	for _, interval := range intervals {
		fresh := Project(nil, req.CardholderID, interval, req.Now, req.Location)
		if err := repo.Ensure(ctx, &fresh); err != nil {
			return nil, err
		}
	}

	windows := make([]models.LedgerWindow, 0, len(intervals))
	var evaluations []Evaluation
	for _, interval := range intervals {
		stored, err := repo.GetForUpdate(ctx, req.CardholderID, interval)
		if err != nil {
			return nil, err
		}
		w := Project(stored, req.CardholderID, interval, req.Now, req.Location)

		if limit, ok := limits[interval]; ok {
			e := Evaluation{
				Limit:       limit,
				Window:      w,
				Accumulated: w.AccumulatedAmount,
				Projected:   w.AccumulatedAmount + req.Amount,
			}
			if e.Exceeded() {
				return nil, &LimitExceededError{Evaluation: e}
			}
			evaluations = append(evaluations, e)
		}

		w.AccumulatedAmount += req.Amount
		windows = append(windows, w)
	}

	for i := range windows {
		if err := repo.Save(ctx, &windows[i]); err != nil {
			return nil, err
		}
	}
	return evaluations, nil
}

// Rebuild recomputes the current windows of a cardholder from its approved
// transactions and overwrites the stored rows. Membership in a window is by
// decision time.
func Rebuild(
	ctx context.Context,
	transactions repository.TransactionRepository,
	repo repository.LedgerRepository,
	cardholderID string,
	now time.Time,
	loc *time.Location,
) ([]models.LedgerWindow, error) {
	approved, err := transactions.ListApprovedByCardholder(ctx, cardholderID)
	if err != nil {
		return nil, err
	}

	var out []models.LedgerWindow
	for _, interval := range AggregateIntervals() {
		w := Project(nil, cardholderID, interval, now, loc)
		for _, tx := range approved {
			if Contains(w, tx.CreatedAt) {
				w.AccumulatedAmount += tx.Amount
			}
		}
		if err := repo.Replace(ctx, &w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// WindowView is a current window together with the limit that applies to it.
type WindowView struct {
	Limit     *models.EffectiveLimit
	Remaining *int64
	Window    models.LedgerWindow
}

// View returns every aggregate window of a cardholder as it stands at now,
// with lazy rollover applied.
func View(ctx context.Context, repo repository.LedgerRepository, req Request) ([]WindowView, error) {
	limits := req.aggregateLimits()

	out := make([]WindowView, 0, len(limits))
	for _, interval := range AggregateIntervals() {
		w, err := req.load(ctx, repo, interval)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s window: %w", interval, err)
		}
		view := WindowView{Window: w}
		if limit, ok := limits[interval]; ok {
			remaining := limit.Amount - w.AccumulatedAmount
			if remaining < 0 {
				remaining = 0
			}
			view.Limit = &limit
			view.Remaining = &remaining
		}
		out = append(out, view)
	}
	return out, nil
}
