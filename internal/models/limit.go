package models

import (
	"fmt"
	"sort"
)

// Interval names the window a spending limit is measured over.
type Interval string

const (
	IntervalPerAuthorization Interval = "per_authorization"
	IntervalDaily            Interval = "daily"
	IntervalWeekly           Interval = "weekly"
	IntervalMonthly          Interval = "monthly"
	IntervalYearly           Interval = "yearly"
	IntervalAllTime          Interval = "all_time"
)

// Intervals lists every interval in ascending window size.
var Intervals = []Interval{
	IntervalPerAuthorization,
	IntervalDaily,
	IntervalWeekly,
	IntervalMonthly,
	IntervalYearly,
	IntervalAllTime,
}

// Rank orders intervals by window size; unknown intervals rank last.
func (i Interval) Rank() int {
	for n, v := range Intervals {
		if v == i {
			return n
		}
	}
	return len(Intervals)
}

// Valid reports whether i is one of the six supported intervals.
func (i Interval) Valid() bool {
	return i.Rank() < len(Intervals)
}

// Aggregate reports whether the interval bounds a sum of approved amounts
// tracked in the ledger, as opposed to a single authorization.
func (i Interval) Aggregate() bool {
	return i.Valid() && i != IntervalPerAuthorization
}

// ParseInterval converts s into an Interval.
func ParseInterval(s string) (Interval, error) {
	i := Interval(s)
	if !i.Valid() {
		return "", fmt.Errorf("unknown interval %q", s)
	}
	return i, nil
}

// SpendingLimit bounds spend over one interval. Amount is in minor units.
type SpendingLimit struct {
	Interval Interval `db:"interval_kind"`
	Amount   int64    `db:"amount"`
	Active   bool     `db:"active"`
}

// Validate checks the limit invariants.
func (l SpendingLimit) Validate() error {
	if !l.Interval.Valid() {
		return fmt.Errorf("unknown interval %q", l.Interval)
	}
	if l.Active && l.Amount <= 0 {
		return fmt.Errorf("active %s limit must have a positive amount, got %d", l.Interval, l.Amount)
	}
	return nil
}

// LimitScope records where an effective limit was configured.
type LimitScope string

const (
	ScopeCardholder LimitScope = "cardholder"
	ScopeCard       LimitScope = "card"
)

// EffectiveLimit is an active limit together with the scope that produced it.
type EffectiveLimit struct {
	SpendingLimit
	Scope LimitScope
}

// ResolveLimits merges the cardholder limits with an optional card override.
// An active override replaces the cardholder limit of the same interval;
// inactive limits are dropped. The result is ordered by window size.
func ResolveLimits(holder []SpendingLimit, override *SpendingLimit) []EffectiveLimit {
	byInterval := make(map[Interval]EffectiveLimit, len(holder)+1)
	for _, l := range holder {
		if !l.Active {
			continue
		}
		byInterval[l.Interval] = EffectiveLimit{SpendingLimit: l, Scope: ScopeCardholder}
	}
	if override != nil && override.Active {
		byInterval[override.Interval] = EffectiveLimit{SpendingLimit: *override, Scope: ScopeCard}
	}

	out := make([]EffectiveLimit, 0, len(byInterval))
	for _, l := range byInterval {
		out = append(out, l)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].Interval.Rank() < out[b].Interval.Rank()
	})
	return out
}
