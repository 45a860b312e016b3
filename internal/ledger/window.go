// Package ledger maintains the per-cardholder running totals that aggregate
// spending limits are checked against.
package ledger

import (
	"time"

	"github.com/fleetcard/authengine/internal/models"
)

// WindowFor returns the calendar window of interval that contains now, aligned
// in loc. Weeks start on Monday. all_time starts at the zero time and has no
// end. Both bounds are returned in UTC.
func WindowFor(interval models.Interval, now time.Time, loc *time.Location) (time.Time, *time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	y, m, d := local.Date()

	var start, end time.Time
	switch interval {
	case models.IntervalDaily:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		end = time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	case models.IntervalWeekly:
		offset := (int(local.Weekday()) + 6) % 7
		start = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		end = time.Date(y, m, d-offset+7, 0, 0, 0, 0, loc)
	case models.IntervalMonthly:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
	case models.IntervalYearly:
		start = time.Date(y, 1, 1, 0, 0, 0, 0, loc)
		end = time.Date(y+1, 1, 1, 0, 0, 0, 0, loc)
	default:
		return time.Time{}, nil
	}

	start = start.UTC()
	end = end.UTC()
	return start, &end
}

// Project returns the window of interval that is current at now. A stored
// window from an earlier period reads as an empty new window carrying the
// stored version; a missing window reads as empty with version zero. The
// stored row is not modified.
func Project(stored *models.LedgerWindow, cardholderID string, interval models.Interval, now time.Time, loc *time.Location) models.LedgerWindow {
	start, end := WindowFor(interval, now, loc)

	if stored == nil {
		return models.LedgerWindow{
			CardholderID: cardholderID,
			Interval:     interval,
			WindowStart:  start,
			WindowEnd:    end,
		}
	}

	w := *stored
	if interval == models.IntervalAllTime {
		w.WindowStart = start
		w.WindowEnd = nil
		return w
	}
	// A window newer than now only happens with clock skew between
	// processes; keep it rather than resetting it.
	if !w.WindowStart.Before(start) {
		return w
	}

	w.WindowStart = start
	w.WindowEnd = end
	w.AccumulatedAmount = 0
	return w
}

// Contains reports whether t falls inside the window.
func Contains(w models.LedgerWindow, t time.Time) bool {
	if t.Before(w.WindowStart) {
		return false
	}
	return w.WindowEnd == nil || t.Before(*w.WindowEnd)
}

// AggregateIntervals lists the intervals tracked in the ledger, in the order
// their rows are locked.
func AggregateIntervals() []models.Interval {
	out := make([]models.Interval, 0, len(models.Intervals)-1)
	for _, i := range models.Intervals {
		if i.Aggregate() {
			out = append(out, i)
		}
	}
	return out
}
