package ledger

import (
	"testing"
	"time"

	"github.com/fleetcard/authengine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func utc(y int, m time.Month, d, h, min, s int) time.Time {
	return time.Date(y, m, d, h, min, s, 0, time.UTC)
}

func TestWindowFor(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	tests := []struct {
		now       time.Time
		loc       *time.Location
		wantStart time.Time
		wantEnd   time.Time
		name      string
		interval  models.Interval
	}{
		{
			name:      "daily aligned to local midnight",
			interval:  models.IntervalDaily,
			now:       time.Date(2026, 3, 4, 15, 30, 0, 0, ny),
			loc:       ny,
			wantStart: utc(2026, 3, 4, 5, 0, 0),
			wantEnd:   utc(2026, 3, 5, 5, 0, 0),
		},
		{
			name:      "daily across spring forward is 23 hours",
			interval:  models.IntervalDaily,
			now:       time.Date(2026, 3, 8, 12, 0, 0, 0, ny),
			loc:       ny,
			wantStart: utc(2026, 3, 8, 5, 0, 0),
			wantEnd:   utc(2026, 3, 9, 4, 0, 0),
		},
		{
			name:      "weekly on sunday belongs to the week starting monday",
			interval:  models.IntervalWeekly,
			now:       time.Date(2026, 3, 8, 23, 59, 59, 0, ny),
			loc:       ny,
			wantStart: utc(2026, 3, 2, 5, 0, 0),
			wantEnd:   utc(2026, 3, 9, 4, 0, 0),
		},
		{
			name:      "weekly on monday starts that day",
			interval:  models.IntervalWeekly,
			now:       utc(2026, 3, 2, 0, 0, 0),
			loc:       time.UTC,
			wantStart: utc(2026, 3, 2, 0, 0, 0),
			wantEnd:   utc(2026, 3, 9, 0, 0, 0),
		},
		{
			name:      "monthly in business timezone",
			interval:  models.IntervalMonthly,
			now:       utc(2026, 5, 1, 2, 0, 0), // still April 30 in New York
			loc:       ny,
			wantStart: utc(2026, 4, 1, 4, 0, 0),
			wantEnd:   utc(2026, 5, 1, 4, 0, 0),
		},
		{
			name:      "yearly",
			interval:  models.IntervalYearly,
			now:       utc(2026, 7, 4, 12, 0, 0),
			loc:       time.UTC,
			wantStart: utc(2026, 1, 1, 0, 0, 0),
			wantEnd:   utc(2027, 1, 1, 0, 0, 0),
		},
		{
			name:      "nil location means UTC",
			interval:  models.IntervalDaily,
			now:       utc(2026, 7, 4, 23, 0, 0),
			loc:       nil,
			wantStart: utc(2026, 7, 4, 0, 0, 0),
			wantEnd:   utc(2026, 7, 5, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WindowFor(tt.interval, tt.now, tt.loc)
			assert.True(t, tt.wantStart.Equal(start), "start: want %s got %s", tt.wantStart, start)
			require.NotNil(t, end)
			assert.True(t, tt.wantEnd.Equal(*end), "end: want %s got %s", tt.wantEnd, *end)
		})
	}
}

func TestWindowFor_AllTime(t *testing.T) {
	start, end := WindowFor(models.IntervalAllTime, time.Now(), time.UTC)
	assert.True(t, start.IsZero())
	assert.Nil(t, end)
}

func TestProject_RolloverAtMidnight(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	start, end := WindowFor(models.IntervalDaily, time.Date(2026, 3, 4, 9, 0, 0, 0, ny), ny)
	stored := &models.LedgerWindow{
		CardholderID:      "ich_1",
		Interval:          models.IntervalDaily,
		WindowStart:       start,
		WindowEnd:         end,
		AccumulatedAmount: 900,
		Version:           7,
	}

	before := Project(stored, "ich_1", models.IntervalDaily, time.Date(2026, 3, 4, 23, 59, 59, 0, ny), ny)
	assert.Equal(t, int64(900), before.AccumulatedAmount)
	assert.True(t, before.WindowStart.Equal(start))

	after := Project(stored, "ich_1", models.IntervalDaily, time.Date(2026, 3, 5, 0, 0, 1, 0, ny), ny)
	assert.Zero(t, after.AccumulatedAmount)
	assert.True(t, after.WindowStart.Equal(utc(2026, 3, 5, 5, 0, 0)))
	assert.Equal(t, int64(7), after.Version, "version carries over for the compare-and-swap")

	assert.Equal(t, int64(900), stored.AccumulatedAmount, "stored row is not modified")
}

func TestProject_AllTimeNeverResets(t *testing.T) {
	stored := &models.LedgerWindow{CardholderID: "ich_1", Interval: models.IntervalAllTime, AccumulatedAmount: 123456}
	w := Project(stored, "ich_1", models.IntervalAllTime, utc(2040, 1, 1, 0, 0, 0), time.UTC)
	assert.Equal(t, int64(123456), w.AccumulatedAmount)
	assert.Nil(t, w.WindowEnd)
}

func TestProject_KeepsNewerWindow(t *testing.T) {
	start, end := WindowFor(models.IntervalDaily, utc(2026, 3, 5, 1, 0, 0), time.UTC)
	stored := &models.LedgerWindow{Interval: models.IntervalDaily, WindowStart: start, WindowEnd: end, AccumulatedAmount: 50}

	w := Project(stored, "ich_1", models.IntervalDaily, utc(2026, 3, 4, 23, 0, 0), time.UTC)
	assert.Equal(t, int64(50), w.AccumulatedAmount)
	assert.True(t, w.WindowStart.Equal(start))
}

func TestProject_Missing(t *testing.T) {
	w := Project(nil, "ich_9", models.IntervalMonthly, utc(2026, 2, 14, 0, 0, 0), time.UTC)
	assert.Equal(t, "ich_9", w.CardholderID)
	assert.Equal(t, models.IntervalMonthly, w.Interval)
	assert.Zero(t, w.AccumulatedAmount)
	assert.Zero(t, w.Version)
	assert.True(t, w.WindowStart.Equal(utc(2026, 2, 1, 0, 0, 0)))
}

func TestContains(t *testing.T) {
	w := Project(nil, "ich_1", models.IntervalDaily, utc(2026, 3, 4, 12, 0, 0), time.UTC)
	assert.True(t, Contains(w, utc(2026, 3, 4, 0, 0, 0)))
	assert.True(t, Contains(w, utc(2026, 3, 4, 23, 59, 59)))
	assert.False(t, Contains(w, utc(2026, 3, 5, 0, 0, 0)))
	assert.False(t, Contains(w, utc(2026, 3, 3, 23, 59, 59)))

	all := Project(nil, "ich_1", models.IntervalAllTime, utc(2026, 3, 4, 12, 0, 0), time.UTC)
	assert.True(t, Contains(all, utc(1999, 1, 1, 0, 0, 0)))
}

func TestAggregateIntervals(t *testing.T) {
	assert.Equal(t, []models.Interval{
		models.IntervalDaily,
		models.IntervalWeekly,
		models.IntervalMonthly,
		models.IntervalYearly,
		models.IntervalAllTime,
	}, AggregateIntervals())
}
