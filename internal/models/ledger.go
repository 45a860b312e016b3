package models

import "time"

// LedgerWindow is the running total of approved spend for one cardholder and
// interval. WindowEnd is nil for all_time.
type LedgerWindow struct {
	WindowStart       time.Time  `db:"window_start"`
	UpdatedAt         time.Time  `db:"updated_at"`
	WindowEnd         *time.Time `db:"window_end"`
	CardholderID      string     `db:"cardholder_id"`
	Interval          Interval   `db:"interval_kind"`
	AccumulatedAmount int64      `db:"accumulated_amount"`
	Version           int64      `db:"version"`
}
