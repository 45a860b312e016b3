package api

import "github.com/shopspring/decimal"

// MajorUnits formats an amount in minor units with two decimal places.
func MajorUnits(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}
