package models

import "github.com/shopspring/decimal"

// Side distinguishes buy from sell orders.
type Side string

const (
	// Buy acquires shares against cash.
	Buy Side = "BUY"
	// Sell liquidates held shares into cash.
	Sell Side = "SELL"
)

// ParseSide validates a side label. The empty string is accepted and
// returned unchanged so callers can treat it as "no filter".
func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case Buy, Sell, "":
		return Side(s), true
	default:
		return "", false
	}
}

// Order is a single market or limit order against one instrument.
// Orders fill immediately and completely or are rejected; there is no book.
//
// LimitPrice nil means "at reference price".
type Order struct {
	Symbol     string
	Side       Side
	Quantity   int64
	LimitPrice *decimal.Decimal
}
