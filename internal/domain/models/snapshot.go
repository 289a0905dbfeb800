package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PositionValuation is a Position marked to market at the current
// reference price.
type PositionValuation struct {
	Position
	ReferencePrice decimal.Decimal // current reference price per share
	MarketValue    decimal.Decimal // Quantity x ReferencePrice
	Invested       decimal.Decimal // Quantity x AverageCost
	UnrealizedGain decimal.Decimal // MarketValue - Invested
}

// PortfolioSnapshot is a point-in-time view of the account: cash, every
// position valued at its current reference price, and the totals.
//
// TotalWealth = Cash + MarketValue.
type PortfolioSnapshot struct {
	Cash        decimal.Decimal
	Positions   []PositionValuation // symbol-ascending
	MarketValue decimal.Decimal
	TotalWealth decimal.Decimal
	TakenAt     time.Time
}
