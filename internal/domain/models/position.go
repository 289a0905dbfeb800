package models

import "github.com/shopspring/decimal"

// Position is one holding of the investor account.
//
// AverageCost is the value-weighted average acquisition price: each buy
// re-averages it over the combined quantity, sells leave it unchanged.
// Fractional values are permitted even though FCFA has no sub-unit.
//
// JSON tags follow the persisted state blob format ("avg_price" for
// compatibility with previously saved portfolios).
type Position struct {
	Symbol      string          `json:"symbol" example:"BICC"`
	Quantity    int64           `json:"quantity" example:"10"`
	AverageCost decimal.Decimal `json:"avg_price" example:"8750"`
	Sector      string          `json:"sector" example:"Construction"`
}
