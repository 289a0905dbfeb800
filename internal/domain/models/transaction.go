package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the immutable record of one executed order.
//
// Fields:
//   - ID: unique transaction identifier (uuid).
//   - Timestamp: execution time.
//   - Symbol, Side, Quantity: what was traded.
//   - Price: effective execution price per share (limit price if one was
//     given, otherwise the reference price at execution).
//   - GrossAmount: Quantity x Price.
//   - Commission: brokerage fee charged on the gross amount.
//   - NetCashFlow: signed cash movement on the account; negative for buys
//     (gross + commission out), positive for sells (gross - commission in).
//   - SettlementDate: Timestamp + settlement lag in calendar days (J+3).
//
// swagger:model Transaction
type Transaction struct {
	ID             string          `json:"id" example:"01a7f4c2-4e37-4b5e-9f86-1f6022ab9001"`
	Timestamp      time.Time       `json:"timestamp" example:"2026-03-02T09:15:00Z"`
	Symbol         string          `json:"symbol" example:"BICC"`
	Side           Side            `json:"type" example:"BUY"`
	Quantity       int64           `json:"quantity" example:"10"`
	Price          decimal.Decimal `json:"price" swaggertype:"string" example:"8500"`
	GrossAmount    decimal.Decimal `json:"gross_amount" swaggertype:"string" example:"85000"`
	Commission     decimal.Decimal `json:"commission" swaggertype:"string" example:"5000"`
	NetCashFlow    decimal.Decimal `json:"net_cash_flow" swaggertype:"string" example:"-90000"`
	SettlementDate time.Time       `json:"settlement_date" example:"2026-03-05T09:15:00Z"`
}
