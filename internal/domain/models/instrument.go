package models

import "github.com/shopspring/decimal"

// Instrument represents a BRVM-listed equity as published in the daily
// market sheet. Reference data only; it never changes during a session.
//
// Fields:
//   - Symbol: BRVM ticker (e.g., "BICC", "SNTS").
//   - ReferencePrice: last official closing price in FCFA; anchor for the
//     static price band and the default execution price.
//   - DailyChangePercent: last session variation, display metric only.
//   - AverageDailyVolume: average number of shares traded per day; basis
//     for the buy-side liquidity cap.
//   - Sector: economic sector label (e.g., "Banque", "Telecom").
//
// swagger:model Instrument
type Instrument struct {
	Symbol             string          `json:"symbol" example:"BICC"`
	ReferencePrice     decimal.Decimal `json:"reference_price" swaggertype:"string" example:"8500"`
	DailyChangePercent float64         `json:"daily_change_percent" example:"2.5"`
	AverageDailyVolume int64           `json:"average_daily_volume" example:"15000"`
	Sector             string          `json:"sector" example:"Construction"`
}
