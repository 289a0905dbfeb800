package dto

import "github.com/shopspring/decimal"

// SectorWeight is one slice of the sector allocation, weighted by current
// market value.
type SectorWeight struct {
	Sector      string          `json:"sector" example:"Banque"`
	MarketValue decimal.Decimal `json:"market_value" swaggertype:"string" example:"42000"`
	Weight      float64         `json:"weight" example:"49.4"`
}

// PositionWeight ranks a holding by its share of total market value.
type PositionWeight struct {
	Symbol      string          `json:"symbol" example:"BICC"`
	MarketValue decimal.Decimal `json:"market_value" swaggertype:"string" example:"85000"`
	Weight      float64         `json:"weight" example:"100"`
}

// RiskMetrics summarizes portfolio risk the way the BRVM account review
// sheet does: concentration, sector spread, volatility and liquidity of
// the held instruments. Levels are coarse labels (low/moderate/high or
// low/average/good).
type RiskMetrics struct {
	ConcentrationPercent float64 `json:"concentration_percent" example:"35.2"`
	ConcentrationLevel   string  `json:"concentration_level" example:"high"`
	SectorCount          int     `json:"sector_count" example:"4"`
	DiversificationLevel string  `json:"diversification_level" example:"average"`
	AverageVolatility    float64 `json:"average_volatility" example:"1.8"`
	VolatilityLevel      string  `json:"volatility_level" example:"moderate"`
	AverageVolume        float64 `json:"average_volume" example:"12600"`
	LiquidityLevel       string  `json:"liquidity_level" example:"average"`
}

// PerformanceReport is the JSON structure returned by
// GET /api/v1/reports/performance.
//
// ReturnPercent is relative to invested capital; NetReturn subtracts all
// commissions ever paid on the account.
//
// swagger:model PerformanceReport
type PerformanceReport struct {
	Invested         decimal.Decimal  `json:"invested" swaggertype:"string" example:"87500"`
	CurrentValue     decimal.Decimal  `json:"current_value" swaggertype:"string" example:"85000"`
	TotalReturn      decimal.Decimal  `json:"total_return" swaggertype:"string" example:"-2500"`
	ReturnPercent    float64          `json:"return_percent" example:"-2.86"`
	TotalCommissions decimal.Decimal  `json:"total_commissions" swaggertype:"string" example:"10000"`
	NetReturn        decimal.Decimal  `json:"net_return" swaggertype:"string" example:"-12500"`
	SectorAllocation []SectorWeight   `json:"sector_allocation"`
	TopPositions     []PositionWeight `json:"top_positions"`
	Risk             RiskMetrics      `json:"risk"`
}
