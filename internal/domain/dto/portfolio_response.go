package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

// PositionResponse is one holding valued at the current reference price.
type PositionResponse struct {
	Symbol         string          `json:"symbol" example:"BICC"`
	Quantity       int64           `json:"quantity" example:"10"`
	AverageCost    decimal.Decimal `json:"average_cost" swaggertype:"string" example:"8750"`
	Sector         string          `json:"sector" example:"Construction"`
	ReferencePrice decimal.Decimal `json:"reference_price" swaggertype:"string" example:"8500"`
	MarketValue    decimal.Decimal `json:"market_value" swaggertype:"string" example:"85000"`
	Invested       decimal.Decimal `json:"invested" swaggertype:"string" example:"87500"`
	UnrealizedGain decimal.Decimal `json:"unrealized_gain" swaggertype:"string" example:"-2500"`
}

// PortfolioResponse is the JSON structure returned by GET /api/v1/portfolio.
//
// TotalWealth = Cash + MarketValue.
//
// swagger:model PortfolioResponse
type PortfolioResponse struct {
	Cash        decimal.Decimal    `json:"cash_balance" swaggertype:"string" example:"910000"`
	Positions   []PositionResponse `json:"positions"`
	MarketValue decimal.Decimal    `json:"market_value" swaggertype:"string" example:"85000"`
	TotalWealth decimal.Decimal    `json:"total_wealth" swaggertype:"string" example:"995000"`
	TakenAt     time.Time          `json:"taken_at" example:"2026-03-02T09:15:00Z"`
}

// NewPortfolioResponse maps a ledger snapshot onto the API contract.
func NewPortfolioResponse(s models.PortfolioSnapshot) PortfolioResponse {
	out := PortfolioResponse{
		Cash:        s.Cash,
		Positions:   make([]PositionResponse, 0, len(s.Positions)),
		MarketValue: s.MarketValue,
		TotalWealth: s.TotalWealth,
		TakenAt:     s.TakenAt,
	}
	for _, p := range s.Positions {
		out.Positions = append(out.Positions, PositionResponse{
			Symbol:         p.Symbol,
			Quantity:       p.Quantity,
			AverageCost:    p.AverageCost,
			Sector:         p.Sector,
			ReferencePrice: p.ReferencePrice,
			MarketValue:    p.MarketValue,
			Invested:       p.Invested,
			UnrealizedGain: p.UnrealizedGain,
		})
	}
	return out
}
