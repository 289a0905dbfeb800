package dto

import "github.com/shopspring/decimal"

// MarketRulesResponse lists the BRVM trading conventions the simulator
// applies, as returned by GET /api/v1/market/rules.
//
// swagger:model MarketRulesResponse
type MarketRulesResponse struct {
	TradingOpen            string          `json:"trading_open" example:"08:00"`
	TradingClose           string          `json:"trading_close" example:"15:30"`
	Timezone               string          `json:"timezone" example:"Africa/Abidjan"`
	SettlementLagDays      int             `json:"settlement_lag_days" example:"3"`
	StaticBandPercent      decimal.Decimal `json:"static_band_percent" swaggertype:"string" example:"0.075"`
	CommissionRate         decimal.Decimal `json:"commission_rate" swaggertype:"string" example:"0.006"`
	MinCommission          decimal.Decimal `json:"min_commission" swaggertype:"string" example:"5000"`
	MaxOrderVolumeFraction decimal.Decimal `json:"max_order_volume_fraction" swaggertype:"string" example:"0.1"`
	MinLotSize             int64           `json:"min_lot_size" example:"1"`
}
