package dto

// MarketStatusResponse reports the advisory trading-window status returned
// by GET /api/v1/market/status. The window is informational: orders are
// accepted around the clock.
//
// swagger:model MarketStatusResponse
type MarketStatusResponse struct {
	Open    bool   `json:"open" example:"true"`
	Reason  string `json:"reason,omitempty" example:"market closed (weekend)"`
	Holiday string `json:"holiday,omitempty" example:"Assumption"`
	Opens   string `json:"opens" example:"08:00"`
	Closes  string `json:"closes" example:"15:30"`
}
