package dto

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

// OrderRequest is the JSON body of POST /api/v1/orders.
//
// LimitPrice is optional; when absent the order executes at the
// instrument's reference price.
type OrderRequest struct {
	Symbol     string   `json:"symbol" binding:"required" example:"BICC"`
	Side       string   `json:"side" binding:"required" example:"BUY"`
	Quantity   int64    `json:"quantity" binding:"required" example:"10"`
	LimitPrice *float64 `json:"limit_price,omitempty" example:"8600"`
}

// ToOrder converts the request into a domain order. The boolean reports
// whether the side label was valid.
func (r OrderRequest) ToOrder() (models.Order, bool) {
	side, ok := models.ParseSide(r.Side)
	if !ok || side == "" {
		return models.Order{}, false
	}
	o := models.Order{
		Symbol:   r.Symbol,
		Side:     side,
		Quantity: r.Quantity,
	}
	if r.LimitPrice != nil {
		p := decimal.NewFromFloat(*r.LimitPrice)
		o.LimitPrice = &p
	}
	return o, true
}

// OrderRejectedResponse is returned with HTTP 422 when an order fails
// validation. Details carries reason-specific context such as price band
// bounds or required vs available amounts.
//
// swagger:model OrderRejectedResponse
type OrderRejectedResponse struct {
	Reason  string            `json:"reason" example:"insufficient_funds"`
	Message string            `json:"message" example:"order needs 90000 FCFA, 50000 available"`
	Details map[string]string `json:"details,omitempty"`
}
