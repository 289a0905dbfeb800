package engine

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// Sentinel rejection reasons. Every refused order unwraps to exactly one of
// these, so callers can branch with errors.Is.
var (
	ErrUnknownInstrument    = errors.New("unknown_instrument")
	ErrInvalidQuantity      = errors.New("invalid_quantity")
	ErrPriceOutOfBand       = errors.New("price_out_of_band")
	ErrLiquidityExceeded    = errors.New("liquidity_exceeded")
	ErrInsufficientFunds    = errors.New("insufficient_funds")
	ErrInsufficientHoldings = errors.New("insufficient_holdings")
)

// Rejection explains why an order was refused. Reason is one of the
// sentinels above; the remaining fields carry reason-specific context and
// are zero otherwise.
type Rejection struct {
	Reason  error
	Message string

	// price_out_of_band: the accepted interval.
	BandLower, BandUpper decimal.Decimal
	// insufficient_funds: cash needed vs cash held.
	RequiredCash, AvailableCash decimal.Decimal
	// insufficient_holdings: shares needed vs shares held.
	RequiredQuantity, AvailableQuantity int64
	// liquidity_exceeded: the largest order the cap allows.
	MaxQuantity int64
}

// Error implements the error interface.
func (r *Rejection) Error() string { return r.Message }

// Unwrap exposes the sentinel reason to errors.Is.
func (r *Rejection) Unwrap() error { return r.Reason }

// ReasonCode returns the stable machine-readable reason label.
func (r *Rejection) ReasonCode() string { return r.Reason.Error() }

// Details renders the reason-specific context as strings for the API
// error envelope.
func (r *Rejection) Details() map[string]string {
	switch {
	case errors.Is(r.Reason, ErrPriceOutOfBand):
		return map[string]string{
			"band_lower": r.BandLower.String(),
			"band_upper": r.BandUpper.String(),
		}
	case errors.Is(r.Reason, ErrInsufficientFunds):
		return map[string]string{
			"required_cash":  r.RequiredCash.String(),
			"available_cash": r.AvailableCash.String(),
		}
	case errors.Is(r.Reason, ErrInsufficientHoldings):
		return map[string]string{
			"required_quantity":  strconv.FormatInt(r.RequiredQuantity, 10),
			"available_quantity": strconv.FormatInt(r.AvailableQuantity, 10),
		}
	case errors.Is(r.Reason, ErrLiquidityExceeded):
		return map[string]string{
			"max_quantity": strconv.FormatInt(r.MaxQuantity, 10),
		}
	default:
		return nil
	}
}
