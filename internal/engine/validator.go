package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/market"
	"github.com/guttosm/brvmsim/internal/rules"
)

// orderTerms are the priced-out economics of an order that passed
// validation: everything execution needs, computed once.
type orderTerms struct {
	instrument models.Instrument
	price      decimal.Decimal // effective execution price
	gross      decimal.Decimal // quantity x price
	commission decimal.Decimal
}

// evaluateOrder runs the full validation chain against the given account
// state and prices the order. Checks short-circuit in a fixed sequence:
//
//  1. the symbol must resolve in the registry;
//  2. the quantity must be a positive multiple of the lot size;
//  3. the effective price is the limit price if given, else the reference;
//  4. the effective price must sit inside the static band (bounds inclusive);
//  5. buys: the liquidity cap is checked before funds;
//  6. sells: held quantity must cover the order.
//
// The trading window is deliberately not part of the chain: it is advisory.
// The first failing check wins, so a rejection never reveals the state of
// later checks.
func evaluateOrder(reg market.Registry, rs rules.RuleSet, cash decimal.Decimal, positions map[string]models.Position, o models.Order) (orderTerms, *Rejection) {
	var t orderTerms

	in, ok := reg.Get(o.Symbol)
	if !ok {
		return t, &Rejection{
			Reason:  ErrUnknownInstrument,
			Message: fmt.Sprintf("unknown instrument %q", o.Symbol),
		}
	}
	t.instrument = in

	if !rs.ValidQuantity(o.Quantity) {
		return t, &Rejection{
			Reason:  ErrInvalidQuantity,
			Message: fmt.Sprintf("quantity %d is not a positive multiple of lot size %d", o.Quantity, rs.MinLotSize),
		}
	}

	t.price = in.ReferencePrice
	if o.LimitPrice != nil {
		t.price = *o.LimitPrice
	}

	if !rs.WithinBand(t.price, in.ReferencePrice) {
		lower, upper := rs.Band(in.ReferencePrice)
		return t, &Rejection{
			Reason:    ErrPriceOutOfBand,
			Message:   fmt.Sprintf("price %s outside band [%s, %s] around reference %s", t.price, lower, upper, in.ReferencePrice),
			BandLower: lower,
			BandUpper: upper,
		}
	}

	t.gross = decimal.NewFromInt(o.Quantity).Mul(t.price)
	t.commission = rs.Commission(t.gross)

	switch o.Side {
	case models.Buy:
		if maxQty := rs.MaxBuyQuantity(in.AverageDailyVolume); o.Quantity > maxQty {
			return t, &Rejection{
				Reason:      ErrLiquidityExceeded,
				Message:     fmt.Sprintf("quantity %d exceeds the liquidity cap of %d shares for %s", o.Quantity, maxQty, in.Symbol),
				MaxQuantity: maxQty,
			}
		}
		if total := t.gross.Add(t.commission); total.GreaterThan(cash) {
			return t, &Rejection{
				Reason:        ErrInsufficientFunds,
				Message:       fmt.Sprintf("order needs %s FCFA, %s available", total, cash),
				RequiredCash:  total,
				AvailableCash: cash,
			}
		}
	case models.Sell:
		held := positions[in.Symbol].Quantity
		if o.Quantity > held {
			return t, &Rejection{
				Reason:            ErrInsufficientHoldings,
				Message:           fmt.Sprintf("sell of %d %s exceeds held quantity %d", o.Quantity, in.Symbol, held),
				RequiredQuantity:  o.Quantity,
				AvailableQuantity: held,
			}
		}
	}

	return t, nil
}
