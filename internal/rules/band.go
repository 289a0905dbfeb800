package rules

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Band returns the static price band for the given reference price:
// [reference x (1 - b), reference x (1 + b)] with b = StaticBandPercent.
func (r RuleSet) Band(reference decimal.Decimal) (lower, upper decimal.Decimal) {
	lower = reference.Mul(one.Sub(r.StaticBandPercent))
	upper = reference.Mul(one.Add(r.StaticBandPercent))
	return lower, upper
}

// WithinBand reports whether price falls inside the static band around
// reference. Both bounds are inclusive: a price exactly on the limit is
// accepted.
func (r RuleSet) WithinBand(price, reference decimal.Decimal) bool {
	lower, upper := r.Band(reference)
	return price.GreaterThanOrEqual(lower) && price.LessThanOrEqual(upper)
}
