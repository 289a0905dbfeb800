package rules

import "github.com/shopspring/decimal"

// Commission returns the brokerage fee for an order with the given gross
// amount: the proportional rate, floored at the minimum commission.
//
// Example: gross 85,000 at 0.6% is 510, below the 5,000 FCFA floor, so the
// fee is 5,000.
func (r RuleSet) Commission(gross decimal.Decimal) decimal.Decimal {
	c := gross.Mul(r.CommissionRate)
	if c.LessThan(r.MinCommission) {
		return r.MinCommission
	}
	return c
}
