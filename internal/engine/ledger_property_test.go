package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/market"
	"github.com/guttosm/brvmsim/internal/rules"
)

// Whatever sequence of orders hits the ledger, accepted or refused, the
// books must balance: initial cash plus the sum of signed cash flows is the
// cash on hand, cash never goes negative, every held quantity stays
// positive, and a rejection leaves the account exactly as it found it.
func TestLedger_Properties(t *testing.T) {
	reg := market.NewStaticRegistry()
	instruments := reg.List()
	initial := decimal.NewFromInt(1_000_000)

	rapid.Check(t, func(t *rapid.T) {
		l := NewLedger(reg, rules.Default(), initial)
		held := map[string]int64{}

		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			idx := rapid.IntRange(0, len(instruments)).Draw(t, "symbol")
			symbol := "ZZZZ" // one past the end means an unlisted symbol
			if idx < len(instruments) {
				symbol = instruments[idx].Symbol
			}
			o := models.Order{
				Symbol:   symbol,
				Side:     rapid.SampledFrom([]models.Side{models.Buy, models.Sell}).Draw(t, "side"),
				Quantity: rapid.Int64Range(-10, 800).Draw(t, "quantity"),
			}
			if rapid.Bool().Draw(t, "with_limit") && idx < len(instruments) {
				pct := rapid.Int64Range(80, 120).Draw(t, "limit_pct")
				p := instruments[idx].ReferencePrice.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100))
				o.LimitPrice = &p
			}

			before := l.Snapshot()
			txn, err := l.SubmitOrder(o)
			if err != nil {
				var rej *Rejection
				if !errors.As(err, &rej) {
					t.Fatalf("step %d: non-rejection error: %v", i, err)
				}
				after := l.Snapshot()
				if !before.Cash.Equal(after.Cash) || len(before.Positions) != len(after.Positions) {
					t.Fatalf("step %d: rejection %s moved the account", i, rej.ReasonCode())
				}
				continue
			}

			switch txn.Side {
			case models.Buy:
				held[txn.Symbol] += txn.Quantity
			case models.Sell:
				held[txn.Symbol] -= txn.Quantity
			}
		}

		snap := l.Snapshot()

		flows := decimal.Zero
		for _, txn := range l.History(HistoryFilter{}) {
			flows = flows.Add(txn.NetCashFlow)
		}
		if want := initial.Add(flows); !snap.Cash.Equal(want) {
			t.Fatalf("cash=%s, initial plus flows=%s", snap.Cash, want)
		}
		if snap.Cash.IsNegative() {
			t.Fatalf("cash went negative: %s", snap.Cash)
		}

		for _, pos := range snap.Positions {
			if pos.Quantity <= 0 {
				t.Fatalf("non-positive position survived: %+v", pos)
			}
			if held[pos.Symbol] != pos.Quantity {
				t.Fatalf("%s: ledger holds %d, trades sum to %d", pos.Symbol, pos.Quantity, held[pos.Symbol])
			}
		}
		for sym, qty := range held {
			if qty == 0 {
				continue
			}
			found := false
			for _, pos := range snap.Positions {
				found = found || pos.Symbol == sym
			}
			if !found {
				t.Fatalf("%s: trades sum to %d but the position is gone", sym, qty)
			}
		}
	})
}
