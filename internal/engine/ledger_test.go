package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/market"
	"github.com/guttosm/brvmsim/internal/rules"
)

var testClock = time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC) // Monday, mid-session

// newTestLedger returns a ledger over the built-in catalog with the BRVM
// default rules, 1,000,000 FCFA and deterministic clock/id seams.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger(market.NewStaticRegistry(), rules.Default(), decimal.NewFromInt(1_000_000))
	l.now = func() time.Time { return testClock }
	seq := 0
	l.newID = func() string {
		seq++
		return fmt.Sprintf("txn-%04d", seq)
	}
	return l
}

func buy(symbol string, qty int64) models.Order {
	return models.Order{Symbol: symbol, Side: models.Buy, Quantity: qty}
}

func sell(symbol string, qty int64) models.Order {
	return models.Order{Symbol: symbol, Side: models.Sell, Quantity: qty}
}

func withLimit(o models.Order, price int64) models.Order {
	p := decimal.NewFromInt(price)
	o.LimitPrice = &p
	return o
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// Buy at reference: gross 85,000, the 0.6% fee (510) is floored at 5,000,
// so 90,000 FCFA leave the account and 10 shares arrive at cost 8,500.
func TestSubmitOrder_BuyAtReference(t *testing.T) {
	l := newTestLedger(t)

	txn, err := l.SubmitOrder(buy("BICC", 10))
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if txn.ID != "txn-0001" || txn.Symbol != "BICC" || txn.Side != models.Buy {
		t.Fatalf("unexpected transaction: %+v", txn)
	}
	if !txn.Price.Equal(decimal.NewFromInt(8500)) {
		t.Fatalf("price=%s, want 8500", txn.Price)
	}
	if !txn.GrossAmount.Equal(decimal.NewFromInt(85_000)) {
		t.Fatalf("gross=%s, want 85000", txn.GrossAmount)
	}
	if !txn.Commission.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("commission=%s, want 5000", txn.Commission)
	}
	if !txn.NetCashFlow.Equal(decimal.NewFromInt(-90_000)) {
		t.Fatalf("net cash flow=%s, want -90000", txn.NetCashFlow)
	}
	if want := testClock.AddDate(0, 0, 3); !txn.SettlementDate.Equal(want) {
		t.Fatalf("settlement=%v, want %v", txn.SettlementDate, want)
	}

	snap := l.Snapshot()
	if !snap.Cash.Equal(decimal.NewFromInt(910_000)) {
		t.Fatalf("cash=%s, want 910000", snap.Cash)
	}
	if len(snap.Positions) != 1 {
		t.Fatalf("want 1 position, got %d", len(snap.Positions))
	}
	pos := snap.Positions[0]
	if pos.Symbol != "BICC" || pos.Quantity != 10 || !pos.AverageCost.Equal(decimal.NewFromInt(8500)) {
		t.Fatalf("unexpected position: %+v", pos)
	}
	if pos.Sector != "Construction" {
		t.Fatalf("sector=%q, want Construction", pos.Sector)
	}
}

// Selling shares that were never bought must not move anything.
func TestSubmitOrder_SellWithoutHoldings(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.SubmitOrder(sell("SGBC", 5))
	rej := asRejection(t, err, ErrInsufficientHoldings)
	if rej.RequiredQuantity != 5 || rej.AvailableQuantity != 0 {
		t.Fatalf("unexpected context: %+v", rej)
	}

	snap := l.Snapshot()
	if !snap.Cash.Equal(decimal.NewFromInt(1_000_000)) || len(snap.Positions) != 0 {
		t.Fatalf("state changed after rejection: %+v", snap)
	}
	if len(l.History(HistoryFilter{})) != 0 {
		t.Fatal("rejected order must not be recorded")
	}
}

// A limit of 9,200 against reference 8,500 falls outside [7862.5, 9137.5].
func TestSubmitOrder_LimitOutsideBand(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.SubmitOrder(withLimit(buy("BICC", 10), 9200))
	rej := asRejection(t, err, ErrPriceOutOfBand)
	if !rej.BandLower.Equal(mustDecimal(t, "7862.5")) || !rej.BandUpper.Equal(mustDecimal(t, "9137.5")) {
		t.Fatalf("unexpected band: [%s, %s]", rej.BandLower, rej.BandUpper)
	}
}

// Two buys at different prices re-average the cost over the total quantity:
// (10x8500 + 10x9000) / 20 = 8750.
func TestSubmitOrder_BuyReaveragesCost(t *testing.T) {
	l := newTestLedger(t)

	if _, err := l.SubmitOrder(buy("BICC", 10)); err != nil {
		t.Fatalf("first buy: %v", err)
	}
	if _, err := l.SubmitOrder(withLimit(buy("BICC", 10), 9000)); err != nil {
		t.Fatalf("second buy: %v", err)
	}

	snap := l.Snapshot()
	if len(snap.Positions) != 1 {
		t.Fatalf("want 1 position, got %d", len(snap.Positions))
	}
	pos := snap.Positions[0]
	if pos.Quantity != 20 {
		t.Fatalf("quantity=%d, want 20", pos.Quantity)
	}
	if !pos.AverageCost.Equal(decimal.NewFromInt(8750)) {
		t.Fatalf("average cost=%s, want 8750", pos.AverageCost)
	}
	// 90,000 for the first buy, 95,000 for the second (9,000 gross x 10 + 5,000 fee).
	if !snap.Cash.Equal(decimal.NewFromInt(815_000)) {
		t.Fatalf("cash=%s, want 815000", snap.Cash)
	}
}

// Sells leave the average cost alone and remove the position at zero.
func TestSubmitOrder_SellKeepsAverageCost(t *testing.T) {
	l := newTestLedger(t)

	if _, err := l.SubmitOrder(buy("BICC", 10)); err != nil {
		t.Fatalf("buy: %v", err)
	}

	txn, err := l.SubmitOrder(sell("BICC", 4))
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	// gross 34,000, fee floored at 5,000, so +29,000.
	if !txn.NetCashFlow.Equal(decimal.NewFromInt(29_000)) {
		t.Fatalf("net cash flow=%s, want 29000", txn.NetCashFlow)
	}

	snap := l.Snapshot()
	pos := snap.Positions[0]
	if pos.Quantity != 6 || !pos.AverageCost.Equal(decimal.NewFromInt(8500)) {
		t.Fatalf("unexpected position after partial sell: %+v", pos)
	}

	if _, err := l.SubmitOrder(sell("BICC", 6)); err != nil {
		t.Fatalf("closing sell: %v", err)
	}
	if snap = l.Snapshot(); len(snap.Positions) != 0 {
		t.Fatalf("position not removed at zero quantity: %+v", snap.Positions)
	}
}

func TestSubmitOrder_InvalidSide(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.SubmitOrder(models.Order{Symbol: "BICC", Side: "HOLD", Quantity: 1}); err == nil {
		t.Fatal("expected error for invalid side")
	}
}

func TestHistory_Filters(t *testing.T) {
	l := newTestLedger(t)

	orders := []models.Order{
		buy("BICC", 10),
		buy("ETIT", 100),
		sell("BICC", 5),
		buy("BICC", 2),
	}
	for i, o := range orders {
		if _, err := l.SubmitOrder(o); err != nil {
			t.Fatalf("order %d: %v", i, err)
		}
	}

	cases := []struct {
		name   string
		filter HistoryFilter
		want   []string // expected transaction IDs, oldest first
	}{
		{"all", HistoryFilter{}, []string{"txn-0001", "txn-0002", "txn-0003", "txn-0004"}},
		{"by symbol", HistoryFilter{Symbol: "BICC"}, []string{"txn-0001", "txn-0003", "txn-0004"}},
		{"by side", HistoryFilter{Side: models.Sell}, []string{"txn-0003"}},
		{"symbol and side", HistoryFilter{Symbol: "BICC", Side: models.Buy}, []string{"txn-0001", "txn-0004"}},
		{"no match", HistoryFilter{Symbol: "SGBC"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := l.History(tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d transactions, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestExportRestore_RoundTrip(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.SubmitOrder(buy("BICC", 10)); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if _, err := l.SubmitOrder(buy("SNTS", 20)); err != nil {
		t.Fatalf("buy: %v", err)
	}

	st := l.ExportState()

	restored := newTestLedger(t)
	restored.RestoreState(st)

	a, b := l.Snapshot(), restored.Snapshot()
	if !a.Cash.Equal(b.Cash) || !a.TotalWealth.Equal(b.TotalWealth) || len(a.Positions) != len(b.Positions) {
		t.Fatalf("snapshots differ:\n%+v\n%+v", a, b)
	}
	if len(l.History(HistoryFilter{})) != len(restored.History(HistoryFilter{})) {
		t.Fatal("history length differs after restore")
	}

	// Restoring the same state again must change nothing.
	restored.RestoreState(st)
	c := restored.Snapshot()
	if !b.Cash.Equal(c.Cash) || len(b.Positions) != len(c.Positions) {
		t.Fatal("second restore of the same state changed the account")
	}
}

func TestExportState_IsACopy(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.SubmitOrder(buy("BICC", 10)); err != nil {
		t.Fatalf("buy: %v", err)
	}

	st := l.ExportState()
	st.Positions["BICC"] = models.Position{Symbol: "BICC", Quantity: 999}
	st.Transactions[0].Symbol = "MUTATED"

	snap := l.Snapshot()
	if snap.Positions[0].Quantity != 10 {
		t.Fatal("exported state aliases ledger positions")
	}
	if l.History(HistoryFilter{})[0].Symbol != "BICC" {
		t.Fatal("exported state aliases ledger transactions")
	}
}

func TestSnapshot_MarkToMarket(t *testing.T) {
	l := newTestLedger(t)
	// Buy above reference so market value sits below invested value.
	if _, err := l.SubmitOrder(withLimit(buy("BICC", 10), 9000)); err != nil {
		t.Fatalf("buy: %v", err)
	}

	snap := l.Snapshot()
	pos := snap.Positions[0]
	if !pos.ReferencePrice.Equal(decimal.NewFromInt(8500)) {
		t.Fatalf("reference=%s, want 8500", pos.ReferencePrice)
	}
	if !pos.MarketValue.Equal(decimal.NewFromInt(85_000)) || !pos.Invested.Equal(decimal.NewFromInt(90_000)) {
		t.Fatalf("valuation off: %+v", pos)
	}
	if !pos.UnrealizedGain.Equal(decimal.NewFromInt(-5_000)) {
		t.Fatalf("unrealized=%s, want -5000", pos.UnrealizedGain)
	}
	if !snap.TotalWealth.Equal(snap.Cash.Add(snap.MarketValue)) {
		t.Fatal("total wealth is not cash + market value")
	}
}

func asRejection(t *testing.T, err error, wantReason error) *Rejection {
	t.Helper()
	if err == nil {
		t.Fatal("expected a rejection, got nil")
	}
	rej, ok := err.(*Rejection)
	if !ok {
		t.Fatalf("expected *Rejection, got %T: %v", err, err)
	}
	if rej.Reason != wantReason {
		t.Fatalf("reason=%v, want %v", rej.Reason, wantReason)
	}
	return rej
}
