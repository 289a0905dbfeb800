package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/engine"
	"github.com/guttosm/brvmsim/internal/market"
	"github.com/guttosm/brvmsim/internal/rules"
)

func newReportFixture(t *testing.T) (*engine.Ledger, ReportService) {
	t.Helper()
	reg := market.NewStaticRegistry()
	l := engine.NewLedger(reg, rules.Default(), decimal.NewFromInt(1_000_000))
	return l, NewReportService(l, reg)
}

func mustBuy(t *testing.T, l *engine.Ledger, symbol string, qty int64, limit int64) {
	t.Helper()
	o := models.Order{Symbol: symbol, Side: models.Buy, Quantity: qty}
	if limit > 0 {
		p := decimal.NewFromInt(limit)
		o.LimitPrice = &p
	}
	if _, err := l.SubmitOrder(o); err != nil {
		t.Fatalf("buy %d %s: %v", qty, symbol, err)
	}
}

func TestPerformance_EmptyAccount(t *testing.T) {
	_, svc := newReportFixture(t)

	r := svc.Performance()
	if !r.Invested.IsZero() || !r.CurrentValue.IsZero() || !r.TotalCommissions.IsZero() {
		t.Fatalf("empty account reported money: %+v", r)
	}
	if r.ReturnPercent != 0 {
		t.Fatalf("return percent=%v, want 0", r.ReturnPercent)
	}
	if len(r.SectorAllocation) != 0 || len(r.TopPositions) != 0 {
		t.Fatalf("empty account reported holdings: %+v", r)
	}
	risk := r.Risk
	if risk.ConcentrationLevel != "low" || risk.DiversificationLevel != "low" ||
		risk.VolatilityLevel != "low" || risk.LiquidityLevel != "low" {
		t.Fatalf("empty account risk should be all low: %+v", risk)
	}
}

// One buy at reference: no unrealized move, so the only loss is the fee.
func TestPerformance_SinglePosition(t *testing.T) {
	l, svc := newReportFixture(t)
	mustBuy(t, l, "BICC", 10, 0)

	r := svc.Performance()
	if !r.Invested.Equal(decimal.NewFromInt(85_000)) || !r.CurrentValue.Equal(decimal.NewFromInt(85_000)) {
		t.Fatalf("invested=%s current=%s, want 85000/85000", r.Invested, r.CurrentValue)
	}
	if !r.TotalReturn.IsZero() || r.ReturnPercent != 0 {
		t.Fatalf("return=%s/%v, want zero", r.TotalReturn, r.ReturnPercent)
	}
	if !r.TotalCommissions.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("commissions=%s, want 5000", r.TotalCommissions)
	}
	if !r.NetReturn.Equal(decimal.NewFromInt(-5000)) {
		t.Fatalf("net return=%s, want -5000", r.NetReturn)
	}

	if len(r.TopPositions) != 1 || r.TopPositions[0].Symbol != "BICC" || r.TopPositions[0].Weight != 100 {
		t.Fatalf("unexpected top positions: %+v", r.TopPositions)
	}
	if len(r.SectorAllocation) != 1 || r.SectorAllocation[0].Sector != "Construction" {
		t.Fatalf("unexpected allocation: %+v", r.SectorAllocation)
	}

	risk := r.Risk
	if risk.ConcentrationPercent != 100 || risk.ConcentrationLevel != "high" {
		t.Fatalf("concentration=%v/%s, want 100/high", risk.ConcentrationPercent, risk.ConcentrationLevel)
	}
	if risk.SectorCount != 1 || risk.DiversificationLevel != "low" {
		t.Fatalf("diversification=%d/%s", risk.SectorCount, risk.DiversificationLevel)
	}
	// BICC swings 2.5% a day and trades 15,000 shares.
	if risk.AverageVolatility != 2.5 || risk.VolatilityLevel != "high" {
		t.Fatalf("volatility=%v/%s", risk.AverageVolatility, risk.VolatilityLevel)
	}
	if risk.AverageVolume != 15000 || risk.LiquidityLevel != "average" {
		t.Fatalf("liquidity=%v/%s, want 15000/average", risk.AverageVolume, risk.LiquidityLevel)
	}
}

func TestPerformance_TwoSectors(t *testing.T) {
	l, svc := newReportFixture(t)
	mustBuy(t, l, "BICC", 10, 0)  // 85,000 in Construction
	mustBuy(t, l, "SNTS", 100, 0) // 465,000 in Transport

	r := svc.Performance()
	if !r.Invested.Equal(decimal.NewFromInt(550_000)) {
		t.Fatalf("invested=%s, want 550000", r.Invested)
	}
	if !r.TotalCommissions.Equal(decimal.NewFromInt(10_000)) {
		t.Fatalf("commissions=%s, want 10000", r.TotalCommissions)
	}

	if len(r.SectorAllocation) != 2 {
		t.Fatalf("allocation=%+v, want 2 sectors", r.SectorAllocation)
	}
	// Sorted by weight, largest first.
	if r.SectorAllocation[0].Sector != "Transport" || r.SectorAllocation[0].Weight != 84.55 {
		t.Fatalf("allocation[0]=%+v, want Transport at 84.55", r.SectorAllocation[0])
	}
	if r.SectorAllocation[1].Sector != "Construction" || r.SectorAllocation[1].Weight != 15.45 {
		t.Fatalf("allocation[1]=%+v, want Construction at 15.45", r.SectorAllocation[1])
	}

	if r.TopPositions[0].Symbol != "SNTS" || r.TopPositions[1].Symbol != "BICC" {
		t.Fatalf("top positions out of order: %+v", r.TopPositions)
	}

	risk := r.Risk
	if risk.ConcentrationPercent != 84.55 || risk.ConcentrationLevel != "high" {
		t.Fatalf("concentration=%v/%s", risk.ConcentrationPercent, risk.ConcentrationLevel)
	}
	if risk.SectorCount != 2 || risk.DiversificationLevel != "low" {
		t.Fatalf("diversification=%d/%s", risk.SectorCount, risk.DiversificationLevel)
	}
	// (2.5 + 2.1) / 2 and (15000 + 9800) / 2.
	if risk.AverageVolatility != 2.3 || risk.AverageVolume != 12400 {
		t.Fatalf("averages=%v/%v, want 2.3/12400", risk.AverageVolatility, risk.AverageVolume)
	}
}

// Buying above reference books an immediate unrealized loss.
func TestPerformance_UnrealizedLoss(t *testing.T) {
	l, svc := newReportFixture(t)
	mustBuy(t, l, "BICC", 10, 9000)

	r := svc.Performance()
	if !r.Invested.Equal(decimal.NewFromInt(90_000)) || !r.CurrentValue.Equal(decimal.NewFromInt(85_000)) {
		t.Fatalf("invested=%s current=%s", r.Invested, r.CurrentValue)
	}
	if !r.TotalReturn.Equal(decimal.NewFromInt(-5000)) {
		t.Fatalf("total return=%s, want -5000", r.TotalReturn)
	}
	// -5000 / 90000 = -5.56% after rounding.
	if r.ReturnPercent != -5.56 {
		t.Fatalf("return percent=%v, want -5.56", r.ReturnPercent)
	}
	if !r.NetReturn.Equal(decimal.NewFromInt(-10_000)) {
		t.Fatalf("net return=%s, want -10000", r.NetReturn)
	}
}
