package service

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/dto"
	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/engine"
	"github.com/guttosm/brvmsim/internal/market"
)

// topPositionCount caps the ranked holdings list in the performance report.
const topPositionCount = 5

// ReportService computes the account review: returns, costs, allocation
// and risk over the current holdings.
type ReportService interface {
	Performance() dto.PerformanceReport
}

type reportService struct {
	ledger   *engine.Ledger
	registry market.Registry
}

func NewReportService(l *engine.Ledger, reg market.Registry) ReportService {
	return &reportService{ledger: l, registry: reg}
}

func (s *reportService) Performance() dto.PerformanceReport {
	snap := s.ledger.Snapshot()

	invested := decimal.Zero
	for _, pos := range snap.Positions {
		invested = invested.Add(pos.Invested)
	}
	totalReturn := snap.MarketValue.Sub(invested)

	commissions := decimal.Zero
	for _, txn := range s.ledger.History(engine.HistoryFilter{}) {
		commissions = commissions.Add(txn.Commission)
	}

	report := dto.PerformanceReport{
		Invested:         invested,
		CurrentValue:     snap.MarketValue,
		TotalReturn:      totalReturn,
		ReturnPercent:    round2(pct(totalReturn, invested)),
		TotalCommissions: commissions,
		NetReturn:        totalReturn.Sub(commissions),
		SectorAllocation: s.sectorAllocation(snap),
		TopPositions:     topPositions(snap),
		Risk:             s.risk(snap),
	}
	return report
}

func (s *reportService) sectorAllocation(snap models.PortfolioSnapshot) []dto.SectorWeight {
	bySector := map[string]decimal.Decimal{}
	for _, pos := range snap.Positions {
		sector := pos.Sector
		if sector == "" {
			sector = "Autres"
		}
		bySector[sector] = bySector[sector].Add(pos.MarketValue)
	}

	out := make([]dto.SectorWeight, 0, len(bySector))
	for sector, value := range bySector {
		out = append(out, dto.SectorWeight{
			Sector:      sector,
			MarketValue: value,
			Weight:      round2(pct(value, snap.MarketValue)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}

func topPositions(snap models.PortfolioSnapshot) []dto.PositionWeight {
	ranked := make([]dto.PositionWeight, 0, len(snap.Positions))
	for _, pos := range snap.Positions {
		ranked = append(ranked, dto.PositionWeight{
			Symbol:      pos.Symbol,
			MarketValue: pos.MarketValue,
			Weight:      round2(pct(pos.MarketValue, snap.MarketValue)),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].MarketValue.Equal(ranked[j].MarketValue) {
			return ranked[i].MarketValue.GreaterThan(ranked[j].MarketValue)
		}
		return ranked[i].Symbol < ranked[j].Symbol
	})
	if len(ranked) > topPositionCount {
		ranked = ranked[:topPositionCount]
	}
	return ranked
}

// risk grades the portfolio on the four review axes. Thresholds follow the
// BRVM account review sheet: a single line above 20% of the portfolio is
// high concentration, five sectors make a good spread, daily swings above
// 2% are high volatility, and 15,000 shares a day is comfortable liquidity.
func (s *reportService) risk(snap models.PortfolioSnapshot) dto.RiskMetrics {
	m := dto.RiskMetrics{
		ConcentrationLevel:   "low",
		DiversificationLevel: "low",
		VolatilityLevel:      "low",
		LiquidityLevel:       "low",
	}
	if len(snap.Positions) == 0 {
		return m
	}

	sectors := map[string]struct{}{}
	var volatilitySum, volumeSum float64
	var sampled int
	for _, pos := range snap.Positions {
		sectors[pos.Sector] = struct{}{}
		if weight := pct(pos.MarketValue, snap.MarketValue); weight > m.ConcentrationPercent {
			m.ConcentrationPercent = weight
		}
		if in, ok := s.registry.Get(pos.Symbol); ok {
			volatilitySum += math.Abs(in.DailyChangePercent)
			volumeSum += float64(in.AverageDailyVolume)
			sampled++
		}
	}

	m.ConcentrationPercent = round2(m.ConcentrationPercent)
	switch {
	case m.ConcentrationPercent > 20:
		m.ConcentrationLevel = "high"
	case m.ConcentrationPercent > 10:
		m.ConcentrationLevel = "moderate"
	}

	m.SectorCount = len(sectors)
	switch {
	case m.SectorCount >= 5:
		m.DiversificationLevel = "good"
	case m.SectorCount >= 3:
		m.DiversificationLevel = "average"
	}

	if sampled > 0 {
		m.AverageVolatility = round2(volatilitySum / float64(sampled))
		m.AverageVolume = round2(volumeSum / float64(sampled))
	}
	switch {
	case m.AverageVolatility > 2:
		m.VolatilityLevel = "high"
	case m.AverageVolatility > 1:
		m.VolatilityLevel = "moderate"
	}
	switch {
	case m.AverageVolume > 15000:
		m.LiquidityLevel = "good"
	case m.AverageVolume > 8000:
		m.LiquidityLevel = "average"
	}
	return m
}

// pct returns part as a percentage of whole, zero when whole is zero.
func pct(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	v, _ := part.Div(whole).Mul(decimal.NewFromInt(100)).Float64()
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
