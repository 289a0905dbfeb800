package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/guttosm/brvmsim/internal/domain/dto"
	"github.com/guttosm/brvmsim/internal/domain/models"
)

// Column layouts are part of the export contract; downstream spreadsheets
// key on these names, so they never change order or spelling.
var (
	transactionHeader = []string{
		"id", "timestamp", "symbol", "side", "quantity", "price",
		"gross_amount", "commission", "net_cash_flow", "settlement_date",
	}
	positionHeader = []string{
		"symbol", "quantity", "average_cost", "reference_price",
		"market_value", "invested", "unrealized_gain", "sector",
	}
	summaryHeader = []string{"metric", "value"}
)

// WriteTransactionsCSV writes txns as CSV, header row first. The same
// layout backs the API download endpoint and export mode.
func WriteTransactionsCSV(w io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return err
	}
	for _, t := range txns {
		record := []string{
			t.ID,
			t.Timestamp.Format(time.RFC3339),
			t.Symbol,
			string(t.Side),
			strconv.FormatInt(t.Quantity, 10),
			t.Price.String(),
			t.GrossAmount.String(),
			t.Commission.String(),
			t.NetCashFlow.String(),
			t.SettlementDate.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePositions(w io.Writer, snap models.PortfolioSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(positionHeader); err != nil {
		return err
	}
	for _, p := range snap.Positions {
		record := []string{
			p.Symbol,
			strconv.FormatInt(p.Quantity, 10),
			p.AverageCost.String(),
			p.ReferencePrice.String(),
			p.MarketValue.String(),
			p.Invested.String(),
			p.UnrealizedGain.String(),
			p.Sector,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSummary(w io.Writer, snap models.PortfolioSnapshot, report dto.PerformanceReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	rows := [][2]string{
		{"cash", snap.Cash.String()},
		{"market_value", snap.MarketValue.String()},
		{"total_wealth", snap.TotalWealth.String()},
		{"invested", report.Invested.String()},
		{"total_return", report.TotalReturn.String()},
		{"return_percent", strconv.FormatFloat(report.ReturnPercent, 'f', -1, 64)},
		{"total_commissions", report.TotalCommissions.String()},
		{"net_return", report.NetReturn.String()},
	}
	for _, r := range rows {
		if err := cw.Write(r[:]); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
