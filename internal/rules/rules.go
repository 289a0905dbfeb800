package rules

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/config"
)

// RuleSet is the effective BRVM regulation applied to every order.
// Values are fixed at startup; nothing here mutates during a session.
//
// Fields:
//   - TradingOpen / TradingClose: session bounds in minutes since midnight,
//     evaluated in Location. Both bounds are inclusive.
//   - SettlementLagDays: calendar days between execution and settlement.
//   - StaticBandPercent: half-width of the price band around the reference
//     price (0.075 means +/-7.5%).
//   - CommissionRate / MinCommission: proportional fee and its floor.
//   - MaxOrderVolumeFraction: buy orders may not exceed this fraction of an
//     instrument's average daily volume.
//   - MinLotSize: quantities must be positive multiples of this.
type RuleSet struct {
	TradingOpen            int
	TradingClose           int
	SettlementLagDays      int
	StaticBandPercent      decimal.Decimal
	CommissionRate         decimal.Decimal
	MinCommission          decimal.Decimal
	MaxOrderVolumeFraction decimal.Decimal
	MinLotSize             int64
	Location               *time.Location
}

// Default returns the BRVM rule book values: 08:00-15:30 session, J+3
// settlement, +/-7.5% static band, 0.6% commission with a 5,000 FCFA floor,
// 10% liquidity cap, lot size 1.
func Default() RuleSet {
	return RuleSet{
		TradingOpen:            8 * 60,
		TradingClose:           15*60 + 30,
		SettlementLagDays:      3,
		StaticBandPercent:      decimal.NewFromFloat(0.075),
		CommissionRate:         decimal.NewFromFloat(0.006),
		MinCommission:          decimal.NewFromInt(5000),
		MaxOrderVolumeFraction: decimal.NewFromFloat(0.10),
		MinLotSize:             1,
		Location:               time.UTC,
	}
}

// FromConfig builds a RuleSet from the loaded market configuration.
//
// Returns an error when the session bounds do not parse, are inverted, or
// the time zone is unknown. Range checks on the numeric parameters happen
// in config validation; this only guards what config cannot express.
func FromConfig(cfg config.MarketConfig) (RuleSet, error) {
	open, err := parseClock(cfg.TradingOpen)
	if err != nil {
		return RuleSet{}, fmt.Errorf("TRADING_OPEN: %w", err)
	}
	closeAt, err := parseClock(cfg.TradingClose)
	if err != nil {
		return RuleSet{}, fmt.Errorf("TRADING_CLOSE: %w", err)
	}
	if open >= closeAt {
		return RuleSet{}, fmt.Errorf("trading window %q-%q is empty", cfg.TradingOpen, cfg.TradingClose)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return RuleSet{}, fmt.Errorf("MARKET_TIMEZONE: %w", err)
	}

	return RuleSet{
		TradingOpen:            open,
		TradingClose:           closeAt,
		SettlementLagDays:      cfg.SettlementLagDays,
		StaticBandPercent:      decimal.NewFromFloat(cfg.StaticBandPercent),
		CommissionRate:         decimal.NewFromFloat(cfg.CommissionRate),
		MinCommission:          decimal.NewFromFloat(cfg.MinCommission),
		MaxOrderVolumeFraction: decimal.NewFromFloat(cfg.MaxOrderVolumeFraction),
		MinLotSize:             cfg.MinLotSize,
		Location:               loc,
	}, nil
}

// MaxBuyQuantity returns the largest buy order the liquidity rule allows
// for an instrument with the given average daily volume.
func (r RuleSet) MaxBuyQuantity(averageDailyVolume int64) int64 {
	return decimal.NewFromInt(averageDailyVolume).Mul(r.MaxOrderVolumeFraction).Floor().IntPart()
}

// ValidQuantity reports whether q is a positive integer multiple of the
// minimum lot size.
func (r RuleSet) ValidQuantity(q int64) bool {
	return q > 0 && q%r.MinLotSize == 0
}

// SettlementDate returns the settlement date for an execution at t:
// t plus the settlement lag in calendar days, no business-day adjustment.
func (r RuleSet) SettlementDate(t time.Time) time.Time {
	return t.AddDate(0, 0, r.SettlementLagDays)
}

// SessionHours returns the session bounds as "HH:MM" strings.
func (r RuleSet) SessionHours() (opens, closes string) {
	return formatClock(r.TradingOpen), formatClock(r.TradingClose)
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock %q, want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// formatClock renders minutes since midnight as "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
