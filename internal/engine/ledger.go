package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/logger"
	"github.com/guttosm/brvmsim/internal/market"
	"github.com/guttosm/brvmsim/internal/rules"
)

// Ledger owns the investor account: cash, positions and the append-only
// transaction log. It is the single writer of account state.
//
// One mutex serializes every entry point; an order is validated and
// executed inside the same critical section, so the state a validation
// saw is exactly the state the execution mutates.
type Ledger struct {
	mu           sync.Mutex
	registry     market.Registry
	rules        rules.RuleSet
	cash         decimal.Decimal
	positions    map[string]models.Position
	transactions []models.Transaction

	// seams for tests
	now   func() time.Time
	newID func() string

	log zerolog.Logger
}

// HistoryFilter narrows History results. Zero values mean "no filter".
type HistoryFilter struct {
	Symbol string
	Side   models.Side
}

// NewLedger returns a fresh account holding initialCash and no positions.
func NewLedger(reg market.Registry, rs rules.RuleSet, initialCash decimal.Decimal) *Ledger {
	return &Ledger{
		registry:  reg,
		rules:     rs,
		cash:      initialCash,
		positions: make(map[string]models.Position),
		now:       time.Now,
		newID:     uuid.NewString,
		log:       logger.With("ledger"),
	}
}

// SubmitOrder validates and, if every check passes, executes the order
// atomically: cash moves, the position is upserted or reduced, and the
// transaction is appended, all under one lock. A returned *Rejection means
// the account state is untouched.
func (l *Ledger) SubmitOrder(o models.Order) (models.Transaction, error) {
	if o.Side != models.Buy && o.Side != models.Sell {
		return models.Transaction{}, fmt.Errorf("invalid order side %q", o.Side)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	terms, rej := evaluateOrder(l.registry, l.rules, l.cash, l.positions, o)
	if rej != nil {
		l.log.Warn().
			Str("symbol", o.Symbol).
			Str("side", string(o.Side)).
			Int64("quantity", o.Quantity).
			Str("reason", rej.ReasonCode()).
			Msg("order rejected")
		return models.Transaction{}, rej
	}

	ts := l.now()
	txn := models.Transaction{
		ID:             l.newID(),
		Timestamp:      ts,
		Symbol:         terms.instrument.Symbol,
		Side:           o.Side,
		Quantity:       o.Quantity,
		Price:          terms.price,
		GrossAmount:    terms.gross,
		Commission:     terms.commission,
		SettlementDate: l.rules.SettlementDate(ts),
	}

	switch o.Side {
	case models.Buy:
		total := terms.gross.Add(terms.commission)
		l.cash = l.cash.Sub(total)
		txn.NetCashFlow = total.Neg()
		l.applyBuy(terms, o.Quantity)
	case models.Sell:
		net := terms.gross.Sub(terms.commission)
		l.cash = l.cash.Add(net)
		txn.NetCashFlow = net
		l.applySell(terms.instrument.Symbol, o.Quantity)
	}

	l.transactions = append(l.transactions, txn)

	l.log.Info().
		Str("id", txn.ID).
		Str("symbol", txn.Symbol).
		Str("side", string(txn.Side)).
		Int64("quantity", txn.Quantity).
		Str("price", txn.Price.String()).
		Str("commission", txn.Commission.String()).
		Str("cash", l.cash.String()).
		Msg("order executed")

	return txn, nil
}

// applyBuy upserts the position, re-averaging the acquisition cost over
// the combined quantity: newAvg = (heldQty*heldAvg + qty*price) / total.
func (l *Ledger) applyBuy(t orderTerms, qty int64) {
	sym := t.instrument.Symbol
	pos, ok := l.positions[sym]
	if !ok {
		l.positions[sym] = models.Position{
			Symbol:      sym,
			Quantity:    qty,
			AverageCost: t.price,
			Sector:      t.instrument.Sector,
		}
		return
	}

	newQty := pos.Quantity + qty
	heldValue := decimal.NewFromInt(pos.Quantity).Mul(pos.AverageCost)
	addedValue := decimal.NewFromInt(qty).Mul(t.price)
	pos.AverageCost = heldValue.Add(addedValue).Div(decimal.NewFromInt(newQty))
	pos.Quantity = newQty
	l.positions[sym] = pos
}

// applySell reduces the position. The average cost is unchanged by sells;
// a position sold down to zero is removed.
func (l *Ledger) applySell(symbol string, qty int64) {
	pos := l.positions[symbol]
	pos.Quantity -= qty
	if pos.Quantity == 0 {
		delete(l.positions, symbol)
		return
	}
	l.positions[symbol] = pos
}

// Snapshot values the account at current reference prices.
//
// A position whose symbol has left the catalog (possible after restoring
// an old blob) is valued at its average cost and flagged in the log.
func (l *Ledger) Snapshot() models.PortfolioSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := models.PortfolioSnapshot{
		Cash:        l.cash,
		Positions:   make([]models.PositionValuation, 0, len(l.positions)),
		MarketValue: decimal.Zero,
		TakenAt:     l.now(),
	}

	for _, pos := range l.positions {
		ref := pos.AverageCost
		if in, ok := l.registry.Get(pos.Symbol); ok {
			ref = in.ReferencePrice
		} else {
			l.log.Warn().Str("symbol", pos.Symbol).Msg("position not in catalog, valuing at average cost")
		}
		qty := decimal.NewFromInt(pos.Quantity)
		v := models.PositionValuation{
			Position:       pos,
			ReferencePrice: ref,
			MarketValue:    qty.Mul(ref),
			Invested:       qty.Mul(pos.AverageCost),
		}
		v.UnrealizedGain = v.MarketValue.Sub(v.Invested)
		snap.Positions = append(snap.Positions, v)
		snap.MarketValue = snap.MarketValue.Add(v.MarketValue)
	}
	sort.Slice(snap.Positions, func(i, j int) bool { return snap.Positions[i].Symbol < snap.Positions[j].Symbol })

	snap.TotalWealth = snap.Cash.Add(snap.MarketValue)
	return snap
}

// History returns transactions matching the filter, oldest first.
// Transactions are appended in execution order, so no re-sort is needed.
func (l *Ledger) History(f HistoryFilter) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if f.Symbol != "" && t.Symbol != f.Symbol {
			continue
		}
		if f.Side != "" && t.Side != f.Side {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ExportState copies the full account state out for persistence.
func (l *Ledger) ExportState() models.PortfolioState {
	l.mu.Lock()
	defer l.mu.Unlock()

	st := models.PortfolioState{
		Positions:    l.positions,
		Transactions: l.transactions,
		Cash:         l.cash,
		LastUpdate:   l.now(),
	}
	return st.Clone()
}

// RestoreState replaces the account wholesale with a persisted state.
// Restoring the same state twice is a no-op the second time.
func (l *Ledger) RestoreState(st models.PortfolioState) {
	l.mu.Lock()
	defer l.mu.Unlock()

	st = st.Clone()
	if st.Positions == nil {
		st.Positions = make(map[string]models.Position)
	}
	l.cash = st.Cash
	l.positions = st.Positions
	l.transactions = st.Transactions

	l.log.Info().
		Str("cash", l.cash.String()).
		Int("positions", len(l.positions)).
		Int("transactions", len(l.transactions)).
		Msg("state restored")
}
