package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioState is the full persisted account state: everything needed to
// restore a session. The JSON layout matches the historical state file
// ("portfolio" keyed by symbol, "cash_balance", "last_update") so blobs
// saved by earlier versions of the simulator remain loadable.
type PortfolioState struct {
	Positions    map[string]Position `json:"portfolio"`
	Transactions []Transaction       `json:"transactions"`
	Cash         decimal.Decimal     `json:"cash_balance"`
	LastUpdate   time.Time           `json:"last_update"`
}

// Clone returns a deep copy so callers can hand the state across goroutine
// boundaries without aliasing ledger internals.
func (s PortfolioState) Clone() PortfolioState {
	out := PortfolioState{
		Positions:    make(map[string]Position, len(s.Positions)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Cash:         s.Cash,
		LastUpdate:   s.LastUpdate,
	}
	for k, v := range s.Positions {
		out.Positions[k] = v
	}
	copy(out.Transactions, s.Transactions)
	return out
}
