package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

// Registry is the read-only catalog of tradable instruments. It stands in
// for a market data feed: reference prices and volumes are the official
// daily sheet values and do not move during a session.
type Registry interface {
	// Get resolves a symbol (case-insensitive) to its instrument.
	Get(symbol string) (models.Instrument, bool)
	// List returns all instruments in symbol-ascending order.
	List() []models.Instrument
}

type registry struct {
	bySymbol map[string]models.Instrument
	ordered  []models.Instrument
}

// NewRegistry builds a Registry from the given instruments.
//
// Behavior:
//   - Symbols are normalized to upper case.
//   - A duplicate symbol overwrites the earlier entry.
//   - Returns an error on an empty set, an empty symbol, a non-positive
//     reference price or a negative average daily volume.
func NewRegistry(instruments []models.Instrument) (Registry, error) {
	if len(instruments) == 0 {
		return nil, fmt.Errorf("no instruments")
	}

	bySymbol := make(map[string]models.Instrument, len(instruments))
	for _, in := range instruments {
		sym := strings.ToUpper(strings.TrimSpace(in.Symbol))
		if sym == "" {
			return nil, fmt.Errorf("instrument with empty symbol")
		}
		if !in.ReferencePrice.IsPositive() {
			return nil, fmt.Errorf("instrument %s: reference price %s is not positive", sym, in.ReferencePrice)
		}
		if in.AverageDailyVolume < 0 {
			return nil, fmt.Errorf("instrument %s: negative average daily volume %d", sym, in.AverageDailyVolume)
		}
		in.Symbol = sym
		bySymbol[sym] = in
	}

	ordered := make([]models.Instrument, 0, len(bySymbol))
	for _, in := range bySymbol {
		ordered = append(ordered, in)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Symbol < ordered[j].Symbol })

	return &registry{bySymbol: bySymbol, ordered: ordered}, nil
}

// NewStaticRegistry returns the built-in BRVM catalog.
func NewStaticRegistry() Registry {
	r, err := NewRegistry(defaultCatalog())
	if err != nil {
		// The built-in catalog is compile-time data; a failure here is a bug.
		panic(fmt.Sprintf("built-in catalog invalid: %v", err))
	}
	return r
}

func (r *registry) Get(symbol string) (models.Instrument, bool) {
	in, ok := r.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return in, ok
}

func (r *registry) List() []models.Instrument {
	out := make([]models.Instrument, len(r.ordered))
	copy(out, r.ordered)
	return out
}
