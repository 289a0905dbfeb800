package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/engine"
	"github.com/guttosm/brvmsim/internal/logger"
	"github.com/guttosm/brvmsim/internal/storage"
)

// TradingService fronts the ledger and keeps it in sync with the state
// store. It owns the revision token the store hands out, so every save goes
// through the optimistic check.
type TradingService interface {
	// SubmitOrder executes the order and, on success, persists the new
	// state in the background of the call. A persistence failure is logged
	// and reported by the next explicit SaveState; it never undoes the
	// trade.
	SubmitOrder(ctx context.Context, o models.Order) (models.Transaction, error)

	// Snapshot values the account at current reference prices.
	Snapshot() models.PortfolioSnapshot

	// History lists executed transactions, oldest first.
	History(f engine.HistoryFilter) []models.Transaction

	// SaveState persists the current state and returns the new revision.
	// storage.ErrConflict means another writer moved the store forward.
	SaveState(ctx context.Context) (string, error)

	// LoadState replaces the account with the stored state and returns its
	// revision. With nothing stored it returns storage.ErrNotFound and the
	// account is left as it is.
	LoadState(ctx context.Context) (string, error)

	// Revision returns the store revision this service last saw.
	Revision() string
}

type tradingService struct {
	ledger *engine.Ledger
	store  storage.StateStore

	mu  sync.Mutex // guards rev
	rev string

	log zerolog.Logger
}

// NewTradingService wires a ledger to a state store.
func NewTradingService(l *engine.Ledger, store storage.StateStore) TradingService {
	return &tradingService{
		ledger: l,
		store:  store,
		log:    logger.With("trading"),
	}
}

func (s *tradingService) SubmitOrder(ctx context.Context, o models.Order) (models.Transaction, error) {
	txn, err := s.ledger.SubmitOrder(o)
	if err != nil {
		return models.Transaction{}, err
	}

	if _, err := s.persist(ctx); err != nil {
		// The trade stands; only its durability is behind.
		s.log.Error().Err(err).Str("transaction", txn.ID).Msg("autosave failed, state not persisted")
	}
	return txn, nil
}

func (s *tradingService) Snapshot() models.PortfolioSnapshot {
	return s.ledger.Snapshot()
}

func (s *tradingService) History(f engine.HistoryFilter) []models.Transaction {
	return s.ledger.History(f)
}

func (s *tradingService) SaveState(ctx context.Context) (string, error) {
	return s.persist(ctx)
}

// persist saves the ledger state against the last seen revision and
// advances it on success.
func (s *tradingService) persist(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rev, err := s.store.Save(ctx, s.ledger.ExportState(), s.rev)
	if err != nil {
		return "", err
	}
	s.rev = rev
	return rev, nil
}

func (s *tradingService) LoadState(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, rev, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	s.ledger.RestoreState(st)
	s.rev = rev
	return rev, nil
}

func (s *tradingService) Revision() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}
