package service

import (
	"time"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/market"
	"github.com/guttosm/brvmsim/internal/rules"
)

// MarketService exposes the instrument catalog and the session clock.
type MarketService interface {
	Instruments() []models.Instrument
	Instrument(symbol string) (models.Instrument, bool)

	// Status reports whether the exchange is open at t. The answer is
	// informational; orders are accepted around the clock.
	Status(t time.Time) rules.WindowStatus

	Rules() rules.RuleSet
}

type marketService struct {
	registry market.Registry
	rules    rules.RuleSet
}

func NewMarketService(reg market.Registry, rs rules.RuleSet) MarketService {
	return &marketService{registry: reg, rules: rs}
}

func (s *marketService) Instruments() []models.Instrument {
	return s.registry.List()
}

func (s *marketService) Instrument(symbol string) (models.Instrument, bool) {
	return s.registry.Get(symbol)
}

func (s *marketService) Status(t time.Time) rules.WindowStatus {
	return s.rules.Status(t)
}

func (s *marketService) Rules() rules.RuleSet {
	return s.rules
}
