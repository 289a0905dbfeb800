package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/config"
	"github.com/guttosm/brvmsim/internal/api"
	"github.com/guttosm/brvmsim/internal/engine"
	"github.com/guttosm/brvmsim/internal/export"
	"github.com/guttosm/brvmsim/internal/logger"
	"github.com/guttosm/brvmsim/internal/market"
	"github.com/guttosm/brvmsim/internal/rules"
	"github.com/guttosm/brvmsim/internal/service"
	"github.com/guttosm/brvmsim/internal/storage"
)

// startupTimeout bounds the initial state restore against slow backends.
const startupTimeout = 30 * time.Second

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the instrument registry (built-in catalog or MARKET_DATA_FILE).
//   - Derives the trading rule set from configuration.
//   - Connects the configured state store (memory, github or postgres).
//   - Restores the saved portfolio state if the backend has one.
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	deps, err := initializeCore(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(deps.trading, deps.market, deps.reports)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(deps.store.Ping)
	healthHandler.Register(router)

	return router, deps.cleanup, nil
}

// InitializeExporter builds the CSV exporter over the same dependency
// graph the API server uses, restored state included, so an export run
// sees exactly what a server started from the same backend would serve.
func InitializeExporter() (*export.Exporter, func(), error) {
	cfg := config.AppConfig

	deps, err := initializeCore(cfg)
	if err != nil {
		return nil, nil, err
	}

	return export.NewExporter(deps.trading, deps.reports, cfg.Export.Dir, cfg.Export.Workers), deps.cleanup, nil
}

// coreDeps is the dependency graph shared by the API and export modes.
type coreDeps struct {
	trading service.TradingService
	market  service.MarketService
	reports service.ReportService
	store   storage.StateStore
	cleanup func()
}

func initializeCore(cfg config.Config) (*coreDeps, error) {
	registry, err := buildRegistry(cfg.Market)
	if err != nil {
		return nil, fmt.Errorf("failed to build instrument registry: %w", err)
	}

	ruleSet, err := rules.FromConfig(cfg.Market)
	if err != nil {
		return nil, fmt.Errorf("failed to build rule set: %w", err)
	}

	store, closeStore, err := newStateStore(cfg.Persistence)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize state store: %w", err)
	}

	ledger := engine.NewLedger(registry, ruleSet, decimal.NewFromFloat(cfg.Market.InitialCash))
	trading := service.NewTradingService(ledger, store)

	// Restore the saved account, if any. A missing state is a fresh start,
	// not an error; anything else aborts startup.
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if _, err := trading.LoadState(ctx); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			closeStore()
			return nil, fmt.Errorf("failed to restore portfolio state: %w", err)
		}
		logger.L().Info().Str("backend", cfg.Persistence.Backend).Msg("no saved portfolio state, starting fresh")
	}

	return &coreDeps{
		trading: trading,
		market:  service.NewMarketService(registry, ruleSet),
		reports: service.NewReportService(ledger, registry),
		store:   store,
		cleanup: closeStore,
	}, nil
}

// buildRegistry loads the instrument catalog from the configured CSV file,
// falling back to the built-in BRVM listing when none is configured.
func buildRegistry(cfg config.MarketConfig) (market.Registry, error) {
	if cfg.DataFile == "" {
		return market.NewStaticRegistry(), nil
	}
	return market.LoadRegistry(cfg.DataFile)
}
