package main

//
//  @title           BRVM Portfolio Simulator API
//  @version         1.0
//  @description     Single-investor trading simulator for the Bourse Regionale des Valeurs Mobilieres (BRVM).
//  @termsOfService  https://github.com/guttosm/brvmsim
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/brvmsim
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Instrument catalog, session status and trading rules
//
//  @tag.name        trading
//  @tag.description Order submission and transaction history
//
//  @tag.name        portfolio
//  @tag.description Cash and position snapshot
//
//  @tag.name        reports
//  @tag.description Performance and risk reporting
//
//  @tag.name        state
//  @tag.description Persistence of the account state
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/brvmsim/config"
	_ "github.com/guttosm/brvmsim/docs" // swagger docs
	"github.com/guttosm/brvmsim/internal/app"
	"github.com/guttosm/brvmsim/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the brvmsim application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API serving the simulated investor account.
//   - export: Writes the transaction log, positions and performance summary
//     as CSV files and exits.
//
// Flags:
//   - --mode: Execution mode ("api" or "export"). Default: "api".
//   - --dir:  Output directory for export mode. Defaults to EXPORT_DIR.
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or export")
	dir := flag.String("dir", config.AppConfig.Export.Dir, "Directory for exported CSV files")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "export":
		// Export mode: dump the persisted account to CSV and exit
		logger.L().Info().Str("dir", *dir).Msg("running export")

		config.AppConfig.Export.Dir = *dir
		exporter, cleanup, err := app.InitializeExporter()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer cleanup()

		if err := exporter.Run(ctx); err != nil {
			logger.L().Fatal().Err(err).Msg("export failed")
		}
		logger.L().Info().Msg("export completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
