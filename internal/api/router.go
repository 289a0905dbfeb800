package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/brvmsim/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/instruments", handler.ListInstruments)
		v1.GET("/instruments/:symbol", handler.GetInstrument)
		v1.GET("/market/status", handler.GetMarketStatus)
		v1.GET("/market/rules", handler.GetMarketRules)

		v1.POST("/orders", handler.SubmitOrder)
		v1.GET("/portfolio", handler.GetPortfolio)
		v1.GET("/transactions", handler.ListTransactions)
		v1.GET("/transactions/export", handler.ExportTransactions)
		v1.GET("/reports/performance", handler.GetPerformance)

		v1.POST("/state/save", handler.SaveState)
		v1.POST("/state/load", handler.LoadState)
	}

	return router
}
