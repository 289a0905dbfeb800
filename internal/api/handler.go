package api

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/brvmsim/internal/domain/dto"
	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/engine"
	"github.com/guttosm/brvmsim/internal/export"
	"github.com/guttosm/brvmsim/internal/middleware"
	"github.com/guttosm/brvmsim/internal/service"
	"github.com/guttosm/brvmsim/internal/storage"
)

// Handler provides the HTTP handlers for the trading simulator endpoints.
//
// Responsibilities:
//   - Validate incoming payloads and query parameters
//   - Delegate to the trading, market and report services
//   - Translate domain results and rejections into response DTOs
//   - Return structured JSON with appropriate HTTP status codes
type Handler struct {
	trading service.TradingService
	market  service.MarketService
	reports service.ReportService
}

// NewHandler constructs a Handler over the three services.
func NewHandler(trading service.TradingService, market service.MarketService, reports service.ReportService) *Handler {
	return &Handler{trading: trading, market: market, reports: reports}
}

// ListInstruments godoc
// @Summary      List tradable instruments
// @Description  Returns the full BRVM instrument catalog with reference prices
// @Tags         market
// @Produce      json
// @Success      200  {array}  models.Instrument
// @Router       /api/v1/instruments [get]
func (h *Handler) ListInstruments(c *gin.Context) {
	c.JSON(http.StatusOK, h.market.Instruments())
}

// GetInstrument godoc
// @Summary      Get one instrument
// @Description  Returns a single instrument by its symbol
// @Tags         market
// @Produce      json
// @Param        symbol  path      string  true  "Instrument symbol" example(BICC)
// @Success      200     {object}  models.Instrument
// @Failure      404     {object}  dto.ErrorResponse  "Unknown symbol"
// @Router       /api/v1/instruments/{symbol} [get]
func (h *Handler) GetInstrument(c *gin.Context) {
	symbol := c.Param("symbol")
	in, ok := h.market.Instrument(symbol)
	if !ok {
		middleware.AbortWithError(c, http.StatusNotFound, "unknown instrument "+strings.ToUpper(strings.TrimSpace(symbol)), nil)
		return
	}
	c.JSON(http.StatusOK, in)
}

// GetMarketStatus handles GET /api/v1/market/status.
//
// The status is advisory: it tells the investor whether the BRVM session
// is open, but orders submitted outside the window still execute.
//
// GetMarketStatus godoc
// @Summary      Trading window status
// @Description  Reports whether the session is open at the given instant (advisory only)
// @Tags         market
// @Produce      json
// @Param        at  query     string  false  "Instant to evaluate, RFC 3339"  example(2026-03-02T10:00:00Z)
// @Success      200 {object}  dto.MarketStatusResponse
// @Failure      400 {object}  dto.ErrorResponse  "Bad timestamp"
// @Router       /api/v1/market/status [get]
func (h *Handler) GetMarketStatus(c *gin.Context) {
	at := time.Now()
	if s := c.Query("at"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid 'at' timestamp, expected RFC 3339", err)
			return
		}
		at = parsed
	}

	st := h.market.Status(at)
	c.JSON(http.StatusOK, dto.MarketStatusResponse{
		Open:    st.Open,
		Reason:  st.Reason,
		Holiday: st.Holiday,
		Opens:   st.Opens,
		Closes:  st.Closes,
	})
}

// GetMarketRules godoc
// @Summary      Trading rules
// @Description  Returns the BRVM conventions the simulator applies to every order
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.MarketRulesResponse
// @Router       /api/v1/market/rules [get]
func (h *Handler) GetMarketRules(c *gin.Context) {
	rs := h.market.Rules()
	opens, closes := rs.SessionHours()
	c.JSON(http.StatusOK, dto.MarketRulesResponse{
		TradingOpen:            opens,
		TradingClose:           closes,
		Timezone:               rs.Location.String(),
		SettlementLagDays:      rs.SettlementLagDays,
		StaticBandPercent:      rs.StaticBandPercent,
		CommissionRate:         rs.CommissionRate,
		MinCommission:          rs.MinCommission,
		MaxOrderVolumeFraction: rs.MaxOrderVolumeFraction,
		MinLotSize:             rs.MinLotSize,
	})
}

// SubmitOrder handles POST /api/v1/orders.
//
// Responses:
//   - 201 Created: the executed transaction.
//   - 400 Bad Request: malformed payload or unknown side.
//   - 422 Unprocessable Entity: the order failed a trading rule; the body
//     names the rule and its context.
//   - 500 Internal Server Error: unexpected execution failure.
//
// SubmitOrder godoc
// @Summary      Submit an order
// @Description  Validates and executes a buy or sell order atomically
// @Tags         trading
// @Accept       json
// @Produce      json
// @Param        order  body      dto.OrderRequest  true  "Order to execute"
// @Success      201    {object}  models.Transaction
// @Failure      400    {object}  dto.ErrorResponse          "Bad payload"
// @Failure      422    {object}  dto.OrderRejectedResponse  "Order rejected"
// @Failure      500    {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/v1/orders [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid order payload", err)
		return
	}

	order, ok := req.ToOrder()
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "side must be BUY or SELL", nil)
		return
	}

	txn, err := h.trading.SubmitOrder(c.Request.Context(), order)
	if err != nil {
		var rej *engine.Rejection
		if errors.As(err, &rej) {
			c.JSON(http.StatusUnprocessableEntity, dto.OrderRejectedResponse{
				Reason:  rej.ReasonCode(),
				Message: rej.Message,
				Details: rej.Details(),
			})
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "order processing failed", err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// GetPortfolio godoc
// @Summary      Portfolio snapshot
// @Description  Returns cash, positions valued at reference prices and total wealth
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  dto.PortfolioResponse
// @Router       /api/v1/portfolio [get]
func (h *Handler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewPortfolioResponse(h.trading.Snapshot()))
}

// ListTransactions handles GET /api/v1/transactions.
//
// Query Parameters:
//   - symbol (string, optional): only transactions for this instrument.
//   - side (string, optional): "BUY" or "SELL".
//
// ListTransactions godoc
// @Summary      Transaction history
// @Description  Lists executed transactions oldest first, optionally filtered
// @Tags         trading
// @Produce      json
// @Param        symbol  query     string  false  "Instrument symbol"  example(BICC)
// @Param        side    query     string  false  "BUY or SELL"        example(BUY)
// @Success      200     {array}   models.Transaction
// @Failure      400     {object}  dto.ErrorResponse  "Bad side"
// @Router       /api/v1/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	side, ok := models.ParseSide(strings.ToUpper(strings.TrimSpace(c.Query("side"))))
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "side must be BUY or SELL", nil)
		return
	}

	filter := engine.HistoryFilter{
		Symbol: strings.ToUpper(strings.TrimSpace(c.Query("symbol"))),
		Side:   side,
	}
	c.JSON(http.StatusOK, h.trading.History(filter))
}

// ExportTransactions handles GET /api/v1/transactions/export.
//
// The response body is the transaction log as CSV, filtered like
// ListTransactions, with the stable column set downstream spreadsheets
// key on.
//
// ExportTransactions godoc
// @Summary      Download transaction history
// @Description  Returns the filtered transaction log as a CSV attachment
// @Tags         trading
// @Produce      text/csv
// @Param        symbol  query     string  false  "Instrument symbol"  example(BICC)
// @Param        side    query     string  false  "BUY or SELL"        example(BUY)
// @Success      200     {string}  string             "CSV payload"
// @Failure      400     {object}  dto.ErrorResponse  "Bad side"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/transactions/export [get]
func (h *Handler) ExportTransactions(c *gin.Context) {
	side, ok := models.ParseSide(strings.ToUpper(strings.TrimSpace(c.Query("side"))))
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "side must be BUY or SELL", nil)
		return
	}

	filter := engine.HistoryFilter{
		Symbol: strings.ToUpper(strings.TrimSpace(c.Query("symbol"))),
		Side:   side,
	}

	var buf bytes.Buffer
	if err := export.WriteTransactionsCSV(&buf, h.trading.History(filter)); err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "transaction export failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetPerformance godoc
// @Summary      Performance report
// @Description  Returns returns, costs, sector allocation and risk over the current holdings
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.PerformanceReport
// @Router       /api/v1/reports/performance [get]
func (h *Handler) GetPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.Performance())
}

// SaveState handles POST /api/v1/state/save.
//
// Responses:
//   - 200 OK: the new revision token.
//   - 409 Conflict: the store moved past the revision this process last
//     saw; reload before saving again.
//   - 500 Internal Server Error: backend failure.
//
// SaveState godoc
// @Summary      Save portfolio state
// @Description  Persists the account to the configured backend with an optimistic revision check
// @Tags         state
// @Produce      json
// @Success      200  {object}  dto.StateRevisionResponse
// @Failure      409  {object}  dto.ErrorResponse  "Revision conflict"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/state/save [post]
func (h *Handler) SaveState(c *gin.Context) {
	rev, err := h.trading.SaveState(c.Request.Context())
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			middleware.AbortWithError(c, http.StatusConflict, "state was saved elsewhere, reload first", err)
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "state save failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.StateRevisionResponse{Revision: rev})
}

// LoadState godoc
// @Summary      Reload portfolio state
// @Description  Replaces the in-memory account with the stored state
// @Tags         state
// @Produce      json
// @Success      200  {object}  dto.StateRevisionResponse
// @Failure      404  {object}  dto.ErrorResponse  "Nothing persisted yet"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/state/load [post]
func (h *Handler) LoadState(c *gin.Context) {
	rev, err := h.trading.LoadState(c.Request.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			middleware.AbortWithError(c, http.StatusNotFound, "no saved state to load", err)
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "state load failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.StateRevisionResponse{Revision: rev})
}
