package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmishr/currency_exchange/internal/apperrors"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
	"github.com/nmishr/currency_exchange/internal/dto"
	"github.com/nmishr/currency_exchange/internal/middleware"
	"github.com/shopspring/decimal"
)

// tradeHandler handles HTTP requests related to trades.
type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

// newTradeHandler creates a new tradeHandler.
func newTradeHandler(ts portssvc.TradeSvcFacade) *tradeHandler {
	return &tradeHandler{tradeService: ts}
}

// registerTradeRoutes registers routes related to trades.
func registerTradeRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade) {
	h := newTradeHandler(tradeService)

	trades := rg.Group("/trades")
	{
		trades.POST("", h.performTrade)
	}
}

// performTrade godoc
// @Summary Execute a trade
// @Description Executes a currency trade for a client after checking the per-client trade limit, and returns the converted amount
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body dto.TradeRequest true "Trade details"
// @Success 200 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 429 {object} map[string]string "Trade limit exceeded for the client"
// @Failure 500 {object} map[string]string "Failed to perform the trade"
// @Router /trades [post]
func (h *tradeHandler) performTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for performTrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trade amount must be positive"})
		return
	}

	logger = logger.With(slog.String("client_id", req.ClientID))
	logger.Info("Received trade request",
		slog.String("source", req.SourceCurrency),
		slog.String("target", req.TargetCurrency),
		slog.Any("amount", req.Amount),
	)

	convertedAmount, err := h.tradeService.ExecuteTrade(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeLimitExceeded) {
			logger.Warn("Trade rejected, limit exceeded")
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to perform trade", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while performing the trade. Details: " + err.Error()})
		return
	}

	logger.Info("Trade executed successfully")
	c.JSON(http.StatusOK, dto.TradeResponse{ConvertedAmount: convertedAmount})
}
