package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
	"github.com/nmishr/currency_exchange/internal/dto"
	"github.com/nmishr/currency_exchange/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateResolver portssvc.RateResolverSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rr portssvc.RateResolverSvc) *exchangeRateHandler {
	return &exchangeRateHandler{rateResolver: rr}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateResolver portssvc.RateResolverSvc) {
	h := newExchangeRateHandler(rateResolver)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("/latest", h.getLatestExchangeRate)
	}
}

// getLatestExchangeRate godoc
// @Summary Get the latest exchange rate
// @Description Resolves the most recent known rate for a currency pair, consulting the cache, the durable store and the external provider in order
// @Tags exchange rates
// @Produce json
// @Param source query string true "Source Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param target query string true "Target Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency codes or resolution failure"
// @Router /exchange-rates/latest [get]
func (h *exchangeRateHandler) getLatestExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LatestRateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for getLatestExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pair := req.ToCurrencyPair()
	logger = logger.With(slog.String("source", pair.SourceCurrency), slog.String("target", pair.TargetCurrency))

	rate, err := h.rateResolver.Resolve(c.Request.Context(), pair)
	if err != nil {
		// Resolution failures surface as a client error carrying the
		// underlying message.
		logger.Warn("Failed to resolve exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		SourceCurrency: pair.SourceCurrency,
		TargetCurrency: pair.TargetCurrency,
		Rate:           rate,
	})
}
