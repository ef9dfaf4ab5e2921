package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nmishr/currency_exchange/internal/apperrors"
	"github.com/nmishr/currency_exchange/internal/core/domain"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
	"github.com/nmishr/currency_exchange/internal/dto"
	"github.com/nmishr/currency_exchange/internal/handlers"
	"github.com/nmishr/currency_exchange/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TradeService ---
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) ExecuteTrade(ctx context.Context, req dto.TradeRequest) (decimal.Decimal, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.TradeSvcFacade = (*MockTradeService)(nil)

// --- Mock RateResolverService ---
type MockRateResolverService struct {
	mock.Mock
}

func (m *MockRateResolverService) Resolve(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateResolverService) ResolveAndCache(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.RateResolverSvc = (*MockRateResolverService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockTrade    *MockTradeService
	mockResolver *MockRateResolverService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", dto.ValidCurrencyCode)
	}

	suite.mockTrade = new(MockTradeService)
	suite.mockResolver = new(MockRateResolverService)

	services := &portssvc.ServiceContainer{
		RateResolver: suite.mockResolver,
		Trade:        suite.mockTrade,
	}
	cfg := &config.Config{IsProduction: true}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestPerformTrade_Success() {
	suite.mockTrade.On("ExecuteTrade", mock.Anything, mock.MatchedBy(func(req dto.TradeRequest) bool {
		return req.ClientID == "c1" && req.SourceCurrency == "USD" && req.TargetCurrency == "EUR"
	})).Return(decimal.NewFromInt(140), nil).Once()

	body := `{"clientId":"c1","amount":100,"sourceCurrency":"USD","targetCurrency":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TradeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ConvertedAmount.Equal(decimal.NewFromInt(140)))
	suite.mockTrade.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPerformTrade_LimitExceeded() {
	suite.mockTrade.On("ExecuteTrade", mock.Anything, mock.AnythingOfType("dto.TradeRequest")).
		Return(decimal.Zero, apperrors.ErrTradeLimitExceeded).Once()

	body := `{"clientId":"c1","amount":100,"sourceCurrency":"USD","targetCurrency":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *HandlerTestSuite) TestPerformTrade_InvalidCurrencyCode() {
	body := `{"clientId":"c1","amount":100,"sourceCurrency":"us","targetCurrency":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTrade.AssertNotCalled(suite.T(), "ExecuteTrade")
}

func (suite *HandlerTestSuite) TestPerformTrade_NonPositiveAmount() {
	body := `{"clientId":"c1","amount":-5,"sourceCurrency":"USD","targetCurrency":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTrade.AssertNotCalled(suite.T(), "ExecuteTrade")
}

func (suite *HandlerTestSuite) TestPerformTrade_ServerErrorOnPersistenceFailure() {
	suite.mockTrade.On("ExecuteTrade", mock.Anything, mock.AnythingOfType("dto.TradeRequest")).
		Return(decimal.Zero, apperrors.ErrPersistence).Once()

	body := `{"clientId":"c1","amount":100,"sourceCurrency":"USD","targetCurrency":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Details:")
}

func (suite *HandlerTestSuite) TestGetLatestExchangeRate_Success() {
	pair := domain.CurrencyPair{SourceCurrency: "USD", TargetCurrency: "EUR"}
	suite.mockResolver.On("Resolve", mock.Anything, pair).Return(decimal.NewFromFloat(1.4), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates/latest?source=USD&target=EUR", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Rate.Equal(decimal.NewFromFloat(1.4)))
	suite.Equal("USD", resp.SourceCurrency)
	suite.Equal("EUR", resp.TargetCurrency)
}

func (suite *HandlerTestSuite) TestGetLatestExchangeRate_ResolutionFailureIsClientError() {
	pair := domain.CurrencyPair{SourceCurrency: "USD", TargetCurrency: "EUR"}
	suite.mockResolver.On("Resolve", mock.Anything, pair).Return(decimal.Zero, apperrors.ErrRateUnavailable).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates/latest?source=USD&target=EUR", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "rate unavailable")
}

func (suite *HandlerTestSuite) TestGetLatestExchangeRate_MissingParams() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates/latest?source=USD", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockResolver.AssertNotCalled(suite.T(), "Resolve")
}

func (suite *HandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
