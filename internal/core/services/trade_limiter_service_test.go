package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nmishr/currency_exchange/internal/apperrors"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
	"github.com/nmishr/currency_exchange/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type TradeLimiterServiceTestSuite struct {
	suite.Suite
	mockCache *MockCache
	limiter   portssvc.TradeLimiterSvc
}

func (suite *TradeLimiterServiceTestSuite) SetupTest() {
	suite.mockCache = new(MockCache)
	suite.limiter = services.NewTradeLimiterService(suite.mockCache)
}

func (suite *TradeLimiterServiceTestSuite) TestIsLimitExceeded_AbsentCounterReadsAsOne() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return(nil, nil).Once()

	exceeded, err := suite.limiter.IsLimitExceeded(ctx, "c1")

	suite.Require().NoError(err)
	suite.False(exceeded)
}

func (suite *TradeLimiterServiceTestSuite) TestIsLimitExceeded_BelowThreshold() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return([]byte("9"), nil).Once()

	exceeded, err := suite.limiter.IsLimitExceeded(ctx, "c1")

	suite.Require().NoError(err)
	suite.False(exceeded)
}

func (suite *TradeLimiterServiceTestSuite) TestIsLimitExceeded_AtThreshold() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return([]byte("10"), nil).Once()

	exceeded, err := suite.limiter.IsLimitExceeded(ctx, "c1")

	suite.Require().NoError(err)
	suite.True(exceeded)
}

func (suite *TradeLimiterServiceTestSuite) TestIsLimitExceeded_UnparseableCounterFallsBackToDefault() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return([]byte("not-a-number"), nil).Once()

	exceeded, err := suite.limiter.IsLimitExceeded(ctx, "c1")

	suite.Require().NoError(err)
	suite.False(exceeded)
}

func (suite *TradeLimiterServiceTestSuite) TestIsLimitExceeded_CacheErrorSurfaces() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return(nil, errors.New("redis down")).Once()

	_, err := suite.limiter.IsLimitExceeded(ctx, "c1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *TradeLimiterServiceTestSuite) TestIncrement_AbsentCounterStartsAtOne() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return(nil, nil).Once()
	suite.mockCache.On("Set", ctx, "TradeCount_c1", []byte("1"), time.Hour).Return(nil).Once()

	err := suite.limiter.Increment(ctx, "c1")

	suite.Require().NoError(err)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *TradeLimiterServiceTestSuite) TestIncrement_BumpsExistingCounterAndRefreshesWindow() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return([]byte("4"), nil).Once()
	suite.mockCache.On("Set", ctx, "TradeCount_c1", []byte("5"), time.Hour).Return(nil).Once()

	err := suite.limiter.Increment(ctx, "c1")

	suite.Require().NoError(err)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *TradeLimiterServiceTestSuite) TestIncrement_WriteErrorSurfaces() {
	ctx := context.Background()
	suite.mockCache.On("Get", ctx, "TradeCount_c1").Return([]byte("4"), nil).Once()
	suite.mockCache.On("Set", ctx, "TradeCount_c1", []byte("5"), time.Hour).Return(errors.New("redis down")).Once()

	err := suite.limiter.Increment(ctx, "c1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func TestTradeLimiterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TradeLimiterServiceTestSuite))
}
