package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nmishr/currency_exchange/internal/apperrors"
	"github.com/nmishr/currency_exchange/internal/core/domain"
	portsrepo "github.com/nmishr/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
	"github.com/nmishr/currency_exchange/internal/dto"
	"github.com/shopspring/decimal"
)

// tradeService executes trades: limit gate, rate resolution, persistence,
// counter increment, in that order. A failed increment after the trade row is
// written is not rolled back.
type tradeService struct {
	BaseService
	tradeRepo portsrepo.TradeRepositoryFacade
	limiter   portssvc.TradeLimiterSvc
	resolver  portssvc.RateResolverSvc
}

// NewTradeService creates a new TradeSvcFacade.
func NewTradeService(tradeRepo portsrepo.TradeRepositoryFacade, limiter portssvc.TradeLimiterSvc, resolver portssvc.RateResolverSvc) portssvc.TradeSvcFacade {
	return &tradeService{
		tradeRepo: tradeRepo,
		limiter:   limiter,
		resolver:  resolver,
	}
}

// ExecuteTrade performs the trade and returns amount * rate. A client over the
// limit is rejected before any side effect.
func (s *tradeService) ExecuteTrade(ctx context.Context, req dto.TradeRequest) (decimal.Decimal, error) {
	exceeded, err := s.limiter.IsLimitExceeded(ctx, req.ClientID)
	if err != nil {
		return decimal.Zero, err
	}
	if exceeded {
		s.LogWarn(ctx, "Trade rejected, limit reached", slog.String("client_id", req.ClientID))
		return decimal.Zero, fmt.Errorf("%w: client %s", apperrors.ErrTradeLimitExceeded, req.ClientID)
	}

	rate, err := s.resolver.Resolve(ctx, req.ToCurrencyPair())
	if err != nil {
		return decimal.Zero, err
	}

	trade := domain.Trade{
		TradeID:        uuid.NewString(),
		ClientID:       req.ClientID,
		Amount:         req.Amount,
		SourceCurrency: req.SourceCurrency,
		TargetCurrency: req.TargetCurrency,
		ExecutedAt:     time.Now().UTC(),
	}
	if err := s.tradeRepo.SaveTrade(ctx, trade); err != nil {
		s.LogError(ctx, err, "Failed to persist trade", slog.String("client_id", req.ClientID))
		return decimal.Zero, fmt.Errorf("%w: trade write for client %s: %v", apperrors.ErrPersistence, req.ClientID, err)
	}

	if err := s.limiter.Increment(ctx, req.ClientID); err != nil {
		// The trade row is already committed; the counter update is not
		// compensated.
		return decimal.Zero, err
	}

	return req.Amount.Mul(rate), nil
}
