package services

import (
	"context"

	"github.com/nmishr/currency_exchange/internal/dto"
	"github.com/shopspring/decimal"
)

// TradeLimiterSvc gates trades by a per-client counter with a bounded window.
type TradeLimiterSvc interface {
	// IsLimitExceeded reports whether the client has reached the trade
	// threshold for the current window.
	IsLimitExceeded(ctx context.Context, clientID string) (bool, error)

	// Increment records one more trade for the client and refreshes the
	// window expiry.
	Increment(ctx context.Context, clientID string) error
}

// TradeSvcFacade executes trades end to end: limit gate, rate resolution,
// persistence, and counter increment.
type TradeSvcFacade interface {
	// ExecuteTrade performs the trade and returns the converted amount.
	ExecuteTrade(ctx context.Context, req dto.TradeRequest) (decimal.Decimal, error)
}
