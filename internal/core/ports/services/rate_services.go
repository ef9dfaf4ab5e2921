package services

import (
	"context"

	"github.com/nmishr/currency_exchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc resolves the most recent known exchange rate for a pair.
type RateResolverSvc interface {
	// Resolve returns the freshest known rate for the pair, consulting the
	// cache, then the durable store, then the external provider.
	Resolve(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error)

	// ResolveAndCache fetches the rate from the external provider and writes
	// it back to both the cache and the durable store.
	ResolveAndCache(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error)
}
