package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nmishr/currency_exchange/internal/apperrors"
	"github.com/nmishr/currency_exchange/internal/core/domain"
	portsprov "github.com/nmishr/currency_exchange/internal/core/ports/providers"
	portsrepo "github.com/nmishr/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	// freshnessWindow is how long a cached rate is trusted before the reader
	// treats it as stale.
	freshnessWindow = 30 * time.Minute

	rateCacheKeyPrefix = "ExchangeRate_"
)

// unresolvedRate is the internal sentinel for "not yet resolved". It is only
// ever returned alongside an error and is never cached or persisted.
var unresolvedRate = decimal.NewFromInt(-1)

// rateCacheKey builds the cache key for a pair, e.g. "ExchangeRate_USD_EUR".
func rateCacheKey(pair domain.CurrencyPair) string {
	return rateCacheKeyPrefix + pair.String()
}

// rateResolverService resolves rates through the cache, the durable store and
// the external provider, in that order.
type rateResolverService struct {
	BaseService
	cache    portsrepo.Cache
	rateRepo portsrepo.RateRepositoryFacade
	provider portsprov.RateProvider
}

// NewRateResolverService creates a new RateResolverSvc.
func NewRateResolverService(cache portsrepo.Cache, rateRepo portsrepo.RateRepositoryFacade, provider portsprov.RateProvider) portssvc.RateResolverSvc {
	return &rateResolverService{
		cache:    cache,
		rateRepo: rateRepo,
		provider: provider,
	}
}

// Resolve returns the freshest known rate for the pair. The cache is the hot
// path; a fresh entry short-circuits both the store and the network. A stale
// or missing entry falls back to the durable store, and only when no record
// exists at all is the provider consulted. The durable fallback deliberately
// does not refresh the cache.
func (s *rateResolverService) Resolve(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	raw, err := s.cache.Get(ctx, rateCacheKey(pair))
	if err != nil {
		s.LogError(ctx, err, "Failed to read cached rate", slog.String("pair", pair.String()))
		return unresolvedRate, fmt.Errorf("%w: cache read for %s: %v", apperrors.ErrResolution, pair, err)
	}
	if raw != nil {
		var cached domain.CachedRate
		if err := json.Unmarshal(raw, &cached); err != nil {
			s.LogError(ctx, err, "Failed to decode cached rate", slog.String("pair", pair.String()))
			return unresolvedRate, fmt.Errorf("%w: corrupt cache entry for %s: %v", apperrors.ErrResolution, pair, err)
		}
		if time.Since(cached.FetchedAt) <= freshnessWindow {
			return cached.Value, nil
		}
	}

	record, err := s.rateRepo.FindRate(ctx, pair.SourceCurrency, pair.TargetCurrency)
	if err == nil {
		return record.Rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up stored rate", slog.String("pair", pair.String()))
		return unresolvedRate, fmt.Errorf("%w: store lookup for %s: %v", apperrors.ErrResolution, pair, err)
	}

	return s.ResolveAndCache(ctx, pair)
}

// ResolveAndCache fetches the rate from the provider and writes it back to the
// cache and the durable store. A provider failure commits nothing; a failed
// write-back fails the whole operation even though the rate was fetched.
func (s *rateResolverService) ResolveAndCache(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	rate, err := s.fetchFromProvider(ctx, pair)
	if err != nil {
		return unresolvedRate, err
	}

	now := time.Now().UTC()
	cached := domain.CachedRate{
		Name:      pair.TargetCurrency,
		Value:     rate,
		FetchedAt: now,
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode rate for caching", slog.String("pair", pair.String()))
		return unresolvedRate, fmt.Errorf("%w: encode cached rate for %s: %v", apperrors.ErrResolution, pair, err)
	}
	if err := s.cache.Set(ctx, rateCacheKey(pair), payload, freshnessWindow); err != nil {
		s.LogError(ctx, err, "Failed to cache rate", slog.String("pair", pair.String()))
		return unresolvedRate, fmt.Errorf("%w: cache write for %s: %v", apperrors.ErrPersistence, pair, err)
	}

	record := domain.RateRecord{
		RateID:         uuid.NewString(),
		SourceCurrency: pair.SourceCurrency,
		TargetCurrency: pair.TargetCurrency,
		Rate:           rate,
		RecordedAt:     now,
	}
	if err := s.rateRepo.SaveRate(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to persist rate record", slog.String("pair", pair.String()))
		return unresolvedRate, fmt.Errorf("%w: rate record write for %s: %v", apperrors.ErrPersistence, pair, err)
	}

	return rate, nil
}

// fetchFromProvider calls the external provider and extracts the rate for the
// pair's target currency. A missing target code in the payload counts as
// unavailable, same as a failed call.
func (s *rateResolverService) fetchFromProvider(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	rates, err := s.provider.LatestRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch rates from provider", slog.String("pair", pair.String()))
		return unresolvedRate, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}

	rate, ok := rates[pair.TargetCurrency]
	if !ok {
		s.LogWarn(ctx, "Provider payload is missing the target currency", slog.String("target", pair.TargetCurrency))
		return unresolvedRate, fmt.Errorf("%w: no rate for %s in provider payload", apperrors.ErrRateUnavailable, pair.TargetCurrency)
	}
	return rate, nil
}
