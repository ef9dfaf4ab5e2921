package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/nmishr/currency_exchange/internal/apperrors"
	portsrepo "github.com/nmishr/currency_exchange/internal/core/ports/repositories"
	portssvc "github.com/nmishr/currency_exchange/internal/core/ports/services"
)

const (
	// tradeWindow bounds the counter's lifetime; the cache entry expiry is the
	// window, refreshed on every increment.
	tradeWindow = time.Hour

	// tradeLimit is the number of trades a client may make inside one window.
	tradeLimit = 10

	tradeCountKeyPrefix = "TradeCount_"
)

// tradeLimiterService tracks trades per client in the shared cache. The
// read-then-write update is two independent cache operations; concurrent
// trades from the same client can lose updates.
type tradeLimiterService struct {
	BaseService
	cache portsrepo.Cache
}

// NewTradeLimiterService creates a new TradeLimiterSvc.
func NewTradeLimiterService(cache portsrepo.Cache) portssvc.TradeLimiterSvc {
	return &tradeLimiterService{cache: cache}
}

func tradeCountKey(clientID string) string {
	return tradeCountKeyPrefix + clientID
}

// IsLimitExceeded reports whether the client reached the trade threshold. An
// absent counter reads as one trade already taken, a conservative default.
func (s *tradeLimiterService) IsLimitExceeded(ctx context.Context, clientID string) (bool, error) {
	raw, err := s.cache.Get(ctx, tradeCountKey(clientID))
	if err != nil {
		s.LogError(ctx, err, "Failed to read trade counter", slog.String("client_id", clientID))
		return false, fmt.Errorf("%w: trade counter read for client %s: %v", apperrors.ErrPersistence, clientID, err)
	}

	count := 1
	if len(raw) > 0 {
		if parsed, parseErr := strconv.Atoi(string(raw)); parseErr == nil {
			count = parsed
		}
	}

	return count >= tradeLimit, nil
}

// Increment bumps the client's counter and restarts the window. An absent
// counter counts as zero here, unlike the read side.
func (s *tradeLimiterService) Increment(ctx context.Context, clientID string) error {
	raw, err := s.cache.Get(ctx, tradeCountKey(clientID))
	if err != nil {
		s.LogError(ctx, err, "Failed to read trade counter", slog.String("client_id", clientID))
		return fmt.Errorf("%w: trade counter read for client %s: %v", apperrors.ErrPersistence, clientID, err)
	}

	count := 0
	if len(raw) > 0 {
		if parsed, parseErr := strconv.Atoi(string(raw)); parseErr == nil {
			count = parsed
		}
	}

	next := strconv.Itoa(count + 1)
	if err := s.cache.Set(ctx, tradeCountKey(clientID), []byte(next), tradeWindow); err != nil {
		s.LogError(ctx, err, "Failed to write trade counter", slog.String("client_id", clientID))
		return fmt.Errorf("%w: trade counter write for client %s: %v", apperrors.ErrPersistence, clientID, err)
	}
	return nil
}
