package repositories

import (
	"context"

	"github.com/nmishr/currency_exchange/internal/core/domain"
)

// TradeWriter defines write operations for trade records
type TradeWriter interface {
	// SaveTrade appends a new trade record.
	SaveTrade(ctx context.Context, trade domain.Trade) error
}

// TradeRepositoryFacade combines all trade-related repository interfaces
type TradeRepositoryFacade interface {
	TradeWriter
}
