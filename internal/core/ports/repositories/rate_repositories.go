package repositories

import (
	"context"

	"github.com/nmishr/currency_exchange/internal/core/domain"
)

// RateReader defines read operations for durable rate records
type RateReader interface {
	// FindRate retrieves a rate record matching the currency pair.
	// Returns apperrors.ErrNotFound when no record matches.
	FindRate(ctx context.Context, sourceCurrency, targetCurrency string) (*domain.RateRecord, error)
}

// RateWriter defines write operations for durable rate records
type RateWriter interface {
	// SaveRate appends a new rate record. Records are never updated in place.
	SaveRate(ctx context.Context, record domain.RateRecord) error
}

// RateRepositoryFacade combines all rate-record repository interfaces
// This is a facade for clients that need access to all operations
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
