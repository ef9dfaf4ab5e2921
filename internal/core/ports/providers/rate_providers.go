package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider is the outbound port to the external spot-rate source.
type RateProvider interface {
	// LatestRates fetches the provider's current rates map, keyed by currency
	// code. A non-success response from the provider is an error; no retries
	// are attempted.
	LatestRates(ctx context.Context) (map[string]decimal.Decimal, error)
}
