package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPair identifies an exchange rate by its source and target currency codes.
// Both codes are required and immutable once constructed.
type CurrencyPair struct {
	SourceCurrency string `json:"sourceCurrency"` // e.g., "USD"
	TargetCurrency string `json:"targetCurrency"` // e.g., "EUR"
}

// String returns the canonical lookup key form of the pair, "<source>_<target>".
func (p CurrencyPair) String() string {
	return p.SourceCurrency + "_" + p.TargetCurrency
}

// RateRecord is a durable, append-only record of a successfully fetched rate.
// One row is written per fetch-and-persist event; rows are never updated in place.
type RateRecord struct {
	RateID         string          `json:"rateID"` // Primary Key (UUID)
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	RecordedAt     time.Time       `json:"recordedAt"`
}

// CachedRate is the value stored in the rate cache for a currency pair.
// Staleness is evaluated by the reader against FetchedAt; the cache entry
// itself is only a hint and may outlive the freshness window.
type CachedRate struct {
	Name      string          `json:"name,omitempty"` // display name, the target currency code
	Value     decimal.Decimal `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
