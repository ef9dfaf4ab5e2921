package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord mirrors a row of the exchange_rates table.
// Note: Rate should use a precise decimal type like github.com/shopspring/decimal
type RateRecord struct {
	RateID         string          `json:"rateID"` // Primary Key (UUID)
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	RecordedAt     time.Time       `json:"recordedAt"`
}
