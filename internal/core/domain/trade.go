package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a durable, append-only record of an accepted trade.
// The resolved rate is not stored on the row; it only shapes the converted
// amount returned to the caller.
type Trade struct {
	TradeID        string          `json:"tradeID"` // Primary Key (UUID)
	ClientID       string          `json:"clientID"`
	Amount         decimal.Decimal `json:"amount"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	ExecutedAt     time.Time       `json:"executedAt"`
}
