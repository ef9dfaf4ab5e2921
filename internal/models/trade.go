package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade mirrors a row of the trades table.
type Trade struct {
	TradeID        string          `json:"tradeID"` // Primary Key (UUID)
	ClientID       string          `json:"clientID"`
	Amount         decimal.Decimal `json:"amount"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	ExecutedAt     time.Time       `json:"executedAt"`
}
