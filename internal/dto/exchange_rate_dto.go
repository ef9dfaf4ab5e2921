package dto

import (
	"github.com/nmishr/currency_exchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LatestRateRequest defines the query parameters for resolving a rate.
type LatestRateRequest struct {
	SourceCurrency string `form:"source" binding:"required,currency"`
	TargetCurrency string `form:"target" binding:"required,currency"`
}

// ExchangeRateResponse defines the structure for API responses containing a resolved rate.
type ExchangeRateResponse struct {
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
}

// ToCurrencyPair converts a LatestRateRequest to a domain CurrencyPair
func (r LatestRateRequest) ToCurrencyPair() domain.CurrencyPair {
	return domain.CurrencyPair{
		SourceCurrency: r.SourceCurrency,
		TargetCurrency: r.TargetCurrency,
	}
}
