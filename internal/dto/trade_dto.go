package dto

import (
	"github.com/nmishr/currency_exchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TradeRequest defines the structure for executing a trade.
type TradeRequest struct {
	ClientID       string          `json:"clientId" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	SourceCurrency string          `json:"sourceCurrency" binding:"required,currency"`
	TargetCurrency string          `json:"targetCurrency" binding:"required,currency"`
}

// TradeResponse defines the structure for API responses to an accepted trade.
type TradeResponse struct {
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

// ToCurrencyPair converts a TradeRequest to the domain CurrencyPair it trades on
func (r TradeRequest) ToCurrencyPair() domain.CurrencyPair {
	return domain.CurrencyPair{
		SourceCurrency: r.SourceCurrency,
		TargetCurrency: r.TargetCurrency,
	}
}
