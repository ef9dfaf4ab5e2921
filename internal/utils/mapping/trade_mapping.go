package mapping

import (
	"github.com/nmishr/currency_exchange/internal/core/domain"
	"github.com/nmishr/currency_exchange/internal/models"
)

// ToModelTrade converts a domain Trade to a model Trade
func ToModelTrade(d domain.Trade) models.Trade {
	return models.Trade{
		TradeID:        d.TradeID,
		ClientID:       d.ClientID,
		Amount:         d.Amount,
		SourceCurrency: d.SourceCurrency,
		TargetCurrency: d.TargetCurrency,
		ExecutedAt:     d.ExecutedAt,
	}
}

// ToDomainTrade converts a model Trade to a domain Trade
func ToDomainTrade(m models.Trade) domain.Trade {
	return domain.Trade{
		TradeID:        m.TradeID,
		ClientID:       m.ClientID,
		Amount:         m.Amount,
		SourceCurrency: m.SourceCurrency,
		TargetCurrency: m.TargetCurrency,
		ExecutedAt:     m.ExecutedAt,
	}
}
