package mapping

import (
	"github.com/nmishr/currency_exchange/internal/core/domain"
	"github.com/nmishr/currency_exchange/internal/models"
)

// ToModelRateRecord converts a domain RateRecord to a model RateRecord
func ToModelRateRecord(d domain.RateRecord) models.RateRecord {
	return models.RateRecord{
		RateID:         d.RateID,
		SourceCurrency: d.SourceCurrency,
		TargetCurrency: d.TargetCurrency,
		Rate:           d.Rate,
		RecordedAt:     d.RecordedAt,
	}
}

// ToDomainRateRecord converts a model RateRecord to a domain RateRecord
func ToDomainRateRecord(m models.RateRecord) domain.RateRecord {
	return domain.RateRecord{
		RateID:         m.RateID,
		SourceCurrency: m.SourceCurrency,
		TargetCurrency: m.TargetCurrency,
		Rate:           m.Rate,
		RecordedAt:     m.RecordedAt,
	}
}
