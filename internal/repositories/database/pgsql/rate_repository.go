package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmishr/currency_exchange/internal/apperrors"
	"github.com/nmishr/currency_exchange/internal/core/domain"
	"github.com/nmishr/currency_exchange/internal/models"
	"github.com/nmishr/currency_exchange/internal/utils/mapping"
)

// PgxRateRepository implements the repositories.RateRepositoryFacade interface using pgxpool.
type PgxRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(pool *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{pool: pool}
}

// FindRate retrieves a rate record matching the currency pair.
// No ordering is applied; any matching row satisfies the lookup.
func (r *PgxRateRepository) FindRate(ctx context.Context, sourceCurrency, targetCurrency string) (*domain.RateRecord, error) {
	query := `
		SELECT rate_id, source_currency, target_currency, rate, recorded_at
		FROM exchange_rates
		WHERE source_currency = $1 AND target_currency = $2
		LIMIT 1;
	`

	var modelRecord models.RateRecord
	err := r.pool.QueryRow(ctx, query, sourceCurrency, targetCurrency).Scan(
		&modelRecord.RateID, &modelRecord.SourceCurrency, &modelRecord.TargetCurrency,
		&modelRecord.Rate, &modelRecord.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no rate record for %s to %s", apperrors.ErrNotFound, sourceCurrency, targetCurrency)
		}
		return nil, fmt.Errorf("failed to find rate record: %w", err)
	}

	domainRecord := mapping.ToDomainRateRecord(modelRecord)
	return &domainRecord, nil
}

// SaveRate appends a new rate record.
func (r *PgxRateRepository) SaveRate(ctx context.Context, record domain.RateRecord) error {
	modelRecord := mapping.ToModelRateRecord(record)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO exchange_rates (rate_id, source_currency, target_currency, rate, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`,
		modelRecord.RateID, modelRecord.SourceCurrency, modelRecord.TargetCurrency,
		modelRecord.Rate, modelRecord.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save rate record: %w", err)
	}
	return nil
}
